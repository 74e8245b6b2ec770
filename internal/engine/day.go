package engine

// Day lifecycle engine: the state machine advancing a day between
// inactive/active/finished and cascading every date-boundary consequence.
// All preconditions fail as silent no-ops; the UI depends on retry-safe
// calls.

const (
	morningRoutineXP       = 5
	morningRoutineDiamonds = 2
)

// SyncDayForToday reconciles the state with the current calendar date:
// finishes a stale active day, fails and archives overdue quests and makes
// sure a day record exists for today. Idempotent; safe to call on every
// app foreground.
func (s *Service) SyncDayForToday() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncDayLocked()
	s.afterMutation()
}

func (s *Service) syncDayLocked() {
	todayKey := s.todayKey()

	// Finish the at-most-one active day left over from another date.
	for _, d := range s.state.Days {
		if d.Status != DayActive || d.Date == todayKey {
			continue
		}
		prevDate := d.Date

		// Undone work is lost when the day ends.
		for _, q := range s.state.Quests {
			if q.PlannedDate == prevDate && (q.Status == StatusActive || q.Status == StatusPlanned) {
				q.Status = StatusFailed
				q.ExecutedAt = s.nowISO()
			}
		}

		end := s.state.CurrentStats
		d.Status = DayFinished
		d.EndTime = s.nowISO()
		d.EndStats = &end

		for _, q := range s.state.Quests {
			if q.PlannedDate == prevDate && (q.Status == StatusCompleted || q.Status == StatusFailed) {
				s.archiveQuestLocked(q)
			}
		}
	}

	// Sweep quests from any past date, catching multi-day gaps where the
	// app was never opened.
	for _, q := range s.state.Quests {
		if q.PlannedDate != "" && q.PlannedDate < todayKey &&
			(q.Status == StatusPlanned || q.Status == StatusActive) {
			q.Status = StatusFailed
			q.ExecutedAt = s.nowISO()
		}
	}
	for _, q := range s.state.Quests {
		if q.PlannedDate != "" && q.PlannedDate < todayKey &&
			(q.Status == StatusCompleted || q.Status == StatusFailed) {
			s.archiveQuestLocked(q)
		}
	}

	if _, ok := s.state.Days[todayKey]; !ok {
		themes := Themes()
		s.state.Days[todayKey] = &Day{
			ID:         "day-" + todayKey,
			Date:       todayKey,
			Status:     DayInactive,
			StartStats: DefaultStats(),
			Theme:      themes[s.rng.Intn(len(themes))],
		}
	}
}

// archiveQuestLocked moves a resolved past quest into its terminal state,
// charging any outstanding diamond penalty first.
func (s *Service) archiveQuestLocked(q *Quest) {
	if q.Status == StatusFailed && !q.PenaltyApplied {
		s.deductDiamonds(q.PenaltyDiamonds)
		q.PenaltyApplied = true
	}
	q.FinalStatus = q.Status
	q.Status = StatusArchived
}

// StartDay activates today's day with user-entered stats. No-op when today
// is already active. The theme argument wins over the day's pre-assigned
// theme; both fall back to the default.
func (s *Service) StartDay(initial Stats, theme DayTheme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.syncDayLocked()

	todayKey := s.todayKey()
	today, ok := s.state.Days[todayKey]
	if !ok {
		today = &Day{
			ID:         "day-" + todayKey,
			Date:       todayKey,
			Status:     DayInactive,
			StartStats: DefaultStats(),
			Theme:      DefaultTheme,
		}
		s.state.Days[todayKey] = today
	}
	if today.Status == DayActive {
		return
	}

	selected := theme
	if !selected.IsValid() {
		selected = today.Theme
	}
	if !selected.IsValid() {
		selected = DefaultTheme
	}

	today.Status = DayActive
	today.StartTime = s.nowISO()
	today.StartStats = initial
	today.Theme = selected

	s.state.CurrentStats = initial

	for _, q := range s.state.Quests {
		if q.PlannedDate == todayKey && q.Status == StatusPlanned {
			q.Status = StatusActive
			q.ActiveDate = todayKey
		}
	}

	s.state.LastDayStarted = todayKey
	s.state.TimeMeta.LastActivityAt = s.now().UnixMilli()
	s.afterMutation()
}

// ActivatePlannedForToday promotes today's planned quests to active. Only
// meaningful while today's day is active.
func (s *Service) ActivatePlannedForToday() {
	s.mu.Lock()
	defer s.mu.Unlock()
	todayKey := s.todayKey()
	today, ok := s.state.Days[todayKey]
	if !ok || today.Status != DayActive {
		return
	}
	for _, q := range s.state.Quests {
		if q.PlannedDate == todayKey && q.Status == StatusPlanned {
			q.Status = StatusActive
			q.ActiveDate = todayKey
		}
	}
	s.afterMutation()
}

// CompleteMorningRoutine claims the once-per-day morning bonus.
func (s *Service) CompleteMorningRoutine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	todayKey := s.todayKey()
	today, ok := s.state.Days[todayKey]
	if !ok || today.Status != DayActive || today.MorningRoutineCompleted {
		return
	}
	today.MorningRoutineCompleted = true
	today.MorningRoutineCompletedAt = s.nowISO()
	s.grantXP(morningRoutineXP)
	s.grantDiamonds(morningRoutineDiamonds)
	s.afterMutation()
}
