package engine

// Quest operations. Precondition violations are silent no-ops throughout:
// completing an inactive quest, failing an archived one and so on leave the
// state untouched.

type CreateQuestInput struct {
	Title       string
	Description string
	Category    QuestCategory
	// PlannedDate is a YYYY-MM-DD key; empty means permanent.
	PlannedDate     string
	Rewards         Rewards
	Penalties       Delta
	PenaltyDiamonds int
}

// CreateQuest adds a quest. A quest planned for today while today's day is
// active starts out active; a dated future quest starts planned; a
// permanent quest (no date) is always active.
func (s *Service) CreateQuest(in CreateQuestInput) Quest {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := in.Category
	if !category.IsValid() {
		category = DefaultCategory
	}
	rewards := in.Rewards
	if rewards.XP == 0 {
		rewards.XP = DefaultQuestXP
	}

	todayKey := s.todayKey()
	today := s.state.Days[todayKey]
	todayActive := today != nil && today.Status == DayActive

	q := &Quest{
		ID:              newID("q"),
		Title:           in.Title,
		Description:     in.Description,
		Category:        category,
		PlannedDate:     in.PlannedDate,
		Rewards:         rewards,
		Penalties:       in.Penalties,
		PenaltyDiamonds: in.PenaltyDiamonds,
		CreatedAt:       s.nowISO(),
	}
	switch {
	case in.PlannedDate == "":
		q.Status = StatusActive
	case in.PlannedDate == todayKey && todayActive:
		q.Status = StatusActive
		q.ActiveDate = todayKey
	default:
		q.Status = StatusPlanned
	}

	s.state.Quests[q.ID] = q
	s.afterMutation()
	return *q
}

// CompleteQuest resolves an active quest while today's day is active,
// applying rewards with the main-quest multiplier when flagged.
func (s *Service) CompleteQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil || q.Status != StatusActive {
		return
	}
	today, ok := s.state.Days[s.todayKey()]
	if !ok || today.Status != DayActive {
		return
	}

	s.grantRewards(q.Rewards, q.IsMainQuest)
	q.Status = StatusCompleted
	q.ExecutedAt = s.nowISO()
	s.afterMutation()
}

// FailQuest marks a planned/active quest failed, subtracting its stat
// penalties and deducting the larger of the explicit and stored diamond
// penalty. The diamond balance never goes negative.
func (s *Service) FailQuest(id string, penaltyDiamonds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil || (q.Status != StatusActive && q.Status != StatusPlanned) {
		return
	}

	s.applyStatsDelta(q.Penalties.Negate())

	deduct := penaltyDiamonds
	if q.PenaltyDiamonds > deduct {
		deduct = q.PenaltyDiamonds
	}
	if deduct < 0 {
		deduct = 0
	}
	s.deductDiamonds(deduct)

	q.Status = StatusFailed
	q.ExecutedAt = s.nowISO()
	if deduct > 0 {
		q.PenaltyDiamonds = deduct
	}
	q.PenaltyApplied = true
	s.afterMutation()
}

// ExecuteQuest runs a permanent quest: full rewards, no status change, the
// quest stays perpetually available.
func (s *Service) ExecuteQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil || q.PlannedDate != "" {
		return
	}

	s.grantRewards(q.Rewards, false)
	q.ExecutedAt = s.nowISO()
	s.afterMutation()
}

// CompleteQuestEarly grants the rewards of a strictly-future quest today.
// The quest keeps its planned status and still activates normally on its
// planned date.
func (s *Service) CompleteQuestEarly(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil || q.PlannedDate == "" {
		return
	}
	todayKey := s.todayKey()
	if q.PlannedDate <= todayKey {
		return
	}

	s.grantRewards(q.Rewards, false)
	q.CompletedEarly = true
	q.EarlyCompletionDate = todayKey
	q.ExecutedAt = s.nowISO()
	s.afterMutation()
}

// UseSecondChance revives a failed quest for 10 diamonds. One use per
// active day, tracked on both the quest and the day.
func (s *Service) UseSecondChance(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil || q.Status != StatusFailed {
		return
	}
	if s.state.Diamonds < SecondChanceCost {
		return
	}
	today, ok := s.state.Days[s.todayKey()]
	if !ok || today.Status != DayActive || today.SecondChanceUsed {
		return
	}

	q.Status = StatusActive
	q.SecondChanceUsed = true
	q.ExecutedAt = ""
	today.SecondChanceUsed = true
	s.state.Diamonds -= SecondChanceCost
	s.afterMutation()
}

// SetMainQuest marks one of today's active quests as the main quest of the
// day, clearing the flag from every other quest planned for today.
func (s *Service) SetMainQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todayKey := s.todayKey()
	today, ok := s.state.Days[todayKey]
	if !ok || today.Status != DayActive {
		return
	}
	q := s.questByPrefixLocked(id)
	if q == nil || q.PlannedDate != todayKey || q.Status != StatusActive {
		return
	}

	for _, other := range s.state.Quests {
		if other.PlannedDate == todayKey && other.ID != q.ID {
			other.IsMainQuest = false
		}
	}
	q.IsMainQuest = true
	today.MainQuestID = q.ID
	s.afterMutation()
}
