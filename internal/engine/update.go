package engine

// Quest editing. Only unresolved quests can change; completed, failed and
// archived quests are immutable history.

type UpdateQuestInput struct {
	Title       string
	Description string
	Category    QuestCategory
	PlannedDate string
	Rewards     *Rewards
	Penalties   *Delta
}

// UpdateQuest edits a planned or active quest in place. Moving a dated
// quest to a new date demotes it back to planned unless the new date is
// today while today is active.
func (s *Service) UpdateQuest(id string, in UpdateQuestInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil || (q.Status != StatusPlanned && q.Status != StatusActive) {
		return
	}

	if in.Title != "" {
		q.Title = in.Title
	}
	if in.Description != "" {
		q.Description = in.Description
	}
	if in.Category.IsValid() {
		q.Category = in.Category
	}
	if in.Rewards != nil {
		q.Rewards = *in.Rewards
		if q.Rewards.XP == 0 {
			q.Rewards.XP = DefaultQuestXP
		}
	}
	if in.Penalties != nil {
		q.Penalties = *in.Penalties
	}

	if in.PlannedDate != "" && in.PlannedDate != q.PlannedDate && q.PlannedDate != "" {
		q.PlannedDate = in.PlannedDate
		todayKey := s.todayKey()
		today := s.state.Days[todayKey]
		if in.PlannedDate == todayKey && today != nil && today.Status == DayActive {
			q.Status = StatusActive
			q.ActiveDate = todayKey
		} else {
			q.Status = StatusPlanned
			q.ActiveDate = ""
		}
	}
	s.afterMutation()
}

// DeleteQuest removes a quest outright, whatever its status. No penalties
// apply; deletion is not failure.
func (s *Service) DeleteQuest(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.questByPrefixLocked(id)
	if q == nil {
		return
	}
	if today, ok := s.state.Days[s.todayKey()]; ok && today.MainQuestID == q.ID {
		today.MainQuestID = ""
	}
	delete(s.state.Quests, q.ID)
	s.afterMutation()
}
