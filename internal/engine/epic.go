package engine

import "strings"

// Epic quest: the single long-running multi-step goal. Steps complete
// strictly in order; the final rewards pay out exactly once.

type EpicStepInput struct {
	Title       string
	Description string
}

type EpicQuestInput struct {
	Title        string
	Description  string
	Steps        []EpicStepInput
	FinalRewards *Rewards
}

// CreateEpicQuest replaces any existing epic quest with a fresh one.
func (s *Service) CreateEpicQuest(in EpicQuestInput) EpicQuest {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowISO()
	eq := &EpicQuest{
		ID:          newID("epic"),
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i, st := range in.Steps {
		eq.Steps = append(eq.Steps, EpicQuestStep{
			ID:          newID("step"),
			Title:       st.Title,
			Description: st.Description,
			Order:       i,
		})
	}
	if in.FinalRewards != nil {
		r := *in.FinalRewards
		eq.FinalRewards = &r
	}
	eq.CurrentStepIndex = firstIncompleteStep(eq.Steps)

	s.state.EpicQuest = eq
	s.afterMutation()
	return *eq
}

// UpdateEpicQuest edits title, description and step texts in place.
// Completion markers on existing steps survive the edit.
func (s *Service) UpdateEpicQuest(in EpicQuestInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.state.EpicQuest
	if eq == nil {
		return
	}
	if in.Title != "" {
		eq.Title = in.Title
	}
	if in.Description != "" {
		eq.Description = in.Description
	}
	if in.Steps != nil {
		steps := make([]EpicQuestStep, 0, len(in.Steps))
		for i, st := range in.Steps {
			next := EpicQuestStep{
				ID:          newID("step"),
				Title:       st.Title,
				Description: st.Description,
				Order:       i,
			}
			if i < len(eq.Steps) {
				next.ID = eq.Steps[i].ID
				next.Completed = eq.Steps[i].Completed
				next.CompletedAt = eq.Steps[i].CompletedAt
			}
			steps = append(steps, next)
		}
		eq.Steps = steps
		eq.CurrentStepIndex = firstIncompleteStep(eq.Steps)
	}
	if in.FinalRewards != nil {
		r := *in.FinalRewards
		eq.FinalRewards = &r
	}
	eq.UpdatedAt = s.nowISO()
	s.afterMutation()
}

// CompleteEpicQuestStep completes the current step only; completing a
// step out of order is a no-op. Finishing the last step grants the final
// rewards exactly once.
func (s *Service) CompleteEpicQuestStep(stepID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.state.EpicQuest
	if eq == nil || eq.CurrentStepIndex < 0 || eq.CurrentStepIndex >= len(eq.Steps) {
		return
	}
	cur := &eq.Steps[eq.CurrentStepIndex]
	if !strings.HasPrefix(cur.ID, stepID) || cur.Completed {
		return
	}

	cur.Completed = true
	cur.CompletedAt = s.nowISO()
	eq.CurrentStepIndex = firstIncompleteStep(eq.Steps)
	eq.UpdatedAt = s.nowISO()

	if eq.CurrentStepIndex == -1 && eq.FinalRewards != nil && !eq.FinalRewardsGranted {
		s.grantRewards(*eq.FinalRewards, false)
		eq.FinalRewardsGranted = true
	}
	s.afterMutation()
}

// ResetEpicQuest clears all completion markers. The final-rewards guard
// stays set so a reset cannot farm the payout.
func (s *Service) ResetEpicQuest() {
	s.mu.Lock()
	defer s.mu.Unlock()

	eq := s.state.EpicQuest
	if eq == nil {
		return
	}
	for i := range eq.Steps {
		eq.Steps[i].Completed = false
		eq.Steps[i].CompletedAt = ""
	}
	eq.CurrentStepIndex = firstIncompleteStep(eq.Steps)
	eq.UpdatedAt = s.nowISO()
	s.afterMutation()
}

func (s *Service) DeleteEpicQuest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EpicQuest = nil
	s.afterMutation()
}

// EpicQuestView returns a copy of the epic quest, or nil when none exists.
func (s *Service) EpicQuestView() *EpicQuest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.EpicQuest == nil {
		return nil
	}
	eq := *s.state.EpicQuest
	eq.Steps = append([]EpicQuestStep(nil), s.state.EpicQuest.Steps...)
	return &eq
}

// EpicProgress is the completed-step percentage, 0 when no quest or no
// steps exist.
func (s *Service) EpicProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	eq := s.state.EpicQuest
	if eq == nil || len(eq.Steps) == 0 {
		return 0
	}
	done := 0
	for _, st := range eq.Steps {
		if st.Completed {
			done++
		}
	}
	return done * 100 / len(eq.Steps)
}

func firstIncompleteStep(steps []EpicQuestStep) int {
	for i, st := range steps {
		if !st.Completed {
			return i
		}
	}
	return -1
}
