package engine

import (
	"sort"
	"strings"
)

// Quick actions: instantaneous stat-delta triggers with a history log.

type QuickActionInput struct {
	Name        string
	Description string
	Effect      Delta
}

func (s *Service) CreateQuickAction(in QuickActionInput) QuickAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &QuickAction{
		ID:          newID("qa"),
		Name:        in.Name,
		Description: in.Description,
		Effect:      in.Effect,
		CreatedAt:   s.nowISO(),
	}
	s.state.QuickActions[a.ID] = a
	s.afterMutation()
	return *a
}

func (s *Service) UpdateQuickAction(id string, in QuickActionInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.QuickActions[id]
	if !ok {
		return
	}
	if in.Name != "" {
		a.Name = in.Name
	}
	if in.Description != "" {
		a.Description = in.Description
	}
	if !in.Effect.IsZero() {
		a.Effect = in.Effect
	}
	s.afterMutation()
}

func (s *Service) DeleteQuickAction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.QuickActions, id)
	s.afterMutation()
}

// ApplyQuickAction applies the action's effect to the live stats and
// records the execution.
func (s *Service) ApplyQuickAction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.quickActionByPrefixLocked(id)
	if a == nil {
		return
	}

	s.applyStatsDelta(a.Effect)
	s.state.QuickActionHistory = append(s.state.QuickActionHistory, QuickActionRecord{
		ID:            newID("qah"),
		QuickActionID: a.ID,
		Name:          a.Name,
		Date:          s.todayKey(),
		ExecutedAt:    s.nowISO(),
		Effect:        a.Effect,
	})
	s.afterMutation()
}

func (s *Service) quickActionByPrefixLocked(idOrPrefix string) *QuickAction {
	if a, ok := s.state.QuickActions[idOrPrefix]; ok {
		return a
	}
	var match *QuickAction
	for _, a := range s.state.QuickActions {
		if strings.HasPrefix(a.ID, idOrPrefix) {
			if match != nil {
				return nil
			}
			match = a
		}
	}
	return match
}

func (s *Service) QuickActionList() []QuickAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []QuickAction
	for _, a := range s.state.QuickActions {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Service) QuickActionHistory() []QuickActionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]QuickActionRecord(nil), s.state.QuickActionHistory...)
}
