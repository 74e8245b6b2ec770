package engine

import (
	"sort"
	"strings"
)

// Habits are permanent date-free actions; every execution is an event in
// the habit history. XP and diamond bonuses are capped per execution.

type HabitInput struct {
	Name        string
	Description string
	Effect      HabitEffect
}

func (s *Service) CreateHabit(in HabitInput) Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := &Habit{
		ID:          newID("habit"),
		Name:        in.Name,
		Description: in.Description,
		Effect:      in.Effect,
		CreatedAt:   s.nowISO(),
	}
	s.state.Habits[h.ID] = h
	s.afterMutation()
	return *h
}

func (s *Service) UpdateHabit(id string, in HabitInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.state.Habits[id]
	if !ok {
		return
	}
	if in.Name != "" {
		h.Name = in.Name
	}
	if in.Description != "" {
		h.Description = in.Description
	}
	if in.Effect != (HabitEffect{}) {
		h.Effect = in.Effect
	}
	s.afterMutation()
}

func (s *Service) DeleteHabit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state.Habits, id)
	s.afterMutation()
}

// ExecuteHabit applies the habit's stat effect and its capped XP/diamond
// bonus, then records the execution.
func (s *Service) ExecuteHabit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.habitByPrefixLocked(id)
	if h == nil {
		return
	}

	s.applyStatsDelta(h.Effect.Stats)
	s.grantXP(capHabitReward(h.Effect.XP))
	s.grantDiamonds(capHabitReward(h.Effect.Diamonds))

	s.state.HabitHistory = append(s.state.HabitHistory, HabitRecord{
		ID:         newID("hh"),
		HabitID:    h.ID,
		HabitName:  h.Name,
		Date:       s.todayKey(),
		ExecutedAt: s.nowISO(),
		Effect:     h.Effect,
	})
	s.afterMutation()
}

func capHabitReward(v int) int {
	if v < 0 {
		return 0
	}
	if v > HabitRewardCap {
		return HabitRewardCap
	}
	return v
}

func (s *Service) habitByPrefixLocked(idOrPrefix string) *Habit {
	if h, ok := s.state.Habits[idOrPrefix]; ok {
		return h
	}
	var match *Habit
	for _, h := range s.state.Habits {
		if strings.HasPrefix(h.ID, idOrPrefix) {
			if match != nil {
				return nil
			}
			match = h
		}
	}
	return match
}

// HabitList returns copies of all habits, stable order.
func (s *Service) HabitList() []Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Habit
	for _, h := range s.state.Habits {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// HabitHistory returns a copy of the execution log.
func (s *Service) HabitHistory() []HabitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]HabitRecord(nil), s.state.HabitHistory...)
}
