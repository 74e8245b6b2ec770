package engine

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"gamelife/internal/clock"
)

// Persister writes the full state to the external blob store. Implemented
// by the snapshot store; nil disables persistence (tests).
type Persister interface {
	Save(ctx context.Context, st *State) error
}

// Service owns the game state. All mutations run synchronously under one
// mutex: there is exactly one writer, and the autosave/clock tickers go
// through the same lock, so a save never observes a half-applied change.
type Service struct {
	mu        sync.Mutex
	state     *State
	persister Persister

	now func() time.Time
	rng *rand.Rand
}

func NewService(st *State, p Persister) *Service {
	return &Service{
		state:     st,
		persister: p,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) todayKey() string {
	return clock.DayKey(s.now())
}

func (s *Service) nowISO() string {
	return clock.ISO(s.now())
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// afterMutation is the synchronous post-mutation hook: every state-changing
// operation re-evaluates achievements before releasing the lock.
func (s *Service) afterMutation() {
	evaluateAchievements(s.state, s.nowISO())
}

// Save serializes the current state to the blob store. Callers at the
// manual-save boundary surface the error; autosave logs and swallows it.
func (s *Service) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.persister == nil {
		return nil
	}
	s.state.LastSavedAt = s.nowISO()
	return s.persister.Save(ctx, s.state)
}

// StateCopy returns a deep copy of the whole state, for export.
func (s *Service) StateCopy() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// ReplaceState swaps in an imported state wholesale.
func (s *Service) ReplaceState(st *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = st
	s.afterMutation()
}

// ===== Read accessors =====

// Today returns a copy of today's day record, if it exists.
func (s *Service) Today() (Day, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.state.Days[s.todayKey()]
	if !ok {
		return Day{}, false
	}
	return *d, true
}

// QuestsForDate returns copies of the quests planned for the given day key.
func (s *Service) QuestsForDate(dateKey string) []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questsForDateLocked(dateKey)
}

func (s *Service) questsForDateLocked(dateKey string) []Quest {
	var out []Quest
	for _, q := range s.state.Quests {
		if q.PlannedDate == dateKey {
			out = append(out, *q)
		}
	}
	sortQuests(out)
	return out
}

// TodayQuests returns today's planned/active quests, or nothing when the
// day has not been started.
func (s *Service) TodayQuests() []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	todayKey := s.todayKey()
	today, ok := s.state.Days[todayKey]
	if !ok || today.Status != DayActive {
		return nil
	}
	var out []Quest
	for _, q := range s.state.Quests {
		if q.PlannedDate == todayKey && (q.Status == StatusActive || q.Status == StatusPlanned) {
			out = append(out, *q)
		}
	}
	sortQuests(out)
	return out
}

// PendingToday lists today's not-yet-resolved quests regardless of day
// status. Used by the notification relay.
func (s *Service) PendingToday() []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	todayKey := s.todayKey()
	var out []Quest
	for _, q := range s.state.Quests {
		if q.PlannedDate == todayKey && (q.Status == StatusActive || q.Status == StatusPlanned) {
			out = append(out, *q)
		}
	}
	sortQuests(out)
	return out
}

// Overdue lists unresolved quests whose planned date is already past.
func (s *Service) Overdue() []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	todayKey := s.todayKey()
	var out []Quest
	for _, q := range s.state.Quests {
		if q.PlannedDate != "" && q.PlannedDate < todayKey &&
			(q.Status == StatusActive || q.Status == StatusPlanned) {
			out = append(out, *q)
		}
	}
	sortQuests(out)
	return out
}

// AllQuests returns copies of every quest, stable order.
func (s *Service) AllQuests() []Quest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Quest
	for _, q := range s.state.Quests {
		out = append(out, *q)
	}
	sortQuests(out)
	return out
}

// QuestByPrefix resolves a quest by full id or unique id prefix.
func (s *Service) QuestByPrefix(idOrPrefix string) (Quest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.questByPrefixLocked(idOrPrefix)
	if q == nil {
		return Quest{}, false
	}
	return *q, true
}

func (s *Service) questByPrefixLocked(idOrPrefix string) *Quest {
	if q, ok := s.state.Quests[idOrPrefix]; ok {
		return q
	}
	var match *Quest
	for _, q := range s.state.Quests {
		if strings.HasPrefix(q.ID, idOrPrefix) {
			if match != nil {
				return nil // ambiguous
			}
			match = q
		}
	}
	return match
}

func (s *Service) CurrentStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentStats
}

func (s *Service) Profile() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.state.Profile
	p.XPHistory = append([]XPEntry(nil), p.XPHistory...)
	return p
}

func (s *Service) Diamonds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Diamonds
}

func (s *Service) TimeMeta() TimeMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TimeMeta
}

// Achievements returns copies of all achievement records in a stable order.
func (s *Service) Achievements() []Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Achievement
	for _, a := range s.state.Achievements {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AggregatedStats computes the lifetime summary.
func (s *Service) AggregatedStats() AggregatedStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg := AggregatedStats{
		DiamondsEarned: s.state.DiamondsEarnedTotal,
		XPGained:       s.state.Profile.XPTotal,
	}
	for _, d := range s.state.Days {
		if d.Status == DayFinished {
			agg.TotalDays++
		}
	}
	for _, q := range s.state.Quests {
		switch {
		case questCompleted(q):
			agg.CompletedQuests++
		case q.Status == StatusFailed || (q.Status == StatusArchived && q.FinalStatus == StatusFailed):
			agg.FailedQuests++
		}
	}
	return agg
}

func sortQuests(qs []Quest) {
	sort.Slice(qs, func(i, j int) bool {
		if qs[i].CreatedAt != qs[j].CreatedAt {
			return qs[i].CreatedAt < qs[j].CreatedAt
		}
		return qs[i].ID < qs[j].ID
	})
}
