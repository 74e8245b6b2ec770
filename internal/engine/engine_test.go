package engine

import (
	"math/rand"
	"testing"
	"time"
)

// newTestService builds an in-memory service pinned to a fixed wall clock.
// Returned advance shifts the clock; no persistence is attached.
func newTestService(t *testing.T) (*Service, func(d time.Duration)) {
	t.Helper()
	start := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	cur := start

	svc := NewService(NewState(start), nil)
	svc.now = func() time.Time { return cur }
	svc.rng = rand.New(rand.NewSource(1))

	advance := func(d time.Duration) {
		cur = cur.Add(d)
	}
	return svc, advance
}

func startToday(t *testing.T, svc *Service) {
	t.Helper()
	svc.StartDay(DefaultStats(), DefaultTheme)
	day, ok := svc.Today()
	if !ok || day.Status != DayActive {
		t.Fatalf("day not active after StartDay: %+v", day)
	}
}

func todayKeyOf(svc *Service) string {
	return svc.todayKey()
}
