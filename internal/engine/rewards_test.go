package engine

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{99, 0},
		{100, 1},
		{199, 1},
		{200, 2},
		{1050, 10},
	}
	for _, c := range cases {
		if got := LevelForXP(c.xp); got != c.want {
			t.Fatalf("LevelForXP(%d)=%d, want %d", c.xp, got, c.want)
		}
	}
}

func TestStatsClamping(t *testing.T) {
	s := Stats{Mood: 95, Money: 10, Energy: 5, Stress: 90, SleepHours: 11}

	got := s.Apply(Delta{Mood: 20, Money: -50, Energy: -10, Stress: -95, SleepHours: 5})

	if got.Mood != 100 {
		t.Fatalf("mood = %d, want 100", got.Mood)
	}
	if got.Money != -40 {
		t.Fatalf("money = %d, want -40 (unclamped)", got.Money)
	}
	if got.Energy != 0 {
		t.Fatalf("energy = %d, want 0", got.Energy)
	}
	if got.Stress != 0 {
		t.Fatalf("stress = %d, want 0", got.Stress)
	}
	if got.SleepHours != 12 {
		t.Fatalf("sleep = %d, want 12", got.SleepHours)
	}
}

func TestXPHistoryMergesByDate(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	svc.ApplyStatsDelta(Delta{}) // no-op baseline
	svc.mu.Lock()
	svc.grantXP(10)
	svc.grantXP(15)
	svc.mu.Unlock()

	p := svc.Profile()
	if len(p.XPHistory) != 1 {
		t.Fatalf("xp history entries = %d, want 1 (merged)", len(p.XPHistory))
	}
	if p.XPHistory[0].XP != 25 {
		t.Fatalf("merged XP = %d, want 25", p.XPHistory[0].XP)
	}
	if p.XPHistory[0].Date != todayKeyOf(svc) {
		t.Fatalf("entry date = %q, want %q", p.XPHistory[0].Date, todayKeyOf(svc))
	}
}

func TestXPHistoryCapped(t *testing.T) {
	svc, _ := newTestService(t)
	p := &svc.state.Profile
	for i := 0; i < xpHistoryCap; i++ {
		p.XPHistory = append(p.XPHistory, XPEntry{Date: "2023-01-01", XP: 1})
	}

	svc.mu.Lock()
	svc.grantXP(5)
	svc.mu.Unlock()

	if got := len(svc.Profile().XPHistory); got != xpHistoryCap {
		t.Fatalf("history length = %d, want %d", got, xpHistoryCap)
	}
	last := svc.Profile().XPHistory[xpHistoryCap-1]
	if last.Date != todayKeyOf(svc) || last.XP != 5 {
		t.Fatalf("newest entry = %+v, want today's", last)
	}
}

func TestGrantDiamondsTracksLifetimeTotal(t *testing.T) {
	svc, _ := newTestService(t)
	svc.mu.Lock()
	svc.grantDiamonds(8)
	svc.deductDiamonds(5)
	svc.grantDiamonds(2)
	svc.mu.Unlock()

	if got := svc.Diamonds(); got != 5 {
		t.Fatalf("diamonds = %d, want 5", got)
	}
	if got := svc.state.DiamondsEarnedTotal; got != 10 {
		t.Fatalf("lifetime earned = %d, want 10 (deductions excluded)", got)
	}
}
