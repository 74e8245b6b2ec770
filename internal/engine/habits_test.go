package engine

import "testing"

func TestExecuteHabitCapsRewards(t *testing.T) {
	svc, _ := newTestService(t)
	h := svc.CreateHabit(HabitInput{
		Name:   "cold shower",
		Effect: HabitEffect{Stats: Delta{Energy: 5}, XP: 50, Diamonds: 25},
	})

	svc.ExecuteHabit(h.ID)

	if got := svc.Profile().XPTotal; got != HabitRewardCap {
		t.Fatalf("habit XP = %d, want capped %d", got, HabitRewardCap)
	}
	if got := svc.Diamonds(); got != HabitRewardCap {
		t.Fatalf("habit diamonds = %d, want capped %d", got, HabitRewardCap)
	}
	if got := svc.CurrentStats().Energy; got != 75 {
		t.Fatalf("energy = %d, want 75", got)
	}
}

func TestExecuteHabitRecordsHistory(t *testing.T) {
	svc, _ := newTestService(t)
	h := svc.CreateHabit(HabitInput{Name: "journal", Effect: HabitEffect{XP: 2}})

	svc.ExecuteHabit(h.ID)
	svc.ExecuteHabit(h.ID)

	history := svc.HabitHistory()
	if len(history) != 2 {
		t.Fatalf("history entries = %d, want 2", len(history))
	}
	for _, rec := range history {
		if rec.HabitID != h.ID || rec.Date != todayKeyOf(svc) {
			t.Fatalf("bad record: %+v", rec)
		}
	}
}

func TestExecuteHabitUnknownIDNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	svc.ExecuteHabit("habit-missing")
	if got := len(svc.HabitHistory()); got != 0 {
		t.Fatalf("history after unknown habit = %d, want 0", got)
	}
}

func TestDeleteHabitKeepsHistory(t *testing.T) {
	svc, _ := newTestService(t)
	h := svc.CreateHabit(HabitInput{Name: "run"})
	svc.ExecuteHabit(h.ID)
	svc.DeleteHabit(h.ID)

	if got := len(svc.HabitList()); got != 0 {
		t.Fatalf("habits after delete = %d, want 0", got)
	}
	if got := len(svc.HabitHistory()); got != 1 {
		t.Fatalf("history after delete = %d, want 1 (events survive)", got)
	}
}
