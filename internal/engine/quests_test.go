package engine

import (
	"testing"
	"time"
)

func TestCompleteQuestGrantsRewards(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{
		Title:       "ship it",
		PlannedDate: todayKeyOf(svc),
		Rewards:     Rewards{XP: 40, Diamonds: 3, Stats: Delta{Momentum: 10}},
	})
	svc.CompleteQuest(q.ID)

	if got := svc.Profile().XPTotal; got != 40 {
		t.Fatalf("XPTotal = %d, want 40", got)
	}
	if got := svc.Diamonds(); got != 3 {
		t.Fatalf("diamonds = %d, want 3", got)
	}
	if got := svc.CurrentStats().Momentum; got != 60 {
		t.Fatalf("momentum = %d, want 60", got)
	}
	day, _ := svc.Today()
	if day.XPGained != 40 || day.DiamondsEarned != 3 {
		t.Fatalf("day tallies = %d XP / %d diamonds, want 40/3", day.XPGained, day.DiamondsEarned)
	}
}

func TestCompleteQuestNoOpWithoutActiveDay(t *testing.T) {
	svc, _ := newTestService(t)
	q := svc.CreateQuest(CreateQuestInput{Title: "permanent", Rewards: Rewards{XP: 20}})

	// Permanent quests are active, but completion still needs an active day.
	svc.CompleteQuest(q.ID)
	if got := svc.Profile().XPTotal; got != 0 {
		t.Fatalf("XP without active day = %d, want 0", got)
	}
}

func TestMainQuestBonusIsFloored(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{
		Title:       "the big one",
		PlannedDate: todayKeyOf(svc),
		Rewards:     Rewards{XP: 25, Diamonds: 5},
	})
	svc.SetMainQuest(q.ID)
	svc.CompleteQuest(q.ID)

	// 25 * 1.5 = 37.5, floored to 37; 5 * 1.5 floored to 7.
	if got := svc.Profile().XPTotal; got != 37 {
		t.Fatalf("main quest XP = %d, want 37", got)
	}
	if got := svc.Diamonds(); got != 7 {
		t.Fatalf("main quest diamonds = %d, want 7", got)
	}
}

func TestSetMainQuestIsExclusive(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	a := svc.CreateQuest(CreateQuestInput{Title: "a", PlannedDate: todayKeyOf(svc)})
	b := svc.CreateQuest(CreateQuestInput{Title: "b", PlannedDate: todayKeyOf(svc)})

	svc.SetMainQuest(a.ID)
	svc.SetMainQuest(b.ID)

	gotA, _ := svc.QuestByPrefix(a.ID)
	gotB, _ := svc.QuestByPrefix(b.ID)
	if gotA.IsMainQuest {
		t.Fatalf("quest a still flagged main after switch")
	}
	if !gotB.IsMainQuest {
		t.Fatalf("quest b not flagged main")
	}
	day, _ := svc.Today()
	if day.MainQuestID != b.ID {
		t.Fatalf("day MainQuestID = %q, want %q", day.MainQuestID, b.ID)
	}
}

func TestFailQuestUsesLargerDiamondPenalty(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 20
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{
		Title:           "doomed",
		PlannedDate:     todayKeyOf(svc),
		Penalties:       Delta{Momentum: 10},
		PenaltyDiamonds: 10,
	})
	svc.FailQuest(q.ID, 15)

	if got := svc.Diamonds(); got != 5 {
		t.Fatalf("diamonds = %d, want 5 (larger penalty wins)", got)
	}
	if got := svc.CurrentStats().Momentum; got != 40 {
		t.Fatalf("momentum = %d, want 40 (penalty negated)", got)
	}
	gotQ, _ := svc.QuestByPrefix(q.ID)
	if gotQ.Status != StatusFailed || !gotQ.PenaltyApplied {
		t.Fatalf("quest = %+v, want failed with penalty applied", gotQ)
	}
}

func TestFailQuestFloorsDiamondsAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 10
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{Title: "x", PlannedDate: todayKeyOf(svc), PenaltyDiamonds: 15})
	svc.FailQuest(q.ID, 0)
	if got := svc.Diamonds(); got != 0 {
		t.Fatalf("diamonds = %d, want 0", got)
	}
}

func TestExecutePermanentQuestKeepsItActive(t *testing.T) {
	svc, _ := newTestService(t)
	q := svc.CreateQuest(CreateQuestInput{Title: "meditate", Rewards: Rewards{XP: 5}})

	svc.ExecuteQuest(q.ID)
	svc.ExecuteQuest(q.ID)

	got, _ := svc.QuestByPrefix(q.ID)
	if got.Status != StatusActive {
		t.Fatalf("permanent quest status = %q, want active", got.Status)
	}
	if xp := svc.Profile().XPTotal; xp != 10 {
		t.Fatalf("XP after two executions = %d, want 10", xp)
	}
}

func TestCompleteQuestEarlyKeepsPlannedStatus(t *testing.T) {
	svc, advance := newTestService(t)
	startToday(t, svc)

	futureKey := svc.now().AddDate(0, 0, 2).Format("2006-01-02")
	q := svc.CreateQuest(CreateQuestInput{Title: "ahead of time", PlannedDate: futureKey, Rewards: Rewards{XP: 30}})

	svc.CompleteQuestEarly(q.ID)

	got, _ := svc.QuestByPrefix(q.ID)
	if got.Status != StatusPlanned {
		t.Fatalf("early-completed quest status = %q, want planned", got.Status)
	}
	if !got.CompletedEarly || got.EarlyCompletionDate != todayKeyOf(svc) {
		t.Fatalf("early completion not recorded: %+v", got)
	}
	if xp := svc.Profile().XPTotal; xp != 30 {
		t.Fatalf("XP = %d, want 30", xp)
	}

	// On its planned date the quest still activates normally.
	advance(48 * time.Hour)
	svc.SyncDayForToday()
	startToday(t, svc)
	got, _ = svc.QuestByPrefix(q.ID)
	if got.Status != StatusActive {
		t.Fatalf("quest on planned date = %q, want active", got.Status)
	}
}

func TestCompleteQuestEarlyRejectsTodayAndPast(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{Title: "today", PlannedDate: todayKeyOf(svc), Rewards: Rewards{XP: 30}})
	svc.CompleteQuestEarly(q.ID)
	if xp := svc.Profile().XPTotal; xp != 0 {
		t.Fatalf("XP after early-completing today's quest = %d, want 0", xp)
	}
}

func TestSecondChanceRevivesOncePerDay(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 25
	startToday(t, svc)

	a := svc.CreateQuest(CreateQuestInput{Title: "a", PlannedDate: todayKeyOf(svc)})
	b := svc.CreateQuest(CreateQuestInput{Title: "b", PlannedDate: todayKeyOf(svc)})
	svc.FailQuest(a.ID, 0)
	svc.FailQuest(b.ID, 0)

	svc.UseSecondChance(a.ID)
	gotA, _ := svc.QuestByPrefix(a.ID)
	if gotA.Status != StatusActive || !gotA.SecondChanceUsed {
		t.Fatalf("revived quest = %+v, want active with second chance used", gotA)
	}
	if got := svc.Diamonds(); got != 15 {
		t.Fatalf("diamonds after revive = %d, want 15", got)
	}

	// One revival per day.
	svc.UseSecondChance(b.ID)
	gotB, _ := svc.QuestByPrefix(b.ID)
	if gotB.Status != StatusFailed {
		t.Fatalf("second revive should no-op, quest = %q", gotB.Status)
	}
	if got := svc.Diamonds(); got != 15 {
		t.Fatalf("diamonds after refused revive = %d, want 15", got)
	}
}

func TestSecondChanceRequiresBalance(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 9
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{Title: "broke", PlannedDate: todayKeyOf(svc)})
	svc.FailQuest(q.ID, 0)
	svc.UseSecondChance(q.ID)

	got, _ := svc.QuestByPrefix(q.ID)
	if got.Status != StatusFailed {
		t.Fatalf("revive without balance should no-op, quest = %q", got.Status)
	}
}

func TestUpdateQuestRespectsImmutableHistory(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	q := svc.CreateQuest(CreateQuestInput{Title: "old name", PlannedDate: todayKeyOf(svc)})
	svc.CompleteQuest(q.ID)

	svc.UpdateQuest(q.ID, UpdateQuestInput{Title: "new name"})
	got, _ := svc.QuestByPrefix(q.ID)
	if got.Title != "old name" {
		t.Fatalf("completed quest was edited: %q", got.Title)
	}
}

func TestQuestPrefixLookup(t *testing.T) {
	svc, _ := newTestService(t)
	q := svc.CreateQuest(CreateQuestInput{Title: "findme"})

	got, ok := svc.QuestByPrefix(q.ID[:8])
	if !ok || got.ID != q.ID {
		t.Fatalf("prefix lookup failed: ok=%v got=%q want=%q", ok, got.ID, q.ID)
	}
	if _, ok := svc.QuestByPrefix("nope"); ok {
		t.Fatalf("lookup of unknown prefix succeeded")
	}
}
