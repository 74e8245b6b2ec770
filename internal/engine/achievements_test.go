package engine

import (
	"testing"
	"time"
)

func achievement(t *testing.T, svc *Service, id AchievementID) Achievement {
	t.Helper()
	a, ok := svc.state.Achievements[id]
	if !ok {
		t.Fatalf("achievement %q missing", id)
	}
	return *a
}

func TestFoundationLaidUnlocksAtLevelTwo(t *testing.T) {
	svc, _ := newTestService(t)
	startToday(t, svc)

	svc.mu.Lock()
	svc.grantXP(150)
	svc.afterMutation()
	svc.mu.Unlock()

	a := achievement(t, svc, AchFoundationLaid)
	if a.Unlocked {
		t.Fatalf("unlocked at level 1")
	}
	if a.Progress != 50 {
		t.Fatalf("progress = %d, want 50", a.Progress)
	}

	svc.mu.Lock()
	svc.grantXP(50)
	svc.afterMutation()
	svc.mu.Unlock()

	a = achievement(t, svc, AchFoundationLaid)
	if !a.Unlocked || a.Progress != 100 {
		t.Fatalf("at level 2: unlocked=%v progress=%d, want true/100", a.Unlocked, a.Progress)
	}
	if a.UnlockedAt == "" {
		t.Fatalf("UnlockedAt not set")
	}
}

func TestUnlockedAchievementIsFrozen(t *testing.T) {
	svc, _ := newTestService(t)
	svc.ApplyStatsDelta(Delta{Momentum: 40}) // 50 -> 90, unlocks momentum_master

	a := achievement(t, svc, AchMomentumMaster)
	if !a.Unlocked {
		t.Fatalf("momentum_master not unlocked at 90")
	}
	unlockedAt := a.UnlockedAt

	svc.ApplyStatsDelta(Delta{Momentum: -60}) // drop to 30
	a = achievement(t, svc, AchMomentumMaster)
	if !a.Unlocked || a.UnlockedAt != unlockedAt || a.Progress != 100 {
		t.Fatalf("unlock regressed: %+v", a)
	}
}

func TestQuestInitiateCountsArchivedCompletions(t *testing.T) {
	svc, advance := newTestService(t)
	startToday(t, svc)

	for i := 0; i < 6; i++ {
		q := svc.CreateQuest(CreateQuestInput{Title: "q", PlannedDate: todayKeyOf(svc)})
		svc.CompleteQuest(q.ID)
	}

	// Roll the day so completions are archived, then finish four more.
	advance(24 * time.Hour)
	svc.SyncDayForToday()
	startToday(t, svc)
	for i := 0; i < 4; i++ {
		q := svc.CreateQuest(CreateQuestInput{Title: "q2", PlannedDate: todayKeyOf(svc)})
		svc.CompleteQuest(q.ID)
	}

	a := achievement(t, svc, AchQuestInitiate)
	if !a.Unlocked {
		t.Fatalf("quest_initiate locked at 10 completions (current=%d)", a.Current)
	}
}

func TestMoneyMakerIgnoresDebt(t *testing.T) {
	svc, _ := newTestService(t)
	svc.ApplyStatsDelta(Delta{Money: -500})

	a := achievement(t, svc, AchMoneyMaker)
	if a.Current != 0 {
		t.Fatalf("current with negative money = %d, want 0", a.Current)
	}

	svc.ApplyStatsDelta(Delta{Money: 620})
	a = achievement(t, svc, AchMoneyMaker)
	if !a.Unlocked {
		t.Fatalf("money_maker locked at $120")
	}
}

func TestSleepStreakOverFinishedDays(t *testing.T) {
	svc, advance := newTestService(t)

	// Seven finished days sleeping 8h each.
	for i := 0; i < 7; i++ {
		svc.StartDay(Stats{Mood: 70, Energy: 70, SleepHours: 8}, DefaultTheme)
		advance(24 * time.Hour)
		svc.SyncDayForToday()
	}

	a := achievement(t, svc, AchSleepStreak)
	if !a.Unlocked {
		t.Fatalf("sleep_streak locked after 7 days (current=%d)", a.Current)
	}
}

func TestDiamondCollectorSumsPurchases(t *testing.T) {
	svc, _ := newTestService(t)
	svc.state.Diamonds = 100

	it := svc.CreateShopItem(ShopItemInput{Name: "treat", Cost: 25})
	svc.Purchase(it.ID)
	if a := achievement(t, svc, AchDiamondCollector); a.Unlocked || a.Current != 25 {
		t.Fatalf("after one purchase: %+v", a)
	}
	svc.Purchase(it.ID)
	if a := achievement(t, svc, AchDiamondCollector); !a.Unlocked {
		t.Fatalf("diamond_collector locked after spending 50")
	}
}

func TestHabitHeroNeedsThreeDistinctHabits(t *testing.T) {
	svc, advance := newTestService(t)
	h1 := svc.CreateHabit(HabitInput{Name: "a"})
	h2 := svc.CreateHabit(HabitInput{Name: "b"})
	h3 := svc.CreateHabit(HabitInput{Name: "c"})

	for day := 0; day < 7; day++ {
		svc.ExecuteHabit(h1.ID)
		svc.ExecuteHabit(h2.ID)
		svc.ExecuteHabit(h3.ID)
		if day < 6 {
			advance(24 * time.Hour)
		}
	}
	svc.SyncDayForToday()

	a := achievement(t, svc, AchHabitHero)
	if !a.Unlocked {
		t.Fatalf("habit_hero locked after 7 days of 3 habits (current=%d)", a.Current)
	}
}
