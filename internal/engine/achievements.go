package engine

import "gamelife/internal/clock"

// Achievement evaluator. Runs synchronously after every mutation; each
// rule recomputes current/progress from scratch and unlocks one-way.
// Unlocked records are frozen and never touched again.

func evaluateAchievements(st *State, nowISO string) {
	level := st.Profile.Level
	completed := 0
	for _, q := range st.Quests {
		if questCompleted(q) {
			completed++
		}
	}

	set := func(id AchievementID, current int, unlocked bool) {
		a, ok := st.Achievements[id]
		if !ok || a.Unlocked {
			return
		}
		a.Current = current
		if a.Target > 0 {
			a.Progress = current * 100 / a.Target
			if a.Progress > 100 {
				a.Progress = 100
			}
		}
		if unlocked {
			a.Unlocked = true
			a.UnlockedAt = nowISO
			a.Progress = 100
		}
	}

	set(AchFoundationLaid, level, level >= 2)
	set(AchQuestInitiate, completed, completed >= 10)

	money := st.CurrentStats.Money
	if money < 0 {
		money = 0
	}
	set(AchMoneyMaker, money, st.CurrentStats.Money >= 100)
	set(AchMomentumMaster, st.CurrentStats.Momentum, st.CurrentStats.Momentum >= 80)

	sleepStreak := st.finishedDayStreak(func(d *Day) bool {
		return d.EndStats.SleepHours >= 7
	})
	set(AchSleepStreak, sleepStreak, sleepStreak >= 7)

	stressStreak := st.finishedDayStreak(func(d *Day) bool {
		return d.EndStats.Stress < 30
	})
	set(AchStressSlayer, stressStreak, stressStreak >= 3)

	dailyStreak := st.finishedDayStreak(func(d *Day) bool {
		dailies, done := 0, 0
		for _, q := range st.Quests {
			if q.PlannedDate != d.Date || q.Category != CategoryDaily {
				continue
			}
			dailies++
			if questCompleted(q) {
				done++
			}
		}
		return dailies > 0 && done == dailies
	})
	set(AchDailyDominator, dailyStreak, dailyStreak >= 5)

	habitStreak := habitDayStreak(st, nowISO)
	set(AchHabitHero, habitStreak, habitStreak >= 7)

	spent := 0
	for _, p := range st.PurchaseHistory {
		spent += p.Cost
	}
	set(AchDiamondCollector, spent, spent >= 50)

	// Composite: progress averages the level and quest halves.
	if a, ok := st.Achievements[AchUltimateGL]; ok && !a.Unlocked {
		lp := level * 100 / 5
		if lp > 100 {
			lp = 100
		}
		qp := completed * 100 / 50
		if qp > 100 {
			qp = 100
		}
		a.Progress = (lp + qp) / 2
		if level >= 5 && completed >= 50 {
			a.Current = 1
			a.Unlocked = true
			a.UnlockedAt = nowISO
			a.Progress = 100
		}
	}
}

// finishedDayStreak counts how many of the most recent finished days
// satisfy ok, stopping at the first miss.
func (st *State) finishedDayStreak(ok func(*Day) bool) int {
	streak := 0
	for _, d := range st.finishedDaysDesc() {
		if !ok(d) {
			break
		}
		streak++
	}
	return streak
}

// habitDayStreak counts consecutive calendar days, ending today, on which
// at least three distinct habits were executed.
func habitDayStreak(st *State, nowISO string) int {
	perDay := map[string]map[string]bool{}
	for _, rec := range st.HabitHistory {
		m := perDay[rec.Date]
		if m == nil {
			m = map[string]bool{}
			perDay[rec.Date] = m
		}
		m[rec.HabitID] = true
	}

	day, err := clock.ParseISO(nowISO)
	if err != nil {
		return 0
	}
	streak := 0
	for {
		key := clock.DayKey(day)
		if len(perDay[key]) < 3 {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
