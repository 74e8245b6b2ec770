package engine

import (
	"sort"
	"time"

	"gamelife/internal/clock"
)

// State is the whole persisted game state. It replaces the original global
// store: the application root owns exactly one State inside a Service and
// everything else reads through accessors.
type State struct {
	CurrentStats        Stats                          `json:"currentStats"`
	Days                map[string]*Day                `json:"days"`
	Quests              map[string]*Quest              `json:"quests"`
	Habits              map[string]*Habit              `json:"habits"`
	HabitHistory        []HabitRecord                  `json:"habitHistory"`
	QuickActions        map[string]*QuickAction        `json:"quickActions"`
	QuickActionHistory  []QuickActionRecord            `json:"quickActionHistory"`
	ShopItems           map[string]*ShopItem           `json:"shopItems"`
	Profile             Profile                        `json:"profile"`
	Diamonds            int                            `json:"diamonds"`
	DiamondsEarnedTotal int                            `json:"diamondsEarnedTotal"`
	TimeMeta            TimeMeta                       `json:"timeMeta"`
	PurchaseHistory     []PurchaseRecord               `json:"purchaseHistory"`
	Achievements        map[AchievementID]*Achievement `json:"achievements"`
	LastDayStarted      string                         `json:"lastDayStarted,omitempty"`
	LastSavedAt         string                         `json:"lastSavedAt,omitempty"`
	EpicQuest           *EpicQuest                     `json:"epicQuest,omitempty"`
}

// NewState builds the first-run state: empty stores, baseline stats and an
// inactive day record for today.
func NewState(now time.Time) *State {
	todayKey := clock.DayKey(now)
	st := &State{
		CurrentStats:       DefaultStats(),
		Days:               map[string]*Day{},
		Quests:             map[string]*Quest{},
		Habits:             map[string]*Habit{},
		HabitHistory:       []HabitRecord{},
		QuickActions:       map[string]*QuickAction{},
		QuickActionHistory: []QuickActionRecord{},
		ShopItems:          map[string]*ShopItem{},
		Profile:            Profile{Level: 0, XPTotal: 0, XPHistory: []XPEntry{}},
		TimeMeta: TimeMeta{
			LastTimestamp:  now.UnixMilli(),
			LastActivityAt: now.UnixMilli(),
		},
		PurchaseHistory: []PurchaseRecord{},
		Achievements:    DefaultAchievements(),
	}
	st.Days[todayKey] = &Day{
		ID:         "day-" + todayKey,
		Date:       todayKey,
		Status:     DayInactive,
		StartStats: DefaultStats(),
		Theme:      DefaultTheme,
	}
	return st
}

// DefaultAchievements returns the ten locked achievement records.
func DefaultAchievements() map[AchievementID]*Achievement {
	out := map[AchievementID]*Achievement{}
	add := func(id AchievementID, name, desc, icon string, target, current int) {
		out[id] = &Achievement{
			ID:          id,
			Name:        name,
			Description: desc,
			Icon:        icon,
			Target:      target,
			Current:     current,
		}
	}
	add(AchFoundationLaid, "Foundation Laid", "Reach level 2", "✨", 2, 0)
	add(AchQuestInitiate, "Quest Initiate", "Complete 10 quests", "⚡", 10, 0)
	add(AchSleepStreak, "Sleep Streak", "Sleep 7+ hours for 7 days straight", "🌙", 7, 0)
	add(AchStressSlayer, "Stress Slayer", "Keep stress under 30 for 3 days straight", "🧊", 3, 0)
	add(AchMoneyMaker, "Money Maker", "Hold $100", "💰", 100, 0)
	add(AchMomentumMaster, "Momentum Master", "Reach momentum 80+", "🌊", 80, 0)
	add(AchDailyDominator, "Daily Dominator", "Complete every daily quest 5 days straight", "☀️", 5, 0)
	add(AchHabitHero, "Habit Hero", "Keep 3 habits going 7 days straight", "🔥", 7, 0)
	add(AchDiamondCollector, "Diamond Collector", "Spend 50 diamonds in the shop", "💎", 50, 0)
	add(AchUltimateGL, "Ultimate GL", "Reach level 5 and complete 50 quests", "👑", 1, 0)
	return out
}

// Clone deep-copies the state.
func (st *State) Clone() *State {
	out := *st
	out.Days = map[string]*Day{}
	for k, d := range st.Days {
		cp := *d
		if d.EndStats != nil {
			es := *d.EndStats
			cp.EndStats = &es
		}
		out.Days[k] = &cp
	}
	out.Quests = map[string]*Quest{}
	for k, q := range st.Quests {
		cp := *q
		out.Quests[k] = &cp
	}
	out.Habits = map[string]*Habit{}
	for k, h := range st.Habits {
		cp := *h
		out.Habits[k] = &cp
	}
	out.QuickActions = map[string]*QuickAction{}
	for k, a := range st.QuickActions {
		cp := *a
		out.QuickActions[k] = &cp
	}
	out.ShopItems = map[string]*ShopItem{}
	for k, it := range st.ShopItems {
		cp := *it
		out.ShopItems[k] = &cp
	}
	out.Achievements = map[AchievementID]*Achievement{}
	for k, a := range st.Achievements {
		cp := *a
		out.Achievements[k] = &cp
	}
	out.HabitHistory = append([]HabitRecord(nil), st.HabitHistory...)
	out.QuickActionHistory = append([]QuickActionRecord(nil), st.QuickActionHistory...)
	out.PurchaseHistory = append([]PurchaseRecord(nil), st.PurchaseHistory...)
	out.Profile.XPHistory = append([]XPEntry(nil), st.Profile.XPHistory...)
	if st.EpicQuest != nil {
		eq := *st.EpicQuest
		eq.Steps = append([]EpicQuestStep(nil), st.EpicQuest.Steps...)
		if st.EpicQuest.FinalRewards != nil {
			fr := *st.EpicQuest.FinalRewards
			eq.FinalRewards = &fr
		}
		out.EpicQuest = &eq
	}
	return &out
}

// questCompleted reports completion across the archive boundary: a quest
// archived with a completed FinalStatus still counts as completed.
func questCompleted(q *Quest) bool {
	if q.Status == StatusCompleted {
		return true
	}
	return q.Status == StatusArchived && q.FinalStatus == StatusCompleted
}

// finishedDaysDesc returns finished days with end stats, most recent first.
func (st *State) finishedDaysDesc() []*Day {
	var out []*Day
	for _, d := range st.Days {
		if d.Status == DayFinished && d.EndStats != nil {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
