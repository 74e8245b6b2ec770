package engine

type QuestCategory string

const (
	CategoryDaily QuestCategory = "daily"
	CategoryMain  QuestCategory = "main"
	CategorySide  QuestCategory = "side"
)

func (c QuestCategory) IsValid() bool {
	switch c {
	case CategoryDaily, CategoryMain, CategorySide:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory QuestCategory = CategorySide

type QuestStatus string

const (
	StatusPlanned   QuestStatus = "planned"
	StatusActive    QuestStatus = "active"
	StatusCompleted QuestStatus = "completed"
	StatusFailed    QuestStatus = "failed"
	StatusArchived  QuestStatus = "archived"
)

type DayStatus string

const (
	DayInactive DayStatus = "inactive"
	DayActive   DayStatus = "active"
	DayFinished DayStatus = "finished"
)

type DayTheme string

const (
	ThemeHustleMode           DayTheme = "hustle_mode"
	ThemeZenFocus             DayTheme = "zen_focus"
	ThemeProcrastinatorSlayer DayTheme = "procrastinator_slayer"
	ThemeNightOwl             DayTheme = "night_owl"
	ThemeMomentumBoost        DayTheme = "momentum_boost"
	ThemeMysticVision         DayTheme = "mystic_vision"
)

const DefaultTheme = ThemeHustleMode

// Themes lists all day themes; day auto-creation picks one uniformly.
func Themes() []DayTheme {
	return []DayTheme{
		ThemeHustleMode,
		ThemeZenFocus,
		ThemeProcrastinatorSlayer,
		ThemeNightOwl,
		ThemeMomentumBoost,
		ThemeMysticVision,
	}
}

func (t DayTheme) IsValid() bool {
	switch t {
	case ThemeHustleMode, ThemeZenFocus, ThemeProcrastinatorSlayer,
		ThemeNightOwl, ThemeMomentumBoost, ThemeMysticVision:
		return true
	default:
		return false
	}
}

// Rewards attached to a quest, habit or epic quest.
type Rewards struct {
	Stats    Delta `json:"stats,omitempty"`
	XP       int   `json:"xp,omitempty"`
	Diamonds int   `json:"diamonds,omitempty"`
}

// Quest is a user-created task. An empty PlannedDate marks a permanent
// quest that is always executable and never changes status.
type Quest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    QuestCategory `json:"category"`
	PlannedDate string        `json:"plannedDate,omitempty"`
	ActiveDate  string        `json:"activeDate,omitempty"`
	Status      QuestStatus   `json:"status"`
	Rewards     Rewards       `json:"rewards"`
	Penalties   Delta         `json:"penalties,omitempty"`
	// Diamond cost deducted on failure. PenaltyApplied marks that the
	// deduction already happened so archival does not charge twice.
	PenaltyDiamonds int  `json:"penaltyDiamonds,omitempty"`
	PenaltyApplied  bool `json:"penaltyApplied,omitempty"`
	// FinalStatus snapshots completed/failed at archive time.
	FinalStatus         QuestStatus `json:"finalStatus,omitempty"`
	CreatedAt           string      `json:"createdAt"`
	ExecutedAt          string      `json:"executedAt,omitempty"`
	IsMainQuest         bool        `json:"isMainQuest,omitempty"`
	SecondChanceUsed    bool        `json:"secondChanceUsed,omitempty"`
	CompletedEarly      bool        `json:"completedEarly,omitempty"`
	EarlyCompletionDate string      `json:"earlyCompletionDate,omitempty"`
}

// Day is the record for one calendar day. At most one day is active at any
// time; the day lifecycle engine owns every status transition.
type Day struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	Status           DayStatus `json:"status"`
	StartTime        string    `json:"startTime,omitempty"`
	EndTime          string    `json:"endTime,omitempty"`
	StartStats       Stats     `json:"startStats"`
	EndStats         *Stats    `json:"endStats,omitempty"`
	Theme            DayTheme  `json:"theme,omitempty"`
	MainQuestID      string    `json:"mainQuestId,omitempty"`
	XPGained         int       `json:"xpGained,omitempty"`
	DiamondsEarned   int       `json:"diamondsEarned,omitempty"`
	SecondChanceUsed bool      `json:"secondChanceUsed,omitempty"`

	MorningRoutineCompleted   bool   `json:"morningRoutineCompleted,omitempty"`
	MorningRoutineCompletedAt string `json:"morningRoutineCompletedAt,omitempty"`
}

type XPEntry struct {
	Date string `json:"date"`
	XP   int    `json:"xp"`
}

// Profile holds lifetime progression. Level is always derived from XPTotal.
type Profile struct {
	Level     int       `json:"level"`
	XPTotal   int       `json:"xpTotal"`
	XPHistory []XPEntry `json:"xpHistory"`
}

// HabitEffect bundles the stat delta plus the capped XP/diamond bonus of a
// habit execution.
type HabitEffect struct {
	Stats    Delta `json:"stats,omitempty"`
	XP       int   `json:"xp,omitempty"`
	Diamonds int   `json:"diamonds,omitempty"`
}

// Habit is a permanent, date-free action. Executions are events in the
// habit history, the habit itself never changes state.
type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Effect      HabitEffect `json:"effect"`
	CreatedAt   string      `json:"createdAt"`
}

type HabitRecord struct {
	ID         string      `json:"id"`
	HabitID    string      `json:"habitId"`
	HabitName  string      `json:"habitName"`
	Date       string      `json:"date"`
	ExecutedAt string      `json:"executedAt"`
	Effect     HabitEffect `json:"effect"`
}

// QuickAction is an instantaneous stat-delta trigger.
type QuickAction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Effect      Delta  `json:"effect"`
	CreatedAt   string `json:"createdAt"`
}

type QuickActionRecord struct {
	ID            string `json:"id"`
	QuickActionID string `json:"quickActionId"`
	Name          string `json:"quickActionName"`
	Date          string `json:"date"`
	ExecutedAt    string `json:"executedAt"`
	Effect        Delta  `json:"effect"`
}

type ShopItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Cost            int    `json:"cost"`
	Effect          Delta  `json:"effect,omitempty"`
	NarrativeAction string `json:"narrativeAction,omitempty"`
	CreatedAt       string `json:"createdAt"`
}

type PurchaseRecord struct {
	ID           string `json:"id"`
	ItemID       string `json:"itemId"`
	ItemName     string `json:"itemName"`
	Cost         int    `json:"cost"`
	PurchaseDate string `json:"purchaseDate"`
}

type EpicQuestStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// EpicQuest is the single long-running multi-step quest. CurrentStepIndex
// points at the first incomplete step, or -1 once every step is done.
type EpicQuest struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	Steps            []EpicQuestStep `json:"steps"`
	CurrentStepIndex int             `json:"currentStepIndex"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
	FinalRewards     *Rewards        `json:"finalRewards,omitempty"`
	// FinalRewardsGranted guards the one-time payout when the last step
	// completes.
	FinalRewardsGranted bool `json:"finalRewardsGranted,omitempty"`
}

type AchievementID string

const (
	AchFoundationLaid   AchievementID = "foundation_laid"
	AchQuestInitiate    AchievementID = "quest_initiate"
	AchSleepStreak      AchievementID = "sleep_streak"
	AchStressSlayer     AchievementID = "stress_slayer"
	AchMoneyMaker       AchievementID = "money_maker"
	AchMomentumMaster   AchievementID = "momentum_master"
	AchDailyDominator   AchievementID = "daily_dominator"
	AchHabitHero        AchievementID = "habit_hero"
	AchDiamondCollector AchievementID = "diamond_collector"
	AchUltimateGL       AchievementID = "ultimate_gl"
)

// Achievement unlocks are one-way; current/progress freeze once unlocked.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Unlocked    bool          `json:"unlocked"`
	UnlockedAt  string        `json:"unlockedAt,omitempty"`
	Progress    int           `json:"progress"`
	Target      int           `json:"target"`
	Current     int           `json:"current"`
}

// TimeMeta backs the heuristic clock-rollback detector. TimeSuspicious is
// sticky and never cleared automatically.
type TimeMeta struct {
	LastTimestamp  int64 `json:"lastTimestamp"`
	LastActivityAt int64 `json:"lastActivityAt"`
	TimeSuspicious bool  `json:"timeSuspicious"`
}

// AggregatedStats is the lifetime summary shown on the profile page.
type AggregatedStats struct {
	TotalDays       int `json:"totalDays"`
	CompletedQuests int `json:"completedQuests"`
	FailedQuests    int `json:"failedQuests"`
	DiamondsEarned  int `json:"diamondsEarned"`
	XPGained        int `json:"xpGained"`
}
