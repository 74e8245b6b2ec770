package engine

// Rewards/penalty resolver: the shared delta, XP and diamond rules every
// reward-bearing operation goes through.

const (
	// XPPerLevel derives the profile level: level = xpTotal / 100.
	XPPerLevel = 100

	// DefaultQuestXP is substituted at quest creation when no XP reward
	// is given.
	DefaultQuestXP = 10

	// xpHistoryCap keeps only the most recent entries.
	xpHistoryCap = 30

	// HabitRewardCap bounds XP and diamonds per habit execution.
	HabitRewardCap = 10

	// SecondChanceCost is the diamond price of reviving a failed quest.
	SecondChanceCost = 10
)

// LevelForXP returns the derived level for a total XP amount. Level 0 is
// the floor.
func LevelForXP(xpTotal int) int {
	if xpTotal <= 0 {
		return 0
	}
	return xpTotal / XPPerLevel
}

// mainQuestBonus applies the 1.5x main-quest multiplier, floored.
func mainQuestBonus(v int) int {
	return v * 3 / 2
}

// applyStatsDelta mutates the live stat vector under the common clamping
// rule. Caller holds the lock.
func (s *Service) applyStatsDelta(d Delta) {
	s.state.CurrentStats = s.state.CurrentStats.Apply(d)
}

// grantXP adds XP, re-derives the level and merges the gain into today's
// XP history entry, truncating history to the most recent 30 days.
func (s *Service) grantXP(xp int) {
	if xp == 0 {
		return
	}
	p := &s.state.Profile
	p.XPTotal += xp
	p.Level = LevelForXP(p.XPTotal)

	todayKey := s.todayKey()
	merged := false
	for i := range p.XPHistory {
		if p.XPHistory[i].Date == todayKey {
			p.XPHistory[i].XP += xp
			merged = true
			break
		}
	}
	if !merged {
		p.XPHistory = append(p.XPHistory, XPEntry{Date: todayKey, XP: xp})
	}
	if len(p.XPHistory) > xpHistoryCap {
		p.XPHistory = p.XPHistory[len(p.XPHistory)-xpHistoryCap:]
	}

	if d, ok := s.state.Days[todayKey]; ok && d.Status == DayActive {
		d.XPGained += xp
	}
}

// grantDiamonds adds earned diamonds and tracks the lifetime total.
func (s *Service) grantDiamonds(n int) {
	if n == 0 {
		return
	}
	s.state.Diamonds += n
	s.state.DiamondsEarnedTotal += n

	todayKey := s.todayKey()
	if d, ok := s.state.Days[todayKey]; ok && d.Status == DayActive {
		d.DiamondsEarned += n
	}
}

// deductDiamonds removes diamonds, flooring the balance at zero.
func (s *Service) deductDiamonds(n int) {
	if n <= 0 {
		return
	}
	s.state.Diamonds -= n
	if s.state.Diamonds < 0 {
		s.state.Diamonds = 0
	}
}

// grantRewards applies a full reward bundle: stat delta, XP and diamonds.
// withBonus applies the main-quest multiplier to XP and diamonds.
func (s *Service) grantRewards(r Rewards, withBonus bool) {
	s.applyStatsDelta(r.Stats)
	xp, diamonds := r.XP, r.Diamonds
	if withBonus {
		xp = mainQuestBonus(xp)
		diamonds = mainQuestBonus(diamonds)
	}
	s.grantXP(xp)
	s.grantDiamonds(diamonds)
}

// ApplyStatsDelta is the direct stat adjustment (stat sliders in the UI).
func (s *Service) ApplyStatsDelta(d Delta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyStatsDelta(d)
	s.afterMutation()
}
