package engine

// Stats is the bounded daily stat vector. Mood, Energy, Motivation, Stress
// and Momentum live in [0,100], SleepHours in [0,12]. Money is unbounded and
// may go negative.
type Stats struct {
	Mood       int `json:"mood"`
	Money      int `json:"money"`
	Energy     int `json:"energy"`
	Motivation int `json:"motivation"`
	Stress     int `json:"stress"`
	Momentum   int `json:"momentum"`
	SleepHours int `json:"sleepHours"`
}

// Delta is a sparse stat change. Zero fields leave the stat untouched.
type Delta struct {
	Mood       int `json:"mood,omitempty"`
	Money      int `json:"money,omitempty"`
	Energy     int `json:"energy,omitempty"`
	Motivation int `json:"motivation,omitempty"`
	Stress     int `json:"stress,omitempty"`
	Momentum   int `json:"momentum,omitempty"`
	SleepHours int `json:"sleepHours,omitempty"`
}

// DefaultStats is the baseline used for a freshly created day.
func DefaultStats() Stats {
	return Stats{
		Mood:       70,
		Money:      0,
		Energy:     70,
		Motivation: 60,
		Stress:     30,
		Momentum:   50,
		SleepHours: 7,
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampSleep(v int) int {
	if v < 0 {
		return 0
	}
	if v > 12 {
		return 12
	}
	return v
}

// Apply returns a copy of s with d added under the common clamping rule:
// money is never clamped, sleep clamps to [0,12], everything else to [0,100].
func (s Stats) Apply(d Delta) Stats {
	s.Mood = clamp(s.Mood + d.Mood)
	s.Money += d.Money
	s.Energy = clamp(s.Energy + d.Energy)
	s.Motivation = clamp(s.Motivation + d.Motivation)
	s.Stress = clamp(s.Stress + d.Stress)
	s.Momentum = clamp(s.Momentum + d.Momentum)
	s.SleepHours = clampSleep(s.SleepHours + d.SleepHours)
	return s
}

// Negate flips every field of d. Penalty magnitudes are stored as positive
// costs and applied through this.
func (d Delta) Negate() Delta {
	return Delta{
		Mood:       -d.Mood,
		Money:      -d.Money,
		Energy:     -d.Energy,
		Motivation: -d.Motivation,
		Stress:     -d.Stress,
		Momentum:   -d.Momentum,
		SleepHours: -d.SleepHours,
	}
}

// IsZero reports whether d changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}
