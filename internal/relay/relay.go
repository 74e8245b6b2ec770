package relay

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gamelife/internal/engine"
)

// The relay condenses engine state into short nudges. It never mutates
// state and knows nothing about transports; callers print or push the
// digest however they like.

// Digest is a point-in-time summary of what needs attention.
type Digest struct {
	PendingQuests int
	OverdueQuests int
	EpicProgress  int
	Habits        int
}

// BuildDigest snapshots the current attention-worthy counts.
func BuildDigest(svc *engine.Service) Digest {
	return Digest{
		PendingQuests: len(svc.PendingToday()),
		OverdueQuests: len(svc.Overdue()),
		EpicProgress:  svc.EpicProgress(),
		Habits:        len(svc.HabitList()),
	}
}

// CanNotify reports whether t falls outside the quiet hours window.
// Start==end disables quiet hours entirely.
func CanNotify(t time.Time, quietStart, quietEnd int) bool {
	if quietStart == quietEnd {
		return true
	}
	h := t.Hour()
	if quietStart < quietEnd {
		return h < quietStart || h >= quietEnd
	}
	// Window wraps midnight.
	return h < quietStart && h >= quietEnd
}

var nudges = []string{
	"Your quests await, hero.",
	"A small step today beats a big plan tomorrow.",
	"The day won't start itself.",
	"Momentum fades when you're away too long.",
	"One quest. Right now. Go.",
}

// PickMessage builds a digest line, prefixed with a random nudge.
func PickMessage(rng *rand.Rand, d Digest) string {
	var b strings.Builder
	b.WriteString(nudges[rng.Intn(len(nudges))])
	if d.OverdueQuests > 0 {
		fmt.Fprintf(&b, " %d quest(s) overdue.", d.OverdueQuests)
	}
	if d.PendingQuests > 0 {
		fmt.Fprintf(&b, " %d quest(s) pending today.", d.PendingQuests)
	}
	if d.EpicProgress > 0 && d.EpicProgress < 100 {
		fmt.Fprintf(&b, " Epic quest at %d%%.", d.EpicProgress)
	}
	return b.String()
}
