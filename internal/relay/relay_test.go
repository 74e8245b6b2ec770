package relay

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2024, 3, 10, hour, 30, 0, 0, time.Local)
}

func TestCanNotifyQuietHours(t *testing.T) {
	// Standard window: quiet from 0:00 to 8:00.
	if CanNotify(at(3), 0, 8) {
		t.Fatalf("notified inside quiet hours")
	}
	if !CanNotify(at(9), 0, 8) {
		t.Fatalf("suppressed outside quiet hours")
	}
	if !CanNotify(at(8), 0, 8) {
		t.Fatalf("suppressed at window end (end is exclusive)")
	}

	// Wrapping window: quiet from 22:00 to 6:00.
	if CanNotify(at(23), 22, 6) {
		t.Fatalf("notified at 23:00 in wrapping window")
	}
	if CanNotify(at(2), 22, 6) {
		t.Fatalf("notified at 02:00 in wrapping window")
	}
	if !CanNotify(at(12), 22, 6) {
		t.Fatalf("suppressed at noon in wrapping window")
	}

	// Disabled.
	if !CanNotify(at(3), 0, 0) {
		t.Fatalf("suppressed with quiet hours disabled")
	}
}

func TestPickMessageMentionsCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	msg := PickMessage(rng, Digest{PendingQuests: 2, OverdueQuests: 1, EpicProgress: 40})

	if !strings.Contains(msg, "1 quest(s) overdue") {
		t.Fatalf("message missing overdue count: %q", msg)
	}
	if !strings.Contains(msg, "2 quest(s) pending") {
		t.Fatalf("message missing pending count: %q", msg)
	}
	if !strings.Contains(msg, "40%") {
		t.Fatalf("message missing epic progress: %q", msg)
	}
}

func TestPickMessageQuietWhenNothingPending(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	msg := PickMessage(rng, Digest{})
	if strings.Contains(msg, "overdue") || strings.Contains(msg, "pending") {
		t.Fatalf("empty digest produced counts: %q", msg)
	}
}
