package engine

import (
	"testing"
	"time"
)

func TestTouchTimeFlagsRollback(t *testing.T) {
	svc, advance := newTestService(t)
	svc.TouchTime()
	if svc.TimeMeta().TimeSuspicious {
		t.Fatalf("fresh state flagged suspicious")
	}

	// Small backwards drift stays within tolerance.
	advance(-2 * time.Minute)
	svc.TouchTime()
	if svc.TimeMeta().TimeSuspicious {
		t.Fatalf("2 minute drift flagged suspicious")
	}

	advance(-30 * time.Minute)
	svc.TouchTime()
	if !svc.TimeMeta().TimeSuspicious {
		t.Fatalf("30 minute rollback not flagged")
	}

	// The flag is sticky until acknowledged.
	advance(2 * time.Hour)
	svc.TouchTime()
	if !svc.TimeMeta().TimeSuspicious {
		t.Fatalf("flag cleared without acknowledgement")
	}
	svc.AcknowledgeTimeSuspicion()
	if svc.TimeMeta().TimeSuspicious {
		t.Fatalf("flag survived acknowledgement")
	}
}
