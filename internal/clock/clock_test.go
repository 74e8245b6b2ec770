package clock

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	d := time.Date(2024, 1, 2, 23, 59, 59, 0, time.Local)
	if got := DayKey(d); got != "2024-01-02" {
		t.Fatalf("DayKey=%q, want 2024-01-02", got)
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	d, err := ParseDayKey("2024-03-15")
	if err != nil {
		t.Fatalf("ParseDayKey: %v", err)
	}
	if got := DayKey(d); got != "2024-03-15" {
		t.Fatalf("round trip=%q, want 2024-03-15", got)
	}
	if _, err := ParseDayKey("15/03/2024"); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestDiffHours(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	to := time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC).UnixMilli()
	if got := DiffHours(from, to); got != 6.5 {
		t.Fatalf("DiffHours=%v, want 6.5", got)
	}
}
