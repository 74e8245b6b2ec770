package engine

import (
	"context"
	"log"
	"time"
)

// Background tickers. Both stop when ctx is cancelled.

// RunAutosave saves the state on a fixed interval. Errors are logged and
// swallowed; a failed autosave must never take the app down.
func (s *Service) RunAutosave(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Save(ctx); err != nil {
				log.Printf("autosave: %v", err)
			}
		}
	}
}

// RunClock feeds the rollback detector and re-syncs the day when the
// calendar date flips while the app is open.
func (s *Service) RunClock(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.TouchTime()
			s.SyncDayForToday()
		}
	}
}
