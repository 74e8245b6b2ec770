package engine

import "time"

// Clock-rollback heuristic: the wall clock jumping more than five minutes
// behind the last observed timestamp flags the state as time-suspicious.
// The flag is sticky; only an explicit acknowledgement clears it.

const clockSkewTolerance = 5 * time.Minute

// TouchTime records a clock observation. Called by the minute ticker and
// on startup.
func (s *Service) TouchTime() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	meta := &s.state.TimeMeta
	if meta.LastTimestamp > 0 && now+clockSkewTolerance.Milliseconds() < meta.LastTimestamp {
		meta.TimeSuspicious = true
	}
	if now > meta.LastTimestamp {
		meta.LastTimestamp = now
	}
}

// RegisterActivity notes a user interaction.
func (s *Service) RegisterActivity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TimeMeta.LastActivityAt = s.now().UnixMilli()
}

// AcknowledgeTimeSuspicion clears the sticky rollback flag.
func (s *Service) AcknowledgeTimeSuspicion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TimeMeta.TimeSuspicious = false
}
