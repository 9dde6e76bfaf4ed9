// Package refresh tracks elapsed time since the last full dashboard reload.
// The state is explicit and passed through the cycle rather than hidden in a
// global; the check is advisory, so effective latency is bounded by how often
// the host calls it, not by wall-clock precision.
package refresh

import (
	"sync"
	"time"
)

// State holds the single process-wide last-refresh timestamp.
type State struct {
	mu   sync.Mutex
	last time.Time
}

// NewState creates a state that considers now the moment of the last refresh.
func NewState(now time.Time) *State {
	return &State{last: now}
}

// Check transitions Idle -> Due when more than interval has elapsed since the
// last refresh. On transition the last-refresh timestamp resets to now and
// Check reports true; otherwise it reports false and leaves the state alone.
func (s *State) Check(now time.Time, interval time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.last) > interval {
		s.last = now
		return true
	}
	return false
}

// Reset marks now as the moment of the last refresh regardless of state.
func (s *State) Reset(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = now
}

// Last returns the last-refresh timestamp.
func (s *State) Last() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Loop serializes full reloads of the dashboard. Run is the full recompute;
// it is never invoked concurrently with itself.
type Loop struct {
	mu       sync.Mutex
	State    *State
	Interval time.Duration
	Run      func()
}

// Tick runs the reload when the interval has elapsed. It reports whether a
// reload happened. The check is advisory: when a reload is already in flight
// Tick returns immediately instead of queueing behind it.
func (l *Loop) Tick(now time.Time) bool {
	if !l.mu.TryLock() {
		return false
	}
	defer l.mu.Unlock()

	if !l.State.Check(now, l.Interval) {
		return false
	}
	l.Run()
	return true
}

// Force runs the reload unconditionally and resets the refresh timestamp.
func (l *Loop) Force(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.State.Reset(now)
	l.Run()
}
