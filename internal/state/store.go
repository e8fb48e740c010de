package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/spriteclock/internal/status"
)

// Sample is one reading of the device services.
type Sample struct {
	Battery   status.Battery
	Connected bool
}

// Change reports which parts of a sample differ from the stored one.
type Change struct {
	Battery      bool
	Connectivity bool
}

// Any reports whether anything changed.
func (c Change) Any() bool {
	return c.Battery || c.Connectivity
}

// Snapshot represents the latest device data available to the clock face.
type Snapshot struct {
	Sample              Sample
	HasSample           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive read failures
}

// IsStale returns true when the device has been unreadable for multiple polls.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored sample and reports what changed. When err is
// non-nil the previous sample is kept but the error is recorded for
// visibility. The first successful sample reports every part as changed.
func (s *Store) Update(sample *Sample, err error) Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return Change{}
	}
	if sample == nil {
		return Change{}
	}

	prev, had := s.snapshot.Sample, s.snapshot.HasSample
	change := Change{
		Battery:      !had || prev.Battery != sample.Battery,
		Connectivity: !had || prev.Connected != sample.Connected,
	}

	s.snapshot.Sample = *sample
	s.snapshot.HasSample = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return change
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
