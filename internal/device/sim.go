package device

import (
	"context"
	"sync"

	"github.com/five82/spriteclock/internal/state"
	"github.com/five82/spriteclock/internal/status"
)

const (
	simDrainStep    = 3
	simChargeStep   = 10
	simPlugAt       = 8
	simFullHold     = 3
	simLinkPeriod   = 40
	simLinkDownFrom = 30
)

// SimSource is a scripted device for running without hardware. Each Read
// advances one step: the battery drains until it is nearly empty, charges to
// full, stays on power for a few steps and unplugs again; the phone link drops
// for the last quarter of every link period.
type SimSource struct {
	mu       sync.Mutex
	step     int
	battery  status.Battery
	fullHold int
}

// NewSimSource returns a simulator starting at percent charge, unplugged.
func NewSimSource(percent int) *SimSource {
	return &SimSource{battery: status.Battery{ChargePercent: percent}.Clamped()}
}

// Read implements Source.
func (s *SimSource) Read(ctx context.Context) (state.Sample, error) {
	if err := ctx.Err(); err != nil {
		return state.Sample{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sample := state.Sample{
		Battery:   s.battery,
		Connected: s.step%simLinkPeriod < simLinkDownFrom,
	}
	s.advance()
	return sample, nil
}

func (s *SimSource) advance() {
	s.step++
	b := &s.battery
	switch {
	case b.Plugged && b.Charging:
		b.ChargePercent = min(100, b.ChargePercent+simChargeStep)
		if b.ChargePercent == 100 {
			b.Charging = false
			s.fullHold = simFullHold
		}
	case b.Plugged:
		s.fullHold--
		if s.fullHold <= 0 {
			b.Plugged = false
		}
	case b.ChargePercent <= simPlugAt:
		b.Plugged = true
		b.Charging = true
	default:
		b.ChargePercent = max(0, b.ChargePercent-simDrainStep)
	}
}
