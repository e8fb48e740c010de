package ui

import (
	"slices"
	"time"

	"github.com/five82/spriteclock/internal/device"
	"github.com/five82/spriteclock/internal/state"
	"github.com/five82/spriteclock/internal/status"
)

// subscribers is a list of callbacks. Callbacks run in subscription order on
// the goroutine that calls emit.
type subscribers[T any] struct {
	fns []*func(T)
}

func (s *subscribers[T]) add(fn func(T)) (unsubscribe func()) {
	p := &fn
	s.fns = append(s.fns, p)
	return func() {
		if i := slices.Index(s.fns, p); i >= 0 {
			s.fns = slices.Delete(s.fns, i, i+1)
		}
	}
}

func (s *subscribers[T]) emit(v T) {
	for _, fn := range slices.Clone(s.fns) {
		(*fn)(v)
	}
}

func (s *subscribers[T]) len() int {
	return len(s.fns)
}

// clockSource reads wall-clock time in the configured location and holds the
// 12h/24h display preference.
type clockSource struct {
	loc    *time.Location
	now    func() time.Time
	use24h bool
}

func (c *clockSource) Now() time.Time {
	return c.at(c.now())
}

func (c *clockSource) Is24Hour() bool {
	return c.use24h
}

func (c *clockSource) at(t time.Time) time.Time {
	return t.In(c.loc)
}

// minuteTicker fans minute ticks out to subscribers. Update feeds it.
type minuteTicker struct {
	subs subscribers[time.Time]
}

func (m *minuteTicker) OnMinuteTick(fn func(now time.Time)) func() {
	return m.subs.add(fn)
}

// deviceServices answers peeks from the sample store and fans watcher events
// out to subscribers. Update feeds it.
type deviceServices struct {
	store   *state.Store
	link    subscribers[bool]
	battery subscribers[status.Battery]
}

func (d *deviceServices) PeekConnected() bool {
	return d.store.Snapshot().Sample.Connected
}

func (d *deviceServices) OnConnectivityChanged(fn func(connected bool)) func() {
	return d.link.add(fn)
}

func (d *deviceServices) PeekState() status.Battery {
	return d.store.Snapshot().Sample.Battery
}

func (d *deviceServices) OnBatteryChanged(fn func(status.Battery)) func() {
	return d.battery.add(fn)
}

func (d *deviceServices) dispatch(ev device.Event) {
	switch ev.Kind {
	case device.BatteryChanged:
		d.battery.emit(ev.Sample.Battery)
	case device.ConnectivityChanged:
		d.link.emit(ev.Sample.Connected)
	}
}
