// Package watchface drives the clock face: it owns the theme engine, the
// sprite rotator and the render committer for one session, and exposes one
// handler per platform event.
//
// Handlers must be called from a single goroutine. Each one completes
// synchronously and touches only the layers its event affects.
package watchface

import (
	"time"

	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/clock"
	"github.com/five82/spriteclock/internal/render"
	"github.com/five82/spriteclock/internal/sprite"
	"github.com/five82/spriteclock/internal/status"
	"github.com/five82/spriteclock/internal/theme"
)

// TimeSource supplies wall-clock time and the 12h/24h display preference.
type TimeSource interface {
	Now() time.Time
	Is24Hour() bool
}

// ConnectivityService reports the phone link state.
type ConnectivityService interface {
	PeekConnected() bool
	OnConnectivityChanged(fn func(connected bool)) (unsubscribe func())
}

// BatteryService reports the battery state.
type BatteryService interface {
	PeekState() status.Battery
	OnBatteryChanged(fn func(status.Battery)) (unsubscribe func())
}

// TickScheduler calls back once per minute boundary.
type TickScheduler interface {
	OnMinuteTick(fn func(now time.Time)) (unsubscribe func())
}

// Options configure a Watchface.
type Options struct {
	Time         TimeSource
	Connectivity ConnectivityService
	Battery      BatteryService
	Ticks        TickScheduler
	Sink         render.Sink
	Assets       asset.Store

	Palette    theme.Palette
	DayStart   int
	NightStart int

	Catalog []asset.ID // empty uses sprite.Catalog()
	Start   int        // first sprite index; see sprite.RandomStart
}

// Watchface holds all state for one session.
type Watchface struct {
	time         TimeSource
	connectivity ConnectivityService
	battery      BatteryService
	ticks        TickScheduler

	engine    *theme.Engine
	rotator   *sprite.Rotator
	committer *render.Committer

	unsubscribe []func()
	started     bool
}

// New builds a Watchface. Nothing is drawn until Start.
func New(opts Options) *Watchface {
	palette := opts.Palette
	if palette == (theme.Palette{}) {
		palette = theme.DefaultPalette
	}
	dayStart, nightStart := opts.DayStart, opts.NightStart
	if dayStart == 0 && nightStart == 0 {
		dayStart, nightStart = theme.DayStart, theme.NightStart
	}
	catalog := opts.Catalog
	if len(catalog) == 0 {
		catalog = sprite.Catalog()
	}

	return &Watchface{
		time:         opts.Time,
		connectivity: opts.Connectivity,
		battery:      opts.Battery,
		ticks:        opts.Ticks,
		engine:       theme.NewEngine(palette, dayStart, nightStart),
		rotator:      sprite.NewRotator(catalog, opts.Start),
		committer:    render.NewCommitter(opts.Sink, opts.Assets),
	}
}

// Start paints the initial frame and subscribes to platform events.
func (w *Watchface) Start() {
	if w.started {
		return
	}
	w.started = true

	// Layers start out in the Day theme; the synthetic tick below may flip it.
	w.committer.Theme(w.engine.Current())

	if w.connectivity != nil {
		w.unsubscribe = append(w.unsubscribe, w.connectivity.OnConnectivityChanged(w.ConnectivityChanged))
		w.ConnectivityChanged(w.connectivity.PeekConnected())
	}
	if w.battery != nil {
		w.unsubscribe = append(w.unsubscribe, w.battery.OnBatteryChanged(w.BatteryChanged))
		w.BatteryChanged(w.battery.PeekState())
	}

	w.Tick(w.time.Now())
	// Step back so the first scheduled tick shows the same sprite instead of
	// skipping ahead.
	w.rotator.Rewind()

	if w.ticks != nil {
		w.unsubscribe = append(w.unsubscribe, w.ticks.OnMinuteTick(w.Tick))
	}
}

// Tick refreshes time, date, theme and sprite for now.
func (w *Watchface) Tick(now time.Time) {
	sample := clock.NewSample(now, w.time.Is24Hour())
	w.committer.Text(render.LayerTime, sample.Time)
	w.committer.Text(render.LayerDate, sample.Date)

	if t, changed := w.engine.Evaluate(sample.Hour); changed {
		w.committer.Theme(t)
	}

	w.committer.Bitmap(render.LayerSprite, w.rotator.Next())
}

// ConnectivityChanged updates the phone link glyph.
func (w *Watchface) ConnectivityChanged(connected bool) {
	w.committer.Bitmap(render.LayerBluetooth, status.ConnectivityIcon(connected))
}

// BatteryChanged updates the battery glyph.
func (w *Watchface) BatteryChanged(b status.Battery) {
	w.committer.Bitmap(render.LayerBattery, status.BatteryIcon(b))
}

// RefreshTime re-renders the time text, for example after the 12h/24h
// preference changed. It does not advance the sprite.
func (w *Watchface) RefreshTime() {
	sample := clock.NewSample(w.time.Now(), w.time.Is24Hour())
	w.committer.Text(render.LayerTime, sample.Time)
}

// Theme returns the live theme.
func (w *Watchface) Theme() theme.Theme {
	return w.engine.Current()
}

// SpriteIndex returns the catalog index the next tick will show.
func (w *Watchface) SpriteIndex() int {
	return w.rotator.Index()
}

// Stop unsubscribes from platform events and releases every asset.
func (w *Watchface) Stop() {
	for i := len(w.unsubscribe) - 1; i >= 0; i-- {
		w.unsubscribe[i]()
	}
	w.unsubscribe = nil
	w.committer.Close()
	w.started = false
}
