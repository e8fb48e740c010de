package device

import (
	"context"
	"log"
	"time"

	"github.com/five82/spriteclock/internal/state"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
)

// Watcher polls a Source, records samples in a Store and emits an Event for
// every part of the sample that changed.
type Watcher struct {
	store    *state.Store
	source   Source
	interval time.Duration
	events   chan Event
}

// NewWatcher returns a Watcher. A non-positive interval uses the default.
func NewWatcher(store *state.Store, source Source, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Watcher{
		store:    store,
		source:   source,
		interval: interval,
		events:   make(chan Event, 8),
	}
}

// Events returns the channel change events are delivered on. It is closed
// when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Prime reads once and stores the result without emitting events. Call it
// before Start so the first peek sees real data.
func (w *Watcher) Prime(ctx context.Context) error {
	sample, err := w.source.Read(ctx)
	if err != nil {
		w.store.Update(nil, err)
		return err
	}
	w.store.Update(&sample, nil)
	return nil
}

// Start launches the polling goroutine. It returns immediately.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		defer close(w.events)

		failures := 0
		timer := time.NewTimer(w.interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := w.poll(ctx); err != nil {
				failures++
				log.Printf("device poll failed (%d in a row): %v", failures, err)
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, w.interval))
		}
	}()
}

func (w *Watcher) poll(ctx context.Context) error {
	sample, err := w.source.Read(ctx)
	if err != nil {
		w.store.Update(nil, err)
		return err
	}
	change := w.store.Update(&sample, nil)
	for _, ev := range Events(change, sample) {
		select {
		case w.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// calculateBackoff doubles the interval for every consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
