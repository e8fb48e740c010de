// Package device reads battery and phone-link state from the host and turns
// polls into change events.
package device

import (
	"context"

	"github.com/five82/spriteclock/internal/state"
)

// Source reads one device sample.
type Source interface {
	Read(ctx context.Context) (state.Sample, error)
}

// EventKind identifies what changed.
type EventKind int

const (
	BatteryChanged EventKind = iota
	ConnectivityChanged
)

func (k EventKind) String() string {
	switch k {
	case BatteryChanged:
		return "battery"
	case ConnectivityChanged:
		return "connectivity"
	default:
		return "unknown"
	}
}

// Event carries the sample that triggered a change.
type Event struct {
	Kind   EventKind
	Sample state.Sample
}

// Events splits a Change into one event per changed part, battery first.
func Events(change state.Change, sample state.Sample) []Event {
	var events []Event
	if change.Battery {
		events = append(events, Event{Kind: BatteryChanged, Sample: sample})
	}
	if change.Connectivity {
		events = append(events, Event{Kind: ConnectivityChanged, Sample: sample})
	}
	return events
}
