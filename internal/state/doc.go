// Package state provides thread-safe storage for the latest device sample.
//
// # Overview
//
// The device watcher runs on its own goroutine and reads battery and
// connectivity state from the host. The clock face runs inside the Bubble Tea
// event loop. Store is the meeting point between the two: the watcher writes,
// the platform adapter peeks.
//
//	Producer (device.Watcher):       Consumer (ui host):
//	┌──────────────────────┐        ┌──────────────────────┐
//	│ source.Read()        │        │                      │
//	│      ↓               │        │                      │
//	│ store.Update()       │───────→│ store.Snapshot()     │
//	│      ↓               │ (mutex)│   PeekConnected()    │
//	│ emit Change events   │        │   PeekState()        │
//	└──────────────────────┘        └──────────────────────┘
//
// # Update Semantics
//
// Update returns a Change describing which parts of the sample differ from
// the stored one. The watcher only emits events for changed parts, which is
// what keeps the clock face from re-resolving glyphs on every poll.
//
//	// Success: replace the sample, clear the error.
//	store.Update(&sample, nil)
//	→ Change{Battery: ..., Connectivity: ...}
//
//	// Failure: keep the sample, record the error.
//	store.Update(nil, err)
//	→ Change{} and ConsecutiveFailures++
//
// The very first successful Update reports both parts as changed.
//
// # Concurrency Model
//
// Update takes the write lock, Snapshot the read lock. Neither holds the lock
// across I/O. Snapshot copies the error so callers never share it with the
// store.
//
// # Testing Considerations
//
// The zero Store is ready to use:
//
//	var store state.Store
//	store.Update(&state.Sample{Connected: true}, nil)
package state
