package asset

import (
	"fmt"
	"sort"
)

// Loader produces the bitmap for an asset ID.
type Loader func(id ID) (Bitmap, error)

// Ledger is a Store that tracks every live handle. Releasing a handle twice,
// releasing a handle from another ledger, or loading an unknown asset are
// contract violations and panic.
type Ledger struct {
	load  Loader
	next  uint64
	live  map[uint64]*Handle
	loads int
	frees int
}

// NewLedger returns a Ledger that loads bitmaps with load.
func NewLedger(load Loader) *Ledger {
	return &Ledger{load: load, live: make(map[uint64]*Handle)}
}

// Load returns a new handle for id.
func (l *Ledger) Load(id ID) *Handle {
	bitmap, err := l.load(id)
	if err != nil {
		panic(fmt.Sprintf("asset: load %s: %v", id, err))
	}
	l.next++
	h := &Handle{id: id, serial: l.next, bitmap: bitmap, owner: l}
	l.live[h.serial] = h
	l.loads++
	return h
}

// Release frees h. A nil handle is ignored.
func (l *Ledger) Release(h *Handle) {
	if h == nil {
		return
	}
	if h.owner != l {
		panic(fmt.Sprintf("asset: release of foreign handle %s#%d", h.id, h.serial))
	}
	if _, ok := l.live[h.serial]; !ok {
		panic(fmt.Sprintf("asset: double release of %s#%d", h.id, h.serial))
	}
	delete(l.live, h.serial)
	l.frees++
}

// Live returns the IDs of handles that have been loaded but not released,
// in load order.
func (l *Ledger) Live() []ID {
	serials := make([]uint64, 0, len(l.live))
	for serial := range l.live {
		serials = append(serials, serial)
	}
	sort.Slice(serials, func(i, j int) bool { return serials[i] < serials[j] })
	ids := make([]ID, len(serials))
	for i, serial := range serials {
		ids[i] = l.live[serial].id
	}
	return ids
}

// Counts returns the total number of loads and releases.
func (l *Ledger) Counts() (loads, releases int) {
	return l.loads, l.frees
}

func (l *Ledger) owns(h *Handle) bool {
	_, ok := l.live[h.serial]
	return ok
}
