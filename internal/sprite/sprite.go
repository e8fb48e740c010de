// Package sprite holds the decorative sprite catalog and the rotator that
// walks it one entry per tick.
package sprite

import (
	"math/rand/v2"

	"github.com/five82/spriteclock/internal/asset"
)

var catalog = [...]asset.ID{
	"kby_backdrop",
	"kby_ball",
	"kby_beam",
	"kby_crash",
	"kby_cutter",
	"kby_fire",
	"kby_fireball",
	"kby_freeze",
	"kby_hammer",
	"kby_hijump",
	"kby_ice",
	"kby_laser",
	"kby_light",
	"kby_mike",
	"kby_needle",
	"kby_parasol",
	"kby_sleep",
	"kby_spark",
	"kby_stone",
	"kby_sword",
	"kby_throw",
	"kby_tornado",
	"kby_ufo",
	"kby_wheel",
}

// Size is the number of entries in the catalog.
const Size = len(catalog)

// Catalog returns a copy of the sprite catalog in rotation order.
func Catalog() []asset.ID {
	out := make([]asset.ID, Size)
	copy(out, catalog[:])
	return out
}

// Rotator cycles through a catalog. It is not safe for concurrent use.
type Rotator struct {
	catalog []asset.ID
	index   int
}

// NewRotator returns a rotator positioned at start, taken modulo the
// catalog length. The catalog must not be empty.
func NewRotator(catalog []asset.ID, start int) *Rotator {
	if len(catalog) == 0 {
		panic("sprite: empty catalog")
	}
	items := make([]asset.ID, len(catalog))
	copy(items, catalog)
	r := &Rotator{catalog: items}
	r.index = r.wrap(start)
	return r
}

// RandomStart returns a uniform index in [0, n).
func RandomStart(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// Next returns the entry at the current index and then advances by one.
func (r *Rotator) Next() asset.ID {
	id := r.catalog[r.index]
	r.index = r.wrap(r.index + 1)
	return id
}

// Rewind steps back one entry so the next call to Next repeats the last one.
func (r *Rotator) Rewind() {
	r.index = r.wrap(r.index - 1)
}

// Index returns the position Next will read.
func (r *Rotator) Index() int {
	return r.index
}

// Len returns the catalog length.
func (r *Rotator) Len() int {
	return len(r.catalog)
}

func (r *Rotator) wrap(i int) int {
	n := len(r.catalog)
	return ((i % n) + n) % n
}
