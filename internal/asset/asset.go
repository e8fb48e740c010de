// Package asset defines bitmap asset identifiers and ownership-scoped handles.
package asset

import (
	"fmt"
	"strings"
)

// ID names an asset in the store. It carries no loading details.
type ID string

// Bitmap is a bitonal image. Rows hold one byte per pixel; Ink marks a set pixel.
type Bitmap struct {
	Width  int
	Height int
	Rows   []string
}

// Ink is the pixel value for a set pixel in Bitmap rows.
const Ink = '#'

// ParseBitmap builds a Bitmap from rows, padding short rows with blank pixels.
func ParseBitmap(rows ...string) Bitmap {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	padded := make([]string, len(rows))
	for i, row := range rows {
		padded[i] = row + strings.Repeat(" ", width-len(row))
	}
	return Bitmap{Width: width, Height: len(rows), Rows: padded}
}

// Set reports whether the pixel at x, y is ink. Out-of-range pixels are blank.
func (b Bitmap) Set(x, y int) bool {
	if y < 0 || y >= len(b.Rows) || x < 0 || x >= len(b.Rows[y]) {
		return false
	}
	return b.Rows[y][x] == Ink
}

// Handle is a loaded asset. A handle is owned by exactly one layer and must be
// released through the store that produced it.
type Handle struct {
	id     ID
	serial uint64
	bitmap Bitmap
	owner  *Ledger
}

// ID returns the asset the handle was loaded from.
func (h *Handle) ID() ID {
	if h == nil {
		return ""
	}
	return h.id
}

// Bitmap returns the pixel data. It panics if the handle was already released.
func (h *Handle) Bitmap() Bitmap {
	if h.owner != nil && !h.owner.owns(h) {
		panic(fmt.Sprintf("asset: use of released handle %s#%d", h.id, h.serial))
	}
	return h.bitmap
}

// Store loads and releases assets.
type Store interface {
	Load(id ID) *Handle
	Release(h *Handle)
}
