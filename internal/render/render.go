// Package render commits derived clock-face state to visual layers.
//
// The Committer is the only writer to a Sink. It remembers what each layer
// currently shows, skips writes that would not change anything, releases a
// layer's previous bitmap before installing the next one, and marks only the
// layers it touched as dirty.
package render

import (
	"fmt"

	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/theme"
)

// LayerID identifies one visual layer.
type LayerID int

const (
	LayerWindow LayerID = iota
	LayerTime
	LayerDate
	LayerBluetooth
	LayerBattery
	LayerSprite
)

// Layers lists every layer in paint order.
var Layers = []LayerID{LayerWindow, LayerSprite, LayerTime, LayerDate, LayerBluetooth, LayerBattery}

func (id LayerID) String() string {
	switch id {
	case LayerWindow:
		return "window"
	case LayerTime:
		return "time"
	case LayerDate:
		return "date"
	case LayerBluetooth:
		return "bluetooth"
	case LayerBattery:
		return "battery"
	case LayerSprite:
		return "sprite"
	default:
		return fmt.Sprintf("LayerID(%d)", int(id))
	}
}

var (
	textLayers   = []LayerID{LayerTime, LayerDate}
	bitmapLayers = []LayerID{LayerBluetooth, LayerBattery, LayerSprite}
)

// IsBitmapLayer reports whether id shows a bitmap.
func IsBitmapLayer(id LayerID) bool {
	for _, l := range bitmapLayers {
		if l == id {
			return true
		}
	}
	return false
}

// Sink is the set of layer primitives provided by the platform.
type Sink interface {
	SetText(id LayerID, text string)
	SetBitmap(id LayerID, h *asset.Handle)
	SetColors(id LayerID, fg, bg theme.Color)
	SetCompositingMode(id LayerID, mode theme.CompositingMode)
	MarkDirty(id LayerID)
}

// Committer applies state to a Sink. It is not safe for concurrent use.
type Committer struct {
	sink    Sink
	assets  asset.Store
	text    map[LayerID]string
	bitmaps map[LayerID]*asset.Handle
	themed  bool
	theme   theme.Theme
}

// NewCommitter returns a Committer writing to sink and loading bitmaps from assets.
func NewCommitter(sink Sink, assets asset.Store) *Committer {
	return &Committer{
		sink:    sink,
		assets:  assets,
		text:    make(map[LayerID]string),
		bitmaps: make(map[LayerID]*asset.Handle),
	}
}

// Text sets the text of a text layer. It returns false when the layer already
// shows s.
func (c *Committer) Text(id LayerID, s string) bool {
	if cur, ok := c.text[id]; ok && cur == s {
		return false
	}
	c.text[id] = s
	c.sink.SetText(id, s)
	c.sink.MarkDirty(id)
	return true
}

// Bitmap replaces the bitmap of a bitmap layer. It returns false when the
// layer already shows asset id.
func (c *Committer) Bitmap(layer LayerID, id asset.ID) bool {
	old, ok := c.bitmaps[layer]
	if ok && old.ID() == id {
		return false
	}
	if ok {
		c.sink.SetBitmap(layer, nil)
		c.assets.Release(old)
		delete(c.bitmaps, layer)
	}
	h := c.assets.Load(id)
	c.bitmaps[layer] = h
	c.sink.SetBitmap(layer, h)
	c.sink.MarkDirty(layer)
	return true
}

// Theme applies t to every themed layer. It returns false when t is already
// applied.
func (c *Committer) Theme(t theme.Theme) bool {
	if c.themed && c.theme == t {
		return false
	}
	c.themed = true
	c.theme = t

	c.sink.SetColors(LayerWindow, t.Foreground, t.Background)
	c.sink.MarkDirty(LayerWindow)
	for _, id := range textLayers {
		c.sink.SetColors(id, t.Foreground, t.Background)
		c.sink.MarkDirty(id)
	}
	for _, id := range bitmapLayers {
		c.sink.SetCompositingMode(id, t.Compositing)
		c.sink.MarkDirty(id)
	}
	return true
}

// Current returns the asset shown on a bitmap layer, if any.
func (c *Committer) Current(layer LayerID) (asset.ID, bool) {
	h, ok := c.bitmaps[layer]
	if !ok {
		return "", false
	}
	return h.ID(), true
}

// Close detaches and releases every bitmap the Committer holds.
func (c *Committer) Close() {
	for _, layer := range bitmapLayers {
		h, ok := c.bitmaps[layer]
		if !ok {
			continue
		}
		c.sink.SetBitmap(layer, nil)
		c.assets.Release(h)
		delete(c.bitmaps, layer)
	}
}
