// Package rendertest provides a recording render.Sink for tests.
package rendertest

import (
	"fmt"

	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/render"
	"github.com/five82/spriteclock/internal/theme"
)

// Layer is the last state written to one layer.
type Layer struct {
	Text        string
	Bitmap      *asset.Handle
	Foreground  theme.Color
	Background  theme.Color
	Compositing theme.CompositingMode
}

// Sink records every call and the resulting layer state.
type Sink struct {
	Layers map[render.LayerID]*Layer
	Dirty  map[render.LayerID]int
	Calls  []string
}

// NewSink returns an empty recording sink.
func NewSink() *Sink {
	return &Sink{
		Layers: make(map[render.LayerID]*Layer),
		Dirty:  make(map[render.LayerID]int),
	}
}

func (s *Sink) layer(id render.LayerID) *Layer {
	l, ok := s.Layers[id]
	if !ok {
		l = &Layer{}
		s.Layers[id] = l
	}
	return l
}

func (s *Sink) SetText(id render.LayerID, text string) {
	s.layer(id).Text = text
	s.Calls = append(s.Calls, fmt.Sprintf("text %s %q", id, text))
}

func (s *Sink) SetBitmap(id render.LayerID, h *asset.Handle) {
	s.layer(id).Bitmap = h
	s.Calls = append(s.Calls, fmt.Sprintf("bitmap %s %s", id, h.ID()))
}

func (s *Sink) SetColors(id render.LayerID, fg, bg theme.Color) {
	l := s.layer(id)
	l.Foreground, l.Background = fg, bg
	s.Calls = append(s.Calls, fmt.Sprintf("colors %s %s %s", id, fg, bg))
}

func (s *Sink) SetCompositingMode(id render.LayerID, mode theme.CompositingMode) {
	s.layer(id).Compositing = mode
	s.Calls = append(s.Calls, fmt.Sprintf("mode %s %s", id, mode))
}

func (s *Sink) MarkDirty(id render.LayerID) {
	s.Dirty[id]++
	s.Calls = append(s.Calls, fmt.Sprintf("dirty %s", id))
}

// Reset forgets recorded calls and dirty counts but keeps layer state.
func (s *Sink) Reset() {
	s.Calls = nil
	s.Dirty = make(map[render.LayerID]int)
}

// BitmapID returns the asset shown on a layer, or "" if none.
func (s *Sink) BitmapID(id render.LayerID) asset.ID {
	l, ok := s.Layers[id]
	if !ok {
		return ""
	}
	return l.Bitmap.ID()
}
