package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/render"
	"github.com/five82/spriteclock/internal/theme"
)

// screen is the terminal render.Sink. It keeps the last state written to
// each layer and redraws a layer's cell block only after it was marked dirty.
//
// The display is bitonal: every bitmap pixel is either ink or paper from the
// palette. A set pixel is ink under Normal compositing and paper under
// Inverted compositing.
type screen struct {
	palette theme.Palette
	layers  map[render.LayerID]*layerState
	dirty   map[render.LayerID]bool
	cache   map[render.LayerID]string
	redraws map[render.LayerID]int
}

type layerState struct {
	text   string
	bitmap *asset.Handle
	fg, bg theme.Color
	mode   theme.CompositingMode
}

func newScreen(p theme.Palette) *screen {
	return &screen{
		palette: p,
		layers:  make(map[render.LayerID]*layerState),
		dirty:   make(map[render.LayerID]bool),
		cache:   make(map[render.LayerID]string),
		redraws: make(map[render.LayerID]int),
	}
}

func (s *screen) layer(id render.LayerID) *layerState {
	l, ok := s.layers[id]
	if !ok {
		l = &layerState{fg: s.palette.Ink, bg: s.palette.Paper}
		s.layers[id] = l
	}
	return l
}

func (s *screen) SetText(id render.LayerID, text string) {
	s.layer(id).text = text
}

func (s *screen) SetBitmap(id render.LayerID, h *asset.Handle) {
	s.layer(id).bitmap = h
}

func (s *screen) SetColors(id render.LayerID, fg, bg theme.Color) {
	l := s.layer(id)
	l.fg, l.bg = fg, bg
}

func (s *screen) SetCompositingMode(id render.LayerID, mode theme.CompositingMode) {
	s.layer(id).mode = mode
}

func (s *screen) MarkDirty(id render.LayerID) {
	s.dirty[id] = true
}

// flush redraws every dirty layer and returns how many were redrawn.
func (s *screen) flush() int {
	n := 0
	for _, id := range render.Layers {
		if !s.dirty[id] {
			continue
		}
		s.cache[id] = s.draw(id)
		s.redraws[id]++
		delete(s.dirty, id)
		n++
	}
	return n
}

func (s *screen) draw(id render.LayerID) string {
	l := s.layer(id)
	switch id {
	case render.LayerWindow:
		return ""
	case render.LayerTime:
		return s.textStyle(l).Bold(true).Render(spaced(l.text))
	case render.LayerDate:
		return s.textStyle(l).Render(l.text)
	case render.LayerSprite:
		return s.bitmap(l, SpriteScale)
	default:
		return s.bitmap(l, GlyphScale)
	}
}

func (s *screen) textStyle(l *layerState) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(l.fg)).
		Background(lipgloss.Color(l.bg)).
		Width(FaceWidth).
		Align(lipgloss.Center)
}

// bitmap draws a layer's bitmap with half-block cells, two pixel rows per
// terminal row. Ink is always the foreground and paper the background, so
// the cell character alone encodes the pixels.
func (s *screen) bitmap(l *layerState, scale int) string {
	if l.bitmap == nil {
		return ""
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.palette.Ink)).
		Background(lipgloss.Color(s.palette.Paper))

	rows := halfBlocks(l.bitmap.Bitmap(), l.mode == theme.Inverted, scale)
	for i, row := range rows {
		rows[i] = style.Render(row)
	}
	return strings.Join(rows, "\n")
}

// halfBlocks converts a bitmap to rows of half-block characters. A pixel
// row past the bottom edge counts as unset, so it is inked when inverted.
func halfBlocks(b asset.Bitmap, inverted bool, scale int) []string {
	if scale < 1 {
		scale = 1
	}
	ink := func(x, y int) bool {
		return b.Set(x, y) != inverted
	}
	rows := make([]string, 0, (b.Height+1)/2)
	for y := 0; y < b.Height; y += 2 {
		var row strings.Builder
		for x := 0; x < b.Width; x++ {
			top, bottom := ink(x, y), ink(x, y+1)
			var cell string
			switch {
			case top && bottom:
				cell = "█"
			case top:
				cell = "▀"
			case bottom:
				cell = "▄"
			default:
				cell = " "
			}
			row.WriteString(strings.Repeat(cell, scale))
		}
		rows = append(rows, row.String())
	}
	return rows
}

// spaced puts a space between the characters of the time so it reads larger.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// view composes the cached layers into the face.
func (s *screen) view() string {
	window := s.layer(render.LayerWindow)
	fill := NewBgStyle(string(window.bg))

	bluetooth := s.cache[render.LayerBluetooth]
	battery := s.cache[render.LayerBattery]
	gap := FaceWidth - lipgloss.Width(bluetooth) - lipgloss.Width(battery)
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		bluetooth,
		fill.Spaces(gap),
		battery,
	)

	lines := []string{
		fill.FillLine(status, FaceWidth),
		fill.Spaces(FaceWidth),
		lipgloss.PlaceHorizontal(FaceWidth, lipgloss.Center, s.cache[render.LayerSprite],
			lipgloss.WithWhitespaceBackground(lipgloss.Color(window.bg))),
		fill.Spaces(FaceWidth),
		s.cache[render.LayerTime],
		s.cache[render.LayerDate],
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// windowColors returns the window layer's colors.
func (s *screen) windowColors() (fg, bg theme.Color) {
	w := s.layer(render.LayerWindow)
	return w.fg, w.bg
}
