// Package theme implements the day/night theme state machine.
//
// The engine holds one live Theme and only replaces it when the hour crosses
// a day/night boundary. Evaluating the same hour twice never reports a change,
// so callers can run it on every tick and repaint only on transitions.
package theme

import "fmt"

// Default day window, in hours. Day is [DayStart, NightStart).
const (
	DayStart   = 6
	NightStart = 18
)

// Color is a hex RGB color such as "#f4f1e8".
type Color string

// CompositingMode controls how bitonal bitmaps combine with the background.
type CompositingMode int

const (
	Normal CompositingMode = iota
	Inverted
)

func (m CompositingMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Inverted:
		return "inverted"
	default:
		return fmt.Sprintf("CompositingMode(%d)", int(m))
	}
}

// Theme is the paired color and compositing convention for every layer.
type Theme struct {
	IsDay       bool
	Foreground  Color
	Background  Color
	Compositing CompositingMode
}

// Palette holds the two colors a theme is built from.
type Palette struct {
	Ink   Color
	Paper Color
}

// DefaultPalette is black ink on white paper.
var DefaultPalette = Palette{Ink: "#000000", Paper: "#ffffff"}

// Day returns ink on paper with normal compositing.
func (p Palette) Day() Theme {
	return Theme{IsDay: true, Foreground: p.Ink, Background: p.Paper, Compositing: Normal}
}

// Night returns paper on ink with inverted compositing.
func (p Palette) Night() Theme {
	return Theme{IsDay: false, Foreground: p.Paper, Background: p.Ink, Compositing: Inverted}
}

// IsDaytime reports whether hour falls in [dayStart, nightStart).
func IsDaytime(hour, dayStart, nightStart int) bool {
	return hour >= dayStart && hour < nightStart
}

// Engine is the two-state Day/Night machine.
type Engine struct {
	palette    Palette
	dayStart   int
	nightStart int
	current    Theme
}

// NewEngine returns an engine in the Day state. The first Evaluate call may
// flip it to Night.
func NewEngine(p Palette, dayStart, nightStart int) *Engine {
	return &Engine{
		palette:    p,
		dayStart:   dayStart,
		nightStart: nightStart,
		current:    p.Day(),
	}
}

// Current returns the live theme.
func (e *Engine) Current() Theme {
	return e.current
}

// Evaluate checks hour against the current state and returns the live theme
// and whether a transition happened.
func (e *Engine) Evaluate(hour int) (Theme, bool) {
	day := IsDaytime(hour, e.dayStart, e.nightStart)
	switch {
	case e.current.IsDay && !day:
		e.current = e.palette.Night()
	case !e.current.IsDay && day:
		e.current = e.palette.Day()
	default:
		return e.current, false
	}
	return e.current, true
}
