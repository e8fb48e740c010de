package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/five82/spriteclock/internal/theme"
)

// Theme holds the chrome colors drawn around the clock face: footer, help
// and log overlays. It is derived from the face's live theme so the chrome
// flips between day and night together with the window.
type Theme struct {
	Name string

	Background string
	Surface    string
	Text       string
	Muted      string
	Faint      string

	Accent  string
	Warning string
	Danger  string
}

// Accent colors stay fixed across day and night.
const (
	accentColor  = "#4f7cac"
	warningColor = "#c08a1e"
	dangerColor  = "#c0392b"
)

// ChromeFor derives the chrome theme for a face theme.
func ChromeFor(t theme.Theme) Theme {
	name := "night"
	if t.IsDay {
		name = "day"
	}
	bg, text := string(t.Background), string(t.Foreground)
	return Theme{
		Name:       name,
		Background: bg,
		Surface:    blend(bg, text, 0.08),
		Text:       text,
		Muted:      blend(text, bg, 0.35),
		Faint:      blend(text, bg, 0.6),
		Accent:     accentColor,
		Warning:    warningColor,
		Danger:     dangerColor,
	}
}

// blend mixes from toward to by t in Lab space. Unparseable input returns
// from unchanged.
func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	bg := lipgloss.Color(t.Background)
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(bg),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Background(bg),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Background(bg),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Background(bg),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Background(bg),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Background(bg).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			BorderBackground(bg).
			Background(bg).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Footer lipgloss.Style
	Modal  lipgloss.Style
}
