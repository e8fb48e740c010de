package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/spriteclock/internal/logtail"
)

// logState holds the log overlay.
type logState struct {
	visible  bool
	lines    []string
	err      error
	filter   string
	input    textinput.Model
	viewport viewport.Model
}

func newLogState() logState {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 100
	ti.Prompt = "/"
	return logState{
		input:    ti,
		viewport: viewport.New(0, 0),
	}
}

type logLinesMsg struct {
	lines []string
	err   error
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

// resizeLogs fits the viewport inside the overlay box.
func (m *Model) resizeLogs() {
	// Box borders take 2 rows, the status line 1 more.
	m.logs.viewport.Width = max(0, m.width-4)
	m.logs.viewport.Height = max(0, m.height-3)
	m.refreshLogContent()
}

func (m *Model) setLogLines(msg logLinesMsg) {
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.refreshLogContent()
	m.logs.viewport.GotoBottom()
}

func (m *Model) refreshLogContent() {
	m.logs.viewport.SetContent(renderLogLines(m.logs.lines, m.logs.filter, m.chrome().Styles()))
}

// filterLines returns the lines containing filter, ignoring case.
func filterLines(lines []string, filter string) []string {
	needle := strings.ToLower(strings.TrimSpace(filter))
	if needle == "" {
		return lines
	}
	var out []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			out = append(out, line)
		}
	}
	return out
}

func renderLogLines(lines []string, filter string, styles Styles) string {
	shown := filterLines(lines, filter)
	if len(shown) == 0 {
		return styles.FaintText.Render("(no log lines)")
	}
	out := make([]string, len(shown))
	for i, line := range shown {
		switch logtail.Classify(line) {
		case logtail.SeverityError:
			out[i] = styles.DangerText.Render(line)
		case logtail.SeverityWarn:
			out[i] = styles.WarningText.Render(line)
		default:
			out[i] = styles.Text.Render(line)
		}
	}
	return strings.Join(out, "\n")
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.logs.filter = m.logs.input.Value()
			m.logs.input.Blur()
			m.refreshLogContent()
			m.logs.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Close):
			m.logs.input.Blur()
			m.logs.input.SetValue(m.logs.filter)
			return m, nil
		}
		var cmd tea.Cmd
		m.logs.input, cmd = m.logs.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Logs):
		m.logs.visible = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.logs.input.SetValue(m.logs.filter)
		return m, m.logs.input.Focus()
	}

	var cmd tea.Cmd
	m.logs.viewport, cmd = m.logs.viewport.Update(msg)
	return m, cmd
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	chrome := m.chrome()
	styles := chrome.Styles()
	bg := NewBgStyle(chrome.Background)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(chrome.Accent)).
		BorderBackground(lipgloss.Color(chrome.Background)).
		Background(lipgloss.Color(chrome.Background)).
		Width(max(0, m.width-2)).
		Render(m.logs.viewport.View())

	var status string
	switch {
	case m.logs.input.Focused():
		status = m.logs.input.View()
	case m.logs.err != nil:
		status = bg.Render(fmt.Sprintf("read log: %v", m.logs.err), styles.DangerText)
	default:
		shown := len(filterLines(m.logs.lines, m.logs.filter))
		text := fmt.Sprintf("%s  %d lines", truncateMiddle(m.logPath, m.width/2), shown)
		if m.logs.filter != "" {
			text += fmt.Sprintf("  filter %q", m.logs.filter)
		}
		status = bg.Render(text, styles.FaintText)
	}
	return box + "\n" + bg.FillLine(status, m.width)
}
