package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/spriteclock/internal/art"
	"github.com/five82/spriteclock/internal/asset"
	"github.com/five82/spriteclock/internal/config"
	"github.com/five82/spriteclock/internal/device"
	"github.com/five82/spriteclock/internal/prefs"
	"github.com/five82/spriteclock/internal/state"
	"github.com/five82/spriteclock/internal/theme"
	"github.com/five82/spriteclock/internal/watchface"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Events    <-chan device.Event
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string

	// SpriteStart is the catalog index of the first sprite.
	SpriteStart int

	// Now overrides the wall clock; nil uses time.Now.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	events    <-chan device.Event
	prefsPath string
	logPath   string

	// Clock face and the host services it subscribes to
	clock  *clockSource
	ticker *minuteTicker
	device *deviceServices
	screen *screen
	assets *asset.Ledger
	face   *watchface.Watchface

	// UI state
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string
	logs     logState
}

// New creates a new Bubble Tea model. The face is not drawn until Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Config.Location
	if loc == nil {
		loc = time.Local
	}

	palette := opts.Config.Palette
	if palette == (theme.Palette{}) {
		palette = theme.DefaultPalette
	}

	clock := &clockSource{loc: loc, now: now, use24h: opts.Prefs.Clock24h}
	ticker := &minuteTicker{}
	dev := &deviceServices{store: store}
	scr := newScreen(palette)
	assets := asset.NewLedger(art.Load)

	face := watchface.New(watchface.Options{
		Time:         clock,
		Connectivity: dev,
		Battery:      dev,
		Ticks:        ticker,
		Sink:         scr,
		Assets:       assets,
		Palette:      palette,
		DayStart:     opts.Config.DayStart,
		NightStart:   opts.Config.NightStart,
		Start:        opts.SpriteStart,
	})

	return Model{
		ctx:       ctx,
		store:     store,
		events:    opts.Events,
		prefsPath: prefsPath,
		logPath:   opts.Config.LogPath,
		clock:     clock,
		ticker:    ticker,
		device:    dev,
		screen:    scr,
		assets:    assets,
		face:      face,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logs:      newLogState(),
	}
}

// Init implements tea.Model. It paints the first frame and starts listening
// for minute ticks and device events.
func (m Model) Init() tea.Cmd {
	m.face.Start()
	m.screen.flush()

	cmds := []tea.Cmd{minuteTickCmd()}
	if m.events != nil {
		cmds = append(cmds, waitForDeviceCmd(m.events))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resizeLogs()
		return m, nil

	case minuteMsg:
		m.notice = ""
		m.ticker.subs.emit(m.clock.at(time.Time(msg)))
		m.screen.flush()
		cmds := []tea.Cmd{minuteTickCmd()}
		if m.logs.visible {
			cmds = append(cmds, loadLogsCmd(m.logPath))
		}
		return m, tea.Batch(cmds...)

	case deviceMsg:
		m.device.dispatch(device.Event(msg))
		m.screen.flush()
		return m, waitForDeviceCmd(m.events)

	case deviceClosedMsg:
		// The watcher stopped; the face keeps its last state.
		return m, nil

	case logLinesMsg:
		m.setLogLines(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.logs.visible {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.logs.visible {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Toggle24h):
		m.toggle24h()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.logs.visible = true
		m.refreshLogContent()
		return m, loadLogsCmd(m.logPath)
	}

	return m, nil
}

// toggle24h flips the display preference, redraws the time and saves the
// preference. A failed save is logged and the toggle still applies.
func (m *Model) toggle24h() {
	m.clock.use24h = !m.clock.use24h
	m.face.RefreshTime()
	m.screen.flush()

	m.notice = "12h clock"
	if m.clock.use24h {
		m.notice = "24h clock"
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Clock24h: m.clock.use24h}); err != nil {
		log.Printf("save prefs failed: %v", err)
		m.notice += " (not saved)"
	}
}

// chrome returns the chrome theme for the face's live theme.
func (m Model) chrome() Theme {
	return ChromeFor(m.face.Theme())
}

// renderMain renders the clock face and footer.
func (m Model) renderMain() string {
	_, windowBg := m.screen.windowColors()

	if m.width < MinWidth || m.height < MinHeight {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			fmt.Sprintf("terminal too small (%dx%d)", m.width, m.height))
	}

	face := lipgloss.Place(
		m.width,
		m.height-1,
		lipgloss.Center,
		lipgloss.Center,
		m.screen.view(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(windowBg)),
	)
	return face + "\n" + m.renderFooter()
}

// renderFooter shows key help on the left and device status on the right.
func (m Model) renderFooter() string {
	chrome := m.chrome()
	styles := chrome.Styles()
	bg := NewBgStyle(chrome.Surface)

	left := m.help.View(m.keys)
	right, style := m.deviceStatus(styles)
	right = truncate(right, m.width-4-lipgloss.Width(left))
	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.Footer.Width(m.width).Render(left)
	}
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + bg.Render(right, style))
}

// deviceStatus describes the sample store for the footer. A pending notice
// from a key press takes precedence over routine status.
func (m Model) deviceStatus(styles Styles) (string, lipgloss.Style) {
	snap := m.store.Snapshot()
	switch {
	case snap.IsStale() && snap.LastError != nil:
		return fmt.Sprintf("device: %v", snap.LastError), styles.WarningText
	case !snap.HasSample:
		return "device: no data", styles.WarningText
	case m.notice != "":
		return m.notice, styles.AccentText
	}
	age := humanizeDuration(m.clock.now().Sub(snap.LastUpdated))
	if age == "now" {
		return "updated just now", styles.MutedText
	}
	return fmt.Sprintf("updated %s ago", age), styles.MutedText
}

// Close stops the face and reports any assets still held.
func (m Model) Close() {
	m.face.Stop()
	if live := m.assets.Live(); len(live) > 0 {
		log.Printf("assets still held after stop: %v", live)
	}
}

// Messages

type minuteMsg time.Time

type deviceMsg device.Event

type deviceClosedMsg struct{}

// Commands

// minuteTickCmd fires on the next wall-clock minute boundary.
func minuteTickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return minuteMsg(t)
	})
}

func waitForDeviceCmd(events <-chan device.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return deviceClosedMsg{}
		}
		return deviceMsg(ev)
	}
}

// Run starts the Bubble Tea program and blocks until it exits. Cancelling
// opts.Context stops the program without an error.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	m.Close()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
