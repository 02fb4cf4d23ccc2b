package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bloom/internal/config"
	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/scene"
	"github.com/san-kum/bloom/internal/viz"
)

type state int

const (
	stateLanding state = iota
	stateGarden
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	sidebarWidth = 38
	chromeRows   = 6
)

type model struct {
	state state
	cfg   *config.Config

	garden *garden.Garden
	canvas *viz.Canvas
	// gen identifies the current garden mount. Ticks from older mounts are
	// dropped and not re-armed, so at most one frame loop runs.
	gen int

	theme    string
	hideHelp bool

	width  int
	height int
}

// Option tweaks the app before it starts.
type Option func(*model)

// StartInGarden skips the landing view.
func StartInGarden() Option {
	return func(m *model) { m.state = stateGarden }
}

func NewInteractiveApp(cfg *config.Config, opts ...Option) *model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := &model{
		state:  stateLanding,
		cfg:    cfg,
		theme:  viz.GetTheme(cfg.Display.Theme).Name,
		width:  defaultWidth,
		height: defaultHeight,
	}
	viz.SetTheme(m.theme)
	for _, opt := range opts {
		opt(m)
	}
	if m.state == stateGarden {
		m.mount()
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.state == stateGarden {
		return m.tick()
	}
	return nil
}

type tickMsg struct {
	gen int
	at  time.Time
}

func (m model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.cfg.FrameInterval(), func(t time.Time) tea.Msg { return tickMsg{gen: gen, at: t} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.garden != nil {
			m.layout()
		}
		return m, nil
	case tickMsg:
		if m.state != stateGarden || msg.gen != m.gen || m.garden == nil {
			return m, nil
		}
		m.garden.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateLanding:
		return m.landingKey(msg)
	case stateGarden:
		return m.gardenKey(msg)
	}
	return m, nil
}

func (m model) landingKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", " ":
		m.state = stateGarden
		m.mount()
		return m, tea.Batch(tea.ClearScreen, m.tick())
	case "t":
		m.cycleTheme()
	}
	return m, nil
}

func (m model) gardenKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "w", " ", "enter":
		before := m.garden.Growth().Stage
		m.garden.Water()
		if after := m.garden.Growth().Stage; after != before {
			log.Printf("garden: %s -> %s after %d waterings", before, after, m.garden.Waterings())
		}
	case "esc", "backspace":
		m.unmount()
		return m, tea.ClearScreen
	case "t":
		m.cycleTheme()
	case "?":
		m.hideHelp = !m.hideHelp
	}
	return m, nil
}

// mount starts a fresh garden. Progress never survives leaving the view.
func (m *model) mount() {
	m.gen++
	m.garden = garden.New(m.cfg.Params(), garden.Geometry{})
	m.hideHelp = false
	m.layout()
}

func (m *model) unmount() {
	m.gen++
	m.state = stateLanding
	m.garden = nil
	m.canvas = nil
}

// layout fits the square canvas into the space left of the sidebar. The
// canvas is measured in braille dots, two per column and four per row.
func (m *model) layout() {
	cols := m.width - sidebarWidth - 4
	rows := m.height - chromeRows
	geom := m.cfg.Fit(float64(cols*2), float64(rows*4))
	size := int(geom.Width)

	// keep whole cells
	size -= size % 4
	geom = garden.NewGeometry(float64(size))

	m.garden.Resize(geom)
	m.canvas = viz.NewCanvas(size/2, size/4)
}

func (m *model) cycleTheme() {
	m.theme = viz.NextTheme(m.theme)
	viz.SetTheme(m.theme)
}

func (m model) snapshot() scene.Scene {
	return scene.Build(m.garden.Snapshot())
}

func RunInteractive(cfg *config.Config, opts ...Option) error {
	p := tea.NewProgram(NewInteractiveApp(cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
