package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bloom/internal/config"
	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/sim"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func newApp(opts ...Option) model {
	return *NewInteractiveApp(config.DefaultConfig(), opts...)
}

func TestLandingStartsGarden(t *testing.T) {
	m := newApp()
	if m.state != stateLanding || m.Init() != nil {
		t.Fatal("app should open on the landing view without a frame loop")
	}
	if !strings.Contains(m.View(), "Welcome to Bloom") {
		t.Error("landing view missing title")
	}

	m, cmd := update(t, m, key("enter"))
	if m.state != stateGarden || m.garden == nil {
		t.Fatal("enter should open the garden")
	}
	if cmd == nil {
		t.Error("opening the garden should arm the frame loop")
	}
	if m.garden.Growth() != (garden.Growth{}) {
		t.Error("garden should start as a fresh seed")
	}
}

func TestWaterKeys(t *testing.T) {
	m := newApp(StartInGarden())
	for _, k := range []string{"w", " ", "enter"} {
		m, _ = update(t, m, key(k))
	}
	if got := m.garden.Growth().Progress; got != 6 {
		t.Errorf("progress %.0f after three waterings", got)
	}
	if m.garden.ParticleCount() != 3*garden.BatchSize {
		t.Errorf("particles %d", m.garden.ParticleCount())
	}
}

func TestTickLoop(t *testing.T) {
	m := newApp(StartInGarden())
	if m.Init() == nil {
		t.Fatal("garden mount should arm the frame loop")
	}

	m, cmd := update(t, m, tickMsg{gen: m.gen, at: time.Now()})
	if cmd == nil || m.garden.Frames() != 1 {
		t.Errorf("current tick should advance and re-arm, frames=%d", m.garden.Frames())
	}

	m, cmd = update(t, m, tickMsg{gen: m.gen - 1})
	if cmd != nil || m.garden.Frames() != 1 {
		t.Error("stale tick should be dropped without re-arming")
	}
}

func TestReturnCancelsLoop(t *testing.T) {
	m := newApp(StartInGarden())
	gen := m.gen

	m, _ = update(t, m, key("w"))
	m, _ = update(t, m, key("esc"))
	if m.state != stateLanding || m.garden != nil {
		t.Fatal("esc should return to the landing view")
	}

	m, cmd := update(t, m, tickMsg{gen: gen})
	if cmd != nil {
		t.Error("tick after unmount re-armed the loop")
	}

	// a new mount starts over
	m, _ = update(t, m, key("enter"))
	if m.garden.Growth().Progress != 0 {
		t.Error("progress survived leaving the garden")
	}
	if _, cmd = update(t, m, tickMsg{gen: gen}); cmd != nil {
		t.Error("tick from the first mount drove the second one")
	}
}

func TestResize(t *testing.T) {
	m := newApp(StartInGarden())
	m, _ = update(t, m, key("w"))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 80})
	big := m.garden.Geometry().Width
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	small := m.garden.Geometry().Width

	if big <= small || big > config.DefaultMaxCanvas {
		t.Errorf("unexpected canvas sizes %.0f and %.0f", big, small)
	}
	if int(small)%4 != 0 {
		t.Errorf("canvas %.0f does not fill whole cells", small)
	}
	if m.canvas.Width != int(small)/2 || m.canvas.Height != int(small)/4 {
		t.Errorf("canvas cells %dx%d for size %.0f", m.canvas.Width, m.canvas.Height, small)
	}
}

func TestGardenView(t *testing.T) {
	m := newApp(StartInGarden())
	view := m.View()
	for _, want := range []string{"Rose Garden", "Stage:", "Seed", "Water", "Return", "How to Play", "Grow a rose"} {
		if !strings.Contains(view, want) {
			t.Errorf("garden view missing %q", want)
		}
	}

	m, _ = update(t, m, key("?"))
	if strings.Contains(m.View(), "How to Play") {
		t.Error("? should hide the help card")
	}
	m, _ = update(t, m, key("?"))
	if !strings.Contains(m.View(), "How to Play") {
		t.Error("? should bring the help card back")
	}
}

func TestThemeCycle(t *testing.T) {
	m := newApp()
	first := m.theme
	m, _ = update(t, m, key("t"))
	if m.theme == first {
		t.Error("t should switch theme")
	}
}

func TestQuit(t *testing.T) {
	m := newApp(StartInGarden())
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should send QuitMsg")
	}
}

func TestLiveRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(8, 1000)
	r.out = &buf
	r.plain = false

	g := garden.New(garden.DefaultParams(), garden.NewGeometry(400))
	g.Water()
	r.OnStep(sim.ActionWater, g.Snapshot())

	out := buf.String()
	if !strings.Contains(out, "stage Seed") || !strings.Contains(out, "sparkles   3") {
		t.Errorf("unexpected status line in %q", out)
	}

	// throttled
	buf.Reset()
	r.lastFrame = time.Now().Add(time.Hour)
	r.OnStep(sim.ActionTick, g.Snapshot())
	if buf.Len() != 0 {
		t.Error("renderer ignored its frame rate")
	}
}

func TestLiveRendererPlain(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(4, 1000)
	r.out = &buf
	r.plain = true

	r.Start()
	g := garden.New(garden.DefaultParams(), garden.NewGeometry(400))
	g.Water()
	r.OnStep(sim.ActionWater, g.Snapshot())
	r.Stop()

	out := buf.String()
	if strings.Contains(out, "\033") {
		t.Errorf("plain output carries escape codes: %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) < 5 || len([]rune(lines[0])) != 8 {
		t.Errorf("expected a 8x4 braille frame, got %q", out)
	}
	if !strings.Contains(out, "stage Seed") {
		t.Errorf("status line missing from %q", out)
	}
}
