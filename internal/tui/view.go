package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/viz"
)

const (
	landingTitle   = "Welcome to Bloom"
	landingTagline = "Grow beautiful tulip rose. Water your flower to watch them thrive!"
	landingFooter  = "Made by Anyone else. All rights reserved."
	gardenTitle    = "Rose Garden"
)

func (m model) View() string {
	switch m.state {
	case stateLanding:
		return m.viewLanding()
	case stateGarden:
		return m.viewGarden()
	}
	return ""
}

func (m model) viewLanding() string {
	t := viz.CurrentTheme
	inner := 44
	if m.width-12 < inner {
		inner = max(m.width-12, 20)
	}

	var b strings.Builder
	b.WriteString(viz.GradientText(landingTitle, t.Primary, t.Accent) + "\n\n")
	b.WriteString(viz.Wrap(landingTagline, inner) + "\n\n")
	b.WriteString(viz.Button.Render("Get Started"))

	card := viz.Card.Width(inner + 4).Align(lipgloss.Center).Render(b.String())
	footer := viz.Subtle.Render(landingFooter)
	hint := viz.KeyHint.Render("enter start   t theme   q quit")

	body := lipgloss.JoinVertical(lipgloss.Center, card, "", hint, "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m model) viewGarden() string {
	if m.garden == nil || m.canvas == nil {
		return ""
	}
	t := viz.CurrentTheme
	snap := m.garden.Snapshot()

	m.canvas.Paint(m.snapshot())
	canvas := m.canvas.Render()

	header := viz.GradientText(gardenTitle, t.Primary, t.Secondary) + "  " +
		viz.Label.Render("Stage: ") + viz.Value.Render(snap.Growth.Stage.String())

	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		m.viewBubble(snap),
		"",
		m.viewProgress(snap),
		"",
		m.viewControls(),
	)
	if !m.hideHelp {
		sidebar = lipgloss.JoinVertical(lipgloss.Left, sidebar, "",
			viz.BoxWithTitle("How to Play", viz.Wrap(garden.HowToPlay, sidebarWidth-8), sidebarWidth-4))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvas, "  ", sidebar)
	hint := viz.KeyHint.Render("w water   esc return   t theme   ? how to play   q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, viz.Separator(lipgloss.Width(main)), main, "", hint)
}

func (m model) viewBubble(snap garden.Snapshot) string {
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(viz.CurrentTheme.Primary).
		Padding(0, 1).
		Width(sidebarWidth - 4)
	return bubble.Render(viz.Wrap(snap.Growth.Stage.Caption(), sidebarWidth-8))
}

func (m model) viewProgress(snap garden.Snapshot) string {
	g := snap.Growth
	done := float64(g.Stage)*garden.MaxProgress + g.Progress
	if g.Bloomed() {
		done = float64(garden.LastStage) * garden.MaxProgress
	}
	total := float64(garden.LastStage) * garden.MaxProgress

	lines := []string{
		viz.Label.Render("growth  ") + viz.StageBar(g.Progress/garden.MaxProgress, 20, g.Bloomed()) +
			viz.Value.Render(fmt.Sprintf(" %3.0f%%", g.Progress)),
		viz.Label.Render("garden  ") + viz.ProgressBar(done/total, 20),
		viz.Label.Render("drops   ") + viz.Value.Render(fmt.Sprintf("%d", snap.Waterings)) +
			viz.Label.Render("   sparkles ") + viz.Value.Render(fmt.Sprintf("%d", len(snap.Particles))),
	}
	return strings.Join(lines, "\n")
}

func (m model) viewControls() string {
	return viz.Button.Render("Water") + "  " + viz.ButtonDim.Render("Return")
}
