package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/bloom/internal/scene"
)

func TestCanvasDrawLine(t *testing.T) {
	green := color.NRGBA{0, 200, 0, 255}

	c := NewCanvas(4, 1)
	c.DrawLine(0, 0, 7, 0, green)
	for i, r := range c.Grid[0] {
		if r != blank|0x1|0x8 {
			t.Errorf("cell %d: got %U", i, r)
		}
		if c.FG[0][i] != green {
			t.Errorf("cell %d: color %v", i, c.FG[0][i])
		}
	}

	// steep lines reach both ends
	d := NewCanvas(3, 2)
	d.DrawLine(5, 7, 0, 0, green)
	if d.Grid[0][0]&0x1 == 0 || d.Grid[1][2]&0x80 == 0 {
		t.Errorf("line endpoints not lit:\n%s", d.String())
	}

	// faint lines stay dark, off-canvas ends are clipped
	c.Clear()
	c.DrawLine(-4, 0, 20, 0, color.NRGBA{0, 200, 0, dotThreshold - 1})
	if c.Grid[0][0] != blank {
		t.Error("line below the dot threshold lit a dot")
	}
	NewCanvas(0, 0).DrawLine(0, 0, 3, 3, green)
}

func TestPaintOutlinesThinPolygons(t *testing.T) {
	sc := scene.Scene{Width: 100, Height: 100, Shapes: []scene.Shape{{
		Kind:   scene.KindPolygon,
		Part:   scene.PartLeaf,
		Points: []scene.Point{{X: 10, Y: 50}, {X: 90, Y: 50.2}, {X: 90, Y: 50.4}},
		Fill:   color.NRGBA{0, 200, 0, 255},
	}}}

	c := NewCanvas(10, 5)
	c.Paint(sc)
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Errorf("sliver polygon vanished:\n%s", c.String())
	}
}

func TestCanvasRenderKeepsDots(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetColor(0, 0, color.NRGBA{255, 0, 0, 255})
	c.Fill(2, 1, color.NRGBA{0, 0, 255, 255})

	out := c.Render()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.ContainsRune(out, blank|0x1) {
		t.Error("rendered canvas lost its dot")
	}

	c.Clear()
	if c.Grid[0][0] != blank || c.FG[0][0].A != 0 || c.BG[1][2].A != 0 {
		t.Error("clear left state behind")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(2, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 2 {
		t.Errorf("unexpected layout %q", c.String())
	}
}
