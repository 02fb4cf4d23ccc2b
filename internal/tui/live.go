package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/scene"
	"github.com/san-kum/bloom/internal/sim"
	"github.com/san-kum/bloom/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is a simulator observer that redraws the garden in place,
// at most frameRate times a second. When stdout is not a terminal it writes
// uncolored frames one after another instead.
type LiveRenderer struct {
	out       io.Writer
	plain     bool
	frameRate int
	lastFrame time.Time
	canvas    *viz.Canvas
}

func NewLiveRenderer(rows, frameRate int) *LiveRenderer {
	if rows < 4 {
		rows = 4
	}
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       os.Stdout,
		plain:     !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()),
		frameRate: frameRate,
		canvas:    viz.NewCanvas(rows*2, rows),
	}
}

func (r *LiveRenderer) OnStep(a sim.Action, s garden.Snapshot) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.render(a, s)
}

func (r *LiveRenderer) render(a sim.Action, s garden.Snapshot) {
	w, _ := r.canvas.Dots()
	s.Geometry, s.Particles = rescale(s, float64(w))
	r.canvas.Paint(scene.Build(s))

	if r.plain {
		fmt.Fprint(r.out, r.canvas.String())
	} else {
		fmt.Fprint(r.out, clearScreen)
		fmt.Fprintln(r.out, r.canvas.Render())
	}
	fmt.Fprintf(r.out, "%-6s stage %-6s progress %5.1f  frame %5d  drops %4d  sparkles %3d\n",
		a, s.Growth.Stage, s.Growth.Progress, s.Frames, s.Waterings, len(s.Particles))
}

// rescale maps a snapshot's canvas and particles onto a canvas of side size.
func rescale(s garden.Snapshot, size float64) (garden.Geometry, garden.Particles) {
	geom := garden.NewGeometry(size)
	if s.Geometry.Width <= 0 {
		return geom, nil
	}
	k := size / s.Geometry.Width
	ps := s.Particles.Clone()
	for i := range ps {
		ps[i].X *= k
		ps[i].Y *= k
		ps[i].VX *= k
		ps[i].VY *= k
	}
	return geom, ps
}

func (r *LiveRenderer) Start() {
	if !r.plain {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if !r.plain {
		fmt.Fprint(r.out, showCursor)
	}
}
