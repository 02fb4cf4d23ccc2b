package garden

import "math"

const (
	// ReferenceSize is the canvas side the fixed offsets and velocities were tuned for.
	ReferenceSize = 400.0

	// DefaultViewportFraction is the share of the viewport the canvas may cover.
	DefaultViewportFraction = 0.9

	baseLine = 0.75
	stemUnit = 0.075
)

// Geometry is the square drawing area everything is laid out in.
// It is derived from the viewport and holds no state of its own.
type Geometry struct {
	Width, Height float64
	CenterX       float64
	BaseY         float64
}

// NewGeometry returns the geometry of a square canvas with the given side.
func NewGeometry(size float64) Geometry {
	if size < 0 || math.IsNaN(size) {
		size = 0
	}
	return Geometry{
		Width:   size,
		Height:  size,
		CenterX: size / 2,
		BaseY:   size * baseLine,
	}
}

// FitViewport sizes the canvas to fraction of the viewport width, capped at
// maxSize. A positive viewportHeight also caps the side, for surfaces that
// are shorter than they are wide.
func FitViewport(viewportWidth, viewportHeight, fraction, maxSize float64) Geometry {
	if fraction <= 0 || fraction > 1 {
		fraction = DefaultViewportFraction
	}
	size := viewportWidth * fraction
	if viewportHeight > 0 && viewportHeight < size {
		size = viewportHeight
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return NewGeometry(math.Floor(size))
}

// Scale is the ratio between this canvas and the reference canvas.
func (g Geometry) Scale() float64 {
	return g.Width / ReferenceSize
}

// StemUnit is the stem height one unit of stage span stands for.
func (g Geometry) StemUnit() float64 {
	return g.Height * stemUnit
}

// StemTop is the y coordinate of the stem tip for the given state.
func (g Geometry) StemTop(s Stage, progress float64) float64 {
	return g.BaseY - StemHeight(s, progress, g.StemUnit())
}

// StemHeight maps a growth state to a stem height. Each stage starts where the
// previous one capped out, so the function never jumps on a stage change.
func StemHeight(s Stage, progress, unit float64) float64 {
	if s < Seed {
		s = Seed
	}
	if s > LastStage {
		s = LastStage
	}
	progress = clamp(progress, 0, MaxProgress)

	base := 0.0
	for st := Seed; st < s; st++ {
		base += stemSpans[st]
	}
	return (base + progress/MaxProgress*stemSpans[s]) * unit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
