package scene

import (
	"image/color"
	"math"

	"github.com/san-kum/bloom/internal/garden"
)

const (
	blossomCount  = 10
	blossomDrift  = 20.0
	seedSpriteMax = 15.0
)

// Scene is one frame worth of shapes, back to front.
type Scene struct {
	Width, Height float64
	Stage         garden.Stage
	Shapes        []Shape
}

// Count returns how many shapes belong to part.
func (sc Scene) Count(part Part) int {
	n := 0
	for _, s := range sc.Shapes {
		if s.Part == part {
			n++
		}
	}
	return n
}

// Filter returns the shapes of part in draw order.
func (sc Scene) Filter(part Part) []Shape {
	var out []Shape
	for _, s := range sc.Shapes {
		if s.Part == part {
			out = append(out, s)
		}
	}
	return out
}

// frame holds the numbers every layer derives its shapes from.
type frame struct {
	w, h    float64
	cx, top float64
	base    float64
	stemH   float64
	unit    float64
	pulse   float64
	bloom   float64
	snap    garden.Snapshot
}

// Build lays out the snapshot. An empty canvas yields an empty scene.
func Build(snap garden.Snapshot) Scene {
	g := snap.Geometry
	sc := Scene{Width: g.Width, Height: g.Height, Stage: snap.Growth.Stage}
	if g.Width <= 0 || g.Height <= 0 {
		return sc
	}

	stemH := snap.StemHeight()
	f := frame{
		w:     g.Width,
		h:     g.Height,
		cx:    g.CenterX,
		base:  g.BaseY,
		stemH: stemH,
		top:   g.BaseY - stemH,
		unit:  g.Scale(),
		pulse: snap.Phase.PulseScale(),
		bloom: clamp01(snap.Phase.BloomScale),
		snap:  snap,
	}

	sc.Shapes = make([]Shape, 0, 32+len(snap.Particles))
	sc.Shapes = f.background(sc.Shapes)
	sc.Shapes = f.bubble(sc.Shapes)
	sc.Shapes = f.stageShapes(sc.Shapes)
	sc.Shapes = f.droplets(sc.Shapes)
	return sc
}

func (f frame) background(out []Shape) []Shape {
	out = append(out, Shape{
		Kind: KindRect, Part: PartBackground,
		W: f.w, H: f.h,
		Fill: SkyTop, Fill2: SkyBottom, Gradient: GradientDiagonal,
	})

	phase := f.snap.Phase.Pulse
	fill := withAlpha(PetalPink, 0.3*f.pulse)
	for i := 0; i < blossomCount; i++ {
		fi := float64(i)
		out = append(out, Shape{
			Kind: KindCircle, Part: PartBlossom,
			X:    math.Mod(fi*f.w/8+math.Sin(phase+fi)*blossomDrift*f.unit, f.w),
			Y:    math.Mod(fi*f.h/10+math.Cos(phase+fi)*blossomDrift*f.unit, f.h),
			R:    f.w * 0.0125,
			Fill: fill,
		})
	}
	return out
}

func (f frame) bubble(out []Shape) []Shape {
	p := f.pulse
	out = append(out, Shape{
		Kind: KindRect, Part: PartBubble,
		X: f.w * 0.15, Y: f.h * 0.125,
		W: f.w * 0.4 * p, H: f.h * 0.15 * p,
		Corner: f.w * 0.025 * p,
		Fill:   BubbleTop, Fill2: BubbleBase, Gradient: GradientVertical,
	})
	out = append(out, Shape{
		Kind: KindPolygon, Part: PartBubbleTail,
		Points: TailPath.Place(f.unit, Transform{
			X: f.w * 0.075, Y: f.h * 0.125,
			ScaleX: 0.5 * p, ScaleY: 0.5 * p,
		}),
		Fill: BubbleTop,
	})
	return append(out, Shape{
		Kind: KindText, Part: PartCaption,
		X: f.w * 0.15, Y: f.h * 0.1375,
		W:        f.w * 0.35 * p,
		Text:     f.snap.Growth.Stage.Caption(),
		FontSize: f.w * 0.035 * p,
		Fill:     CaptionInk,
	})
}

// stageShapes is the one place the picture depends on the stage.
func (f frame) stageShapes(out []Shape) []Shape {
	p := f.pulse
	out = f.stem(out)

	switch f.snap.Growth.Stage {
	case garden.Seed:
		if f.snap.Growth.Progress < seedSpriteMax {
			out = append(out, Shape{
				Kind: KindCircle, Part: PartSeed,
				X: f.cx, Y: f.base, R: f.w * 0.025 * p,
				Fill: PetalPink,
			})
			out = f.petals(out, 4, 90, 0, Transform{
				X: f.cx, Y: f.base, ScaleX: 0.4 * p, ScaleY: 0.4 * p,
			}, withAlpha(PetalPink, 0.5*p))
		}
	case garden.Sprout:
		out = f.leaves(out, 0.025, 0.6*p)
	case garden.Bud:
		out = f.leaves(out, 0.075, 0.7*p)
		out = f.petals(out, 4, 90, 0, Transform{
			X: f.cx, Y: f.top, ScaleX: 0.5 * p, ScaleY: 0.7 * p,
		}, PetalPink)
	case garden.Bloom:
		b := f.bloom
		out = f.leaves(out, 0.075, 0.8*p)
		out = f.petals(out, 5, 72, 0, Transform{
			X: f.cx, Y: f.top,
			ScaleX: 0.8 * b * p, ScaleY: 1.0 * b * p,
			OffsetY: -f.h * 0.0125,
		}, PetalPink)
		out = f.petals(out, 5, 72, 36, Transform{
			X: f.cx, Y: f.top,
			ScaleX: 1.0 * b * p, ScaleY: 1.2 * b * p,
			OffsetY: -f.h * 0.025,
		}, withAlpha(PetalPink, 0.8*p))
		out = append(out, Shape{
			Kind: KindCircle, Part: PartCenter,
			X: f.cx, Y: f.top, R: f.w * 0.02 * p,
			Fill: CenterGold,
		})
	}
	return out
}

func (f frame) stem(out []Shape) []Shape {
	return append(out, Shape{
		Kind: KindRect, Part: PartStem,
		X: f.cx - f.w*0.0125, Y: f.top,
		W: f.w * 0.025, H: f.stemH,
		Fill: withAlpha(StemGreen, 0.9),
	})
}

// leaves adds the pair hanging off the stem at drop*h below its tip.
func (f frame) leaves(out []Shape, drop, scale float64) []Shape {
	half := f.w * 0.0125
	y := f.top + f.h*drop
	for _, side := range []float64{-1, 1} {
		out = append(out, Shape{
			Kind: KindPolygon, Part: PartLeaf,
			Points: LeafPath.Place(f.unit, Transform{
				X: f.cx + side*half, Y: y,
				Rotation: -side * 45,
				ScaleX:   scale, ScaleY: scale,
				OffsetX: side * half,
			}),
			Fill: StemGreen,
		})
	}
	return out
}

// petals adds n copies of the petal outline fanned out by step degrees.
func (f frame) petals(out []Shape, n int, step, start float64, t Transform, fill color.NRGBA) []Shape {
	for i := 0; i < n; i++ {
		t.Rotation = start + float64(i)*step
		out = append(out, Shape{
			Kind: KindPolygon, Part: PartPetal,
			Points: PetalPath.Place(f.unit, t),
			Fill:   fill,
		})
	}
	return out
}

func (f frame) droplets(out []Shape) []Shape {
	r := f.w * 0.0125
	for _, p := range f.snap.Particles {
		out = append(out, Shape{
			Kind: KindCircle, Part: PartDroplet,
			X: p.X, Y: p.Y, R: r,
			Fill: withAlpha(DropletTint, p.Opacity),
		})
	}
	return out
}
