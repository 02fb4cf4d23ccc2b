package scene

import (
	"image/color"
	"math"
)

// Kind is the primitive a shape is drawn with.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindPolygon
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Part says which element of the picture a shape belongs to.
type Part int

const (
	PartBackground Part = iota
	PartBlossom
	PartBubble
	PartBubbleTail
	PartCaption
	PartStem
	PartLeaf
	PartPetal
	PartSeed
	PartCenter
	PartDroplet
)

var partNames = [...]string{
	PartBackground: "background",
	PartBlossom:    "blossom",
	PartBubble:     "bubble",
	PartBubbleTail: "bubble-tail",
	PartCaption:    "caption",
	PartStem:       "stem",
	PartLeaf:       "leaf",
	PartPetal:      "petal",
	PartSeed:       "seed",
	PartCenter:     "center",
	PartDroplet:    "droplet",
}

func (p Part) String() string {
	if p < 0 || int(p) >= len(partNames) {
		return "unknown"
	}
	return partNames[p]
}

// Point is a position in canvas pixels, y pointing down.
type Point struct {
	X, Y float64
}

// Shape is one drawable primitive in canvas space. Which fields matter
// depends on Kind:
//
//	rect:    X, Y (top left), W, H, Corner; Fill, optionally Fill2 as a gradient
//	circle:  X, Y (center), R
//	polygon: Points
//	text:    X, Y (top left of the box), W, Text, FontSize
type Shape struct {
	Kind Kind
	Part Part

	X, Y   float64
	W, H   float64
	R      float64
	Corner float64
	Points []Point

	Text     string
	FontSize float64

	Fill     color.NRGBA
	Fill2    color.NRGBA
	Gradient Gradient
}

// Gradient is the direction a two-stop fill runs in.
type Gradient int

const (
	GradientNone Gradient = iota
	GradientVertical
	GradientDiagonal
)

// Bounds returns the axis-aligned box covering the shape.
func (s Shape) Bounds() (min, max Point) {
	switch s.Kind {
	case KindCircle:
		return Point{s.X - s.R, s.Y - s.R}, Point{s.X + s.R, s.Y + s.R}
	case KindPolygon:
		if len(s.Points) == 0 {
			return Point{}, Point{}
		}
		min, max = s.Points[0], s.Points[0]
		for _, p := range s.Points[1:] {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
		return min, max
	case KindText:
		return Point{s.X, s.Y}, Point{s.X + s.W, s.Y + s.FontSize}
	}
	return Point{s.X, s.Y}, Point{s.X + s.W, s.Y + s.H}
}

// ColorAt samples the fill at a canvas point. Flat fills ignore the point.
func (s Shape) ColorAt(x, y float64) color.NRGBA {
	var t float64
	switch s.Gradient {
	case GradientVertical:
		if s.H > 0 {
			t = (y - s.Y) / s.H
		}
	case GradientDiagonal:
		if d := s.W*s.W + s.H*s.H; d > 0 {
			t = ((x-s.X)*s.W + (y-s.Y)*s.H) / d
		}
	default:
		return s.Fill
	}
	return Lerp(s.Fill, s.Fill2, t)
}

// Lerp mixes two colors, t clamped to [0, 1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// Alpha converts an opacity in [0, 1] to an alpha byte, clamping first.
func Alpha(opacity float64) uint8 {
	return uint8(math.Round(clamp01(opacity) * 255))
}

func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = Alpha(opacity)
	return c
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette.
var (
	SkyTop      = color.NRGBA{0x1a, 0x09, 0x33, 0xff}
	SkyBottom   = color.NRGBA{0x2a, 0x1b, 0x4a, 0xff}
	StemGreen   = color.NRGBA{0x4c, 0xaf, 0x50, 0xff}
	PetalPink   = color.NRGBA{0xc4, 0x75, 0xa0, 0xff}
	CenterGold  = color.NRGBA{0xff, 0xd7, 0x00, 0xff}
	BubbleTop   = color.NRGBA{0xff, 0xff, 0xff, 0xe6}
	BubbleBase  = color.NRGBA{0xe6, 0xe6, 0xe6, 0xcc}
	CaptionInk  = color.NRGBA{0x22, 0x22, 0x22, 0xff}
	DropletTint = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)
