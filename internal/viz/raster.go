package viz

import (
	"image"
	"image/color"
	"math"

	"github.com/san-kum/bloom/internal/scene"
)

// Plotter is a pixel surface shapes are rasterized onto.
type Plotter interface {
	Size() (w, h int)
	Plot(x, y int, c color.NRGBA)
}

// Rasterize fills every shape of sc onto p, scaled to p's size. Text is left
// to the caller; parts listed in skip are not drawn.
func Rasterize(p Plotter, sc scene.Scene, skip ...scene.Part) {
	w, h := p.Size()
	if w <= 0 || h <= 0 || sc.Width <= 0 || sc.Height <= 0 {
		return
	}
	r := rasterizer{p: p, w: w, h: h, sx: float64(w) / sc.Width, sy: float64(h) / sc.Height}

outer:
	for _, s := range sc.Shapes {
		for _, part := range skip {
			if s.Part == part {
				continue outer
			}
		}
		r.shape(s)
	}
}

type rasterizer struct {
	p      Plotter
	w, h   int
	sx, sy float64
}

func (r rasterizer) shape(s scene.Shape) {
	if s.Kind == scene.KindText {
		return
	}
	min, max := s.Bounds()
	x0 := clampInt(int(math.Floor(min.X*r.sx)), 0, r.w)
	y0 := clampInt(int(math.Floor(min.Y*r.sy)), 0, r.h)
	x1 := clampInt(int(math.Ceil(max.X*r.sx)), 0, r.w)
	y1 := clampInt(int(math.Ceil(max.Y*r.sy)), 0, r.h)

	hit := false
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			ux := (float64(px) + 0.5) / r.sx
			uy := (float64(py) + 0.5) / r.sy
			if !contains(s, ux, uy) {
				continue
			}
			r.p.Plot(px, py, s.ColorAt(ux, uy))
			hit = true
		}
	}

	// Shapes smaller than a pixel still show up as one.
	if !hit && s.Kind == scene.KindCircle && s.R > 0 {
		px, py := int(s.X*r.sx), int(s.Y*r.sy)
		if px >= 0 && py >= 0 && px < r.w && py < r.h {
			r.p.Plot(px, py, s.Fill)
		}
	}
}

func contains(s scene.Shape, x, y float64) bool {
	switch s.Kind {
	case scene.KindCircle:
		dx, dy := x-s.X, y-s.Y
		return dx*dx+dy*dy <= s.R*s.R
	case scene.KindPolygon:
		return insidePolygon(s.Points, x, y)
	case scene.KindRect:
		return insideRoundedRect(s, x, y)
	}
	return false
}

// insidePolygon is the even-odd ray casting test.
func insidePolygon(pts []scene.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func insideRoundedRect(s scene.Shape, x, y float64) bool {
	if x < s.X || y < s.Y || x > s.X+s.W || y > s.Y+s.H {
		return false
	}
	r := math.Min(s.Corner, math.Min(s.W, s.H)/2)
	if r <= 0 {
		return true
	}
	cx := math.Max(s.X+r, math.Min(x, s.X+s.W-r))
	cy := math.Max(s.Y+r, math.Min(y, s.Y+s.H-r))
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// ImagePlotter draws onto an RGBA image with source-over blending.
type ImagePlotter struct {
	Img *image.NRGBA
}

func NewImagePlotter(w, h int) *ImagePlotter {
	return &ImagePlotter{Img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (ip *ImagePlotter) Size() (int, int) {
	b := ip.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (ip *ImagePlotter) Plot(x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(ip.Img.Bounds())) {
		return
	}
	ip.Img.SetNRGBA(x, y, Over(ip.Img.NRGBAAt(x, y), c))
}

// Over composites src on top of dst.
func Over(dst, src color.NRGBA) color.NRGBA {
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return color.NRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / oa
		return uint8(math.Round(v))
	}
	return color.NRGBA{mix(src.R, dst.R), mix(src.G, dst.G), mix(src.B, dst.B), uint8(math.Round(oa * 255))}
}

// dotThreshold is the alpha below which a shape does not light a braille dot.
const dotThreshold = 40

type brailleTarget struct {
	c *Canvas
}

func (t brailleTarget) Size() (int, int) { return t.c.Dots() }

func (t brailleTarget) Plot(x, y int, col color.NRGBA) {
	if col.A < dotThreshold {
		return
	}
	bg := t.c.BG[clampInt(y/4, 0, t.c.Height-1)][clampInt(x/2, 0, t.c.Width-1)]
	fg := col
	if bg.A > 0 {
		fg = Over(bg, col)
	}
	fg.A = 255
	t.c.SetColor(x, y, fg)
}

// Paint draws a scene onto the canvas: the background as cell colors, every
// other shape as colored dots. The caption is left to the caller.
func (c *Canvas) Paint(sc scene.Scene) {
	c.Clear()
	if c.Width == 0 || c.Height == 0 || sc.Width <= 0 || sc.Height <= 0 {
		return
	}
	for _, bg := range sc.Filter(scene.PartBackground) {
		for row := 0; row < c.Height; row++ {
			for col := 0; col < c.Width; col++ {
				x := (float64(col) + 0.5) / float64(c.Width) * sc.Width
				y := (float64(row) + 0.5) / float64(c.Height) * sc.Height
				c.Fill(col, row, bg.ColorAt(x, y))
			}
		}
	}
	Rasterize(brailleTarget{c}, sc, scene.PartBackground, scene.PartCaption)
	c.outline(sc)
}

// outline traces petals, leaves and the bubble tail. At braille resolution
// a narrow polygon can miss every dot center, the outline keeps it visible.
func (c *Canvas) outline(sc scene.Scene) {
	w, h := c.Dots()
	sx, sy := float64(w)/sc.Width, float64(h)/sc.Height
	for _, s := range sc.Shapes {
		if s.Kind != scene.KindPolygon || len(s.Points) < 2 {
			continue
		}
		for i, p := range s.Points {
			q := s.Points[(i+1)%len(s.Points)]
			c.DrawLine(int(p.X*sx), int(p.Y*sy), int(q.X*sx), int(q.Y*sy), s.Fill)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
