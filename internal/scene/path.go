package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// flattenSteps is the number of segments each quadratic curve becomes.
const flattenSteps = 8

// Outlines in reference-canvas pixels, origin at the attachment point.
var (
	PetalPath = MustParsePath("M0 0 Q8 -25 15 -30 Q22 -35 30 -30 Q35 -25 30 0 Q25 25 15 30 Q8 25 0 0 Z")
	LeafPath  = MustParsePath("M0 0 Q8 -20 15 -25 Q22 -30 30 -20 Q35 -10 30 0 Q25 10 15 20 Q8 15 0 0 Z")
	TailPath  = MustParsePath("M0 0 L10 10 L20 0 Z")
)

// Path is a closed outline already flattened to a polygon.
type Path []Point

// ParsePath reads the subset of SVG path data the outlines use: absolute
// M, L, Q and Z commands with space separated numbers.
func ParsePath(data string) (Path, error) {
	fields := strings.Fields(data)
	var (
		out Path
		cur Point
		cmd byte
	)

	num := func(i int) (float64, error) {
		if i >= len(fields) {
			return 0, fmt.Errorf("scene: path %q: missing operand", data)
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, fmt.Errorf("scene: path %q: %w", data, err)
		}
		return v, nil
	}
	point := func(i int) (Point, error) {
		x, err := num(i)
		if err != nil {
			return Point{}, err
		}
		y, err := num(i + 1)
		return Point{x, y}, err
	}

	for i := 0; i < len(fields); {
		f := fields[i]
		if c := f[0]; c >= 'A' && c <= 'Z' {
			cmd = c
			if len(f) > 1 {
				fields[i] = f[1:]
			} else {
				i++
			}
			if cmd == 'Z' {
				continue
			}
		}

		switch cmd {
		case 'M', 'L':
			p, err := point(i)
			if err != nil {
				return nil, err
			}
			if cmd == 'M' || len(out) == 0 || out[len(out)-1] != p {
				out = append(out, p)
			}
			cur = p
			i += 2
		case 'Q':
			ctrl, err := point(i)
			if err != nil {
				return nil, err
			}
			end, err := point(i + 2)
			if err != nil {
				return nil, err
			}
			for s := 1; s <= flattenSteps; s++ {
				out = append(out, quad(cur, ctrl, end, float64(s)/flattenSteps))
			}
			cur = end
			i += 4
		case 'Z':
			i = len(fields)
		default:
			return nil, fmt.Errorf("scene: path %q: unsupported command %q", data, cmd)
		}
	}

	if n := len(out); n > 1 && out[0] == out[n-1] {
		out = out[:n-1]
	}
	return out, nil
}

// MustParsePath is ParsePath for package-level outlines.
func MustParsePath(data string) Path {
	p, err := ParsePath(data)
	if err != nil {
		panic(err)
	}
	return p
}

func quad(a, c, b Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*a.X + 2*u*t*c.X + t*t*b.X,
		Y: u*u*a.Y + 2*u*t*c.Y + t*t*b.Y,
	}
}

// Transform places a local outline on the canvas: the point is shifted by
// the negated offset, scaled, rotated clockwise by Rotation degrees and
// translated to (X, Y).
type Transform struct {
	X, Y             float64
	Rotation         float64
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

func (t Transform) Apply(p Point) Point {
	lx := (p.X - t.OffsetX) * t.ScaleX
	ly := (p.Y - t.OffsetY) * t.ScaleY
	sin, cos := math.Sincos(t.Rotation * math.Pi / 180)
	return Point{
		X: t.X + lx*cos - ly*sin,
		Y: t.Y + lx*sin + ly*cos,
	}
}

// Place scales the outline by unit, then applies t. Offsets are canvas
// sized already and are not multiplied by unit.
func (p Path) Place(unit float64, t Transform) []Point {
	out := make([]Point, len(p))
	for i, pt := range p {
		out[i] = t.Apply(Point{pt.X * unit, pt.Y * unit})
	}
	return out
}
