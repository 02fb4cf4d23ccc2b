package export

import (
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/san-kum/bloom/internal/scene"
)

// SceneToSVG renders a scene as an SVG document at its own size.
func SceneToSVG(sc scene.Scene) string {
	if sc.Width <= 0 || sc.Height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, sc.Width, sc.Height, sc.Width, sc.Height))

	var defs strings.Builder
	for i, s := range sc.Shapes {
		fill := svgFill(s, i, &defs)
		switch s.Kind {
		case scene.KindRect:
			sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" %s/>
`, s.X, s.Y, s.W, s.H, s.Corner, fill))
		case scene.KindCircle:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>
`, s.X, s.Y, s.R, fill))
		case scene.KindPolygon:
			if len(s.Points) < 3 {
				continue
			}
			sb.WriteString(`<polygon points="`)
			for j, p := range s.Points {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
			}
			sb.WriteString(fmt.Sprintf(`" %s/>
`, fill))
		case scene.KindText:
			sb.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-size="%.2f" font-family="sans-serif" text-anchor="middle" dominant-baseline="hanging" %s>%s</text>
`, s.X+s.W/2, s.Y, s.FontSize, fill, html.EscapeString(s.Text)))
		}
	}

	if defs.Len() > 0 {
		sb.WriteString("<defs>\n" + defs.String() + "</defs>\n")
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// svgFill returns the fill attributes of s, adding a gradient to defs when
// the shape has one.
func svgFill(s scene.Shape, i int, defs *strings.Builder) string {
	if s.Gradient == scene.GradientNone {
		return colorAttrs(s.Fill)
	}
	id := fmt.Sprintf("g%d", i)
	x2, y2 := "0", "1"
	if s.Gradient == scene.GradientDiagonal {
		x2 = "1"
	}
	defs.WriteString(fmt.Sprintf(`<linearGradient id="%s" x1="0" y1="0" x2="%s" y2="%s">
<stop offset="0" stop-color="%s" stop-opacity="%.3f"/>
<stop offset="1" stop-color="%s" stop-opacity="%.3f"/>
</linearGradient>
`, id, x2, y2, hex(s.Fill), opacity(s.Fill), hex(s.Fill2), opacity(s.Fill2)))
	return fmt.Sprintf(`fill="url(#%s)"`, id)
}

func colorAttrs(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`fill="%s"`, hex(c))
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, hex(c), opacity(c))
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 { return float64(c.A) / 255 }

// SeriesToSVG plots values against their index as a line chart.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(values) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#1a0933"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
