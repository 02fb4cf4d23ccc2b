package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles. They follow CurrentTheme; SetTheme rebuilds them.
var (
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Button    lipgloss.Style
	ButtonDim lipgloss.Style
	Subtle    lipgloss.Style
	KeyHint   lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style

	BarFull  lipgloss.Style
	BarEmpty lipgloss.Style
	BarNear  lipgloss.Style
	BarDone  lipgloss.Style

	ErrorText lipgloss.Style
)

func init() { applyTheme(CurrentTheme) }

func applyTheme(t Theme) {
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Text).
		Background(t.Primary).
		Padding(0, 2)

	ButtonDim = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Muted).
		Padding(0, 2)

	Subtle = lipgloss.NewStyle().Foreground(t.Muted)

	KeyHint = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	Label = lipgloss.NewStyle().Foreground(t.Muted)
	Value = lipgloss.NewStyle().Foreground(t.Text).Bold(true)

	BarFull = lipgloss.NewStyle().Foreground(t.Secondary)
	BarEmpty = lipgloss.NewStyle().Foreground(t.Muted)
	BarNear = lipgloss.NewStyle().Foreground(t.Warning)
	BarDone = lipgloss.NewStyle().Foreground(t.Success)

	ErrorText = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// ProgressBar renders percent in [0, 1] as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	return bar(BarFull, percent, width)
}

// nearThreshold is where a stage bar turns to the warning color.
const nearThreshold = 0.9

// StageBar is a ProgressBar for a growth stage: warning colored when the
// stage is about to turn over, success colored once the flower bloomed.
func StageBar(percent float64, width int, bloomed bool) string {
	return bar(stageBarStyle(percent, bloomed), percent, width)
}

func stageBarStyle(percent float64, bloomed bool) lipgloss.Style {
	switch {
	case bloomed:
		return BarDone
	case percent >= nearThreshold:
		return BarNear
	}
	return BarFull
}

func bar(full lipgloss.Style, percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return full.Render(strings.Repeat("█", filled)) + BarEmpty.Render(strings.Repeat("░", width-filled))
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	// Sample to fit width
	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		result.WriteRune(chars[idx])
	}
	return result.String()
}

// BoxWithTitle renders content in a card headed by title.
func BoxWithTitle(title, content string, width int) string {
	return Card.Width(width).Render(CardTitle.Render(title) + "\n\n" + content)
}

// Wrap word-wraps text to width cells.
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// Separator draws a centered diamond rule.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ❀ " + right)
}

// Helper functions
func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
