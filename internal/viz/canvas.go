package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Every cell carries one foreground
// color for its dots and an optional background color.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	FG, BG        [][]color.NRGBA
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		FG:     make([][]color.NRGBA, h),
		BG:     make([][]color.NRGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.FG[i] = make([]color.NRGBA, w)
		c.BG[i] = make([]color.NRGBA, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// Dots is the canvas size in sub-pixels: (Width*2) x (Height*4).
func (c *Canvas) Dots() (int, int) { return c.Width * 2, c.Height * 4 }

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = x / 2
	row = y / 4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// SetColor turns on the dot and recolors its cell. The last color wins.
func (c *Canvas) SetColor(x, y int, fg color.NRGBA) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.FG[row][col] = fg
}

// Fill sets the background of the cell at (col, row).
func (c *Canvas) Fill(col, row int, bg color.NRGBA) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.BG[row][col] = bg
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.FG[i][j] = color.NRGBA{}
			c.BG[i][j] = color.NRGBA{}
		}
	}
}

// DrawLine lights the dots from (x0, y0) to (x1, y1) in fg, blended over
// the cell backgrounds like filled shapes are.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, fg color.NRGBA) {
	if c.Width == 0 || c.Height == 0 {
		return
	}
	t := brailleTarget{c}
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		t.Plot(x0, y0, fg)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String returns the dots without any color, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns the canvas with colors. Runs of cells sharing colors go
// through one lipgloss style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for r, row := range c.Grid {
		start := 0
		for col := 1; col <= len(row); col++ {
			if col < len(row) && c.FG[r][col] == c.FG[r][start] && c.BG[r][col] == c.BG[r][start] {
				continue
			}
			b.WriteString(cellStyle(c.FG[r][start], c.BG[r][start]).Render(string(row[start:col])))
			start = col
		}
		if r < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(fg, bg color.NRGBA) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg.A > 0 {
		s = s.Foreground(lipgloss.Color(hexColor(int(fg.R), int(fg.G), int(fg.B))))
	}
	if bg.A > 0 {
		s = s.Background(lipgloss.Color(hexColor(int(bg.R), int(bg.G), int(bg.B))))
	}
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
