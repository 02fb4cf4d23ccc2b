package gui

import (
	"fmt"
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/scene"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InLanding {
		a.drawLanding()
	} else {
		a.drawGarden()
	}

	rl.EndDrawing()
}

func (a *App) drawLanding() {
	w, h := float32(a.Width), float32(a.Height)
	card := rl.NewRectangle(w/2-260, h/2-150, 520, 270)
	rl.DrawRectangleRounded(card, 0.1, 12, ColCard)

	a.drawCentered("Welcome to Bloom", card.Y+30, 44, ColAccent)
	a.drawWrapped("Grow beautiful tulip rose. Water your flower to watch them thrive!",
		rl.NewRectangle(card.X+40, card.Y+100, card.Width-80, 80), 22, ColText, true)
	a.drawButton(a.startButton(), "Get Started", ColAccent)

	a.drawCentered("Made by Anyone else. All rights reserved.", h-40, 16, ColTextDim)
}

func (a *App) drawGarden() {
	snap := a.Garden.Snapshot()

	a.drawCentered("Rose Garden", 18, 40, ColAccent)
	a.drawCentered(fmt.Sprintf("Stage: %s", snap.Growth.Stage), 62, 20, ColText)

	DrawScene(scene.Build(snap), a.Origin, a.Font)

	a.drawButton(a.waterButton(), "Water", ColAccent)
	a.drawButton(a.returnButton(), "Return", ColTextDim)
	a.drawText("[W] WATER  [ESC] RETURN  [H] HOW TO PLAY", 20, a.Height-30, 14, ColTextDim)

	if !a.HideHelp {
		a.drawHelp(snap)
	}
}

func (a *App) drawHelp(snap garden.Snapshot) {
	card := rl.NewRectangle(20, headerHeight, 260, 290)
	rl.DrawRectangleRounded(card, 0.1, 8, ColCard)
	a.drawText("How to Play", int32(card.X)+16, int32(card.Y)+14, 22, ColGreen)
	a.drawWrapped(garden.HowToPlay, rl.NewRectangle(card.X+16, card.Y+48, card.Width-32, card.Height-60), 16, ColText, false)
	a.drawText(fmt.Sprintf("drops %d", snap.Waterings), int32(card.X)+16, int32(card.Y+card.Height)-26, 14, ColTextDim)
}

func (a *App) drawButton(r rl.Rectangle, label string, col rl.Color) {
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), r) {
		col = rl.ColorBrightness(col, 0.15)
	}
	rl.DrawRectangleRounded(r, 0.5, 12, col)
	size := rl.MeasureTextEx(a.Font, label, 22, 1)
	rl.DrawTextEx(a.Font, label, rl.NewVector2(r.X+(r.Width-size.X)/2, r.Y+(r.Height-size.Y)/2), 22, 1, ColText)
}

func (a *App) drawText(text string, x, y int32, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawCentered(text string, y float32, size float32, color rl.Color) {
	m := rl.MeasureTextEx(a.Font, text, size, 1)
	rl.DrawTextEx(a.Font, text, rl.NewVector2((float32(a.Width)-m.X)/2, y), size, 1, color)
}

func (a *App) drawWrapped(text string, box rl.Rectangle, size float32, color rl.Color, center bool) {
	drawWrapped(a.Font, text, box, size, color, center)
}

// drawWrapped breaks text on spaces so every line fits box.Width.
func drawWrapped(font rl.Font, text string, box rl.Rectangle, size float32, col rl.Color, center bool) {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		try := word
		if line != "" {
			try = line + " " + word
		}
		if line != "" && rl.MeasureTextEx(font, try, size, 1).X > box.Width {
			lines = append(lines, line)
			line = word
			continue
		}
		line = try
	}
	if line != "" {
		lines = append(lines, line)
	}

	y := box.Y
	for _, l := range lines {
		x := box.X
		if center {
			x += (box.Width - rl.MeasureTextEx(font, l, size, 1).X) / 2
		}
		rl.DrawTextEx(font, l, rl.NewVector2(x, y), size, 1, col)
		y += size * 1.2
	}
}

// DrawScene draws shapes with their canvas origin at origin.
func DrawScene(sc scene.Scene, origin rl.Vector2, font rl.Font) {
	for _, s := range sc.Shapes {
		switch s.Kind {
		case scene.KindRect:
			drawRect(s, origin)
		case scene.KindCircle:
			rl.DrawCircleV(rl.NewVector2(origin.X+float32(s.X), origin.Y+float32(s.Y)), float32(s.R), rlColor(s.Fill))
		case scene.KindPolygon:
			drawPolygon(s.Points, origin, rlColor(s.Fill))
		case scene.KindText:
			box := rl.NewRectangle(origin.X+float32(s.X), origin.Y+float32(s.Y), float32(s.W), float32(s.FontSize)*4)
			drawWrapped(font, s.Text, box, float32(s.FontSize), rlColor(s.Fill), true)
		}
	}
}

func drawRect(s scene.Shape, origin rl.Vector2) {
	r := rl.NewRectangle(origin.X+float32(s.X), origin.Y+float32(s.Y), float32(s.W), float32(s.H))
	switch {
	case s.Corner > 0:
		short := r.Width
		if r.Height < short {
			short = r.Height
		}
		roundness := float32(0)
		if short > 0 {
			roundness = 2 * float32(s.Corner) / short
		}
		fill := s.Fill
		if s.Gradient != scene.GradientNone {
			fill = scene.Lerp(s.Fill, s.Fill2, 0.5)
		}
		rl.DrawRectangleRounded(r, roundness, 12, rlColor(fill))
	case s.Gradient != scene.GradientNone:
		rl.DrawRectangleGradientV(int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height), rlColor(s.Fill), rlColor(s.Fill2))
	default:
		rl.DrawRectangleRec(r, rlColor(s.Fill))
	}
}

// drawPolygon fans triangles out from the centroid. The outlines are star
// shaped around it, which is all a fan needs.
func drawPolygon(pts []scene.Point, origin rl.Vector2, col rl.Color) {
	if len(pts) < 3 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	c := rl.NewVector2(origin.X+float32(cx/float64(len(pts))), origin.Y+float32(cy/float64(len(pts))))

	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		v1 := rl.NewVector2(origin.X+float32(p.X), origin.Y+float32(p.Y))
		v2 := rl.NewVector2(origin.X+float32(q.X), origin.Y+float32(q.Y))
		// raylib wants counter-clockwise on screen
		if cross(c, v1, v2) > 0 {
			v1, v2 = v2, v1
		}
		rl.DrawTriangle(c, v1, v2, col)
	}
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func rlColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
