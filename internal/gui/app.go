package gui

import (
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/bloom/internal/config"
	"github.com/san-kum/bloom/internal/garden"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(26, 9, 51, 255)
	ColCard    = rl.NewColor(42, 27, 74, 230)
	ColAccent  = rl.NewColor(196, 117, 160, 255)
	ColGreen   = rl.NewColor(76, 175, 80, 255)
	ColText    = rl.NewColor(248, 238, 244, 255)
	ColTextDim = rl.NewColor(138, 111, 154, 255)
)

const (
	headerHeight = 90
	footerHeight = 110
	fontPath     = "/usr/share/fonts/liberation/LiberationSans-Regular.ttf"
)

type App struct {
	Cfg    *config.Config
	Garden *garden.Garden
	Font   rl.Font

	InLanding bool
	HideHelp  bool

	Width, Height int32
	// Origin is the top left corner of the garden canvas on screen.
	Origin rl.Vector2
}

// initWindow opens a resizable window at the configured size and frame rate.
func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Display.WindowWidth), int32(cfg.Display.WindowHeight), "bloom")
	rl.SetTargetFPS(int32(cfg.Display.FrameRate))
	rl.SetExitKey(0)
}

// loadFont prefers Liberation Sans and falls back to raylib's built-in font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 48, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, startInGarden bool) *App {
	app := &App{
		Cfg:       cfg,
		Font:      loadFont(),
		InLanding: !startInGarden,
		Width:     int32(rl.GetScreenWidth()),
		Height:    int32(rl.GetScreenHeight()),
	}
	if startInGarden {
		app.mount()
	}
	return app
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, startInGarden bool) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg, startInGarden)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) mount() {
	a.Garden = garden.New(a.Cfg.Params(), garden.Geometry{})
	a.HideHelp = false
	a.InLanding = false
	a.layout()
}

func (a *App) unmount() {
	a.Garden = nil
	a.InLanding = true
}

// layout fits the square canvas between the header and the controls.
func (a *App) layout() {
	a.Width = int32(rl.GetScreenWidth())
	a.Height = int32(rl.GetScreenHeight())
	if a.Garden == nil {
		return
	}
	geom := a.Cfg.Fit(float64(a.Width), float64(a.Height-headerHeight-footerHeight))
	a.Garden.Resize(geom)
	a.Origin = rl.NewVector2(float32((float64(a.Width)-geom.Width)/2), headerHeight)
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.layout()
	}

	if a.InLanding {
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) || a.clicked(a.startButton()) {
			a.mount()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyW) || rl.IsKeyPressed(rl.KeySpace) || a.clicked(a.waterButton()) {
		before := a.Garden.Growth().Stage
		a.Garden.Water()
		if after := a.Garden.Growth().Stage; after != before {
			log.Printf("garden: %s -> %s after %d waterings", before, after, a.Garden.Waterings())
		}
	}
	if rl.IsKeyPressed(rl.KeySlash) || rl.IsKeyPressed(rl.KeyH) {
		a.HideHelp = !a.HideHelp
	}
	if rl.IsKeyPressed(rl.KeyEscape) || a.clicked(a.returnButton()) {
		a.unmount()
		return
	}

	a.Garden.Tick()
}

func (a *App) clicked(r rl.Rectangle) bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton) && rl.CheckCollisionPointRec(rl.GetMousePosition(), r)
}

func (a *App) startButton() rl.Rectangle {
	return rl.NewRectangle(float32(a.Width)/2-90, float32(a.Height)/2+40, 180, 48)
}

func (a *App) waterButton() rl.Rectangle {
	return rl.NewRectangle(float32(a.Width)/2-170, float32(a.Height-footerHeight)+20, 160, 48)
}

func (a *App) returnButton() rl.Rectangle {
	return rl.NewRectangle(float32(a.Width)/2+10, float32(a.Height-footerHeight)+20, 160, 48)
}
