package export

import (
	"bytes"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/scene"
)

func bloomed() *garden.Garden {
	g := garden.New(garden.DefaultParams(), garden.NewGeometry(garden.ReferenceSize))
	for i := 0; i < 150; i++ {
		g.Water()
	}
	return g
}

func TestSceneToSVG(t *testing.T) {
	g := bloomed()
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	sc := scene.Build(g.Snapshot())
	svg := SceneToSVG(sc)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %.60s", svg)
	}
	if got := strings.Count(svg, "<polygon"); got != sc.Count(scene.PartPetal)+sc.Count(scene.PartLeaf)+1 {
		t.Errorf("polygons = %d", got)
	}
	if !strings.Contains(svg, "linearGradient") {
		t.Error("gradients missing")
	}
	if !strings.Contains(svg, "beautiful rose! Thank you for all the love! &lt;3") {
		t.Error("caption missing or unescaped")
	}
	if !strings.Contains(svg, `fill="#ffd700"`) {
		t.Error("gold center missing")
	}
}

func TestSceneToSVGEmpty(t *testing.T) {
	if SceneToSVG(scene.Scene{}) != "" {
		t.Error("expected empty output for empty scene")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should not plot")
	}
	svg := SeriesToSVG([]float64{0, 1, 2, 2}, 100, 50, "#c475a0")
	if strings.Count(svg, " L") != 3 {
		t.Errorf("expected 3 segments: %s", svg)
	}
	if !strings.Contains(svg, `stroke="#c475a0"`) {
		t.Error("stroke color missing")
	}
}

func TestFramesToGIF(t *testing.T) {
	frames := Record(bloomed(), 10, 2, 64)
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}

	var buf bytes.Buffer
	if err := FramesToGIF(&buf, frames, 3); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 5 || anim.Delay[0] != 3 {
		t.Errorf("decoded %d frames, delay %d", len(anim.Image), anim.Delay[0])
	}

	if err := FramesToGIF(&buf, nil, 3); err == nil {
		t.Error("expected error for no frames")
	}
}

func TestWritePNG(t *testing.T) {
	img := Frame(scene.Build(bloomed().Snapshot()), 32)
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 32 {
		t.Errorf("width %d", decoded.Bounds().Dx())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a == 0 {
		t.Error("background not drawn")
	}
}
