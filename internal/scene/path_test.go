package scene

import (
	"math"
	"testing"
)

func TestParsePath(t *testing.T) {
	tail, err := ParsePath("M0 0 L10 10 L20 0 Z")
	if err != nil {
		t.Fatal(err)
	}
	want := Path{{0, 0}, {10, 10}, {20, 0}}
	if len(tail) != len(want) {
		t.Fatalf("got %v, want %v", tail, want)
	}
	for i := range want {
		if tail[i] != want[i] {
			t.Errorf("point %d: %v, want %v", i, tail[i], want[i])
		}
	}

	if len(PetalPath) != 6*flattenSteps {
		t.Errorf("petal has %d points", len(PetalPath))
	}
	if len(LeafPath) != 6*flattenSteps {
		t.Errorf("leaf has %d points", len(LeafPath))
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, data := range []string{"M0", "M0 0 C1 1 2 2 3 3", "M0 x"} {
		if _, err := ParsePath(data); err == nil {
			t.Errorf("%q: expected error", data)
		}
	}
}

func TestQuadHitsEndpoints(t *testing.T) {
	a, c, b := Point{0, 0}, Point{8, -25}, Point{15, -30}
	if quad(a, c, b, 0) != a || quad(a, c, b, 1) != b {
		t.Error("curve does not pass through its endpoints")
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		in   Point
		want Point
	}{
		{"translate", Transform{X: 5, Y: 7, ScaleX: 1, ScaleY: 1}, Point{1, 1}, Point{6, 8}},
		{"scale", Transform{ScaleX: 2, ScaleY: 3}, Point{1, 1}, Point{2, 3}},
		{"rotate clockwise", Transform{Rotation: 90, ScaleX: 1, ScaleY: 1}, Point{1, 0}, Point{0, 1}},
		{"offset before scale", Transform{ScaleX: 2, ScaleY: 2, OffsetY: -5}, Point{0, 0}, Point{0, 10}},
	}
	for _, tt := range tests {
		got := tt.tr.Apply(tt.in)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLerpAndAlpha(t *testing.T) {
	mid := Lerp(SkyTop, SkyBottom, 0.5)
	if mid.R <= SkyTop.R || mid.R >= SkyBottom.R {
		t.Errorf("unexpected midpoint %v", mid)
	}
	if Lerp(SkyTop, SkyBottom, 5) != SkyBottom {
		t.Error("t should clamp to 1")
	}
	if Alpha(math.NaN()) != 0 || Alpha(2) != 255 {
		t.Error("alpha not clamped")
	}
}
