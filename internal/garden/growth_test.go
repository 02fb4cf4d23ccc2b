package garden

import (
	"errors"
	"math"
	"testing"
)

func TestStemHeightContinuity(t *testing.T) {
	unit := 30.0
	for s := Sprout; s <= LastStage; s++ {
		got := StemHeight(s, 0, unit)
		want := StemHeight(s-1, MaxProgress, unit)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("stage %s: height at 0 is %.3f, previous cap is %.3f", s, got, want)
		}
	}
}

func TestStemHeightMonotonic(t *testing.T) {
	unit := 30.0
	for _, s := range Stages {
		prev := StemHeight(s, 0, unit)
		for p := 1.0; p <= MaxProgress; p++ {
			h := StemHeight(s, p, unit)
			if h < prev {
				t.Fatalf("stage %s: height dropped from %.3f to %.3f at progress %.0f", s, prev, h, p)
			}
			prev = h
		}
	}
}

func TestStemHeightClamps(t *testing.T) {
	unit := 10.0
	tests := []struct {
		stage    Stage
		progress float64
		want     float64
	}{
		{Seed, -20, 0},
		{Seed, 250, 10},
		{Bud, 50, 30},
		{Bloom, 0, 40},
		{Bloom, 100, 40},
		{Stage(9), 100, 40},
		{Stage(-1), 100, 10},
	}
	for _, tt := range tests {
		if got := StemHeight(tt.stage, tt.progress, unit); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("StemHeight(%d, %.0f) = %.3f, want %.3f", tt.stage, tt.progress, got, tt.want)
		}
	}
}

func TestGrowthTrigger(t *testing.T) {
	tests := []struct {
		name string
		in   Growth
		inc  float64
		want Growth
	}{
		{"fresh", Growth{}, 2, Growth{Seed, 2}},
		{"cap advances", Growth{Seed, 98}, 2, Growth{Sprout, 0}},
		{"overshoot advances", Growth{Sprout, 99}, 5, Growth{Bud, 0}},
		{"enter bloom pins", Growth{Bud, 98}, 2, Growth{Bloom, 100}},
		{"bloom is final", Growth{Bloom, 100}, 2, Growth{Bloom, 100}},
		{"negative increment", Growth{Seed, 10}, -4, Growth{Seed, 10}},
	}
	for _, tt := range tests {
		g := tt.in
		g.Trigger(tt.inc)
		if g != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, g, tt.want)
		}
	}
}

func TestStageLabels(t *testing.T) {
	want := []string{"Seed", "Sprout", "Bud", "Bloom"}
	for i, s := range Stages {
		if s.String() != want[i] {
			t.Errorf("stage %d: got %q, want %q", i, s.String(), want[i])
		}
		if s.Caption() == "" {
			t.Errorf("stage %s has no caption", s)
		}
	}
	if Stage(7).String() != "Unknown" || Stage(7).Caption() != "" {
		t.Error("out of range stage should have no label")
	}
	if Bloom.Next() != Bloom {
		t.Error("bloom should be terminal")
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}

	bad := []Params{
		{GrowthIncrement: 0, ParticleDecay: 0.05, BloomStep: 0.05},
		{GrowthIncrement: 101, ParticleDecay: 0.05, BloomStep: 0.05},
		{GrowthIncrement: 2, ParticleDecay: 0, BloomStep: 0.05},
		{GrowthIncrement: 2, ParticleDecay: 0.05, BloomStep: 0},
		{GrowthIncrement: 2, ParticleDecay: 0.05, BloomStep: 0.05, PulseStep: -1},
	}
	for i, p := range bad {
		err := p.Validate()
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("case %d: expected ErrInvalidParams, got %v", i, err)
		}
	}
}

func TestWateringsPerStage(t *testing.T) {
	tests := []struct {
		inc  float64
		want int
	}{
		{2, 50},
		{3, 34},
		{100, 1},
		{0, 0},
	}
	for _, tt := range tests {
		p := DefaultParams()
		p.GrowthIncrement = tt.inc
		if got := p.WateringsPerStage(); got != tt.want {
			t.Errorf("increment %.0f: got %d, want %d", tt.inc, got, tt.want)
		}
	}
}
