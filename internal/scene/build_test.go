package scene

import (
	"math"
	"testing"

	"github.com/san-kum/bloom/internal/garden"
)

func snapshotAt(stage garden.Stage, progress float64) garden.Snapshot {
	return garden.Snapshot{
		Growth:   garden.Growth{Stage: stage, Progress: progress},
		Geometry: garden.NewGeometry(garden.ReferenceSize),
	}
}

func TestBuildShapeCounts(t *testing.T) {
	tests := []struct {
		name     string
		snap     garden.Snapshot
		leaves   int
		petals   int
		seed     int
		center   int
		droplets int
	}{
		{"fresh seed", snapshotAt(garden.Seed, 0), 0, 4, 1, 0, 0},
		{"late seed", snapshotAt(garden.Seed, 40), 0, 0, 0, 0, 0},
		{"sprout", snapshotAt(garden.Sprout, 10), 2, 0, 0, 0, 0},
		{"bud", snapshotAt(garden.Bud, 90), 2, 4, 0, 0, 0},
		{"bloom", snapshotAt(garden.Bloom, 100), 2, 10, 0, 1, 0},
	}
	for _, tt := range tests {
		sc := Build(tt.snap)
		if got := sc.Count(PartStem); got != 1 {
			t.Errorf("%s: stems = %d", tt.name, got)
		}
		if got := sc.Count(PartBlossom); got != blossomCount {
			t.Errorf("%s: blossoms = %d", tt.name, got)
		}
		if sc.Count(PartBubble) != 1 || sc.Count(PartBubbleTail) != 1 || sc.Count(PartCaption) != 1 {
			t.Errorf("%s: incomplete thought bubble", tt.name)
		}
		if got := sc.Count(PartLeaf); got != tt.leaves {
			t.Errorf("%s: leaves = %d, want %d", tt.name, got, tt.leaves)
		}
		if got := sc.Count(PartPetal); got != tt.petals {
			t.Errorf("%s: petals = %d, want %d", tt.name, got, tt.petals)
		}
		if got := sc.Count(PartSeed); got != tt.seed {
			t.Errorf("%s: seeds = %d, want %d", tt.name, got, tt.seed)
		}
		if got := sc.Count(PartCenter); got != tt.center {
			t.Errorf("%s: centers = %d, want %d", tt.name, got, tt.center)
		}
		if got := sc.Count(PartDroplet); got != tt.droplets {
			t.Errorf("%s: droplets = %d, want %d", tt.name, got, tt.droplets)
		}
	}
}

func TestUnknownStageDrawsNoFlower(t *testing.T) {
	sc := Build(snapshotAt(garden.Stage(7), 100))
	for _, part := range []Part{PartLeaf, PartPetal, PartSeed, PartCenter} {
		if n := sc.Count(part); n != 0 {
			t.Errorf("unknown stage drew %d %s shapes", n, part)
		}
	}
	if sc.Count(PartStem) != 1 {
		t.Error("stem missing")
	}
}

func TestBuildOrder(t *testing.T) {
	g := garden.New(garden.DefaultParams(), garden.NewGeometry(400))
	g.Water()
	sc := Build(g.Snapshot())

	if sc.Shapes[0].Part != PartBackground {
		t.Fatalf("first shape is %s, want background", sc.Shapes[0].Part)
	}
	last := sc.Shapes[len(sc.Shapes)-1]
	if last.Part != PartDroplet {
		t.Fatalf("last shape is %s, want droplet", last.Part)
	}
	if sc.Count(PartDroplet) != garden.BatchSize {
		t.Errorf("droplets = %d", sc.Count(PartDroplet))
	}
}

func TestStemFollowsGrowth(t *testing.T) {
	g := garden.NewGeometry(400)
	for _, s := range garden.Stages {
		snap := snapshotAt(s, 50)
		stem := Build(snap).Filter(PartStem)[0]
		want := garden.StemHeight(s, 50, g.StemUnit())
		if math.Abs(stem.H-want) > 1e-9 {
			t.Errorf("%s: stem height %.2f, want %.2f", s, stem.H, want)
		}
		if math.Abs(stem.Y+stem.H-g.BaseY) > 1e-9 {
			t.Errorf("%s: stem not rooted at base line", s)
		}
		if math.Abs(stem.X+stem.W/2-g.CenterX) > 1e-9 {
			t.Errorf("%s: stem not centered", s)
		}
	}
}

func TestBloomPetalsUnfold(t *testing.T) {
	snap := snapshotAt(garden.Bloom, 100)

	snap.Phase.BloomScale = 0
	closed := Build(snap).Filter(PartPetal)
	for _, p := range closed {
		lo, hi := p.Bounds()
		if hi.X-lo.X > 1e-9 || hi.Y-lo.Y > 1e-9 {
			t.Fatalf("petal has area at bloom scale 0: %v %v", lo, hi)
		}
	}

	snap.Phase.BloomScale = 1
	open := Build(snap).Filter(PartPetal)
	lo, hi := open[0].Bounds()
	if hi.X-lo.X < 5 {
		t.Errorf("open petal too small: %v %v", lo, hi)
	}
	if open[5].Fill.A >= open[0].Fill.A {
		t.Errorf("outer petals should be translucent: %d vs %d", open[5].Fill.A, open[0].Fill.A)
	}
}

func TestDropletOpacityClamped(t *testing.T) {
	snap := snapshotAt(garden.Seed, 0)
	snap.Particles = garden.Particles{
		{X: 10, Y: 10, Opacity: 1.7},
		{X: 20, Y: 10, Opacity: 0.5},
		{X: 30, Y: 10, Opacity: -0.2},
	}
	drops := Build(snap).Filter(PartDroplet)
	want := []uint8{255, 128, 0}
	for i, d := range drops {
		if d.Fill.A != want[i] {
			t.Errorf("droplet %d alpha %d, want %d", i, d.Fill.A, want[i])
		}
	}
}

func TestCaptionPerStage(t *testing.T) {
	for _, s := range garden.Stages {
		caption := Build(snapshotAt(s, 0)).Filter(PartCaption)[0]
		if caption.Text != s.Caption() {
			t.Errorf("%s: caption %q", s, caption.Text)
		}
	}
}

func TestBuildScalesWithCanvas(t *testing.T) {
	big := Build(snapshotAt(garden.Bud, 50))
	small := snapshotAt(garden.Bud, 50)
	small.Geometry = garden.NewGeometry(200)
	half := Build(small)

	if len(big.Shapes) != len(half.Shapes) {
		t.Fatalf("shape counts differ: %d vs %d", len(big.Shapes), len(half.Shapes))
	}
	a := big.Filter(PartPetal)[1].Points
	b := half.Filter(PartPetal)[1].Points
	for i := range a {
		if math.Abs(a[i].X/2-b[i].X) > 1e-9 || math.Abs(a[i].Y/2-b[i].Y) > 1e-9 {
			t.Fatalf("point %d: %v is not half of %v", i, b[i], a[i])
		}
	}
}

func TestBuildEmptyCanvas(t *testing.T) {
	snap := snapshotAt(garden.Bloom, 100)
	snap.Geometry = garden.NewGeometry(0)
	if sc := Build(snap); len(sc.Shapes) != 0 {
		t.Errorf("expected no shapes, got %d", len(sc.Shapes))
	}
}
