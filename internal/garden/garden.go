package garden

import "fmt"

// Params are the tuning knobs of growth and animation.
type Params struct {
	GrowthIncrement float64
	ParticleDecay   float64
	PulseStep       float64
	BloomStep       float64
}

// DefaultParams returns the classic tuning: 50 waterings per stage and a
// 20-frame particle and bloom animation.
func DefaultParams() Params {
	return Params{
		GrowthIncrement: DefaultGrowthIncrement,
		ParticleDecay:   DefaultParticleDecay,
		PulseStep:       DefaultPulseStep,
		BloomStep:       DefaultBloomStep,
	}
}

func (p Params) Validate() error {
	if p.GrowthIncrement <= 0 || p.GrowthIncrement > MaxProgress {
		return fmt.Errorf("%w: growth increment %.3f not in (0, %.0f]", ErrInvalidParams, p.GrowthIncrement, MaxProgress)
	}
	if p.ParticleDecay <= 0 || p.ParticleDecay > 1 {
		return fmt.Errorf("%w: particle decay %.3f not in (0, 1]", ErrInvalidParams, p.ParticleDecay)
	}
	if p.PulseStep < 0 {
		return fmt.Errorf("%w: pulse step %.3f is negative", ErrInvalidParams, p.PulseStep)
	}
	if p.BloomStep <= 0 || p.BloomStep > 1 {
		return fmt.Errorf("%w: bloom step %.3f not in (0, 1]", ErrInvalidParams, p.BloomStep)
	}
	return nil
}

// WateringsPerStage is how many triggers one stage transition takes.
func (p Params) WateringsPerStage() int {
	if p.GrowthIncrement <= 0 {
		return 0
	}
	n := int(MaxProgress / p.GrowthIncrement)
	if float64(n)*p.GrowthIncrement < MaxProgress {
		n++
	}
	return n
}

// Garden is one flower with its animation state, owned by a single view.
type Garden struct {
	params Params
	geom   Geometry
	// ref is the last non-empty canvas, the one particle coordinates are in.
	ref       Geometry
	growth    Growth
	phase     Phase
	particles Particles
	waterings int
	frames    int
}

// New returns a fresh seed. Params are used as given; validate them first.
func New(params Params, geom Geometry) *Garden {
	return &Garden{
		params:    params,
		geom:      geom,
		ref:       geom,
		particles: make(Particles, 0, BatchSize*8),
	}
}

// Water is the user's trigger. The droplets spawn at the stem tip as it was
// before this watering, even when the watering completes a stage.
func (g *Garden) Water() {
	top := g.geom.StemTop(g.growth.Stage, g.growth.Progress)
	g.growth.Trigger(g.params.GrowthIncrement)
	g.particles.Spawn(g.geom, top)
	g.waterings++
}

// Tick advances the animation by one frame.
func (g *Garden) Tick() {
	g.phase.Advance(g.growth.Stage, g.params.PulseStep, g.params.BloomStep)
	g.particles.Step(g.params.ParticleDecay)
	g.frames++
}

// Resize changes the canvas. Live particles are rescaled with it so they
// stay attached to the flower. A zero-size canvas leaves them where they
// are; the next real canvas rescales them from the last real one.
func (g *Garden) Resize(geom Geometry) {
	if geom == g.geom {
		return
	}
	g.geom = geom
	if geom.Width <= 0 || geom.Height <= 0 {
		return
	}
	ref := g.ref
	g.ref = geom
	if ref.Width <= 0 || ref.Height <= 0 {
		return
	}
	sx := geom.Width / ref.Width
	sy := geom.Height / ref.Height
	for i := range g.particles {
		p := &g.particles[i]
		p.X *= sx
		p.Y *= sy
		p.VX *= sx
		p.VY *= sy
	}
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Growth    Growth
	Phase     Phase
	Particles Particles
	Geometry  Geometry
	Waterings int
	Frames    int
}

// StemHeight of the snapshot's flower on its canvas.
func (s Snapshot) StemHeight() float64 {
	return StemHeight(s.Growth.Stage, s.Growth.Progress, s.Geometry.StemUnit())
}

// Snapshot copies the current state; the particle slice is not shared.
func (g *Garden) Snapshot() Snapshot {
	return Snapshot{
		Growth:    g.growth,
		Phase:     g.phase,
		Particles: g.particles.Clone(),
		Geometry:  g.geom,
		Waterings: g.waterings,
		Frames:    g.frames,
	}
}

func (g *Garden) Growth() Growth       { return g.growth }
func (g *Garden) Phase() Phase         { return g.phase }
func (g *Garden) Geometry() Geometry   { return g.geom }
func (g *Garden) Params() Params       { return g.params }
func (g *Garden) ParticleCount() int   { return len(g.particles) }
func (g *Garden) Waterings() int       { return g.waterings }
func (g *Garden) Frames() int          { return g.frames }
func (g *Garden) Particles() Particles { return g.particles.Clone() }
