package garden

const (
	// BatchSize is the number of particles one watering spawns.
	BatchSize = 3

	// DefaultParticleDecay is the opacity a particle loses per frame.
	DefaultParticleDecay = 0.05

	// fadeEpsilon absorbs float drift so k*decay == 1 really empties a particle.
	fadeEpsilon = 1e-9

	spreadFraction = 0.05
)

// Particle is a short-lived droplet shown as watering feedback.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Opacity float64
}

// Alive reports whether the particle is still visible.
func (p Particle) Alive() bool { return p.Opacity > fadeEpsilon }

// Particles is the live particle set. Order is spawn order.
type Particles []Particle

// Spawn appends one batch around the stem tip at (x, top). Offsets and
// velocities are tuned for the reference canvas and scale with g.
func (ps *Particles) Spawn(g Geometry, top float64) {
	scale := g.Scale()
	spread := g.Width * spreadFraction
	*ps = append(*ps,
		Particle{X: g.CenterX - spread, Y: top, VX: -1 * scale, VY: -1 * scale, Opacity: 1},
		Particle{X: g.CenterX + spread, Y: top, VX: 1 * scale, VY: -1 * scale, Opacity: 1},
		Particle{X: g.CenterX, Y: top - spread, VX: 0, VY: -2 * scale, Opacity: 1},
	)
}

// Step integrates every particle by one frame and drops the faded ones.
// The backing array is reused.
func (ps *Particles) Step(decay float64) {
	live := (*ps)[:0]
	for _, p := range *ps {
		p.X += p.VX
		p.Y += p.VY
		p.Opacity -= decay
		if !p.Alive() {
			continue
		}
		live = append(live, p)
	}
	clear((*ps)[len(live):])
	*ps = live
}

// Clone returns a copy that does not share the backing array.
func (ps Particles) Clone() Particles {
	if ps == nil {
		return nil
	}
	out := make(Particles, len(ps))
	copy(out, ps)
	return out
}
