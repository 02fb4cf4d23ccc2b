package metrics

import (
	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/sim"
)

type PeakParticles struct {
	name string
	peak int
}

func NewPeakParticles() *PeakParticles {
	return &PeakParticles{name: "peak_particles"}
}

func (p *PeakParticles) Name() string { return p.name }

func (p *PeakParticles) Observe(a sim.Action, s garden.Snapshot) {
	if n := len(s.Particles); n > p.peak {
		p.peak = n
	}
}

func (p *PeakParticles) Value() float64 { return float64(p.peak) }
func (p *PeakParticles) Reset()         { p.peak = 0 }

// MeanParticles averages the live particle count over animation frames.
type MeanParticles struct {
	name    string
	sum     float64
	samples int
}

func NewMeanParticles() *MeanParticles {
	return &MeanParticles{name: "mean_particles"}
}

func (m *MeanParticles) Name() string { return m.name }

func (m *MeanParticles) Observe(a sim.Action, s garden.Snapshot) {
	if a != sim.ActionTick {
		return
	}
	m.sum += float64(len(s.Particles))
	m.samples++
}

func (m *MeanParticles) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanParticles) Reset() {
	m.sum = 0
	m.samples = 0
}

// All returns a fresh instance of every session metric.
func All() []sim.Metric {
	return []sim.Metric{
		NewWatersToBloom(),
		NewBloomSaturation(),
		NewPeakParticles(),
		NewMeanParticles(),
	}
}
