package garden

import "math"

const (
	DefaultPulseStep = 0.05
	DefaultBloomStep = 0.05

	pulseAmplitude = 0.1
	pulseCenter    = 0.9
)

// Phase is the cosmetic animation state: the breathing pulse and the petal
// unfold ramp of the terminal stage.
type Phase struct {
	Pulse      float64
	BloomScale float64
}

// PulseScale is the breathing factor applied to most shapes, in [0.8, 1.0].
func (p Phase) PulseScale() float64 {
	return math.Sin(p.Pulse)*pulseAmplitude + pulseCenter
}

// Advance moves the phase one frame forward for a flower in stage s.
// BloomScale only ramps in the terminal stage and drops to zero elsewhere.
func (p *Phase) Advance(s Stage, pulseStep, bloomStep float64) {
	p.Pulse += pulseStep

	if !s.Terminal() {
		p.BloomScale = 0
		return
	}
	if p.BloomScale >= 1 {
		p.BloomScale = 1
		return
	}
	p.BloomScale += bloomStep
	if p.BloomScale > 1-fadeEpsilon {
		p.BloomScale = 1
	}
	if p.BloomScale < 0 {
		p.BloomScale = 0
	}
}
