package metrics

import (
	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/sim"
)

// WatersToBloom is the number of waterings it took to reach the last stage,
// or -1 while the flower has not bloomed.
type WatersToBloom struct {
	name   string
	waters int
	done   bool
}

func NewWatersToBloom() *WatersToBloom {
	return &WatersToBloom{name: "waters_to_bloom"}
}

func (w *WatersToBloom) Name() string { return w.name }

func (w *WatersToBloom) Observe(a sim.Action, s garden.Snapshot) {
	if w.done {
		return
	}
	if s.Growth.Bloomed() {
		w.waters = s.Waterings
		w.done = true
	}
}

func (w *WatersToBloom) Value() float64 {
	if !w.done {
		return -1
	}
	return float64(w.waters)
}

func (w *WatersToBloom) Reset() {
	w.waters = 0
	w.done = false
}

// BloomSaturation counts the frames between the first frame in bloom and the
// frame the petals finish unfolding, or -1 while they are still unfolding.
type BloomSaturation struct {
	name   string
	frames int
	done   bool
}

func NewBloomSaturation() *BloomSaturation {
	return &BloomSaturation{name: "bloom_saturation_frames"}
}

func (b *BloomSaturation) Name() string { return b.name }

func (b *BloomSaturation) Observe(a sim.Action, s garden.Snapshot) {
	if b.done || a != sim.ActionTick || !s.Growth.Bloomed() {
		return
	}
	b.frames++
	if s.Phase.BloomScale >= 1 {
		b.done = true
	}
}

func (b *BloomSaturation) Value() float64 {
	if !b.done {
		return -1
	}
	return float64(b.frames)
}

func (b *BloomSaturation) Reset() {
	b.frames = 0
	b.done = false
}
