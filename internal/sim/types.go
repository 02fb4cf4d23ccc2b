package sim

import (
	"github.com/san-kum/bloom/internal/garden"
)

// Action is one of the two things that can happen to a garden.
type Action int

const (
	ActionWater Action = iota
	ActionTick
)

func (a Action) String() string {
	switch a {
	case ActionWater:
		return "water"
	case ActionTick:
		return "tick"
	}
	return "unknown"
}

func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Step repeats an action Count times.
type Step struct {
	Action Action
	Count  int
}

// Script is a sequence of steps run in order.
type Script []Step

// Len is the total number of actions in the script.
func (s Script) Len() int {
	n := 0
	for _, st := range s {
		if st.Count > 0 {
			n += st.Count
		}
	}
	return n
}

// ToBloom waters until the flower blooms and lets the animation settle.
func ToBloom(p garden.Params) Script {
	frames := 0
	if p.ParticleDecay > 0 {
		frames = int(1/p.ParticleDecay + 0.5)
	}
	if p.BloomStep > 0 {
		if n := int(1/p.BloomStep + 0.5); n > frames {
			frames = n
		}
	}
	return Script{
		{Action: ActionWater, Count: p.WateringsPerStage() * int(garden.LastStage)},
		{Action: ActionTick, Count: frames},
	}
}

// Sample is the garden state after one action.
type Sample struct {
	Index      int          `json:"index"`
	Action     Action       `json:"action"`
	Frame      int          `json:"frame"`
	Waterings  int          `json:"waterings"`
	Stage      garden.Stage `json:"stage"`
	Progress   float64      `json:"progress"`
	StemHeight float64      `json:"stem_height"`
	Pulse      float64      `json:"pulse"`
	BloomScale float64      `json:"bloom_scale"`
	Particles  int          `json:"particles"`
}

// NewSample summarizes a snapshot.
func NewSample(i int, a Action, s garden.Snapshot) Sample {
	return Sample{
		Index:      i,
		Action:     a,
		Frame:      s.Frames,
		Waterings:  s.Waterings,
		Stage:      s.Growth.Stage,
		Progress:   s.Growth.Progress,
		StemHeight: s.StemHeight(),
		Pulse:      s.Phase.Pulse,
		BloomScale: s.Phase.BloomScale,
		Particles:  len(s.Particles),
	}
}

type Metric interface {
	Name() string
	Observe(a Action, s garden.Snapshot)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(a Action, s garden.Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(a Action, s garden.Snapshot)

func (f ObserverFunc) OnStep(a Action, s garden.Snapshot) { f(a, s) }

type Config struct {
	Params garden.Params
	Size   float64
	// Record keeps a Sample for every action.
	Record bool
}

type Result struct {
	Samples []Sample
	Metrics map[string]float64
	Final   garden.Snapshot
	Steps   int
}
