package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/bloom/internal/garden"
)

// Simulator drives a garden through a script without any frontend.
type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, script Script, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	g := garden.New(cfg.Params, garden.NewGeometry(cfg.Size))
	result := &Result{Metrics: make(map[string]float64)}
	if cfg.Record {
		result.Samples = make([]Sample, 0, script.Len())
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for _, st := range script {
		for i := 0; i < st.Count; i++ {
			select {
			case <-ctx.Done():
				s.finish(result, g)
				return result, ctx.Err()
			default:
			}

			switch st.Action {
			case ActionWater:
				g.Water()
			case ActionTick:
				g.Tick()
			default:
				return nil, fmt.Errorf("step %d: unknown action %d", result.Steps, st.Action)
			}

			snap := g.Snapshot()
			for _, m := range s.metrics {
				m.Observe(st.Action, snap)
			}
			for _, obs := range s.observers {
				obs.OnStep(st.Action, snap)
			}
			if cfg.Record {
				result.Samples = append(result.Samples, NewSample(result.Steps, st.Action, snap))
			}
			result.Steps++
		}
	}

	s.finish(result, g)
	return result, nil
}

func (s *Simulator) finish(result *Result, g *garden.Garden) {
	result.Final = g.Snapshot()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if err := cfg.Params.Validate(); err != nil {
		return err
	}
	if cfg.Size <= 0 {
		return fmt.Errorf("canvas size must be positive, got %f", cfg.Size)
	}
	return nil
}
