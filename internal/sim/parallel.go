package sim

import (
	"context"
	"sync"
)

// Ensemble runs the same script under several configs at once. Every run
// gets its own simulator and fresh metrics from newMetrics.
type Ensemble struct {
	newMetrics func() []Metric
}

func NewEnsemble(newMetrics func() []Metric) *Ensemble {
	return &Ensemble{newMetrics: newMetrics}
}

func (e *Ensemble) Run(ctx context.Context, script Script, cfgs []Config) ([]*Result, error) {
	results := make([]*Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i := range cfgs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := New()
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}
			results[idx], errs[idx] = s.Run(ctx, script, cfgs[idx])
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
