package sim

import (
	"context"
	"time"

	"github.com/san-kum/bloom/internal/garden"
)

// Clock ticks a garden at a fixed frame rate in real time.
type Clock struct {
	Interval time.Duration
}

func NewClock(fps int) *Clock {
	if fps <= 0 {
		fps = 60
	}
	return &Clock{Interval: time.Second / time.Duration(fps)}
}

// Run ticks g once per interval for frames frames, calling onFrame after each
// tick. It stops early when ctx is done or onFrame returns false.
func (c *Clock) Run(ctx context.Context, g *garden.Garden, frames int, onFrame func(garden.Snapshot) bool) error {
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		g.Tick()
		if onFrame != nil && !onFrame(g.Snapshot()) {
			return nil
		}
	}
	return nil
}
