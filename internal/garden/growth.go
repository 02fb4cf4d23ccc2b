package garden

const (
	// MaxProgress is the progress at which a stage is complete.
	MaxProgress = 100.0

	// DefaultGrowthIncrement is how much one watering adds.
	DefaultGrowthIncrement = 2.0
)

// Growth is the flower's discrete stage plus its progress through it.
// The zero value is a fresh seed.
type Growth struct {
	Stage    Stage
	Progress float64
}

// Trigger applies one watering. Progress is capped at MaxProgress; a full
// non-terminal stage advances to the next one with progress reset to zero.
// Entering the terminal stage pins progress at MaxProgress, and further
// triggers leave the state unchanged.
func (g *Growth) Trigger(increment float64) {
	if g.Stage.Terminal() {
		g.Stage = LastStage
		g.Progress = MaxProgress
		return
	}
	if increment < 0 {
		increment = 0
	}

	g.Progress = clamp(g.Progress+increment, 0, MaxProgress)
	if g.Progress < MaxProgress {
		return
	}

	g.Stage = g.Stage.Next()
	if g.Stage.Terminal() {
		g.Progress = MaxProgress
	} else {
		g.Progress = 0
	}
}

// Bloomed reports whether the flower reached its final stage.
func (g Growth) Bloomed() bool { return g.Stage.Terminal() }
