package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bloom/internal/garden"
)

const (
	DefaultFrameRate  = 60
	DefaultMaxCanvas  = garden.ReferenceSize
	DefaultTheme      = "rose"
	DefaultWindowSize = 800
)

var ErrInvalidConfig = errors.New("config: invalid config")

type Config struct {
	Tuning  TuningConfig  `yaml:"tuning"`
	Display DisplayConfig `yaml:"display"`
}

// TuningConfig holds the growth and animation knobs.
type TuningConfig struct {
	GrowthIncrement float64 `yaml:"growth_increment"`
	ParticleDecay   float64 `yaml:"particle_decay"`
	PulseStep       float64 `yaml:"pulse_step"`
	BloomStep       float64 `yaml:"bloom_step"`
}

type DisplayConfig struct {
	Theme            string  `yaml:"theme"`
	FrameRate        int     `yaml:"frame_rate"`
	MaxCanvas        float64 `yaml:"max_canvas"`
	ViewportFraction float64 `yaml:"viewport_fraction"`
	WindowWidth      int     `yaml:"window_width"`
	WindowHeight     int     `yaml:"window_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Tuning: TuningConfig{
			GrowthIncrement: garden.DefaultGrowthIncrement,
			ParticleDecay:   garden.DefaultParticleDecay,
			PulseStep:       garden.DefaultPulseStep,
			BloomStep:       garden.DefaultBloomStep,
		},
		Display: DisplayConfig{
			Theme:            DefaultTheme,
			FrameRate:        DefaultFrameRate,
			MaxCanvas:        DefaultMaxCanvas,
			ViewportFraction: garden.DefaultViewportFraction,
			WindowWidth:      DefaultWindowSize,
			WindowHeight:     DefaultWindowSize,
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: tuning: %w", ErrInvalidConfig, err)
	}
	d := c.Display
	if d.FrameRate <= 0 || d.FrameRate > 240 {
		return fmt.Errorf("%w: frame rate %d not in [1, 240]", ErrInvalidConfig, d.FrameRate)
	}
	if d.MaxCanvas <= 0 {
		return fmt.Errorf("%w: max canvas %.0f must be positive", ErrInvalidConfig, d.MaxCanvas)
	}
	if d.ViewportFraction <= 0 || d.ViewportFraction > 1 {
		return fmt.Errorf("%w: viewport fraction %.2f not in (0, 1]", ErrInvalidConfig, d.ViewportFraction)
	}
	if d.WindowWidth <= 0 || d.WindowHeight <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, d.WindowWidth, d.WindowHeight)
	}
	return nil
}

// Params converts the tuning section for the garden.
func (c *Config) Params() garden.Params {
	return garden.Params{
		GrowthIncrement: c.Tuning.GrowthIncrement,
		ParticleDecay:   c.Tuning.ParticleDecay,
		PulseStep:       c.Tuning.PulseStep,
		BloomStep:       c.Tuning.BloomStep,
	}
}

// FrameInterval is the time between animation frames.
func (c *Config) FrameInterval() time.Duration {
	if c.Display.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.Display.FrameRate)
}

// Fit sizes the canvas for a viewport using the display settings.
func (c *Config) Fit(viewportWidth, viewportHeight float64) garden.Geometry {
	return garden.FitViewport(viewportWidth, viewportHeight, c.Display.ViewportFraction, c.Display.MaxCanvas)
}
