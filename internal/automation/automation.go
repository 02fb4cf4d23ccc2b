package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bloom/internal/config"
	"github.com/san-kum/bloom/internal/sim"
)

var ErrUnknownAction = errors.New("automation: unknown action")

// Scenario defines a scripted garden session
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preset      string         `yaml:"preset"`
	Size        float64        `yaml:"size"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep repeats one action. Count defaults to 1.
type ScenarioStep struct {
	Action string `yaml:"action"`
	Count  int    `yaml:"count"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes and checks a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if _, err := scenario.Script(); err != nil {
		return nil, err
	}
	if scenario.Preset != "" && config.GetPreset(scenario.Preset) == nil {
		return nil, fmt.Errorf("unknown preset %q", scenario.Preset)
	}
	return &scenario, nil
}

// Script converts the steps for the simulator.
func (s *Scenario) Script() (sim.Script, error) {
	script := make(sim.Script, 0, len(s.Steps))
	for i, step := range s.Steps {
		var action sim.Action
		switch strings.ToLower(strings.TrimSpace(step.Action)) {
		case "water", "w":
			action = sim.ActionWater
		case "tick", "frame", "wait":
			action = sim.ActionTick
		default:
			return nil, fmt.Errorf("step %d: %w %q", i+1, ErrUnknownAction, step.Action)
		}
		count := step.Count
		if count == 0 {
			count = 1
		}
		if count < 0 {
			return nil, fmt.Errorf("step %d: negative count %d", i+1, count)
		}
		script = append(script, sim.Step{Action: action, Count: count})
	}
	return script, nil
}

// Config resolves the scenario's preset and canvas on top of base.
func (s *Scenario) Config(base *config.Config) sim.Config {
	cfg := base
	if p := config.GetPreset(s.Preset); p != nil {
		cfg = p
	}
	size := s.Size
	if size <= 0 {
		size = cfg.Display.MaxCanvas
	}
	return sim.Config{Params: cfg.Params(), Size: size, Record: true}
}

// RunScenario executes the scenario on a fresh garden.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, s *sim.Simulator) (*sim.Result, error) {
	script, err := scenario.Script()
	if err != nil {
		return nil, err
	}
	result, err := s.Run(ctx, script, scenario.Config(base))
	if err != nil {
		return result, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return result, nil
}
