package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/sim"
)

// Store keeps one directory per simulated session. Runs are diagnostics
// only; nothing here restores a garden.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Params    ParamsData         `json:"params"`
	Steps     int                `json:"steps"`
	Stage     string             `json:"final_stage"`
	Metrics   map[string]float64 `json:"metrics"`
}

type ParamsData struct {
	GrowthIncrement float64 `json:"growth_increment"`
	ParticleDecay   float64 `json:"particle_decay"`
	PulseStep       float64 `json:"pulse_step"`
	BloomStep       float64 `json:"bloom_step"`
}

func paramsData(p garden.Params) ParamsData {
	return ParamsData{
		GrowthIncrement: p.GrowthIncrement,
		ParticleDecay:   p.ParticleDecay,
		PulseStep:       p.PulseStep,
		BloomStep:       p.BloomStep,
	}
}

// Save writes metadata.json and trace.csv into a new run directory and
// returns the run id.
func (s *Store) Save(name, preset string, params garden.Params, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Preset:    preset,
		Timestamp: now,
		Params:    paramsData(params),
		Steps:     result.Steps,
		Stage:     result.Final.Growth.Stage.String(),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result.Samples); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the metadata of every run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
