package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/sim"
)

type ExportData struct {
	Name    string             `json:"name"`
	Preset  string             `json:"preset"`
	Params  ParamsData         `json:"params"`
	Steps   int                `json:"steps"`
	Samples []sim.Sample       `json:"samples"`
	Metrics map[string]float64 `json:"metrics"`
}

func newExportData(name, preset string, params garden.Params, result *sim.Result) ExportData {
	return ExportData{
		Name:    name,
		Preset:  preset,
		Params:  paramsData(params),
		Steps:   result.Steps,
		Samples: result.Samples,
		Metrics: result.Metrics,
	}
}

func ExportJSON(path, name, preset string, params garden.Params, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, name, preset, params, result)
}

// WriteJSON writes the indented trace document to w.
func WriteJSON(w io.Writer, name, preset string, params garden.Params, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(name, preset, params, result))
}

var csvHeader = []string{
	"index", "action", "frame", "waterings", "stage", "progress",
	"stem_height", "pulse", "bloom_scale", "particles",
}

// WriteCSV writes one row per sample.
func WriteCSV(w io.Writer, samples []sim.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Index),
			s.Action.String(),
			strconv.Itoa(s.Frame),
			strconv.Itoa(s.Waterings),
			s.Stage.String(),
			f(s.Progress),
			f(s.StemHeight),
			f(s.Pulse),
			f(s.BloomScale),
			strconv.Itoa(s.Particles),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ExportCSV(path string, samples []sim.Sample) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, samples)
}
