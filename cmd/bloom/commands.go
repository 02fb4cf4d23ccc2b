package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bloom/internal/automation"
	"github.com/san-kum/bloom/internal/config"
	"github.com/san-kum/bloom/internal/export"
	"github.com/san-kum/bloom/internal/garden"
	"github.com/san-kum/bloom/internal/metrics"
	"github.com/san-kum/bloom/internal/scene"
	"github.com/san-kum/bloom/internal/sim"
	"github.com/san-kum/bloom/internal/store"
	"github.com/san-kum/bloom/internal/tui"
	"github.com/san-kum/bloom/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errNegativeCount = errors.New("counts must not be negative")

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}

// buildScript picks the scenario file, the --waters/--ticks pair, or a
// run to bloom, in that order.
func buildScript(cmd *cobra.Command, cfg *config.Config) (sim.Script, sim.Config, string, error) {
	simCfg := sim.Config{Params: cfg.Params(), Size: cfg.Display.MaxCanvas, Record: true}
	name := "bloom"

	if scenarioFile != "" {
		sc, err := automation.LoadScenario(scenarioFile)
		if err != nil {
			return nil, simCfg, "", err
		}
		script, err := sc.Script()
		if err != nil {
			return nil, simCfg, "", err
		}
		if sc.Name != "" {
			name = sc.Name
		}
		return script, sc.Config(cfg), name, nil
	}

	script := sim.ToBloom(cfg.Params())
	if cmd.Flags().Changed("waters") {
		script[0].Count = simWaters
	}
	if cmd.Flags().Changed("ticks") {
		script[1].Count = simTicks
	}
	if script[0].Count < 0 || script[1].Count < 0 {
		return nil, simCfg, "", errNegativeCount
	}
	return script, simCfg, name, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, simCfg, name, err := buildScript(cmd, cfg)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		name = args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if compare {
		return comparePresets(ctx, script, simCfg)
	}

	s := sim.New()
	for _, m := range metrics.All() {
		s.AddMetric(m)
	}
	if live {
		r := tui.NewLiveRenderer(16, cfg.Display.FrameRate)
		r.Start()
		defer r.Stop()
		s.AddObserver(r)
	}

	fmt.Printf("running %s (%d actions)...\n", name, script.Len())
	start := time.Now()
	result, err := s.Run(ctx, script, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("final: %s at %.0f%%\n", result.Final.Growth.Stage, result.Final.Growth.Progress)
	fmt.Println("\nmetrics:")
	printMetrics(os.Stdout, result.Metrics)

	heights := series(result.Samples, func(s sim.Sample) float64 { return s.StemHeight })
	if len(heights) > 0 {
		fmt.Printf("\nstem   %s\n", viz.SparklineChart(heights, 60))
	}

	if plot && len(result.Samples) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(heights,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("stem height"),
		))
		fmt.Println()
		fmt.Println(asciigraph.Plot(series(result.Samples, func(s sim.Sample) float64 { return float64(s.Particles) }),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("particles"),
		))
	}

	if jsonOut != "" {
		if err := store.ExportJSON(jsonOut, name, preset, simCfg.Params, result); err != nil {
			return err
		}
		fmt.Printf("json: %s\n", jsonOut)
	}
	if csvOut != "" {
		if err := store.ExportCSV(csvOut, result.Samples); err != nil {
			return err
		}
		fmt.Printf("csv: %s\n", csvOut)
	}
	if saveRun {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, preset, simCfg.Params, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func comparePresets(ctx context.Context, script sim.Script, base sim.Config) error {
	names := config.ListPresets()
	cfgs := make([]sim.Config, len(names))
	for i, name := range names {
		cfgs[i] = base
		cfgs[i].Params = config.GetPreset(name).Params()
		cfgs[i].Record = false
	}

	results, err := sim.NewEnsemble(metrics.All).Run(ctx, script, cfgs)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTAGE\tPROGRESS\tWATERS TO BLOOM\tPEAK PARTICLES\tMEAN PARTICLES")
	for i, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%.0f\t%.0f\t%.1f\n",
			names[i],
			r.Final.Growth.Stage,
			r.Final.Growth.Progress,
			r.Metrics["waters_to_bloom"],
			r.Metrics["peak_particles"],
			r.Metrics["mean_particles"],
		)
	}
	return w.Flush()
}

func printMetrics(w io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %.3f\n", name, m[name])
	}
}

func series(samples []sim.Sample, f func(sim.Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = f(s)
	}
	return out
}

// runWatch waters, then plays frames through the live renderer at the
// configured frame rate.
func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if watchWaters < 0 || watchTicks < 0 {
		return errNegativeCount
	}

	g := garden.New(cfg.Params(), garden.NewGeometry(cfg.Display.MaxCanvas))
	for i := 0; i < watchWaters; i++ {
		g.Water()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := tui.NewLiveRenderer(16, cfg.Display.FrameRate)
	r.Start()
	defer r.Stop()

	clock := sim.NewClock(cfg.Display.FrameRate)
	if !realtime {
		clock.Interval = time.Microsecond
	}
	err = clock.Run(ctx, g, watchTicks, func(s garden.Snapshot) bool {
		r.OnStep(sim.ActionTick, s)
		return true
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseStage(name string) (garden.Stage, error) {
	for _, s := range garden.Stages {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stage: %s", name)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("size must be positive")
	}

	params := cfg.Params()
	if renderWaters < 0 || renderTicks < 0 {
		return errNegativeCount
	}
	n := renderWaters
	if stageName != "" {
		stage, err := parseStage(stageName)
		if err != nil {
			return err
		}
		n = params.WateringsPerStage() * int(stage)
	}

	g := garden.New(params, garden.NewGeometry(float64(size)))
	for i := 0; i < n; i++ {
		g.Water()
	}
	for i := 0; i < renderTicks; i++ {
		g.Tick()
	}
	sc := scene.Build(g.Snapshot())

	wrote := false
	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.SceneToSVG(sc)), 0644); err != nil {
			return err
		}
		fmt.Printf("svg: %s\n", svgOut)
		wrote = true
	}
	if pngOut != "" {
		if err := writeFile(pngOut, func(w io.Writer) error { return export.WritePNG(w, export.Frame(sc, size)) }); err != nil {
			return err
		}
		fmt.Printf("png: %s\n", pngOut)
		wrote = true
	}
	if gifOut != "" {
		frames := export.Record(g, gifFrames, gifEvery, size)
		delay := 100 * gifEvery / cfg.Display.FrameRate
		if err := writeFile(gifOut, func(w io.Writer) error { return export.FramesToGIF(w, frames, delay) }); err != nil {
			return err
		}
		fmt.Printf("gif: %s (%d frames)\n", gifOut, len(frames))
		wrote = true
	}
	if seriesOut != "" {
		if err := writeSeries(cfg, seriesOut); err != nil {
			return err
		}
		fmt.Printf("series: %s\n", seriesOut)
		wrote = true
	}

	if !wrote {
		c := viz.NewCanvas(40, 20)
		c.Paint(sc)
		fmt.Println(c.Render())
		fmt.Printf("%s  %.0f%%  %s\n", sc.Stage, g.Growth().Progress, sc.Stage.Caption())
	}
	return nil
}

func writeSeries(cfg *config.Config, path string) error {
	result, err := sim.New().Run(context.Background(), sim.ToBloom(cfg.Params()),
		sim.Config{Params: cfg.Params(), Size: cfg.Display.MaxCanvas, Record: true})
	if err != nil {
		return err
	}
	heights := series(result.Samples, func(s sim.Sample) float64 { return s.StemHeight })
	return os.WriteFile(path, []byte(export.SeriesToSVG(heights, 600, 200, "#4caf50")), 0644)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRESET\tTIME\tSTEPS\tSTAGE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Name,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Stage,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
