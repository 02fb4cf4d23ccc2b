package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/bloom/internal/config"
	"github.com/san-kum/bloom/internal/gui"
	"github.com/san-kum/bloom/internal/tui"
	"github.com/san-kum/bloom/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	debug      bool
	// Play
	startInGarden bool
	// Simulate
	scenarioFile string
	simWaters    int
	simTicks     int
	compare      bool
	plot         bool
	live         bool
	realtime     bool
	saveRun      bool
	jsonOut      string
	csvOut       string
	// Watch
	watchWaters int
	watchTicks  int
	// Render
	renderWaters int
	renderTicks  int
	stageName    string
	size         int
	svgOut       string
	pngOut       string
	gifOut       string
	seriesOut    string
	gifFrames    int
	gifEvery     int
)

var logFile *os.File

// main registers the bloom commands and runs the terminal garden when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:               "bloom",
		Short:             "grow a flower one drop at a time",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		RunE: runPlay,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".bloom", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset tuning")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log to debug.log")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "grow a flower in the terminal",
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&startInGarden, "garden", false, "skip the landing page")

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "grow a flower in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gui.Run(cfg, startInGarden)
			return nil
		},
	}
	windowCmd.Flags().BoolVar(&startInGarden, "garden", false, "skip the landing page")

	simulateCmd := &cobra.Command{
		Use:   "simulate [name]",
		Short: "run a headless watering script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file (yaml)")
	simulateCmd.Flags().IntVar(&simWaters, "waters", -1, "waterings (default: enough to bloom)")
	simulateCmd.Flags().IntVar(&simTicks, "ticks", -1, "frames after watering (default: until settled)")
	simulateCmd.Flags().BoolVar(&compare, "compare", false, "run every preset side by side")
	simulateCmd.Flags().BoolVar(&plot, "plot", false, "plot growth and particles")
	simulateCmd.Flags().BoolVar(&live, "live", false, "draw the garden while running")
	simulateCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")
	simulateCmd.Flags().StringVar(&jsonOut, "json", "", "write the run as JSON")
	simulateCmd.Flags().StringVar(&csvOut, "csv", "", "write the trace as CSV")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "water, then play the animation at frame rate",
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&watchWaters, "waters", 1, "waterings before playing")
	watchCmd.Flags().IntVar(&watchTicks, "ticks", 120, "frames to play")
	watchCmd.Flags().BoolVar(&realtime, "realtime", true, "pace frames at the configured frame rate")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one garden state to the terminal or a file",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&stageName, "stage", "", "stage to render (seed, sprout, bud, bloom)")
	renderCmd.Flags().IntVar(&renderWaters, "waters", 0, "waterings before rendering")
	renderCmd.Flags().IntVar(&renderTicks, "ticks", 0, "frames before rendering")
	renderCmd.Flags().IntVar(&size, "size", 400, "canvas size in pixels")
	renderCmd.Flags().StringVar(&svgOut, "svg", "", "write an SVG")
	renderCmd.Flags().StringVar(&pngOut, "png", "", "write a PNG")
	renderCmd.Flags().StringVar(&gifOut, "gif", "", "write an animated GIF of the following frames")
	renderCmd.Flags().IntVar(&gifFrames, "frames", 40, "frames in the GIF")
	renderCmd.Flags().IntVar(&gifEvery, "every", 2, "keep every n-th frame in the GIF")
	renderCmd.Flags().StringVar(&seriesOut, "series-svg", "", "write the stem height over a bloom run as SVG")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print saved run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "print the effective config, or save it to path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return config.Save(args[0], cfg)
			}
			return printYAML(os.Stdout, cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				t := config.Presets[name]
				fmt.Printf("  %-8s growth %-5g decay %-6g pulse %-5g bloom %g\n",
					name, t.GrowthIncrement, t.ParticleDecay, t.PulseStep, t.BloomStep)
			}
		},
	}

	rootCmd.AddCommand(playCmd, windowCmd, simulateCmd, watchCmd, renderCmd, runsCmd, showCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorText.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

// setup routes the log package to debug.log under --debug and silences it
// otherwise, since the terminal belongs to the UI.
func setup(cmd *cobra.Command, args []string) error {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile("debug.log", "bloom")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	logFile = f
	return nil
}

// loadConfig builds the effective config: defaults, then the config file,
// then flags.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Tuning = p.Tuning
	}
	if theme != "" {
		cfg.Display.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	var opts []tui.Option
	if startInGarden {
		opts = append(opts, tui.StartInGarden())
	}
	return tui.RunInteractive(cfg, opts...)
}
