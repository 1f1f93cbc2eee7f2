package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/export"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/runner"
	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/viz"
	"github.com/san-kum/wavesim/internal/wave"
)

var (
	dataDir    string
	frames     int
	fps        float64
	probe      int
	configFile string
	preset     string
	outPath    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wavesim",
		Short: "1d wave equation playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and store the result",
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated terminal view",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the probe sample of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the probe sample",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the profile after N steps to SVG",
		RunE:  snapshotSVG,
	}
	addRunFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&outPath, "out", "wave.svg", "output path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list run presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark stepping throughput",
		RunE:  benchStepper,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, snapshotCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	cmd.Flags().Float64Var(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().IntVar(&probe, "probe", config.DefaultProbe, "probe sample index")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadRunConfig merges preset, config file, and CLI flags; flags win.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("frames") {
		cfg.Frames = frames
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("probe") {
		cfg.Probe = probe
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	} else if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}

	return cfg, nil
}

func newRunner(stepper *wave.Stepper, sink wave.Sink) *runner.Runner {
	r := runner.New(stepper, sink)
	r.AddMetric(metrics.NewEnergy())
	r.AddMetric(metrics.NewPeakAmplitude())
	r.AddMetric(metrics.NewSymmetryError())
	return r
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	r := newRunner(wave.New(), nil)

	fmt.Println("running wave simulation...")
	start := time.Now()

	result, err := r.Run(context.Background(), runner.Config{Frames: cfg.Frames, FPS: cfg.FPS})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Frames, cfg.FPS, cfg.Probe, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	m := viz.NewModel(wave.New(), cfg.FPS)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFRAMES\tFPS\tPROBE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.FPS,
			run.Probe,
		)
	}

	return w.Flush()
}

// probeSeries extracts one sample's time series from recorded states.
func probeSeries(states [][]float64, idx int) []float64 {
	series := make([]float64, len(states))
	for i := range states {
		if idx >= 0 && idx < len(states[i]) {
			series[i] = states[i][idx]
		}
	}
	return series
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	series := probeSeries(states, meta.Probe)
	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("u[%d] vs time", meta.Probe)),
	)
	fmt.Println(graph)
	fmt.Println()

	peaks := make([]float64, len(states))
	for i, s := range states {
		peaks[i] = wave.Field(s).MaxAbs()
	}
	graph = asciigraph.Plot(peaks,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("peak |u| vs time"),
	)
	fmt.Println(graph)

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	// ps already holds only the distinct-frequency half of the FFT.
	ps := analysis.PowerSpectrum(probeSeries(states, meta.Probe))

	graph := asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (u[%d])", meta.Probe)),
	)
	fmt.Println(graph)
	fmt.Println()

	bin := analysis.DominantBin(ps)
	nfft := 2 * len(ps)
	freq := float64(bin) * meta.FPS / float64(nfft)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("u%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	result := &runner.Result{
		States:  make([]wave.Field, len(states)),
		Times:   times,
		Metrics: meta.Metrics,
	}
	for i, s := range states {
		result.States[i] = s
	}

	return export.WriteJSON(os.Stdout, meta, result)
}

func snapshotSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	renderer := viz.NewProfileRenderer(80, 20)
	r := runner.New(wave.New(), renderer)

	err = r.RunWithCallback(context.Background(), runner.Config{Frames: cfg.Frames, FPS: cfg.FPS},
		func(f wave.Frame) bool { return true })
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteSVG(f, renderer.Canvas(), 4); err != nil {
		return err
	}

	fmt.Printf("wrote %s after %d steps\n", outPath, cfg.Frames)
	return nil
}

func benchStepper(cmd *cobra.Command, args []string) error {
	frameCounts := []int{100, 1000, 10000}

	fmt.Println("benchmarking wave stepper")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tTIME\tSTEPS/SEC")

	for _, n := range frameCounts {
		s := wave.New()

		start := time.Now()
		for i := 0; i < n; i++ {
			s.Step(nil)
		}
		elapsed := time.Since(start)

		stepsPerSec := float64(n) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%v\t%.0f\n", n, elapsed, stepsPerSec)
	}

	return w.Flush()
}
