package main

import (
	"fmt"
	"os"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/algolab/internal/algo"
	"github.com/san-kum/algolab/internal/anim"
	"github.com/san-kum/algolab/internal/config"
	"github.com/san-kum/algolab/internal/store"
	"github.com/san-kum/algolab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	size       int
	caseName   string
	seed       int64
	speedMS    int
	save       bool
	configFile string
	preset     string
)

// main registers the CLI commands; running with no subcommand opens the
// interactive player. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algolab",
		Short: "interactive algorithm animation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(algo.NewRegistry())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the algorithm catalog",
		RunE:  listCatalog,
	}

	infoCmd := &cobra.Command{
		Use:   "info [algorithm]",
		Short: "show algorithm details and pseudocode",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "generate a step trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&size, "size", 0, "input size (0 = algorithm default)")
	traceCmd.Flags().StringVar(&caseName, "case", "average", "input case: best, average, worst")
	traceCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	traceCmd.Flags().BoolVar(&save, "save", false, "persist the trace to the data directory")
	traceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	watchCmd := &cobra.Command{
		Use:   "watch [algorithm]",
		Short: "play a trace live in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&size, "size", 0, "input size (0 = algorithm default)")
	watchCmd.Flags().StringVar(&caseName, "case", "average", "input case: best, average, worst")
	watchCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	watchCmd.Flags().IntVar(&speedMS, "speed", config.DefaultSpeedMS, "milliseconds per step")

	statsCmd := &cobra.Command{
		Use:   "stats [algorithm]",
		Short: "plot counter growth over a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&size, "size", 0, "input size (0 = algorithm default)")
	statsCmd.Flags().StringVar(&caseName, "case", "average", "input case: best, average, worst")
	statsCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm]",
		Short: "compare best, average and worst cases",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	compareCmd.Flags().IntVar(&size, "size", 0, "input size (0 = algorithm default)")
	compareCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved traces",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "replay a saved trace step by step",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved trace's counters to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [algorithm]",
		Short: "list available presets for an algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for algorithm: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, infoCmd, traceCmd, watchCmd, statsCmd, compareCmd,
		runsCmd, showCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// prepare resolves the algorithm and generates a trace from the flags,
// applying preset and config-file values where the flags were left at
// their defaults.
func prepare(cmd *cobra.Command, id string) (algo.Algorithm, []anim.Step, int, algo.Case, error) {
	registry := algo.NewRegistry()
	alg, err := registry.Get(id)
	if err != nil {
		return nil, nil, 0, "", err
	}
	info := alg.Info()

	if preset != "" {
		cfg := config.GetPreset(id, preset)
		if cfg == nil {
			return nil, nil, 0, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(id))
		}
		size = cfg.Size
		caseName = cfg.Case
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, 0, "", fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("size") {
			size = cfg.Size
		}
		if !cmd.Flags().Changed("case") {
			caseName = cfg.Case
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	c := algo.Case(caseName)
	switch c {
	case algo.CaseBest, algo.CaseAverage, algo.CaseWorst:
	default:
		return nil, nil, 0, "", fmt.Errorf("unknown case: %s", caseName)
	}

	n := size
	if n == 0 {
		n = info.DefaultSize
	}
	if n < info.MinSize {
		n = info.MinSize
	}
	if n > info.MaxSize {
		n = info.MaxSize
	}

	algo.SetSeed(seed)
	in := alg.GenerateInput(n, c)
	steps := alg.GenerateSteps(in)
	return alg, steps, n, c, nil
}

func listCatalog(cmd *cobra.Command, args []string) error {
	registry := algo.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tAVG\tSPACE\tCASES")

	for _, info := range registry.List() {
		cases := "-"
		if info.SupportsCases {
			cases = "best/avg/worst"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.Name, info.Category,
			info.Complexity.Average, info.Complexity.Space, cases)
	}

	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	registry := algo.NewRegistry()
	alg, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	info := alg.Info()

	fmt.Printf("%s (%s)\n", info.Name, info.ID)
	fmt.Printf("category: %s\n", info.Category)
	fmt.Printf("\n%s\n", info.Description)
	fmt.Printf("\ncomplexity: best %s, average %s, worst %s, space %s\n",
		info.Complexity.Best, info.Complexity.Average, info.Complexity.Worst, info.Complexity.Space)
	fmt.Printf("input size: %d-%d (default %d)\n", info.MinSize, info.MaxSize, info.DefaultSize)

	fmt.Println("\npseudocode:")
	for i, line := range info.Pseudocode {
		fmt.Printf("  %2d  %s\n", i, line)
	}

	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	alg, steps, n, c, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	info := alg.Info()

	fmt.Printf("%s  size=%d case=%s seed=%d\n\n", info.ID, n, c, seed)
	for _, step := range steps {
		fmt.Printf("%3d  [c=%d s=%d]  %s\n", step.ID, step.Comparisons, step.Swaps, step.Description)
	}
	last := steps[len(steps)-1]
	fmt.Printf("\n%d steps, %d comparisons, %d swaps\n", len(steps), last.Comparisons, last.Swaps)

	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(info.ID, n, string(c), seed, steps)
		if err != nil {
			return err
		}
		fmt.Printf("saved as %s\n", runID)
	}

	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	alg, steps, n, c, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	info := alg.Info()

	watcher := tui.NewWatcher(fmt.Sprintf("%s (size=%d, %s)", info.ID, n, c))
	watcher.Start()
	defer watcher.Stop()

	done := make(chan struct{})
	var once sync.Once

	engine := anim.NewEngine()
	engine.SetListener(func(st anim.State) {
		watcher.OnChange(st)
		if st.TotalSteps > 0 && st.Current == st.TotalSteps-1 && !st.Playing {
			once.Do(func() { close(done) })
		}
	})
	engine.LoadSteps(steps)
	engine.SetSpeed(time.Duration(speedMS) * time.Millisecond)
	engine.Play()

	<-done
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	alg, steps, n, c, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	info := alg.Info()

	comparisons := make([]float64, len(steps))
	swaps := make([]float64, len(steps))
	for i, step := range steps {
		comparisons[i] = float64(step.Comparisons)
		swaps[i] = float64(step.Swaps)
	}

	fmt.Printf("%s  size=%d case=%s\n\n", info.ID, n, c)

	graph := asciigraph.Plot(comparisons,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("comparisons over trace steps"),
	)
	fmt.Println(graph)
	fmt.Println()

	last := steps[len(steps)-1]
	if last.Swaps > 0 {
		graph = asciigraph.Plot(swaps,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("swaps over trace steps"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	fmt.Printf("steps: %d\ncomparisons: %d\nswaps: %d\npeak memory: %dB\n",
		len(steps), last.Comparisons, last.Swaps, peakMemory(steps))
	return nil
}

func peakMemory(steps []anim.Step) int {
	peak := 0
	for _, s := range steps {
		if s.MemoryBytes > peak {
			peak = s.MemoryBytes
		}
	}
	return peak
}

func runCompare(cmd *cobra.Command, args []string) error {
	registry := algo.NewRegistry()
	alg, err := registry.Get(args[0])
	if err != nil {
		return err
	}
	info := alg.Info()

	if !info.SupportsCases {
		return fmt.Errorf("%s has no distinct best/average/worst inputs", info.ID)
	}

	n := size
	if n == 0 {
		n = info.DefaultSize
	}

	fmt.Printf("comparing cases for %s (size=%d, seed=%d)\n\n", info.ID, n, seed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tSTEPS\tCOMPARISONS\tSWAPS\tPEAK MEMORY")

	for _, c := range []algo.Case{algo.CaseBest, algo.CaseAverage, algo.CaseWorst} {
		algo.SetSeed(seed)
		steps := alg.GenerateSteps(alg.GenerateInput(n, c))
		last := steps[len(steps)-1]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%dB\n",
			c, len(steps), last.Comparisons, last.Swaps, peakMemory(steps))
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved traces")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tCASE\tSTEPS\tCOMPARISONS\tSWAPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Case,
			run.Steps,
			run.Comparisons,
			run.Swaps,
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
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  size=%d case=%s seed=%d\n\n", meta.Algorithm, meta.Size, meta.Case, meta.Seed)
	for _, step := range steps {
		fmt.Printf("%3d  [c=%d s=%d]  %s\n", step.ID, step.Comparisons, step.Swaps, step.Description)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	return store.ExportJSON(os.Stdout, meta, steps)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}
	return store.ExportCSV(os.Stdout, steps)
}
