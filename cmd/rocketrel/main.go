package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/raheelusc/rocket-relations/ideal"
	"github.com/raheelusc/rocket-relations/internal/config"
	"github.com/raheelusc/rocket-relations/internal/gas"
	"github.com/raheelusc/rocket-relations/internal/storage"
	"github.com/raheelusc/rocket-relations/internal/sweep"
	"github.com/raheelusc/rocket-relations/internal/tui"
)

var (
	dataDir    string
	configFile string
	gasName    string
	gasFile    string

	gamma   float64
	rs      float64
	t0      float64
	peP0    float64
	paP0    float64
	aeAstar float64

	// Sweep parameters
	quantity string
	from     float64
	to       float64
	points   int
	plot     bool
	metric   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rocketrel",
		Short: "ideal rocket performance relations",
		Long:  "closed-form characteristic velocity and thrust coefficient for ideal isentropic nozzle flow",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rocketrel", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "case file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&gasName, "gas", "", "gas preset name")
	rootCmd.PersistentFlags().StringVar(&gasFile, "gas-file", "", "user gas table (yaml)")

	cstarCmd := &cobra.Command{
		Use:   "cstar",
		Short: "characteristic velocity",
		RunE:  runCstar,
	}
	addGasFlags(cstarCmd)

	cfCmd := &cobra.Command{
		Use:   "cf",
		Short: "thrust coefficient",
		RunE:  runCF,
	}
	addGasFlags(cfCmd)
	addNozzleFlags(cfCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate over a grid of one input",
		RunE:  runSweep,
	}
	addGasFlags(sweepCmd)
	addNozzleFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&quantity, "quantity", "pe_p0", "input to vary")
	sweepCmd.Flags().Float64Var(&from, "from", 0.002, "grid start")
	sweepCmd.Flags().Float64Var(&to, "to", 0.2, "grid end")
	sweepCmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	sweepCmd.Flags().BoolVar(&plot, "plot", false, "plot result")
	sweepCmd.Flags().StringVar(&metric, "metric", "cf", "metric to plot (cstar|cf)")

	gasesCmd := &cobra.Command{
		Use:   "gases",
		Short: "list gas presets",
		RunE:  listGases,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweeps",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().StringVar(&metric, "metric", "cf", "metric to plot (cstar|cf)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(cstarCmd, cfCmd, sweepCmd, gasesCmd, listCmd, showCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGasFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "ratio of specific heats")
	cmd.Flags().Float64Var(&rs, "rs", config.DefaultRs, "specific gas constant [J/(kg·K)]")
	cmd.Flags().Float64Var(&t0, "t0", config.DefaultT0, "stagnation temperature [K]")
}

func addNozzleFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&peP0, "pe-p0", config.DefaultPeP0, "exit pressure ratio")
	cmd.Flags().Float64Var(&paP0, "pa-p0", config.DefaultPaP0, "ambient pressure ratio")
	cmd.Flags().Float64Var(&aeAstar, "ae-astar", config.DefaultAeAstar, "area expansion ratio")
}

// resolveInputs merges, in increasing precedence: defaults, case file,
// gas preset, explicit flags.
func resolveInputs(cmd *cobra.Command) (sweep.Inputs, error) {
	in := sweep.Inputs{
		Gamma:        gamma,
		Rs:           rs,
		T0:           t0,
		RatioPeP0:    peP0,
		RatioPaP0:    paP0,
		RatioAeAstar: aeAstar,
	}

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return in, fmt.Errorf("failed to load case file: %w", err)
		}
		if gasName == "" {
			gasName = c.Gas.Preset
		}
		if !cmd.Flags().Changed("gamma") {
			in.Gamma = c.Gas.Gamma
		}
		if !cmd.Flags().Changed("rs") {
			in.Rs = c.Gas.Rs
		}
		if !cmd.Flags().Changed("t0") {
			in.T0 = c.Gas.T0
		}
		if f := cmd.Flags().Lookup("pe-p0"); f != nil && !f.Changed {
			in.RatioPeP0 = c.Nozzle.RatioPeP0
		}
		if f := cmd.Flags().Lookup("pa-p0"); f != nil && !f.Changed {
			in.RatioPaP0 = c.Nozzle.RatioPaP0
		}
		if f := cmd.Flags().Lookup("ae-astar"); f != nil && !f.Changed {
			in.RatioAeAstar = c.Nozzle.RatioAeAstar
		}
		if f := cmd.Flags().Lookup("quantity"); f != nil && !f.Changed && c.Sweep.Quantity != "" {
			quantity = c.Sweep.Quantity
			if !cmd.Flags().Changed("from") {
				from = c.Sweep.From
			}
			if !cmd.Flags().Changed("to") {
				to = c.Sweep.To
			}
			if !cmd.Flags().Changed("points") {
				points = c.Sweep.Points
			}
		}
	}

	if gasName != "" {
		props, err := lookupGas(gasName)
		if err != nil {
			return in, err
		}
		if !cmd.Flags().Changed("gamma") {
			in.Gamma = props.Gamma
		}
		if !cmd.Flags().Changed("rs") {
			in.Rs = props.Rs
		}
		if !cmd.Flags().Changed("t0") {
			in.T0 = props.T0
		}
	}

	return in, nil
}

func lookupGas(name string) (gas.Properties, error) {
	if gasFile != "" {
		table, err := gas.LoadTable(gasFile)
		if err != nil {
			return gas.Properties{}, fmt.Errorf("failed to load gas table: %w", err)
		}
		if props, ok := table[name]; ok {
			return props, nil
		}
	}
	props, ok := gas.Get(name)
	if !ok {
		return gas.Properties{}, fmt.Errorf("unknown gas: %s (available: %v)", name, gas.List())
	}
	return props, nil
}

func runCstar(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	cstar, err := ideal.SolveCstar(in.Gamma, in.Rs, in.T0)
	if err != nil {
		return err
	}

	fmt.Printf("gamma: %g  Rs: %g J/(kg·K)  T0: %g K\n", in.Gamma, in.Rs, in.T0)
	fmt.Printf("c* = %.4f m/s\n", cstar)
	return nil
}

func runCF(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	cf, err := ideal.SolveCF(in.Gamma, in.RatioPeP0, in.RatioPaP0, in.RatioAeAstar)
	if err != nil {
		return err
	}

	fmt.Printf("gamma: %g  pe/p0: %g  pa/p0: %g  Ae/A*: %g\n",
		in.Gamma, in.RatioPeP0, in.RatioPaP0, in.RatioAeAstar)
	fmt.Printf("CF = %.7f\n", cf)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	series, err := sweep.Run(in, quantity, from, to, points)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(series, in)
	if err != nil {
		return err
	}

	fmt.Printf("swept %s over [%g, %g], %d points\n", quantity, from, to, points)
	fmt.Printf("run id: %s\n", runID)

	n := len(series.Grid)
	fmt.Printf("c*: %.4f .. %.4f m/s\n", series.Cstar[0], series.Cstar[n-1])
	fmt.Printf("CF: %.7f .. %.7f\n", series.CF[0], series.CF[n-1])

	if plot {
		data, caption, err := metricColumn(series, metric)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
	}

	return nil
}

func metricColumn(series *sweep.Series, metric string) ([]float64, string, error) {
	switch metric {
	case "cstar":
		return series.Cstar, fmt.Sprintf("c* [m/s] vs %s", series.Quantity), nil
	case "cf":
		return series.CF, fmt.Sprintf("CF vs %s", series.Quantity), nil
	default:
		return nil, "", fmt.Errorf("unknown metric: %s (available: cstar, cf)", metric)
	}
}

func listGases(cmd *cobra.Command, args []string) error {
	table := gas.Presets
	if gasFile != "" {
		loaded, err := gas.LoadTable(gasFile)
		if err != nil {
			return fmt.Errorf("failed to load gas table: %w", err)
		}
		table = loaded
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGAMMA\tRS\tT0")

	for _, name := range names {
		props := table[name]
		fmt.Fprintf(w, "%s\t%.2f\t%.0f\t%.0f\n", name, props.Gamma, props.Rs, props.T0)
	}

	return w.Flush()
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
	fmt.Fprintln(w, "ID\tQUANTITY\tTIME\tRANGE\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\n",
			run.ID,
			run.Quantity,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.From,
			run.To,
			run.Points,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	rows, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("swept %s over [%g, %g]\n", meta.Quantity, meta.From, meta.To)
	fmt.Printf("samples: %d\n\n", len(rows))

	series := &sweep.Series{
		Quantity: meta.Quantity,
		Grid:     make([]float64, len(rows)),
		Cstar:    make([]float64, len(rows)),
		CF:       make([]float64, len(rows)),
	}
	for i, row := range rows {
		series.Grid[i] = row.Value
		series.Cstar[i] = row.Cstar
		series.CF[i] = row.CF
	}

	data, caption, err := metricColumn(series, metric)
	if err != nil {
		return err
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))

	return nil
}
