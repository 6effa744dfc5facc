package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cyclelab/internal/config"
	"github.com/san-kum/cyclelab/internal/cycles"
	"github.com/san-kum/cyclelab/internal/storage"
	"github.com/san-kum/cyclelab/internal/thermo"
	"github.com/san-kum/cyclelab/internal/tui"
)

var (
	dataDir string

	compressionRatio float64
	pressureRatio    float64
	t1               float64
	p1               float64
	t3               float64
	p3               float64
	t4               float64
	qin              float64
	etaC             float64
	etaT             float64
	etaP             float64
	netPower         float64
	massFlow         float64
	condenserP       float64
	boilerP          float64

	configFile string
	preset     string
	saveRun    bool

	// Sweep range
	sweepFrom float64
	sweepTo   float64
	sweepStep float64

	csvOut  string
	xlsxOut string
)

// inputFlags maps each solve flag to the field it feeds.
var inputFlags = []struct {
	name  string
	field thermo.Field
	ptr   *float64
	usage string
}{
	{"r", thermo.FieldCompressionRatio, &compressionRatio, "compression ratio"},
	{"rp", thermo.FieldPressureRatio, &pressureRatio, "pressure ratio (brayton)"},
	{"t1", thermo.FieldT1, &t1, "inlet temperature [K]"},
	{"p1", thermo.FieldP1, &p1, "inlet pressure [kPa]"},
	{"t3", thermo.FieldT3, &t3, "peak temperature [K]"},
	{"p3", thermo.FieldP3, &p3, "peak pressure [kPa]"},
	{"t4", thermo.FieldT4, &t4, "actual turbine exit temperature [K]"},
	{"qin", thermo.FieldHeatIn, &qin, "heat input [kJ/kg]"},
	{"eta-c", thermo.FieldEtaCompressor, &etaC, "compressor efficiency [%]"},
	{"eta-t", thermo.FieldEtaTurbine, &etaT, "turbine efficiency [%]"},
	{"eta-p", thermo.FieldEtaPump, &etaP, "pump efficiency [%]"},
	{"power", thermo.FieldNetPower, &netPower, "net power output [kW]"},
	{"mdot", thermo.FieldMassFlow, &massFlow, "mass flow rate [kg/s]"},
	{"pcond", thermo.FieldCondenserP, &condenserP, "condenser pressure [kPa] (rankine)"},
	{"pboil", thermo.FieldBoilerP, &boilerP, "boiler pressure [kPa] (rankine)"},
}

func addInputFlags(cmd *cobra.Command) {
	for _, f := range inputFlags {
		cmd.Flags().Float64Var(f.ptr, f.name, 0, f.usage)
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cyclelab",
		Short: "thermodynamic cycle calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cyclelab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [family]",
		Short: "solve a cycle from sparse inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addInputFlags(solveCmd)
	solveCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	familiesCmd := &cobra.Command{
		Use:   "families",
		Short: "list cycle families and their solution pathways",
		RunE:  listFamilies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list available presets for a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for family: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [family]",
		Short: "plot efficiency across the compression or pressure ratio",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addInputFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 2, "ratio range start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 20, "ratio range end")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 0.5, "ratio step")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run results to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}
	exportCSVCmd.Flags().StringVarP(&csvOut, "out", "o", "", "output path (stdout when empty)")

	exportXLSXCmd := &cobra.Command{
		Use:   "export-xlsx [run_id]",
		Short: "export run results to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  exportXLSXRun,
	}
	exportXLSXCmd.Flags().StringVarP(&xlsxOut, "out", "o", "results.xlsx", "output path")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.AddCommand(solveCmd, familiesCmd, presetsCmd, sweepCmd, listCmd, showCmd, exportCSVCmd, exportXLSXCmd, tuiCmd)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// buildInputs layers preset, config file, and explicit flags, later
// layers overriding earlier ones field by field.
func buildInputs(cmd *cobra.Command, family string) (thermo.Inputs, error) {
	var in thermo.Inputs

	if preset != "" {
		cfg := config.GetPreset(family, preset)
		if cfg == nil {
			return in, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(family))
		}
		in = cfg.ToInputs()
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return in, fmt.Errorf("failed to load config: %w", err)
		}
		fromFile := cfg.ToInputs()
		for _, f := range thermo.Fields {
			if sc := fromFile.Get(f); sc.Known {
				in = in.With(f, sc)
			}
		}
	}

	for _, f := range inputFlags {
		if cmd.Flags().Changed(f.name) {
			in = in.With(f.field, thermo.Known(*f.ptr))
		}
	}

	return in, nil
}

func printResult(branch string, res *thermo.Result) error {
	fmt.Printf("pathway: %s\n\n", branch)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tVALUE\tUNIT")
	for _, name := range res.Names() {
		val, _ := res.Get(name)
		fmt.Fprintf(w, "%s\t%.4f\t%s\n", name, val, thermo.Unit(name))
	}
	return w.Flush()
}

func runSolve(cmd *cobra.Command, args []string) error {
	family := args[0]

	in, err := buildInputs(cmd, family)
	if err != nil {
		return err
	}

	reg := cycles.NewRegistry()
	solver, err := reg.Get(family)
	if err != nil {
		return err
	}

	branch, _ := thermo.SelectBranch(solver, in)
	res, err := thermo.Solve(solver, in)
	if err != nil {
		return err
	}

	if err := printResult(branch, res); err != nil {
		return err
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(family, branch, in, res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func listFamilies(cmd *cobra.Command, args []string) error {
	reg := cycles.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tPATHWAY\tREQUIRES")
	for _, family := range reg.List() {
		solver, err := reg.Get(family)
		if err != nil {
			return err
		}
		for _, b := range solver.Branches() {
			req := ""
			for i, f := range b.Requires {
				if i > 0 {
					req += ", "
				}
				req += string(f)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", family, b.Name, req)
		}
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	family := args[0]

	var field thermo.Field
	switch family {
	case "otto", "diesel", "dual":
		field = thermo.FieldCompressionRatio
	case "brayton":
		field = thermo.FieldPressureRatio
	default:
		return fmt.Errorf("sweep supports the ratio-driven families, not %s", family)
	}

	in, err := buildInputs(cmd, family)
	if err != nil {
		return err
	}
	if sweepStep <= 0 {
		return fmt.Errorf("step must be positive")
	}

	reg := cycles.NewRegistry()
	effs := make([]float64, 0, int((sweepTo-sweepFrom)/sweepStep)+1)
	for r := sweepFrom; r <= sweepTo; r += sweepStep {
		solver, err := reg.Get(family)
		if err != nil {
			return err
		}
		res, err := thermo.Solve(solver, in.With(field, thermo.Known(r)))
		if err != nil {
			continue
		}
		if eff, ok := res.Get("eff"); ok {
			effs = append(effs, eff)
		}
	}

	if len(effs) < 2 {
		return fmt.Errorf("not enough solvable points in [%.1f, %.1f]", sweepFrom, sweepTo)
	}

	graph := asciigraph.Plot(effs,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s efficiency [%%] vs %s (%.1f..%.1f)", family, field, sweepFrom, sweepTo)),
	)
	fmt.Println(graph)

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
	fmt.Fprintln(w, "ID\tFAMILY\tPATHWAY\tTIME\tINPUTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Family,
			run.Branch,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Inputs),
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

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	res, err := st.LoadResults(runID)
	if err != nil {
		return err
	}
	fmt.Println()
	return printResult(meta.Branch, res)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	res, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	if csvOut != "" {
		return storage.WriteCSV(csvOut, res)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"quantity", "value", "unit"}); err != nil {
		return err
	}
	for _, name := range res.Names() {
		val, _ := res.Get(name)
		row := []string{name, strconv.FormatFloat(val, 'f', 6, 64), thermo.Unit(name)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportXLSXRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	res, err := st.LoadResults(runID)
	if err != nil {
		return err
	}

	if err := storage.ExportXLSX(xlsxOut, meta.Family, meta.Branch, meta.Inputs, res); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", xlsxOut)
	return nil
}
