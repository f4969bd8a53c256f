package main

import (
	"fmt"
	"image/gif"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/eqgft/fieldviz/internal/chart"
	"github.com/eqgft/fieldviz/internal/config"
	"github.com/eqgft/fieldviz/internal/dash"
	"github.com/eqgft/fieldviz/internal/metrics"
	"github.com/eqgft/fieldviz/internal/packet"
	"github.com/eqgft/fieldviz/internal/render"
	"github.com/spf13/cobra"
)

var (
	dashboard  bool
	port       int
	configFile string
	dataDir    string
	kinds      []string
	vizType    string
	outFile    string
	theme      string
	// gen parameters
	genRows int
	genSeed int64
)

// main registers the fieldviz commands. The root command plots a metrics
// table to the terminal, or serves the interactive dashboard when
// --dashboard is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldviz [metrics.csv]",
		Short: "field-theory visualization and metrics plotting",
		Args:  cobra.ExactArgs(1),
		RunE:  plotMetrics,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for relative paths")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme (phosphor, ocean, minimal)")
	rootCmd.Flags().BoolVar(&dashboard, "dashboard", false, "serve interactive dashboard")
	rootCmd.Flags().IntVar(&port, "port", config.DefaultPort, "dashboard port")
	rootCmd.Flags().StringSliceVar(&kinds, "kind", nil, "metric kinds to plot (default all)")

	watchCmd := &cobra.Command{
		Use:   "watch [metrics.csv]",
		Short: "interactive terminal dashboard",
		Args:  cobra.ExactArgs(1),
		RunE:  watchMetrics,
	}

	renderCmd := &cobra.Command{
		Use:   "render [packet.json]",
		Short: "render a visualization packet",
		Args:  cobra.ExactArgs(1),
		RunE:  renderPacket,
	}
	renderCmd.Flags().StringVar(&vizType, "type", "", "override the packet's visualization type")
	renderCmd.Flags().StringVar(&outFile, "out", "", "output file (GIF for animation, SVG otherwise)")

	inspectCmd := &cobra.Command{
		Use:   "inspect [packet.json]",
		Short: "summarize a visualization packet",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectPacket,
	}

	genCmd := &cobra.Command{
		Use:   "gen [output.csv]",
		Short: "generate a sample metrics table",
		Args:  cobra.ExactArgs(1),
		RunE:  genMetrics,
	}
	genCmd.Flags().IntVar(&genRows, "rows", 240, "number of rows")
	genCmd.Flags().Int64Var(&genSeed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.AddCommand(watchCmd, renderCmd, inspectCmd, genCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	render.SetTheme(cfg.Theme)
	return cfg, nil
}

func loadSetup(path string) (*metrics.Table, *config.Config, error) {
	cfg, err := setup()
	if err != nil {
		return nil, nil, err
	}
	table, err := metrics.Load(cfg.Resolve(path))
	if err != nil {
		return nil, nil, err
	}
	return table, cfg, nil
}

func plotMetrics(cmd *cobra.Command, args []string) error {
	table, cfg, err := loadSetup(args[0])
	if err != nil {
		return err
	}
	if dashboard {
		if cmd.Flags().Changed("port") || cfg.Port == 0 {
			cfg.Port = port
		}
		addr := fmt.Sprintf(":%d", cfg.Port)
		fmt.Printf("serving dashboard on http://localhost%s\n", addr)
		return dash.Serve(addr, table, render.CurrentTheme())
	}
	out, err := chart.Timeseries(table, kinds, chart.Options{
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
	})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func watchMetrics(cmd *cobra.Command, args []string) error {
	table, _, err := loadSetup(args[0])
	if err != nil {
		return err
	}
	return dash.RunTUI(table, render.CurrentTheme())
}

func renderPacket(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	p, err := packet.Load(cfg.Resolve(args[0]))
	if err != nil {
		return err
	}
	tag := vizType
	if tag == "" {
		tag = string(p.Type)
	}
	result, err := render.NewRouter().Route(p, tag, render.Options{Theme: cfg.Theme})
	if err != nil {
		return err
	}

	if result.Animation != nil {
		if outFile == "" {
			return fmt.Errorf("animation output requires --out")
		}
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("write animation %s: %w", outFile, err)
		}
		defer f.Close()
		if err := gif.EncodeAll(f, result.Animation); err != nil {
			return fmt.Errorf("write animation %s: %w", outFile, err)
		}
		fmt.Printf("wrote %d frames to %s\n", len(result.Animation.Image), outFile)
		return nil
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(result.Text), 0644); err != nil {
			return fmt.Errorf("write %s: %w", outFile, err)
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	fmt.Println(result.Text)
	return nil
}

func inspectPacket(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	p, err := packet.Load(cfg.Resolve(args[0]))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", p.ID)
	fmt.Fprintf(w, "timestamp\t%s\n", p.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "type\t%s\n", p.Type)
	q := p.Fields.Quaternion
	fmt.Fprintf(w, "quaternion\t(%.4f, %.4f, %.4f, %.4f)\n", q.Q0, q.Q1, q.Q2, q.Q3)
	fmt.Fprintf(w, "gauge potential\t%v\n", p.Fields.Gauge.Potential)
	fmt.Fprintf(w, "metric signature\t%v\n", p.Fields.Metric.Signature)
	a := p.Action
	fmt.Fprintf(w, "action\tS_g=%.4f S_q=%.4f S_c=%.4f S_m=%.4f\n",
		a.Gravity, a.QuaternionKinetic, a.Constraint, a.FermionMass)

	names := make([]string, 0, len(p.Metrics))
	for k := range p.Metrics {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(w, "metric %s\t%.6f\n", k, p.Metrics[k])
	}
	if len(p.Metadata) > 0 {
		keys := make([]string, 0, len(p.Metadata))
		for k := range p.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(w, "metadata\t%s\n", strings.Join(keys, ", "))
	}
	return w.Flush()
}

func genMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	out := cfg.Resolve(args[0])
	if err := metrics.Generate(out, genRows, genSeed); err != nil {
		return err
	}
	fmt.Printf("wrote %d rows to %s\n", genRows, out)
	return nil
}
