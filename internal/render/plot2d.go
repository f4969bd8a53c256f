package render

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/eqgft/fieldviz/internal/packet"
)

// Renderer2D charts the scalar content of a packet: field strength row
// profiles, quaternion components, and the scalar metrics table.
type Renderer2D struct{}

func (r *Renderer2D) Render(p *packet.Packet, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "packet %s  %s\n\n", p.ID, p.Timestamp.Format("2006-01-02 15:04:05"))

	rows := make([][]float64, 4)
	legends := make([]string, 4)
	for i := range rows {
		rows[i] = append([]float64(nil), p.Fields.Gauge.FieldStrength[i][:]...)
		legends[i] = fmt.Sprintf("F[%d]", i)
	}
	b.WriteString(asciigraph.PlotMany(rows,
		asciigraph.Height(opts.Height/3),
		asciigraph.Width(opts.Width-10),
		asciigraph.Caption("field strength row profiles"),
		asciigraph.SeriesLegends(legends...),
		// one color per legend entry, or asciigraph panics in addLegends
		asciigraph.SeriesColors(
			asciigraph.SpringGreen,
			asciigraph.Gold,
			asciigraph.SkyBlue,
			asciigraph.Tomato,
		),
	))
	b.WriteString("\n\n")

	quat := p.Fields.Quaternion.Vector()
	b.WriteString(asciigraph.Plot(quat[:],
		asciigraph.Height(opts.Height/4),
		asciigraph.Width(opts.Width-10),
		asciigraph.Caption("quaternion components q0..q3"),
	))
	b.WriteString("\n\n")

	names := make([]string, 0, len(p.Metrics))
	for name := range p.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, p.Metrics[name])
	}
	fmt.Fprintf(w, "gravity\t%.6f\n", p.Action.Gravity)
	fmt.Fprintf(w, "quaternion_kinetic\t%.6f\n", p.Action.QuaternionKinetic)
	fmt.Fprintf(w, "constraint\t%.6f\n", p.Action.Constraint)
	fmt.Fprintf(w, "fermion_mass\t%.6f\n", p.Action.FermionMass)
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return &Result{Type: packet.Viz2D, Text: b.String()}, nil
}
