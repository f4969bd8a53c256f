// Package chart composes multi-series terminal charts from loaded metric
// tables.
package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"

	"github.com/eqgft/fieldviz/internal/metrics"
)

// seriesPalette colors the plotted series in assignment order.
// asciigraph requires one color per legend entry, so legended plots must
// always pass SeriesColors alongside SeriesLegends.
var seriesPalette = []asciigraph.AnsiColor{
	asciigraph.SpringGreen,
	asciigraph.Gold,
	asciigraph.SkyBlue,
	asciigraph.Tomato,
	asciigraph.Orchid,
	asciigraph.Turquoise,
}

// Options sizes the chart. The zero value selects the defaults.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.Height <= 0 {
		o.Height = 12
	}
	return o
}

// Timeseries renders one labeled line series per kind onto a shared
// chart. Series points are ordered by ascending timestamp; the caption
// shows the covered calendar-time range. The table is not modified. A
// payload missing its value field fails the whole render.
func Timeseries(table *metrics.Table, kinds []string, opts Options) (string, error) {
	opts = opts.withDefaults()
	if len(kinds) == 0 {
		kinds = table.Kinds()
	}
	if len(kinds) == 0 {
		return "", fmt.Errorf("chart: no series to plot")
	}

	known := map[string]bool{}
	for _, kind := range table.Kinds() {
		known[kind] = true
	}
	for _, kind := range kinds {
		if !known[kind] {
			return "", fmt.Errorf("chart: unknown metric kind %q", kind)
		}
	}

	data := make([][]float64, 0, len(kinds))
	legends := make([]string, 0, len(kinds))
	colors := make([]asciigraph.AnsiColor, 0, len(kinds))
	minT, maxT := 0.0, 0.0
	first := true
	for _, kind := range kinds {
		points, err := table.Series(kind)
		if err != nil {
			return "", err
		}
		values := make([]float64, len(points))
		for i, pt := range points {
			values[i] = pt.V
			if first || pt.T < minT {
				minT = pt.T
			}
			if first || pt.T > maxT {
				maxT = pt.T
			}
			first = false
		}
		data = append(data, values)
		legends = append(legends, kind)
		colors = append(colors, seriesPalette[len(colors)%len(seriesPalette)])
	}

	caption := "metrics"
	if !first {
		caption = fmt.Sprintf("%s .. %s",
			time.Unix(int64(minT), 0).UTC().Format("2006-01-02 15:04:05"),
			time.Unix(int64(maxT), 0).UTC().Format("2006-01-02 15:04:05"))
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
		asciigraph.SeriesLegends(legends...),
		asciigraph.SeriesColors(colors...),
	)

	var b strings.Builder
	b.WriteString(graph)
	b.WriteByte('\n')
	return b.String(), nil
}
