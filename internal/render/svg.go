package render

import (
	"fmt"
	"math"
	"strings"
)

// SVGSeries is one labeled polyline for SVG chart export.
type SVGSeries struct {
	Label string
	X     []float64
	Y     []float64
}

// SeriesSVG renders labeled series into a shared-axis SVG line chart.
// Colors follow the theme's series palette in order.
func SeriesSVG(series []SVGSeries, width, height int, theme Theme) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for i := range s.X {
			minX, maxX = math.Min(minX, s.X[i]), math.Max(maxX, s.X[i])
			minY, maxY = math.Min(minY, s.Y[i]), math.Max(maxY, s.Y[i])
		}
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX <= 0 || math.IsInf(minX, 1) {
		minX, rangeX = minX-0.5, 1
	}
	if rangeY <= 0 || math.IsInf(minY, 1) {
		minY, rangeY = minY-0.5, 1
	}
	// breathing room above and below the extremes
	minY -= rangeY * 0.1
	rangeY *= 1.2

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	for i, s := range series {
		if len(s.X) < 2 {
			continue
		}
		color := theme.SeriesColor(i)
		fmt.Fprintf(&b, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color)
		for j := range s.X {
			x := (s.X[j] - minX) / rangeX * float64(width)
			y := float64(height) - (s.Y[j]-minY)/rangeY*float64(height)
			if j == 0 {
				fmt.Fprintf(&b, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&b, " L%.1f,%.1f", x, y)
			}
		}
		b.WriteString("\"/>\n")
		for j := range s.X {
			x := (s.X[j] - minX) / rangeX * float64(width)
			y := float64(height) - (s.Y[j]-minY)/rangeY*float64(height)
			fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>`+"\n", x, y, color)
		}
		fmt.Fprintf(&b, `<text x="8" y="%d" font-family="monospace" font-size="12" fill="%s">%s</text>`+"\n",
			16+i*16, color, s.Label)
	}

	b.WriteString("</svg>")
	return b.String()
}

// CanvasSVG converts a braille canvas to SVG dots, for exporting a
// rendered figure outside the terminal.
func CanvasSVG(c *Canvas, scale float64, theme Theme) string {
	width := float64(c.Width) * scale * 2
	height := float64(c.Height) * scale * 4

	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, theme.Background, theme.SeriesColor(0))

	dotRadius := scale * 0.4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := r - 0x2800
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] != 0 {
						cx := float64(col)*scale*2 + float64(dx)*scale + scale/2
						cy := float64(row)*scale*4 + float64(dy)*scale + scale/2
						fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, dotRadius)
					}
				}
			}
		}
	}

	b.WriteString("</g>\n</svg>")
	return b.String()
}
