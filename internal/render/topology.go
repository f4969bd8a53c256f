package render

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/eqgft/fieldviz/internal/packet"
)

// TopologyRenderer shows the geometric structure of a packet: a heat map
// of the metric tensor and the phase layout of the spinor components on
// the unit circle.
type TopologyRenderer struct{}

var heatRunes = []rune{' ', '░', '▒', '▓', '█'}

func (r *TopologyRenderer) Render(p *packet.Packet, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	var b strings.Builder
	fmt.Fprintf(&b, "packet %s  metric g_munu (signature %v)\n\n", p.ID, p.Fields.Metric.Signature)

	maxAbs := 0.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if v := math.Abs(p.Fields.Metric.Tensor[i][j]); v > maxAbs {
				maxAbs = v
			}
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			level := int(math.Abs(p.Fields.Metric.Tensor[i][j]) / maxAbs * float64(len(heatRunes)-1))
			cell := strings.Repeat(string(heatRunes[level]), 4)
			b.WriteString(cell)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	canvas := NewCanvas(opts.Width/2, opts.Height/2)
	sw, sh := canvas.Width*2, canvas.Height*4
	cx, cy := sw/2, sh/2
	radius := float64(sh) / 2.5

	// unit circle plus one spoke per spinor component at its phase angle
	for a := 0.0; a < 2*math.Pi; a += 0.05 {
		canvas.Set(cx+int(radius*math.Cos(a)), cy-int(radius*math.Sin(a)))
	}
	for i, c := range p.Fields.Spinor.Vector() {
		if c == 0 {
			continue
		}
		phase := cmplx.Phase(c)
		px := cx + int(radius*math.Cos(phase))
		py := cy - int(radius*math.Sin(phase))
		canvas.Line(cx, cy, px, py)
		canvas.Dot(px, py, 1+i%2)
	}
	b.WriteString("spinor component phases\n")
	b.WriteString(canvas.String())

	return &Result{Type: packet.VizTopology, Text: b.String()}, nil
}
