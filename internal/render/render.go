// Package render turns visualization packets into displayable terminal
// figures: charts, braille-canvas projections, and GIF animations. The
// Router selects one of four renderer values by visualization-type tag.
package render

import (
	"fmt"
	"image/gif"

	"github.com/eqgft/fieldviz/internal/packet"
)

// UnsupportedTypeError reports a visualization-type tag the router has no
// renderer for.
type UnsupportedTypeError struct {
	Value string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("render: unsupported visualization type %q", e.Value)
}

// Options carries per-call rendering configuration. The zero value
// selects the defaults below.
type Options struct {
	Width  int
	Height int
	Theme  string
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Theme == "" {
		o.Theme = CurrentTheme().Name
	}
	return o
}

// Result is a composed, ready-to-display rendering. Text carries the
// figure for the three chart renderers; Animation is set only by the
// animation renderer.
type Result struct {
	Type      packet.VizType
	Text      string
	Animation *gif.GIF
}

// Renderer consumes a packet and produces a Result. Implementations hold
// configuration only; they keep no per-call state and never mutate the
// packet.
type Renderer interface {
	Render(p *packet.Packet, opts Options) (*Result, error)
}
