package render

import (
	"strings"

	"github.com/eqgft/fieldviz/internal/packet"
)

// Router owns one renderer per supported visualization type. Build it
// once at startup and reuse it; the renderers are stateless aside from
// construction-time configuration.
type Router struct {
	renderers map[packet.VizType]Renderer
}

func NewRouter() *Router {
	return &Router{
		renderers: map[packet.VizType]Renderer{
			packet.Viz2D:        &Renderer2D{},
			packet.Viz3D:        &Renderer3D{},
			packet.VizTopology:  &TopologyRenderer{},
			packet.VizAnimation: &AnimationRenderer{Frames: 48},
		},
	}
}

// Route normalizes vizType case-insensitively and forwards the packet and
// options to exactly one renderer. Unrecognized values fail with an
// *UnsupportedTypeError naming the offending tag; "custom" packets have
// no built-in renderer and fail the same way.
func (r *Router) Route(p *packet.Packet, vizType string, opts Options) (*Result, error) {
	renderer, ok := r.renderers[packet.VizType(strings.ToLower(vizType))]
	if !ok {
		return nil, &UnsupportedTypeError{Value: vizType}
	}
	return renderer.Render(p, opts)
}
