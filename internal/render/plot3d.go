package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/eqgft/fieldviz/internal/field"
	"github.com/eqgft/fieldviz/internal/packet"
)

// Renderer3D projects the rotor's orientation frame onto a braille
// canvas: the world axes plus the triad obtained by rotating them with
// the packet's unit quaternion.
type Renderer3D struct{}

func (r *Renderer3D) Render(p *packet.Packet, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	scene, err := orientationScene(p.Fields.Quaternion)
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas(opts.Width, opts.Height)
	cam := NewCamera()
	cam.RotX = 0.35
	cam.RotY = 0.6
	scene.Draw(canvas, cam)

	var b strings.Builder
	fmt.Fprintf(&b, "packet %s  rotor frame at (%.2f, %.2f, %.2f; t=%.2f)\n",
		p.ID,
		p.Fields.Quaternion.Coordinates[0],
		p.Fields.Quaternion.Coordinates[1],
		p.Fields.Quaternion.Coordinates[2],
		p.Fields.Quaternion.Coordinates[3])
	b.WriteString(canvas.String())

	return &Result{Type: packet.Viz3D, Text: b.String()}, nil
}

// orientationScene builds the wireframe shared by the 3D and animation
// renderers: fixed world axes and the quaternion-rotated triad.
func orientationScene(q field.QuaternionField) (*Wireframe, error) {
	rot, err := rotationMatrix(q)
	if err != nil {
		return nil, err
	}

	wf := NewWireframe()
	origin := Vec3{}
	axes := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, a := range axes {
		wf.AddEdge(origin, a.Scale(0.6))
		wf.AddEdge(origin, rot(a))
		wf.AddPoint(rot(a))
	}
	// connect the rotated triad tips so the frame reads as a solid
	wf.AddEdge(rot(axes[0]), rot(axes[1]))
	wf.AddEdge(rot(axes[1]), rot(axes[2]))
	wf.AddEdge(rot(axes[2]), rot(axes[0]))
	return wf, nil
}

// rotationMatrix returns the rotation applied by the unit quaternion.
// A zero-norm quaternion has no orientation and is rejected.
func rotationMatrix(q field.QuaternionField) (func(Vec3) Vec3, error) {
	norm := math.Sqrt(q.Q0*q.Q0 + q.Q1*q.Q1 + q.Q2*q.Q2 + q.Q3*q.Q3)
	if norm == 0 {
		return nil, fmt.Errorf("render: zero-norm quaternion has no orientation")
	}
	w, x, y, z := q.Q0/norm, q.Q1/norm, q.Q2/norm, q.Q3/norm

	m := [3][3]float64{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
	return func(v Vec3) Vec3 {
		return Vec3{
			m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
			m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
			m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
		}
	}, nil
}
