package render

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera projects world coordinates onto the canvas plane with a simple
// perspective divide.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 5, Zoom: 1}
}

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project returns canvas sub-pixel coordinates, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot.X*scale*pScale) + sw/2
	sy := int(-rot.Y*scale*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type edge struct {
	start, end Vec3
}

// Wireframe is an edge list drawn back to front.
type Wireframe struct {
	edges []edge
}

func NewWireframe() *Wireframe         { return &Wireframe{} }
func (w *Wireframe) AddEdge(s, e Vec3) { w.edges = append(w.edges, edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3)   { w.edges = append(w.edges, edge{p, p}) }

// Draw projects the wireframe onto the canvas using a painter's sort on
// mean edge depth.
func (w *Wireframe) Draw(c *Canvas, cam *Camera) {
	sw, sh := c.Width*2, c.Height*4
	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	proj := make([]projected, 0, len(w.edges))
	for _, e := range w.edges {
		x1, y1, d1, v1 := cam.Project(e.start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.end, sw, sh)
		if v1 || v2 {
			proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Dot(e.x1, e.y1, 1)
		} else {
			c.Line(e.x1, e.y1, e.x2, e.y2)
		}
	}
}
