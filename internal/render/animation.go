package render

import (
	"image"
	"image/color"
	"image/gif"
	"math"

	"github.com/eqgft/fieldviz/internal/packet"
)

// AnimationRenderer orbits the camera around the rotor frame and encodes
// the frames as a GIF.
type AnimationRenderer struct {
	// Frames is the number of frames in one full orbit.
	Frames int
}

func (r *AnimationRenderer) Render(p *packet.Packet, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	frames := r.Frames
	if frames <= 0 {
		frames = 48
	}

	scene, err := orientationScene(p.Fields.Quaternion)
	if err != nil {
		return nil, err
	}

	anim := &gif.GIF{LoopCount: 0}
	canvas := NewCanvas(opts.Width, opts.Height)
	cam := NewCamera()
	cam.RotX = 0.35

	for i := 0; i < frames; i++ {
		cam.RotY = 2 * math.Pi * float64(i) / float64(frames)
		canvas.Clear()
		scene.Draw(canvas, cam)
		anim.Image = append(anim.Image, rasterize(canvas))
		anim.Delay = append(anim.Delay, 4)
	}

	return &Result{Type: packet.VizAnimation, Animation: anim}, nil
}

// rasterize expands the braille sub-pixel grid into a 1-bit paletted
// image, one dot block per lit sub-pixel.
func rasterize(c *Canvas) *image.Paletted {
	const charW, charH = 8, 16
	const dotW, dotH = charW / 2, charH / 4

	img := image.NewPaletted(
		image.Rect(0, 0, c.Width*charW, c.Height*charH),
		color.Palette{color.Black, color.White},
	)

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := r - 0x2800
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&dotBits[dy][dx] == 0 {
						continue
					}
					baseX := col*charW + dx*dotW
					baseY := row*charH + dy*dotH
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+px, baseY+py, 1)
						}
					}
				}
			}
		}
	}
	return img
}
