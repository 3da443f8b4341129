package render

import (
	"math"

	"voxfield/internal/theme"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// light is a directional light pointing from Dir toward the origin.
type light struct {
	Dir       mgl64.Vec3
	Color     colorful.Color
	Intensity float64
}

const ambient = 0.2

// Key light from the upper front, teal fill from behind, matching the point
// lights the scene is framed with.
var lights = []light{
	{Dir: mgl64.Vec3{10, 10, 10}.Normalize(), Color: theme.Bone, Intensity: 1},
	{Dir: mgl64.Vec3{-10, 0, -10}.Normalize(), Color: theme.Teal, Intensity: 1},
}

// shade lights a face with world-space normal n, then fades it into the
// background by fog in [0, 1].
func shade(base colorful.Color, n mgl64.Vec3, fog float64) colorful.Color {
	r, g, b := ambient, ambient, ambient
	for _, l := range lights {
		d := n.Dot(l.Dir)
		if d <= 0 {
			continue
		}
		k := d * l.Intensity
		r += k * l.Color.R
		g += k * l.Color.G
		b += k * l.Color.B
	}
	lit := colorful.Color{
		R: math.Min(1, base.R*r),
		G: math.Min(1, base.G*g),
		B: math.Min(1, base.B*b),
	}
	return lit.BlendRgb(theme.Background, fog).Clamped()
}

// vertexColor converts a colour to float32 channels for a vertex.
func vertexColor(c colorful.Color) (r, g, b float32) {
	return float32(c.R), float32(c.G), float32(c.B)
}
