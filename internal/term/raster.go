// Package term shows the voxel field in a terminal.
package term

import (
	"voxfield/internal/camera"
	"voxfield/internal/field"
	"voxfield/internal/theme"

	"github.com/lucasb-eyer/go-colorful"
)

// shadeRunes go from fully lit to nearly lost in the fog.
var shadeRunes = []rune{'█', '▓', '▒', '░'}

// Cell is one character of the rasterised field.
type Cell struct {
	Rune  rune
	Color colorful.Color
	depth float64
}

// Raster is a character grid the field is splatted into, one cell per voxel,
// nearest voxel winning.
type Raster struct {
	W, H  int
	cells []Cell
}

// NewRaster allocates a w×h grid.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.Resize(w, h)
	return r
}

// Resize changes the grid dimensions, reusing the buffer when possible.
func (r *Raster) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.W, r.H = w, h
	if cap(r.cells) < w*h {
		r.cells = make([]Cell, w*h)
	}
	r.cells = r.cells[:w*h]
}

// At returns the cell at column x, row y.
func (r *Raster) At(x, y int) Cell { return r.cells[y*r.W+x] }

// Plot clears the grid and splats every instance of batch through cam.
// Terminal cells are about twice as tall as wide, so the projection uses a
// square-pixel target of W×2H and halves the row.
func (r *Raster) Plot(batch field.Batch, cam *camera.Camera) {
	for i := range r.cells {
		r.cells[i] = Cell{}
	}
	if r.W == 0 || r.H == 0 {
		return
	}
	proj := cam.Projector(r.W, r.H*2)
	for _, inst := range batch.Instances {
		x, y, depth, ok := proj.Project(inst.Position)
		if !ok {
			continue
		}
		col, row := int(x), int(y/2)
		if col < 0 || col >= r.W || row < 0 || row >= r.H {
			continue
		}
		c := &r.cells[row*r.W+col]
		if c.Rune != 0 && c.depth <= depth {
			continue
		}
		fog := proj.Fog(depth)
		idx := int(fog * float64(len(shadeRunes)))
		if idx >= len(shadeRunes) {
			idx = len(shadeRunes) - 1
		}
		*c = Cell{
			Rune:  shadeRunes[idx],
			Color: inst.Color.BlendRgb(theme.Background, fog).Clamped(),
			depth: depth,
		}
	}
}

// Filled returns the number of occupied cells.
func (r *Raster) Filled() int {
	n := 0
	for _, c := range r.cells {
		if c.Rune != 0 {
			n++
		}
	}
	return n
}
