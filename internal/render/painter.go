//go:build ebiten

package render

import (
	"image"
	"image/color"

	"voxfield/internal/camera"
	"voxfield/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
)

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// FieldPainter draws a whole field with a single DrawTriangles call.
type FieldPainter struct {
	mesh     *Mesh
	vertices []ebiten.Vertex
	op       ebiten.DrawTrianglesOptions
}

// NewFieldPainter allocates a painter for count voxels.
func NewFieldPainter(count int) *FieldPainter {
	return &FieldPainter{
		mesh:     NewMesh(count),
		vertices: make([]ebiten.Vertex, 0, count*3*4),
	}
}

// Draw renders batch onto dst as seen through cam.
func (p *FieldPainter) Draw(dst *ebiten.Image, batch field.Batch, cam *camera.Camera) {
	b := dst.Bounds()
	p.mesh.Build(batch, cam.Projector(b.Dx(), b.Dy()))
	if len(p.mesh.Indices) == 0 {
		return
	}

	p.vertices = p.vertices[:0]
	for _, v := range p.mesh.Vertices {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 1, SrcY: 1,
			ColorR: v.R, ColorG: v.G, ColorB: v.B, ColorA: v.A,
		})
	}
	dst.DrawTriangles(p.vertices, p.mesh.Indices, whitePixel, &p.op)
}

// Faces returns the face count of the last frame.
func (p *FieldPainter) Faces() int { return p.mesh.Quads() }
