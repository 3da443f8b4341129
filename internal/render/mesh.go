// Package render turns a field batch into one triangle mesh per frame.
package render

import (
	"cmp"
	"slices"

	"voxfield/internal/camera"
	"voxfield/internal/field"

	"github.com/go-gl/mathgl/mgl64"
)

// VoxelSize is the edge length of a voxel cube.
const VoxelSize = 1.0

// MaxVertices is the most vertices a single 16-bit indexed draw can address.
const MaxVertices = 1 << 16

// Vertex is a screen-space vertex with a flat colour.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

type cubeFace struct {
	normal  mgl64.Vec3
	corners [4]mgl64.Vec3
}

// faces of a unit cube centred on the origin, corners wound consistently.
var faces = buildFaces(VoxelSize / 2)

func buildFaces(h float64) [6]cubeFace {
	return [6]cubeFace{
		{mgl64.Vec3{1, 0, 0}, [4]mgl64.Vec3{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}}},
		{mgl64.Vec3{-1, 0, 0}, [4]mgl64.Vec3{{-h, -h, h}, {-h, h, h}, {-h, h, -h}, {-h, -h, -h}}},
		{mgl64.Vec3{0, 1, 0}, [4]mgl64.Vec3{{-h, h, -h}, {-h, h, h}, {h, h, h}, {h, h, -h}}},
		{mgl64.Vec3{0, -1, 0}, [4]mgl64.Vec3{{-h, -h, h}, {-h, -h, -h}, {h, -h, -h}, {h, -h, h}}},
		{mgl64.Vec3{0, 0, 1}, [4]mgl64.Vec3{{h, -h, h}, {h, h, h}, {-h, h, h}, {-h, -h, h}}},
		{mgl64.Vec3{0, 0, -1}, [4]mgl64.Vec3{{-h, -h, -h}, {-h, h, -h}, {h, h, -h}, {h, -h, -h}}},
	}
}

type quad struct {
	depth float64
	verts [4]Vertex
}

// Mesh holds the triangles for one frame. Buffers are reused between Build
// calls, so callers must not keep references across frames.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16

	quads []quad
}

// NewMesh allocates buffers sized for count voxels.
func NewMesh(count int) *Mesh {
	// At most three faces of a cube face the camera.
	return &Mesh{
		Vertices: make([]Vertex, 0, count*3*4),
		Indices:  make([]uint16, 0, count*3*6),
		quads:    make([]quad, 0, count*3),
	}
}

// Build rebuilds the mesh from batch as seen through proj. Faces pointing
// away from the camera are dropped and the rest are ordered back to front.
func (m *Mesh) Build(batch field.Batch, proj camera.Projector) {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.quads = m.quads[:0]

	for _, inst := range batch.Instances {
		m.addCube(inst, proj)
	}

	slices.SortFunc(m.quads, func(a, b quad) int { return cmp.Compare(b.depth, a.depth) })

	start := 0
	if over := len(m.quads)*4 - MaxVertices; over > 0 {
		// Drop the farthest faces; they are the most fogged.
		start = (over + 3) / 4
	}
	for _, q := range m.quads[start:] {
		base := uint16(len(m.Vertices))
		m.Vertices = append(m.Vertices, q.verts[:]...)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
}

// Quads returns the number of faces in the mesh.
func (m *Mesh) Quads() int { return len(m.Vertices) / 4 }

func (m *Mesh) addCube(inst field.Instance, proj camera.Projector) {
	rot := mgl64.Rotate3DX(inst.RotX).Mul3(mgl64.Rotate3DY(inst.RotY))
	centre := proj.ToView(inst.Position)
	_, _, depth, ok := proj.ViewToScreen(centre)
	if !ok {
		return
	}
	fog := proj.Fog(depth)

	for _, f := range faces {
		normal := rot.Mul3x1(f.normal)
		var view [4]mgl64.Vec3
		for i, c := range f.corners {
			view[i] = proj.ToView(inst.Position.Add(rot.Mul3x1(c)))
		}
		faceCentre := view[0].Add(view[2]).Mul(0.5)
		viewNormal := view[1].Sub(view[0]).Cross(view[2].Sub(view[0]))
		if viewNormal.Dot(faceCentre) >= 0 {
			continue
		}

		q := quad{depth: -faceCentre.Z()}
		r, g, b := vertexColor(shade(inst.Color, normal, fog))
		visible := true
		for i, v := range view {
			x, y, _, ok := proj.ViewToScreen(v)
			if !ok {
				visible = false
				break
			}
			q.verts[i] = Vertex{X: float32(x), Y: float32(y), R: r, G: g, B: b, A: 1}
		}
		if visible {
			m.quads = append(m.quads, q)
		}
	}
}
