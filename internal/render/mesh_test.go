package render

import (
	"testing"

	"voxfield/internal/camera"
	"voxfield/internal/core"
	"voxfield/internal/field"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

func TestBuildSingleCube(t *testing.T) {
	proj := camera.New(camera.DefaultConfig()).Projector(800, 600)
	batch := field.Batch{Instances: []field.Instance{{Color: colorful.Color{R: 1, G: 1, B: 1}}}}

	m := NewMesh(1)
	m.Build(batch, proj)

	// The default camera sits above and in front on the +x/+z diagonal, so
	// exactly the +x, +y and +z faces are visible.
	if m.Quads() != 3 {
		t.Fatalf("visible faces = %d, want 3", m.Quads())
	}
	if len(m.Indices) != 18 || len(m.Vertices) != 12 {
		t.Fatalf("mesh sizes = %d vertices, %d indices", len(m.Vertices), len(m.Indices))
	}
	for i, v := range m.Vertices {
		if v.X < 300 || v.X > 500 || v.Y < 200 || v.Y > 400 {
			t.Fatalf("vertex %d at (%f,%f) far from the centre", i, v.X, v.Y)
		}
		if v.R < 0 || v.R > 1 || v.A != 1 {
			t.Fatalf("vertex %d colour out of range: %+v", i, v)
		}
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBuildSortsBackToFront(t *testing.T) {
	proj := camera.New(camera.DefaultConfig()).Projector(640, 480)
	f := field.New(200, core.FixedStage(core.StageChaos), 4)
	m := NewMesh(f.Count())
	m.Build(f.Render(), proj)

	if m.Quads() == 0 {
		t.Fatal("expected visible faces")
	}
	for i := 1; i < len(m.quads); i++ {
		if m.quads[i].depth > m.quads[i-1].depth {
			t.Fatalf("quad %d is farther than quad %d", i, i-1)
		}
	}
	if m.Quads() > f.Count()*3 {
		t.Fatalf("%d faces for %d voxels, back faces were not culled", m.Quads(), f.Count())
	}
}

func TestBuildReusesBuffers(t *testing.T) {
	proj := camera.New(camera.DefaultConfig()).Projector(640, 480)
	f := field.New(100, nil, 4)
	m := NewMesh(f.Count())
	m.Build(f.Render(), proj)
	first := len(m.Vertices)
	m.Build(f.Render(), proj)
	if len(m.Vertices) != first {
		t.Fatalf("second build produced %d vertices, want %d", len(m.Vertices), first)
	}
}

func TestShadeFogsToBackground(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	up := mgl64.Vec3{0, 1, 0}
	near := shade(white, up, 0)
	far := shade(white, up, 1)
	if far.R > 0.03 || far.G > 0.03 || far.B > 0.03 {
		t.Fatalf("fully fogged colour = %v, want the background", far)
	}
	if near.R <= far.R {
		t.Fatalf("unfogged colour %v should be brighter than fogged %v", near, far)
	}
}
