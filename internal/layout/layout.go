// Package layout precomputes where every voxel sits in each stage.
package layout

import (
	"math"

	"voxfield/internal/core"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// ChaosRange is the side of the cube the chaos stage scatters voxels in.
	ChaosRange = 25.0
	// GridSpacing separates neighbouring voxels on the flat grid.
	GridSpacing = 1.5
	// GridY is the height of the grid plane.
	GridY = -5.0
	// TowerSpacing separates voxels inside a tower cluster.
	TowerSpacing = 1.2
	// TowerBaseY is the height of the lowest tower layer.
	TowerBaseY = -5.0
	// SphereRadius is the radius of the sphere shell.
	SphereRadius = 8.0
)

// towerOffsets places the three tower clusters along x.
var towerOffsets = [3]float64{-10, 0, 10}

// Table maps every voxel index to one target per stage. It is never modified
// after Generate returns and may be shared freely.
type Table struct {
	targets [][core.StageCount]mgl64.Vec3
}

// Len returns the number of voxels covered by the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.targets)
}

// Target returns the position voxel i aims for in the given stage.
func (t *Table) Target(i, stage int) mgl64.Vec3 {
	return t.targets[i][core.ClampStage(stage)]
}

// Targets returns a copy of the four targets for voxel i.
func (t *Table) Targets(i int) [core.StageCount]mgl64.Vec3 {
	return t.targets[i]
}

// Generate computes the table for count voxels. Only the chaos stage draws
// from rng; the other stages are pure functions of the index. A non-positive
// count yields an empty table.
func Generate(count int, rng *core.RNG) *Table {
	if count <= 0 {
		return &Table{}
	}
	t := &Table{targets: make([][core.StageCount]mgl64.Vec3, count)}
	for i := range t.targets {
		t.targets[i] = [core.StageCount]mgl64.Vec3{
			core.StageChaos:  Chaos(rng),
			core.StageGrid:   Grid(i, count),
			core.StageTowers: Tower(i),
			core.StageSphere: Sphere(i, count),
		}
	}
	return t
}

// Chaos draws a point uniformly inside the chaos cube.
func Chaos(rng *core.RNG) mgl64.Vec3 {
	return mgl64.Vec3{
		rng.Centered(ChaosRange),
		rng.Centered(ChaosRange),
		rng.Centered(ChaosRange),
	}
}

// Grid lays voxels out row-major on a flat square plane.
func Grid(i, count int) mgl64.Vec3 {
	size := int(math.Floor(math.Sqrt(float64(count))))
	if size < 1 {
		size = 1
	}
	row := i / size
	col := i % size
	half := float64(size) / 2
	return mgl64.Vec3{
		(float64(col) - half) * GridSpacing,
		GridY,
		(float64(row) - half) * GridSpacing,
	}
}

// Tower stacks voxels into 3x3 columns. The index modulo three selects both
// the cluster and the column within it, so each cluster only ever fills one
// column per row of three.
func Tower(i int) mgl64.Vec3 {
	group := i % 3
	towerX := float64(i%3) - 1
	towerZ := float64((i/3)%3) - 1
	height := float64(i / 9)
	return mgl64.Vec3{
		towerX*TowerSpacing + towerOffsets[group],
		height*TowerSpacing + TowerBaseY,
		towerZ * TowerSpacing,
	}
}

// Sphere places voxel i on a Fibonacci sphere shell.
func Sphere(i, count int) mgl64.Vec3 {
	n := float64(count)
	phi := math.Acos(-1 + 2*float64(i)/n)
	theta := math.Sqrt(n*math.Pi) * phi
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		SphereRadius * math.Cos(theta) * sinPhi,
		SphereRadius * math.Sin(theta) * sinPhi,
		SphereRadius * math.Cos(phi),
	}
}
