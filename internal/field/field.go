// Package field owns the voxel collection and advances it frame by frame.
package field

import (
	"voxfield/internal/core"
	"voxfield/internal/layout"
	"voxfield/internal/theme"
	"voxfield/internal/voxel"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultCount is the number of voxels in a standard field.
const DefaultCount = 800

// Instance is the drawable state of one voxel.
type Instance struct {
	Position mgl64.Vec3
	RotX     float64
	RotY     float64
	Color    colorful.Color
}

// Batch is every voxel's drawable state for one frame. Its backing slice is
// reused by the next Render call.
type Batch struct {
	Stage     int
	Instances []Instance
}

// Field is the set of voxels plus their shared layout table.
type Field struct {
	stages  core.StageSource
	table   *layout.Table
	voxels  []voxel.Voxel
	batch   []Instance
	elapsed float64
	stage   int
	closed  bool
}

// New builds a field of count voxels whose targets follow stages. Voxels start
// at their chaos positions. A non-positive count yields an empty field.
func New(count int, stages core.StageSource, seed int64) *Field {
	return NewWithRNG(count, stages, core.NewRNG(seed))
}

// NewWithRNG is New with an explicit random source.
func NewWithRNG(count int, stages core.StageSource, rng *core.RNG) *Field {
	if stages == nil {
		stages = core.FixedStage(core.StageChaos)
	}
	table := layout.Generate(count, rng)
	f := &Field{
		stages: stages,
		table:  table,
		voxels: make([]voxel.Voxel, table.Len()),
		batch:  make([]Instance, table.Len()),
	}
	for i := range f.voxels {
		f.voxels[i] = voxel.NewRandomPhase(table.Target(i, core.StageChaos), theme.Initial, rng)
	}
	return f
}

// Count returns the number of voxels.
func (f *Field) Count() int { return len(f.voxels) }

// Elapsed returns the seconds of animation time accumulated by Advance.
func (f *Field) Elapsed() float64 { return f.elapsed }

// Stage returns the stage used by the most recent Advance.
func (f *Field) Stage() int { return f.stage }

// Table exposes the shared, read-only layout table.
func (f *Field) Table() *layout.Table { return f.table }

// Advance moves every voxel one frame toward the current stage. The stage is
// read from the source once per call so a change lands on the next frame.
func (f *Field) Advance(dt float64) {
	if f.closed || dt <= 0 {
		return
	}
	f.elapsed += dt
	f.stage = core.ClampStage(f.stages.Current())
	tint := theme.For(f.stage)
	for i := range f.voxels {
		f.voxels[i].Step(f.table.Target(i, f.stage), tint, f.stage, f.elapsed, dt)
	}
}

// Render returns every voxel's current transform and colour in one batch.
func (f *Field) Render() Batch {
	for i := range f.voxels {
		v := &f.voxels[i]
		rx, ry := v.Rotation()
		f.batch[i] = Instance{Position: v.Position(), RotX: rx, RotY: ry, Color: v.Color()}
	}
	return Batch{Stage: f.stage, Instances: f.batch}
}

// Close stops the field. Later Advance calls do nothing.
func (f *Field) Close() { f.closed = true }

// Closed reports whether Close has been called.
func (f *Field) Closed() bool { return f.closed }

// MeanDistance returns the average distance between voxels and their targets
// for the given stage.
func (f *Field) MeanDistance(stage int) float64 {
	if len(f.voxels) == 0 {
		return 0
	}
	total := 0.0
	for i := range f.voxels {
		total += f.voxels[i].Position().Sub(f.table.Target(i, stage)).Len()
	}
	return total / float64(len(f.voxels))
}

// MaxColorError returns the largest per-channel gap between any voxel colour
// and the theme colour of stage.
func (f *Field) MaxColorError(stage int) float64 {
	tint := theme.For(stage)
	worst := 0.0
	for i := range f.voxels {
		c := f.voxels[i].Color()
		for _, d := range []float64{c.R - tint.R, c.G - tint.G, c.B - tint.B} {
			if d < 0 {
				d = -d
			}
			if d > worst {
				worst = d
			}
		}
	}
	return worst
}

// Stats reports the field state for display.
func (f *Field) Stats() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("count", "Voxels", f.Count()),
				core.StringParam("stage", "Stage", core.StageName(f.stage)),
				core.FloatParam("elapsed", "Elapsed (s)", f.elapsed),
			},
		},
		{
			Name: "Convergence",
			Params: []core.Parameter{
				core.FloatParam("distance", "Mean distance", f.MeanDistance(f.stage)),
				core.FloatParam("color_error", "Colour error", f.MaxColorError(f.stage)),
			},
		},
	}}
}
