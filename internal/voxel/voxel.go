// Package voxel animates a single voxel toward its stage target.
package voxel

import (
	"math"

	"voxfield/internal/core"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MoveRate is the per-second rate position and rotation ease at.
	MoveRate = 3.0
	// ColorRate is the per-second rate colour eases at.
	ColorRate = 2.0
	// MaxFrameDelta bounds the step a single frame may take. Longer gaps, such
	// as a window resuming from the background, are treated as this long.
	MaxFrameDelta = 0.1
	// PhaseRange bounds the idle tumble phase.
	PhaseRange = 100.0
)

// Voxel is the animated state of one particle. Only Step changes it.
type Voxel struct {
	pos   mgl64.Vec3
	rot   [2]float64
	color colorful.Color
	phase float64
}

// New creates a voxel resting at pos with the given colour and tumble phase.
func New(pos mgl64.Vec3, c colorful.Color, phase float64) Voxel {
	return Voxel{pos: pos, color: c, phase: phase}
}

// NewRandomPhase creates a voxel whose tumble phase is drawn from rng.
func NewRandomPhase(pos mgl64.Vec3, c colorful.Color, rng *core.RNG) Voxel {
	return New(pos, c, rng.Float64()*PhaseRange)
}

// Position returns the current position.
func (v *Voxel) Position() mgl64.Vec3 { return v.pos }

// Rotation returns the current x and y rotation in radians.
func (v *Voxel) Rotation() (x, y float64) { return v.rot[0], v.rot[1] }

// Color returns the current colour.
func (v *Voxel) Color() colorful.Color { return v.color }

// Phase returns the fixed tumble phase.
func (v *Voxel) Phase() float64 { return v.phase }

// Step eases the voxel toward target and tint. elapsed drives the chaos
// tumble, dt is the frame delta in seconds. Non-positive deltas leave the
// voxel unchanged.
func (v *Voxel) Step(target mgl64.Vec3, tint colorful.Color, stage int, elapsed, dt float64) {
	if dt <= 0 || math.IsNaN(dt) {
		return
	}
	dt = math.Min(dt, MaxFrameDelta)

	move := Factor(MoveRate, dt)
	v.pos = v.pos.Add(target.Sub(v.pos).Mul(move))

	spin := TumbleTarget(stage, elapsed, v.phase)
	v.rot[0] += (spin - v.rot[0]) * move
	v.rot[1] += (spin - v.rot[1]) * move

	v.color = v.color.BlendRgb(tint, Factor(ColorRate, dt)).Clamped()
}

// Factor returns the interpolation weight for rate over dt, capped at 1 so
// the eased value never passes its target.
func Factor(rate, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return math.Min(1, rate*dt)
}

// TumbleTarget is the rotation a voxel aims for: a slow wobble while the field
// is chaotic, square to the axes otherwise.
func TumbleTarget(stage int, elapsed, phase float64) float64 {
	if stage == core.StageChaos {
		return math.Sin(elapsed + phase)
	}
	return 0
}
