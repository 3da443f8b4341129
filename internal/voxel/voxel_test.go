package voxel

import (
	"math"
	"testing"

	"voxfield/internal/core"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

func TestStepConvergesWithoutOvershoot(t *testing.T) {
	start := mgl64.Vec3{10, -4, 3}
	target := mgl64.Vec3{-2, 6, 0.5}
	v := New(start, colorful.Color{R: 1, G: 1, B: 1}, 0)
	tint := colorful.Color{R: 0.2, G: 0.5, B: 0.9}

	prev := v.Position().Sub(target).Len()
	elapsed := 0.0
	for i := 0; i < 600; i++ {
		elapsed += 1.0 / 60
		v.Step(target, tint, core.StageGrid, elapsed, 1.0/60)
		dist := v.Position().Sub(target).Len()
		if dist > prev+1e-12 {
			t.Fatalf("step %d moved away from target: %f > %f", i, dist, prev)
		}
		for axis := 0; axis < 3; axis++ {
			lo, hi := math.Min(start[axis], target[axis]), math.Max(start[axis], target[axis])
			if p := v.Position()[axis]; p < lo-1e-12 || p > hi+1e-12 {
				t.Fatalf("step %d axis %d overshot: %f not in [%f,%f]", i, axis, p, lo, hi)
			}
		}
		prev = dist
	}
	if prev > 1e-6 {
		t.Fatalf("did not converge, distance %g", prev)
	}
	if c := v.Color(); math.Abs(c.R-tint.R)+math.Abs(c.G-tint.G)+math.Abs(c.B-tint.B) > 1e-6 {
		t.Fatalf("colour did not converge: %v", c)
	}
	if rx, ry := v.Rotation(); math.Abs(rx) > 1e-6 || math.Abs(ry) > 1e-6 {
		t.Fatalf("rotation did not settle: %f %f", rx, ry)
	}
}

func TestStepColourStaysInRange(t *testing.T) {
	v := New(mgl64.Vec3{}, colorful.Color{R: 1, G: 1, B: 1}, 0)
	tints := []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 0, B: 1}, {R: 0.27, G: 0.27, B: 0.27}}
	for i := 0; i < 300; i++ {
		tint := tints[(i/40)%len(tints)]
		dt := 0.004 + float64(i%7)*0.03
		v.Step(mgl64.Vec3{}, tint, core.StageChaos, float64(i)/30, dt)
		c := v.Color()
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Fatalf("step %d colour channel out of range: %v", i, c)
			}
		}
	}
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	v := New(mgl64.Vec3{1, 2, 3}, colorful.Color{R: 1, G: 1, B: 1}, 4)
	before := v
	for _, dt := range []float64{0, -0.5, math.NaN()} {
		v.Step(mgl64.Vec3{9, 9, 9}, colorful.Color{}, core.StageChaos, 3, dt)
		if v != before {
			t.Fatalf("dt=%v changed state", dt)
		}
	}
}

func TestStepClampsLargeDelta(t *testing.T) {
	v := New(mgl64.Vec3{0, 0, 0}, colorful.Color{R: 1, G: 1, B: 1}, 0)
	v.Step(mgl64.Vec3{10, 0, 0}, colorful.Color{}, core.StageGrid, 0, 30)
	want := 10 * MoveRate * MaxFrameDelta
	if got := v.Position().X(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("x after a 30s frame = %f, want %f", got, want)
	}
}

func TestStageSwitchDoesNotTeleport(t *testing.T) {
	oldTarget := mgl64.Vec3{5, 5, 5}
	newTarget := mgl64.Vec3{-5, -5, 0}
	v := New(oldTarget, colorful.Color{R: 1, G: 1, B: 1}, 0)
	v.Step(newTarget, colorful.Color{}, core.StageGrid, 0.1, 1.0/60)
	p := v.Position()
	for axis := 0; axis < 3; axis++ {
		lo, hi := math.Min(oldTarget[axis], newTarget[axis]), math.Max(oldTarget[axis], newTarget[axis])
		if !(p[axis] > lo && p[axis] < hi) {
			t.Fatalf("axis %d = %f not strictly between %f and %f", axis, p[axis], lo, hi)
		}
	}
}

func TestTumbleTarget(t *testing.T) {
	if got := TumbleTarget(core.StageChaos, 1, 2); math.Abs(got-math.Sin(3)) > 1e-12 {
		t.Fatalf("chaos tumble = %f", got)
	}
	for stage := core.StageGrid; stage < core.StageCount; stage++ {
		if TumbleTarget(stage, 1, 2) != 0 {
			t.Fatalf("stage %d should settle rotation to zero", stage)
		}
	}
}

func TestRandomPhaseRange(t *testing.T) {
	rng := core.NewRNG(5)
	for i := 0; i < 100; i++ {
		v := NewRandomPhase(mgl64.Vec3{}, colorful.Color{}, rng)
		if v.Phase() < 0 || v.Phase() >= PhaseRange {
			t.Fatalf("phase %f out of range", v.Phase())
		}
	}
}
