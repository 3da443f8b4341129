package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockReportsWallDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	clock := NewFrameClockWith(func() time.Time { return now })

	elapsed, dt := clock.Tick()
	if elapsed != 0 || dt != 0 {
		t.Fatalf("first tick = (%f, %f), want zeros", elapsed, dt)
	}

	now = base.Add(16 * time.Millisecond)
	elapsed, dt = clock.Tick()
	if math.Abs(dt-0.016) > 1e-9 {
		t.Fatalf("dt = %f, want 0.016", dt)
	}
	if math.Abs(elapsed-0.016) > 1e-9 {
		t.Fatalf("elapsed = %f, want 0.016", elapsed)
	}

	now = base.Add(5 * time.Second)
	clock.Skip()
	now = base.Add(5*time.Second + 10*time.Millisecond)
	elapsed, dt = clock.Tick()
	if math.Abs(dt-0.010) > 1e-9 {
		t.Fatalf("dt after skip = %f, want 0.010", dt)
	}
	if math.Abs(elapsed-5.010) > 1e-9 {
		t.Fatalf("elapsed after skip = %f, want 5.010", elapsed)
	}
}

func TestFrameClockIgnoresBackwardsTime(t *testing.T) {
	base := time.Unix(1000, 0)
	now := base
	clock := NewFrameClockWith(func() time.Time { return now })
	clock.Tick()
	now = base.Add(-time.Second)
	if _, dt := clock.Tick(); dt != 0 {
		t.Fatalf("dt = %f, want 0 when the clock goes backwards", dt)
	}
}

func TestClampStage(t *testing.T) {
	cases := map[int]int{-5: 0, 0: 0, 2: 2, 3: 3, 4: 3, 99: 3}
	for in, want := range cases {
		if got := ClampStage(in); got != want {
			t.Fatalf("ClampStage(%d) = %d, want %d", in, got, want)
		}
	}
	if StageName(StageTowers) != "towers" {
		t.Fatalf("unexpected stage name %q", StageName(StageTowers))
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		va, vb := a.Centered(25), b.Centered(25)
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
		if va < -12.5 || va >= 12.5 {
			t.Fatalf("draw %d out of range: %f", i, va)
		}
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Field",
		Params: []Parameter{IntParam("count", "Count", 800), FloatParam("elapsed", "Elapsed", 1.5)},
	}}}
	p, ok := snap.Lookup("elapsed")
	if !ok || p.Value != "1.500" {
		t.Fatalf("lookup elapsed = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("lookup of missing key should fail")
	}
}
