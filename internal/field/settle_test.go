package field

import (
	"math"
	"slices"
	"testing"
)

func TestSettlePath(t *testing.T) {
	want := []int{0, 1, 2, 3, 2, 1, 0}
	if got := SettlePath(); !slices.Equal(got, want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
}

func TestSettleConverges(t *testing.T) {
	report := Settle(SettleConfig{Count: 120, Seed: 5, DT: 1.0 / 30, Epsilon: 0.05})
	if len(report.Transitions) != 6 {
		t.Fatalf("transitions = %d, want 6", len(report.Transitions))
	}
	for _, tr := range report.Transitions {
		if !tr.Settled {
			t.Fatalf("%d->%d did not settle in %d steps", tr.From, tr.To, tr.Steps)
		}
		if tr.Distance >= 0.05 {
			t.Fatalf("%d->%d distance %.3f above epsilon", tr.From, tr.To, tr.Distance)
		}
		// Exponential easing at rate 3 cannot close metres in a handful of frames.
		if tr.Seconds < 0.5 || tr.Seconds > 10 {
			t.Fatalf("%d->%d settled in %.2fs", tr.From, tr.To, tr.Seconds)
		}
	}
	if report.Config.MaxSteps != DefaultSettleConfig().MaxSteps {
		t.Fatalf("max steps default not applied: %d", report.Config.MaxSteps)
	}
}

func TestSettleIsDeterministic(t *testing.T) {
	cfg := SettleConfig{Count: 60, Seed: 9, DT: 1.0 / 60, Epsilon: 0.1}
	a, b := Settle(cfg), Settle(cfg)
	if !slices.Equal(a.Transitions, b.Transitions) {
		t.Fatal("same config should give the same report")
	}
}

func TestSettleStepBudget(t *testing.T) {
	report := Settle(SettleConfig{Count: 60, Seed: 2, DT: 1.0 / 60, Epsilon: 1e-9, MaxSteps: 5})
	tr := report.Transitions[0]
	if tr.Settled || tr.Steps != 5 {
		t.Fatalf("budget of 5 steps: settled=%v steps=%d", tr.Settled, tr.Steps)
	}
}

func TestSettleSeedsKeepsOrder(t *testing.T) {
	cfg := SettleConfig{Count: 40, Seed: 20, DT: 1.0 / 30, Epsilon: 0.1}
	reports := SettleSeeds(cfg, 3, 2)
	if len(reports) != 3 {
		t.Fatalf("reports = %d, want 3", len(reports))
	}
	for i, r := range reports {
		if r.Config.Seed != 20+int64(i) {
			t.Fatalf("report %d has seed %d", i, r.Config.Seed)
		}
		single := Settle(SettleConfig{Count: 40, Seed: 20 + int64(i), DT: 1.0 / 30, Epsilon: 0.1})
		if !slices.Equal(r.Transitions, single.Transitions) {
			t.Fatalf("parallel run %d differs from a sequential one", i)
		}
	}
	worst, ok := Slowest(reports)
	if !ok || worst.Steps == 0 {
		t.Fatalf("slowest = %+v, %v", worst, ok)
	}
	if SettleSeeds(cfg, 0, 4) != nil {
		t.Fatal("zero runs should give no reports")
	}
	if _, ok := Slowest(nil); ok {
		t.Fatal("no reports, no slowest transition")
	}
}

func TestSettleSecondsUseClampedDelta(t *testing.T) {
	capped := Settle(SettleConfig{Count: 100, Seed: 3, DT: 0.1, Epsilon: 0.05})
	large := Settle(SettleConfig{Count: 100, Seed: 3, DT: 0.5, Epsilon: 0.05})
	for i, tr := range large.Transitions {
		want := capped.Transitions[i]
		if tr.Steps != want.Steps {
			t.Fatalf("%d->%d: steps %d at dt 0.5, %d at dt 0.1", tr.From, tr.To, tr.Steps, want.Steps)
		}
		if math.Abs(tr.Seconds-want.Seconds) > 1e-9 {
			t.Fatalf("%d->%d: %.2fs at dt 0.5, %.2fs at dt 0.1", tr.From, tr.To, tr.Seconds, want.Seconds)
		}
	}
	if large.Config.DT != 0.5 {
		t.Fatalf("report should keep the requested dt, got %v", large.Config.DT)
	}
}
