package field

import (
	"sync"

	"voxfield/internal/core"
	"voxfield/internal/voxel"
)

// SettleConfig describes a deterministic settle run.
type SettleConfig struct {
	Count    int     `yaml:"count"`
	Seed     int64   `yaml:"seed"`
	DT       float64 `yaml:"dt"`
	Epsilon  float64 `yaml:"epsilon"`
	MaxSteps int     `yaml:"max_steps"`
}

// DefaultSettleConfig matches a 60 Hz host with the standard field size.
func DefaultSettleConfig() SettleConfig {
	return SettleConfig{
		Count:    DefaultCount,
		Seed:     1,
		DT:       1.0 / 60,
		Epsilon:  0.05,
		MaxSteps: 3600,
	}
}

// Transition records how one stage change converged.
type Transition struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	// Settled is false when MaxSteps ran out first.
	Settled bool `yaml:"settled"`
	// Steps is the number of Advance calls until the mean distance dropped
	// below the epsilon.
	Steps int `yaml:"steps"`
	// Seconds is the animation time spent: Steps times the frame delta as
	// the voxels see it, capped at voxel.MaxFrameDelta.
	Seconds    float64 `yaml:"seconds"`
	Distance   float64 `yaml:"distance"`
	ColorError float64 `yaml:"color_error"`
}

// SettleReport is the outcome of walking the stages forward and back.
type SettleReport struct {
	Config      SettleConfig `yaml:"config"`
	Transitions []Transition `yaml:"transitions"`
}

// SettlePath is the stage walk used by Settle: every forward step then
// every backward step.
func SettlePath() []int {
	path := make([]int, 0, 2*core.StageCount-1)
	for s := 0; s < core.StageCount; s++ {
		path = append(path, s)
	}
	for s := core.StageCount - 2; s >= 0; s-- {
		path = append(path, s)
	}
	return path
}

// Settle builds a field from cfg and advances it at a fixed dt through
// SettlePath, measuring each transition.
//
// The run starts with the field settled on the chaos stage so the first
// transition measures a real move. Non-positive fields in cfg take their
// defaults.
func Settle(cfg SettleConfig) SettleReport {
	def := DefaultSettleConfig()
	if cfg.Count <= 0 {
		cfg.Count = def.Count
	}
	if cfg.DT <= 0 {
		cfg.DT = def.DT
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = def.Epsilon
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = def.MaxSteps
	}

	var stage core.FixedStage
	f := New(cfg.Count, &stage, cfg.Seed)
	path := SettlePath()
	report := SettleReport{Config: cfg}

	settle(f, int(stage), cfg)
	for i := 1; i < len(path); i++ {
		stage = core.FixedStage(path[i])
		tr := settle(f, path[i], cfg)
		tr.From = path[i-1]
		report.Transitions = append(report.Transitions, tr)
	}
	return report
}

func settle(f *Field, to int, cfg SettleConfig) Transition {
	tr := Transition{To: to}
	for tr.Steps < cfg.MaxSteps {
		f.Advance(cfg.DT)
		tr.Steps++
		if f.MeanDistance(to) < cfg.Epsilon {
			tr.Settled = true
			break
		}
	}
	tr.Seconds = float64(tr.Steps) * min(cfg.DT, voxel.MaxFrameDelta)
	tr.Distance = f.MeanDistance(to)
	tr.ColorError = f.MaxColorError(to)
	return tr
}

// SettleSeeds runs Settle for runs consecutive seeds starting at cfg.Seed,
// at most workers at a time. Reports come back in seed order.
func SettleSeeds(cfg SettleConfig, runs, workers int) []SettleReport {
	if runs <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	reports := make([]SettleReport, runs)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := 0; i < runs; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			c := cfg
			c.Seed = cfg.Seed + int64(i)
			reports[i] = Settle(c)
			<-sem
		}(i)
	}
	wg.Wait()
	return reports
}

// Slowest returns the transition with the most steps across reports.
func Slowest(reports []SettleReport) (Transition, bool) {
	var worst Transition
	found := false
	for _, r := range reports {
		for _, tr := range r.Transitions {
			if !found || tr.Steps > worst.Steps {
				worst = tr
				found = true
			}
		}
	}
	return worst, found
}
