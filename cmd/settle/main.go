package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"voxfield/internal/core"
	"voxfield/internal/field"

	"gopkg.in/yaml.v3"
)

func main() {
	def := field.DefaultSettleConfig()
	count := flag.Int("count", def.Count, "number of voxels")
	seed := flag.Int64("seed", def.Seed, "first layout seed")
	runs := flag.Int("runs", 1, "number of consecutive seeds to evaluate")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	dt := flag.Float64("dt", def.DT, "fixed frame delta in seconds")
	eps := flag.Float64("epsilon", def.Epsilon, "mean distance counted as settled")
	maxSteps := flag.Int("max-steps", def.MaxSteps, "frame budget per transition")
	asYAML := flag.Bool("yaml", false, "print the reports as YAML")
	flag.Parse()

	cfg := field.SettleConfig{
		Count:    *count,
		Seed:     *seed,
		DT:       *dt,
		Epsilon:  *eps,
		MaxSteps: *maxSteps,
	}
	reports := field.SettleSeeds(cfg, *runs, *workers)

	if *asYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		if err := enc.Close(); err != nil {
			log.Fatalf("encode report: %v", err)
		}
		return
	}

	for _, r := range reports {
		fmt.Printf("Seed %d: %d voxels, dt %.4f, epsilon %.3f\n", r.Config.Seed, r.Config.Count, r.Config.DT, r.Config.Epsilon)
		for _, tr := range r.Transitions {
			status := "settled"
			if !tr.Settled {
				status = "TIMEOUT"
			}
			fmt.Printf("  %-7s -> %-7s %s after %4d steps (%.2fs), distance %.4f, colour error %.4f\n",
				core.StageName(tr.From), core.StageName(tr.To), status, tr.Steps, tr.Seconds, tr.Distance, tr.ColorError)
		}
	}
	if worst, ok := field.Slowest(reports); ok && len(reports) > 1 {
		fmt.Printf("\nSlowest: %s -> %s in %.2fs\n", core.StageName(worst.From), core.StageName(worst.To), worst.Seconds)
	}
}
