// Package main sweeps wander parameters headlessly and reports how
// lively each combination feels: arena coverage, reflection rate, and
// direction-change cadence. Results land in a CSV for comparison.
//
// Usage: go run ./cmd/wandersweep --output results.csv
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/stat"

	"github.com/wasibhussain/ladybug-chase/arena"
	"github.com/wasibhussain/ladybug-chase/components"
	"github.com/wasibhussain/ladybug-chase/config"
	"github.com/wasibhussain/ladybug-chase/systems"
	"github.com/wasibhussain/ladybug-chase/telemetry"
)

// coverageCellSize is the grid resolution for visited-area tracking.
const coverageCellSize = 16

// SweepResult is one parameter combination's summary row.
type SweepResult struct {
	Speed           float64 `csv:"speed"`
	MinInterval     float64 `csv:"min_interval"`
	MaxInterval     float64 `csv:"max_interval"`
	CoverageMean    float64 `csv:"coverage_mean"`
	CoverageStd     float64 `csv:"coverage_std"`
	ReflectionsPerS float64 `csv:"reflections_per_s"`
	ChangesPerS     float64 `csv:"changes_per_s"`
	IntervalMean    float64 `csv:"interval_mean"`
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	output := flag.String("output", "", "Output CSV path")
	seeds := flag.Int("seeds", 5, "Number of seeds per combination")
	duration := flag.Float64("duration", 60, "Simulated seconds per run")
	flag.Parse()

	if *output == "" {
		log.Fatal("--output is required")
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	speeds := []float64{100, 170, 240, 320}
	maxIntervals := []float64{1.0, 2.2, 3.5}

	var results []SweepResult
	for _, speed := range speeds {
		for _, maxInterval := range maxIntervals {
			minInterval := maxInterval / 3

			motion := cfg.Motion
			motion.Speed = speed
			motion.MinChangeInterval = minInterval
			motion.MaxChangeInterval = maxInterval

			var coverages []float64
			var reflections, changes int
			var intervalMeans []float64

			for seed := 0; seed < *seeds; seed++ {
				run := runOnce(cfg, &motion, int64(seed)+1, *duration)
				coverages = append(coverages, run.coverage)
				reflections += run.reflections
				changes += run.changes
				intervalMeans = append(intervalMeans, run.intervalMean)
			}

			totalSec := *duration * float64(*seeds)
			res := SweepResult{
				Speed:           speed,
				MinInterval:     minInterval,
				MaxInterval:     maxInterval,
				CoverageMean:    stat.Mean(coverages, nil),
				ReflectionsPerS: float64(reflections) / totalSec,
				ChangesPerS:     float64(changes) / totalSec,
				IntervalMean:    stat.Mean(intervalMeans, nil),
			}
			if len(coverages) > 1 {
				res.CoverageStd = stat.StdDev(coverages, nil)
			}
			results = append(results, res)

			log.Printf("speed=%.0f interval=[%.2f, %.2f] coverage=%.2f changes/s=%.2f",
				speed, minInterval, maxInterval, res.CoverageMean, res.ChangesPerS)
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("failed to create output file: %v", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(results, f); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}
	log.Printf("wrote %d rows to %s", len(results), *output)
}

// runResult summarizes a single seeded run.
type runResult struct {
	coverage     float64 // fraction of walkable cells visited
	reflections  int
	changes      int
	intervalMean float64
}

// runOnce simulates the wander core for the given duration.
func runOnce(cfg *config.Config, motion *config.MotionConfig, seed int64, durationSec float64) runResult {
	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(seed))
	a := arena.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, cfg.Derived.Padding32)

	mapper := ecs.NewMap5[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Wander,
		components.Drag,
	](world)

	cx, cy := a.Center()
	pos := components.Position{X: cx, Y: cy}
	vel := components.Velocity{}
	rot := components.Rotation{}
	wander := components.Wander{}
	drag := components.Drag{}
	bug := mapper.NewEntity(&pos, &vel, &rot, &wander, &drag)

	wanderSys := systems.NewWanderSystem(world, rng, motion)
	motionSys := systems.NewMotionSystem(world, a)
	posMap := ecs.NewMap1[components.Position](world)

	// Visited-cell grid over the walkable span
	loX, hiX := a.SpanX()
	loY, hiY := a.SpanY()
	cols := int(hiX-loX)/coverageCellSize + 1
	rows := int(hiY-loY)/coverageCellSize + 1
	visited := make([]bool, cols*rows)
	visitedCount := 0

	collector := telemetry.NewCollector(durationSec, cfg.Derived.DT32)

	dt := cfg.Physics.DT
	ticks := int(durationSec / dt)
	now := 0.0
	var res runResult

	for i := 0; i < ticks; i++ {
		changes := wanderSys.Update(now)
		res.changes += changes
		for j := 0; j < changes; j++ {
			collector.RecordDirectionChange(now)
		}

		mres := motionSys.Update(dt)
		res.reflections += mres.ReflectionsX + mres.ReflectionsY

		p := posMap.Get(bug)
		col := int(p.X-loX) / coverageCellSize
		row := int(p.Y-loY) / coverageCellSize
		if col >= 0 && col < cols && row >= 0 && row < rows {
			idx := row*cols + col
			if !visited[idx] {
				visited[idx] = true
				visitedCount++
			}
		}

		now += dt
	}

	stats := collector.Flush(int32(ticks))
	res.intervalMean = stats.MeanChangeInterval
	res.coverage = float64(visitedCount) / float64(cols*rows)
	return res
}
