package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/Garsondee/Quiet-Meadow/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	frames   int
	total    int
	captures map[game.InsectType]int
	landed   int
	rescued  int

	report string
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var location string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 3600, "frames per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&location, "location", "forest", "starting location (forest, meadow, swamp)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	fmt.Printf("=== Headless Capture Report ===\n")
	fmt.Printf("location=%s runs=%d frames=%d seed_base=%d seed_step=%d\n\n",
		game.NormalizeLocation(location), runs, frames, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := driveRun(i+1, seed, frames, location)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

// driveRun plays one scripted session: the pointer sweeps along the grass
// line, every ninth frame clicks the first visible insect, and halfway
// through the run the location switches via the map.
func driveRun(runIndex int, seed int64, frames int, location string) runStats {
	const width, height = 1280, 720

	ts := game.NewTestSim(
		game.WithViewport(width, height),
		game.WithSeed(seed),
		game.WithLocation(location),
	)
	ts.Start()
	grassY := ts.Sim.Swarm().GrassY()

	for f := 0; f < frames; f++ {
		px := (math.Sin(float64(f)*0.02) + 1) / 2 * width
		ts.PointerMove(px, grassY-10)
		ts.RunFrames(1)

		if f%9 == 4 {
			if vis := ts.Sim.Swarm().VisibleInsects(); len(vis) > 0 {
				x, y := vis[0].Pos()
				ts.Click(x, y)
			}
		}
		if f == frames/2 {
			ts.OpenMap()
			ts.SelectLocation(string(nextLocation(ts.Sim.CurrentLocation())))
		}
	}

	rep := ts.Sim.Reporter()
	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		frames:   rep.Frames(),
		total:    rep.TotalCaptures(),
		captures: map[game.InsectType]int{},
		landed:   rep.LandedResets(),
		rescued:  rep.BoundsRescues(),
		report:   rep.Format(),
	}
	for _, t := range game.InsectTypes() {
		rs.captures[t] = rep.Captures(t)
	}
	return rs
}

// nextLocation cycles through the registered locations.
func nextLocation(loc game.Location) game.Location {
	for i, l := range game.Locations {
		if l == loc {
			return game.Locations[(i+1)%len(game.Locations)]
		}
	}
	return game.DefaultLocation
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(rs.report)
	fmt.Println()
}

type aggStats struct {
	runs     int
	total    int
	captures map[game.InsectType]int
	landed   int
	rescued  int
}

// aggregate sums capture statistics across runs.
func aggregate(all []runStats) aggStats {
	agg := aggStats{runs: len(all), captures: map[game.InsectType]int{}}
	for _, rs := range all {
		agg.total += rs.total
		agg.landed += rs.landed
		agg.rescued += rs.rescued
		for t, c := range rs.captures {
			agg.captures[t] += c
		}
	}
	return agg
}

func printAggregate(all []runStats) {
	agg := aggregate(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d captures_total=%d avg_per_run=%.1f\n", agg.runs, agg.total, avg(agg.total, agg.runs))
	fmt.Printf("pool_recycling: landed=%d bounds_rescued=%d\n", agg.landed, agg.rescued)
	fmt.Print("captures_by_type:")
	for _, t := range game.InsectTypes() {
		fmt.Printf(" %s=%d", t, agg.captures[t])
	}
	fmt.Println()
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
