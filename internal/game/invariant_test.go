package game

import (
	"math"
	"math/rand"
	"testing"
)

// TestLongRun_InvariantsHold drives a noisy session and checks the structural
// invariants every frame: bend clamps, pool size, post-update insect bounds
// and the inventory/reporter capture agreement.
func TestLongRun_InvariantsHold(t *testing.T) {
	ts := NewTestSim(WithViewport(800, 600), WithSeed(99))
	ts.Start()
	sim := ts.Sim
	rng := rand.New(rand.NewSource(4)) // #nosec G404 -- scripted input only

	gy := grassLineY(600)
	for f := 0; f < 2000; f++ {
		ts.PointerMove(rng.Float64()*800, gy-5+rng.Float64()*10)
		ts.RunFrames(1)
		if f%7 == 3 {
			ts.Click(rng.Float64()*800, rng.Float64()*600)
		}
		if f%211 == 150 {
			ts.OpenMap()
		}
		if f%211 == 170 {
			ts.CloseMap()
		}

		checkBendClamp(t, f, sim.Grass().Back)
		checkBendClamp(t, f, sim.Grass().Front)

		if n := len(sim.Swarm().Insects); n != insectPoolSize {
			t.Fatalf("frame %d: pool size drifted to %d", f, n)
		}
		for i, in := range sim.Swarm().Insects {
			x, y := in.Pos()
			if x < -boundsMargin || x > 800+boundsMargin ||
				y < -boundsMargin || y > 600+boundsMargin {
				t.Fatalf("frame %d: insect %d escaped the rescue bounds: (%f, %f)", f, i, x, y)
			}
		}

		if sim.Inventory().Total() != sim.Reporter().TotalCaptures() {
			t.Fatalf("frame %d: inventory total %d != reported captures %d",
				f, sim.Inventory().Total(), sim.Reporter().TotalCaptures())
		}
	}

	if sim.Reporter().Frames() != sim.Frame() {
		t.Fatalf("reporter frames %d != sim frames %d",
			sim.Reporter().Frames(), sim.Frame())
	}
}

func checkBendClamp(t *testing.T, frame int, blades []Blade) {
	t.Helper()
	for i := range blades {
		b := &blades[i]
		if math.Abs(b.angle) > b.cfg.MaxBend+1e-9 {
			t.Fatalf("frame %d: blade %d bent past the clamp: %f > %f",
				frame, i, b.angle, b.cfg.MaxBend)
		}
		if math.Abs(b.target) > b.cfg.MaxBend+1e-9 {
			t.Fatalf("frame %d: blade %d target past the clamp: %f", frame, i, b.target)
		}
	}
}

// TestLongRun_Deterministic replays the same scripted session twice and
// expects identical reports.
func TestLongRun_Deterministic(t *testing.T) {
	run := func() string {
		ts := NewTestSim(WithViewport(800, 600), WithSeed(31))
		ts.Start()
		script := rand.New(rand.NewSource(6)) // #nosec G404 -- scripted input only
		gy := grassLineY(600)
		for f := 0; f < 900; f++ {
			ts.PointerMove(script.Float64()*800, gy-8)
			ts.RunFrames(1)
			if f%5 == 2 {
				if vis := ts.Sim.Swarm().VisibleInsects(); len(vis) > 0 {
					x, y := vis[0].Pos()
					ts.Click(x, y)
				}
			}
		}
		return ts.Sim.Reporter().Format()
	}

	a, b := run(), run()
	if a != b {
		t.Fatalf("same seed diverged:\n--- first ---\n%s\n--- second ---\n%s", a, b)
	}
}
