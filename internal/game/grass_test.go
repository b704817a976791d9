package game

import (
	"math"
	"math/rand"
	"testing"
)

func testField(t *testing.T, w, h int) *GrassField {
	t.Helper()
	f := NewGrassField()
	f.Rebuild(w, h, ThemeFor(LocForest), rand.New(rand.NewSource(42)))
	return f
}

func TestRebuild_CoversViewportWithMargin(t *testing.T) {
	f := testField(t, 800, 600)

	if len(f.Back) == 0 || len(f.Front) == 0 {
		t.Fatal("rebuild produced empty layers")
	}
	// Both layers must start before x=0 and reach past the right edge so a
	// widening resize never exposes a bare strip.
	for name, layer := range map[string][]Blade{"back": f.Back, "front": f.Front} {
		minX, maxX := math.Inf(1), math.Inf(-1)
		for i := range layer {
			if layer[i].x < minX {
				minX = layer[i].x
			}
			if layer[i].x > maxX {
				maxX = layer[i].x
			}
		}
		if minX >= 0 {
			t.Fatalf("%s layer starts at %.1f, expected off-screen left", name, minX)
		}
		if maxX <= 800 {
			t.Fatalf("%s layer ends at %.1f, expected off-screen right", name, maxX)
		}
	}
}

func TestRebuild_BackDenserButShorter(t *testing.T) {
	f := testField(t, 900, 600)

	if len(f.Back) <= len(f.Front)/2 {
		t.Fatalf("back layer unexpectedly sparse: back=%d front=%d", len(f.Back), len(f.Front))
	}
	// Back spacing 3 vs front spacing 2 over the same span.
	wantBack := (900 + 2*grassMargin) / backSpacing
	wantFront := (900 + 2*grassMargin) / frontSpacing
	if len(f.Back) != wantBack {
		t.Fatalf("back blade count = %d, want %d", len(f.Back), wantBack)
	}
	if len(f.Front) != wantFront {
		t.Fatalf("front blade count = %d, want %d", len(f.Front), wantFront)
	}

	maxBack, minFront := 0.0, math.Inf(1)
	for i := range f.Back {
		if f.Back[i].height > maxBack {
			maxBack = f.Back[i].height
		}
	}
	for i := range f.Front {
		if f.Front[i].height < minFront {
			minFront = f.Front[i].height
		}
	}
	if maxBack > f.frontCfg.MaxHeight {
		t.Fatalf("back blade taller than front max: %.1f", maxBack)
	}
	if f.backCfg.Highlight || !f.frontCfg.Highlight {
		t.Fatal("highlight must be front-only")
	}
}

func TestInteract_OutOfReachIsNoOp(t *testing.T) {
	cfg := frontConfig(ThemeFor(LocForest))
	b := Blade{x: 100, baseY: 400, height: 30, cfg: &cfg}

	b.interact(100+pointerReach+1, 400)
	if b.target != 0 {
		t.Fatalf("pointer beyond reach changed target to %f", b.target)
	}
	b.interact(100, 400-pointerReach-1)
	if b.target != 0 {
		t.Fatalf("vertical out-of-reach pointer changed target to %f", b.target)
	}
}

func TestInteract_BendsAwayFromPointerAndClamps(t *testing.T) {
	cfg := frontConfig(ThemeFor(LocForest))
	b := Blade{x: 100, baseY: 400, height: 30, cfg: &cfg}

	// Pointer slightly left of the base: blade bends right (positive).
	b.interact(90, 400)
	want := clampBend(10*cfg.InteractStrength, cfg.MaxBend)
	if b.target != want {
		t.Fatalf("target = %f, want %f", b.target, want)
	}
	if b.target <= 0 {
		t.Fatalf("blade should bend away from pointer, target = %f", b.target)
	}

	// Pointer far left but within reach: proportional value exceeds the
	// clamp and must be held at MaxBend.
	b.target = 0
	b.interact(100-pointerReach+5, 400)
	if b.target != cfg.MaxBend {
		t.Fatalf("target = %f, want clamp at %f", b.target, cfg.MaxBend)
	}
}

func TestUpdate_DecaysToRest(t *testing.T) {
	cfg := frontConfig(ThemeFor(LocForest))
	b := Blade{x: 0, baseY: 0, height: 30, cfg: &cfg}
	b.target = cfg.MaxBend
	b.angle = cfg.MaxBend // as after holding the pointer in place

	prevAngle := math.Abs(b.angle)
	prevTarget := math.Abs(b.target)
	for i := 0; i < 600; i++ {
		b.update()
		if a := math.Abs(b.angle); a > prevAngle+1e-12 {
			t.Fatalf("step %d: |angle| grew %f -> %f", i, prevAngle, a)
		} else {
			prevAngle = a
		}
		if tg := math.Abs(b.target); tg > prevTarget+1e-12 {
			t.Fatalf("step %d: |target| grew %f -> %f", i, prevTarget, tg)
		} else {
			prevTarget = tg
		}
		if math.Abs(b.angle) > cfg.MaxBend {
			t.Fatalf("step %d: angle %f exceeds max bend %f", i, b.angle, cfg.MaxBend)
		}
	}
	if math.Abs(b.angle) > 1e-3 || math.Abs(b.target) > 1e-3 {
		t.Fatalf("blade did not settle: angle=%f target=%f", b.angle, b.target)
	}
}

func TestUpdate_NeverExceedsMaxBendUnderPressure(t *testing.T) {
	cfg := backConfig(ThemeFor(LocSwamp))
	b := Blade{x: 50, baseY: 300, height: 20, cfg: &cfg}

	// Hammer the blade with alternating close-range interactions.
	for i := 0; i < 500; i++ {
		px := 50.0 - 60
		if i%2 == 0 {
			px = 50.0 + 60
		}
		b.interact(px, 300)
		b.update()
		if math.Abs(b.angle) > cfg.MaxBend {
			t.Fatalf("step %d: angle %f exceeds max bend", i, b.angle)
		}
		if math.Abs(b.target) > cfg.MaxBend {
			t.Fatalf("step %d: target %f exceeds max bend", i, b.target)
		}
	}
}

func TestFieldInteract_OnlyNearbyBladesReact(t *testing.T) {
	f := testField(t, 600, 400)
	gy := grassLineY(400)
	f.Interact(300, gy)
	f.Update()

	moved := 0
	for i := range f.Front {
		b := &f.Front[i]
		if b.angle != 0 {
			moved++
			if math.Abs(b.x-300) >= pointerReach+frontSpacing {
				t.Fatalf("blade at x=%.1f moved despite being out of reach", b.x)
			}
		}
	}
	if moved == 0 {
		t.Fatal("no front blade reacted to a pointer at the grass line")
	}
}

func TestRetint_SwapsLayerColours(t *testing.T) {
	f := testField(t, 400, 300)
	swamp := ThemeFor(LocSwamp)
	f.Retint(swamp)

	if f.backCfg.Color != swamp.GrassBack {
		t.Fatalf("back colour = %v, want %v", f.backCfg.Color, swamp.GrassBack)
	}
	if f.frontCfg.Color != swamp.GrassFront {
		t.Fatalf("front colour = %v, want %v", f.frontCfg.Color, swamp.GrassFront)
	}
	// Blades share the layer config, so each blade sees the new colour.
	if f.Front[0].cfg.Color != swamp.GrassFront {
		t.Fatal("front blade still references the old colour")
	}
	if f.Back[0].cfg.Color != swamp.GrassBack {
		t.Fatal("back blade still references the old colour")
	}
}

func TestTip_FollowsBendDirection(t *testing.T) {
	cfg := frontConfig(ThemeFor(LocForest))
	b := Blade{x: 100, baseY: 400, height: 40, cfg: &cfg}

	tx, ty := b.tip()
	if tx != 100 || ty != 360 {
		t.Fatalf("upright tip = (%.1f, %.1f), want (100, 360)", tx, ty)
	}
	b.angle = 0.5
	tx, ty = b.tip()
	if tx <= 100 {
		t.Fatalf("positive bend should move tip right, got x=%.1f", tx)
	}
	if ty <= 360 {
		t.Fatalf("bent blade should be shorter vertically, got y=%.1f", ty)
	}
}
