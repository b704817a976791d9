package game

import (
	"strings"
	"testing"
)

func TestSessionReporter_Counters(t *testing.T) {
	r := NewSessionReporter()
	r.Tick()
	r.Tick()
	r.RecordCapture(LocForest, InsectBeetle)
	r.RecordCapture(LocForest, InsectBeetle)
	r.RecordCapture(LocSwamp, InsectFirefly)
	r.RecordLanded()
	r.RecordRescue()
	r.RecordEmptyClick()

	if r.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", r.Frames())
	}
	if r.TotalCaptures() != 3 {
		t.Fatalf("total captures = %d, want 3", r.TotalCaptures())
	}
	if r.Captures(InsectBeetle) != 2 || r.Captures(InsectFirefly) != 1 {
		t.Fatalf("per-type counts wrong: beetle=%d firefly=%d",
			r.Captures(InsectBeetle), r.Captures(InsectFirefly))
	}
	if r.LandedResets() != 1 || r.BoundsRescues() != 1 {
		t.Fatalf("recycling counters wrong: %d/%d", r.LandedResets(), r.BoundsRescues())
	}
}

func TestSessionReporter_IgnoresInvalidType(t *testing.T) {
	r := NewSessionReporter()
	r.RecordCapture(LocForest, InsectType(99))
	if r.TotalCaptures() != 0 {
		t.Fatalf("invalid type was counted: %d", r.TotalCaptures())
	}
}

func TestSessionReporter_Format(t *testing.T) {
	r := NewSessionReporter()
	r.Tick()
	r.RecordCapture(LocSwamp, InsectDragonfly)
	r.RecordLanded()

	out := r.Format()
	for _, want := range []string{
		"session report",
		"frames=1 captures_total=1",
		"landed=1",
		"dragonfly=1",
		"location swamp: total=1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	// Locations never visited stay out of the report.
	if strings.Contains(out, "location meadow") {
		t.Fatalf("report lists a location with no captures:\n%s", out)
	}
}
