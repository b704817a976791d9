package game

import (
	"fmt"
	"strings"
)

// SessionReporter accumulates per-session statistics: captures by type and
// location, pool recycling counters, and elapsed frames. It backs the F2
// clipboard export in the windowed game and the headless report CLI.
type SessionReporter struct {
	frames   int
	captures [insectTypeCount]int
	byLoc    map[Location]*[insectTypeCount]int

	landedResets  int // insects that sank back into the grass
	boundsRescues int // runaway insects pulled back by the safety net
	emptyClicks   int
}

// NewSessionReporter returns an empty reporter.
func NewSessionReporter() *SessionReporter {
	return &SessionReporter{byLoc: map[Location]*[insectTypeCount]int{}}
}

// Tick advances the frame counter.
func (r *SessionReporter) Tick() { r.frames++ }

// RecordCapture logs one successful capture at a location.
func (r *SessionReporter) RecordCapture(loc Location, t InsectType) {
	if t < 0 || t >= insectTypeCount {
		return
	}
	r.captures[t]++
	lc, ok := r.byLoc[loc]
	if !ok {
		lc = &[insectTypeCount]int{}
		r.byLoc[loc] = lc
	}
	lc[t]++
}

// RecordLanded logs one insect recycled at the grass line.
func (r *SessionReporter) RecordLanded() { r.landedResets++ }

// RecordRescue logs one out-of-bounds insect forced back into the pool.
func (r *SessionReporter) RecordRescue() { r.boundsRescues++ }

// RecordEmptyClick logs a capture attempt that hit nothing.
func (r *SessionReporter) RecordEmptyClick() { r.emptyClicks++ }

// Frames returns the elapsed frame count.
func (r *SessionReporter) Frames() int { return r.frames }

// TotalCaptures returns captures across all types.
func (r *SessionReporter) TotalCaptures() int {
	n := 0
	for _, c := range r.captures {
		n += c
	}
	return n
}

// Captures returns the count for one type.
func (r *SessionReporter) Captures(t InsectType) int {
	if t < 0 || t >= insectTypeCount {
		return 0
	}
	return r.captures[t]
}

// LandedResets returns how many insects were recycled at the grass line.
func (r *SessionReporter) LandedResets() int { return r.landedResets }

// BoundsRescues returns how many runaway insects were forced back.
func (r *SessionReporter) BoundsRescues() int { return r.boundsRescues }

// Format renders the session report as plain text.
func (r *SessionReporter) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Quiet Meadow session report ---\n")
	fmt.Fprintf(&b, "frames=%d captures_total=%d empty_clicks=%d\n", r.frames, r.TotalCaptures(), r.emptyClicks)
	fmt.Fprintf(&b, "pool_recycling: landed=%d bounds_rescued=%d\n", r.landedResets, r.boundsRescues)

	b.WriteString("captures_by_type:")
	for t := InsectType(0); t < insectTypeCount; t++ {
		fmt.Fprintf(&b, " %s=%d", t, r.captures[t])
	}
	b.WriteString("\n")

	for _, loc := range Locations {
		lc, ok := r.byLoc[loc]
		if !ok {
			continue
		}
		total := 0
		for _, c := range lc {
			total += c
		}
		fmt.Fprintf(&b, "location %s: total=%d", loc, total)
		for t := InsectType(0); t < insectTypeCount; t++ {
			if lc[t] > 0 {
				fmt.Fprintf(&b, " %s=%d", t, lc[t])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
