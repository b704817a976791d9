package game

import (
	"image/color"
	"math/rand"
)

// insectPoolSize is the fixed number of insects alive for a scene. Insects
// are never destroyed, only reset in place.
const insectPoolSize = 7

const (
	insectGravity = 0.18 // downward acceleration per frame
	launchVxRange = 1.6  // |vx| at launch
	launchVyMin   = 6.5  // upward launch speed band
	launchVyBand  = 3.5
	landMargin    = 12.0  // how far below the grass line counts as landed
	boundsMargin  = 160.0 // runaway-trajectory rescue margin
	clickPad      = 6.0   // extra hit-test radius around an insect
)

// Insect is one pooled ballistic insect. The tint is a style snapshot taken
// from the active theme at reset time, so drawing never consults the theme.
type Insect struct {
	x, y   float64
	vx, vy float64
	radius float64
	kind   InsectType
	tint   color.RGBA
}

// Kind returns the insect's current type.
func (in *Insect) Kind() InsectType { return in.kind }

// Pos returns the insect's current position.
func (in *Insect) Pos() (float64, float64) { return in.x, in.y }

// Tint returns the insect's style snapshot.
func (in *Insect) Tint() color.RGBA { return in.tint }

// reset relaunches the insect from a random spot at the grass line with a
// fresh type and a tint resolved from the given theme.
func (in *Insect) reset(width int, grassY float64, th Theme, rng *rand.Rand) {
	in.x = rng.Float64() * float64(width)
	in.y = grassY + rng.Float64()*6
	in.vx = (rng.Float64()*2 - 1) * launchVxRange
	in.vy = -(launchVyMin + rng.Float64()*launchVyBand)
	in.radius = 4 + rng.Float64()*3
	in.kind = InsectType(rng.Intn(int(insectTypeCount)))
	in.tint = th.InsectTints[in.kind]
}

// visible reports whether the insect is above the grass line. Below it the
// insect is "inside" the grass: not drawn and not clickable.
func (in *Insect) visible(grassY float64) bool {
	return in.y < grassY
}

// hit is a padded circle test around the insect's position.
func (in *Insect) hit(x, y float64) bool {
	dx := x - in.x
	dy := y - in.y
	r := in.radius + clickPad
	return dx*dx+dy*dy <= r*r
}

// Swarm is the fixed pool of insects plus everything needed to recycle them.
type Swarm struct {
	Insects []*Insect

	width  int
	height int
	grassY float64
	theme  Theme
	rng    *rand.Rand

	reporter *SessionReporter // may be nil
}

// NewSwarm populates the pool for a viewport and theme.
func NewSwarm(width, height int, th Theme, rng *rand.Rand, rep *SessionReporter) *Swarm {
	s := &Swarm{
		width:    width,
		height:   height,
		grassY:   grassLineY(height),
		theme:    th,
		rng:      rng,
		reporter: rep,
	}
	for i := 0; i < insectPoolSize; i++ {
		in := &Insect{}
		in.reset(width, s.grassY, th, rng)
		s.Insects = append(s.Insects, in)
	}
	return s
}

// ResetAll relaunches every insect, sized to the given viewport. Used on
// resize and on location change.
func (s *Swarm) ResetAll(width, height int, th Theme) {
	s.width = width
	s.height = height
	s.grassY = grassLineY(height)
	s.theme = th
	for _, in := range s.Insects {
		in.reset(width, s.grassY, th, s.rng)
	}
}

// Retint refreshes every insect's style snapshot from a new theme without
// relaunching it.
func (s *Swarm) Retint(th Theme) {
	s.theme = th
	for _, in := range s.Insects {
		in.tint = th.InsectTints[in.kind]
	}
}

// Update integrates every insect one frame. An insect moving downward that
// has sunk past the grass line by landMargin is recycled on the spot, as is
// anything that drifted far outside the viewport.
func (s *Swarm) Update() {
	for _, in := range s.Insects {
		in.vy += insectGravity
		in.x += in.vx
		in.y += in.vy

		if in.vy > 0 && in.y > s.grassY+landMargin {
			in.reset(s.width, s.grassY, s.theme, s.rng)
			if s.reporter != nil {
				s.reporter.RecordLanded()
			}
			continue
		}
		if in.x < -boundsMargin || in.x > float64(s.width)+boundsMargin ||
			in.y < -boundsMargin || in.y > float64(s.height)+boundsMargin {
			in.reset(s.width, s.grassY, s.theme, s.rng)
			if s.reporter != nil {
				s.reporter.RecordRescue()
			}
		}
	}
}

// CaptureAt hit-tests insects front-to-back (reverse draw order) and
// recycles the first visible hit. Returns the captured type, or ok=false if
// the click landed on empty air. At most one insect is captured per call.
func (s *Swarm) CaptureAt(x, y float64) (InsectType, bool) {
	for i := len(s.Insects) - 1; i >= 0; i-- {
		in := s.Insects[i]
		if !in.visible(s.grassY) {
			continue
		}
		if in.hit(x, y) {
			kind := in.kind
			in.reset(s.width, s.grassY, s.theme, s.rng)
			return kind, true
		}
	}
	return 0, false
}

// VisibleInsects returns the insects currently above the grass line, in draw
// order. The headless report CLI uses this to aim scripted clicks.
func (s *Swarm) VisibleInsects() []*Insect {
	var out []*Insect
	for _, in := range s.Insects {
		if in.visible(s.grassY) {
			out = append(out, in)
		}
	}
	return out
}

// GrassY returns the swarm's current grass line.
func (s *Swarm) GrassY() float64 { return s.grassY }
