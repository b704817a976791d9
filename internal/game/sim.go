package game

import (
	"math/rand"
)

// Sim is the whole simulation context: navigation state, entities, inventory
// and pointer, owned by whichever loop drives it (the ebiten Game or the
// headless harness). All mutation happens from that single driver.
type Sim struct {
	scene    Scene
	location Location
	theme    Theme

	width  int
	height int

	grass     *GrassField
	swarm     *Swarm
	inventory Inventory
	reporter  *SessionReporter

	rng      *rand.Rand
	pointerX float64
	pointerY float64
	frame    int

	// Rebuild bookkeeping: the viewport and location the forest scene was
	// last built for. Re-entering the forest only rebuilds on a mismatch.
	populated bool
	builtW    int
	builtH    int
	builtLoc  Location
}

// NewSim creates a simulation at the title screen.
func NewSim(width, height int, seed int64) *Sim {
	loc := DefaultLocation
	return &Sim{
		scene:    SceneTitle,
		location: loc,
		theme:    ThemeFor(loc),
		width:    width,
		height:   height,
		grass:    NewGrassField(),
		reporter: NewSessionReporter(),
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
	}
}

// StartGame moves from the title screen into the forest. No-op elsewhere.
func (s *Sim) StartGame() {
	if s.scene != SceneTitle {
		return
	}
	s.scene = SceneForest
	s.enterForest()
}

// OpenMap raises the world-map overlay over the forest.
func (s *Sim) OpenMap() {
	if s.scene != SceneForest {
		return
	}
	s.scene = SceneMap
}

// CloseMap dismisses the map without changing location.
func (s *Sim) CloseMap() {
	if s.scene != SceneMap {
		return
	}
	s.scene = SceneForest
	s.enterForest()
}

// SelectLocation switches the active location and returns to the forest.
// Unrecognised keys fall back to the default location rather than failing.
// A real location change reskins the scene on the spot: grass rebuilt,
// every insect relaunched, so colours match the new palette immediately.
func (s *Sim) SelectLocation(key string) {
	if s.scene != SceneMap && s.scene != SceneForest {
		return
	}
	loc := NormalizeLocation(key)
	s.location = loc
	s.theme = ThemeFor(loc)
	s.scene = SceneForest
	s.enterForest()
}

// Resize records a new viewport. While the forest is live this rebuilds the
// grass and relaunches every insect so nothing references stale bounds.
func (s *Sim) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	if s.populated && (s.scene == SceneForest || s.scene == SceneMap) {
		s.rebuildForest()
	}
}

// enterForest builds the scene on first entry and rebuilds it on later
// entries only when the viewport or location changed since the last build.
func (s *Sim) enterForest() {
	if !s.populated {
		s.grass.Rebuild(s.width, s.height, s.theme, s.rng)
		s.swarm = NewSwarm(s.width, s.height, s.theme, s.rng, s.reporter)
		s.populated = true
		s.builtW, s.builtH, s.builtLoc = s.width, s.height, s.location
		return
	}
	if s.builtW != s.width || s.builtH != s.height || s.builtLoc != s.location {
		s.rebuildForest()
	}
}

func (s *Sim) rebuildForest() {
	s.grass.Rebuild(s.width, s.height, s.theme, s.rng)
	s.swarm.ResetAll(s.width, s.height, s.theme)
	s.builtW, s.builtH, s.builtLoc = s.width, s.height, s.location
}

// PointerMove records the pointer; the grass reacts on the next Step.
func (s *Sim) PointerMove(x, y float64) {
	s.pointerX = x
	s.pointerY = y
}

// Click attempts a capture at (x, y). Only the forest scene captures; the
// map and title route their clicks through the overlay UI instead. Returns
// the captured type when an insect was hit.
func (s *Sim) Click(x, y float64) (InsectType, bool) {
	if s.scene != SceneForest || s.swarm == nil {
		return 0, false
	}
	kind, ok := s.swarm.CaptureAt(x, y)
	if ok {
		s.inventory.Add(kind)
		s.reporter.RecordCapture(s.location, kind)
	} else {
		s.reporter.RecordEmptyClick()
	}
	return kind, ok
}

// Step advances one frame: physics for the grass layers first, then the
// insect pool. The forest keeps simulating under the map overlay so the
// scene is alive when the overlay lifts.
func (s *Sim) Step() {
	s.frame++
	s.reporter.Tick()
	if s.scene != SceneForest && s.scene != SceneMap {
		return
	}
	if !s.populated {
		return
	}
	s.grass.Interact(s.pointerX, s.pointerY)
	s.grass.Update()
	s.swarm.Update()
}

// Accessors used by the renderer, harness and CLI.

func (s *Sim) Scene() Scene { return s.scene }

func (s *Sim) CurrentLocation() Location { return s.location }

func (s *Sim) CurrentTheme() Theme { return s.theme }

func (s *Sim) Grass() *GrassField { return s.grass }

func (s *Sim) Swarm() *Swarm { return s.swarm }

func (s *Sim) Inventory() *Inventory { return &s.inventory }

func (s *Sim) Reporter() *SessionReporter { return s.reporter }

func (s *Sim) Viewport() (int, int) { return s.width, s.height }

func (s *Sim) Pointer() (float64, float64) { return s.pointerX, s.pointerY }

func (s *Sim) Frame() int { return s.frame }
