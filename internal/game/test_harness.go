package game

// TestSim is a headless harness around Sim, used by tests and by the
// headless-report CLI. It has no ebiten dependency: input arrives as direct
// method calls and frames advance via RunFrames.
type TestSim struct {
	Sim *Sim
}

type simConfig struct {
	width    int
	height   int
	seed     int64
	location string
}

// SimOption configures a TestSim during construction.
type SimOption func(*simConfig)

// WithViewport sets the simulated viewport size.
func WithViewport(w, h int) SimOption {
	return func(c *simConfig) {
		c.width = w
		c.height = h
	}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(c *simConfig) {
		c.seed = seed
	}
}

// WithLocation sets the starting location (normalised like any selection).
func WithLocation(key string) SimOption {
	return func(c *simConfig) {
		c.location = key
	}
}

// NewTestSim constructs a harness at the title screen.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := simConfig{width: 1280, height: 720, seed: 1}
	for _, o := range opts {
		o(&cfg)
	}
	sim := NewSim(cfg.width, cfg.height, cfg.seed)
	if cfg.location != "" {
		loc := NormalizeLocation(cfg.location)
		sim.location = loc
		sim.theme = ThemeFor(loc)
	}
	return &TestSim{Sim: sim}
}

// Start leaves the title screen.
func (ts *TestSim) Start() { ts.Sim.StartGame() }

// OpenMap raises the map overlay.
func (ts *TestSim) OpenMap() { ts.Sim.OpenMap() }

// CloseMap dismisses the map overlay.
func (ts *TestSim) CloseMap() { ts.Sim.CloseMap() }

// SelectLocation picks a location from the map.
func (ts *TestSim) SelectLocation(key string) { ts.Sim.SelectLocation(key) }

// PointerMove records the pointer position for the next frame.
func (ts *TestSim) PointerMove(x, y float64) { ts.Sim.PointerMove(x, y) }

// Click attempts a capture at (x, y).
func (ts *TestSim) Click(x, y float64) (InsectType, bool) { return ts.Sim.Click(x, y) }

// Resize changes the simulated viewport.
func (ts *TestSim) Resize(w, h int) { ts.Sim.Resize(w, h) }

// RunFrames advances the simulation n frames.
func (ts *TestSim) RunFrames(n int) {
	for i := 0; i < n; i++ {
		ts.Sim.Step()
	}
}

// RunUntil advances up to maxFrames, stopping early when predicate returns
// true. Returns the frame at which it was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*Sim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.Sim.Step()
		if predicate(ts.Sim) {
			return ts.Sim.Frame()
		}
	}
	return -1
}
