package game

import (
	"image/color"
	"math"
	"math/rand"
)

// pointerReach is the distance from a blade base within which the pointer
// bends the blade.
const pointerReach = 70.0

// grassLineFrac places the grass line as a fraction of viewport height.
const grassLineFrac = 0.78

// grassMargin extends both grass layers past the viewport edges so a fast
// widen never shows a bare strip before the next rebuild.
const grassMargin = 72

// Layer spacing: the back layer is packed tighter but its blades are shorter
// and less reactive, which reads as distance.
const (
	backSpacing  = 3
	frontSpacing = 2
)

// grassLineY returns the y of the grass line for a viewport height.
func grassLineY(height int) float64 {
	return float64(height) * grassLineFrac
}

// BladeConfig is the shared tuning for every blade in one layer.
type BladeConfig struct {
	Stiffness        float64 // fraction of the angle gap closed per frame
	Damping          float64 // per-frame decay applied to the target angle
	InteractStrength float64 // radians of target bend per pixel of pointer offset
	MaxBend          float64 // clamp for both angle and target, radians
	CurveFactor      float64 // sideways pull on the quadratic control point
	StrokeWidth      float32
	Color            color.RGBA
	Highlight        bool
	HighlightColor   color.RGBA
	MinHeight        float64
	MaxHeight        float64
}

// Blade is one damped-spring grass blade. Blades are rebuilt wholesale on
// resize or location change, never individually.
type Blade struct {
	x      float64 // base x
	baseY  float64
	height float64
	angle  float64 // current bend, radians from vertical
	target float64 // bend the blade is easing toward
	cfg    *BladeConfig
}

// interact bends the blade away from the pointer when it is within reach of
// the base. Pointers farther than pointerReach leave the target untouched.
func (b *Blade) interact(px, py float64) {
	dx := b.x - px
	dy := b.baseY - py
	if dx*dx+dy*dy >= pointerReach*pointerReach {
		return
	}
	b.target = clampBend(dx*b.cfg.InteractStrength, b.cfg.MaxBend)
}

// update eases the angle toward the target and decays the target toward
// zero, so an undisturbed blade settles upright.
func (b *Blade) update() {
	b.angle += (b.target - b.angle) * b.cfg.Stiffness
	b.target *= b.cfg.Damping
	b.angle = clampBend(b.angle, b.cfg.MaxBend)
}

// tip returns the blade tip position for the current bend.
func (b *Blade) tip() (float64, float64) {
	return b.x + math.Sin(b.angle)*b.height, b.baseY - math.Cos(b.angle)*b.height
}

func clampBend(v, maxBend float64) float64 {
	if v > maxBend {
		return maxBend
	}
	if v < -maxBend {
		return -maxBend
	}
	return v
}

// backConfig and frontConfig derive the two layer tunings from a theme.
// Back: short, stiff-looking, slow to settle, no highlight. Front: taller,
// more reactive, highlighted.
func backConfig(th Theme) BladeConfig {
	return BladeConfig{
		Stiffness:        0.12,
		Damping:          0.92,
		InteractStrength: 0.014,
		MaxBend:          0.45,
		CurveFactor:      0.5,
		StrokeWidth:      2.0,
		Color:            th.GrassBack,
		MinHeight:        18,
		MaxHeight:        30,
	}
}

func frontConfig(th Theme) BladeConfig {
	return BladeConfig{
		Stiffness:        0.2,
		Damping:          0.86,
		InteractStrength: 0.03,
		MaxBend:          0.7,
		CurveFactor:      0.6,
		StrokeWidth:      2.5,
		Color:            th.GrassFront,
		Highlight:        true,
		HighlightColor:   th.GrassHighlight,
		MinHeight:        28,
		MaxHeight:        46,
	}
}

// GrassField owns both blade layers and their shared configs.
type GrassField struct {
	Back  []Blade
	Front []Blade

	backCfg  BladeConfig
	frontCfg BladeConfig
}

// NewGrassField builds an empty field; Rebuild populates it.
func NewGrassField() *GrassField {
	return &GrassField{}
}

// Rebuild regenerates both layers for the given viewport and theme. Blade
// heights are jittered per blade; all dynamic state starts at rest.
func (f *GrassField) Rebuild(width, height int, th Theme, rng *rand.Rand) {
	f.backCfg = backConfig(th)
	f.frontCfg = frontConfig(th)
	baseY := grassLineY(height)
	f.Back = buildLayer(width, baseY+4, backSpacing, &f.backCfg, rng)
	f.Front = buildLayer(width, baseY+10, frontSpacing, &f.frontCfg, rng)
}

func buildLayer(width int, baseY float64, spacing int, cfg *BladeConfig, rng *rand.Rand) []Blade {
	count := (width + 2*grassMargin) / spacing
	blades := make([]Blade, 0, count)
	for x := -grassMargin; x < width+grassMargin; x += spacing {
		h := cfg.MinHeight + rng.Float64()*(cfg.MaxHeight-cfg.MinHeight)
		blades = append(blades, Blade{
			x:      float64(x) + rng.Float64()*float64(spacing),
			baseY:  baseY,
			height: h,
			cfg:    cfg,
		})
	}
	return blades
}

// Interact applies the pointer to every blade in both layers.
func (f *GrassField) Interact(px, py float64) {
	for i := range f.Back {
		f.Back[i].interact(px, py)
	}
	for i := range f.Front {
		f.Front[i].interact(px, py)
	}
}

// Update advances the spring dynamics of every blade.
func (f *GrassField) Update() {
	for i := range f.Back {
		f.Back[i].update()
	}
	for i := range f.Front {
		f.Front[i].update()
	}
}

// Retint swaps the layer colours to a new theme without disturbing blade
// positions or motion. Used when the location changes mid-scene.
func (f *GrassField) Retint(th Theme) {
	f.backCfg.Color = th.GrassBack
	f.frontCfg.Color = th.GrassFront
	f.frontCfg.HighlightColor = th.GrassHighlight
}

// BladeCount returns the total blades across both layers.
func (f *GrassField) BladeCount() int {
	return len(f.Back) + len(f.Front)
}
