package game

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// uiRect is an axis-aligned screen-space rectangle for overlay hit tests.
type uiRect struct {
	x, y, w, h float32
}

func (r uiRect) contains(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= r.x && fx < r.x+r.w && fy >= r.y && fy < r.y+r.h
}

// globeButtonRect is the map-opening button in the forest HUD, pinned to the
// top-right corner.
func globeButtonRect(viewportWidth int) uiRect {
	return uiRect{x: float32(viewportWidth) - 56, y: 12, w: 44, h: 44}
}

// mapButton binds one world-map row to its location.
type mapButton struct {
	rect uiRect
	loc  Location
}

// mapLayout is the world-map overlay geometry for one viewport size. It is
// recomputed on demand so click routing and drawing always agree.
type mapLayout struct {
	panel   uiRect
	close   uiRect
	buttons []mapButton
}

func mapPanelLayout(viewportWidth, viewportHeight int) mapLayout {
	pw := float32(420)
	if max := float32(viewportWidth) - 80; pw > max {
		pw = max
	}
	ph := float32(76 + len(Locations)*56)
	px := (float32(viewportWidth) - pw) / 2
	py := (float32(viewportHeight)-ph)/2 - 20
	if py < 16 {
		py = 16
	}

	l := mapLayout{
		panel: uiRect{x: px, y: py, w: pw, h: ph},
		close: uiRect{x: px + pw - 40, y: py + 12, w: 28, h: 28},
	}
	for i, loc := range Locations {
		l.buttons = append(l.buttons, mapButton{
			rect: uiRect{x: px + 24, y: py + 60 + float32(i)*56, w: pw - 48, h: 44},
			loc:  loc,
		})
	}
	return l
}

// locationAt returns the location whose button contains the click, if any.
func (l mapLayout) locationAt(mx, my int) (Location, bool) {
	for _, b := range l.buttons {
		if b.rect.contains(mx, my) {
			return b.loc, true
		}
	}
	return "", false
}

// captureFlash is the expanding ring left behind by a successful capture.
type captureFlash struct {
	x, y   float64
	tint   color.RGBA
	alpha  *gween.Tween
	radius *gween.Tween
	alphaV float32
	radV   float32
	done   bool
}

// overlayUI owns the presentation-only animation state: title fade, prompt
// bob, map panel slide and capture flashes. Navigation state changes are
// instantaneous in the Sim; these tweens only dress them up.
type overlayUI struct {
	titleAlpha float32
	titleFade  *gween.Tween

	promptSpring harmonica.Spring
	promptPos    float64
	promptVel    float64

	mapAlpha float32
	mapFade  *gween.Tween

	panelSpring harmonica.Spring
	panelPos    float64
	panelVel    float64

	flashes []*captureFlash
}

const uiDT = 1.0 / 60.0

func newOverlayUI() *overlayUI {
	return &overlayUI{
		titleAlpha:   1,
		promptSpring: harmonica.NewSpring(harmonica.FPS(60), 1.6, 0.2),
		panelSpring:  harmonica.NewSpring(harmonica.FPS(60), 7.0, 0.6),
	}
}

func (u *overlayUI) onGameStarted() {
	u.titleFade = gween.New(u.titleAlpha, 0, 0.45, ease.OutQuad)
}

func (u *overlayUI) onMapOpened() {
	u.mapAlpha = 0
	u.mapFade = gween.New(0, 1, 0.25, ease.OutQuad)
	u.panelPos = 0
	u.panelVel = 0
}

func (u *overlayUI) onMapClosed() {
	u.mapFade = nil
	u.mapAlpha = 0
}

// flashAt spawns a capture ring at the click point.
func (u *overlayUI) flashAt(x, y float64, tint color.RGBA) {
	u.flashes = append(u.flashes, &captureFlash{
		x:      x,
		y:      y,
		tint:   tint,
		alpha:  gween.New(0.9, 0, 0.5, ease.OutQuad),
		radius: gween.New(8, 26, 0.5, ease.OutCubic),
	})
}

// step advances every presentation tween by one frame.
func (u *overlayUI) step(sim *Sim) {
	if u.titleFade != nil {
		v, done := u.titleFade.Update(uiDT)
		u.titleAlpha = v
		if done {
			u.titleFade = nil
			u.titleAlpha = 0
		}
	}

	// Title prompt bob: the spring chases a slowly alternating target.
	target := 0.0
	if sim.Frame()%100 < 50 {
		target = 1.0
	}
	u.promptPos, u.promptVel = u.promptSpring.Update(u.promptPos, u.promptVel, target)

	if sim.Scene() == SceneMap {
		if u.mapFade != nil {
			v, done := u.mapFade.Update(uiDT)
			u.mapAlpha = v
			if done {
				u.mapFade = nil
				u.mapAlpha = 1
			}
		}
		u.panelPos, u.panelVel = u.panelSpring.Update(u.panelPos, u.panelVel, 1)
	}

	kept := u.flashes[:0]
	for _, f := range u.flashes {
		av, adone := f.alpha.Update(uiDT)
		rv, _ := f.radius.Update(uiDT)
		f.alphaV, f.radV = av, rv
		f.done = adone
		if !f.done {
			kept = append(kept, f)
		}
	}
	u.flashes = kept
}

// drawFlashes renders the active capture rings.
func (u *overlayUI) drawFlashes(screen *ebiten.Image) {
	for _, f := range u.flashes {
		c := scaleAlpha(f.tint, f.alphaV)
		vector.StrokeCircle(screen, float32(f.x), float32(f.y), f.radV, 2.5, c, true)
	}
}

// scaleAlpha fades a colour, keeping it alpha-premultiplied.
func scaleAlpha(c color.RGBA, a float32) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
