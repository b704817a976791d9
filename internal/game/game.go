package game

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Default window size; the viewport tracks the OS window afterwards.
const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// hudScale is the integer upscale factor applied to all HUD text.
const hudScale = 2

// Game wraps the simulation in ebiten's loop: input routing, overlay
// presentation and rendering. All state lives in the Sim; the Game only owns
// presentation buffers and edge-trigger bookkeeping.
type Game struct {
	sim    *Sim
	ui     *overlayUI
	sounds *soundBank

	showHUD bool

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	// Offscreen buffer for HUD text, rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image
	// Scratch buffer for scaled label text.
	textBuf *ebiten.Image
}

// New creates the windowed game at the title screen.
func New() *Game {
	return &Game{
		sim:      NewSim(defaultWidth, defaultHeight, time.Now().UnixNano()),
		ui:       newOverlayUI(),
		sounds:   newSoundBank(),
		showHUD:  true,
		prevKeys: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	g.handleInput()
	g.sim.Step()
	g.ui.step(g.sim)
	return nil
}

// handleInput routes pointer and keyboard events into the simulation. All
// key actions are edge-triggered.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	g.sim.PointerMove(float64(mx), float64(my))

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	switch g.sim.Scene() {
	case SceneTitle:
		if pressed(ebiten.KeyEnter) || pressed(ebiten.KeySpace) {
			g.startGame()
		}
	case SceneForest:
		if pressed(ebiten.KeyM) {
			g.openMap()
		}
	case SceneMap:
		if pressed(ebiten.KeyM) || pressed(ebiten.KeyEscape) {
			g.closeMap()
		}
	}

	// H: toggle the HUD key legend.
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// F2: copy the session report to the clipboard.
	if pressed(ebiten.KeyF2) {
		if err := clipboard.WriteAll(g.sim.Reporter().Format()); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}

	// Left mouse, edge-triggered.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		g.handleClick(mx, my)
	}
	g.prevMouseLeft = mouseLeft
	g.prevKeys = currentKeys
}

// handleClick routes one pointer-down by scene: overlays first, then the
// capture test.
func (g *Game) handleClick(mx, my int) {
	switch g.sim.Scene() {
	case SceneTitle:
		g.startGame()

	case SceneForest:
		w, _ := g.sim.Viewport()
		if globeButtonRect(w).contains(mx, my) {
			g.openMap()
			return
		}
		if kind, ok := g.sim.Click(float64(mx), float64(my)); ok {
			tint := g.sim.CurrentTheme().InsectTints[kind]
			g.ui.flashAt(float64(mx), float64(my), tint)
			g.sounds.playCapture()
		}

	case SceneMap:
		w, h := g.sim.Viewport()
		layout := mapPanelLayout(w, h)
		if loc, ok := layout.locationAt(mx, my); ok {
			g.sim.SelectLocation(string(loc))
			g.ui.onMapClosed()
			g.sounds.playTick()
			return
		}
		if layout.close.contains(mx, my) {
			g.closeMap()
		}
	}
}

func (g *Game) startGame() {
	g.sim.StartGame()
	g.ui.onGameStarted()
	g.sounds.playTick()
}

func (g *Game) openMap() {
	g.sim.OpenMap()
	g.ui.onMapOpened()
	g.sounds.playTick()
}

func (g *Game) closeMap() {
	g.sim.CloseMap()
	g.ui.onMapClosed()
	g.sounds.playTick()
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.sim.Scene() {
	case SceneTitle:
		g.drawTitle(screen)
	case SceneForest:
		g.drawForest(screen)
		g.ui.drawFlashes(screen)
		g.drawForestHUD(screen)
	case SceneMap:
		g.drawForest(screen)
		g.drawMapOverlay(screen)
	}
	// The title keeps fading over the first forest frames.
	if g.sim.Scene() != SceneTitle && g.ui.titleAlpha > 0 {
		g.drawTitleFade(screen)
	}
}

// Layout tracks the OS window so a resize reaches the simulation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.sim.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
