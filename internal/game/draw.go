package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// occluder band geometry around the grass line.
const (
	occluderAbove = 4.0
	occluderBand  = 18.0
)

// drawForest renders the scene in the fixed depth order: background, back
// grass, insects, occluder, front grass. The order is what keeps insects
// looking embedded in the grass rather than floating over it.
func (g *Game) drawForest(screen *ebiten.Image) {
	sim := g.sim
	th := sim.theme
	w, h := sim.width, sim.height
	grassY := grassLineY(h)

	// 1. Background: sky, tree silhouettes, ground.
	screen.Fill(th.Sky)
	drawTreeRow(screen, w, grassY, th)
	vector.FillRect(screen, 0, float32(grassY), float32(w), float32(h)-float32(grassY), th.Ground, false)

	// 2. Back grass layer.
	drawGrassLayer(screen, sim.grass.Back, &sim.grass.backCfg)

	// 3. Insects, in pool order (capture tests the same order reversed).
	for _, in := range sim.swarm.Insects {
		drawInsect(screen, in, grassY)
	}

	// 4. Occluder: ground-coloured band over the grass line with a darker lip.
	vector.FillRect(screen, 0, float32(grassY-occluderAbove), float32(w), occluderBand, th.Ground, false)
	vector.StrokeLine(screen, 0, float32(grassY-occluderAbove), float32(w), float32(grassY-occluderAbove), 2.0, th.GroundLip, false)

	// 5. Front grass layer, closest to the viewer.
	drawGrassLayer(screen, sim.grass.Front, &sim.grass.frontCfg)
}

// drawGrassLayer strokes every blade of one layer as a single path: a
// quadratic curve per blade whose control point trails the tip sideways.
func drawGrassLayer(dst *ebiten.Image, blades []Blade, cfg *BladeConfig) {
	if len(blades) == 0 {
		return
	}
	var p vector.Path
	for i := range blades {
		b := &blades[i]
		tipX, tipY := b.tip()
		ctlX := b.x + (tipX-b.x)*cfg.CurveFactor
		ctlY := b.baseY - b.height*0.55
		p.MoveTo(float32(b.x), float32(b.baseY))
		p.QuadTo(float32(ctlX), float32(ctlY), float32(tipX), float32(tipY))
	}

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(cfg.Color)
	vector.StrokePath(dst, &p, &vector.StrokeOptions{Width: cfg.StrokeWidth, LineCap: vector.LineCapRound}, op)

	if cfg.Highlight {
		hop := &vector.DrawPathOptions{AntiAlias: true}
		hop.ColorScale.ScaleWithColor(cfg.HighlightColor)
		vector.StrokePath(dst, &p, &vector.StrokeOptions{Width: cfg.StrokeWidth * 0.45, LineCap: vector.LineCapRound}, hop)
	}
}

// drawInsect renders one airborne insect; anything at or below the grass
// line is inside the grass and skipped.
func drawInsect(dst *ebiten.Image, in *Insect, grassY float64) {
	if !in.visible(grassY) {
		return
	}
	x, y := float32(in.x), float32(in.y)
	r := float32(in.radius)
	vector.FillCircle(dst, x, y, r, in.tint, true)
	core := color.RGBA{
		R: uint8(float64(in.tint.R) * 0.55),
		G: uint8(float64(in.tint.G) * 0.55),
		B: uint8(float64(in.tint.B) * 0.55),
		A: 255,
	}
	vector.FillCircle(dst, x, y, r*0.45, core, true)
}

// drawTreeRow draws the silhouette circles across the width. Size varies by
// index so the row doesn't look stamped.
func drawTreeRow(dst *ebiten.Image, width int, grassY float64, th Theme) {
	const spacing = 110
	i := 0
	for x := spacing / 2; x < width+spacing; x += spacing {
		r := float32(34 + (i*29)%18)
		cy := float32(grassY) - r*0.85
		vector.FillCircle(dst, float32(x), cy, r, th.Tree, true)
		i++
	}
}

// drawTitle renders the title screen over a static version of the scene
// background.
func (g *Game) drawTitle(screen *ebiten.Image) {
	sim := g.sim
	th := sim.theme
	w, h := sim.width, sim.height
	grassY := grassLineY(h)

	screen.Fill(th.Sky)
	drawTreeRow(screen, w, grassY, th)
	vector.FillRect(screen, 0, float32(grassY), float32(w), float32(h)-float32(grassY), th.Ground, false)

	cx := float64(w) / 2
	g.drawLabel(screen, "QUIET MEADOW", cx, float64(h)*0.34, 6, color.RGBA{R: 255, G: 255, B: 250, A: 255}, true)

	bob := g.ui.promptPos
	promptCol := scaleAlpha(color.RGBA{R: 240, G: 240, B: 225, A: 255}, float32(0.55+0.45*bob))
	g.drawLabel(screen, "click to begin", cx, float64(h)*0.52+bob*6-3, 2, promptCol, true)
}

// drawTitleFade paints the dissolving title over the first forest frames.
func (g *Game) drawTitleFade(screen *ebiten.Image) {
	a := g.ui.titleAlpha
	sim := g.sim
	w, h := sim.width, sim.height
	vector.FillRect(screen, 0, 0, float32(w), float32(h), scaleAlpha(sim.theme.Sky, a), false)
	g.drawLabel(screen, "QUIET MEADOW", float64(w)/2, float64(h)*0.34, 6,
		scaleAlpha(color.RGBA{R: 255, G: 255, B: 250, A: 255}, a), true)
}

// drawForestHUD renders the globe button, the inventory panel and the key
// legend. Text goes through hudBuf at 1x and is blitted at hudScale so it
// stays crisp.
func (g *Game) drawForestHUD(screen *ebiten.Image) {
	sim := g.sim
	w, h := sim.width, sim.height

	// Globe button.
	globe := globeButtonRect(w)
	gcx := globe.x + globe.w/2
	gcy := globe.y + globe.h/2
	vector.FillCircle(screen, gcx, gcy, globe.w/2, color.RGBA{R: 30, G: 60, B: 90, A: 220}, true)
	vector.StrokeCircle(screen, gcx, gcy, globe.w/2, 2.0, color.RGBA{R: 200, G: 220, B: 240, A: 230}, true)
	// Meridian and equator hints.
	vector.StrokeLine(screen, gcx-globe.w/2+4, gcy, gcx+globe.w/2-4, gcy, 1.0, color.RGBA{R: 170, G: 200, B: 220, A: 180}, true)
	vector.StrokeCircle(screen, gcx, gcy, globe.w/4, 1.0, color.RGBA{R: 170, G: 200, B: 220, A: 180}, true)

	// HUD text panel.
	lines := []string{
		fmt.Sprintf("AREA: %s", sim.location),
	}
	for t := InsectType(0); t < insectTypeCount; t++ {
		lines = append(lines, fmt.Sprintf("  %-9s x%d", t.String(), sim.inventory.Count(t)))
	}
	if g.showHUD {
		lines = append(lines, "[M] map  [H] hud  [F2] copy report")
	}

	const lineH = 14 // debug font line height at 1x
	const charW = 6  // debug font char width at 1x
	const padX = 6
	const padY = 5

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2 + 10)
	boxH := float32(len(lines)*lineH + padY*2)

	g.ensureHUDBuf(w, h)
	g.hudBuf.Clear()
	bx, by := float32(4), float32(4)
	vector.FillRect(g.hudBuf, bx, by, boxW, boxH, color.RGBA{R: 10, G: 16, B: 10, A: 200}, false)
	vector.StrokeRect(g.hudBuf, bx, by, boxW, boxH, 1.0, color.RGBA{R: 70, G: 110, B: 70, A: 180}, false)

	for i, line := range lines {
		tx := int(bx) + padX
		ty := int(by) + padY + i*lineH
		ebitenutil.DebugPrintAt(g.hudBuf, line, tx, ty)
	}
	// Tint swatches next to each insect row.
	for t := InsectType(0); t < insectTypeCount; t++ {
		sy := by + float32(padY) + float32(int(t)+1)*lineH + lineH/2 - 2
		vector.FillCircle(g.hudBuf, bx+boxW-10, sy, 4, sim.theme.InsectTints[t], true)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}

// drawMapOverlay dims the frozen forest backdrop and draws the world-map
// panel. The panel springs in from above; the dim layer fades with gween.
func (g *Game) drawMapOverlay(screen *ebiten.Image) {
	sim := g.sim
	w, h := sim.width, sim.height
	layout := mapPanelLayout(w, h)

	dim := scaleAlpha(color.RGBA{A: 150}, g.ui.mapAlpha)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), dim, false)

	// Slide offset: 0 = fully off-screen above, 1 = at rest.
	slide := float32(1-clamp01(g.ui.panelPos)) * -(layout.panel.y + layout.panel.h)

	panel := layout.panel
	panel.y += slide
	vector.FillRect(screen, panel.x, panel.y, panel.w, panel.h, color.RGBA{R: 24, G: 34, B: 28, A: 240}, false)
	vector.StrokeRect(screen, panel.x, panel.y, panel.w, panel.h, 2.0, sim.theme.GroundLip, false)

	g.drawLabel(screen, "WORLD MAP", float64(panel.x+panel.w/2), float64(panel.y+28), 3,
		color.RGBA{R: 235, G: 240, B: 230, A: 255}, true)

	cl := layout.close
	cl.y += slide
	vector.StrokeRect(screen, cl.x, cl.y, cl.w, cl.h, 1.5, color.RGBA{R: 200, G: 200, B: 200, A: 220}, false)
	vector.StrokeLine(screen, cl.x+7, cl.y+7, cl.x+cl.w-7, cl.y+cl.h-7, 2.0, color.RGBA{R: 220, G: 200, B: 200, A: 230}, true)
	vector.StrokeLine(screen, cl.x+cl.w-7, cl.y+7, cl.x+7, cl.y+cl.h-7, 2.0, color.RGBA{R: 220, G: 200, B: 200, A: 230}, true)

	for _, b := range layout.buttons {
		r := b.rect
		r.y += slide
		vector.FillRect(screen, r.x, r.y, r.w, r.h, color.RGBA{R: 40, G: 56, B: 44, A: 240}, false)
		border := color.RGBA{R: 90, G: 110, B: 90, A: 200}
		if b.loc == sim.location {
			border = sim.theme.GrassHighlight
		}
		vector.StrokeRect(screen, r.x, r.y, r.w, r.h, 2.0, border, false)

		// Palette preview: that location's sky and grass.
		preview := ThemeFor(b.loc)
		vector.FillCircle(screen, r.x+18, r.y+r.h/2, 7, preview.Sky, true)
		vector.FillCircle(screen, r.x+36, r.y+r.h/2, 7, preview.GrassFront, true)

		g.drawLabel(screen, strings.ToUpper(string(b.loc)), float64(r.x+r.w/2+14), float64(r.y+r.h/2), 2,
			color.RGBA{R: 230, G: 235, B: 225, A: 255}, true)
	}
}

// drawLabel renders debug-font text scaled up through the shared text
// buffer, optionally centred on (x, y).
func (g *Game) drawLabel(screen *ebiten.Image, s string, x, y float64, scale float64, clr color.RGBA, centered bool) {
	const charW = 6
	const lineH = 16
	tw := len(s)*charW + 2

	if g.textBuf == nil || g.textBuf.Bounds().Dx() < tw {
		bw := tw
		if bw < 128 {
			bw = 128
		}
		g.textBuf = ebiten.NewImage(bw, lineH)
	}
	g.textBuf.Clear()
	ebitenutil.DebugPrintAt(g.textBuf, s, 1, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	tx, ty := x, y
	if centered {
		tx -= float64(tw) * scale / 2
		ty -= float64(lineH) * scale / 2
	}
	op.GeoM.Translate(math.Round(tx), math.Round(ty))
	op.ColorScale.ScaleWithColor(clr)
	sub := g.textBuf.SubImage(image.Rect(0, 0, tw, lineH)).(*ebiten.Image)
	screen.DrawImage(sub, op)
}

// ensureHUDBuf (re)allocates the HUD buffer to 1/hudScale of the viewport.
func (g *Game) ensureHUDBuf(w, h int) {
	bw, bh := w/hudScale, h/hudScale
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}
	if g.hudBuf == nil || g.hudBuf.Bounds().Dx() != bw || g.hudBuf.Bounds().Dy() != bh {
		g.hudBuf = ebiten.NewImage(bw, bh)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
