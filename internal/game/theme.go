package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Location identifies one of the selectable world-map areas.
type Location string

const (
	LocForest Location = "forest"
	LocMeadow Location = "meadow"
	LocSwamp  Location = "swamp"
)

// DefaultLocation is the fallback for unrecognised location keys.
const DefaultLocation = LocForest

// Locations lists the selectable areas in world-map order.
var Locations = []Location{LocForest, LocMeadow, LocSwamp}

// InsectType enumerates the fixed set of catchable insects.
type InsectType int

const (
	InsectBeetle InsectType = iota
	InsectFirefly
	InsectMoth
	InsectDragonfly
	insectTypeCount
)

func (t InsectType) String() string {
	switch t {
	case InsectBeetle:
		return "beetle"
	case InsectFirefly:
		return "firefly"
	case InsectMoth:
		return "moth"
	case InsectDragonfly:
		return "dragonfly"
	}
	return "unknown"
}

// InsectTypes lists every catchable type in display order.
func InsectTypes() []InsectType {
	out := make([]InsectType, 0, insectTypeCount)
	for t := InsectType(0); t < insectTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Theme is an immutable palette for one location. Values are copied out of
// the registry at lookup time; nothing mutates a Theme after init.
type Theme struct {
	Sky            color.RGBA
	Tree           color.RGBA
	Ground         color.RGBA
	GroundLip      color.RGBA
	GrassBack      color.RGBA
	GrassFront     color.RGBA
	GrassHighlight color.RGBA
	InsectTints    [insectTypeCount]color.RGBA
}

// baseTheme is the forest palette; the other locations override onto a copy.
var baseTheme = Theme{
	Sky:            colornames.Skyblue,
	Tree:           color.RGBA{R: 34, G: 70, B: 40, A: 255},
	Ground:         color.RGBA{R: 70, G: 110, B: 55, A: 255},
	GroundLip:      color.RGBA{R: 52, G: 86, B: 42, A: 255},
	GrassBack:      color.RGBA{R: 58, G: 125, B: 60, A: 255},
	GrassFront:     color.RGBA{R: 80, G: 160, B: 70, A: 255},
	GrassHighlight: color.RGBA{R: 150, G: 210, B: 120, A: 140},
	InsectTints: [insectTypeCount]color.RGBA{
		InsectBeetle:    colornames.Saddlebrown,
		InsectFirefly:   colornames.Gold,
		InsectMoth:      {R: 222, G: 214, B: 190, A: 255},
		InsectDragonfly: colornames.Mediumturquoise,
	},
}

func forestTheme() Theme {
	return baseTheme
}

func meadowTheme() Theme {
	t := baseTheme
	t.Sky = colornames.Lightskyblue
	t.Tree = color.RGBA{R: 60, G: 95, B: 45, A: 255}
	t.Ground = color.RGBA{R: 110, G: 150, B: 60, A: 255}
	t.GroundLip = color.RGBA{R: 88, G: 122, B: 46, A: 255}
	t.GrassBack = color.RGBA{R: 96, G: 150, B: 62, A: 255}
	t.GrassFront = color.RGBA{R: 128, G: 180, B: 72, A: 255}
	t.GrassHighlight = color.RGBA{R: 200, G: 230, B: 140, A: 140}
	t.InsectTints[InsectBeetle] = colornames.Sienna
	t.InsectTints[InsectDragonfly] = color.RGBA{R: 100, G: 180, B: 220, A: 255}
	return t
}

func swampTheme() Theme {
	t := baseTheme
	t.Sky = color.RGBA{R: 96, G: 120, B: 110, A: 255}
	t.Tree = color.RGBA{R: 30, G: 48, B: 38, A: 255}
	t.Ground = color.RGBA{R: 56, G: 72, B: 44, A: 255}
	t.GroundLip = color.RGBA{R: 40, G: 54, B: 32, A: 255}
	t.GrassBack = color.RGBA{R: 52, G: 88, B: 50, A: 255}
	t.GrassFront = color.RGBA{R: 70, G: 110, B: 58, A: 255}
	t.GrassHighlight = color.RGBA{R: 120, G: 150, B: 90, A: 130}
	t.InsectTints = [insectTypeCount]color.RGBA{
		InsectBeetle:    {R: 90, G: 70, B: 40, A: 255},
		InsectFirefly:   {R: 180, G: 255, B: 120, A: 255},
		InsectMoth:      {R: 150, G: 150, B: 130, A: 255},
		InsectDragonfly: {R: 70, G: 140, B: 120, A: 255},
	}
	return t
}

var themes = map[Location]Theme{
	LocForest: forestTheme(),
	LocMeadow: meadowTheme(),
	LocSwamp:  swampTheme(),
}

// NormalizeLocation maps an arbitrary key onto a registered location,
// falling back to DefaultLocation for anything unrecognised.
func NormalizeLocation(key string) Location {
	loc := Location(key)
	if _, ok := themes[loc]; ok {
		return loc
	}
	return DefaultLocation
}

// ThemeFor returns the palette for the given location. Unknown locations get
// the default palette rather than an error; the selection UI is the only
// caller that can pass arbitrary keys.
func ThemeFor(loc Location) Theme {
	if t, ok := themes[loc]; ok {
		return t
	}
	return themes[DefaultLocation]
}
