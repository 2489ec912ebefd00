// pkg/render/color.go
package render

import (
	"image/color"

	"go-emitter-arena/internal/config"
)

// Palette — все цвета рендерера арены
type Palette struct {
	Background    color.RGBA
	Player        color.RGBA
	Adversary     color.RGBA
	PlayerShot    color.RGBA
	AdversaryShot color.RGBA
	Effect        color.RGBA
	Text          color.RGBA
	Heading       color.RGBA
	Dim           color.RGBA
	Accent        color.RGBA
	StrokeWidth   float32
}

// DefaultPalette builds a Palette from the config colors.
func DefaultPalette() Palette {
	return Palette{
		Background:    config.BackgroundColor,
		Player:        config.PlayerColor,
		Adversary:     config.AdversaryColor,
		PlayerShot:    config.PlayerShotColor,
		AdversaryShot: config.AdversaryShotColor,
		Effect:        config.EffectColor,
		Text:          config.TextLightColor,
		Heading:       config.HeadingColor,
		Dim:           config.EndScreenDimColor,
		Accent:        config.StartScreenAccent,
		StrokeWidth:   config.StrokeWidth,
	}
}

// DarkenColor уменьшает яркость цвета
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// healthColor fades base towards its darker self as fraction drops to 0.
func healthColor(base color.RGBA, fraction float64) color.RGBA {
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	dark := DarkenColor(base)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(b) + (float64(a)-float64(b))*fraction)
	}
	return color.RGBA{R: mix(base.R, dark.R), G: mix(base.G, dark.G), B: mix(base.B, dark.B), A: base.A}
}
