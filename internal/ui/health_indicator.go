// internal/ui/health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthBarWidth  = 80.0
	HealthBarHeight = 6.0
	HealthBarOffset = 12.0 // зазор между телом и полоской
)

// HealthIndicator рисует полоску здоровья над телом.
type HealthIndicator struct {
	Fill   color.RGBA
	Low    color.RGBA
	Border color.RGBA
}

// Fraction — health/max, ограниченное [0, 1]
func Fraction(health, max float64) float64 {
	if max <= 0 || health <= 0 {
		return 0
	}
	if health >= max {
		return 1
	}
	return health / max
}

// Draw places the bar centered above (x, y), where top is the distance from
// the body center to its upper edge.
func (i *HealthIndicator) Draw(screen *ebiten.Image, x, y, top, health, max float64) {
	fraction := Fraction(health, max)
	left := float32(x - HealthBarWidth/2)
	upper := float32(y - top - HealthBarOffset - HealthBarHeight)

	// меньше трети здоровья — другой цвет
	fill := i.Fill
	if fraction < 1.0/3.0 {
		fill = i.Low
	}
	if fraction > 0 {
		vector.DrawFilledRect(screen, left, upper, float32(HealthBarWidth*fraction), HealthBarHeight, fill, false)
	}
	vector.StrokeRect(screen, left, upper, HealthBarWidth, HealthBarHeight, 1, i.Border, false)
}
