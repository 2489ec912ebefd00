// internal/utils/math.go
package utils

import "math"

// NormalizeDegrees нормализует угол в диапазон [-180, 180)
func NormalizeDegrees(angle float64) float64 {
	a := math.Mod(angle+180, 360)
	if a < 0 {
		a += 360 // Mod сохраняет знак делимого
	}
	if a >= 360 {
		a = 0 // -1e-20 + 360 округляется до 360
	}
	return a - 180
}
