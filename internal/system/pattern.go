package system

import (
	"math"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/entity"
)

// PatternSystem искривляет траектории снарядов противников после движения пулов
type PatternSystem struct {
	Pattern component.Pattern
}

// Apply modifies every entity of pool for the current pattern. t is the
// simulation time in seconds.
func (s *PatternSystem) Apply(pool *entity.Pool, t float64) {
	switch s.Pattern {
	case component.PatternParabola:
		for i := 0; i < pool.Len(); i++ {
			e := pool.At(i)
			e.Velocity[0] += math.Sin(e.Velocity[1])
			e.Velocity[1] += 1
		}
	case component.PatternSine:
		dx, dy := math.Sin(t)/5, math.Cos(t)/5
		for i := 0; i < pool.Len(); i++ {
			e := pool.At(i)
			e.Position[0] += dx
			e.Position[1] += dy
		}
	}
}
