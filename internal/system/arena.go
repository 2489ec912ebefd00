package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/emitter"
)

// ArenaSystem — удерживает тела в видимой области
type ArenaSystem struct {
	Width, Height float64
}

func NewArenaSystem(width, height float64) *ArenaSystem {
	return &ArenaSystem{Width: width, Height: height}
}

// Center is where the player starts and where it returns after a ram.
func (s *ArenaSystem) Center() mgl64.Vec3 {
	return mgl64.Vec3{s.Width / 2, s.Height / 2, 0}
}

// Clamp возвращает тело, дошедшее до края, на единицу внутрь
func (s *ArenaSystem) Clamp(e *emitter.Emitter) {
	p := e.Position()
	p[0] = s.clampAxis(p[0], s.Width)
	p[1] = s.clampAxis(p[1], s.Height)
	e.SetPosition(p)
}

// ClampVertical ограничивает только y
func (s *ArenaSystem) ClampVertical(e *emitter.Emitter) {
	p := e.Position()
	p[1] = s.clampAxis(p[1], s.Height)
	e.SetPosition(p)
}

func (s *ArenaSystem) clampAxis(v, max float64) float64 {
	if v <= 0 {
		return 1
	}
	if v >= max {
		return max - 1
	}
	return v
}
