// internal/physics/force/force.go
package force

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/utils"
)

// Contributor computes the force acting on one effect particle from its
// kinematic state. ageMs is the particle age on the simulation clock.
type Contributor interface {
	Force(position, velocity mgl64.Vec3, ageMs float64) mgl64.Vec3
}

// Sum суммирует все силы для одной частицы
func Sum(contributors []Contributor, position, velocity mgl64.Vec3, ageMs float64) mgl64.Vec3 {
	var total mgl64.Vec3
	for _, c := range contributors {
		total = total.Add(c.Force(position, velocity, ageMs))
	}
	return total
}

// Directional — постоянная сила, для взрыва это гравитация
type Directional struct {
	Vector mgl64.Vec3
}

func (d *Directional) Force(_, _ mgl64.Vec3, _ float64) mgl64.Vec3 {
	return d.Vector
}

// BoundedRandom is turbulence: each component is drawn uniformly from its
// own [Min, Max) range on every call.
type BoundedRandom struct {
	Min, Max mgl64.Vec3
	rng      *utils.PRNGService
}

// NewBoundedRandom создаёт турбулентность на основе rng
func NewBoundedRandom(min, max mgl64.Vec3, rng *utils.PRNGService) *BoundedRandom {
	return &BoundedRandom{Min: min, Max: max, rng: rng}
}

func (b *BoundedRandom) Force(_, _ mgl64.Vec3, _ float64) mgl64.Vec3 {
	return b.rng.VecRange(b.Min, b.Max)
}

// RadialImpulse pushes particles away from Center with a constant Magnitude
// while they are younger than WindowMs. Falloff divides the magnitude by
// distance^Falloff; the default 0 keeps the push constant.
type RadialImpulse struct {
	Magnitude float64
	Center    mgl64.Vec3
	WindowMs  float64
	Falloff   float64
}

// NewRadialImpulse creates a constant-strength impulse applied during the
// first fixed step of a particle's life.
func NewRadialImpulse(magnitude float64) *RadialImpulse {
	return &RadialImpulse{Magnitude: magnitude, WindowMs: 1000.0 / 60.0}
}

// SetCenter переносит центр толчка, эмиттер эффекта вызывает его в Start
func (r *RadialImpulse) SetCenter(c mgl64.Vec3) {
	r.Center = c
}

func (r *RadialImpulse) Force(position, velocity mgl64.Vec3, ageMs float64) mgl64.Vec3 {
	if ageMs > r.WindowMs {
		return mgl64.Vec3{}
	}
	offset := position.Sub(r.Center)
	dist := offset.Len()
	var dir mgl64.Vec3
	switch {
	case dist > 0:
		dir = offset.Mul(1 / dist)
	case velocity.Len() > 0:
		// частица ещё в центре, толкаем по направлению скорости
		dir = velocity.Normalize()
	default:
		return mgl64.Vec3{}
	}
	magnitude := r.Magnitude
	if r.Falloff != 0 && dist > 0 {
		magnitude /= math.Pow(dist, r.Falloff)
	}
	return dir.Mul(magnitude)
}
