// internal/component/particle.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Immortal — сущность, которая не удаляется по возрасту
const Immortal = -1.0

// Size — ширина и высота объекта в пикселях.
type Size struct {
	W, H float64
}

// Radius returns the collision radius, half of the height.
func (s Size) Radius() float64 {
	return s.H / 2
}

// Entity is one transient object spawned by an emitter: a projectile or an
// effect particle. Time values are milliseconds on the simulation clock.
type Entity struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3 // только для частиц эффекта
	Size         Size
	BirthTime    float64
	LifespanMs   float64
}

// Age — возраст сущности на момент now
func (e *Entity) Age(now float64) float64 {
	return now - e.BirthTime
}

// Expired reports whether the entity outlived its lifespan at now.
func (e *Entity) Expired(now float64) bool {
	return e.LifespanMs != Immortal && e.Age(now) > e.LifespanMs
}
