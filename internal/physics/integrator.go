// internal/physics/integrator.go
package physics

import "github.com/go-gl/mathgl/mgl64"

// Linear — поступательное состояние тела или частицы
type Linear struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Acceleration mgl64.Vec3
}

// Step advances the state by dt with semi-implicit Euler. The velocity is
// advanced with the acceleration from the previous step, then the
// acceleration is recomputed from the current force.
func (l *Linear) Step(force mgl64.Vec3, mass, damping, dt float64) {
	l.Position = l.Position.Add(l.Velocity.Mul(dt))
	l.Velocity = l.Velocity.Add(l.Acceleration.Mul(dt)).Mul(damping)
	l.Acceleration = mgl64.Vec3{force[0] / mass, force[1] / mass, force[2] / mass}
}

// Angular — вращательное состояние тела, в градусах
type Angular struct {
	Rotation     float64
	Velocity     float64
	Acceleration float64
}

// Step — та же схема, что и Linear.Step, для поворота
func (a *Angular) Step(torque, mass, damping, dt float64) {
	a.Velocity = (a.Velocity + a.Acceleration*dt) * damping
	a.Rotation += a.Velocity * dt
	a.Acceleration = torque / mass
}
