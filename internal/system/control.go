// internal/system/control.go
package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/emitter"
)

// ControlSystem turns the player's Direction into forces and keeps every
// emitter aimed.
type ControlSystem struct {
	Speed float64 // множитель тяги, слайдер "speed"
}

func NewControlSystem(speed float64) *ControlSystem {
	return &ControlSystem{Speed: speed}
}

// Steer sets the player's force and angular force for d. Movement leaves the
// angular force as it was and rotation leaves the linear force; Idle clears both.
func (s *ControlSystem) Steer(player *emitter.Emitter, d component.Direction) {
	switch {
	case d == component.Idle:
		player.Force = mgl64.Vec3{}
		player.AngularForce = 0
	case d == component.RotateLeft:
		player.AngularForce = -config.PlayerTorque
	case d == component.RotateRight:
		player.AngularForce = config.PlayerTorque
	case d.IsMove():
		head, lateral := player.Heading()
		h, l := d.Axes()
		thrust := s.Speed * config.PlayerThrust
		player.Force = head.Mul(h * thrust).Add(lateral.Mul(l * thrust))
	}
}

// Aim направляет выстрелы игрока по курсу, а выстрелы живых
// противников в игрока.
func (s *ControlSystem) Aim(player *emitter.Emitter, adversaries ...*emitter.Emitter) {
	head, _ := player.Heading()
	player.SetVelocity(head.Mul(config.PlayerShotSpeed))
	for _, adv := range adversaries {
		adv.SetVelocity(player.Position().Sub(adv.Position()))
	}
}

// CircleForce is the optional orbiting push on the left adversary at
// simulation time t seconds.
func CircleForce(t float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(t) * config.AdversaryCircleForce, math.Sin(t) * config.AdversaryCircleForce, 0}
}
