// internal/emitter/emitter.go
package emitter

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/entity"
	"go-emitter-arena/internal/physics"
)

var (
	ErrInvalidMass    = errors.New("mass must be positive")
	ErrInvalidDamping = errors.New("damping must be in (0, 1]")
)

// Config describes a new emitter. Zero values fall back to the defaults of
// rate 1/s, lifespan 10 s, a 150x150 body and 10x10 children.
type Config struct {
	Position   mgl64.Vec3
	Mass       float64
	Damping    float64
	Rate       float64
	LifespanMs float64
	Velocity   mgl64.Vec3
	Size       component.Size
	ChildSize  component.Size
	PoolSpeed  float64
	Health     float64
}

// Emitter is a physically integrated body that spawns entities into the
// pool it owns.
type Emitter struct {
	linear  physics.Linear
	angular physics.Angular

	Force        mgl64.Vec3
	AngularForce float64

	Size      component.Size
	ChildSize component.Size
	Health    float64

	mass    float64
	damping float64

	rate          float64
	lifespanMs    float64
	spawnVelocity mgl64.Vec3
	lastSpawnTime float64
	started       bool

	pool *entity.Pool
}

// New проверяет cfg и создаёт остановленный эмиттер с пустым пулом.
func New(cfg Config) (*Emitter, error) {
	if cfg.Mass <= 0 {
		return nil, fmt.Errorf("new emitter: mass %v: %w", cfg.Mass, ErrInvalidMass)
	}
	if cfg.Damping == 0 {
		cfg.Damping = config.DefaultDamping
	}
	if cfg.Damping < 0 || cfg.Damping > 1 {
		return nil, fmt.Errorf("new emitter: damping %v: %w", cfg.Damping, ErrInvalidDamping)
	}
	if cfg.Rate == 0 {
		cfg.Rate = config.DefaultSpawnRate
	}
	if cfg.LifespanMs == 0 {
		cfg.LifespanMs = config.DefaultLifespanMs
	}
	if cfg.Size == (component.Size{}) {
		cfg.Size = component.Size{W: config.DefaultEmitterSize, H: config.DefaultEmitterSize}
	}
	if cfg.ChildSize == (component.Size{}) {
		cfg.ChildSize = component.Size{W: config.DefaultChildSize, H: config.DefaultChildSize}
	}
	if cfg.PoolSpeed == 0 {
		cfg.PoolSpeed = config.DefaultPoolSpeed
	}

	return &Emitter{
		linear:        physics.Linear{Position: cfg.Position},
		Size:          cfg.Size,
		ChildSize:     cfg.ChildSize,
		Health:        cfg.Health,
		mass:          cfg.Mass,
		damping:       cfg.Damping,
		rate:          cfg.Rate,
		lifespanMs:    cfg.LifespanMs,
		spawnVelocity: cfg.Velocity,
		pool:          entity.NewPool(cfg.PoolSpeed),
	}, nil
}

// Integrate — один фиксированный шаг для позиции и поворота.
func (e *Emitter) Integrate() {
	e.linear.Step(e.Force, e.mass, e.damping, config.FixedDelta)
	e.angular.Step(e.AngularForce, e.mass, e.damping, config.FixedDelta)
}

// Spawn adds one entity to the pool if the emitter is running and the spawn
// interval has passed since the last spawn. It reports whether it spawned.
func (e *Emitter) Spawn(now float64) bool {
	if !e.started || e.rate <= 0 {
		return false
	}
	if now-e.lastSpawnTime <= 1000.0/e.rate {
		return false
	}
	e.pool.Add(component.Entity{
		Position:   e.linear.Position,
		Velocity:   e.spawnVelocity,
		Size:       e.ChildSize,
		BirthTime:  now,
		LifespanMs: e.lifespanMs,
	})
	e.lastSpawnTime = now
	return true
}

// Start включает спавн, первый снаряд появится через один интервал.
func (e *Emitter) Start(now float64) {
	e.started = true
	e.lastSpawnTime = now
}

// Stop выключает спавн. Уже выпущенные сущности продолжают лететь и стареть.
func (e *Emitter) Stop() {
	e.started = false
}

func (e *Emitter) Started() bool { return e.started }

// SetRate sets entities per second; values <= 0 disable spawning.
func (e *Emitter) SetRate(r float64) { e.rate = r }

// SetLifespan — время жизни новых сущностей, в мс
func (e *Emitter) SetLifespan(ms float64) { e.lifespanMs = ms }

// SetVelocity — скорость новых сущностей
func (e *Emitter) SetVelocity(v mgl64.Vec3) { e.spawnVelocity = v }

// SetMass changes the mass. Non-positive values are rejected and the
// previous mass is kept.
func (e *Emitter) SetMass(m float64) error {
	if m <= 0 {
		return fmt.Errorf("set mass %v: %w", m, ErrInvalidMass)
	}
	e.mass = m
	return nil
}

// SetDamping меняет затухание за шаг
func (e *Emitter) SetDamping(d float64) error {
	if d <= 0 || d > 1 {
		return fmt.Errorf("set damping %v: %w", d, ErrInvalidDamping)
	}
	e.damping = d
	return nil
}

// SetPosition переносит тело, скорость не трогает
func (e *Emitter) SetPosition(p mgl64.Vec3) { e.linear.Position = p }

// Heading returns the forward and lateral unit vectors of the body.
func (e *Emitter) Heading() (head, lateral mgl64.Vec3) {
	return physics.Heading(e.angular.Rotation)
}

// Ускорения пересчитываются из силы и массы в каждом Integrate,
// сеттеров у них нет.
func (e *Emitter) Position() mgl64.Vec3         { return e.linear.Position }
func (e *Emitter) Velocity() mgl64.Vec3         { return e.linear.Velocity }
func (e *Emitter) Acceleration() mgl64.Vec3     { return e.linear.Acceleration }
func (e *Emitter) Rotation() float64            { return e.angular.Rotation }
func (e *Emitter) AngularVelocity() float64     { return e.angular.Velocity }
func (e *Emitter) AngularAcceleration() float64 { return e.angular.Acceleration }

func (e *Emitter) Rate() float64             { return e.rate }
func (e *Emitter) Lifespan() float64         { return e.lifespanMs }
func (e *Emitter) SpawnVelocity() mgl64.Vec3 { return e.spawnVelocity }
func (e *Emitter) Mass() float64             { return e.mass }
func (e *Emitter) Damping() float64          { return e.damping }
func (e *Emitter) LastSpawnTime() float64    { return e.lastSpawnTime }

// Pool returns the pool the emitter owns. Callers must not keep it beyond
// the emitter's life.
func (e *Emitter) Pool() *entity.Pool { return e.pool }
