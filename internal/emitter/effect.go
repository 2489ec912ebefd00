package emitter

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/physics"
	"go-emitter-arena/internal/physics/force"
	"go-emitter-arena/internal/utils"
)

// centered — силовые поля, которым нужен центр взрыва
type centered interface {
	SetCenter(c mgl64.Vec3)
}

// EffectConfig describes an effect emitter. Zero particle mass, damping and
// burst speed fall back to the config defaults.
type EffectConfig struct {
	Position        mgl64.Vec3
	OneShot         bool
	GroupSize       int
	ParticleRadius  float64
	ParticleMass    float64
	ParticleDamping float64
	LifespanMs      float64
	BurstSpeed      float64
	Rate            float64
	Forces          []force.Contributor
}

// EffectEmitter spawns bursts of particles driven by force fields instead
// of by their spawn velocity alone.
type EffectEmitter struct {
	*Emitter

	oneShot         bool
	groupSize       int
	particleRadius  float64
	particleMass    float64
	particleDamping float64
	burstSpeed      float64
	forces          []force.Contributor
	active          bool

	rng *utils.PRNGService
}

// NewEffect creates an inactive effect emitter. rng drives the burst spread.
func NewEffect(cfg EffectConfig, rng *utils.PRNGService) (*EffectEmitter, error) {
	if cfg.ParticleMass == 0 {
		cfg.ParticleMass = config.EffectParticleMass
	}
	if cfg.ParticleMass < 0 {
		return nil, fmt.Errorf("new effect: particle mass %v: %w", cfg.ParticleMass, ErrInvalidMass)
	}
	if cfg.ParticleDamping == 0 {
		cfg.ParticleDamping = config.DefaultDamping
	}
	if cfg.ParticleDamping < 0 || cfg.ParticleDamping > 1 {
		return nil, fmt.Errorf("new effect: particle damping %v: %w", cfg.ParticleDamping, ErrInvalidDamping)
	}
	if cfg.BurstSpeed == 0 {
		cfg.BurstSpeed = config.EffectBurstSpeed
	}
	size := component.Size{W: cfg.ParticleRadius * 2, H: cfg.ParticleRadius * 2}
	base, err := New(Config{
		Position:   cfg.Position,
		Mass:       cfg.ParticleMass,
		Rate:       cfg.Rate,
		LifespanMs: cfg.LifespanMs,
		ChildSize:  size,
	})
	if err != nil {
		return nil, err
	}
	return &EffectEmitter{
		Emitter:         base,
		oneShot:         cfg.OneShot,
		groupSize:       cfg.GroupSize,
		particleRadius:  cfg.ParticleRadius,
		particleMass:    cfg.ParticleMass,
		particleDamping: cfg.ParticleDamping,
		burstSpeed:      cfg.BurstSpeed,
		forces:          cfg.Forces,
		rng:             rng,
	}, nil
}

// AddForce добавляет силовое поле для всех частиц
func (e *EffectEmitter) AddForce(f force.Contributor) {
	e.forces = append(e.forces, f)
}

// Start активирует эмиттер и даёт один выброс в текущей позиции.
func (e *EffectEmitter) Start(now float64) {
	e.active = true
	e.Emitter.Start(now)
	for _, f := range e.forces {
		if c, ok := f.(centered); ok {
			c.SetCenter(e.Position())
		}
	}
	e.burst(now)
}

// Reset очищает частицы и выключает эмиттер
func (e *EffectEmitter) Reset() {
	e.Pool().Clear()
	e.active = false
	e.Emitter.Stop()
}

// Update prunes expired particles and integrates the rest under the summed
// force fields. A repeating emitter bursts again every 1/rate seconds; a
// one-shot emitter deactivates once its last particle is gone.
func (e *EffectEmitter) Update(now float64) {
	pool := e.Pool()
	pool.Prune(now)

	for i := 0; i < pool.Len(); i++ {
		p := pool.At(i)
		f := force.Sum(e.forces, p.Position, p.Velocity, p.Age(now))
		l := physics.Linear{Position: p.Position, Velocity: p.Velocity, Acceleration: p.Acceleration}
		l.Step(f, e.particleMass, e.particleDamping, config.FixedDelta)
		p.Position, p.Velocity, p.Acceleration = l.Position, l.Velocity, l.Acceleration
	}

	if !e.active {
		return
	}
	if e.oneShot {
		if pool.Len() == 0 {
			e.active = false
			e.Emitter.Stop()
		}
		return
	}
	if e.Rate() > 0 && now-e.LastSpawnTime() > 1000.0/e.Rate() {
		e.burst(now)
		e.lastSpawnTime = now
	}
}

func (e *EffectEmitter) burst(now float64) {
	center := e.Position()
	for i := 0; i < e.groupSize; i++ {
		speed := e.burstSpeed * e.rng.Range(0.5, 1)
		e.Pool().Add(component.Entity{
			Position:   center,
			Velocity:   e.rng.PlanarDirection().Mul(speed),
			Size:       e.ChildSize,
			BirthTime:  now,
			LifespanMs: e.Lifespan(),
		})
	}
}

func (e *EffectEmitter) Active() bool            { return e.active }
func (e *EffectEmitter) OneShot() bool           { return e.oneShot }
func (e *EffectEmitter) GroupSize() int          { return e.groupSize }
func (e *EffectEmitter) ParticleRadius() float64 { return e.particleRadius }
