// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/emitter"
	"go-emitter-arena/internal/event"
	"go-emitter-arena/internal/physics/force"
	"go-emitter-arena/internal/system"
	"go-emitter-arena/internal/utils"
)

// Game holds the simulation state and runs one tick per frame.
type Game struct {
	Player *emitter.Emitter
	Left   *emitter.Emitter
	Right  *emitter.Emitter
	Effect *emitter.EffectEmitter

	CollisionSystem *system.CollisionSystem
	ControlSystem   *system.ControlSystem
	PatternSystem   *system.PatternSystem
	ArenaSystem     *system.ArenaSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	// состояние партии
	phase       component.Phase
	gameTime    float64 // секунды симуляции
	score       int
	direction   component.Direction
	firing      bool
	circleForce bool
	rightThrust float64
	eliminated  map[component.BodyID]bool
	events      []event.Event
}

// NewGame builds the arena from t. The game starts in StartPhase; call
// Start to begin the run.
func NewGame(t config.Tuning) (*Game, error) {
	rng := utils.NewPRNGService(t.Seed)
	arena := system.NewArenaSystem(config.ScreenWidth, config.ScreenHeight)

	player, err := emitter.New(emitter.Config{
		Position:   arena.Center(),
		Mass:       config.PlayerMass,
		Rate:       t.PlayerRate,
		LifespanMs: config.PlayerShotLifespan,
		Size:       component.Size{W: config.PlayerBodyWidth, H: config.PlayerBodyHeight},
		PoolSpeed:  config.PlayerPoolSpeed,
		Health:     config.PlayerHealth,
	})
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	left, err := newAdversary(mgl64.Vec3{config.ScreenWidth / 4, config.ScreenHeight / 2, 0}, t.LeftRate, t.LeftLifespanS, t.LeftFireSpeed)
	if err != nil {
		return nil, fmt.Errorf("left adversary: %w", err)
	}
	right, err := newAdversary(mgl64.Vec3{config.ScreenWidth - 100, config.ScreenHeight / 2, 0}, t.RightRate, t.RightLifespanS, t.RightFireSpeed)
	if err != nil {
		return nil, fmt.Errorf("right adversary: %w", err)
	}
	effect, err := newExplosion(arena.Center(), rng)
	if err != nil {
		return nil, fmt.Errorf("effect: %w", err)
	}

	return &Game{
		Player:          player,
		Left:            left,
		Right:           right,
		Effect:          effect,
		CollisionSystem: system.NewCollisionSystem(t.BodyRadiusScale),
		ControlSystem:   system.NewControlSystem(t.PlayerSpeed),
		PatternSystem:   &system.PatternSystem{Pattern: component.ParsePattern(t.Pattern)},
		ArenaSystem:     arena,
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		phase:           component.StartPhase,
		circleForce:     t.CircleForce,
		eliminated:      make(map[component.BodyID]bool),
	}, nil
}

func newAdversary(pos mgl64.Vec3, rate, lifespanS, fireSpeed float64) (*emitter.Emitter, error) {
	return emitter.New(emitter.Config{
		Position:   pos,
		Mass:       config.AdversaryMass,
		Rate:       rate,
		LifespanMs: lifespanS * 1000,
		Velocity:   mgl64.Vec3{0, 200, 0},
		Size:       component.Size{W: config.AdversaryBodySize, H: config.AdversaryBodySize},
		PoolSpeed:  fireSpeed,
		Health:     config.AdversaryHealth,
	})
}

// newExplosion wires the three force fields of the burst: turbulence,
// gravity and a radial push.
func newExplosion(pos mgl64.Vec3, rng *utils.PRNGService) (*emitter.EffectEmitter, error) {
	turbulence := force.NewBoundedRandom(
		mgl64.Vec3{-config.EffectTurbulence, -config.EffectTurbulence, 0},
		mgl64.Vec3{config.EffectTurbulence, config.EffectTurbulence, 0},
		rng,
	)
	gravity := &force.Directional{Vector: mgl64.Vec3{0, config.EffectGravity, 0}}
	radial := force.NewRadialImpulse(config.EffectImpulse)

	return emitter.NewEffect(emitter.EffectConfig{
		Position:       pos,
		OneShot:        true,
		GroupSize:      config.EffectGroupSize,
		ParticleRadius: config.EffectParticleRadius,
		LifespanMs:     config.EffectLifespanMs,
		BurstSpeed:     config.EffectBurstSpeed,
		Forces:         []force.Contributor{turbulence, gravity, radial},
	}, rng)
}

// Start начинает партию: противники открывают огонь
func (g *Game) Start() {
	if g.phase != component.StartPhase {
		return
	}
	g.phase = component.PlayingPhase
	now := g.Now()
	for _, adv := range g.liveAdversaries() {
		adv.Start(now)
	}
	if g.firing {
		g.Player.Start(now)
	}
	log.Println("Game: run started")
}

// Stop halts spawning on every emitter. Projectiles already in flight keep
// moving and can still collide.
func (g *Game) Stop() {
	g.Player.Stop()
	g.Left.Stop()
	g.Right.Stop()
}

// SetFiring включает и выключает огонь игрока
func (g *Game) SetFiring(on bool) {
	g.firing = on
	if g.phase != component.PlayingPhase {
		return
	}
	switch {
	case on && !g.Player.Started():
		g.Player.Start(g.Now())
	case !on:
		g.Player.Stop()
	}
}

// SetDirection задаёт направление движения игрока
func (g *Game) SetDirection(d component.Direction) { g.direction = d }

// SetAdversaryThrust pushes the right adversary vertically, -1 up, +1 down,
// 0 to release.
func (g *Game) SetAdversaryThrust(dir float64) { g.rightThrust = dir * config.AdversaryThrust }

func (g *Game) SetCircleForce(on bool)         { g.circleForce = on }
func (g *Game) SetPattern(p component.Pattern) { g.PatternSystem.Pattern = p }
func (g *Game) SetPlayerSpeed(speed float64)   { g.ControlSystem.Speed = config.ClampPlayerSpeed(speed) }
func (g *Game) SetPlayerRate(rate float64)     { g.Player.SetRate(config.ClampPlayerRate(rate)) }

// SetBodyRadiusScale scales the body-vs-body collision distance.
func (g *Game) SetBodyRadiusScale(s float64) {
	g.CollisionSystem.BodyRadiusScale = config.ClampRadiusScale(s)
}

func (g *Game) CircleForce() bool                   { return g.circleForce }
func (g *Game) Pattern() component.Pattern          { return g.PatternSystem.Pattern }
func (g *Game) Direction() component.Direction      { return g.direction }
func (g *Game) Firing() bool                        { return g.firing }
func (g *Game) Phase() component.Phase              { return g.phase }
func (g *Game) Score() int                          { return g.score }
func (g *Game) Eliminated(id component.BodyID) bool { return g.eliminated[id] }

// SetAdversaryRate sets shots per second, clamped to the slider range.
func (g *Game) SetAdversaryRate(id component.BodyID, rate float64) {
	if adv := g.adversary(id); adv != nil {
		adv.SetRate(config.ClampRate(rate))
	}
}

// SetAdversaryLifespan — время жизни будущих снарядов, в секундах
func (g *Game) SetAdversaryLifespan(id component.BodyID, seconds float64) {
	if adv := g.adversary(id); adv != nil {
		adv.SetLifespan(config.ClampLifespan(seconds) * 1000)
	}
}

// SetAdversaryFireSpeed sets how fast the adversary's shots travel.
func (g *Game) SetAdversaryFireSpeed(id component.BodyID, speed float64) {
	if adv := g.adversary(id); adv != nil {
		adv.Pool().SpeedScale = config.ClampFireSpeed(speed)
	}
}

// Now — часы симуляции в миллисекундах
func (g *Game) Now() float64 {
	return g.gameTime * 1000
}

// Events returns the batch produced by the last Update.
func (g *Game) Events() []event.Event {
	return g.events
}

// Update advances the simulation by deltaTime seconds. Emitters always
// integrate one fixed step; pools move by the measured deltaTime.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.gameTime += deltaTime
	now := g.Now()
	g.events = nil

	if g.phase != component.PlayingPhase {
		g.Effect.Update(now)
		return
	}

	g.applyControls()

	// 1. интегрирование всех эмиттеров
	g.Player.Integrate()
	for _, adv := range g.liveAdversaries() {
		adv.Integrate()
	}
	g.ArenaSystem.Clamp(g.Player)
	if !g.eliminated[component.RightAdversary] {
		g.ArenaSystem.ClampVertical(g.Right)
	}

	// 2. спавн
	g.ControlSystem.Aim(g.Player, g.liveAdversaries()...)
	if g.Player.Spawn(now) {
		g.events = append(g.events, event.Cue(event.CueFire))
	}
	for _, adv := range g.liveAdversaries() {
		adv.Spawn(now)
	}

	// 3. движение пулов
	g.Player.Pool().Tick(now, deltaTime)
	g.Left.Pool().Tick(now, deltaTime)
	g.Right.Pool().Tick(now, deltaTime)
	g.PatternSystem.Apply(g.Left.Pool(), g.gameTime)
	g.PatternSystem.Apply(g.Right.Pool(), g.gameTime)

	// 4. силы эффекта
	g.Effect.Update(now)

	// 5. столкновения и их применение
	detected := g.CollisionSystem.Detect(g.frame())
	g.events = append(g.events, detected...)
	for _, e := range detected {
		g.apply(e)
	}

	g.EventDispatcher.DispatchAll(g.events)
}

func (g *Game) applyControls() {
	g.ControlSystem.Steer(g.Player, g.direction)
	if g.circleForce {
		g.Left.Force = system.CircleForce(g.gameTime)
	} else {
		g.Left.Force = mgl64.Vec3{}
	}
	g.Right.Force = mgl64.Vec3{0, g.rightThrust, 0}
}

func (g *Game) frame() system.Frame {
	view := func(id component.BodyID, e *emitter.Emitter) system.BodyView {
		return system.BodyView{
			ID:          id,
			Position:    e.Position(),
			Size:        e.Size,
			Health:      e.Health,
			Eliminated:  g.eliminated[id],
			Projectiles: e.Pool(),
		}
	}
	return system.Frame{
		Player: view(component.Player, g.Player),
		Adversaries: []system.BodyView{
			view(component.LeftAdversary, g.Left),
			view(component.RightAdversary, g.Right),
		},
		Center: g.ArenaSystem.Center(),
	}
}

// apply — единственное место, где результаты столкновений меняют состояние
func (g *Game) apply(e event.Event) {
	switch e.Type {
	case event.EntityDestroyed:
		ref := e.Data.(event.EntityRef)
		pool := g.body(ref.Body).Pool()
		if ref.Index < pool.Len() {
			pool.At(ref.Index).LifespanMs = config.ExpireNowLifespanMs
		}
	case event.BodyDamaged:
		dmg := e.Data.(event.Damage)
		g.body(dmg.Body).Health -= dmg.Amount
	case event.ScoreDelta:
		g.score += e.Data.(int)
	case event.Effect:
		g.burst(e.Data.(event.Position).At)
	case event.BodyRecentered:
		pos := e.Data.(event.Position)
		g.body(pos.Body).SetPosition(pos.At)
	case event.BodyEliminated:
		g.eliminate(e.Data.(component.BodyID))
	case event.Victory:
		if g.phase.Finished() {
			return
		}
		g.Player.Stop()
		g.Player.Pool().Clear()
		g.phase = component.VictoryPhase
		g.events = append(g.events, event.Cue(event.CueVictory))
		log.Printf("Game: victory, score %d", g.score)
	}
}

func (g *Game) eliminate(id component.BodyID) {
	g.eliminated[id] = true
	if id != component.Player {
		adv := g.body(id)
		adv.SetPosition(mgl64.Vec3{config.OffscreenX, config.OffscreenY, 0})
		adv.Stop()
		adv.Pool().Clear()
		log.Printf("Game: %s adversary eliminated", id)
		return
	}
	g.burst(g.Player.Position())
	g.Stop()
	g.Player.Pool().Clear()
	g.Left.Pool().Clear()
	g.Right.Pool().Clear()
	g.phase = component.DefeatPhase
	g.events = append(g.events, event.Cue(event.CueDefeat))
	log.Printf("Game: player eliminated, score %d", g.score)
}

func (g *Game) burst(at mgl64.Vec3) {
	g.Effect.SetPosition(at)
	g.Effect.Reset()
	g.Effect.Start(g.Now())
}

func (g *Game) body(id component.BodyID) *emitter.Emitter {
	switch id {
	case component.LeftAdversary:
		return g.Left
	case component.RightAdversary:
		return g.Right
	}
	return g.Player
}

func (g *Game) adversary(id component.BodyID) *emitter.Emitter {
	if id == component.Player {
		return nil
	}
	return g.body(id)
}

func (g *Game) liveAdversaries() []*emitter.Emitter {
	live := make([]*emitter.Emitter, 0, len(component.Adversaries))
	for _, id := range component.Adversaries {
		if !g.eliminated[id] {
			live = append(live, g.body(id))
		}
	}
	return live
}
