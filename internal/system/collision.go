// internal/system/collision.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/event"
	"go-emitter-arena/internal/physics"
)

// Projectiles — доступ к пулу только на чтение, *entity.Pool подходит
type Projectiles interface {
	Len() int
	At(i int) *component.Entity
}

// BodyView — то, что проверка столкновений читает об эмиттере
type BodyView struct {
	ID          component.BodyID
	Position    mgl64.Vec3
	Size        component.Size
	Health      float64
	Eliminated  bool
	Projectiles Projectiles
}

// Frame is the state of one tick after every pool has advanced.
type Frame struct {
	Player      BodyView
	Adversaries []BodyView
	Center      mgl64.Vec3 // куда возвращается игрок после тарана
}

// CollisionSystem turns a Frame into events. It never mutates the frame;
// the orchestrator applies the events.
type CollisionSystem struct {
	// множитель порога столкновения корпусов
	BodyRadiusScale float64

	BodyHitDamage       float64
	ProjectileHitDamage float64
	RamDamage           float64
}

func NewCollisionSystem(bodyRadiusScale float64) *CollisionSystem {
	if bodyRadiusScale <= 0 {
		bodyRadiusScale = 1
	}
	return &CollisionSystem{
		BodyRadiusScale:     bodyRadiusScale,
		BodyHitDamage:       config.BodyHitDamage,
		ProjectileHitDamage: config.ProjectileHitDamage,
		RamDamage:           config.RamDamage,
	}
}

// collides — единое правило границы: касание считается попаданием
func collides(a, b mgl64.Vec3, threshold float64) bool {
	return physics.Distance2D(a, b) <= threshold
}

// Detect runs every check in a fixed order and returns the events in the
// order they fired. All matching checks fire, even for a projectile that an
// earlier check already destroyed.
func (s *CollisionSystem) Detect(f Frame) []event.Event {
	if f.Player.Eliminated {
		return nil
	}
	var events []event.Event
	player := f.Player
	health := map[component.BodyID]float64{player.ID: player.Health}
	for _, adv := range f.Adversaries {
		health[adv.ID] = adv.Health
	}
	damage := func(id component.BodyID, amount float64) {
		health[id] -= amount
		events = append(events, event.Damaged(id, amount))
	}

	// 1. снаряды игрока по корпусам противников
	for _, adv := range f.Adversaries {
		if adv.Eliminated {
			continue
		}
		for i := 0; i < lenOf(player.Projectiles); i++ {
			shot := player.Projectiles.At(i)
			if !collides(shot.Position, adv.Position, shot.Size.Radius()+adv.Size.Radius()) {
				continue
			}
			events = append(events, event.Destroy(player.ID, i))
			damage(adv.ID, s.BodyHitDamage)
			events = append(events, event.EffectAt(shot.Position), event.Cue(event.CueExplode))
		}
	}

	// 2. снаряд на снаряд
	for _, adv := range f.Adversaries {
		if adv.Eliminated {
			continue
		}
		for i := 0; i < lenOf(player.Projectiles); i++ {
			shot := player.Projectiles.At(i)
			for j := 0; j < lenOf(adv.Projectiles); j++ {
				other := adv.Projectiles.At(j)
				if !collides(shot.Position, other.Position, shot.Size.Radius()+other.Size.Radius()) {
					continue
				}
				events = append(events,
					event.Destroy(player.ID, i),
					event.Destroy(adv.ID, j),
					event.Score(config.ScorePerIntercept),
					event.EffectAt(shot.Position),
					event.Cue(event.CueExplode),
				)
			}
		}
	}

	// 3. снаряды противников по игроку
	for _, adv := range f.Adversaries {
		if adv.Eliminated {
			continue
		}
		for j := 0; j < lenOf(adv.Projectiles); j++ {
			other := adv.Projectiles.At(j)
			if !collides(player.Position, other.Position, player.Size.Radius()+other.Size.Radius()) {
				continue
			}
			events = append(events, event.Destroy(adv.ID, j))
			damage(player.ID, s.ProjectileHitDamage)
			events = append(events, event.EffectAt(player.Position), event.Cue(event.CueExplode))
		}
	}

	// 4. таран: урон и возврат игрока в центр, без взрыва
	for _, adv := range f.Adversaries {
		if adv.Eliminated {
			continue
		}
		threshold := (player.Size.Radius() + adv.Size.Radius()) * s.BodyRadiusScale
		if !collides(player.Position, adv.Position, threshold) {
			continue
		}
		damage(player.ID, s.RamDamage)
		events = append(events, event.Recentered(player.ID, f.Center), event.Cue(event.CueExplode))
	}

	// 5. проверка окончания партии
	if health[player.ID] <= 0 {
		events = append(events, event.Eliminated(player.ID))
	}
	remaining := 0
	newlyEliminated := false
	for _, adv := range f.Adversaries {
		if adv.Eliminated {
			continue
		}
		if health[adv.ID] <= 0 {
			events = append(events, event.Eliminated(adv.ID))
			newlyEliminated = true
			continue
		}
		remaining++
	}
	if newlyEliminated && remaining == 0 {
		events = append(events, event.Won())
	}
	return events
}

func lenOf(p Projectiles) int {
	if p == nil {
		return 0
	}
	return p.Len()
}
