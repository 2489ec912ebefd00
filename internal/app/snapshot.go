package app

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/emitter"
	"go-emitter-arena/internal/utils"
)

// BodySnapshot — копия тела эмиттера только для чтения
type BodySnapshot struct {
	ID          component.BodyID
	Position    mgl64.Vec3
	Rotation    float64
	Heading     mgl64.Vec3
	Size        component.Size
	Health      float64
	Eliminated  bool
	Projectiles []component.Entity
}

// Snapshot is everything a renderer needs for one frame. Slices are copies,
// so holding a Snapshot never aliases the pools.
type Snapshot struct {
	Phase  component.Phase
	Score  int
	TimeMs float64
	Bodies [3]BodySnapshot // индексируется BodyID

	Effect       []component.Entity
	EffectActive bool
	EffectRadius float64
}

// Body возвращает снимок тела id
func (s Snapshot) Body(id component.BodyID) BodySnapshot {
	return s.Bodies[id]
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        g.phase,
		Score:        g.score,
		TimeMs:       g.Now(),
		Effect:       g.Effect.Pool().Entities(),
		EffectActive: g.Effect.Active(),
		EffectRadius: g.Effect.ParticleRadius(),
	}
	for _, id := range []component.BodyID{component.Player, component.LeftAdversary, component.RightAdversary} {
		snap.Bodies[id] = g.bodySnapshot(id, g.body(id))
	}
	return snap
}

func (g *Game) bodySnapshot(id component.BodyID, e *emitter.Emitter) BodySnapshot {
	head, _ := e.Heading()
	return BodySnapshot{
		ID:          id,
		Position:    e.Position(),
		Rotation:    utils.NormalizeDegrees(e.Rotation()),
		Heading:     head,
		Size:        e.Size,
		Health:      e.Health,
		Eliminated:  g.eliminated[id],
		Projectiles: e.Pool().Entities(),
	}
}
