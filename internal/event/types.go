package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
)

const (
	EntityDestroyed EventType = "EntityDestroyed" // снаряд должен исчезнуть
	BodyDamaged     EventType = "BodyDamaged"     // тело теряет здоровье
	ScoreDelta      EventType = "ScoreDelta"      // изменение счёта
	Effect          EventType = "Effect"          // запуск взрыва
	AudioCue        EventType = "AudioCue"        // звуковой сигнал
	BodyRecentered  EventType = "BodyRecentered"  // игрок возвращён в центр
	BodyEliminated  EventType = "BodyEliminated"  // тело выбыло
	Victory         EventType = "Victory"         // оба противника выбыли
)

// EntityRef points at one entity inside the pool owned by Body. The index is
// valid until the pool is next pruned.
type EntityRef struct {
	Body  component.BodyID
	Index int
}

// Damage — данные BodyDamaged
type Damage struct {
	Body   component.BodyID
	Amount float64
}

// Position — данные Effect и BodyRecentered
type Position struct {
	Body component.BodyID
	At   mgl64.Vec3
}

// CueKind names a sound the audio collaborator should play.
type CueKind int

const (
	CueFire CueKind = iota
	CueExplode
	CueDefeat
	CueVictory
)

func (k CueKind) String() string {
	switch k {
	case CueFire:
		return "fire"
	case CueExplode:
		return "explode"
	case CueDefeat:
		return "defeat"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// Конструкторы держат пары Type/Data в одном месте

func Destroy(body component.BodyID, index int) Event {
	return Event{Type: EntityDestroyed, Data: EntityRef{Body: body, Index: index}}
}

func Damaged(body component.BodyID, amount float64) Event {
	return Event{Type: BodyDamaged, Data: Damage{Body: body, Amount: amount}}
}

func Score(delta int) Event {
	return Event{Type: ScoreDelta, Data: delta}
}

func EffectAt(at mgl64.Vec3) Event {
	return Event{Type: Effect, Data: Position{At: at}}
}

func Cue(kind CueKind) Event {
	return Event{Type: AudioCue, Data: kind}
}

func Recentered(body component.BodyID, at mgl64.Vec3) Event {
	return Event{Type: BodyRecentered, Data: Position{Body: body, At: at}}
}

func Eliminated(body component.BodyID) Event {
	return Event{Type: BodyEliminated, Data: body}
}

func Won() Event {
	return Event{Type: Victory}
}
