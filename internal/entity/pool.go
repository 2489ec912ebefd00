// internal/entity/pool.go
package entity

import (
	"errors"
	"fmt"

	"go-emitter-arena/internal/component"
)

// ErrIndexOutOfRange is returned by RemoveAt for an index outside the pool.
var ErrIndexOutOfRange = errors.New("pool index out of range")

// Pool is the ordered collection of entities owned by one emitter.
// SpeedScale is the distance an entity travels per second along its
// velocity direction; each owner sets its own.
type Pool struct {
	SpeedScale float64
	entities   []component.Entity
}

// NewPool создаёт пустой пул, сущности летят со скоростью speedScale ед./с
func NewPool(speedScale float64) *Pool {
	return &Pool{SpeedScale: speedScale}
}

// Add добавляет сущность. Ни лимита, ни дедупликации нет.
func (p *Pool) Add(e component.Entity) {
	p.entities = append(p.entities, e)
}

// RemoveAt deletes the entity at index i, keeping the order of the rest.
func (p *Pool) RemoveAt(i int) error {
	if i < 0 || i >= len(p.entities) {
		return fmt.Errorf("remove %d of %d: %w", i, len(p.entities), ErrIndexOutOfRange)
	}
	p.entities = append(p.entities[:i], p.entities[i+1:]...)
	return nil
}

// Prune drops every expired entity, preserving the order of survivors.
func (p *Pool) Prune(now float64) {
	kept := p.entities[:0]
	for _, e := range p.entities {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	// Обнуляем хвост, чтобы не держать старые данные
	for i := len(kept); i < len(p.entities); i++ {
		p.entities[i] = component.Entity{}
	}
	p.entities = kept
}

// Tick prunes expired entities and moves the survivors along their velocity
// direction by SpeedScale*dt. Entities with zero velocity stay in place.
func (p *Pool) Tick(now, dt float64) {
	p.Prune(now)
	step := p.SpeedScale * dt
	for i := range p.entities {
		e := &p.entities[i]
		if e.Velocity.Len() == 0 {
			continue
		}
		e.Position = e.Position.Add(e.Velocity.Normalize().Mul(step))
	}
}

// Clear сразу очищает пул
func (p *Pool) Clear() {
	clear(p.entities)
	p.entities = p.entities[:0]
}

// Len — количество сущностей в пуле
func (p *Pool) Len() int {
	return len(p.entities)
}

// At returns a pointer to the i-th entity. The pointer is valid until the
// next Add, RemoveAt, Prune, Tick or Clear.
func (p *Pool) At(i int) *component.Entity {
	return &p.entities[i]
}

// Entities возвращает копию содержимого для чтения
func (p *Pool) Entities() []component.Entity {
	out := make([]component.Entity, len(p.entities))
	copy(out, p.entities)
	return out
}
