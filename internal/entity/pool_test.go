package entity

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
)

func spawnAt(x, birth, lifespan float64) component.Entity {
	return component.Entity{
		Position:   mgl64.Vec3{x, 0, 0},
		Velocity:   mgl64.Vec3{1, 0, 0},
		BirthTime:  birth,
		LifespanMs: lifespan,
	}
}

func TestPool_TickPrunesExpired(t *testing.T) {
	p := NewPool(100)
	p.Add(spawnAt(1, 0, 500))
	p.Add(spawnAt(2, 0, 1500))
	p.Add(spawnAt(3, 0, 500))
	p.Add(spawnAt(4, 0, component.Immortal))

	p.Tick(1000, 0)

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	// порядок выживших сохраняется
	if got := p.At(0).Position.X(); got != 2 {
		t.Errorf("first survivor x = %v, want 2", got)
	}
	if got := p.At(1).Position.X(); got != 4 {
		t.Errorf("second survivor x = %v, want 4", got)
	}
}

func TestPool_AgeEqualToLifespanSurvives(t *testing.T) {
	p := NewPool(100)
	p.Add(spawnAt(0, 100, 400))

	p.Tick(500, 0)
	if p.Len() != 1 {
		t.Fatalf("entity at age == lifespan was pruned")
	}
	p.Tick(500.001, 0)
	if p.Len() != 0 {
		t.Fatalf("entity past its lifespan survived")
	}
}

func TestPool_ImmortalNeverPruned(t *testing.T) {
	p := NewPool(100)
	p.Add(spawnAt(0, 0, component.Immortal))

	for _, now := range []float64{0, 1e3, 1e6, 1e12} {
		p.Tick(now, 0)
		if p.Len() != 1 {
			t.Fatalf("immortal entity pruned at now=%v", now)
		}
	}
}

func TestPool_ForcedExpiryPrunedNextTick(t *testing.T) {
	p := NewPool(100)
	p.Add(spawnAt(0, 1000, 5000))
	p.At(0).LifespanMs = 0

	p.Tick(1000, 0)
	if p.Len() != 1 {
		t.Fatalf("entity with zero lifespan pruned before any time elapsed")
	}
	p.Tick(1001, 0)
	if p.Len() != 0 {
		t.Fatalf("entity with zero lifespan survived a later tick")
	}
}

func TestPool_TickMovesAlongNormalizedVelocity(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		velocity mgl64.Vec3
		dt       float64
		want     mgl64.Vec3
	}{
		{"default speed", 100, mgl64.Vec3{3, 4, 0}, 0.5, mgl64.Vec3{30, 40, 0}},
		{"player speed", 400, mgl64.Vec3{0, -100, 0}, 0.25, mgl64.Vec3{0, -100, 0}},
		{"zero velocity stays", 100, mgl64.Vec3{}, 1, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.speed)
			p.Add(component.Entity{Velocity: tt.velocity, LifespanMs: component.Immortal})
			p.Tick(0, tt.dt)
			got := p.At(0).Position
			if !got.ApproxEqualThreshold(tt.want, 1e-9) {
				t.Errorf("position = %v, want %v", got, tt.want)
			}
			for _, c := range got {
				if math.IsNaN(c) {
					t.Fatalf("position has NaN: %v", got)
				}
			}
		})
	}
}

func TestPool_RemoveAt(t *testing.T) {
	p := NewPool(100)
	p.Add(spawnAt(1, 0, -1))
	p.Add(spawnAt(2, 0, -1))
	p.Add(spawnAt(3, 0, -1))

	if err := p.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1) error = %v", err)
	}
	if p.Len() != 2 || p.At(1).Position.X() != 3 {
		t.Errorf("RemoveAt(1) left %v", p.Entities())
	}

	for _, i := range []int{-1, 2, 10} {
		err := p.RemoveAt(i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(%d) error = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if p.Len() != 2 {
		t.Errorf("failed RemoveAt changed the pool: Len() = %d", p.Len())
	}
}

func TestPool_ClearAndEntitiesCopy(t *testing.T) {
	p := NewPool(100)
	p.Add(spawnAt(1, 0, -1))

	snapshot := p.Entities()
	snapshot[0].Position = mgl64.Vec3{99, 0, 0}
	if p.At(0).Position.X() != 1 {
		t.Errorf("Entities() returned a view into the pool")
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d", p.Len())
	}
	p.Add(spawnAt(5, 0, -1))
	if p.Len() != 1 {
		t.Errorf("pool unusable after Clear")
	}
}
