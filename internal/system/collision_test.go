package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/entity"
	"go-emitter-arena/internal/event"
)

var shotSize = component.Size{W: 10, H: 10}

func poolWith(positions ...mgl64.Vec3) *entity.Pool {
	p := entity.NewPool(100)
	for _, pos := range positions {
		p.Add(component.Entity{Position: pos, Size: shotSize, LifespanMs: 1000})
	}
	return p
}

// arena places everything far apart so only what a test adds can collide.
func arena() Frame {
	return Frame{
		Player: BodyView{
			ID: component.Player, Position: mgl64.Vec3{512, 384, 0},
			Size: component.Size{W: 150, H: 50}, Health: 100,
			Projectiles: poolWith(),
		},
		Adversaries: []BodyView{
			{ID: component.LeftAdversary, Position: mgl64.Vec3{100, 384, 0},
				Size: component.Size{W: 150, H: 150}, Health: 500, Projectiles: poolWith()},
			{ID: component.RightAdversary, Position: mgl64.Vec3{924, 384, 0},
				Size: component.Size{W: 150, H: 150}, Health: 500, Projectiles: poolWith()},
		},
		Center: mgl64.Vec3{512, 384, 0},
	}
}

func countType(events []event.Event, typ event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestDetect_QuietFrame(t *testing.T) {
	s := NewCollisionSystem(1)
	if got := s.Detect(arena()); len(got) != 0 {
		t.Errorf("Detect() on a quiet frame = %v", got)
	}
}

func TestDetect_ProjectileInterceptScenario(t *testing.T) {
	f := arena()
	f.Player.Projectiles = poolWith(mgl64.Vec3{300, 100, 0}, mgl64.Vec3{100, 100, 0})
	f.Adversaries[0].Projectiles = poolWith(mgl64.Vec3{102, 101, 0})

	got := NewCollisionSystem(1).Detect(f)

	want := []event.Event{
		event.Destroy(component.Player, 1),
		event.Destroy(component.LeftAdversary, 0),
		event.Score(1),
		event.EffectAt(mgl64.Vec3{100, 100, 0}),
		event.Cue(event.CueExplode),
	}
	if len(got) != len(want) {
		t.Fatalf("Detect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDetect_ThresholdIsInclusiveAndStable(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		collide bool
	}{
		{"inside", 9.5, true},
		{"exactly at threshold", 10, true},
		{"just outside", 10.000001, false},
	}
	s := NewCollisionSystem(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := arena()
			f.Player.Projectiles = poolWith(mgl64.Vec3{300, 100, 0})
			f.Adversaries[1].Projectiles = poolWith(mgl64.Vec3{300 + tt.offset, 100, 0})
			for run := 0; run < 5; run++ {
				got := countType(s.Detect(f), event.ScoreDelta) == 1
				if got != tt.collide {
					t.Fatalf("run %d: collided = %v, want %v", run, got, tt.collide)
				}
			}
		})
	}
}

func TestDetect_PlayerShotHitsAdversaryBody(t *testing.T) {
	f := arena()
	// 5 + 75 = 80 from the left body center
	f.Player.Projectiles = poolWith(mgl64.Vec3{180, 384, 0}, mgl64.Vec3{181, 384, 0})

	got := NewCollisionSystem(1).Detect(f)
	want := []event.Event{
		event.Destroy(component.Player, 0),
		event.Damaged(component.LeftAdversary, 100),
		event.EffectAt(mgl64.Vec3{180, 384, 0}),
		event.Cue(event.CueExplode),
	}
	if len(got) != len(want) {
		t.Fatalf("Detect() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDetect_AdversaryShotHitsPlayer(t *testing.T) {
	f := arena()
	// 25 + 5 = 30
	f.Adversaries[1].Projectiles = poolWith(mgl64.Vec3{542, 384, 0}, mgl64.Vec3{543, 384, 0})

	got := NewCollisionSystem(1).Detect(f)
	want := []event.Event{
		event.Destroy(component.RightAdversary, 0),
		event.Damaged(component.Player, 1),
		event.EffectAt(mgl64.Vec3{512, 384, 0}),
		event.Cue(event.CueExplode),
	}
	if len(got) != len(want) {
		t.Fatalf("Detect() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDetect_RamRecentersWithoutEffect(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		dist  float64
		ram   bool
	}{
		{"default scale at threshold", 1, 100, true},
		{"default scale outside", 1, 101, false},
		{"half scale", 0.5, 60, false},
		{"half scale inside", 0.5, 50, true},
		{"double scale", 2, 199, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := arena()
			f.Player.Position = mgl64.Vec3{100 + tt.dist, 384, 0}
			got := NewCollisionSystem(tt.scale).Detect(f)
			if (countType(got, event.BodyRecentered) == 1) != tt.ram {
				t.Fatalf("Detect() = %v, ram want %v", got, tt.ram)
			}
			if !tt.ram {
				return
			}
			if countType(got, event.Effect) != 0 {
				t.Errorf("ram produced an effect burst")
			}
			if got[0] != event.Damaged(component.Player, 5) {
				t.Errorf("first event = %+v", got[0])
			}
			if got[1] != event.Recentered(component.Player, f.Center) {
				t.Errorf("second event = %+v", got[1])
			}
		})
	}
}

func TestDetect_CheckOrder(t *testing.T) {
	f := arena()
	// выстрел игрока одновременно касается корпуса и снаряда слева
	f.Player.Projectiles = poolWith(mgl64.Vec3{175, 384, 0})
	f.Adversaries[0].Projectiles = poolWith(mgl64.Vec3{178, 384, 0}, mgl64.Vec3{540, 384, 0})

	got := NewCollisionSystem(1).Detect(f)
	var order []event.EventType
	for _, e := range got {
		if e.Type == event.BodyDamaged || e.Type == event.ScoreDelta {
			order = append(order, e.Type)
		}
	}
	want := []event.EventType{event.BodyDamaged, event.ScoreDelta, event.BodyDamaged}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %v, want %v", i, order[i], want[i])
		}
	}
	if d := got[len(got)-1]; d.Type == event.BodyEliminated {
		t.Errorf("unexpected elimination %+v", d)
	}
}

func TestDetect_PlayerEliminatedExactlyOnce(t *testing.T) {
	f := arena()
	f.Player.Health = 2
	f.Player.Projectiles = poolWith(mgl64.Vec3{300, 100, 0})
	f.Adversaries[0].Projectiles = poolWith(mgl64.Vec3{520, 384, 0}, mgl64.Vec3{300, 105, 0})
	f.Adversaries[1].Projectiles = poolWith(mgl64.Vec3{505, 384, 0})

	got := NewCollisionSystem(1).Detect(f)
	if n := countType(got, event.BodyEliminated); n != 1 {
		t.Fatalf("BodyEliminated count = %d in %v", n, got)
	}
	last := got[len(got)-1]
	if last != event.Eliminated(component.Player) {
		t.Errorf("last event = %+v, want player elimination", last)
	}

	f.Player.Eliminated = true
	if again := NewCollisionSystem(1).Detect(f); len(again) != 0 {
		t.Errorf("eliminated player still produces events: %v", again)
	}
}

func TestDetect_AdversaryEliminationAndVictory(t *testing.T) {
	f := arena()
	f.Adversaries[0].Health = 100
	f.Adversaries[1].Eliminated = true
	f.Adversaries[1].Health = 0
	f.Player.Projectiles = poolWith(mgl64.Vec3{150, 384, 0})

	got := NewCollisionSystem(1).Detect(f)
	n := len(got)
	if n < 2 || got[n-2] != event.Eliminated(component.LeftAdversary) || got[n-1] != event.Won() {
		t.Fatalf("Detect() = %v, want elimination then victory", got)
	}
	if countType(got, event.BodyEliminated) != 1 {
		t.Errorf("already eliminated adversary reported again")
	}
}

func TestDetect_SkipsEliminatedAdversary(t *testing.T) {
	f := arena()
	f.Adversaries[0].Eliminated = true
	f.Player.Projectiles = poolWith(mgl64.Vec3{100, 384, 0})
	f.Adversaries[0].Projectiles = poolWith(mgl64.Vec3{512, 384, 0})
	f.Player.Position = mgl64.Vec3{100, 384, 0}

	if got := NewCollisionSystem(1).Detect(f); len(got) != 0 {
		t.Errorf("eliminated adversary took part in collisions: %v", got)
	}
}

func TestDetect_DoesNotMutateFrame(t *testing.T) {
	f := arena()
	shots := poolWith(mgl64.Vec3{100, 100, 0})
	enemy := poolWith(mgl64.Vec3{102, 101, 0})
	f.Player.Projectiles = shots
	f.Adversaries[0].Projectiles = enemy

	NewCollisionSystem(1).Detect(f)
	if shots.At(0).LifespanMs != 1000 || enemy.At(0).LifespanMs != 1000 {
		t.Errorf("Detect changed lifespans")
	}
	if shots.Len() != 1 || enemy.Len() != 1 {
		t.Errorf("Detect changed pool sizes")
	}
}
