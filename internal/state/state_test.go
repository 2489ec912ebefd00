package state

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"go-emitter-arena/internal/audio"
	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/event"
	"go-emitter-arena/internal/input"
	"go-emitter-arena/internal/utils"
)

const frame = 1.0 / 60.0

type traceState struct {
	name  string
	trace *[]string
	onUpd func()
}

func (s *traceState) Enter() {
	*s.trace = append(*s.trace, "enter "+s.name)
}

func (s *traceState) Update(float64) {
	*s.trace = append(*s.trace, "update "+s.name)
	s.onUpd()
}

func (s *traceState) Draw(*ebiten.Image) {}

func (s *traceState) Exit() {
	*s.trace = append(*s.trace, "exit "+s.name)
}

func TestStateMachine_SwitchIsDeferred(t *testing.T) {
	var trace []string
	sm := NewStateMachine()
	b := &traceState{name: "b", trace: &trace, onUpd: func() {}}
	a := &traceState{name: "a", trace: &trace}
	a.onUpd = func() {
		sm.Switch(b)
		trace = append(trace, "after switch")
	}
	sm.SetState(a)
	sm.Update(frame)

	want := []string{"enter a", "update a", "after switch", "exit a", "enter b"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	if sm.Current() != b {
		t.Errorf("Current() is not the new state")
	}
}

// scripted feeds one Controls per frame and then empty ones.
type scripted struct {
	queue []input.Controls
}

func (s *scripted) poll() input.Controls {
	if len(s.queue) == 0 {
		return input.Controls{}
	}
	c := s.queue[0]
	s.queue = s.queue[1:]
	return c
}

func (s *scripted) push(c ...input.Controls) { s.queue = append(s.queue, c...) }

func newTestSession(t *testing.T) (*Session, *scripted) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 11
	tuning.Audio = false
	s, err := NewSession(tuning, nil, audio.NewPlayer(utils.NewPRNGService(1)))
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	script := &scripted{}
	s.Poll = script.poll
	return s, script
}

func TestFlow_StartDefeatRestart(t *testing.T) {
	s, script := newTestSession(t)
	sm := NewStateMachine()
	sm.SetState(NewMenuState(sm, s))

	sm.Update(frame)
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("left the menu without input")
	}

	script.push(input.Controls{Start: true})
	sm.Update(frame)
	if _, ok := sm.Current().(*GameState); !ok {
		t.Fatalf("Current() = %T after start", sm.Current())
	}
	if s.Game.Phase() != component.PlayingPhase {
		t.Fatalf("Phase() = %v", s.Game.Phase())
	}

	g := s.Game
	g.Player.Health = 1
	g.Left.Pool().Add(component.Entity{
		Position:   g.Player.Position(),
		Size:       component.Size{W: 10, H: 10},
		BirthTime:  g.Now(),
		LifespanMs: 1000,
	})
	sm.Update(frame)
	if _, ok := sm.Current().(*EndState); !ok {
		t.Fatalf("Current() = %T after defeat", sm.Current())
	}
	if s.Audio.Played(event.CueDefeat) != 1 {
		t.Errorf("defeat cue played %d times", s.Audio.Played(event.CueDefeat))
	}

	sm.Update(frame)
	if s.Game != g {
		t.Fatalf("run replaced without restart")
	}
	script.push(input.Controls{Restart: true})
	sm.Update(frame)
	if s.Game == g {
		t.Fatalf("restart kept the old run")
	}
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Errorf("Current() = %T after restart", sm.Current())
	}
	if s.Game.Phase() != component.StartPhase || s.Game.Player.Health != config.PlayerHealth {
		t.Errorf("new run not fresh: phase %v, health %v", s.Game.Phase(), s.Game.Player.Health)
	}
}

func TestGameState_AppliesControls(t *testing.T) {
	s, script := newTestSession(t)
	sm := NewStateMachine()
	s.Game.Start()
	sm.SetState(NewGameState(sm, s))

	script.push(input.Controls{
		Direction:    component.MoveUp,
		Fire:         true,
		Thrust:       1,
		CyclePattern: true,
		ToggleOrbit:  true,
	})
	sm.Update(frame)

	g := s.Game
	if g.Direction() != component.MoveUp || !g.Firing() || !g.Player.Started() {
		t.Errorf("direction %v firing %v started %v", g.Direction(), g.Firing(), g.Player.Started())
	}
	if g.Pattern() != component.PatternParabola || !g.CircleForce() {
		t.Errorf("pattern %v orbit %v", g.Pattern(), g.CircleForce())
	}
	if g.Right.Force != (mgl64.Vec3{0, config.AdversaryThrust, 0}) {
		t.Errorf("right force = %v", g.Right.Force)
	}

	// кнопки отпущены
	sm.Update(frame)
	if g.Firing() || g.Player.Started() || g.Direction() != component.Idle {
		t.Errorf("released controls still active")
	}
}

func TestPause_FreezesClock(t *testing.T) {
	s, script := newTestSession(t)
	sm := NewStateMachine()
	s.Game.Start()
	play := NewGameState(sm, s)
	sm.SetState(play)

	script.push(input.Controls{Pause: true})
	sm.Update(frame)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("Current() = %T, want pause", sm.Current())
	}
	now := s.Game.Now()
	for i := 0; i < 30; i++ {
		sm.Update(frame)
	}
	if s.Game.Now() != now {
		t.Errorf("clock moved while paused: %v -> %v", now, s.Game.Now())
	}

	script.push(input.Controls{Pause: true})
	sm.Update(frame)
	if sm.Current() != play {
		t.Errorf("Current() = %T after unpause", sm.Current())
	}
}

func TestQuit(t *testing.T) {
	s, script := newTestSession(t)
	sm := NewStateMachine()
	sm.SetState(NewMenuState(sm, s))
	script.push(input.Controls{Quit: true})
	sm.Update(frame)
	if !s.Quit {
		t.Errorf("Quit not requested")
	}
}

func TestGameState_TuningPanelDrivesSetters(t *testing.T) {
	s, script := newTestSession(t)
	sm := NewStateMachine()
	s.Game.Start()
	sm.SetState(NewGameState(sm, s))

	// курсор на скорость снарядов левого противника, затем шаг вверх
	for i := 0; i < sliderLeftFireSpeed; i++ {
		script.push(input.Controls{SelectSlider: 1})
	}
	script.push(input.Controls{AdjustSlider: 1})
	for i := 0; i <= sliderLeftFireSpeed; i++ {
		sm.Update(frame)
	}

	want := config.AdversaryFireSpeed + 10
	if got := s.Game.Left.Pool().SpeedScale; got != want {
		t.Errorf("left SpeedScale = %v, want %v", got, want)
	}
	if got := s.Game.Right.Pool().SpeedScale; got != config.AdversaryFireSpeed {
		t.Errorf("right SpeedScale = %v, want untouched %v", got, config.AdversaryFireSpeed)
	}
	if s.Tuning.LeftFireSpeed != want {
		t.Errorf("Tuning.LeftFireSpeed = %v, want %v", s.Tuning.LeftFireSpeed, want)
	}

	// назад через начало списка на масштаб радиуса корпусов
	for i := 0; i <= sliderLeftFireSpeed; i++ {
		script.push(input.Controls{SelectSlider: -1})
	}
	script.push(input.Controls{AdjustSlider: -1})
	for i := 0; i <= sliderLeftFireSpeed+1; i++ {
		sm.Update(frame)
	}
	if s.Panel.Selected != sliderRadiusScale {
		t.Fatalf("Selected = %d, want %d", s.Panel.Selected, sliderRadiusScale)
	}
	if got := s.Game.CollisionSystem.BodyRadiusScale; got < 0.9-1e-9 || got > 0.9+1e-9 {
		t.Errorf("BodyRadiusScale = %v, want 0.9", got)
	}

	if err := s.NewGame(); err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if got := s.Game.Left.Pool().SpeedScale; got != want {
		t.Errorf("restarted left SpeedScale = %v, want %v", got, want)
	}
}

func TestSession_ApplySliderRates(t *testing.T) {
	s, _ := newTestSession(t)
	tests := []struct {
		slider int
		value  float64
		got    func() float64
	}{
		{sliderPlayerRate, 12, s.Game.Player.Rate},
		{sliderLeftRate, 4.5, s.Game.Left.Rate},
		{sliderRightRate, 0, s.Game.Right.Rate},
		{sliderRightLifespan, 2.5, func() float64 { return s.Game.Right.Lifespan() / 1000 }},
		{sliderPlayerSpeed, 5, func() float64 { return s.Game.ControlSystem.Speed }},
	}
	for _, tt := range tests {
		s.applySlider(tt.slider, tt.value)
		if got := tt.got(); got != tt.value {
			t.Errorf("slider %d: got %v, want %v", tt.slider, got, tt.value)
		}
	}
}

func TestSession_NewGameMovesAudio(t *testing.T) {
	s, _ := newTestSession(t)
	old := s.Game
	if err := s.NewGame(); err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	old.EventDispatcher.Dispatch(event.Cue(event.CueVictory))
	if n := s.Audio.Played(event.CueVictory); n != 0 {
		t.Errorf("discarded run still plays: %d cues", n)
	}
	s.Game.EventDispatcher.Dispatch(event.Cue(event.CueVictory))
	if n := s.Audio.Played(event.CueVictory); n != 1 {
		t.Errorf("new run played %d cues, want 1", n)
	}
}
