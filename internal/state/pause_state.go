// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the run: the simulation clock does not advance.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prev,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	c := s.previousState.session.Poll()
	if c.Quit {
		s.previousState.session.Quit = true
		return
	}
	if c.Pause {
		s.stateMachine.Switch(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	session := s.previousState.session
	session.Renderer.DrawPaused(screen, session.Game.Snapshot(), session.hud())
}

func (s *PauseState) Exit() {}
