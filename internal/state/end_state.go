package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// EndState shows the result. The burst keeps animating until a restart.
type EndState struct {
	sm      *StateMachine
	session *Session
}

func NewEndState(sm *StateMachine, session *Session) *EndState {
	return &EndState{sm: sm, session: session}
}

func (e *EndState) Enter() {
	log.Printf("State: run over (%s), score %d", e.session.Game.Phase(), e.session.Game.Score())
}

func (e *EndState) Update(deltaTime float64) {
	c := e.session.Poll()
	if c.Quit {
		e.session.Quit = true
		return
	}
	e.session.Game.Update(deltaTime)
	if !c.Restart {
		return
	}
	if err := e.session.NewGame(); err != nil {
		log.Printf("State: restart failed: %v", err)
		return
	}
	e.sm.Switch(NewMenuState(e.sm, e.session))
}

func (e *EndState) Draw(screen *ebiten.Image) {
	e.session.Renderer.DrawEnd(screen, e.session.Game.Snapshot(), e.session.hud())
}

func (e *EndState) Exit() {}
