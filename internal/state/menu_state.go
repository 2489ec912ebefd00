// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuState — стартовый экран, партия ждёт пробела
type MenuState struct {
	sm      *StateMachine
	session *Session
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	c := m.session.Poll()
	if c.Quit {
		m.session.Quit = true
		return
	}
	m.session.Game.Update(deltaTime)
	if c.Start {
		m.session.Game.Start()
		m.sm.Switch(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.session.Renderer.DrawStart(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
