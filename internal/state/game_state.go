// internal/state/game_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/input"
)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{sm: sm, session: session}
}

func (g *GameState) Enter() {
	log.Println("State: playing")
}

func (g *GameState) Update(deltaTime float64) {
	c := g.session.Poll()
	if c.Quit {
		g.session.Quit = true
		return
	}
	if c.Pause {
		g.sm.Switch(NewPauseState(g.sm, g))
		return
	}

	g.applyControls(c)
	g.session.Game.Update(deltaTime)

	if g.session.Game.Phase().Finished() {
		g.sm.Switch(NewEndState(g.sm, g.session))
	}
}

func (g *GameState) applyControls(c input.Controls) {
	game := g.session.Game
	game.SetDirection(c.Direction)
	if c.Fire != game.Firing() {
		game.SetFiring(c.Fire)
	}
	game.SetAdversaryThrust(c.Thrust)

	if c.CyclePattern {
		game.SetPattern(input.NextPattern(game.Pattern()))
		log.Printf("State: pattern %s", game.Pattern())
	}
	if c.ToggleOrbit {
		game.SetCircleForce(!game.CircleForce())
	}
	if c.SelectSlider != 0 {
		g.session.Panel.Select(c.SelectSlider)
	}
	if i, ok := g.session.Panel.Adjust(c.AdjustSlider); ok {
		v := g.session.Panel.Sliders[i].Value
		g.session.applySlider(i, v)
		log.Printf("State: %s = %.1f", g.session.Panel.Sliders[i].Label, v)
	}
	if c.ToggleHUD && g.session.Renderer != nil {
		g.session.Renderer.ShowHUD = !g.session.Renderer.ShowHUD
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.session.Renderer.Draw(screen, g.session.Game.Snapshot(), g.session.hud())
}

func (g *GameState) Exit() {
	// огонь не должен продолжаться за пределами состояния
	g.session.Game.SetFiring(false)
	g.session.Game.SetDirection(component.Idle)
}
