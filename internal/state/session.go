// internal/state/session.go
package state

import (
	"fmt"
	"log"

	game "go-emitter-arena/internal/app"
	"go-emitter-arena/internal/audio"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/event"
	"go-emitter-arena/internal/input"
	"go-emitter-arena/internal/ui"
	"go-emitter-arena/pkg/render"
)

// Session is what every state shares: the current run and its collaborators.
type Session struct {
	Tuning   config.Tuning
	Game     *game.Game
	Renderer *render.ArenaRenderer
	Audio    *audio.Player
	Panel    *ui.TuningPanel

	// Poll reads the controls for one frame; input.Poll by default.
	Poll func() input.Controls
	Quit bool
}

// NewSession готовит сессию и первую партию
func NewSession(t config.Tuning, renderer *render.ArenaRenderer, player *audio.Player) (*Session, error) {
	s := &Session{
		Tuning:   t,
		Renderer: renderer,
		Audio:    player,
		Panel:    newTuningPanel(t),
		Poll:     input.Poll,
	}
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame заменяет текущую партию новой
func (s *Session) NewGame() error {
	g, err := game.NewGame(s.Tuning)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	if s.Audio != nil {
		if s.Game != nil {
			// старая партия больше не должна звучать
			s.Game.EventDispatcher.Unsubscribe(event.AudioCue, s.Audio)
		}
		g.EventDispatcher.Subscribe(event.AudioCue, s.Audio)
	}
	s.Game = g
	log.Println("Session: new run ready")
	return nil
}

func (s *Session) hud() render.HUD {
	return render.HUD{
		Pattern:     s.Game.Pattern(),
		CircleForce: s.Game.CircleForce(),
		Firing:      s.Game.Firing(),
		Panel:       s.Panel,
	}
}
