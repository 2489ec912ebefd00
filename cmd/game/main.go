// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"go-emitter-arena/internal/audio"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/state"
	"go-emitter-arena/internal/utils"
	"go-emitter-arena/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	session        *state.Session
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.session.Quit {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuning := config.LoadTuning(".env")

	switch tuning.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		log.Printf("Config: unknown profile %q, profiling disabled", tuning.Profile)
	}

	player := audio.NewPlayer(utils.NewPRNGService(tuning.Seed))
	if tuning.Audio {
		if err := player.Init(); err != nil {
			log.Printf("Audio: %v, continuing without sound", err)
		}
	}
	defer player.Close()

	renderer, err := render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, render.DefaultPalette())
	if err != nil {
		log.Fatal(err)
	}
	session, err := state.NewSession(tuning, renderer, player)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, session))
	app := &AppGame{
		stateMachine:   sm,
		session:        session,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Emitter Arena")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
