package state

import (
	"log"

	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/ui"
)

// Порядок слайдеров на панели.
const (
	sliderPlayerRate = iota
	sliderPlayerSpeed
	sliderLeftRate
	sliderLeftLifespan
	sliderLeftFireSpeed
	sliderRightRate
	sliderRightLifespan
	sliderRightFireSpeed
	sliderRadiusScale
)

const panelMargin = 10.0

func newTuningPanel(t config.Tuning) *ui.TuningPanel {
	slider := func(label string, r config.Range, step, value float64) ui.Slider {
		return ui.Slider{Label: label, Min: r.Min, Max: r.Max, Step: step, Value: value}
	}
	return &ui.TuningPanel{
		X: config.ScreenWidth - ui.PanelWidth - panelMargin,
		Y: panelMargin,
		Sliders: []ui.Slider{
			sliderPlayerRate:     slider("player rate", config.PlayerRateRange, 1, t.PlayerRate),
			sliderPlayerSpeed:    slider("player speed", config.PlayerSpeedRange, 0.1, t.PlayerSpeed),
			sliderLeftRate:       slider("left rate", config.RateRange, 0.5, t.LeftRate),
			sliderLeftLifespan:   slider("left lifespan", config.LifespanRange, 0.5, t.LeftLifespanS),
			sliderLeftFireSpeed:  slider("left fire speed", config.FireSpeedRange, 10, t.LeftFireSpeed),
			sliderRightRate:      slider("right rate", config.RateRange, 0.5, t.RightRate),
			sliderRightLifespan:  slider("right lifespan", config.LifespanRange, 0.5, t.RightLifespanS),
			sliderRightFireSpeed: slider("right fire speed", config.FireSpeedRange, 10, t.RightFireSpeed),
			sliderRadiusScale:    slider("body radius", config.RadiusScaleRange, 0.1, t.BodyRadiusScale),
		},
		Track:  config.EndScreenDimColor,
		Fill:   config.PlayerColor,
		Accent: config.PlayerShotColor,
		Text:   config.TextLightColor,
	}
}

// applySlider pushes a slider value into the running game and into Tuning,
// so a restarted run keeps it.
func (s *Session) applySlider(i int, v float64) {
	g := s.Game
	switch i {
	case sliderPlayerRate:
		s.Tuning.PlayerRate = v
		g.SetPlayerRate(v)
	case sliderPlayerSpeed:
		s.Tuning.PlayerSpeed = v
		g.SetPlayerSpeed(v)
	case sliderLeftRate:
		s.Tuning.LeftRate = v
		g.SetAdversaryRate(component.LeftAdversary, v)
	case sliderLeftLifespan:
		s.Tuning.LeftLifespanS = v
		g.SetAdversaryLifespan(component.LeftAdversary, v)
	case sliderLeftFireSpeed:
		s.Tuning.LeftFireSpeed = v
		g.SetAdversaryFireSpeed(component.LeftAdversary, v)
	case sliderRightRate:
		s.Tuning.RightRate = v
		g.SetAdversaryRate(component.RightAdversary, v)
	case sliderRightLifespan:
		s.Tuning.RightLifespanS = v
		g.SetAdversaryLifespan(component.RightAdversary, v)
	case sliderRightFireSpeed:
		s.Tuning.RightFireSpeed = v
		g.SetAdversaryFireSpeed(component.RightAdversary, v)
	case sliderRadiusScale:
		s.Tuning.BodyRadiusScale = v
		g.SetBodyRadiusScale(v)
	default:
		log.Printf("State: unknown slider %d", i)
	}
}
