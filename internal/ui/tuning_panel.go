// internal/ui/tuning_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	PanelWidth      = 220.0
	sliderRowHeight = 34.0
	sliderTrackH    = 6.0
	sliderLabelGap  = 14.0 // от базовой линии подписи до дорожки
)

// Slider — одно настраиваемое значение, его границы и шаг
type Slider struct {
	Label    string
	Min, Max float64
	Step     float64
	Value    float64
}

// Nudge moves the value by steps*Step, snapped to the step grid and clamped
// to [Min, Max]. It reports whether the value changed.
func (s *Slider) Nudge(steps int) bool {
	v := s.Value + float64(steps)*s.Step
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Fraction — положение значения на дорожке, 0..1
func (s *Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// TuningPanel is a keyboard driven column of sliders. One slider is
// selected at a time; Adjust nudges only that one.
type TuningPanel struct {
	X, Y     float64
	Sliders  []Slider
	Selected int

	Track  color.RGBA
	Fill   color.RGBA
	Accent color.RGBA
	Text   color.RGBA
}

// Select сдвигает курсор на delta, по кругу
func (p *TuningPanel) Select(delta int) {
	n := len(p.Sliders)
	if n == 0 {
		return
	}
	p.Selected = ((p.Selected+delta)%n + n) % n
}

// Adjust nudges the selected slider and returns its index and whether the
// value changed.
func (p *TuningPanel) Adjust(steps int) (int, bool) {
	if steps == 0 || len(p.Sliders) == 0 {
		return p.Selected, false
	}
	return p.Selected, p.Sliders[p.Selected].Nudge(steps)
}

// Draw отрисовывает панель, левый верхний угол в (X, Y)
func (p *TuningPanel) Draw(screen *ebiten.Image, face font.Face) {
	for i := range p.Sliders {
		s := &p.Sliders[i]
		top := p.Y + float64(i)*sliderRowHeight
		clr := p.Text
		if i == p.Selected {
			clr = p.Accent
		}
		text.Draw(screen, fmt.Sprintf("%s  %.1f", s.Label, s.Value), face, int(p.X), int(top+sliderLabelGap), clr)

		trackY := float32(top + sliderLabelGap + 6)
		vector.DrawFilledRect(screen, float32(p.X), trackY, PanelWidth, sliderTrackH, p.Track, false)
		if f := s.Fraction(); f > 0 {
			vector.DrawFilledRect(screen, float32(p.X), trackY, float32(PanelWidth*f), sliderTrackH, p.Fill, false)
		}
		if i == p.Selected {
			vector.StrokeRect(screen, float32(p.X)-2, trackY-2, PanelWidth+4, sliderTrackH+4, 1, p.Accent, false)
		}
	}
}
