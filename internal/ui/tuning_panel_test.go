package ui

import "testing"

func TestSlider_Nudge(t *testing.T) {
	tests := []struct {
		name    string
		slider  Slider
		steps   int
		want    float64
		changed bool
	}{
		{"up one step", Slider{Min: 10, Max: 500, Step: 10, Value: 50}, 1, 60, true},
		{"down two steps", Slider{Min: 10, Max: 500, Step: 10, Value: 50}, -2, 30, true},
		{"clamped at max", Slider{Min: 0, Max: 10, Step: 0.5, Value: 9.5}, 3, 10, true},
		{"stuck at min", Slider{Min: 0.1, Max: 10, Step: 0.1, Value: 0.1}, -1, 0.1, false},
		{"snapped to grid", Slider{Min: 0, Max: 10, Step: 0.5, Value: 3.2}, 1, 3.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.slider
			changed := s.Nudge(tt.steps)
			if changed != tt.changed {
				t.Errorf("Nudge() changed = %v, want %v", changed, tt.changed)
			}
			if diff := s.Value - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Value = %v, want %v", s.Value, tt.want)
			}
		})
	}
}

func TestSlider_Fraction(t *testing.T) {
	s := Slider{Min: 10, Max: 20, Value: 15}
	if got := s.Fraction(); got != 0.5 {
		t.Errorf("Fraction() = %v, want 0.5", got)
	}
	empty := Slider{Min: 1, Max: 1, Value: 1}
	if got := empty.Fraction(); got != 0 {
		t.Errorf("Fraction() on empty range = %v, want 0", got)
	}
}

func TestTuningPanel_SelectWraps(t *testing.T) {
	p := &TuningPanel{Sliders: make([]Slider, 3)}
	steps := []struct {
		delta int
		want  int
	}{
		{1, 1},
		{1, 2},
		{1, 0},
		{-1, 2},
		{-4, 1},
	}
	for _, s := range steps {
		p.Select(s.delta)
		if p.Selected != s.want {
			t.Fatalf("Select(%d): Selected = %d, want %d", s.delta, p.Selected, s.want)
		}
	}
}

func TestTuningPanel_AdjustSelectedOnly(t *testing.T) {
	p := &TuningPanel{Sliders: []Slider{
		{Label: "a", Min: 0, Max: 10, Step: 1, Value: 5},
		{Label: "b", Min: 0, Max: 10, Step: 1, Value: 5},
	}}
	p.Select(1)

	if i, ok := p.Adjust(0); ok || i != 1 {
		t.Errorf("Adjust(0) = (%d, %v), want (1, false)", i, ok)
	}
	i, ok := p.Adjust(-2)
	if !ok || i != 1 {
		t.Fatalf("Adjust(-2) = (%d, %v), want (1, true)", i, ok)
	}
	if p.Sliders[0].Value != 5 || p.Sliders[1].Value != 3 {
		t.Errorf("values = %v, %v, want 5, 3", p.Sliders[0].Value, p.Sliders[1].Value)
	}
}
