// internal/input/input.go
package input

import "go-emitter-arena/internal/component"

// Keys — клавиши движения, зажатые в текущем кадре
type Keys struct {
	Up, Down, Left, Right   bool
	RotateLeft, RotateRight bool
}

// Resolve maps held keys to one Direction. Rotation wins over movement,
// opposite keys cancel out and a vertical key combines with a horizontal one
// into a diagonal.
func Resolve(k Keys) component.Direction {
	switch {
	case k.RotateLeft && !k.RotateRight:
		return component.RotateLeft
	case k.RotateRight && !k.RotateLeft:
		return component.RotateRight
	}

	v := axis(k.Up, k.Down)
	h := axis(k.Left, k.Right)
	switch {
	case v < 0 && h < 0:
		return component.MoveUpLeft
	case v < 0 && h > 0:
		return component.MoveUpRight
	case v > 0 && h < 0:
		return component.MoveDownLeft
	case v > 0 && h > 0:
		return component.MoveDownRight
	case v < 0:
		return component.MoveUp
	case v > 0:
		return component.MoveDown
	case h < 0:
		return component.MoveLeft
	case h > 0:
		return component.MoveRight
	}
	return component.Idle
}

func axis(neg, pos bool) int {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}

// Controls is everything the player asked for in one frame.
type Controls struct {
	Direction component.Direction
	Fire      bool
	// тяга правого противника: -1 вверх, +1 вниз, 0 отпущено
	Thrust float64
	// SelectSlider moves the tuning panel cursor, AdjustSlider nudges the
	// selected slider. Both are -1, 0 or +1 per frame.
	SelectSlider int
	AdjustSlider int

	// одноразовые нажатия
	Start        bool
	Restart      bool
	ToggleHUD    bool
	CyclePattern bool
	ToggleOrbit  bool
	Pause        bool
	Quit         bool
}

// NextPattern — следующий паттерн после p, по кругу
func NextPattern(p component.Pattern) component.Pattern {
	switch p {
	case component.PatternNone:
		return component.PatternParabola
	case component.PatternParabola:
		return component.PatternSine
	}
	return component.PatternNone
}
