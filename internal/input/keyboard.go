// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poll опрашивает клавиатуру для текущего кадра
//
//	стрелки  движение игрока      , .  поворот
//	пробел   огонь / старт        w s  тяга правого противника
//	p        следующий паттерн    c    круговая сила
//	h        скрыть HUD           r    новая партия
//	F9       пауза                Esc  выход
//	[ ]      выбор слайдера       - =  изменить значение
func Poll() Controls {
	keys := Keys{
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		RotateLeft:  ebiten.IsKeyPressed(ebiten.KeyComma),
		RotateRight: ebiten.IsKeyPressed(ebiten.KeyPeriod),
	}

	c := Controls{
		Direction:    Resolve(keys),
		Fire:         ebiten.IsKeyPressed(ebiten.KeySpace),
		Thrust:       float64(axis(ebiten.IsKeyPressed(ebiten.KeyW), ebiten.IsKeyPressed(ebiten.KeyS))),
		Start:        inpututil.IsKeyJustReleased(ebiten.KeySpace),
		Restart:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleHUD:    inpututil.IsKeyJustPressed(ebiten.KeyH),
		CyclePattern: inpututil.IsKeyJustPressed(ebiten.KeyP),
		ToggleOrbit:  inpututil.IsKeyJustPressed(ebiten.KeyC),
		Pause:        inpututil.IsKeyJustPressed(ebiten.KeyF9),
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		SelectSlider: axis(repeated(ebiten.KeyBracketLeft), repeated(ebiten.KeyBracketRight)),
		AdjustSlider: axis(repeated(ebiten.KeyMinus), repeated(ebiten.KeyEqual)),
	}
	return c
}

// Автоповтор для удерживаемых клавиш, в тиках.
const (
	keyRepeatDelay    = 20
	keyRepeatInterval = 4
)

// repeated is true on the first tick of a press and then every
// keyRepeatInterval ticks once the key has been held for keyRepeatDelay.
func repeated(k ebiten.Key) bool {
	return RepeatTick(inpututil.KeyPressDuration(k))
}

// RepeatTick reports whether a key held for d ticks fires on this tick.
func RepeatTick(d int) bool {
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
