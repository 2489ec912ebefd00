package component

// Direction is the player's movement intent, resolved from held keys.
type Direction int

const (
	Idle Direction = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	MoveUpLeft
	MoveUpRight
	MoveDownLeft
	MoveDownRight
	RotateLeft
	RotateRight
)

// Axes returns the heading and lateral multipliers for a movement direction.
// Rotations and Idle have no linear component.
func (d Direction) Axes() (heading, lateral float64) {
	switch d {
	case MoveUp:
		return 1, 0
	case MoveDown:
		return -1, 0
	case MoveLeft:
		return 0, -1
	case MoveRight:
		return 0, 1
	case MoveUpLeft:
		return 1, -1
	case MoveUpRight:
		return 1, 1
	case MoveDownLeft:
		return -1, -1
	case MoveDownRight:
		return -1, 1
	}
	return 0, 0
}

// IsMove — даёт ли направление линейную силу
func (d Direction) IsMove() bool {
	return d >= MoveUp && d <= MoveDownRight
}

func (d Direction) String() string {
	switch d {
	case Idle:
		return "idle"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUpLeft:
		return "up-left"
	case MoveUpRight:
		return "up-right"
	case MoveDownLeft:
		return "down-left"
	case MoveDownRight:
		return "down-right"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	}
	return "unknown"
}
