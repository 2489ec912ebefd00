package component

// BodyID identifies one of the three physical bodies in the arena.
type BodyID int

const (
	Player BodyID = iota
	LeftAdversary
	RightAdversary
)

// Adversaries — автономные тела в порядке проверки столкновений
var Adversaries = [...]BodyID{LeftAdversary, RightAdversary}

func (b BodyID) String() string {
	switch b {
	case Player:
		return "player"
	case LeftAdversary:
		return "left"
	case RightAdversary:
		return "right"
	}
	return "unknown"
}
