package component

// Phase — фаза партии.
type Phase int

const (
	StartPhase Phase = iota
	PlayingPhase
	DefeatPhase
	VictoryPhase
)

// Finished — закончилась ли партия
func (p Phase) Finished() bool {
	return p == DefeatPhase || p == VictoryPhase
}

func (p Phase) String() string {
	switch p {
	case StartPhase:
		return "start"
	case PlayingPhase:
		return "playing"
	case DefeatPhase:
		return "defeat"
	case VictoryPhase:
		return "victory"
	}
	return "unknown"
}

// Pattern selects an extra path applied to adversary projectiles.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternParabola
	PatternSine
)

func (p Pattern) String() string {
	switch p {
	case PatternParabola:
		return "parabola"
	case PatternSine:
		return "sine"
	}
	return "none"
}

// ParsePattern maps a config string to a Pattern, unknown values are PatternNone.
func ParsePattern(s string) Pattern {
	switch s {
	case "parabola":
		return PatternParabola
	case "sine":
		return PatternSine
	}
	return PatternNone
}
