package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Tuning holds the values exposed as sliders and toggles.
// They can be changed at runtime through the Game setters; LoadTuning only
// provides the starting point.
type Tuning struct {
	PlayerRate  float64 // выстрелов в секунду
	PlayerSpeed float64

	LeftRate        float64
	LeftLifespanS   float64
	LeftFireSpeed   float64
	RightRate       float64
	RightLifespanS  float64
	RightFireSpeed  float64
	BodyRadiusScale float64

	Pattern     string // "", "parabola" or "sine"
	CircleForce bool

	Seed    int64
	Audio   bool
	Profile string // "", "cpu" or "mem"
}

// Range describes the bounds of one tunable value. The tuning panel uses the
// same bounds for its sliders.
type Range struct {
	Min, Max float64
}

var (
	PlayerRateRange  = Range{7, 20}
	PlayerSpeedRange = Range{0.1, 10}
	FireSpeedRange   = Range{10, 500}
	RateRange        = Range{0, 10}
	LifespanRange    = Range{0.1, 10} // секунды
	RadiusScaleRange = Range{0.1, 4}
)

// DefaultTuning — стартовые значения слайдеров и переключателей
func DefaultTuning() Tuning {
	return Tuning{
		PlayerRate:      7,
		PlayerSpeed:     3,
		LeftRate:        AdversaryRate,
		LeftLifespanS:   10,
		LeftFireSpeed:   AdversaryFireSpeed,
		RightRate:       AdversaryRate,
		RightLifespanS:  10,
		RightFireSpeed:  AdversaryFireSpeed,
		BodyRadiusScale: 1.0,
		Audio:           true,
	}
}

// LoadTuning reads an optional .env file and then ARENA_* variables from the
// environment. Values outside their slider range are clamped and logged.
func LoadTuning(files ...string) Tuning {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: failed to load env file: %v", err)
	}

	t := DefaultTuning()
	t.PlayerRate = envFloat("ARENA_PLAYER_RATE", t.PlayerRate, PlayerRateRange)
	t.PlayerSpeed = envFloat("ARENA_PLAYER_SPEED", t.PlayerSpeed, PlayerSpeedRange)
	t.LeftRate = envFloat("ARENA_LEFT_RATE", t.LeftRate, RateRange)
	t.LeftLifespanS = envFloat("ARENA_LEFT_LIFESPAN", t.LeftLifespanS, LifespanRange)
	t.LeftFireSpeed = envFloat("ARENA_LEFT_FIRE_SPEED", t.LeftFireSpeed, FireSpeedRange)
	t.RightRate = envFloat("ARENA_RIGHT_RATE", t.RightRate, RateRange)
	t.RightLifespanS = envFloat("ARENA_RIGHT_LIFESPAN", t.RightLifespanS, LifespanRange)
	t.RightFireSpeed = envFloat("ARENA_RIGHT_FIRE_SPEED", t.RightFireSpeed, FireSpeedRange)
	t.BodyRadiusScale = envFloat("ARENA_BODY_RADIUS_SCALE", t.BodyRadiusScale, RadiusScaleRange)
	t.CircleForce = envBool("ARENA_CIRCLE_FORCE", t.CircleForce)
	t.Audio = envBool("ARENA_AUDIO", t.Audio)
	t.Pattern = strings.ToLower(strings.TrimSpace(os.Getenv("ARENA_PATTERN")))
	t.Profile = strings.ToLower(strings.TrimSpace(os.Getenv("ARENA_PROFILE")))

	if raw := os.Getenv("ARENA_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("Config: ARENA_SEED=%q is not an integer, using random seed", raw)
		} else {
			t.Seed = seed
		}
	}
	return t
}

// Clamp helpers bound values coming from runtime controls the same way
// LoadTuning bounds values coming from the environment.
func ClampRate(v float64) float64        { return RateRange.Clamp(v) }
func ClampLifespan(v float64) float64    { return LifespanRange.Clamp(v) }
func ClampFireSpeed(v float64) float64   { return FireSpeedRange.Clamp(v) }
func ClampPlayerRate(v float64) float64  { return PlayerRateRange.Clamp(v) }
func ClampPlayerSpeed(v float64) float64 { return PlayerSpeedRange.Clamp(v) }
func ClampRadiusScale(v float64) float64 { return RadiusScaleRange.Clamp(v) }

// Clamp ограничивает v диапазоном [Min, Max]
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func envFloat(key string, def float64, r Range) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Printf("Config: %s=%q is not a number, keeping %.2f", key, raw, def)
		return def
	}
	clamped := r.Clamp(v)
	if clamped != v {
		log.Printf("Config: %s=%.2f out of range [%.2f, %.2f], clamped to %.2f", key, v, r.Min, r.Max, clamped)
	}
	return clamped
}

func envBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Config: %s=%q is not a boolean, keeping %t", key, raw, def)
		return def
	}
	return v
}
