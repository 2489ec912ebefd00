package audio

import (
	"time"

	"github.com/gopxl/beep"

	"go-emitter-arena/internal/event"
	"go-emitter-arena/internal/utils"
)

const (
	fireDuration    = 60 * time.Millisecond
	explodeDuration = 250 * time.Millisecond
	noteDuration    = 140 * time.Millisecond
	attack          = 5 * time.Millisecond
	release         = 40 * time.Millisecond
)

// Sound builds the streamer for one cue. Unknown cues return nil.
func Sound(kind event.CueKind, rate beep.SampleRate, rng *utils.PRNGService) beep.Streamer {
	switch kind {
	case event.CueFire:
		osc := NewTone(880, fireDuration, WaveSquare, rate, nil)
		return withVolume(NewEnvelope(osc, fireDuration, attack, release, rate), 0.25)
	case event.CueExplode:
		noise := NewTone(0, explodeDuration, WaveNoise, rate, rng)
		return withVolume(NewEnvelope(noise, explodeDuration, attack, explodeDuration/2, rate), 0.5)
	case event.CueDefeat:
		return melody(rate, WaveSaw, 392, 330, 262, 196)
	case event.CueVictory:
		return melody(rate, WaveSine, 523.25, 659.25, 783.99, 1046.5)
	}
	return nil
}

// melody — ноты одна за другой
func melody(rate beep.SampleRate, wave Wave, notes ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewTone(f, noteDuration, wave, rate, nil)
		parts = append(parts, NewEnvelope(osc, noteDuration, attack, release, rate))
	}
	return withVolume(beep.Seq(parts...), 0.4)
}
