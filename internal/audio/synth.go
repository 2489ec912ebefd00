// internal/audio/synth.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"go-emitter-arena/internal/utils"
)

// Wave — форма волны генератора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone — осциллятор фиксированной длины
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *utils.PRNGService
}

// NewTone returns a streamer that plays freq for d and then ends. rng is
// only read for WaveNoise and may be nil for the other waves.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, rng *utils.PRNGService) beep.Streamer {
	return &tone{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		rng:    rng,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}
		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			if o.rng != nil {
				val = o.rng.Range(-1, 1)
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// envelope — плавное нарастание за attack и затухание за release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		e.position++
		vol := e.gain(e.position - 1)
		samples[i][0] *= vol
		samples[i][1] *= vol
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	if pos >= e.total {
		return 0
	}
	if e.attack > 0 && pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	releaseStart := e.total - e.release
	if e.release > 0 && pos >= releaseStart {
		return float64(e.total-pos) / float64(e.release)
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume линейно масштабирует громкость, vol <= 0 — тишина
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
