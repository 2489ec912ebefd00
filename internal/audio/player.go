// internal/audio/player.go
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-emitter-arena/internal/event"
	"go-emitter-arena/internal/utils"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cue sounds. It listens for event.AudioCue on a Dispatcher.
// Until Init succeeds sounds are only queued on the mixer, which is how
// tests and a muted game run.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *utils.PRNGService
	initialized bool
	played      map[event.CueKind]int
}

func NewPlayer(rng *utils.PRNGService) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rng:    rng,
		played: make(map[event.CueKind]int),
	}
}

// Init открывает аудиоустройство и запускает микшер
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Println("Audio: speaker initialized")
	return nil
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if e.Type != event.AudioCue {
		return
	}
	kind, ok := e.Data.(event.CueKind)
	if !ok {
		log.Printf("Audio: unexpected cue payload %T", e.Data)
		return
	}
	p.Play(kind)
}

// Play ставит звук kind в очередь микшера
func (p *Player) Play(kind event.CueKind) {
	s := Sound(kind, sampleRate, p.rng)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played[kind]++
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(s)
}

// Played — сколько раз звучал kind
func (p *Player) Played(kind event.CueKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[kind]
}

// Pending returns the number of sounds still on the mixer.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Close сбрасывает все звуки в очереди
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Clear()
}
