// Package sound plays short synthesized cues through the system speaker.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dodge-blocks/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue describes one tone.
type Cue struct {
	Freq     float64       // Start frequency in Hz
	Slide    float64       // Frequency change over the whole cue in Hz
	Duration time.Duration // Length of the tone
	Volume   float64       // Peak amplitude, 0..1
}

// Default cues per event.
var (
	CueRecycled = Cue{Freq: 880, Duration: 40 * time.Millisecond, Volume: 0.08}
	CueLevelUp  = Cue{Freq: 520, Slide: 520, Duration: 180 * time.Millisecond, Volume: 0.15}
	CueGameOver = Cue{Freq: 220, Slide: -140, Duration: 450 * time.Millisecond, Volume: 0.2}
	CueStarted  = Cue{Freq: 660, Duration: 90 * time.Millisecond, Volume: 0.12}
)

// CueFor picks the most significant cue for a tick's events.
func CueFor(events core.Event) (Cue, bool) {
	switch {
	case events.Has(core.EventGameOver):
		return CueGameOver, true
	case events.Has(core.EventLevelUp):
		return CueLevelUp, true
	case events.Has(core.EventStarted):
		return CueStarted, true
	case events.Has(core.EventRecycled):
		return CueRecycled, true
	default:
		return Cue{}, false
	}
}

// Player mixes cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the cue for the tick's events, if any.
func (p *Player) Play(events core.Event) {
	cue, ok := CueFor(events)
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	p.mixer.Add(NewTone(sampleRate, cue))
	speaker.Unlock()
}

// Close silences all cues and closes the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Tone is a finite sine sweep with a linear fade-out.
type Tone struct {
	sr    beep.SampleRate
	cue   Cue
	total int
	pos   int
	phase float64
}

// NewTone creates a streamer for the cue.
func NewTone(sr beep.SampleRate, cue Cue) *Tone {
	return &Tone{
		sr:    sr,
		cue:   cue,
		total: sr.N(cue.Duration),
	}
}

// Stream fills samples until the cue is over.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.cue.Freq + t.cue.Slide*progress
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		sample := t.cue.Volume * (1 - progress) * math.Sin(t.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tone) Err() error {
	return nil
}

// Len returns the length of the cue in samples.
func (t *Tone) Len() int {
	return t.total
}
