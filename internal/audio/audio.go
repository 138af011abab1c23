// Package audio plays the game's sound cues as short synthesized tones.
// Audio is optional: when no output device is available every call is a no-op.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 50 * time.Millisecond
)

// Tone describes one cue: a sine wave whose gain falls exponentially to
// 0.01 over its duration.
type Tone struct {
	Freq     float64
	Gain     float64
	Duration time.Duration
}

// Tones maps every cue to its sound.
var Tones = map[jungle.Cue]Tone{
	jungle.CueJump:    {Freq: 523.25, Gain: 0.1, Duration: 200 * time.Millisecond}, // C5
	jungle.CueCollect: {Freq: 659.25, Gain: 0.2, Duration: 100 * time.Millisecond}, // E5
	jungle.CueHit:     {Freq: 220, Gain: 0.3, Duration: 300 * time.Millisecond},    // A3
}

// Player plays cues through the system speaker. It implements jungle.CuePlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a player. Call Initialize before cues become audible.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts the tone for c and returns immediately.
func (p *Player) Play(c jungle.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, ok := Tones[c]
	if !ok {
		p.logger.Debug("unknown cue", "cue", c)
		return
	}

	speaker.Lock()
	p.mixer.Add(NewToneGenerator(sampleRate, tone))
	speaker.Unlock()
}

// Close silences the player. The speaker itself stays open for the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ToneGenerator streams a single decaying sine tone.
type ToneGenerator struct {
	sr    beep.SampleRate
	tone  Tone
	total int
	pos   int
	decay float64 // per-second exponent reaching 0.01 of the gain at the end
}

// NewToneGenerator creates a generator for tone at sample rate sr.
func NewToneGenerator(sr beep.SampleRate, tone Tone) *ToneGenerator {
	total := sr.N(tone.Duration)
	decay := 0.0
	if secs := tone.Duration.Seconds(); secs > 0 && tone.Gain > 0.01 {
		decay = math.Log(tone.Gain/0.01) / secs
	}
	return &ToneGenerator{sr: sr, tone: tone, total: total, decay: decay}
}

// Len returns the total number of samples the tone produces.
func (g *ToneGenerator) Len() int {
	return g.total
}

// Stream fills samples and reports false once the tone has ended.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		v := g.tone.Gain * math.Exp(-g.decay*t) * math.Sin(2*math.Pi*g.tone.Freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
		n++
	}
	return n, true
}

// Err always returns nil.
func (g *ToneGenerator) Err() error {
	return nil
}

var _ jungle.CuePlayer = (*Player)(nil)
