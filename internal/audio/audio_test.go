package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

// TestPlayerGracefulDegradation verifies cues are safe without an audio device.
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Play panicked without initialization: %v", r)
		}
	}()

	for cue := range Tones {
		p.Play(cue)
	}
	p.Play(jungle.Cue("unknown"))
	p.Close()

	if p.Enabled() {
		t.Error("uninitialized player reports enabled")
	}
}

// TestPlayerInitialization tolerates environments without audio devices.
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer(nil)

	if err := p.Initialize(); err != nil {
		t.Logf("Speaker initialization failed (expected without audio device): %v", err)
		return
	}
	if err := p.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	p.Play(jungle.CueJump)
	p.Close()
}

func TestToneLengthAndEnvelope(t *testing.T) {
	sr := beep.SampleRate(8000)

	for cue, tone := range Tones {
		t.Run(string(cue), func(t *testing.T) {
			g := NewToneGenerator(sr, tone)
			want := sr.N(tone.Duration)
			if g.Len() != want {
				t.Fatalf("Len() = %d, expected %d", g.Len(), want)
			}

			buf := make([][2]float64, 256)
			var all []float64
			for {
				n, ok := g.Stream(buf)
				if !ok {
					break
				}
				for i := range n {
					all = append(all, buf[i][0])
					if buf[i][0] != buf[i][1] {
						t.Fatal("channels differ")
					}
				}
			}
			if len(all) != want {
				t.Fatalf("streamed %d samples, expected %d", len(all), want)
			}

			peak := 0.0
			for _, v := range all {
				peak = math.Max(peak, math.Abs(v))
			}
			if peak > tone.Gain+1e-9 {
				t.Errorf("peak %v exceeds gain %v", peak, tone.Gain)
			}

			// the tail has decayed close to the 0.01 floor
			tail := 0.0
			for _, v := range all[len(all)*9/10:] {
				tail = math.Max(tail, math.Abs(v))
			}
			if tail > 0.02 {
				t.Errorf("tail amplitude %v, expected decay towards 0.01", tail)
			}
		})
	}
}

func TestToneFrequency(t *testing.T) {
	sr := beep.SampleRate(44100)
	tone := Tone{Freq: 220, Gain: 0.3, Duration: time.Second}
	g := NewToneGenerator(sr, tone)

	buf := make([][2]float64, sr.N(time.Second))
	n, _ := g.Stream(buf)

	crossings := 0
	for i := 1; i < n; i++ {
		if buf[i-1][0] < 0 && buf[i][0] >= 0 {
			crossings++
		}
	}
	if crossings < 215 || crossings > 225 {
		t.Errorf("upward zero crossings = %d, expected about 220", crossings)
	}
}

func TestEveryCueHasATone(t *testing.T) {
	for _, cue := range []jungle.Cue{jungle.CueJump, jungle.CueCollect, jungle.CueHit} {
		if _, ok := Tones[cue]; !ok {
			t.Errorf("cue %q has no tone", cue)
		}
	}
}
