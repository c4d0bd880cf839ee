// Package audio plays short synthesized cues for match events
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue frequencies in Hz
const (
	hitBaseFreq   = 520.0
	hitFreqPerV   = 30.0
	serveFreq     = 660.0
	netTapeFreq   = 180.0
	netBodyFreq   = 110.0
	pointWinFreq  = 784.0
	pointLoseFreq = 330.0
)

// SoundManager owns the speaker and mixes every cue into one stream
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker, a second call is a no-op
// Failure leaves the manager silent, every Play call then returns immediately
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) Name() string { return "audio" }

func (sm *SoundManager) Dependencies() []string { return nil }

// Optional marks audio as non-fatal, the game runs silent without a device
func (sm *SoundManager) Optional() bool { return true }

func (sm *SoundManager) Start(context.Context) error {
	return sm.Initialize()
}

func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}

// PlayHit plays a racket tick, pitched up with launch speed
func (sm *SoundManager) PlayHit(speed float64, serve bool) {
	freq := hitBaseFreq + hitFreqPerV*speed
	if serve {
		freq = serveFreq
	}
	sm.play(tone(freq, 40*time.Millisecond))
}

// PlayNet plays a low buzz, shorter for a tape clip
func (sm *SoundManager) PlayNet(tape bool) {
	if tape {
		sm.play(beep.Take(sampleRate.N(80*time.Millisecond), NewBuzzGenerator(sampleRate, netTapeFreq)))
		return
	}
	sm.play(beep.Take(sampleRate.N(160*time.Millisecond), NewBuzzGenerator(sampleRate, netBodyFreq)))
}

// PlayPoint plays a rising pair for a human point and a falling pair otherwise
func (sm *SoundManager) PlayPoint(humanWon bool) {
	if humanWon {
		sm.play(chime(60*time.Millisecond, pointLoseFreq, pointWinFreq))
		return
	}
	sm.play(chime(60*time.Millisecond, pointWinFreq, pointLoseFreq))
}

// PlayMatchOver plays a short arpeggio, major for a human win
func (sm *SoundManager) PlayMatchOver(humanWon bool) {
	if humanWon {
		sm.play(chime(90*time.Millisecond, 523.25, 659.25, 783.99, 1046.5))
		return
	}
	sm.play(chime(90*time.Millisecond, 523.25, 466.16, 392.0, 261.63))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(&effects.Gain{Streamer: s, Gain: sm.volume - 1})
	speaker.Unlock()
}

// tone is a fixed-length sine, nil if the generator rejects the frequency
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}

// chime plays the given notes back to back
func chime(step time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		if t := tone(f, step); t != nil {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return beep.Seq(parts...)
}
