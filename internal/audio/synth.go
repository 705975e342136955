package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Config controls the synthesizer.
type Config struct {
	Volume float64 // Linear gain in (0, 1]
}

// DefaultConfig returns a quiet default mix.
func DefaultConfig() Config {
	return Config{Volume: 0.25}
}

// Synth is a Player backed by the system speaker through beep. Every track
// is generated on the fly so no assets ship with the binary.
type Synth struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	ambience    map[Ambience]*beep.Ctrl
	initialized bool
}

// NewSynth creates a synthesizer. Call Init before playing anything.
func NewSynth(cfg Config) *Synth {
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = DefaultConfig().Volume
	}
	return &Synth{
		cfg:      cfg,
		mixer:    &beep.Mixer{},
		ambience: make(map[Ambience]*beep.Ctrl),
	}
}

// Init opens the speaker. When no audio device is available the error is
// returned and the synth stays silent.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close silences everything.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	for a, ctrl := range s.ambience {
		ctrl.Paused = true
		delete(s.ambience, a)
	}
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// PlayAmbience starts a looping track. A track that is already playing is
// restarted with the new pitch.
func (s *Synth) PlayAmbience(a Ambience, pitch float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if pitch <= 0 {
		pitch = 1
	}

	speaker.Lock()
	defer speaker.Unlock()

	if old, ok := s.ambience[a]; ok {
		old.Paused = true
	}
	var src beep.Streamer = ambienceTrack(a)
	if pitch != 1 {
		src = beep.ResampleRatio(resampleQuality, pitch, src)
	}
	ctrl := &beep.Ctrl{Streamer: s.volume(src)}
	s.ambience[a] = ctrl
	s.mixer.Add(ctrl)
}

// StopAmbience stops a looping track if it is playing.
func (s *Synth) StopAmbience(a Ambience) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctrl, ok := s.ambience[a]
	if !ok {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	// Dropping the streamer lets the mixer release it.
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(s.ambience, a)
}

// PlayOneShot plays a short effect over the current mix.
func (s *Synth) PlayOneShot(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(s.volume(oneShot(snd)))
	speaker.Unlock()
}

func (s *Synth) volume(src beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: src, Base: 2, Volume: math.Log2(s.cfg.Volume)}
}

var _ Player = (*Synth)(nil)

// ambienceTrack returns an endless arpeggio for the given ambience.
func ambienceTrack(a Ambience) beep.Streamer {
	switch a {
	case AmbienceGameplay:
		// A minor pulse, brisk
		return newMelody([]float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}, 140*time.Millisecond, waveSquare, true)
	default:
		// C major, slow and soft
		return newMelody([]float64{261.63, 329.63, 392, 523.25, 392, 329.63}, 320*time.Millisecond, waveSine, true)
	}
}

// oneShot returns a finite effect.
func oneShot(snd Sound) beep.Streamer {
	switch snd {
	case SoundDeath:
		return beep.Seq(
			newSweep(880, 110, 450*time.Millisecond),
			beep.Take(sampleRate.N(250*time.Millisecond), newNoise(rand.New(rand.NewSource(1)))),
		)
	default:
		return newMelody([]float64{523.25, 659.25, 783.99, 1046.5}, 90*time.Millisecond, waveSquare, false)
	}
}
