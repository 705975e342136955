package audio

import (
	"math"
	"math/rand"
	"time"
)

type waveform int

const (
	waveSine waveform = iota
	waveSquare
)

func sample(w waveform, phase float64) float64 {
	if w == waveSquare {
		if phase < 0.5 {
			return 0.6
		}
		return -0.6
	}
	return math.Sin(2 * math.Pi * phase)
}

// melody plays a fixed note sequence, optionally forever.
type melody struct {
	notes   []float64
	noteLen int
	wave    waveform
	loop    bool

	note  int
	pos   int
	phase float64
}

func newMelody(notes []float64, noteLen time.Duration, wave waveform, loop bool) *melody {
	return &melody{
		notes:   notes,
		noteLen: sampleRate.N(noteLen),
		wave:    wave,
		loop:    loop,
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.note >= len(m.notes) {
			if !m.loop || len(m.notes) == 0 {
				return i, i > 0
			}
			m.note = 0
		}

		// Short linear fade at both ends of a note avoids clicks.
		env := 1.0
		edge := m.noteLen / 20
		if edge > 0 {
			if m.pos < edge {
				env = float64(m.pos) / float64(edge)
			} else if m.noteLen-m.pos < edge {
				env = float64(m.noteLen-m.pos) / float64(edge)
			}
		}

		v := sample(m.wave, m.phase) * env
		samples[i][0] = v
		samples[i][1] = v

		m.phase += m.notes[m.note] / float64(sampleRate)
		m.phase -= math.Floor(m.phase)
		m.pos++
		if m.pos >= m.noteLen {
			m.pos = 0
			m.note++
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// sweep glides from one frequency to another over a fixed duration.
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, total: sampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		v := sample(waveSquare, s.phase) * (1 - t)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is endless white noise; wrap it in beep.Take.
type noise struct {
	rng *rand.Rand
}

func newNoise(rng *rand.Rand) *noise {
	return &noise{rng: rng}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := (n.rng.Float64()*2 - 1) * 0.3
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }
