package icefall

import "sync/atomic"

// Phase is the top-level state of a session.
type Phase int32

const (
	PhaseIntro Phase = iota
	PhaseGameplay
	PhasePostRound
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseGameplay:
		return "gameplay"
	case PhasePostRound:
		return "postround"
	default:
		return "unknown"
	}
}

// Session is the state shared between the loop, the spawner and the
// collision check. Only the loop mutates phase, mode and round timing.
// The hit flag may be reported from any goroutine.
type Session struct {
	phase     atomic.Int32
	playerHit atomic.Bool

	turbo          bool
	now            float64 // Unscaled seconds since the session started
	startTime      float64
	score          float64
	playerX        float64
	timeScale      float64
	milestoneIndex int
}

// NewSession creates a session on the intro screen.
func NewSession() *Session {
	return &Session{timeScale: 1}
}

func (s *Session) Phase() Phase { return Phase(s.phase.Load()) }
func (s *Session) Turbo() bool { return s.turbo }
func (s *Session) Now() float64 { return s.now }
func (s *Session) Score() float64 { return s.score }
func (s *Session) PlayerHit() bool { return s.playerHit.Load() }
func (s *Session) PlayerX() float64 { return s.playerX }
func (s *Session) TimeScale() float64 { return s.timeScale }
func (s *Session) MilestoneIndex() int { return s.milestoneIndex }
func (s *Session) SetPlayerX(x float64) { s.playerX = x }
func (s *Session) Advance(dtSeconds float64) { s.now += dtSeconds }

// Elapsed returns the unscaled seconds since the current round started.
func (s *Session) Elapsed() float64 {
	return s.now - s.startTime
}

// ReportHit marks the player as hit. It returns true only for the first
// report of a round; reports outside gameplay are ignored.
func (s *Session) ReportHit() bool {
	if s.Phase() != PhaseGameplay {
		return false
	}
	return s.playerHit.CompareAndSwap(false, true)
}

func (s *Session) setPhase(p Phase) { s.phase.Store(int32(p)) }

func (s *Session) setTurbo(turbo bool) { s.turbo = turbo }

// beginRound resets per-round state at gameplay entry.
func (s *Session) beginRound(timeScale float64) {
	s.milestoneIndex = 0
	s.playerHit.Store(false)
	s.startTime = s.now
	s.timeScale = timeScale
}

// recordScore freezes the score at the current elapsed time.
func (s *Session) recordScore() float64 {
	s.score = s.Elapsed()
	return s.score
}
