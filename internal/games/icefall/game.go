// Package icefall implements a survival game: a penguin dodges icicles that
// fall in trails at an ever faster cadence, and the score is the time
// survived.
package icefall

import (
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/icefall/internal/audio"
	"github.com/vovakirdan/icefall/internal/config"
	"github.com/vovakirdan/icefall/internal/core"
	"github.com/vovakirdan/icefall/internal/registry"
	"github.com/vovakirdan/icefall/internal/storage"
)

// GameID keys scores and the high score in storage.
const GameID = "icefall"

var (
	configMu   sync.RWMutex
	gameConfig = config.DefaultIcefallConfig()
)

// SetConfig installs the configuration used by every following Reset. The
// platform resolves and validates it once at startup (see config.Resolve).
func SetConfig(cfg config.IcefallConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	gameConfig = cfg
}

func currentConfig() config.IcefallConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return gameConfig
}

// Game adapts the session, loop, spawner and collision check to the
// registry.Game interface.
type Game struct {
	svc     registry.Services
	runtime core.RuntimeConfig
	cfg     config.IcefallConfig

	session   *Session
	sched     *core.Scheduler
	spawner   *Spawner
	collision *Collision
	loop      *Loop
	hud       *HUD

	scores HighScores
	rounds RoundRecorder
	paused bool
}

// New creates a game. It must be Reset before the first Step.
func New(svc registry.Services) *Game {
	svc = svc.WithDefaults()
	g := &Game{svc: svc}

	if svc.Scores != nil {
		g.scores = storage.NewHighScoreKey(svc.Scores, GameID, svc.Logger)
		g.rounds = &roundLog{store: svc.Scores, log: svc.Logger}
	} else {
		g.scores = &memoryHighScores{}
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Icefall"
}

// Reset starts a new session on the intro screen with the installed
// configuration. The high score survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = currentConfig()

	g.svc.Audio.StopAmbience(audio.AmbienceMenu)
	g.svc.Audio.StopAmbience(audio.AmbienceGameplay)

	g.session = NewSession()
	g.session.SetPlayerX((g.cfg.Player.MinX + g.cfg.Player.MaxX) / 2)
	g.sched = core.NewScheduler()
	g.spawner = NewSpawner(&g.cfg, g.session, g.sched, rand.New(rand.NewSource(runtime.Seed)))
	g.collision = NewCollision(&g.cfg, g.session)
	if g.hud == nil {
		g.hud = NewHUD(func() (float64, float64) {
			return g.session.PlayerX(), g.cfg.Player.Y
		})
	} else {
		g.hud.Reset()
	}
	g.loop = NewLoop(&g.cfg, g.session, g.spawner, g.collision, g.sched, LoopDeps{
		Presenter: g.hud,
		Visuals:   g.hud,
		Scores:    g.scores,
		Audio:     g.svc.Audio,
		Rounds:    g.rounds,
		Logger:    g.svc.Logger,
	})
	g.paused = false
}

// Step advances the game by one tick. The session clock moves by one real
// tick while hazards and scheduled continuations move by the tick scaled
// by the active mode's time scale.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionPause) && s.Phase() == PhaseGameplay && !s.PlayerHit() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickSeconds()
	scaled := dt * s.TimeScale()

	s.Advance(dt)
	g.movePlayer(in)
	g.loop.Tick(Input{
		Primary:   in.Has(core.ActionPrimary),
		Alternate: in.Has(core.ActionAlternate),
	})
	g.spawner.Update(scaled)
	g.collision.Check(g.spawner.Hazards())
	g.trackTime()
	g.sched.Advance(core.Seconds(scaled))
	g.hud.Update(dt)

	return core.StepResult{State: g.State()}
}

// movePlayer applies pointer and left/right input. The player keeps
// following input on every screen, including the death pause.
func (g *Game) movePlayer(in core.InputFrame) {
	s := g.session
	p := g.cfg.Player
	x := s.PlayerX()
	if in.HasPointer {
		x = core.Remap(in.Pointer, 0, 1, g.cfg.Field.MinX, g.cfg.Field.MaxX)
	}
	if in.Has(core.ActionLeft) {
		x -= p.Step
	}
	if in.Has(core.ActionRight) {
		x += p.Step
	}
	s.SetPlayerX(core.ClampF(x, p.MinX, p.MaxX))
}

// trackTime keeps the running timer label current until the player is hit.
func (g *Game) trackTime() {
	s := g.session
	if s.Phase() == PhaseGameplay && !s.PlayerHit() {
		g.hud.SetText(LabelTimer, FormatTime(s.Elapsed()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: PhaseIntro.String()}
	}
	s := g.session
	st := core.GameState{
		Phase:    s.Phase().String(),
		Score:    s.Score(),
		Turbo:    s.Turbo(),
		GameOver: s.Phase() == PhasePostRound,
		Paused:   g.paused,
	}
	if s.Phase() == PhaseGameplay {
		st.Elapsed = s.Elapsed()
		if s.PlayerHit() {
			st.Elapsed = s.Score()
		}
	}
	return st
}

// roundLog stores every finished round in the score history.
type roundLog struct {
	store registry.ScoreStore
	log   *log.Logger
}

func (r *roundLog) RecordRound(score float64, turbo bool) {
	mode := storage.ModeNormal
	if turbo {
		mode = storage.ModeTurbo
	}
	if _, err := r.store.SaveScore(GameID, score, mode); err != nil {
		r.log.Error("could not save round", "score", score, "mode", mode, "error", err)
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func(svc registry.Services) registry.Game {
		return New(svc)
	})
}
