package icefall

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/icefall/internal/audio"
	"github.com/vovakirdan/icefall/internal/config"
	"github.com/vovakirdan/icefall/internal/core"
)

// LoopDeps are the loop's collaborators. Presenter and Visuals are required;
// the rest fall back to in-memory or silent implementations.
type LoopDeps struct {
	Presenter Presenter
	Visuals   Visuals
	Scores    HighScores
	Audio     audio.Player
	Rounds    RoundRecorder
	Logger    *log.Logger
}

// Loop is the screen state machine: intro, gameplay, post-round and back
// to gameplay. Tick must be called once per simulation tick.
type Loop struct {
	cfg       *config.IcefallConfig
	session   *Session
	spawner   *Spawner
	collision *Collision
	sched     *core.Scheduler

	present Presenter
	visuals Visuals
	scores  HighScores
	audio   audio.Player
	rounds  RoundRecorder
	log     *log.Logger

	stateReady       bool // On-enter actions for the current phase ran
	endgameInitiated bool // Death sequence started and not yet finished
	death            *core.Timer
}

// NewLoop wires a state machine. The session starts on the intro screen.
func NewLoop(cfg *config.IcefallConfig, session *Session, spawner *Spawner, collision *Collision, sched *core.Scheduler, deps LoopDeps) *Loop {
	if deps.Scores == nil {
		deps.Scores = &memoryHighScores{}
	}
	if deps.Audio == nil {
		deps.Audio = audio.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Loop{
		cfg:       cfg,
		session:   session,
		spawner:   spawner,
		collision: collision,
		sched:     sched,
		present:   deps.Presenter,
		visuals:   deps.Visuals,
		scores:    deps.Scores,
		audio:     deps.Audio,
		rounds:    deps.Rounds,
		log:       deps.Logger,
	}
}

// Ready reports whether the current phase has run its on-enter actions.
func (l *Loop) Ready() bool {
	return l.stateReady
}

// Dying reports whether the death sequence is in progress.
func (l *Loop) Dying() bool {
	return l.endgameInitiated
}

// Tick runs one step of the state machine.
func (l *Loop) Tick(in Input) {
	switch l.session.Phase() {
	case PhaseIntro:
		l.intro(in)
	case PhaseGameplay:
		l.gameplay()
	case PhasePostRound:
		l.postRound(in)
	}
}

func (l *Loop) intro(in Input) {
	if !l.stateReady {
		l.present.Show(ScreenIntro)
		best, ok := l.scores.HighScore()
		l.present.SetText(LabelHighScore, "High Score: "+formatHighScore(best, ok))
		l.audio.PlayAmbience(audio.AmbienceMenu, 1)
		l.stateReady = true
	}

	if turbo, ok := in.exit(); ok {
		l.present.Hide(ScreenIntro)
		l.leaveMenu(turbo)
	}
}

func (l *Loop) gameplay() {
	s := l.session
	if !l.stateReady {
		l.enterGameplay()
	}

	if s.PlayerHit() && !l.endgameInitiated {
		score := s.recordScore()
		l.log.Info("round over", "score", FormatTime(score), "turbo", s.Turbo())
		l.startDeath()
		l.endgameInitiated = true
	}

	if !s.PlayerHit() {
		l.checkMilestone()
	}
}

func (l *Loop) enterGameplay() {
	s := l.session
	p := l.cfg.Profile(s.Turbo())

	l.present.Show(ScreenGameplay)
	s.beginRound(p.TimeScale)
	l.visuals.SetPlayerVisual(VisualAlive)
	l.visuals.SetTrail(TrailEffect(p.Trail))
	l.collision.SetHitboxes(p.Hitboxes)
	l.audio.PlayAmbience(audio.AmbienceGameplay, p.MusicPitch)
	l.spawner.Enable()
	l.stateReady = true

	l.log.Debug("round started", "turbo", s.Turbo(), "time_scale", p.TimeScale)
}

// checkMilestone fires at most one milestone per tick, in order.
func (l *Loop) checkMilestone() {
	s := l.session
	i := s.milestoneIndex
	if i >= len(l.cfg.Milestones) || s.Elapsed() < l.cfg.Milestones[i] {
		return
	}
	l.visuals.PlayParticles(Particles{Kind: ParticlesMilestone, Index: i})
	l.audio.PlayOneShot(audio.SoundVictory)
	s.milestoneIndex++
	l.log.Debug("milestone", "index", i, "at", l.cfg.Milestones[i], "ramp_level", l.cfg.Ramp().Level(s.Elapsed()))
}

// startDeath plays the defeat effects and schedules the post-round screen
// after the mode's death time of scaled simulation time.
func (l *Loop) startDeath() {
	l.audio.StopAmbience(audio.AmbienceGameplay)
	l.visuals.SetPlayerVisual(VisualDefeated)
	l.audio.PlayOneShot(audio.SoundDeath)
	l.visuals.PlayParticles(Particles{Kind: ParticlesDeath})

	wait := l.cfg.Profile(l.session.Turbo()).DeathTime
	l.death = l.sched.After(core.Seconds(wait), l.finishDeath)
}

func (l *Loop) finishDeath() {
	l.session.setPhase(PhasePostRound)
	l.present.Hide(ScreenGameplay)
	l.spawner.Disable()
	l.endgameInitiated = false
	l.stateReady = false
	l.death = nil
}

func (l *Loop) postRound(in Input) {
	if !l.stateReady {
		l.enterPostRound()
	}

	if turbo, ok := in.exit(); ok {
		l.present.Hide(ScreenPostRound)
		l.present.HideNotice(NoticeNewHighScore)
		l.present.HideNotice(NoticeTurbo)
		l.leaveMenu(turbo)
	}
}

func (l *Loop) enterPostRound() {
	s := l.session
	score := s.Score()

	l.present.Show(ScreenPostRound)
	l.present.SetText(LabelYourScore, "Your Score: "+FormatTime(score))

	best, ok := l.scores.HighScore()
	if !ok || score > best {
		l.present.ShowNotice(NoticeNewHighScore)
		l.present.SetText(LabelHighScore, "Old High Score: "+formatHighScore(best, ok))
		l.scores.SetHighScore(score)
		l.log.Info("new high score", "score", FormatTime(score), "previous", formatHighScore(best, ok))
	} else {
		l.present.SetText(LabelHighScore, "Current High Score: "+FormatTime(best))
	}

	if score > l.cfg.TurboNoticeThreshold {
		l.present.ShowNotice(NoticeTurbo)
	}

	if l.rounds != nil {
		l.rounds.RecordRound(score, s.Turbo())
	}

	l.audio.PlayAmbience(audio.AmbienceMenu, 1)
	l.stateReady = true
}

// leaveMenu is the shared exit of the intro and post-round screens.
func (l *Loop) leaveMenu(turbo bool) {
	l.audio.StopAmbience(audio.AmbienceMenu)
	l.session.setTurbo(turbo)
	l.session.setPhase(PhaseGameplay)
	l.stateReady = false
}

// DeathPending reports whether the post-round transition is scheduled.
func (l *Loop) DeathPending() bool {
	return l.death.Pending()
}
