package icefall

// Screen is a group of display elements shown together.
type Screen int

const (
	ScreenIntro Screen = iota
	ScreenGameplay
	ScreenPostRound
)

func (s Screen) String() string {
	switch s {
	case ScreenIntro:
		return "intro"
	case ScreenGameplay:
		return "gameplay"
	case ScreenPostRound:
		return "postround"
	default:
		return "unknown"
	}
}

// Label is a text slot on a screen.
type Label int

const (
	LabelHighScore Label = iota // shared by intro and post-round
	LabelYourScore
	LabelTimer
)

// Notice is an optional post-round message.
type Notice int

const (
	NoticeNewHighScore Notice = iota
	NoticeTurbo
)

// PlayerVisual is the player's sprite state.
type PlayerVisual int

const (
	VisualAlive PlayerVisual = iota
	VisualDefeated
)

// TrailEffect is the particle trail behind the player.
type TrailEffect string

const (
	TrailRegular TrailEffect = "regular"
	TrailTurbo   TrailEffect = "turbo"
)

// ParticleKind identifies a one-off particle burst.
type ParticleKind int

const (
	ParticlesDeath ParticleKind = iota
	ParticlesMilestone
)

// Particles is a burst request. Index selects the milestone effect.
type Particles struct {
	Kind  ParticleKind
	Index int
}

// Presenter shows and hides screens and fills their text.
type Presenter interface {
	Show(s Screen)
	Hide(s Screen)
	SetText(l Label, text string)
	ShowNotice(n Notice)
	HideNotice(n Notice)
}

// Visuals drives the player sprite and particle effects.
type Visuals interface {
	SetPlayerVisual(v PlayerVisual)
	SetTrail(t TrailEffect)
	PlayParticles(p Particles)
}

// HighScores is a single durable score. ok is false when nothing was ever
// stored.
type HighScores interface {
	HighScore() (v float64, ok bool)
	SetHighScore(v float64)
}

// RoundRecorder receives every finished round.
type RoundRecorder interface {
	RecordRound(score float64, turbo bool)
}

// Rand is the subset of *rand.Rand used for placement.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Input is the per-tick signal set the state machine reacts to.
type Input struct {
	Primary   bool
	Alternate bool
}

// exit reports whether the input leaves a menu screen, and in which mode.
// Primary wins when both are held.
func (in Input) exit() (turbo, ok bool) {
	switch {
	case in.Primary:
		return false, true
	case in.Alternate:
		return true, true
	default:
		return false, false
	}
}

// memoryHighScores is used when no store is wired.
type memoryHighScores struct {
	v  float64
	ok bool
}

func (m *memoryHighScores) HighScore() (float64, bool) { return m.v, m.ok }

func (m *memoryHighScores) SetHighScore(v float64) {
	m.v = v
	m.ok = true
}
