// Package audio provides the sound collaborator used by the game loop:
// looping ambience tracks and one-shot effects, synthesized at runtime.
package audio

// Ambience is a looping background track.
type Ambience int

const (
	AmbienceMenu Ambience = iota
	AmbienceGameplay
)

func (a Ambience) String() string {
	switch a {
	case AmbienceMenu:
		return "menu"
	case AmbienceGameplay:
		return "gameplay"
	default:
		return "unknown"
	}
}

// Sound is a one-shot effect.
type Sound int

const (
	SoundDeath Sound = iota
	SoundVictory
)

func (s Sound) String() string {
	switch s {
	case SoundDeath:
		return "death"
	case SoundVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Player plays ambience and effects. Implementations must be safe to call
// from the simulation tick.
type Player interface {
	PlayAmbience(a Ambience, pitch float64)
	StopAmbience(a Ambience)
	PlayOneShot(s Sound)
}

// Nop discards every request.
type Nop struct{}

func (Nop) PlayAmbience(Ambience, float64) {}
func (Nop) StopAmbience(Ambience)          {}
func (Nop) PlayOneShot(Sound)              {}

var _ Player = Nop{}
