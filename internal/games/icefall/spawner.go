package icefall

import (
	"github.com/vovakirdan/icefall/internal/config"
	"github.com/vovakirdan/icefall/internal/core"
)

// Hazard is a falling icicle in world units.
type Hazard struct {
	X, Y float64
}

// trail is either freshTrail or continuingTrail.
type trail interface {
	isTrail()
}

// freshTrail means the next spawn starts a new trail.
type freshTrail struct{}

// continuingTrail has spawned at least one hazard.
type continuingTrail struct {
	target int     // Hazards in this trail
	length int     // Hazards spawned so far
	lastX  float64 // Position of the most recent one
}

func (freshTrail) isTrail() {}
func (continuingTrail) isTrail() {}

// Spawner drops hazards in trails on a cadence that tightens with elapsed
// play time. It does nothing until enabled.
type Spawner struct {
	cfg     *config.IcefallConfig
	ramp    config.SpawnRamp
	session *Session
	sched   *core.Scheduler
	rng     Rand

	enabled  bool
	gateOpen bool
	gate     *core.Timer
	trail    trail
	hazards  []Hazard
	interval float64 // Interval sampled on the last update
	spawned  int
}

// NewSpawner creates a disabled spawner.
func NewSpawner(cfg *config.IcefallConfig, session *Session, sched *core.Scheduler, rng Rand) *Spawner {
	return &Spawner{
		cfg:      cfg,
		ramp:     cfg.Ramp(),
		session:  session,
		sched:    sched,
		rng:      rng,
		trail:    freshTrail{},
		hazards:  make([]Hazard, 0, 32),
		interval: cfg.Spawn.EasyInterval,
	}
}

// Enable starts spawning with a fresh trail and an open gate.
func (sp *Spawner) Enable() {
	sp.enabled = true
	sp.gateOpen = true
	sp.trail = freshTrail{}
}

// Disable stops spawning, cancels the pending gate and clears the field.
func (sp *Spawner) Disable() {
	sp.enabled = false
	sp.gate.Cancel()
	sp.gate = nil
	sp.gateOpen = false
	sp.hazards = sp.hazards[:0]
}

// Enabled reports whether the spawner is running.
func (sp *Spawner) Enabled() bool {
	return sp.enabled
}

// Hazards returns the live hazards. The slice is reused between updates.
func (sp *Spawner) Hazards() []Hazard {
	return sp.hazards
}

// Interval returns the spawn interval computed on the last update.
func (sp *Spawner) Interval() float64 {
	return sp.interval
}

// Spawned returns how many hazards were created since construction.
func (sp *Spawner) Spawned() int {
	return sp.spawned
}

// Update moves live hazards by dt seconds of scaled time, then spawns one
// if the gate is open.
func (sp *Spawner) Update(dt float64) {
	if !sp.enabled {
		return
	}

	sp.move(dt)

	sp.interval = sp.ramp.Interval(sp.session.Elapsed())
	if !sp.gateOpen {
		return
	}

	sp.spawn()

	sp.gateOpen = false
	sp.gate = sp.sched.After(core.Seconds(sp.interval), func() {
		sp.gateOpen = true
		sp.gate = nil
	})
}

func (sp *Spawner) move(dt float64) {
	h := sp.cfg.Hazard
	live := sp.hazards[:0]
	for _, hz := range sp.hazards {
		hz.Y -= h.Speed * dt
		if hz.Y < h.FloorY {
			continue
		}
		live = append(live, hz)
	}
	sp.hazards = live
}

func (sp *Spawner) spawn() {
	var next continuingTrail
	switch t := sp.trail.(type) {
	case continuingTrail:
		next = t
		next.lastX = sp.offsetFrom(t.lastX)
	default:
		next = continuingTrail{target: sp.drawTrailLength()}
		next.lastX = sp.placeFirst()
	}
	next.length++

	sp.hazards = append(sp.hazards, Hazard{X: next.lastX, Y: sp.cfg.Spawn.Y})
	sp.spawned++

	if next.length >= next.target {
		sp.trail = freshTrail{}
	} else {
		sp.trail = next
	}
}

// drawTrailLength picks a length in [min, max), or min when they are equal.
func (sp *Spawner) drawTrailLength() int {
	t := sp.cfg.Trail
	if t.MaxLength <= t.MinLength {
		return t.MinLength
	}
	return t.MinLength + sp.rng.Intn(t.MaxLength-t.MinLength)
}

// placeFirst chooses x for the first hazard of a trail, near the player's
// zone with probability PlayerBias and in the opposite zone otherwise.
func (sp *Spawner) placeFirst() float64 {
	z := sp.cfg.Zones
	near := sp.rng.Float64() < z.PlayerBias
	px := sp.session.PlayerX()

	var x float64
	switch {
	case px < z.LeftMaxX:
		if near {
			x = sp.uniform(z.LeftMinX, z.LeftMaxX)
		} else {
			x = sp.uniform(z.RightMinX, z.RightMaxX)
		}
	case px > z.RightMinX:
		if near {
			x = sp.uniform(z.RightMinX, z.RightMaxX)
		} else {
			x = sp.uniform(z.LeftMinX, z.LeftMaxX)
		}
	default:
		if near {
			x = sp.uniform(z.LeftMaxX, z.RightMinX)
		} else if sp.rng.Float64() < 0.5 {
			x = sp.uniform(z.LeftMinX, z.MidMinX)
		} else {
			x = sp.uniform(z.MidMaxX, z.RightMaxX)
		}
	}
	return core.ClampF(x, sp.cfg.Field.MinX, sp.cfg.Field.MaxX)
}

// offsetFrom places a follow-up hazard relative to the previous one.
func (sp *Spawner) offsetFrom(lastX float64) float64 {
	t := sp.cfg.Trail
	x := lastX + sp.uniform(t.MinOffset, t.MaxOffset)
	return core.ClampF(x, sp.cfg.Field.MinX, sp.cfg.Field.MaxX)
}

func (sp *Spawner) uniform(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}
