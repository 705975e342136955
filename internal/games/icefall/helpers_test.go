package icefall

import (
	"testing"

	"github.com/vovakirdan/icefall/internal/audio"
	"github.com/vovakirdan/icefall/internal/config"
	"github.com/vovakirdan/icefall/internal/core"
)

// scriptedRand replays fixed draws and fails the test when it runs dry.
type scriptedRand struct {
	t      *testing.T
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	r.t.Helper()
	if len(r.floats) == 0 {
		r.t.Fatal("unexpected Float64 draw")
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	r.t.Helper()
	if len(r.ints) == 0 {
		r.t.Fatal("unexpected Intn draw")
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		r.t.Fatalf("scripted Intn value %d out of range [0, %d)", v, n)
	}
	return v
}

type audioCall struct {
	op       string
	ambience audio.Ambience
	sound    audio.Sound
	pitch    float64
}

type fakeAudio struct {
	calls []audioCall
}

func (a *fakeAudio) PlayAmbience(k audio.Ambience, pitch float64) {
	a.calls = append(a.calls, audioCall{op: "play", ambience: k, pitch: pitch})
}

func (a *fakeAudio) StopAmbience(k audio.Ambience) {
	a.calls = append(a.calls, audioCall{op: "stop", ambience: k})
}

func (a *fakeAudio) PlayOneShot(s audio.Sound) {
	a.calls = append(a.calls, audioCall{op: "oneshot", sound: s})
}

func (a *fakeAudio) count(op string, match func(audioCall) bool) int {
	n := 0
	for _, c := range a.calls {
		if c.op == op && (match == nil || match(c)) {
			n++
		}
	}
	return n
}

type fakeRounds struct {
	scores []float64
	turbo  []bool
}

func (r *fakeRounds) RecordRound(score float64, turbo bool) {
	r.scores = append(r.scores, score)
	r.turbo = append(r.turbo, turbo)
}

// harness runs the loop, spawner and scheduler in the same order as
// Game.Step, without collision checks.
type harness struct {
	cfg       config.IcefallConfig
	session   *Session
	sched     *core.Scheduler
	spawner   *Spawner
	collision *Collision
	loop      *Loop
	hud       *HUD
	audio     *fakeAudio
	scores    *memoryHighScores
	rounds    *fakeRounds
}

const testDT = 0.125 // exact in binary, so elapsed times add up exactly

func newHarness(t *testing.T, rng Rand) *harness {
	t.Helper()
	h := &harness{
		cfg:    config.DefaultIcefallConfig(),
		audio:  &fakeAudio{},
		scores: &memoryHighScores{},
		rounds: &fakeRounds{},
	}
	h.session = NewSession()
	h.sched = core.NewScheduler()
	h.spawner = NewSpawner(&h.cfg, h.session, h.sched, rng)
	h.collision = NewCollision(&h.cfg, h.session)
	h.hud = NewHUD(func() (float64, float64) { return h.session.PlayerX(), h.cfg.Player.Y })
	h.loop = NewLoop(&h.cfg, h.session, h.spawner, h.collision, h.sched, LoopDeps{
		Presenter: h.hud,
		Visuals:   h.hud,
		Scores:    h.scores,
		Audio:     h.audio,
		Rounds:    h.rounds,
	})
	return h
}

func (h *harness) tick(in Input) {
	scaled := testDT * h.session.TimeScale()
	h.session.Advance(testDT)
	h.loop.Tick(in)
	h.spawner.Update(scaled)
	h.sched.Advance(core.Seconds(scaled))
}

func (h *harness) ticks(n int) {
	for i := 0; i < n; i++ {
		h.tick(Input{})
	}
}

// startRound leaves the current menu screen and runs gameplay setup.
func (h *harness) startRound(t *testing.T, in Input) {
	t.Helper()
	h.tick(in)
	if h.session.Phase() != PhaseGameplay {
		t.Fatalf("phase = %v after exit input, expected gameplay", h.session.Phase())
	}
	h.tick(Input{})
	if !h.loop.Ready() {
		t.Fatal("gameplay setup did not run")
	}
}
