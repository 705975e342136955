package icefall

import (
	"github.com/vovakirdan/icefall/internal/config"
	"github.com/vovakirdan/icefall/internal/core"
)

// Collision tests the active player hitboxes against live hazards.
type Collision struct {
	session  *Session
	playerY  float64
	hazardW  float64
	hazardH  float64
	hitboxes []config.HitboxConfig
}

// NewCollision creates a detector using the normal profile's hitboxes.
func NewCollision(cfg *config.IcefallConfig, session *Session) *Collision {
	return &Collision{
		session:  session,
		playerY:  cfg.Player.Y,
		hazardW:  cfg.Hazard.Width,
		hazardH:  cfg.Hazard.Height,
		hitboxes: cfg.Modes.Normal.Hitboxes,
	}
}

// SetHitboxes swaps the active collider set.
func (c *Collision) SetHitboxes(hb []config.HitboxConfig) {
	c.hitboxes = hb
}

// PlayerBoxes returns the active hitboxes in world space.
func (c *Collision) PlayerBoxes() []core.Box {
	px := c.session.PlayerX()
	boxes := make([]core.Box, len(c.hitboxes))
	for i, hb := range c.hitboxes {
		boxes[i] = core.Box{W: hb.W, H: hb.H}.Offset(px+hb.X, c.playerY+hb.Y)
	}
	return boxes
}

// Check reports a hit to the session if any hazard overlaps the player.
// It returns true only when this call recorded the round's hit.
func (c *Collision) Check(hazards []Hazard) bool {
	if c.session.Phase() != PhaseGameplay || c.session.PlayerHit() {
		return false
	}
	for _, pb := range c.PlayerBoxes() {
		for _, h := range hazards {
			if pb.Intersects(core.Centered(h.X, h.Y, c.hazardW, c.hazardH)) {
				return c.session.ReportHit()
			}
		}
	}
	return false
}
