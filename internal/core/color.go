package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the icefall renderer.
const (
	ColorDefault Color = iota
	ColorIce           // falling icicles
	ColorSnow          // ground line
	ColorPenguin       // player while alive
	ColorFrozen        // player after being hit
	ColorTurbo         // turbo trail and notices
	ColorGold          // milestone bursts and new high score
	ColorDim           // secondary HUD text
	ColorAlert         // death particles
)
