package icefall

import (
	"math"

	"github.com/vovakirdan/icefall/internal/core"
)

// Visual characters for rendering
const (
	IcicleBody       = '│'
	IcicleTip        = '▼'
	GroundChar       = '═'
	BurstChar        = '*'
	TrailRegularChar = '·'
	TrailTurboChar   = '≈'

	penguinAlive  = "<o>"
	penguinFrozen = "[#]"
)

// viewport maps world units to screen cells. Row 0 is the HUD and the last
// row is the ground.
type viewport struct {
	minX, maxX    float64
	topY, bottomY float64
	w, h          int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		minX:    g.cfg.Field.MinX,
		maxX:    g.cfg.Field.MaxX,
		topY:    g.cfg.Field.TopY,
		bottomY: g.cfg.Field.BottomY,
		w:       dst.Width(),
		h:       dst.Height(),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Round(core.Remap(x, v.minX, v.maxX, 1, float64(v.w-2))))
}

func (v viewport) row(y float64) int {
	return int(math.Round(core.Remap(y, v.topY, v.bottomY, 1, float64(v.h-2))))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil || dst.Width() < 10 || dst.Height() < 8 {
		return
	}

	vp := g.viewport(dst)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorSnow)

	if g.hud.Visible(ScreenGameplay) {
		g.drawField(dst, vp)
	}
	g.drawBursts(dst, vp)

	switch {
	case g.hud.Visible(ScreenIntro):
		g.drawIntro(dst)
	case g.hud.Visible(ScreenPostRound):
		g.drawPostRound(dst)
	}
}

func (g *Game) drawField(dst *core.Screen, vp viewport) {
	for _, hz := range g.spawner.Hazards() {
		x := vp.col(hz.X)
		top := vp.row(hz.Y + g.cfg.Hazard.Height/2)
		tip := vp.row(hz.Y - g.cfg.Hazard.Height/2)
		for y := top; y < tip; y++ {
			dst.SetColored(x, y, IcicleBody, core.ColorIce)
		}
		dst.SetColored(x, tip, IcicleTip, core.ColorIce)
	}

	px := vp.col(g.session.PlayerX())
	py := vp.row(g.cfg.Player.Y)
	if g.hud.PlayerVisual() == VisualDefeated {
		dst.DrawTextColored(px-1, py, penguinFrozen, core.ColorFrozen)
	} else {
		dst.DrawTextColored(px-1, py, penguinAlive, core.ColorPenguin)
		trail, c := TrailRegularChar, core.ColorDim
		if g.hud.Trail() == TrailTurbo {
			trail, c = TrailTurboChar, core.ColorTurbo
		}
		dst.DrawHLine(px-1, py+1, 3, trail, c)
	}

	// HUD
	dst.DrawTextColored(2, 0, " "+g.hud.Text(LabelTimer)+" ", core.ColorDefault)
	if g.session.Turbo() {
		dst.DrawTextColored(dst.Width()-9, 0, " TURBO ", core.ColorTurbo)
	}
	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P to resume ", core.ColorDim)
	}
}

// drawBursts renders expanding rings of particles.
func (g *Game) drawBursts(dst *core.Screen, vp viewport) {
	for _, b := range g.hud.Bursts() {
		c := core.ColorGold
		if b.Kind == ParticlesDeath {
			c = core.ColorAlert
		}
		cx, cy := vp.col(b.X), vp.row(b.Y)
		r := 1 + b.Age*6
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			x := cx + int(math.Round(math.Cos(a)*r*2))
			y := cy - int(math.Round(math.Sin(a)*r))
			dst.SetColored(x, y, BurstChar, c)
		}
	}
}

func (g *Game) drawIntro(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "I C E F A L L", core.ColorIce)
	dst.DrawTextCentered(mid-2, "Dodge the falling icicles for as long as you can", core.ColorDim)
	dst.DrawTextCentered(mid, g.hud.Text(LabelHighScore), core.ColorGold)
	dst.DrawTextCentered(mid+2, "SPACE or click to play   T for turbo", core.ColorDefault)
	dst.DrawTextCentered(mid+3, "Move with arrows, A/D or the mouse", core.ColorDim)
}

func (g *Game) drawPostRound(dst *core.Screen) {
	mid := dst.Height() / 2
	w := core.Clamp(dst.Width()-4, 20, 62)
	panel := core.NewRect((dst.Width()-w)/2, mid-6, w, 13)
	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel, core.ColorFrozen)

	dst.DrawTextCentered(mid-4, "FROZEN", core.ColorFrozen)
	dst.DrawTextCentered(mid-2, g.hud.Text(LabelYourScore), core.ColorDefault)
	dst.DrawTextCentered(mid-1, g.hud.Text(LabelHighScore), core.ColorDim)
	if g.hud.NoticeVisible(NoticeNewHighScore) {
		dst.DrawTextCentered(mid+1, "NEW HIGH SCORE!", core.ColorGold)
	}
	if g.hud.NoticeVisible(NoticeTurbo) {
		dst.DrawTextCentered(mid+2, "You're good at this. Press T for turbo mode", core.ColorTurbo)
	}
	dst.DrawTextCentered(mid+4, "SPACE or click to play again   T for turbo   Q to quit", core.ColorDefault)
}
