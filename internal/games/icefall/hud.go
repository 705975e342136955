package icefall

// Burst is a particle effect being drawn.
type Burst struct {
	Particles
	X, Y float64 // World position of the origin
	Age  float64 // Seconds since it started
}

const burstLifetime = 1.2

// HUD records what the loop asked to display so the renderer can draw it.
// It is the built-in Presenter and Visuals.
type HUD struct {
	screens map[Screen]bool
	labels  map[Label]string
	notices map[Notice]bool

	visual PlayerVisual
	trail  TrailEffect
	bursts []Burst

	origin func() (x, y float64) // Where new bursts start
}

// NewHUD creates an empty HUD. origin supplies the player position for
// particle bursts.
func NewHUD(origin func() (x, y float64)) *HUD {
	return &HUD{
		screens: make(map[Screen]bool),
		labels:  make(map[Label]string),
		notices: make(map[Notice]bool),
		trail:   TrailRegular,
		origin:  origin,
	}
}

func (h *HUD) Show(s Screen) { h.screens[s] = true }
func (h *HUD) Hide(s Screen) { delete(h.screens, s) }
func (h *HUD) SetText(l Label, text string) { h.labels[l] = text }
func (h *HUD) ShowNotice(n Notice) { h.notices[n] = true }
func (h *HUD) HideNotice(n Notice) { delete(h.notices, n) }

func (h *HUD) SetPlayerVisual(v PlayerVisual) { h.visual = v }
func (h *HUD) SetTrail(t TrailEffect) { h.trail = t }

// PlayParticles starts a burst at the player's position.
func (h *HUD) PlayParticles(p Particles) {
	var x, y float64
	if h.origin != nil {
		x, y = h.origin()
	}
	h.bursts = append(h.bursts, Burst{Particles: p, X: x, Y: y})
}

// Visible reports whether a screen is shown.
func (h *HUD) Visible(s Screen) bool { return h.screens[s] }

// Text returns the current text of a label.
func (h *HUD) Text(l Label) string { return h.labels[l] }

// NoticeVisible reports whether a notice is shown.
func (h *HUD) NoticeVisible(n Notice) bool { return h.notices[n] }

func (h *HUD) PlayerVisual() PlayerVisual { return h.visual }
func (h *HUD) Trail() TrailEffect { return h.trail }
func (h *HUD) Bursts() []Burst { return h.bursts }

// Update ages particle bursts by dt real seconds and drops finished ones.
func (h *HUD) Update(dt float64) {
	live := h.bursts[:0]
	for _, b := range h.bursts {
		b.Age += dt
		if b.Age < burstLifetime {
			live = append(live, b)
		}
	}
	h.bursts = live
}

// Reset clears everything.
func (h *HUD) Reset() {
	clear(h.screens)
	clear(h.labels)
	clear(h.notices)
	h.visual = VisualAlive
	h.trail = TrailRegular
	h.bursts = h.bursts[:0]
}

var (
	_ Presenter = (*HUD)(nil)
	_ Visuals   = (*HUD)(nil)
)
