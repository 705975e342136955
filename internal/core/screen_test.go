package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("NewScreen(12, 4) = %dx%d", s.Width(), s.Height())
	}
	want := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 12)+"\n", 4), "\n")
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected all spaces", got)
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(5, 3)

	s.SetColored(2, 1, '▼', ColorIce)
	if got := s.GetCell(2, 1); got != (Cell{Rune: '▼', Color: ColorIce}) {
		t.Errorf("GetCell(2, 1) = %+v, expected ice icicle tip", got)
	}

	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'x', ColorAlert)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank outside the screen", p[0], p[1], got)
		}
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '*', ColorGold)
	s.Clear()

	if got := s.GetCell(1, 1); got != blank {
		t.Errorf("GetCell(1, 1) after Clear() = %+v, expected blank", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		x     int
	}{
		{20, "FROZEN", 7},
		{21, "FROZEN", 7},
		{10, "00.0", 3},
		{6, "I C E F A L L", -3},
	}

	for _, tt := range tests {
		s := NewScreen(tt.width, 3)
		s.DrawTextCentered(1, tt.text, ColorFrozen)

		for i, r := range []rune(tt.text) {
			x := tt.x + i
			if x < 0 || x >= tt.width {
				continue
			}
			if got := s.GetCell(x, 1); got.Rune != r || got.Color != ColorFrozen {
				t.Errorf("width %d %q: cell %d = %+v, expected %q", tt.width, tt.text, x, got, r)
			}
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(-2, 1, 10, '═', ColorSnow)

	if got := strings.Split(s.String(), "\n")[1]; got != "══════" {
		t.Errorf("ground row = %q, expected a full line", got)
	}
	if s.GetCell(0, 1).Color != ColorSnow {
		t.Error("ground line should carry its color")
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(8, 5)
	for y := range 5 {
		s.DrawHLine(0, y, 8, '·', ColorDim)
	}

	panel := NewRect(1, 1, 5, 3)
	s.DrawRect(panel, ' ')
	s.DrawBox(panel, ColorFrozen)

	want := strings.Join([]string{
		"········",
		"·┌───┐··",
		"·│   │··",
		"·└───┘··",
		"········",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
	if s.GetCell(1, 1).Color != ColorFrozen {
		t.Error("box corner should use the box color")
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "<o>", ColorPenguin)

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("Resize(2, 3) = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != "<o\n  \n  " {
		t.Errorf("String() after shrink = %q", got)
	}

	s.Resize(5, 1)
	if got := s.String(); got != "<o   " {
		t.Errorf("String() after grow = %q", got)
	}
}
