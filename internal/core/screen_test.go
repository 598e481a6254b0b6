package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' ', Color: ColorDefault}) {
				t.Fatalf("cell (%d,%d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestNegativeSizeClampsToZero(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, expected empty", s.String())
	}
}

func TestSetWithColor(t *testing.T) {
	s := NewScreen(5, 5)

	s.SetWithColor(2, 3, '█', ColorPeach)
	if c := s.GetCell(2, 3); c.Rune != '█' || c.Color != ColorPeach {
		t.Errorf("GetCell(2,3) = %+v", c)
	}

	s.Set(2, 3, 'x')
	if c := s.GetCell(2, 3); c.Rune != 'x' || c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %+v", c)
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(3, 3)

	s.SetWithColor(-1, 0, 'A', ColorRed)
	s.SetWithColor(3, 0, 'A', ColorRed)
	s.SetWithColor(0, -1, 'A', ColorRed)
	s.SetWithColor(0, 3, 'A', ColorRed)

	if strings.ContainsRune(s.String(), 'A') {
		t.Errorf("out of bounds writes leaked:\n%s", s.String())
	}
	if s.Get(-1, -1) != ' ' || s.GetCell(9, 9).Color != ColorDefault {
		t.Error("out of bounds reads should be blank")
	}
}

func TestDrawTextWithColorClips(t *testing.T) {
	s := NewScreen(6, 1)

	s.DrawTextWithColor(3, 0, "Time 0:0:0", ColorWhite)

	if got := s.Row(0); got != "   Tim" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(4, 0).Color != ColorWhite {
		t.Error("text should carry its color")
	}
}

func TestDrawTextMultibyte(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawText(0, 0, "░█▓")
	if got := s.Row(0); got != "░█▓ " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "Exit")
	if got := s.Row(0); got != "   Exit   " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	want := "┌──┐\n│  │\n└──┘"
	if s.String() != want {
		t.Errorf("box:\n%s\nexpected:\n%s", s.String(), want)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Errorf("degenerate box should draw nothing:\n%s", s.String())
	}
}

func TestDrawRect(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(1, 1, 2, 5), '▓', ColorBrightYellow)

	want := "    \n ▓▓ \n ▓▓ "
	if s.String() != want {
		t.Errorf("rect:\n%s\nexpected:\n%s", s.String(), want)
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetWithColor(0, 0, 'a', ColorRed)
	s.SetWithColor(2, 1, 'b', ColorRed)

	s.Resize(2, 3)

	if c := s.GetCell(0, 0); c.Rune != 'a' || c.Color != ColorRed {
		t.Errorf("kept cell = %+v", c)
	}
	if s.Get(1, 2) != ' ' {
		t.Error("new area should be blank")
	}
	if s.String() != "a \n  \n  " {
		t.Errorf("resized:\n%q", s.String())
	}
}

func TestFillAndClear(t *testing.T) {
	s := NewScreen(2, 2)
	s.FillWithColor('#', ColorGreen)
	if s.String() != "##\n##" || s.GetCell(1, 1).Color != ColorGreen {
		t.Fatalf("fill failed:\n%s", s.String())
	}

	s.Clear()
	if s.String() != "  \n  " || s.GetCell(1, 1).Color != ColorDefault {
		t.Errorf("clear failed:\n%q", s.String())
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q", got)
	}
}
