package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, cell)
			}
		}
	}
}

func TestScreenSetColorOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'M', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'M' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'M'", got)
	}

	// Out of bounds writes are ignored
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(100, 0, 'A', ColorRed)
	s.SetColor(0, -1, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColor(1, 1, "♥♥♡ 3", ColorBrightRed)

	expected := []rune("♥♥♡ 3")
	for i, r := range expected {
		cell := s.GetCell(1+i, 1)
		if cell.Rune != r {
			t.Errorf("column %d = %q, expected %q", 1+i, cell.Rune, r)
		}
		if cell.Color != ColorBrightRed {
			t.Errorf("column %d color = %d, expected bright red", 1+i, cell.Color)
		}
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "★★")

	x := (20 - 2) / 2
	if s.Get(x, 2) != '★' || s.Get(x+1, 2) != '★' {
		t.Errorf("centered text not at column %d: %q", x, s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColor(NewRect(1, 1, 5, 4), ColorCyan)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		cell := s.GetCell(c.x, c.y)
		if cell.Rune != c.r || cell.Color != ColorCyan {
			t.Errorf("corner (%d, %d) = %+v, expected cyan %q", c.x, c.y, cell, c.r)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}

	// Degenerate boxes draw nothing
	s2 := NewScreen(4, 4)
	s2.DrawBox(NewRect(0, 0, 1, 1))
	if s2.Get(0, 0) != ' ' {
		t.Error("1x1 box should not be drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("color should be preserved across resize")
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("out of bounds row = %q, expected spaces", got)
	}
}

func TestTextWidth(t *testing.T) {
	if TextWidth("abc") != 3 {
		t.Error("TextWidth(abc) should be 3")
	}
	if TextWidth("♥♥") != 2 {
		t.Error("TextWidth of two hearts should be 2")
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetColor(0, 0, 'a', ColorRed)
	s.SetColor(3, 2, 'z', ColorBlue)

	s.Resize(6, 5)
	if s.Width() != 6 || s.Height() != 5 {
		t.Fatalf("dimensions = %dx%d, expected 6x5", s.Width(), s.Height())
	}
	if got := s.GetCell(0, 0); got.Rune != 'a' || got.Color != ColorRed {
		t.Errorf("after grow GetCell(0, 0) = %+v, expected red 'a'", got)
	}
	if got := s.GetCell(3, 2); got.Rune != 'z' || got.Color != ColorBlue {
		t.Errorf("after grow GetCell(3, 2) = %+v, expected blue 'z'", got)
	}
	if got := s.Get(5, 4); got != ' ' {
		t.Errorf("new cell = %q, expected space", got)
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if got := s.Get(0, 0); got != 'a' {
		t.Errorf("after shrink Get(0, 0) = %q, expected 'a'", got)
	}
	if got := s.Get(3, 2); got != ' ' {
		t.Errorf("out of range after shrink = %q, expected space", got)
	}
}
