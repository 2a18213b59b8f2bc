package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, want 10x5", s.Width(), s.Height())
	}

	s.SetCell(3, 2, 'X', ColorRed)
	c := s.GetCell(3, 2)
	if c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(3,2) = %+v, want X/red", c)
	}

	// Out-of-bounds writes are ignored, reads return an empty cell.
	s.SetCell(-1, 0, 'Y', ColorRed)
	s.SetCell(10, 0, 'Y', ColorRed)
	s.SetCell(0, 5, 'Y', ColorRed)
	if c := s.GetCell(99, 99); c.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, want blank", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, '#', ColorGreen)
	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear: cell = %+v, want blank default", c)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetCell(2, 2, '@', ColorCyan)
	s.Resize(10, 8)
	if s.Width() != 10 || s.Height() != 8 {
		t.Fatalf("after resize: %dx%d, want 10x8", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != '@' {
		t.Errorf("resize dropped existing content: %+v", c)
	}

	s.Resize(3, 3)
	if c := s.GetCell(2, 2); c.Rune != '@' {
		t.Errorf("shrink dropped in-bounds content: %+v", c)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "hi", ColorYellow)
	if s.GetCell(2, 1).Rune != 'h' || s.GetCell(3, 1).Rune != 'i' {
		t.Errorf("DrawTextColored did not place runes")
	}
	// Text running off the right edge is clipped, not wrapped.
	s.DrawText(8, 0, "abc")
	if s.GetCell(0, 1).Rune == 'c' {
		t.Errorf("text must clip at the edge, not wrap")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorWhite)
	if s.GetCell(4, 1).Rune != 'a' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
}

func TestFillWorldRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillWorldRect(NewRect(1.2, 2.6, 2.0, 1.0), '#', ColorBlue)
	if s.GetCell(1, 2).Rune != '#' {
		t.Errorf("world rect should cover the cell containing its origin")
	}
	if s.GetCell(6, 2).Rune == '#' {
		t.Errorf("world rect should not bleed past its extent")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetCell(0, 0, 'a', ColorDefault)
	out := s.String()
	if out == "" {
		t.Fatalf("String() empty")
	}
	if out[0] != 'a' {
		t.Errorf("String() first rune = %q, want 'a'", out[0])
	}
}
