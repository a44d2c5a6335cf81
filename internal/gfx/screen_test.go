package gfx

import (
	"strings"
	"testing"
)

func TestNewScreenStartsBlank(t *testing.T) {
	s := NewScreen(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewScreen(5, 5)

	s.SetCell(2, 3, '@', ColorRed)
	if c := s.GetCell(2, 3); c.Rune != '@' || c.Color != ColorRed {
		t.Errorf("cell = %+v, want red @", c)
	}
	if r := s.Get(2, 3); r != '@' {
		t.Errorf("Get = %q, want @", r)
	}

	// Out of bounds writes are dropped, reads return a blank
	s.Set(-1, 0, 'x')
	s.Set(0, 99, 'x')
	if r := s.Get(-1, 0); r != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", r)
	}
}

func TestClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.FillRect(0, 0, 3, 3, '#', ColorGreen)

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after clear = %+v, want blank", c)
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'A')
	s.Set(3, 3, 'B')

	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 6x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("content inside the overlap should survive a resize")
	}
	// (3,3) fell outside the new height
	if s.Get(3, 1) != ' ' {
		t.Error("cells outside the old content should be blank")
	}
	// Grown columns start blank
	if s.Get(5, 1) != ' ' {
		t.Error("new columns should be blank")
	}
}

func TestDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)

	s.DrawText(3, 0, "abc")
	if got := s.String(); got != "   ab" {
		t.Errorf("screen = %q, want %q", got, "   ab")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(7, 1)

	s.DrawTextCentered(0, "abc")
	if got := s.String(); got != "  abc  " {
		t.Errorf("screen = %q, want centered text", got)
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(4, 1)

	s.DrawTextColored(0, 0, "hi", ColorCyan)
	if c := s.GetCell(1, 0); c.Rune != 'i' || c.Color != ColorCyan {
		t.Errorf("cell = %+v, want cyan i", c)
	}
}

func TestFillRect(t *testing.T) {
	s := NewScreen(4, 4)

	s.FillRect(1, 1, 2, 2, '#', ColorBlue)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorBlue {
				t.Errorf("cell (%d,%d) = %+v, want blue #", x, y, c)
			}
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(3, 3) != ' ' {
		t.Error("cells outside the rect should be untouched")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)

	s.DrawBox(0, 0, 4, 3)
	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("screen =\n%s\nwant\n%s", got, want)
	}
}

func TestDrawLines(t *testing.T) {
	s := NewScreen(4, 4)

	s.DrawHLine(0, 1, 4, '-')
	s.DrawVLine(2, 0, 4, '|')

	if s.Get(0, 1) != '-' || s.Get(3, 1) != '-' {
		t.Error("horizontal line incomplete")
	}
	if s.Get(2, 0) != '|' || s.Get(2, 3) != '|' {
		t.Error("vertical line incomplete")
	}
	// The crossing cell was drawn last by the vertical line
	if s.Get(2, 1) != '|' {
		t.Error("later draw should win at the crossing")
	}
}

func TestStringRowCount(t *testing.T) {
	s := NewScreen(2, 3)
	if n := strings.Count(s.String(), "\n"); n != 2 {
		t.Errorf("newlines = %d, want 2", n)
	}
}
