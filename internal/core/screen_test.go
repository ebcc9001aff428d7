package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X in red", cell)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c := s.GetCell(100, 100); c.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell color = %v, expected default", c.Color)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(0, 0, 4, 4), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Score: 7", ColorWhite)

	if got := strings.TrimSpace(s.Row(1)); got != "Score: 7" {
		t.Errorf("Row(1) = %q, expected %q", got, "Score: 7")
	}

	// Clipped at the right edge
	s.DrawText(17, 0, "abcdef", ColorWhite)
	if got := s.Row(0)[17:]; got != "abc" {
		t.Errorf("clipped text = %q, expected %q", got, "abc")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "Pause", ColorWhite)

	if s.Row(0) != "   Pause   " {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "   Pause   ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3), ColorWhite)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDim(t *testing.T) {
	s := NewScreen(3, 1)
	s.Set(0, 0, 'A', ColorRed)
	s.Dim(ColorGray)

	if c := s.GetCell(0, 0); c.Color != ColorGray || c.Rune != 'A' {
		t.Errorf("dimmed cell = %+v, expected A in gray", c)
	}
	if c := s.GetCell(1, 0); c.Color != ColorDefault {
		t.Errorf("blank cell color = %v, expected default", c.Color)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(1, 1, 'X', ColorWhite)
	s.Resize(20, 8)

	if s.Width() != 20 || s.Height() != 8 {
		t.Errorf("size after Resize = %dx%d, expected 20x8", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should discard content")
	}
}
