package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, expected 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, expected 5", s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Must not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(4, 0, 'X')
	s.Set(0, 4, 'X')

	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '*', ColorYellow)

	cell := s.GetCell(1, 2)
	if cell.Rune != '*' || cell.Color != ColorYellow {
		t.Errorf("GetCell = %+v, expected '*' yellow", cell)
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       [][2]int
	}{
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", 1, 0, 1, 2, [][2]int{{1, 0}, {1, 1}, {1, 2}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"reversed", 3, 0, 0, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"single point", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 5)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '#', ColorWhite)
			for _, p := range tc.expected {
				if s.Get(p[0], p[1]) != '#' {
					t.Errorf("expected '#' at (%d, %d)\n%s", p[0], p[1], s.String())
				}
			}
			if n := strings.Count(s.String(), "#"); n != len(tc.expected) {
				t.Errorf("drew %d cells, expected %d", n, len(tc.expected))
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(9, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "   abc   " {
		t.Errorf("Row(0) = %q, expected %q", got, "   abc   ")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Fatalf("Resize: got %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Errorf("Resize should clear content")
	}
}
