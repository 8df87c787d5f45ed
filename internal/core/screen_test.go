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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorRed)
	cell := s.GetCell(3, 4)
	if cell.Rune != '#' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorRed", cell.Color)
	}

	// Plain Set resets the color to default
	s.Set(3, 4, '#')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set() should use the default color")
	}

	// Out of bounds GetCell returns a blank default cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", blank)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorGreen)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello             " {
		t.Errorf("Row(1) = %q after DrawText", s.Row(1))
	}

	// Clipped text should not panic
	s.DrawText(18, 2, "clipped")
	if s.Get(18, 2) != 'c' || s.Get(19, 2) != 'l' {
		t.Error("DrawText should draw the visible prefix of clipped text")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("DrawTextCentered misplaced text, row = %q", s.Row(1))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 4), '#', ColorCyan)

	for y := 2; y < 6; y++ {
		for x := 2; x < 5; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '#' || cell.Color != ColorCyan {
				t.Errorf("DrawRect missed cell (%d, %d): %+v", x, y, cell)
			}
		}
	}

	// Outside the rect should be untouched
	if s.Get(5, 2) != ' ' || s.Get(2, 6) != ' ' {
		t.Error("DrawRect drew outside its bounds")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("DrawBox corners wrong, rows:\n%q\n%q", s.Row(1), s.Row(4))
	}
	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("DrawBox horizontal edges wrong")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 3) != '│' {
		t.Error("DrawBox vertical edges wrong")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(5, 8)
	s.DrawVLine(2, 1, 4, '|', ColorGray)

	for y := 1; y < 5; y++ {
		cell := s.GetCell(2, y)
		if cell.Rune != '|' || cell.Color != ColorGray {
			t.Errorf("DrawVLine missed (2, %d): %+v", y, cell)
		}
	}
	if s.Get(2, 0) != ' ' || s.Get(2, 5) != ' ' {
		t.Error("DrawVLine drew outside its length")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize() dimensions = %dx%d, expected 20x5", s.Width(), s.Height())
	}

	// Content within the preserved region survives
	if s.Get(3, 3) != 'X' {
		t.Error("Resize should preserve content where possible")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "  b" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Row(-1) != "    " {
		t.Error("out of bounds Row should return spaces")
	}
	if s.Row(5) != "    " {
		t.Error("out of bounds Row should return spaces")
	}
}
