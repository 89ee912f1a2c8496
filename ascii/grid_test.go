package ascii

import (
	"strings"
	"testing"
)

func TestNewGrid_EmptyCells(t *testing.T) {
	g := NewGrid(4, 3)

	if g.Width != 4 || g.Height != 3 {
		t.Fatalf("NewGrid(4, 3) = %dx%d, want 4x3", g.Width, g.Height)
	}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if cell.Char != ' ' || cell.ZIndex != -1 {
				t.Errorf("cell (%d,%d) = %+v, want empty cell with zIndex -1", row, col, cell)
			}
		}
	}
}

func TestNewGrid_ClampsToOne(t *testing.T) {
	g := NewGrid(0, -5)
	if g.Width != 1 || g.Height != 1 {
		t.Errorf("NewGrid(0, -5) = %dx%d, want 1x1", g.Width, g.Height)
	}
}

func TestGrid_Set_OutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)

	positions := []struct{ row, col int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100},
	}
	for _, p := range positions {
		if g.Set(p.row, p.col, 'x', 0, "a", BorderNone, false, false) {
			t.Errorf("Set(%d, %d) out of bounds returned true", p.row, p.col)
		}
	}
}

func TestGrid_Set_OcclusionRule(t *testing.T) {
	tests := []struct {
		name     string
		firstZ   int
		secondZ  int
		wantChar rune
		wantSet  bool
	}{
		{"higher z wins", 1, 5, 'b', true},
		{"lower z rejected", 5, 1, 'a', false},
		{"equal z favors later write", 3, 3, 'b', true},
		{"zero z overwrites empty", -1, 0, 'b', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(1, 1)
			g.Set(0, 0, 'a', tt.firstZ, "first", BorderNone, false, false)
			got := g.Set(0, 0, 'b', tt.secondZ, "second", BorderNone, false, false)
			if got != tt.wantSet {
				t.Errorf("second Set returned %v, want %v", got, tt.wantSet)
			}
			if g.Cells[0][0].Char != tt.wantChar {
				t.Errorf("cell char = %q, want %q", g.Cells[0][0].Char, tt.wantChar)
			}
		})
	}
}

func TestGrid_Set_OrderIndependence(t *testing.T) {
	// The final character must come from the higher z-index write,
	// regardless of write order.
	g1 := NewGrid(1, 1)
	g1.Set(0, 0, 'l', 1, "low", BorderNone, false, false)
	g1.Set(0, 0, 'h', 9, "high", BorderNone, false, false)

	g2 := NewGrid(1, 1)
	g2.Set(0, 0, 'h', 9, "high", BorderNone, false, false)
	g2.Set(0, 0, 'l', 1, "low", BorderNone, false, false)

	if g1.Cells[0][0].Char != 'h' || g2.Cells[0][0].Char != 'h' {
		t.Errorf("occlusion not monotonic: got %q and %q, want 'h' in both orders",
			g1.Cells[0][0].Char, g2.Cells[0][0].Char)
	}
}

func TestGrid_ForceSet_BypassesZCheck(t *testing.T) {
	g := NewGrid(1, 1)
	g.Set(0, 0, 'a', 10, "a", BorderNone, false, false)

	if !g.ForceSet(0, 0, 'b', 2, "b", BorderNone, false, false) {
		t.Fatal("ForceSet in bounds returned false")
	}
	if g.Cells[0][0].Char != 'b' || g.Cells[0][0].ZIndex != 2 {
		t.Errorf("cell = %+v, want char 'b' with zIndex 2", g.Cells[0][0])
	}
}

func TestGrid_DrawLines(t *testing.T) {
	g := NewGrid(5, 5)
	g.DrawHorizontalLine(2, 3, 1, '-', 0, "h", BorderNone, false) // reversed ends
	g.DrawVerticalLine(0, 1, 3, '|', 0, "v", BorderNone, false)

	for col := 1; col <= 3; col++ {
		if g.Cells[2][col].Char != '-' {
			t.Errorf("cell (2,%d) = %q, want '-'", col, g.Cells[2][col].Char)
		}
	}
	for row := 1; row <= 3; row++ {
		if g.Cells[row][0].Char != '|' {
			t.Errorf("cell (%d,0) = %q, want '|'", row, g.Cells[row][0].Char)
		}
	}
}

func TestGrid_FillRegion(t *testing.T) {
	g := NewGrid(4, 4)
	g.FillRegion(CharBounds{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}, '#', 0, "f")

	if g.CharacterCount() != 4 {
		t.Errorf("CharacterCount = %d, want 4", g.CharacterCount())
	}
	if g.Cells[0][0].Char != ' ' || g.Cells[1][1].Char != '#' {
		t.Error("FillRegion wrote outside the bounds or missed the interior")
	}
}

func TestGrid_String_Trimming(t *testing.T) {
	g := NewGrid(6, 5)
	// Leave row 0 blank (top blanks are preserved), write on rows 1-2,
	// leave rows 3-4 blank (bottom blanks are trimmed).
	g.Set(1, 1, 'a', 0, "", BorderNone, false, false)
	g.Set(2, 0, 'b', 0, "", BorderNone, false, false)

	got := g.String()
	want := "\n a\nb"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Contains(got, " \n") {
		t.Error("rows contain trailing spaces")
	}
}

func TestGrid_Counts(t *testing.T) {
	g := NewGrid(4, 6)
	g.Set(0, 0, 'x', 0, "", BorderNone, false, false)
	g.Set(3, 2, 'y', 0, "", BorderNone, false, false)

	if got := g.CharacterCount(); got != 2 {
		t.Errorf("CharacterCount = %d, want 2", got)
	}
	if got := g.LineCount(); got != 4 {
		t.Errorf("LineCount = %d, want 4", got)
	}
}

func TestGrid_LineCount_Empty(t *testing.T) {
	g := NewGrid(3, 3)
	if got := g.LineCount(); got != 0 {
		t.Errorf("LineCount of empty grid = %d, want 0", got)
	}
}

func TestValidateGridSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantWarnings  int
	}{
		{"within limits", 80, 24, 0},
		{"too tall", 10, 6000, 1},
		{"too wide", 2000, 10, 1},
		{"both", 2000, 6000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateGridSize(tt.width, tt.height)
			if len(got) != tt.wantWarnings {
				t.Errorf("ValidateGridSize(%d, %d) = %v, want %d warnings",
					tt.width, tt.height, got, tt.wantWarnings)
			}
		})
	}
}
