package ascii

import (
	"fmt"
	"strings"
)

// Output size thresholds checked by ValidateGridSize. Oversized grids are
// flagged with warnings, never truncated.
const (
	maxGridLines      = 5000
	maxGridLineLength = 1000
)

// CharCell is one cell of the render grid. ZIndex starts at -1 for empty
// cells so that any write at z >= 0 lands.
type CharCell struct {
	Char     rune
	ZIndex   int
	OwnerID  string
	Style    BorderStyle // BorderNone when the cell carries no border ink
	IsBorder bool
	IsText   bool
}

// Grid is a rectangular matrix of CharCell, row-major. The shape is fixed
// for the duration of one generation pass; cells are mutable.
type Grid struct {
	Width  int
	Height int
	Cells  [][]CharCell
}

// NewGrid allocates a grid of empty cells (space, zIndex -1). Dimensions
// below 1 are clamped to 1.
func NewGrid(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]CharCell, height)
	for row := range cells {
		cells[row] = make([]CharCell, width)
		for col := range cells[row] {
			cells[row][col] = CharCell{Char: ' ', ZIndex: -1}
		}
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether the cell position is inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the cell at the position, or nil when out of bounds.
func (g *Grid) At(row, col int) *CharCell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.Cells[row][col]
}

// Set writes a character into a cell, subject to the occlusion rule: the
// write lands only when zIndex >= the cell's current zIndex, so the highest
// z-index wins and ties favor the later write. Out-of-bounds writes are
// dropped. Returns whether the write occurred.
func (g *Grid) Set(row, col int, ch rune, zIndex int, ownerID string, style BorderStyle, isBorder, isText bool) bool {
	if !g.InBounds(row, col) {
		return false
	}
	cell := &g.Cells[row][col]
	if zIndex < cell.ZIndex {
		return false
	}
	*cell = CharCell{
		Char:     ch,
		ZIndex:   zIndex,
		OwnerID:  ownerID,
		Style:    style,
		IsBorder: isBorder,
		IsText:   isText,
	}
	return true
}

// ForceSet writes a cell bypassing the z-index check. It exists for junction
// rewriting, where the written zIndex is taken from the cell itself so the
// occlusion order is preserved.
func (g *Grid) ForceSet(row, col int, ch rune, zIndex int, ownerID string, style BorderStyle, isBorder, isText bool) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.Cells[row][col] = CharCell{
		Char:     ch,
		ZIndex:   zIndex,
		OwnerID:  ownerID,
		Style:    style,
		IsBorder: isBorder,
		IsText:   isText,
	}
	return true
}

// DrawHorizontalLine writes ch into every cell of the inclusive column run,
// through the z-checked Set.
func (g *Grid) DrawHorizontalLine(row, colStart, colEnd int, ch rune, zIndex int, ownerID string, style BorderStyle, isBorder bool) {
	if colStart > colEnd {
		colStart, colEnd = colEnd, colStart
	}
	for col := colStart; col <= colEnd; col++ {
		g.Set(row, col, ch, zIndex, ownerID, style, isBorder, false)
	}
}

// DrawVerticalLine writes ch into every cell of the inclusive row run.
func (g *Grid) DrawVerticalLine(col, rowStart, rowEnd int, ch rune, zIndex int, ownerID string, style BorderStyle, isBorder bool) {
	if rowStart > rowEnd {
		rowStart, rowEnd = rowEnd, rowStart
	}
	for row := rowStart; row <= rowEnd; row++ {
		g.Set(row, col, ch, zIndex, ownerID, style, isBorder, false)
	}
}

// FillRegion writes ch into every cell of the inclusive bounds rectangle.
func (g *Grid) FillRegion(b CharBounds, ch rune, zIndex int, ownerID string) {
	for row := b.StartRow; row <= b.EndRow; row++ {
		for col := b.StartCol; col <= b.EndCol; col++ {
			g.Set(row, col, ch, zIndex, ownerID, BorderNone, false, false)
		}
	}
}

// String serializes the grid: trailing spaces are trimmed from each row and
// all-blank rows are trimmed from the bottom. Top blank rows are preserved
// so absolute vertical alignment between sibling artboards is not lost.
func (g *Grid) String() string {
	lines := make([]string, g.Height)
	for row := range g.Cells {
		var sb strings.Builder
		sb.Grow(g.Width)
		for col := range g.Cells[row] {
			sb.WriteRune(g.Cells[row][col].Char)
		}
		lines[row] = strings.TrimRight(sb.String(), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// CharacterCount counts non-space cells.
func (g *Grid) CharacterCount() int {
	count := 0
	for row := range g.Cells {
		for col := range g.Cells[row] {
			if g.Cells[row][col].Char != ' ' {
				count++
			}
		}
	}
	return count
}

// LineCount is the grid height after bottom trimming: the index of the last
// row containing any non-space cell, plus one.
func (g *Grid) LineCount() int {
	for row := g.Height - 1; row >= 0; row-- {
		for col := range g.Cells[row] {
			if g.Cells[row][col].Char != ' ' {
				return row + 1
			}
		}
	}
	return 0
}

// ValidateGridSize flags grids that exceed the output thresholds, returning
// human-readable warnings. Generation continues regardless; degraded output
// is preferred over failure.
func ValidateGridSize(width, height int) []string {
	var warnings []string
	if height > maxGridLines {
		warnings = append(warnings, fmt.Sprintf("output height %d exceeds %d lines; the result may be unusable", height, maxGridLines))
	}
	if width > maxGridLineLength {
		warnings = append(warnings, fmt.Sprintf("output width %d exceeds %d characters per line; the result may be unusable", width, maxGridLineLength))
	}
	return warnings
}
