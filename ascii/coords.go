package ascii

import "math"

// Default pixel-per-character ratios, reflecting the aspect of a typical
// monospace glyph.
const (
	DefaultCharWidthRatio  = 8.0
	DefaultCharHeightRatio = 12.0
)

// minRenderableChars is the smallest span on either axis that can show all
// four corners plus one edge segment.
const minRenderableChars = 3

// gridMargin is the blank border, in characters, kept around the canvas
// bounds on every side of the grid.
const gridMargin = 1

// Ratios is a pixel-to-character scale pair, one factor per axis.
type Ratios struct {
	CharWidth  float64
	CharHeight float64
}

// DefaultRatios returns the fixed default scale pair.
func DefaultRatios() Ratios {
	return Ratios{CharWidth: DefaultCharWidthRatio, CharHeight: DefaultCharHeightRatio}
}

// PixelToChar converts a pixel position to a character cell using floor
// division, so negative coordinates keep moving left/up.
func PixelToChar(px, py float64, r Ratios) (col, row int) {
	col = int(math.Floor(px / r.CharWidth))
	row = int(math.Floor(py / r.CharHeight))
	return col, row
}

// CharToPixel is the inverse of PixelToChar, returning the top-left pixel
// of the cell.
func CharToPixel(col, row int, r Ratios) (px, py float64) {
	return float64(col) * r.CharWidth, float64(row) * r.CharHeight
}

// CharBounds is the character-space rectangle a box or content region
// occupies. End coordinates are inclusive.
type CharBounds struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
	Width    int
	Height   int
}

// IndexBoxes builds the id lookup used for ancestor walks. Every box in the
// input is indexed regardless of visibility, since an invisible ancestor
// still positions its children.
func IndexBoxes(boxes []Box) map[string]*Box {
	index := make(map[string]*Box, len(boxes))
	for i := range boxes {
		index[boxes[i].ID] = &boxes[i]
	}
	return index
}

// absolutePosition walks the ancestor chain accumulating each ancestor's
// position plus one character-width border and its padding. ASCII borders
// are always exactly one character regardless of pixel border thickness;
// anything finer would accumulate fractional offsets through nesting.
// The caller guarantees the parent chain is acyclic.
func absolutePosition(box *Box, index map[string]*Box, r Ratios) (x, y float64) {
	x, y = box.X, box.Y
	for parent := index[box.ParentID]; parent != nil; parent = index[parent.ParentID] {
		x += parent.X + r.CharWidth + parent.Padding
		y += parent.Y + r.CharHeight + parent.Padding
	}
	return x, y
}

// contentOrigin is the absolute pixel position of a box's interior, past its
// own border character and padding. Children and nested lines are placed
// relative to this point.
func contentOrigin(box *Box, index map[string]*Box, r Ratios) (x, y float64) {
	x, y = absolutePosition(box, index, r)
	return x + r.CharWidth + box.Padding, y + r.CharHeight + box.Padding
}

// GetBoxCharBounds computes the character-space rectangle of a box from its
// accumulated absolute pixel position and its own pixel size.
func GetBoxCharBounds(box *Box, index map[string]*Box, r Ratios) CharBounds {
	ax, ay := absolutePosition(box, index, r)
	startCol, startRow := PixelToChar(ax, ay, r)

	width := int(box.Width / r.CharWidth)
	height := int(box.Height / r.CharHeight)
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return CharBounds{
		StartRow: startRow,
		StartCol: startCol,
		EndRow:   startRow + height - 1,
		EndCol:   startCol + width - 1,
		Width:    width,
		Height:   height,
	}
}

// CalculateCanvasBounds returns the min/max character bounds over all boxes,
// or a zeroed rectangle when the list is empty.
func CalculateCanvasBounds(boxes []Box, index map[string]*Box, r Ratios) CharBounds {
	if len(boxes) == 0 {
		return CharBounds{}
	}

	first := true
	var minRow, minCol, maxRow, maxCol int
	for i := range boxes {
		b := GetBoxCharBounds(&boxes[i], index, r)
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		if first {
			minRow, minCol = b.StartRow, b.StartCol
			maxRow, maxCol = b.EndRow, b.EndCol
			first = false
			continue
		}
		if b.StartRow < minRow {
			minRow = b.StartRow
		}
		if b.StartCol < minCol {
			minCol = b.StartCol
		}
		if b.EndRow > maxRow {
			maxRow = b.EndRow
		}
		if b.EndCol > maxCol {
			maxCol = b.EndCol
		}
	}
	if first {
		return CharBounds{}
	}

	return CharBounds{
		StartRow: minRow,
		StartCol: minCol,
		EndRow:   maxRow,
		EndCol:   maxCol,
		Width:    maxCol - minCol + 1,
		Height:   maxRow - minRow + 1,
	}
}

// GridDimensions is the allocated grid size plus the offset translating
// absolute character coordinates into grid-local indices.
type GridDimensions struct {
	Width     int
	Height    int
	OffsetCol int
	OffsetRow int
}

// CalculateGridDimensions expands the canvas bounds by one character of
// margin on each side and derives the absolute-to-local offset.
func CalculateGridDimensions(boxes []Box, index map[string]*Box, r Ratios) GridDimensions {
	bounds := CalculateCanvasBounds(boxes, index, r)
	return GridDimensions{
		Width:     bounds.Width + 2*gridMargin,
		Height:    bounds.Height + 2*gridMargin,
		OffsetCol: gridMargin - bounds.StartCol,
		OffsetRow: gridMargin - bounds.StartRow,
	}
}

// CalculateAdaptiveRatios shrinks the default scale just enough that the
// smallest visible box spans at least three characters on each axis, so
// every box can render a complete border. A ratio never grows above the
// supplied default and never drops below 1 px/char.
func CalculateAdaptiveRatios(boxes []Box, defaults Ratios) Ratios {
	minWidth := math.Inf(1)
	minHeight := math.Inf(1)
	for i := range boxes {
		b := &boxes[i]
		if !b.Visible {
			continue
		}
		if b.Width > 0 && b.Width < minWidth {
			minWidth = b.Width
		}
		if b.Height > 0 && b.Height < minHeight {
			minHeight = b.Height
		}
	}

	out := defaults
	if !math.IsInf(minWidth, 1) && minWidth/defaults.CharWidth < minRenderableChars {
		out.CharWidth = clampRatio(minWidth/minRenderableChars, defaults.CharWidth)
	}
	if !math.IsInf(minHeight, 1) && minHeight/defaults.CharHeight < minRenderableChars {
		out.CharHeight = clampRatio(minHeight/minRenderableChars, defaults.CharHeight)
	}
	return out
}

func clampRatio(ratio, max float64) float64 {
	if ratio > max {
		return max
	}
	if ratio < 1 {
		return 1
	}
	return ratio
}

// GetBoxContentBounds derives the interior writable region by insetting the
// full bounds by the one-character border plus the box's padding converted
// to characters. Width and height clamp to zero rather than going negative.
func GetBoxContentBounds(box *Box, bounds CharBounds, r Ratios) CharBounds {
	padCols := int(box.Padding / r.CharWidth)
	padRows := int(box.Padding / r.CharHeight)

	insetCols := 1 + padCols
	insetRows := 1 + padRows

	width := bounds.Width - 2*insetCols
	height := bounds.Height - 2*insetRows
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return CharBounds{
		StartRow: bounds.StartRow + insetRows,
		StartCol: bounds.StartCol + insetCols,
		EndRow:   bounds.StartRow + insetRows + height - 1,
		EndCol:   bounds.StartCol + insetCols + width - 1,
		Width:    width,
		Height:   height,
	}
}
