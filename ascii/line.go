package ascii

// strokeGlyphs returns the horizontal and vertical run characters for a
// line style.
func strokeGlyphs(s LineStyle) (horizontal, vertical rune) {
	switch s {
	case LineDashed:
		return '┄', '┊'
	case LineDotted:
		return '┈', '┆'
	default:
		return '─', '│'
	}
}

type arrowDirection int

const (
	arrowLeft arrowDirection = iota
	arrowRight
	arrowUp
	arrowDown
)

// arrowGlyph returns the arrowhead character for a style pointing in the
// given outward direction, or 0 when no arrowhead is drawn.
func arrowGlyph(style ArrowStyle, dir arrowDirection) rune {
	switch style {
	case ArrowFilled:
		switch dir {
		case arrowLeft:
			return '◀'
		case arrowRight:
			return '▶'
		case arrowUp:
			return '▲'
		default:
			return '▼'
		}
	case ArrowSimple:
		switch dir {
		case arrowLeft:
			return '<'
		case arrowRight:
			return '>'
		case arrowUp:
			return '^'
		default:
			return 'v'
		}
	}
	return 0
}

// renderLine draws one connector into the grid: the run between its
// endpoints, optional arrowheads, and an optional inline label.
//
// Arrowheads always point away from the line toward their endpoint's
// outward direction, independent of which field (start or end) logically
// owns that endpoint, and are written one zIndex above the line body so the
// run can never occlude them. Labels clip silently at grid bounds.
func renderLine(g *Grid, line *Line, index map[string]*Box, r Ratios, dims GridDimensions) {
	sx, sy := line.StartX, line.StartY
	ex, ey := line.EndX, line.EndY
	if parent := index[line.ParentID]; parent != nil {
		// Nested lines are relative to the parent box's content origin.
		ox, oy := contentOrigin(parent, index, r)
		sx += ox
		sy += oy
		ex += ox
		ey += oy
	}

	startCol, startRow := PixelToChar(sx, sy, r)
	endCol, endRow := PixelToChar(ex, ey, r)
	startCol += dims.OffsetCol
	endCol += dims.OffsetCol
	startRow += dims.OffsetRow
	endRow += dims.OffsetRow

	horizontal, vertical := strokeGlyphs(line.Style)

	if line.Direction == Horizontal {
		row := startRow
		minCol, maxCol := startCol, endCol
		leftArrow, rightArrow := line.StartArrow, line.EndArrow
		if minCol > maxCol {
			minCol, maxCol = maxCol, minCol
			leftArrow, rightArrow = rightArrow, leftArrow
		}

		g.DrawHorizontalLine(row, minCol, maxCol, horizontal, line.ZIndex, line.ID, BorderNone, false)
		if ch := arrowGlyph(leftArrow, arrowLeft); ch != 0 {
			g.Set(row, minCol, ch, line.ZIndex+1, line.ID, BorderNone, false, false)
		}
		if ch := arrowGlyph(rightArrow, arrowRight); ch != 0 {
			g.Set(row, maxCol, ch, line.ZIndex+1, line.ID, BorderNone, false, false)
		}

		if line.Label != nil && line.Label.Text != "" {
			renderHorizontalLabel(g, line, row, minCol, maxCol)
		}
		return
	}

	col := startCol
	minRow, maxRow := startRow, endRow
	topArrow, bottomArrow := line.StartArrow, line.EndArrow
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
		topArrow, bottomArrow = bottomArrow, topArrow
	}

	g.DrawVerticalLine(col, minRow, maxRow, vertical, line.ZIndex, line.ID, BorderNone, false)
	if ch := arrowGlyph(topArrow, arrowUp); ch != 0 {
		g.Set(minRow, col, ch, line.ZIndex+1, line.ID, BorderNone, false, false)
	}
	if ch := arrowGlyph(bottomArrow, arrowDown); ch != 0 {
		g.Set(maxRow, col, ch, line.ZIndex+1, line.ID, BorderNone, false, false)
	}

	if line.Label != nil && line.Label.Text != "" {
		renderVerticalLabel(g, line, col, minRow, maxRow)
	}
}

// renderHorizontalLabel writes the label inline on the line's row. The
// anchor column follows the label position along the axis; middle centers
// the text over the run.
func renderHorizontalLabel(g *Grid, line *Line, row, minCol, maxCol int) {
	label := []rune(line.Label.Text)
	var col int
	switch line.Label.Position {
	case LabelStart:
		col = minCol + 1
	case LabelEnd:
		col = maxCol - len(label)
	default:
		col = (minCol+maxCol)/2 - len(label)/2
	}
	for i, ch := range label {
		// Same zIndex as the run; ties favor this later write.
		g.Set(row, col+i, ch, line.ZIndex, line.ID, BorderNone, false, true)
	}
}

// renderVerticalLabel writes the label horizontally beside the line, at the
// anchor row for the label position.
func renderVerticalLabel(g *Grid, line *Line, col, minRow, maxRow int) {
	label := []rune(line.Label.Text)
	var row int
	switch line.Label.Position {
	case LabelStart:
		row = minRow
	case LabelEnd:
		row = maxRow
	default:
		row = (minRow + maxRow) / 2
	}
	for i, ch := range label {
		g.Set(row, col+1+i, ch, line.ZIndex, line.ID, BorderNone, false, true)
	}
}
