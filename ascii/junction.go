package ascii

// Neighbor connection bits for junction classification.
const (
	connUp = 1 << iota
	connDown
	connLeft
	connRight
)

// ResolveJunctions scans the finished border layer and rewrites each border
// cell into the junction glyph matching its four axis-adjacent neighbors.
//
// A neighbor counts only when it is itself border ink carrying a recognized
// box-drawing character. Classification depends purely on that structural
// presence, never on which junction variant a neighbor currently shows, so
// the pass is order-independent and idempotent. The rewrite keeps the cell's
// own zIndex, owner and style, preserving occlusion order; only the glyph is
// looked up from the dominant style among the cell and its contributing
// neighbors.
func ResolveJunctions(g *Grid) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := &g.Cells[row][col]
			if !cell.IsBorder || !IsBorderGlyph(cell.Char) {
				continue
			}

			mask := 0
			styles := []BorderStyle{cell.Style}
			if s, ok := borderNeighbor(g, row-1, col); ok {
				mask |= connUp
				styles = append(styles, s)
			}
			if s, ok := borderNeighbor(g, row+1, col); ok {
				mask |= connDown
				styles = append(styles, s)
			}
			if s, ok := borderNeighbor(g, row, col-1); ok {
				mask |= connLeft
				styles = append(styles, s)
			}
			if s, ok := borderNeighbor(g, row, col+1); ok {
				mask |= connRight
				styles = append(styles, s)
			}

			glyph, ok := junctionGlyph(mask, DominantStyle(styles...))
			if !ok {
				continue
			}
			// Keep the cell's own style so later cells classified in this
			// pass read pre-pass values regardless of scan order.
			g.ForceSet(row, col, glyph, cell.ZIndex, cell.OwnerID, cell.Style, true, false)
		}
	}
}

// borderNeighbor reports whether the cell at the position is border ink with
// a recognized box-drawing character, and if so which style it carries.
func borderNeighbor(g *Grid, row, col int) (BorderStyle, bool) {
	cell := g.At(row, col)
	if cell == nil || !cell.IsBorder || !IsBorderGlyph(cell.Char) {
		return BorderNone, false
	}
	return cell.Style, true
}

// junctionGlyph classifies a connection pattern into the matching glyph of
// the given style. Cells touching at most one neighbor are left untouched.
func junctionGlyph(mask int, style BorderStyle) (rune, bool) {
	glyphs := style.Glyphs()
	switch mask {
	case connLeft | connRight:
		return glyphs.Horizontal, true
	case connUp | connDown:
		return glyphs.Vertical, true
	case connDown | connRight:
		return glyphs.TopLeft, true
	case connDown | connLeft:
		return glyphs.TopRight, true
	case connUp | connRight:
		return glyphs.BottomLeft, true
	case connUp | connLeft:
		return glyphs.BottomRight, true
	case connLeft | connRight | connDown:
		return glyphs.TeeDown, true
	case connLeft | connRight | connUp:
		return glyphs.TeeUp, true
	case connUp | connDown | connRight:
		return glyphs.TeeRight, true
	case connUp | connDown | connLeft:
		return glyphs.TeeLeft, true
	case connUp | connDown | connLeft | connRight:
		return glyphs.Cross, true
	}
	return 0, false
}
