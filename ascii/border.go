package ascii

// drawBoxBorder writes one box's four corners and four edges into the grid
// at its character-space bounds. Every cell is tagged as border ink with the
// box's id and style, so later boxes can occlude it through the grid's own
// z-check and the junction pass can find it.
//
// Boxes smaller than 3x3 characters cannot show all four corners and are
// skipped entirely; the return value tells the caller whether anything was
// drawn.
func drawBoxBorder(g *Grid, bounds CharBounds, style BorderStyle, ownerID string, zIndex int) bool {
	if bounds.Width < minRenderableChars || bounds.Height < minRenderableChars {
		return false
	}

	glyphs := style.Glyphs()
	top := bounds.StartRow
	bottom := bounds.EndRow
	left := bounds.StartCol
	right := bounds.EndCol

	g.Set(top, left, glyphs.TopLeft, zIndex, ownerID, style, true, false)
	g.Set(top, right, glyphs.TopRight, zIndex, ownerID, style, true, false)
	g.Set(bottom, left, glyphs.BottomLeft, zIndex, ownerID, style, true, false)
	g.Set(bottom, right, glyphs.BottomRight, zIndex, ownerID, style, true, false)

	if right-left > 1 {
		g.DrawHorizontalLine(top, left+1, right-1, glyphs.Horizontal, zIndex, ownerID, style, true)
		g.DrawHorizontalLine(bottom, left+1, right-1, glyphs.Horizontal, zIndex, ownerID, style, true)
	}
	if bottom-top > 1 {
		g.DrawVerticalLine(left, top+1, bottom-1, glyphs.Vertical, zIndex, ownerID, style, true)
		g.DrawVerticalLine(right, top+1, bottom-1, glyphs.Vertical, zIndex, ownerID, style, true)
	}

	return true
}
