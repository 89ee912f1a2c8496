package ascii

// BorderStyle selects the box-drawing character set used for a box outline.
type BorderStyle int

const (
	// BorderNone marks a cell that carries no border style.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderDashed uses dashed edges with single-line corners (┄, ┊, ┌, etc.)
	BorderDashed
)

func (b BorderStyle) String() string {
	switch b {
	case BorderSingle:
		return "single"
	case BorderDouble:
		return "double"
	case BorderDashed:
		return "dashed"
	default:
		return "none"
	}
}

// ParseBorderStyle maps a style name to its BorderStyle. Unknown names
// fall back to single, matching the renderer's treatment of missing styles.
func ParseBorderStyle(s string) BorderStyle {
	switch s {
	case "double":
		return BorderDouble
	case "dashed":
		return BorderDashed
	default:
		return BorderSingle
	}
}

// GlyphSet holds every character needed to draw and join borders of one style.
type GlyphSet struct {
	Horizontal rune
	Vertical   rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	TeeDown  rune // ┬  opens downward
	TeeUp    rune // ┴  opens upward
	TeeRight rune // ├  opens rightward
	TeeLeft  rune // ┤  opens leftward
	Cross    rune // ┼
}

// Glyphs returns the box-drawing characters for this border style.
// BorderNone and unknown styles resolve to the single-line set.
func (b BorderStyle) Glyphs() GlyphSet {
	switch b {
	case BorderDouble:
		return GlyphSet{
			Horizontal:  '═',
			Vertical:    '║',
			TopLeft:     '╔',
			TopRight:    '╗',
			BottomLeft:  '╚',
			BottomRight: '╝',
			TeeDown:     '╦',
			TeeUp:       '╩',
			TeeRight:    '╠',
			TeeLeft:     '╣',
			Cross:       '╬',
		}
	case BorderDashed:
		// Dashed varies only its straight edges; corners and junctions
		// reuse the single-line set so joins stay connected.
		return GlyphSet{
			Horizontal:  '┄',
			Vertical:    '┊',
			TopLeft:     '┌',
			TopRight:    '┐',
			BottomLeft:  '└',
			BottomRight: '┘',
			TeeDown:     '┬',
			TeeUp:       '┴',
			TeeRight:    '├',
			TeeLeft:     '┤',
			Cross:       '┼',
		}
	default:
		return GlyphSet{
			Horizontal:  '─',
			Vertical:    '│',
			TopLeft:     '┌',
			TopRight:    '┐',
			BottomLeft:  '└',
			BottomRight: '┘',
			TeeDown:     '┬',
			TeeUp:       '┴',
			TeeRight:    '├',
			TeeLeft:     '┤',
			Cross:       '┼',
		}
	}
}

// styleRank orders styles for dominance resolution: an emphasized double
// border is never demoted by a touching plain or dashed neighbor.
func styleRank(b BorderStyle) int {
	switch b {
	case BorderDouble:
		return 3
	case BorderSingle:
		return 2
	case BorderDashed:
		return 1
	default:
		// Missing styles count as single.
		return 2
	}
}

// DominantStyle picks the highest-priority style among those meeting at a
// cell, using the fixed ranking double > single > dashed. With no input it
// returns single.
func DominantStyle(styles ...BorderStyle) BorderStyle {
	best := BorderSingle
	bestRank := 0
	for _, s := range styles {
		if s == BorderNone {
			s = BorderSingle
		}
		if r := styleRank(s); r > bestRank {
			best = s
			bestRank = r
		}
	}
	return best
}

// IsBorderGlyph reports whether r is one of the recognized box-drawing
// characters produced by any border style. The junction resolver only
// connects through these.
func IsBorderGlyph(r rune) bool {
	switch r {
	case '─', '│', '┌', '┐', '└', '┘', '┬', '┴', '├', '┤', '┼',
		'═', '║', '╔', '╗', '╚', '╝', '╦', '╩', '╠', '╣', '╬',
		'┄', '┊':
		return true
	}
	return false
}
