package ascii

import (
	"sort"
	"strings"
)

// spanMarker returns the literal marker for an inline style. The output is
// plain text, so formatting becomes markdown characters rather than style
// codes.
func spanMarker(s SpanStyle) string {
	switch s {
	case SpanItalic:
		return "*"
	case SpanCode:
		return "`"
	default:
		return "**"
	}
}

// applySpans inserts the literal markers of every formatting span into the
// text value. Spans address rune offsets of the raw value; inserting from
// the back keeps earlier offsets valid.
func applySpans(content TextContent) string {
	if len(content.Spans) == 0 {
		return content.Value
	}

	runes := []rune(content.Value)
	spans := make([]TextSpan, len(content.Spans))
	copy(spans, content.Spans)
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start > spans[j].Start })

	for _, span := range spans {
		start, end := span.Start, span.End
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}
		marker := []rune(spanMarker(span.Style))
		out := make([]rune, 0, len(runes)+2*len(marker))
		out = append(out, runes[:start]...)
		out = append(out, marker...)
		out = append(out, runes[start:end]...)
		out = append(out, marker...)
		out = append(out, runes[end:]...)
		runes = out
	}
	return string(runes)
}

// wrapText word-wraps the text to the given width, honoring embedded
// newlines. Unbreakable words longer than the width are hard-split at the
// width boundary.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			for len([]rune(word)) > width {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				r := []rune(word)
				lines = append(lines, string(r[:width]))
				word = string(r[width:])
			}
			if word == "" {
				continue
			}
			switch {
			case current == "":
				current = word
			case len([]rune(current))+1+len([]rune(word)) <= width:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}

// alignOffset returns the starting column offset for a line within the
// content width. Centering floors the left pad, so an odd leftover space
// falls on the right.
func alignOffset(line string, width int, align Alignment) int {
	pad := width - len([]rune(line))
	if pad <= 0 {
		return 0
	}
	switch align {
	case AlignRight:
		return pad
	case AlignCenter:
		return pad / 2
	default:
		return 0
	}
}

// truncateLines keeps at most height lines. When truncation occurs, the
// final three characters of the last kept line become "..." (or the whole
// line does, if shorter).
func truncateLines(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) <= height {
		return lines
	}
	kept := append([]string(nil), lines[:height]...)
	last := []rune(kept[height-1])
	if len(last) >= 3 {
		kept[height-1] = string(last[:len(last)-3]) + "..."
	} else {
		kept[height-1] = "..."
	}
	return kept
}

// renderBoxText wraps, aligns and truncates a box's text into its interior
// content region. Every character is written with IsText set so downstream
// consumers can tell text from border ink.
func renderBoxText(g *Grid, box *Box, content CharBounds, zIndex int) {
	if content.Width <= 0 || content.Height <= 0 {
		return
	}
	if strings.TrimSpace(box.Text.Value) == "" {
		return
	}

	text := applySpans(box.Text)
	lines := truncateLines(wrapText(text, content.Width), content.Height)

	for i, line := range lines {
		row := content.StartRow + i
		col := content.StartCol + alignOffset(line, content.Width, box.Text.Align)
		for j, ch := range []rune(line) {
			g.Set(row, col+j, ch, zIndex, box.ID, BorderNone, false, true)
		}
	}
}
