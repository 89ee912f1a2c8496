package ascii

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// withDefaults fills unset option fields.
func (o Options) withDefaults() Options {
	if o.CharWidthRatio <= 0 {
		o.CharWidthRatio = DefaultCharWidthRatio
	}
	if o.CharHeightRatio <= 0 {
		o.CharHeightRatio = DefaultCharHeightRatio
	}
	// A border needs 3x3 characters no matter how small the caller's
	// minimum is; anything below that would fail to draw silently.
	if o.MinBoxCharsWidth < minRenderableChars {
		o.MinBoxCharsWidth = minRenderableChars
	}
	if o.MinBoxCharsHeight < minRenderableChars {
		o.MinBoxCharsHeight = minRenderableChars
	}
	return o
}

// CanGenerate is a caller-visible precheck so generation can short-circuit
// with a clear reason instead of producing a garbled partial grid.
func CanGenerate(boxes []Box) (bool, string) {
	if len(boxes) == 0 {
		return false, "no boxes to render"
	}
	for i := range boxes {
		if boxes[i].Visible {
			return true, ""
		}
	}
	return false, "all boxes are hidden"
}

// Generate runs the full pipeline over every box and line.
func Generate(boxes []Box, lines []Line, opts Options) Output {
	return generate(boxes, lines, "", opts)
}

// GenerateArtboard runs the pipeline restricted to the boxes and lines of
// one artboard.
func GenerateArtboard(artboardID string, boxes []Box, lines []Line, opts Options) Output {
	return generate(boxes, lines, artboardID, opts)
}

func generate(boxes []Box, lines []Line, artboardID string, opts Options) Output {
	opts = opts.withDefaults()
	out := Output{Timestamp: time.Now()}

	// Ancestor walks must see every box, including hidden ones and ones
	// outside the filter.
	index := IndexBoxes(boxes)

	var renderBoxes []Box
	for i := range boxes {
		b := boxes[i]
		if artboardID != "" && b.ArtboardID != artboardID {
			continue
		}
		if !b.Visible {
			continue
		}
		renderBoxes = append(renderBoxes, b)
	}
	var renderLines []Line
	for i := range lines {
		if artboardID != "" && lines[i].ArtboardID != artboardID {
			continue
		}
		renderLines = append(renderLines, lines[i])
	}

	if len(renderBoxes) == 0 {
		out.Warnings = append(out.Warnings, "no visible boxes to render")
		return out
	}

	ratios := CalculateAdaptiveRatios(renderBoxes, Ratios{
		CharWidth:  opts.CharWidthRatio,
		CharHeight: opts.CharHeightRatio,
	})
	dims := CalculateGridDimensions(renderBoxes, index, ratios)
	grid := NewGrid(dims.Width, dims.Height)

	sort.SliceStable(renderBoxes, func(i, j int) bool {
		return renderBoxes[i].ZIndex < renderBoxes[j].ZIndex
	})
	sort.SliceStable(renderLines, func(i, j int) bool {
		return renderLines[i].ZIndex < renderLines[j].ZIndex
	})

	type renderedBox struct {
		box    *Box
		bounds CharBounds
	}
	var rendered []renderedBox

	for i := range renderBoxes {
		box := &renderBoxes[i]
		bounds := GetBoxCharBounds(box, index, ratios)
		bounds = offsetBounds(bounds, dims)
		if bounds.Width < opts.MinBoxCharsWidth || bounds.Height < opts.MinBoxCharsHeight {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"box %s skipped: %dx%d characters is below the %dx%d minimum",
				box.ID, bounds.Width, bounds.Height, opts.MinBoxCharsWidth, opts.MinBoxCharsHeight))
			continue
		}
		if drawBoxBorder(grid, bounds, box.BorderStyle, box.ID, box.ZIndex) {
			rendered = append(rendered, renderedBox{box: box, bounds: bounds})
		}
	}

	for i := range renderLines {
		renderLine(grid, &renderLines[i], index, ratios, dims)
	}

	ResolveJunctions(grid)

	for _, rb := range rendered {
		content := GetBoxContentBounds(rb.box, rb.bounds, ratios)
		renderBoxText(grid, rb.box, content, rb.box.ZIndex)
	}

	if opts.ShowOverlapWarnings {
		for i := 0; i < len(rendered); i++ {
			for j := i + 1; j < len(rendered); j++ {
				a, b := rendered[i], rendered[j]
				if isAncestor(a.box, b.box, index) || isAncestor(b.box, a.box, index) {
					continue
				}
				if boundsIntersect(a.bounds, b.bounds) {
					out.Warnings = append(out.Warnings, fmt.Sprintf(
						"boxes %s and %s overlap", a.box.ID, b.box.ID))
				}
			}
		}
	}

	out.Content = grid.String()
	out.CharacterCount = grid.CharacterCount()
	out.LineCount = grid.LineCount()
	out.Dimensions = Dimensions{Width: grid.Width, Height: grid.Height}
	out.BoxCount = len(rendered)
	out.Warnings = append(out.Warnings, ValidateGridSize(grid.Width, grid.Height)...)

	if opts.IncludeMetadata {
		out.Content += fmt.Sprintf("\n\ngenerated %s | %d boxes | %dx%d chars",
			out.Timestamp.Format(time.RFC3339), out.BoxCount, grid.Width, grid.Height)
	}

	return out
}

// GenerateAllArtboards runs the full pipeline once per visible artboard,
// ascending by artboard z-index, and concatenates the results under
// artboard-name headers. Counts and warnings aggregate across artboards;
// each sub-pass computes its own adaptive ratios.
func GenerateAllArtboards(artboards []Artboard, boxes []Box, lines []Line, opts Options) Output {
	out := Output{Timestamp: time.Now()}

	ordered := make([]Artboard, len(artboards))
	copy(ordered, artboards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})

	var sections []string
	for _, ab := range ordered {
		if !ab.Visible {
			continue
		}
		sub := generate(boxes, lines, ab.ID, opts)

		name := ab.Name
		if name == "" {
			name = ab.ID
		}
		sections = append(sections, fmt.Sprintf("=== %s ===\n\n%s", name, sub.Content))

		out.CharacterCount += sub.CharacterCount
		out.BoxCount += sub.BoxCount
		for _, w := range sub.Warnings {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %s", name, w))
		}
		if sub.Dimensions.Width > out.Dimensions.Width {
			out.Dimensions.Width = sub.Dimensions.Width
		}
		out.Dimensions.Height += sub.Dimensions.Height
	}

	if len(sections) == 0 {
		out.Warnings = append(out.Warnings, "no visible artboards to render")
		return out
	}

	out.Content = strings.Join(sections, "\n\n")
	out.LineCount = strings.Count(out.Content, "\n") + 1
	return out
}

func offsetBounds(b CharBounds, dims GridDimensions) CharBounds {
	b.StartRow += dims.OffsetRow
	b.EndRow += dims.OffsetRow
	b.StartCol += dims.OffsetCol
	b.EndCol += dims.OffsetCol
	return b
}

// isAncestor reports whether a is on b's parent chain.
func isAncestor(a, b *Box, index map[string]*Box) bool {
	for parent := index[b.ParentID]; parent != nil; parent = index[parent.ParentID] {
		if parent.ID == a.ID {
			return true
		}
	}
	return false
}

func boundsIntersect(a, b CharBounds) bool {
	return a.StartCol <= b.EndCol && b.StartCol <= a.EndCol &&
		a.StartRow <= b.EndRow && b.StartRow <= a.EndRow
}
