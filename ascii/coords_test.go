package ascii

import (
	"testing"
)

func TestPixelToChar_FloorDivision(t *testing.T) {
	r := DefaultRatios()

	tests := []struct {
		px, py           float64
		wantCol, wantRow int
	}{
		{0, 0, 0, 0},
		{7.9, 11.9, 0, 0},
		{8, 12, 1, 1},
		{100, 50, 12, 4},
		{-1, -1, -1, -1},
		{-8, -12, -1, -1},
		{-8.1, -12.1, -2, -2},
	}
	for _, tt := range tests {
		col, row := PixelToChar(tt.px, tt.py, r)
		if col != tt.wantCol || row != tt.wantRow {
			t.Errorf("PixelToChar(%v, %v) = (%d, %d), want (%d, %d)",
				tt.px, tt.py, col, row, tt.wantCol, tt.wantRow)
		}
	}
}

func TestCharToPixel_Inverse(t *testing.T) {
	r := DefaultRatios()
	for _, c := range []struct{ col, row int }{{0, 0}, {5, 3}, {-2, -1}} {
		px, py := CharToPixel(c.col, c.row, r)
		col, row := PixelToChar(px, py, r)
		if col != c.col || row != c.row {
			t.Errorf("roundtrip (%d, %d) -> (%v, %v) -> (%d, %d)",
				c.col, c.row, px, py, col, row)
		}
	}
}

func TestGetBoxCharBounds_Simple(t *testing.T) {
	boxes := []Box{{ID: "a", X: 0, Y: 0, Width: 400, Height: 300, Visible: true}}
	index := IndexBoxes(boxes)

	b := GetBoxCharBounds(&boxes[0], index, DefaultRatios())
	want := CharBounds{StartRow: 0, StartCol: 0, EndRow: 24, EndCol: 49, Width: 50, Height: 25}
	if b != want {
		t.Errorf("GetBoxCharBounds = %+v, want %+v", b, want)
	}
}

func TestGetBoxCharBounds_NestedAddsBorderAndPadding(t *testing.T) {
	boxes := []Box{
		{ID: "parent", X: 0, Y: 0, Width: 400, Height: 300, Padding: 8, Visible: true},
		{ID: "child", X: 0, Y: 0, Width: 80, Height: 60, ParentID: "parent", Visible: true},
	}
	index := IndexBoxes(boxes)
	r := DefaultRatios()

	b := GetBoxCharBounds(&boxes[1], index, r)
	// Child absolute x = parent.X + 1 char border (8px) + padding (8px) = 16px -> col 2.
	// Child absolute y = parent.Y + 1 char border (12px) + padding (8px) = 20px -> row 1.
	if b.StartCol != 2 || b.StartRow != 1 {
		t.Errorf("nested child starts at (%d, %d), want (1, 2) row/col", b.StartRow, b.StartCol)
	}
	if b.Width != 10 || b.Height != 5 {
		t.Errorf("nested child spans %dx%d, want 10x5", b.Width, b.Height)
	}
}

func TestGetBoxCharBounds_DeepNesting(t *testing.T) {
	boxes := []Box{
		{ID: "a", X: 0, Y: 0, Width: 800, Height: 600, Visible: true},
		{ID: "b", X: 0, Y: 0, Width: 400, Height: 300, ParentID: "a", Visible: true},
		{ID: "c", X: 0, Y: 0, Width: 100, Height: 60, ParentID: "b", Visible: true},
	}
	index := IndexBoxes(boxes)
	r := DefaultRatios()

	b := GetBoxCharBounds(&boxes[2], index, r)
	// Two ancestors, each contributing one character of border: col 2, row 2.
	if b.StartCol != 2 || b.StartRow != 2 {
		t.Errorf("deep child starts at (%d, %d), want (2, 2)", b.StartRow, b.StartCol)
	}
}

func TestGetBoxCharBounds_WidthNeverNegative(t *testing.T) {
	boxes := []Box{{ID: "a", Width: -50, Height: -10, Visible: true}}
	index := IndexBoxes(boxes)

	b := GetBoxCharBounds(&boxes[0], index, DefaultRatios())
	if b.Width < 0 || b.Height < 0 {
		t.Errorf("bounds %dx%d, want non-negative", b.Width, b.Height)
	}
}

func TestCalculateCanvasBounds_Empty(t *testing.T) {
	got := CalculateCanvasBounds(nil, map[string]*Box{}, DefaultRatios())
	if got != (CharBounds{}) {
		t.Errorf("empty canvas bounds = %+v, want zero rectangle", got)
	}
}

func TestCalculateCanvasBounds_Union(t *testing.T) {
	boxes := []Box{
		{ID: "a", X: 0, Y: 0, Width: 80, Height: 60, Visible: true},
		{ID: "b", X: 160, Y: 120, Width: 80, Height: 60, Visible: true},
	}
	index := IndexBoxes(boxes)

	got := CalculateCanvasBounds(boxes, index, DefaultRatios())
	want := CharBounds{StartRow: 0, StartCol: 0, EndRow: 14, EndCol: 29, Width: 30, Height: 15}
	if got != want {
		t.Errorf("canvas bounds = %+v, want %+v", got, want)
	}
}

func TestCalculateGridDimensions_AddsMargin(t *testing.T) {
	boxes := []Box{{ID: "a", X: 0, Y: 0, Width: 80, Height: 60, Visible: true}}
	index := IndexBoxes(boxes)

	dims := CalculateGridDimensions(boxes, index, DefaultRatios())
	if dims.Width != 12 || dims.Height != 7 {
		t.Errorf("grid dimensions = %dx%d, want 12x7", dims.Width, dims.Height)
	}
	if dims.OffsetCol != 1 || dims.OffsetRow != 1 {
		t.Errorf("offsets = (%d, %d), want (1, 1)", dims.OffsetCol, dims.OffsetRow)
	}
}

func TestCalculateAdaptiveRatios(t *testing.T) {
	defaults := DefaultRatios()

	tests := []struct {
		name  string
		boxes []Box
		wantW float64
		wantH float64
	}{
		{
			"large boxes keep defaults",
			[]Box{{ID: "a", Width: 400, Height: 300, Visible: true}},
			defaults.CharWidth, defaults.CharHeight,
		},
		{
			"small box shrinks to guarantee three characters",
			[]Box{{ID: "a", Width: 12, Height: 300, Visible: true}},
			4, defaults.CharHeight,
		},
		{
			"ratio never drops below one",
			[]Box{{ID: "a", Width: 2, Height: 2, Visible: true}},
			1, 1,
		},
		{
			"hidden boxes are ignored",
			[]Box{
				{ID: "a", Width: 2, Height: 2, Visible: false},
				{ID: "b", Width: 400, Height: 300, Visible: true},
			},
			defaults.CharWidth, defaults.CharHeight,
		},
		{
			"no visible boxes keeps defaults",
			[]Box{{ID: "a", Width: 5, Height: 5, Visible: false}},
			defaults.CharWidth, defaults.CharHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAdaptiveRatios(tt.boxes, defaults)
			if got.CharWidth != tt.wantW || got.CharHeight != tt.wantH {
				t.Errorf("CalculateAdaptiveRatios = %+v, want {%v %v}", got, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCalculateAdaptiveRatios_Bounds(t *testing.T) {
	defaults := DefaultRatios()
	widths := []float64{0.5, 1, 2, 5, 11, 12, 13, 23, 24, 25, 100, 1000}

	for _, w := range widths {
		boxes := []Box{{ID: "a", Width: w, Height: w, Visible: true}}
		got := CalculateAdaptiveRatios(boxes, defaults)
		if got.CharWidth < 1 || got.CharWidth > defaults.CharWidth {
			t.Errorf("width %v: ratio %v outside [1, %v]", w, got.CharWidth, defaults.CharWidth)
		}
		if got.CharHeight < 1 || got.CharHeight > defaults.CharHeight {
			t.Errorf("height %v: ratio %v outside [1, %v]", w, got.CharHeight, defaults.CharHeight)
		}
	}
}

func TestGetBoxContentBounds(t *testing.T) {
	boxes := []Box{{ID: "a", X: 0, Y: 0, Width: 400, Height: 300, Padding: 8, Visible: true}}
	index := IndexBoxes(boxes)
	r := DefaultRatios()

	full := GetBoxCharBounds(&boxes[0], index, r)
	content := GetBoxContentBounds(&boxes[0], full, r)

	// Padding 8px is one column and zero rows at the default ratios.
	if content.StartCol != 2 || content.StartRow != 1 {
		t.Errorf("content starts at (%d, %d), want (1, 2)", content.StartRow, content.StartCol)
	}
	if content.Width != full.Width-4 || content.Height != full.Height-2 {
		t.Errorf("content spans %dx%d, want %dx%d",
			content.Width, content.Height, full.Width-4, full.Height-2)
	}
}

func TestGetBoxContentBounds_ClampsToZero(t *testing.T) {
	box := Box{ID: "a", Padding: 100}
	full := CharBounds{StartRow: 0, StartCol: 0, EndRow: 2, EndCol: 2, Width: 3, Height: 3}

	content := GetBoxContentBounds(&box, full, DefaultRatios())
	if content.Width != 0 || content.Height != 0 {
		t.Errorf("content spans %dx%d, want 0x0", content.Width, content.Height)
	}
}

func TestContentBoundsWithinFullBounds(t *testing.T) {
	boxes := []Box{
		{ID: "a", X: 0, Y: 0, Width: 400, Height: 300, Visible: true},
		{ID: "b", X: 10, Y: 20, Width: 64, Height: 48, Padding: 4, Visible: true},
		{ID: "c", X: 0, Y: 0, Width: 24, Height: 36, Padding: 16, Visible: true},
	}
	index := IndexBoxes(boxes)
	r := DefaultRatios()

	for i := range boxes {
		full := GetBoxCharBounds(&boxes[i], index, r)
		content := GetBoxContentBounds(&boxes[i], full, r)
		if content.Width > full.Width || content.Height > full.Height {
			t.Errorf("box %s: content %dx%d exceeds full %dx%d",
				boxes[i].ID, content.Width, content.Height, full.Width, full.Height)
		}
		if content.Width < 0 || content.Height < 0 {
			t.Errorf("box %s: negative content bounds %+v", boxes[i].ID, content)
		}
	}
}
