package ascii

import "time"

// Alignment controls horizontal placement of wrapped text lines inside a
// box's content region.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment maps an alignment name to its Alignment, defaulting to left.
func ParseAlignment(s string) Alignment {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// SpanStyle is an inline formatting style applied to a slice of box text.
type SpanStyle int

const (
	SpanBold SpanStyle = iota
	SpanItalic
	SpanCode
)

func (s SpanStyle) String() string {
	switch s {
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	default:
		return "bold"
	}
}

// ParseSpanStyle maps a span style name, defaulting to bold.
func ParseSpanStyle(s string) SpanStyle {
	switch s {
	case "italic":
		return SpanItalic
	case "code":
		return SpanCode
	default:
		return SpanBold
	}
}

// TextSpan marks the rune range [Start, End) of the text value that carries
// an inline style. Since the output is plain text, styles become literal
// markdown markers.
type TextSpan struct {
	Start int
	End   int
	Style SpanStyle
}

// TextContent is a box's text value with alignment and inline formatting.
type TextContent struct {
	Value string
	Align Alignment
	Spans []TextSpan
}

// Box is a rectangular entity with resolved geometry in pixel coordinates,
// local to its parent (or artboard when it has no parent). The renderer
// never mutates boxes.
type Box struct {
	ID          string
	X, Y        float64
	Width       float64
	Height      float64
	BorderStyle BorderStyle
	Padding     float64
	Text        TextContent
	ParentID    string
	Children    []string
	ZIndex      int
	Visible     bool
	Locked      bool
	ArtboardID  string
}

// Direction is a connector line's dominant axis, fixed at creation.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseDirection maps an axis name, defaulting to horizontal.
func ParseDirection(s string) Direction {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

// ArrowStyle selects the arrowhead drawn at a line endpoint.
type ArrowStyle int

const (
	ArrowNone ArrowStyle = iota
	ArrowSimple
	ArrowFilled
)

func (a ArrowStyle) String() string {
	switch a {
	case ArrowSimple:
		return "simple"
	case ArrowFilled:
		return "filled"
	default:
		return "none"
	}
}

// ParseArrowStyle maps an arrowhead name, defaulting to none.
func ParseArrowStyle(s string) ArrowStyle {
	switch s {
	case "simple":
		return ArrowSimple
	case "filled":
		return ArrowFilled
	default:
		return ArrowNone
	}
}

// LineStyle selects the stroke characters of a connector line.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
)

func (l LineStyle) String() string {
	switch l {
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	default:
		return "solid"
	}
}

// ParseLineStyle maps a line style name, defaulting to solid.
func ParseLineStyle(s string) LineStyle {
	switch s {
	case "dashed":
		return LineDashed
	case "dotted":
		return LineDotted
	default:
		return LineSolid
	}
}

// LabelPosition anchors a line label along the line's axis.
type LabelPosition int

const (
	LabelStart LabelPosition = iota
	LabelMiddle
	LabelEnd
)

func (p LabelPosition) String() string {
	switch p {
	case LabelStart:
		return "start"
	case LabelEnd:
		return "end"
	default:
		return "middle"
	}
}

// ParseLabelPosition maps a label anchor name, defaulting to middle.
func ParseLabelPosition(s string) LabelPosition {
	switch s {
	case "start":
		return LabelStart
	case "end":
		return LabelEnd
	default:
		return LabelMiddle
	}
}

// LineLabel is an optional inline text label on a connector line.
type LineLabel struct {
	Text     string
	Position LabelPosition
}

// Line is a horizontal or vertical connector with optional arrowheads and
// label. Endpoints are absolute pixel coordinates unless ParentID is set,
// in which case they are relative to the parent box's content origin.
type Line struct {
	ID         string
	StartX     float64
	StartY     float64
	EndX       float64
	EndY       float64
	Direction  Direction
	StartArrow ArrowStyle
	EndArrow   ArrowStyle
	Style      LineStyle
	Label      *LineLabel
	ParentID   string
	ArtboardID string
	ZIndex     int
}

// Artboard is a named, independently bounded canvas region used as a
// rendering and export unit.
type Artboard struct {
	ID      string
	Name    string
	X, Y    float64
	Width   float64
	Height  float64
	Visible bool
	Locked  bool
	ZIndex  int
}

// Options tunes one generation pass. Zero values select the defaults.
type Options struct {
	CharWidthRatio  float64 // pixels per character column, default 8
	CharHeightRatio float64 // pixels per character row, default 12

	MinBoxCharsWidth  int // smallest renderable box width, default 3
	MinBoxCharsHeight int // smallest renderable box height, default 3

	IncludeMetadata     bool // append a generation footer to the content
	ShowOverlapWarnings bool // warn when unrelated boxes overlap
}

// Dimensions is the size of the generated grid in characters.
type Dimensions struct {
	Width  int
	Height int
}

// Output is the result of one generation pass.
type Output struct {
	Content        string
	CharacterCount int
	LineCount      int
	Dimensions     Dimensions
	BoxCount       int
	Warnings       []string
	Timestamp      time.Time
}
