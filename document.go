package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sanchxt/ascii-layout-builder-sub003/ascii"
)

const documentFormat = 1

// Document is the on-disk JSON form of a diagram. Geometry is stored in
// pixel coordinates exactly as the engine consumes it; enum fields are
// stored as their names so files stay hand-editable.
type Document struct {
	Format    int            `json:"format"`
	Artboards []artboardJSON `json:"artboards,omitempty"`
	Boxes     []boxJSON      `json:"boxes"`
	Lines     []lineJSON     `json:"lines,omitempty"`
}

type artboardJSON struct {
	ID      string  `json:"id"`
	Name    string  `json:"name,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Visible *bool   `json:"visible,omitempty"`
	Locked  bool    `json:"locked,omitempty"`
	ZIndex  int     `json:"zIndex,omitempty"`
}

type boxJSON struct {
	ID          string    `json:"id"`
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	BorderStyle string    `json:"borderStyle,omitempty"`
	Padding     float64   `json:"padding,omitempty"`
	Text        *textJSON `json:"text,omitempty"`
	ParentID    string    `json:"parentId,omitempty"`
	Children    []string  `json:"children,omitempty"`
	ZIndex      int       `json:"zIndex,omitempty"`
	Visible     *bool     `json:"visible,omitempty"`
	Locked      bool      `json:"locked,omitempty"`
	ArtboardID  string    `json:"artboardId,omitempty"`
}

type textJSON struct {
	Value string     `json:"value"`
	Align string     `json:"align,omitempty"`
	Spans []spanJSON `json:"spans,omitempty"`
}

type spanJSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style"`
}

type lineJSON struct {
	ID         string     `json:"id"`
	StartX     float64    `json:"startX"`
	StartY     float64    `json:"startY"`
	EndX       float64    `json:"endX"`
	EndY       float64    `json:"endY"`
	Direction  string     `json:"direction"`
	StartArrow string     `json:"startArrow,omitempty"`
	EndArrow   string     `json:"endArrow,omitempty"`
	Style      string     `json:"style,omitempty"`
	Label      *labelJSON `json:"label,omitempty"`
	ParentID   string     `json:"parentId,omitempty"`
	ArtboardID string     `json:"artboardId,omitempty"`
	ZIndex     int        `json:"zIndex,omitempty"`
}

type labelJSON struct {
	Text     string `json:"text"`
	Position string `json:"position,omitempty"`
}

// visibleDefault treats an absent "visible" field as true, so hand-written
// documents render without boilerplate.
func visibleDefault(v *bool) bool {
	return v == nil || *v
}

func visiblePtr(v bool) *bool {
	if v {
		return nil
	}
	return &v
}

// Engine converts the document into the engine's data model.
func (d *Document) Engine() ([]ascii.Artboard, []ascii.Box, []ascii.Line) {
	artboards := make([]ascii.Artboard, 0, len(d.Artboards))
	for _, ab := range d.Artboards {
		artboards = append(artboards, ascii.Artboard{
			ID:      ab.ID,
			Name:    ab.Name,
			X:       ab.X,
			Y:       ab.Y,
			Width:   ab.Width,
			Height:  ab.Height,
			Visible: visibleDefault(ab.Visible),
			Locked:  ab.Locked,
			ZIndex:  ab.ZIndex,
		})
	}

	boxes := make([]ascii.Box, 0, len(d.Boxes))
	for _, b := range d.Boxes {
		box := ascii.Box{
			ID:          b.ID,
			X:           b.X,
			Y:           b.Y,
			Width:       b.Width,
			Height:      b.Height,
			BorderStyle: ascii.ParseBorderStyle(b.BorderStyle),
			Padding:     b.Padding,
			ParentID:    b.ParentID,
			Children:    b.Children,
			ZIndex:      b.ZIndex,
			Visible:     visibleDefault(b.Visible),
			Locked:      b.Locked,
			ArtboardID:  b.ArtboardID,
		}
		if b.Text != nil {
			box.Text = ascii.TextContent{
				Value: b.Text.Value,
				Align: ascii.ParseAlignment(b.Text.Align),
			}
			for _, s := range b.Text.Spans {
				box.Text.Spans = append(box.Text.Spans, ascii.TextSpan{
					Start: s.Start,
					End:   s.End,
					Style: ascii.ParseSpanStyle(s.Style),
				})
			}
		}
		boxes = append(boxes, box)
	}

	lines := make([]ascii.Line, 0, len(d.Lines))
	for _, l := range d.Lines {
		line := ascii.Line{
			ID:         l.ID,
			StartX:     l.StartX,
			StartY:     l.StartY,
			EndX:       l.EndX,
			EndY:       l.EndY,
			Direction:  ascii.ParseDirection(l.Direction),
			StartArrow: ascii.ParseArrowStyle(l.StartArrow),
			EndArrow:   ascii.ParseArrowStyle(l.EndArrow),
			Style:      ascii.ParseLineStyle(l.Style),
			ParentID:   l.ParentID,
			ArtboardID: l.ArtboardID,
			ZIndex:     l.ZIndex,
		}
		if l.Label != nil && l.Label.Text != "" {
			line.Label = &ascii.LineLabel{
				Text:     l.Label.Text,
				Position: ascii.ParseLabelPosition(l.Label.Position),
			}
		}
		lines = append(lines, line)
	}

	return artboards, boxes, lines
}

// NewDocument builds the on-disk form from engine entities.
func NewDocument(artboards []ascii.Artboard, boxes []ascii.Box, lines []ascii.Line) *Document {
	doc := &Document{Format: documentFormat}

	for _, ab := range artboards {
		doc.Artboards = append(doc.Artboards, artboardJSON{
			ID:      ab.ID,
			Name:    ab.Name,
			X:       ab.X,
			Y:       ab.Y,
			Width:   ab.Width,
			Height:  ab.Height,
			Visible: visiblePtr(ab.Visible),
			Locked:  ab.Locked,
			ZIndex:  ab.ZIndex,
		})
	}

	doc.Boxes = make([]boxJSON, 0, len(boxes))
	for _, b := range boxes {
		out := boxJSON{
			ID:          b.ID,
			X:           b.X,
			Y:           b.Y,
			Width:       b.Width,
			Height:      b.Height,
			BorderStyle: b.BorderStyle.String(),
			Padding:     b.Padding,
			ParentID:    b.ParentID,
			Children:    b.Children,
			ZIndex:      b.ZIndex,
			Visible:     visiblePtr(b.Visible),
			Locked:      b.Locked,
			ArtboardID:  b.ArtboardID,
		}
		if b.Text.Value != "" || len(b.Text.Spans) > 0 {
			text := &textJSON{Value: b.Text.Value, Align: b.Text.Align.String()}
			for _, s := range b.Text.Spans {
				text.Spans = append(text.Spans, spanJSON{
					Start: s.Start,
					End:   s.End,
					Style: s.Style.String(),
				})
			}
			out.Text = text
		}
		doc.Boxes = append(doc.Boxes, out)
	}

	for _, l := range lines {
		out := lineJSON{
			ID:         l.ID,
			StartX:     l.StartX,
			StartY:     l.StartY,
			EndX:       l.EndX,
			EndY:       l.EndY,
			Direction:  l.Direction.String(),
			StartArrow: l.StartArrow.String(),
			EndArrow:   l.EndArrow.String(),
			Style:      l.Style.String(),
			ParentID:   l.ParentID,
			ArtboardID: l.ArtboardID,
			ZIndex:     l.ZIndex,
		}
		if l.Label != nil {
			out.Label = &labelJSON{Text: l.Label.Text, Position: l.Label.Position.String()}
		}
		doc.Lines = append(doc.Lines, out)
	}

	return doc
}

// LoadDocument reads and validates a diagram file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	if doc.Format > documentFormat {
		return nil, fmt.Errorf("document %s uses format %d, newer than supported format %d", path, doc.Format, documentFormat)
	}

	seen := make(map[string]bool, len(doc.Boxes))
	parents := make(map[string]string, len(doc.Boxes))
	for _, b := range doc.Boxes {
		if b.ID == "" {
			return nil, fmt.Errorf("document %s contains a box without an id", path)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("document %s contains duplicate box id %q", path, b.ID)
		}
		seen[b.ID] = true
		parents[b.ID] = b.ParentID
	}
	for _, b := range doc.Boxes {
		if b.ParentID != "" && !seen[b.ParentID] {
			return nil, fmt.Errorf("document %s: box %q references unknown parent %q", path, b.ID, b.ParentID)
		}
	}
	// The engine walks ancestor chains without a cycle guard; a cyclic
	// document must never reach it.
	for _, b := range doc.Boxes {
		visited := make(map[string]bool)
		for id := b.ID; id != ""; id = parents[id] {
			if visited[id] {
				return nil, fmt.Errorf("document %s: box %q has a cyclic parent chain", path, b.ID)
			}
			visited[id] = true
		}
	}

	return &doc, nil
}

// Save writes the diagram file with stable, readable indentation.
func (d *Document) Save(path string) error {
	d.Format = documentFormat
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
