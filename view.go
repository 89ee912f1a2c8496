package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Background(lipgloss.Color("236"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("236")).
			Bold(true)
)

// clampPan keeps the viewport from scrolling past the rendered content.
func (m *model) clampPan() {
	maxX := m.output.Dimensions.Width - 1
	maxY := len(strings.Split(m.output.Content, "\n")) - 1
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if m.panX > maxX {
		m.panX = maxX
	}
	if m.panY > maxY {
		m.panY = maxY
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
}

func (m model) View() string {
	viewHeight := m.height - 1
	if viewHeight < 1 {
		viewHeight = 24
	}
	viewWidth := m.width
	if viewWidth < 1 {
		viewWidth = 80
	}

	lines := strings.Split(m.output.Content, "\n")

	// Warnings render below the diagram so a panned view still reaches them.
	// Kept unstyled: the viewport slices rows by rune and would cut escape
	// sequences.
	if len(m.output.Warnings) > 0 {
		lines = append(lines, "")
		for _, w := range m.output.Warnings {
			lines = append(lines, "warning: "+w)
		}
	}

	var sb strings.Builder
	for row := 0; row < viewHeight; row++ {
		srcRow := row + m.panY
		if srcRow >= 0 && srcRow < len(lines) {
			sb.WriteString(sliceColumns(lines[srcRow], m.panX, viewWidth))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.statusLine(viewWidth))
	return sb.String()
}

// sliceColumns returns width runes of the line starting at column offset.
func sliceColumns(line string, offset, width int) string {
	runes := []rune(line)
	if offset >= len(runes) {
		return ""
	}
	runes = runes[offset:]
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}

func (m model) statusLine(width int) string {
	scope := "all"
	if m.artboardIndex >= 0 && m.artboardIndex < len(m.artboards) {
		ab := m.artboards[m.artboardIndex]
		scope = ab.Name
		if scope == "" {
			scope = ab.ID
		}
	}

	left := fmt.Sprintf(" %s | %s | %d boxes | %dx%d",
		m.filename, scope, m.output.BoxCount,
		m.output.Dimensions.Width, m.output.Dimensions.Height)

	var message string
	style := statusStyle
	switch {
	case m.statusMessage != "" && m.statusIsError:
		message = m.statusMessage
		style = errorStyle
	case m.statusMessage != "":
		message = m.statusMessage
		style = successStyle
	default:
		message = "hjkl=pan a=artboard r=regen c=copy t=txt p=png q=quit"
	}

	line := left + " | " + message
	if len([]rune(line)) < width {
		line += strings.Repeat(" ", width-len([]rune(line)))
	}
	return style.Render(line)
}
