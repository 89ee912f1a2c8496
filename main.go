package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sanchxt/ascii-layout-builder-sub003/ascii"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: alayout <diagram.json>")
		os.Exit(1)
	}

	doc, err := LoadDocument(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	m, err := initialModel(doc, os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// panStep is the pan distance per keypress; shift multiplies it.
const (
	panStep     = 1
	panStepFast = 5
)

type model struct {
	filename string
	config   *Config

	artboards []ascii.Artboard
	boxes     []ascii.Box
	lines     []ascii.Line

	// artboardIndex selects one artboard for rendering; -1 renders the whole
	// document (all artboards when any exist, otherwise every box).
	artboardIndex int

	output ascii.Output

	width  int
	height int
	panX   int
	panY   int

	showMetadata bool
	showOverlaps bool

	statusMessage string
	statusIsError bool
}

func initialModel(doc *Document, filename string) (model, error) {
	artboards, boxes, lines := doc.Engine()
	if ok, reason := ascii.CanGenerate(boxes); !ok {
		return model{}, fmt.Errorf("%s: %s", filename, reason)
	}
	config := loadConfig()

	m := model{
		filename:      filename,
		config:        config,
		artboards:     artboards,
		boxes:         boxes,
		lines:         lines,
		artboardIndex: -1,
		showMetadata:  config.IncludeMetadata,
		showOverlaps:  config.OverlapWarnings,
	}
	m.regenerate()
	return m, nil
}

// regenerate reruns the engine for the current artboard selection.
func (m *model) regenerate() {
	opts := ascii.Options{
		IncludeMetadata:     m.showMetadata,
		ShowOverlapWarnings: m.showOverlaps,
	}

	switch {
	case m.artboardIndex >= 0 && m.artboardIndex < len(m.artboards):
		m.output = ascii.GenerateArtboard(m.artboards[m.artboardIndex].ID, m.boxes, m.lines, opts)
	case len(m.artboards) > 0:
		m.output = ascii.GenerateAllArtboards(m.artboards, m.boxes, m.lines, opts)
	default:
		m.output = ascii.Generate(m.boxes, m.lines, opts)
	}
}

// cycleArtboard steps through: whole document, then each artboard in turn.
func (m *model) cycleArtboard() {
	if len(m.artboards) == 0 {
		m.setStatus("document has no artboards", true)
		return
	}
	m.artboardIndex++
	if m.artboardIndex >= len(m.artboards) {
		m.artboardIndex = -1
	}
	m.panX, m.panY = 0, 0
	m.regenerate()
}

func (m *model) setStatus(message string, isError bool) {
	m.statusMessage = message
	m.statusIsError = isError
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Any keypress clears a stale status message.
		m.statusMessage = ""
		m.statusIsError = false

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "h", "left":
			m.panX -= panStep
		case "l", "right":
			m.panX += panStep
		case "k", "up":
			m.panY -= panStep
		case "j", "down":
			m.panY += panStep
		case "H", "shift+left":
			m.panX -= panStepFast
		case "L", "shift+right":
			m.panX += panStepFast
		case "K", "shift+up":
			m.panY -= panStepFast
		case "J", "shift+down":
			m.panY += panStepFast
		case "0":
			m.panX, m.panY = 0, 0

		case "a":
			m.cycleArtboard()
		case "r":
			m.regenerate()
			m.setStatus("regenerated", false)

		case "m":
			m.showMetadata = !m.showMetadata
			m.regenerate()
		case "o":
			m.showOverlaps = !m.showOverlaps
			m.regenerate()

		case "c":
			if err := copyOutput(m.output); err != nil {
				m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.setStatus("copied to clipboard", false)
			}
		case "t":
			path := m.config.SavePath(exportName(m.filename, "txt"))
			if err := exportTXT(path, m.output); err != nil {
				m.setStatus(fmt.Sprintf("export failed: %v", err), true)
			} else {
				m.setStatus("saved "+path, false)
			}
		case "p":
			path := m.config.SavePath(exportName(m.filename, "png"))
			if err := exportPNG(path, m.output); err != nil {
				m.setStatus(fmt.Sprintf("export failed: %v", err), true)
			} else {
				m.setStatus("saved "+path, false)
			}
		}

		m.clampPan()
		return m, nil
	}

	return m, nil
}
