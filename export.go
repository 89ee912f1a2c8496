package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sanchxt/ascii-layout-builder-sub003/ascii"
)

// exportName derives an export filename from the document path, e.g.
// diagrams/site.json -> site.txt.
func exportName(documentPath, extension string) string {
	base := filepath.Base(documentPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "diagram"
	}
	return base + "." + extension
}

func exportTXT(path string, out ascii.Output) error {
	if out.Content == "" {
		return fmt.Errorf("nothing to export")
	}
	if err := os.WriteFile(path, []byte(out.Content+"\n"), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func exportPNG(path string, out ascii.Output) error {
	return ascii.WritePNG(out.Content, path)
}

func copyOutput(out ascii.Output) error {
	if out.Content == "" {
		return fmt.Errorf("nothing to copy")
	}
	return clipboard.WriteAll(out.Content)
}
