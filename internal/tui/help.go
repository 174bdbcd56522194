package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// helpMarkdown documents the configured key mappings
func (m Model) helpMarkdown() string {
	km := m.config.KeyMappings
	var b strings.Builder
	b.WriteString("# Label manager\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	rows := [][2]string{
		{km.PrevLabel + " / ↑", "Previous label"},
		{km.NextLabel + " / ↓", "Next label"},
		{km.NewLabel, "New label"},
		{km.EditLabel + " / enter", "Edit the selected label"},
		{km.DeleteLabel, "Delete the selected label"},
		{km.Refresh, "Reload labels from the backend"},
		{km.SaveForm, "Save the open form"},
		{"esc", "Close the form without saving"},
		{km.ShowHelp, "Toggle this help"},
		{km.Quit, "Quit"},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", row[0], row[1])
	}
	b.WriteString("\nErrors from the backend are shown under the form, next to the field they concern.\n")
	return b.String()
}

func (m Model) renderHelp() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	md := m.helpMarkdown()

	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
