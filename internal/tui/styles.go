package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lbl/internal/config/colors"
)

// styles holds the lipgloss styles derived from the color scheme
type styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Key      lipgloss.Style

	// Dialog boxes, colored by what they do
	CreateBox lipgloss.Style
	EditBox   lipgloss.Style
	DeleteBox lipgloss.Style
}

func newStyles(scheme colors.ColorScheme) styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)).
			MarginBottom(1),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)).
			Background(lipgloss.Color(scheme.SelectedBg)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.ErrorFg)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.InfoFg)),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),

		CreateBox: box.BorderForeground(lipgloss.Color(scheme.Create)),
		EditBox:   box.BorderForeground(lipgloss.Color(scheme.Edit)),
		DeleteBox: box.BorderForeground(lipgloss.Color(scheme.Delete)),
	}
}

// swatch renders a small block in the label's color
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
