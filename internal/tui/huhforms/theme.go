package huhforms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/lbl/internal/config/colors"
)

// formPalette is the subset of the color scheme the label form uses
type formPalette struct {
	accent color.Color
	title  color.Color
	subtle color.Color
	normal color.Color
	picked color.Color
	err    color.Color
}

func newFormPalette(scheme colors.ColorScheme) formPalette {
	return formPalette{
		accent: lipgloss.Color(scheme.Accent),
		title:  lipgloss.Color(scheme.Title),
		subtle: lipgloss.Color(scheme.Subtle),
		normal: lipgloss.Color(scheme.Normal),
		picked: lipgloss.Color(scheme.Create),
		err:    lipgloss.Color(scheme.ErrorFg),
	}
}

// field styles the active field: accent border, bold title, and the chosen
// color option in the scheme's create color
func (p formPalette) field(f huh.FieldStyles) huh.FieldStyles {
	f.Base = f.Base.BorderForeground(p.accent)
	f.Title = f.Title.Foreground(p.title).Bold(true)
	f.Description = f.Description.Foreground(p.subtle)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(p.err)
	f.ErrorMessage = f.ErrorMessage.Foreground(p.err)

	f.SelectSelector = f.SelectSelector.Foreground(p.accent)
	f.SelectedOption = f.SelectedOption.Foreground(p.picked)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(p.picked)
	f.UnselectedOption = f.UnselectedOption.Foreground(p.normal)
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(p.subtle)

	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.accent)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.accent)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.subtle)
	return f
}

// CreateTheme creates the label form theme from the configured color scheme
func CreateTheme(colorScheme colors.ColorScheme) huh.Theme {
	p := newFormPalette(colorScheme)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused = p.field(t.Focused)

		// Inactive fields keep their layout but drop the border
		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(p.subtle).Bold(false)

		return t
	})
}
