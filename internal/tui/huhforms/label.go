package huhforms

import (
	"strings"

	"charm.land/huh/v2"
)

// LabelColor is one entry of the color picker
type LabelColor struct {
	Name string
	Hex  string
}

// LabelColors returns the palette offered by the label form
func LabelColors() []LabelColor {
	return []LabelColor{
		{"Purple", "#7D56F4"},
		{"Blue", "#3B82F6"},
		{"Green", "#22C55E"},
		{"Yellow", "#EAB308"},
		{"Orange", "#F97316"},
		{"Red", "#EF4444"},
		{"Pink", "#EC4899"},
		{"Cyan", "#06B6D4"},
		{"Gray", "#6B7280"},
	}
}

// LabelColorOptions returns the picker options. A current color outside the
// palette is kept as the first option so editing never changes it silently.
func LabelColorOptions(current string) []huh.Option[string] {
	palette := LabelColors()
	options := make([]huh.Option[string], 0, len(palette)+1)

	current = strings.ToUpper(current)
	inPalette := current == ""
	for _, c := range palette {
		if c.Hex == current {
			inPalette = true
		}
	}
	if !inPalette {
		options = append(options, huh.NewOption("Current ("+current+")", current))
	}

	for _, c := range palette {
		options = append(options, huh.NewOption(c.Name, c.Hex))
	}
	return options
}

// LabelFormValues holds what the label form edits
type LabelFormValues struct {
	Name  string
	Color string
	Icon  string
}

// CreateLabelForm creates a huh form for adding/editing a label
func CreateLabelForm(values *LabelFormValues) *huh.Form {
	if values.Color == "" {
		values.Color = LabelColors()[0].Hex
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Label Name").
			Placeholder("Enter label name...").
			Value(&values.Name),

		huh.NewSelect[string]().
			Key("color").
			Title("Color").
			Options(LabelColorOptions(values.Color)...).
			Value(&values.Color),

		huh.NewInput().
			Key("icon").
			Title("Icon").
			Placeholder("Optional, e.g. an emoji").
			Value(&values.Icon),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
