package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Labels
	NewLabel    string `yaml:"new_label"`
	EditLabel   string `yaml:"edit_label"`
	DeleteLabel string `yaml:"delete_label"`
	Refresh     string `yaml:"refresh"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevLabel string `yaml:"prev_label"`
	NextLabel string `yaml:"next_label"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Labels
		NewLabel:    "n",
		EditLabel:   "e",
		DeleteLabel: "d",
		Refresh:     "r",

		// Forms
		SaveForm: "ctrl+s",

		// Navigation
		PrevLabel: "k",
		NextLabel: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NewLabel == "" {
		k.NewLabel = defaults.NewLabel
	}
	if k.EditLabel == "" {
		k.EditLabel = defaults.EditLabel
	}
	if k.DeleteLabel == "" {
		k.DeleteLabel = defaults.DeleteLabel
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevLabel == "" {
		k.PrevLabel = defaults.PrevLabel
	}
	if k.NextLabel == "" {
		k.NextLabel = defaults.NextLabel
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
