package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/lbl/internal/config"
)

// keyMap holds the bindings built from the configured key mappings
type keyMap struct {
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Prev    key.Binding
	Next    key.Binding
	Help    key.Binding
	Quit    key.Binding

	Save    key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Deny    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		New:     key.NewBinding(key.WithKeys(km.NewLabel), key.WithHelp(km.NewLabel, "new")),
		Edit:    key.NewBinding(key.WithKeys(km.EditLabel, "enter"), key.WithHelp(km.EditLabel, "edit")),
		Delete:  key.NewBinding(key.WithKeys(km.DeleteLabel), key.WithHelp(km.DeleteLabel, "delete")),
		Refresh: key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Prev:    key.NewBinding(key.WithKeys(km.PrevLabel, "up"), key.WithHelp(km.PrevLabel, "up")),
		Next:    key.NewBinding(key.WithKeys(km.NextLabel, "down"), key.WithHelp(km.NextLabel, "down")),
		Help:    key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:    key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),

		Save:    key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Deny:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
	}
}

// listHelp is the short hint line shown under the list
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Refresh, k.Help, k.Quit}
}
