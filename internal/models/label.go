package models

// Label represents a named, colored tag served by the label backend.
// Only ID has meaning to the label store; the remaining fields are carried
// through untouched.
type Label struct {
	ID    int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Slug  string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"` // Hex color code (e.g., "#7D56F4")

	// Message is a note the backend may echo with a save response. It is
	// never stored with the label.
	Message string `json:"message,omitempty" yaml:"-"`
}

// IsNew reports whether the label has not been persisted yet.
// A zero ID means the backend has never assigned one.
func (l *Label) IsNew() bool {
	return l == nil || l.ID == 0
}

// GetID implements the ID getter used by the CLI quiet output mode.
func (l *Label) GetID() int {
	return l.ID
}

// Clone returns a copy of the label so callers can hold onto cached values
// without sharing memory with the store.
func (l *Label) Clone() *Label {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
