// Package labels holds the client-side label cache: a normalized entity map,
// the ordered list of known label IDs and the ID currently open for editing.
// State only changes through Reduce; Store wraps it with backend calls.
package labels

import (
	"maps"
	"slices"

	"github.com/thenoetrevino/lbl/internal/models"
)

// NotEditing is the Editing value when no label form is open.
const NotEditing = 0

// State is an immutable snapshot of the label cache.
type State struct {
	// Entities maps label ID to the last known copy of that label
	Entities map[int]*models.Label

	// LabelIDs is the ordered set of known IDs. nil until the first
	// successful load or save.
	LabelIDs []int

	// HasLoaded is set by the first successful load and never cleared
	HasLoaded bool

	// Error is the last load failure, cleared by a successful load
	Error error

	// Message is the last user-facing note: a load failure or a message
	// echoed by a save response. A successful load clears it.
	Message string

	// Editing is the ID of the label open in the edit form, or NotEditing
	Editing int

	// DeleteError is the last delete failure, cleared by a successful delete
	DeleteError error
}

// InitialState returns an empty, never-loaded state.
func InitialState() State {
	return State{
		Entities: make(map[int]*models.Label),
		Editing:  NotEditing,
	}
}

// Clone copies the map and slice so the result can be modified without
// touching s. Label pointers are shared; reducers replace them, never mutate.
func (s State) Clone() State {
	c := s
	c.Entities = maps.Clone(s.Entities)
	if c.Entities == nil {
		c.Entities = make(map[int]*models.Label)
	}
	c.LabelIDs = slices.Clone(s.LabelIDs)
	return c
}

// Loaded reports whether a load has ever succeeded.
func (s State) Loaded() bool {
	return s.HasLoaded
}

// IsEditing reports whether a label form is open and for which ID.
func (s State) IsEditing() (int, bool) {
	return s.Editing, s.Editing != NotEditing
}

// Labels returns the cached labels in LabelIDs order. IDs without a cache
// entry are skipped.
func (s State) Labels() []*models.Label {
	out := make([]*models.Label, 0, len(s.LabelIDs))
	for _, id := range s.LabelIDs {
		if l, ok := s.Entities[id]; ok && l != nil {
			out = append(out, l)
		}
	}
	return out
}

// Label returns the cached label with the given ID.
func (s State) Label(id int) (*models.Label, bool) {
	l, ok := s.Entities[id]
	return l, ok && l != nil
}
