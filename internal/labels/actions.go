package labels

import "github.com/thenoetrevino/lbl/internal/models"

// Kind names an action variant.
type Kind string

const (
	KindLoadLabels  Kind = "labels/load"
	KindEditLabel   Kind = "labels/edit"
	KindSaveLabel   Kind = "labels/save"
	KindDeleteLabel Kind = "labels/delete"
)

// Action is a plain state transition request. The concrete types below are
// the only variants Reduce understands.
type Action interface {
	Kind() Kind
}

// LoadLabelsAction carries the outcome of a list call.
type LoadLabelsAction struct {
	Result Normalized
	Err    error
}

// EditLabelAction opens (or with NotEditing closes) the edit form.
type EditLabelAction struct {
	ID int
}

// SaveLabelAction carries the label returned by a create or update call and
// any message the backend echoed with it.
type SaveLabelAction struct {
	Label   *models.Label
	Message string
	Err     error
}

// DeleteLabelAction carries the outcome of a delete call.
type DeleteLabelAction struct {
	ID  int
	Err error
}

func (LoadLabelsAction) Kind() Kind  { return KindLoadLabels }
func (EditLabelAction) Kind() Kind   { return KindEditLabel }
func (SaveLabelAction) Kind() Kind   { return KindSaveLabel }
func (DeleteLabelAction) Kind() Kind { return KindDeleteLabel }

// targetID returns the label an action is about, or 0 for set-wide actions.
func targetID(action Action) int {
	switch a := action.(type) {
	case EditLabelAction:
		return a.ID
	case SaveLabelAction:
		if a.Label != nil {
			return a.Label.ID
		}
	case DeleteLabelAction:
		return a.ID
	}
	return 0
}
