package labels

import (
	"slices"

	"github.com/thenoetrevino/lbl/internal/api"
)

// Reduce returns the state that results from applying action to s.
// s is never modified. Unknown actions return s unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case LoadLabelsAction:
		return reduceLoad(s, a)
	case EditLabelAction:
		return reduceEdit(s, a)
	case SaveLabelAction:
		return reduceSave(s, a)
	case DeleteLabelAction:
		return reduceDelete(s, a)
	default:
		return s
	}
}

func reduceLoad(s State, a LoadLabelsAction) State {
	next := s.Clone()
	if a.Err != nil {
		next.Error = a.Err
		next.Message = errorMessage(a.Err)
		return next
	}

	for id, l := range a.Result.Entities {
		next.Entities[id] = l
	}
	// The list replaces membership entirely, so never leave LabelIDs nil here
	next.LabelIDs = make([]int, 0, len(a.Result.Result))
	for _, id := range a.Result.Result {
		if _, ok := next.Entities[id]; ok && !slices.Contains(next.LabelIDs, id) {
			next.LabelIDs = append(next.LabelIDs, id)
		}
	}
	next.HasLoaded = true
	next.Error = nil
	next.Message = ""
	return next
}

func reduceEdit(s State, a EditLabelAction) State {
	next := s.Clone()
	next.Editing = a.ID
	return next
}

func reduceSave(s State, a SaveLabelAction) State {
	if a.Err != nil {
		return s
	}

	next := s.Clone()
	if a.Message != "" {
		next.Message = a.Message
	}
	// 0 means no id was assigned; there is nothing to cache under it
	if a.Label == nil || a.Label.ID == 0 {
		return next
	}
	saved := a.Label.Clone()
	saved.Message = ""
	next.Entities[saved.ID] = saved
	if !slices.Contains(next.LabelIDs, saved.ID) {
		next.LabelIDs = append(next.LabelIDs, saved.ID)
	}
	if next.Editing == saved.ID {
		next.Editing = NotEditing
	}
	return next
}

func reduceDelete(s State, a DeleteLabelAction) State {
	if a.Err != nil {
		next := s.Clone()
		next.DeleteError = a.Err
		return next
	}
	if a.ID == 0 {
		return s
	}

	next := s.Clone()
	delete(next.Entities, a.ID)
	if next.LabelIDs != nil {
		next.LabelIDs = slices.DeleteFunc(next.LabelIDs, func(id int) bool { return id == a.ID })
	}
	if next.Editing == a.ID {
		next.Editing = NotEditing
	}
	next.DeleteError = nil
	return next
}

// errorMessage picks the text a UI should show for a failed request.
func errorMessage(err error) string {
	if apiErr, ok := api.AsError(err); ok && apiErr.Data.Message != "" {
		return apiErr.Data.Message
	}
	return err.Error()
}
