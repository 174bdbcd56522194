package labels

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/lbl/internal/models"
	"pgregory.net/rapid"
)

// actionGen draws a random action over a small ID space so collisions happen
func actionGen() *rapid.Generator[Action] {
	id := rapid.IntRange(0, 6)
	return rapid.Custom(func(t *rapid.T) Action {
		switch rapid.IntRange(0, 3).Draw(t, "kind") {
		case 0:
			if rapid.Bool().Draw(t, "loadFails") {
				return LoadLabelsAction{Err: errors.New("load failed")}
			}
			ids := rapid.SliceOf(id).Draw(t, "loadIDs")
			list := make([]*models.Label, 0, len(ids))
			for _, v := range ids {
				list = append(list, &models.Label{ID: v, Name: "l"})
			}
			return LoadLabelsAction{Result: Normalize(list)}
		case 1:
			return EditLabelAction{ID: id.Draw(t, "editID")}
		case 2:
			if rapid.Bool().Draw(t, "saveFails") {
				return SaveLabelAction{Err: FormErrors{FormErrorKey: "x"}}
			}
			return SaveLabelAction{Label: &models.Label{ID: id.Draw(t, "saveID"), Name: "s"}}
		default:
			var err error
			if rapid.Bool().Draw(t, "deleteFails") {
				err = errors.New("delete failed")
			}
			return DeleteLabelAction{ID: id.Draw(t, "deleteID"), Err: err}
		}
	})
}

func TestReduce_InvariantsHold(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		actions := rapid.SliceOfN(actionGen(), 1, 40).Draw(t, "actions")

		s := InitialState()
		for _, a := range actions {
			prev := s
			s = Reduce(s, a)

			seen := make(map[int]bool, len(s.LabelIDs))
			for _, id := range s.LabelIDs {
				if seen[id] {
					t.Fatalf("duplicate id %d in %v after %#v", id, s.LabelIDs, a)
				}
				seen[id] = true
				if _, ok := s.Entities[id]; !ok {
					t.Fatalf("id %d listed without cache entry after %#v", id, a)
				}
			}

			if seen[0] {
				t.Fatalf("id 0 listed after %#v", a)
			}
			if prev.Loaded() && !s.Loaded() {
				t.Fatalf("state unloaded by %#v", a)
			}

			switch act := a.(type) {
			case SaveLabelAction:
				if act.Err == nil && act.Label != nil && act.Label.ID != 0 && !seen[act.Label.ID] {
					t.Fatalf("saved id %d missing from list", act.Label.ID)
				}
				if act.Err == nil && act.Label != nil && prev.Editing == act.Label.ID && s.Editing != NotEditing {
					t.Fatalf("editing not cleared after saving edited label %d", act.Label.ID)
				}
			case DeleteLabelAction:
				if act.Err == nil && act.ID != 0 && seen[act.ID] {
					t.Fatalf("deleted id %d still listed", act.ID)
				}
			}
		}
	})
}
