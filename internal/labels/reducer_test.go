package labels

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/models"
)

// loadedState returns a state holding the given labels in order
func loadedState(list ...*models.Label) State {
	return Reduce(InitialState(), LoadLabelsAction{Result: Normalize(list)})
}

// ============================================================================
// NORMALIZE
// ============================================================================

func TestNormalize_KeepsOrderAndDedupes(t *testing.T) {
	n := Normalize([]*models.Label{
		{ID: 3, Name: "c"},
		{ID: 1, Name: "a"},
		nil,
		{Name: "no id"},
		{ID: 3, Name: "c2"},
	})

	assert.Equal(t, []int{3, 1}, n.Result)
	require.Len(t, n.Entities, 2)
	assert.Equal(t, "c2", n.Entities[3].Name, "last entity for a repeated ID wins")
}

func TestNormalize_Empty(t *testing.T) {
	n := Normalize(nil)
	assert.NotNil(t, n.Result)
	assert.Empty(t, n.Result)
	assert.Empty(t, n.Entities)
}

// ============================================================================
// LOAD
// ============================================================================

func TestReduceLoad_ReplacesIDsAndMergesEntities(t *testing.T) {
	s := loadedState(&models.Label{ID: 1, Name: "bug"}, &models.Label{ID: 2, Name: "docs"})

	next := Reduce(s, LoadLabelsAction{Result: Normalize([]*models.Label{
		{ID: 2, Name: "documentation"},
		{ID: 5, Name: "perf"},
	})})

	assert.Equal(t, []int{2, 5}, next.LabelIDs)
	assert.Equal(t, "documentation", next.Entities[2].Name)
	assert.Equal(t, "perf", next.Entities[5].Name)
	// Entities are merged, not replaced
	assert.Contains(t, next.Entities, 1)

	// Input state untouched
	assert.Equal(t, []int{1, 2}, s.LabelIDs)
	assert.Equal(t, "docs", s.Entities[2].Name)
}

func TestReduceLoad_EmptyListIsLoaded(t *testing.T) {
	next := Reduce(InitialState(), LoadLabelsAction{Result: Normalize(nil)})
	assert.True(t, next.Loaded())
	assert.Empty(t, next.LabelIDs)
}

func TestReduceLoad_ErrorStoredVerbatim(t *testing.T) {
	boom := errors.New("connection refused")
	s := loadedState(&models.Label{ID: 1, Name: "bug"})

	next := Reduce(s, LoadLabelsAction{Err: boom})

	assert.Same(t, boom, next.Error)
	assert.Equal(t, "connection refused", next.Message)
	assert.Equal(t, []int{1}, next.LabelIDs, "failed load keeps previous list")
}

func TestReduceLoad_ErrorMessageFromBackend(t *testing.T) {
	next := Reduce(InitialState(), LoadLabelsAction{
		Err: api.NewMessageError(http.StatusForbidden, "You don't have permissions to do that."),
	})
	assert.Equal(t, "You don't have permissions to do that.", next.Message)
	assert.False(t, next.Loaded())
}

func TestReduceLoad_SuccessClearsError(t *testing.T) {
	s := Reduce(InitialState(), LoadLabelsAction{Err: errors.New("boom")})
	next := Reduce(s, LoadLabelsAction{Result: Normalize(nil)})
	assert.NoError(t, next.Error)
	assert.Empty(t, next.Message)
}

// ============================================================================
// SAVE
// ============================================================================

func TestReduceSave_AppendsNewID(t *testing.T) {
	s := loadedState(&models.Label{ID: 1, Name: "bug"})
	next := Reduce(s, SaveLabelAction{Label: &models.Label{ID: 2, Name: "docs"}})

	assert.Equal(t, []int{1, 2}, next.LabelIDs)
	assert.Equal(t, "docs", next.Entities[2].Name)
}

func TestReduceSave_ExistingIDAppearsOnce(t *testing.T) {
	s := loadedState(&models.Label{ID: 1, Name: "bug"}, &models.Label{ID: 2, Name: "docs"})
	next := Reduce(s, SaveLabelAction{Label: &models.Label{ID: 1, Name: "defect"}})

	assert.Equal(t, []int{1, 2}, next.LabelIDs)
	assert.Equal(t, 1, countID(next.LabelIDs, 1))
	assert.Equal(t, "defect", next.Entities[1].Name)
}

func TestReduceSave_BeforeFirstLoad(t *testing.T) {
	next := Reduce(InitialState(), SaveLabelAction{Label: &models.Label{ID: 9, Name: "new"}})
	assert.Equal(t, []int{9}, next.LabelIDs)
	assert.False(t, next.Loaded(), "only a successful load marks the state loaded")

	next = Reduce(next, LoadLabelsAction{Result: Normalize(nil)})
	assert.True(t, next.Loaded())
	assert.Empty(t, next.LabelIDs)

	next = Reduce(next, LoadLabelsAction{Err: errors.New("boom")})
	assert.True(t, next.Loaded(), "a later failure does not unload")
}

func TestReduceSave_WithoutIDIsNotCached(t *testing.T) {
	s := loadedState(&models.Label{ID: 1, Name: "bug"})
	next := Reduce(s, SaveLabelAction{Label: &models.Label{Name: "x"}})

	assert.Equal(t, []int{1}, next.LabelIDs)
	assert.NotContains(t, next.Entities, 0)

	next = Reduce(next, DeleteLabelAction{ID: 1})
	assert.Empty(t, next.LabelIDs)
	assert.Empty(t, next.Entities)
}

func TestReduceSave_RecordsMessage(t *testing.T) {
	s := Reduce(InitialState(), LoadLabelsAction{Err: errors.New("boom")})
	s = Reduce(s, LoadLabelsAction{Result: Normalize(nil)})
	require.Empty(t, s.Message)

	next := Reduce(s, SaveLabelAction{
		Label:   &models.Label{ID: 4, Name: "bug", Message: "stray"},
		Message: "Label created.",
	})
	assert.Equal(t, "Label created.", next.Message)
	assert.Empty(t, next.Entities[4].Message, "messages are not cached with labels")
	assert.Empty(t, s.Message, "input state untouched")

	next = Reduce(next, SaveLabelAction{Label: &models.Label{ID: 4, Name: "defect"}})
	assert.Equal(t, "Label created.", next.Message, "a save without a message keeps the last one")

	next = Reduce(next, SaveLabelAction{Message: "Queued for review."})
	assert.Equal(t, "Queued for review.", next.Message)
	assert.Equal(t, []int{4}, next.LabelIDs)

	next = Reduce(next, SaveLabelAction{Err: FormErrors{FormErrorKey: "x"}, Message: "ignored"})
	assert.Equal(t, "Queued for review.", next.Message)

	next = Reduce(next, LoadLabelsAction{Result: Normalize([]*models.Label{{ID: 4, Name: "defect"}})})
	assert.Empty(t, next.Message)
}

func TestReduceSave_ClearsEditingOnlyForSavedID(t *testing.T) {
	tests := []struct {
		name        string
		editing     int
		savedID     int
		wantEditing int
	}{
		{"saved label was being edited", 1, 1, NotEditing},
		{"other label being edited", 2, 1, 2},
		{"nothing being edited", NotEditing, 1, NotEditing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedState(&models.Label{ID: 1}, &models.Label{ID: 2})
			s = Reduce(s, EditLabelAction{ID: tt.editing})

			next := Reduce(s, SaveLabelAction{Label: &models.Label{ID: tt.savedID}})
			assert.Equal(t, tt.wantEditing, next.Editing)
		})
	}
}

func TestReduceSave_ErrorOrNilPayloadIsNoop(t *testing.T) {
	s := loadedState(&models.Label{ID: 1, Name: "bug"})
	s = Reduce(s, EditLabelAction{ID: 1})

	failed := Reduce(s, SaveLabelAction{Err: FormErrors{FormErrorKey: "nope"}})
	assert.Equal(t, s, failed)

	empty := Reduce(s, SaveLabelAction{})
	assert.Equal(t, s, empty)
}

func TestReduceSave_DoesNotShareLabelPointer(t *testing.T) {
	payload := &models.Label{ID: 4, Name: "bug"}
	next := Reduce(InitialState(), SaveLabelAction{Label: payload})
	payload.Name = "mutated"
	assert.Equal(t, "bug", next.Entities[4].Name)
}

// ============================================================================
// EDIT
// ============================================================================

func TestReduceEdit_Transitions(t *testing.T) {
	s := InitialState()
	_, editing := s.IsEditing()
	assert.False(t, editing)

	s = Reduce(s, EditLabelAction{ID: 3})
	id, editing := s.IsEditing()
	assert.True(t, editing)
	assert.Equal(t, 3, id)

	s = Reduce(s, EditLabelAction{ID: NotEditing})
	_, editing = s.IsEditing()
	assert.False(t, editing)
}

// ============================================================================
// DELETE
// ============================================================================

func TestReduceDelete_RemovesFromListAndCache(t *testing.T) {
	s := loadedState(&models.Label{ID: 1}, &models.Label{ID: 2}, &models.Label{ID: 3})
	next := Reduce(s, DeleteLabelAction{ID: 2})

	assert.Equal(t, []int{1, 3}, next.LabelIDs)
	assert.NotContains(t, next.Entities, 2)
	assert.Equal(t, []int{1, 2, 3}, s.LabelIDs, "input state untouched")
}

func TestReduceDelete_ClearsEditingOfDeletedLabel(t *testing.T) {
	s := loadedState(&models.Label{ID: 1}, &models.Label{ID: 2})

	editingDeleted := Reduce(Reduce(s, EditLabelAction{ID: 1}), DeleteLabelAction{ID: 1})
	assert.Equal(t, NotEditing, editingDeleted.Editing)

	editingOther := Reduce(Reduce(s, EditLabelAction{ID: 2}), DeleteLabelAction{ID: 1})
	assert.Equal(t, 2, editingOther.Editing)
}

func TestReduceDelete_ErrorRecordedCacheKept(t *testing.T) {
	boom := errors.New("forbidden")
	s := loadedState(&models.Label{ID: 1})

	next := Reduce(s, DeleteLabelAction{ID: 1, Err: boom})
	assert.Same(t, boom, next.DeleteError)
	assert.Equal(t, []int{1}, next.LabelIDs)
	assert.Contains(t, next.Entities, 1)

	cleared := Reduce(next, DeleteLabelAction{ID: 1})
	assert.NoError(t, cleared.DeleteError)
}

func TestReduceDelete_ZeroIDIsNoop(t *testing.T) {
	s := loadedState(&models.Label{ID: 1})
	assert.Equal(t, s, Reduce(s, DeleteLabelAction{}))
}

// ============================================================================
// DISPATCH
// ============================================================================

type unknownAction struct{}

func (unknownAction) Kind() Kind { return "labels/unknown" }

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	s := loadedState(&models.Label{ID: 1})
	assert.Equal(t, s, Reduce(s, unknownAction{}))
}

func TestState_LabelsFollowsIDOrder(t *testing.T) {
	s := loadedState(&models.Label{ID: 3, Name: "c"}, &models.Label{ID: 1, Name: "a"})
	got := s.Labels()
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)

	l, ok := s.Label(1)
	assert.True(t, ok)
	assert.Equal(t, "a", l.Name)
	_, ok = s.Label(99)
	assert.False(t, ok)
}
