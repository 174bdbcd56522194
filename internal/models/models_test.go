package models

import (
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrLabelNotFound, "label not found"},
		{ErrInvalidLabelID, "invalid label ID"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message '%s', got '%s'", tt.expectedMessage, tt.err.Error())
		}
	}
}

// ============================================================================
// Label Tests
// ============================================================================

func TestLabel_IsNew(t *testing.T) {
	var nilLabel *Label
	if !nilLabel.IsNew() {
		t.Error("nil label should be new")
	}
	if !(&Label{Name: "bug"}).IsNew() {
		t.Error("label without ID should be new")
	}
	if (&Label{ID: 3, Name: "bug"}).IsNew() {
		t.Error("label with ID should not be new")
	}
}

func TestLabel_CloneIsIndependent(t *testing.T) {
	orig := &Label{ID: 1, Name: "bug", Color: "#FF0000"}
	c := orig.Clone()
	c.Name = "feature"

	if orig.Name != "bug" {
		t.Errorf("Clone shares memory with original: got name %q", orig.Name)
	}
	if c.ID != orig.ID {
		t.Errorf("Clone ID = %d, want %d", c.ID, orig.ID)
	}

	var nilLabel *Label
	if nilLabel.Clone() != nil {
		t.Error("Clone of nil label should be nil")
	}
}
