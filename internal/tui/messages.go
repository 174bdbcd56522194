package tui

import (
	"github.com/thenoetrevino/lbl/internal/events"
	"github.com/thenoetrevino/lbl/internal/models"
)

// labelsLoadedMsg reports the end of a LoadLabels call
type labelsLoadedMsg struct {
	err error
}

// labelSavedMsg reports the end of a SaveLabel call
type labelSavedMsg struct {
	label *models.Label
	err   error
}

// labelDeletedMsg reports the end of a DeleteLabel call
type labelDeletedMsg struct {
	id  int
	err error
}

// storeChangedMsg is sent for every event the store publishes
type storeChangedMsg struct {
	event events.Event
}

// formResetMsg is sent when the store asks for the label form to be cleared
type formResetMsg struct{}
