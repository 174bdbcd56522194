package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventLabelsChanged is published after any action changed label state
	EventLabelsChanged EventType = "labels_changed"
)

// Event represents a label state change notification
type Event struct {
	Type       EventType
	Action     string    // Kind of the action that produced the change
	LabelID    int       // Label the action targeted, 0 when it targeted the whole set
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
