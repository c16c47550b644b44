package holdtimer

import "time"

// State represents the current hold mode.
type State string

const (
	StateIdle      State = "idle"
	StateHolding   State = "holding"
	StateCompleted State = "completed"
)

// EventType defines the type of hold event.
type EventType string

const (
	EventStarted   EventType = "started"
	EventProgress  EventType = "progress"
	EventCompleted EventType = "completed"
	EventCancelled EventType = "cancelled"
)

// Event represents a hold update for observers.
type Event struct {
	Type      EventType
	State     State
	SessionID string
	Progress  float64
	At        time.Time
}
