package playback

// EventType represents a playback event type.
type EventType int

const (
	EventTrackStarted EventType = iota // A track became current
	EventTrackEnded                    // Current track reached its duration
	EventStateChanged                  // Play/pause toggled
	EventProgress                      // Elapsed time changed (tick or seek)
	EventQueueChanged                  // Queue entries removed
	EventModeChanged                   // Shuffle/repeat/seeking changed
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventTrackStarted:
		return "track_started"
	case EventTrackEnded:
		return "track_ended"
	case EventStateChanged:
		return "state_changed"
	case EventProgress:
		return "progress"
	case EventQueueChanged:
		return "queue_changed"
	case EventModeChanged:
		return "mode_changed"
	default:
		return "unknown"
	}
}

// Event represents a playback event.
type Event struct {
	Type     EventType
	Snapshot Snapshot // State after the transition
}
