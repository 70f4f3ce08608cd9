// Package playback provides the playback controller with integrated queue management.
package playback

import (
	"strings"

	"github.com/osa030/soundwave/internal/domain/track"
)

// State represents the playback state.
type State int

const (
	StateIdle    State = iota // No current track
	StatePlaying              // Track is playing
	StatePaused               // Track is paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// RepeatMode is the repeat setting shown in the player.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the string representation of the repeat mode.
func (m RepeatMode) String() string {
	switch m {
	case RepeatNone:
		return "none"
	case RepeatAll:
		return "all"
	case RepeatOne:
		return "one"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows m in the player's button cycle.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatNone:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatNone
	}
}

// ParseRepeatMode converts a string to a RepeatMode.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch strings.ToLower(s) {
	case "none", "off", "":
		return RepeatNone, nil
	case "all":
		return RepeatAll, nil
	case "one":
		return RepeatOne, nil
	default:
		return RepeatNone, invalidArgument("unknown repeat mode %q", s)
	}
}

// Snapshot is an immutable copy of the playback state handed to observers.
type Snapshot struct {
	State   State
	Current *track.Track
	Playing bool
	Queue   []track.Track
	Shuffle bool
	Repeat  RepeatMode
	Elapsed int // seconds
	Seeking bool
	Context string // name given to PlayFrom, empty after Play
	Volume  int    // 0-100, kept while muted
	Muted   bool
	Liked   bool // the current track is liked
}

// Duration returns the current track's duration, or 0 when idle.
func (s Snapshot) Duration() int {
	if s.Current == nil {
		return 0
	}
	return s.Current.Duration
}
