// Package track provides the Track domain entity.
package track

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Track represents a catalog record for a playable song.
// Tracks are created once when the catalog loads and never mutated afterwards.
type Track struct {
	ID          string `json:"id" yaml:"id" validate:"required"`                         // Unique identifier
	Title       string `json:"title" yaml:"title" validate:"required"`                   // Track title
	Artist      string `json:"artist" yaml:"artist" validate:"required"`                 // Artist name
	Album       string `json:"album,omitempty" yaml:"album"`                             // Album name (optional)
	CoverURL    string `json:"coverUrl" yaml:"cover_url"`                                // Cover art reference
	Duration    int    `json:"duration" yaml:"duration" validate:"gte=0,lte=2147483647"` // Duration in whole seconds, bounded by the int32 wire field
	Explicit    bool   `json:"isExplicit,omitempty" yaml:"explicit"`                     // Explicit content flag
	Plays       int64  `json:"plays,omitempty" yaml:"plays" validate:"gte=0"`
	Genre       string `json:"genre,omitempty" yaml:"genre"`
	ReleaseYear int    `json:"releaseYear,omitempty" yaml:"release_year" validate:"omitempty,gte=1900,lte=9999"`
	Offline     bool   `json:"isOffline,omitempty" yaml:"-"` // Set on copies stored in the downloads list
}

var validate = validator.New()

// Validate checks the struct constraints of the track record.
func (t Track) Validate() error {
	return validate.Struct(t)
}

// Equal reports whether two tracks refer to the same record.
func (t Track) Equal(other Track) bool {
	return t.ID == other.ID
}

// Length returns the track duration as a time.Duration.
func (t Track) Length() time.Duration {
	return time.Duration(t.Duration) * time.Second
}

// ShareText returns the text used when a listener shares the track.
func (t Track) ShareText() string {
	return fmt.Sprintf("Check out %s by %s on SoundWave!", t.Title, t.Artist)
}

// IndexOf returns the position of the track with the given ID, or -1.
func IndexOf(tracks []Track, id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// FormatSeconds renders a second count as m:ss.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
