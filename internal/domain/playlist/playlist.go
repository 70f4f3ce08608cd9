// Package playlist provides the Playlist domain entity.
package playlist

import "github.com/osa030/soundwave/internal/domain/track"

// Playlist is a named, ordered list of tracks. It is the context list a play
// request is made from.
type Playlist struct {
	ID       string        // Context name (e.g. "home", "artist:M83")
	Name     string        // Display name
	CoverURL string        // Optional cover reference
	Tracks   []track.Track // Tracks in play order
}

// TrackIDs returns all track IDs in the playlist.
func (p *Playlist) TrackIDs() []string {
	ids := make([]string, len(p.Tracks))
	for i, t := range p.Tracks {
		ids[i] = t.ID
	}
	return ids
}

// TotalDuration returns the total duration of all tracks in seconds.
func (p *Playlist) TotalDuration() int64 {
	var total int64
	for _, t := range p.Tracks {
		total += int64(t.Duration)
	}
	return total
}

// Find returns the track with the given ID.
func (p *Playlist) Find(id string) (track.Track, bool) {
	idx := track.IndexOf(p.Tracks, id)
	if idx < 0 {
		return track.Track{}, false
	}
	return p.Tracks[idx], true
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.Tracks)
}
