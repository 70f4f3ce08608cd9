package session

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/osa030/soundwave/internal/app/playback"
	"github.com/osa030/soundwave/internal/domain/playlist"
	"github.com/osa030/soundwave/internal/domain/track"
)

// Context names a play request can be made from.
const (
	ContextHome         = "home"
	ContextRadio        = "radio"
	ContextDownloads    = "downloads"
	ContextArtistPrefix = "artist:"
)

// ArtistContext returns the context name of an artist page.
func ArtistContext(name string) string {
	return ContextArtistPrefix + name
}

// resolveContext returns the track list displayed under the context name.
// An empty name means home.
func (m *Manager) resolveContext(ctx context.Context, name string) (*playlist.Playlist, error) {
	switch {
	case name == "" || name == ContextHome:
		return &playlist.Playlist{ID: ContextHome, Name: "Home", Tracks: m.catalog.All()}, nil

	case name == ContextRadio:
		m.mu.RLock()
		defer m.mu.RUnlock()
		if m.radio == nil {
			return &playlist.Playlist{ID: ContextRadio, Name: "Radio"}, nil
		}
		radio := *m.radio
		radio.Tracks = append([]track.Track(nil), m.radio.Tracks...)
		return &radio, nil

	case name == ContextDownloads:
		tracks, err := m.library.Downloads(ctx)
		if err != nil {
			return nil, err
		}
		return &playlist.Playlist{ID: ContextDownloads, Name: "Downloads", Tracks: tracks}, nil

	case strings.HasPrefix(name, ContextArtistPrefix):
		artistName := strings.TrimPrefix(name, ContextArtistPrefix)
		if artistName == "" {
			return nil, errors.Mark(errors.New("artist context without artist name"), playback.ErrInvalidArgument)
		}
		a := m.catalog.Artist(artistName)
		return &playlist.Playlist{
			ID:       name,
			Name:     artistName,
			CoverURL: a.CoverURL,
			Tracks:   m.catalog.ByArtist(artistName),
		}, nil

	default:
		return nil, errors.Mark(errors.Newf("unknown context: %q", name), playback.ErrInvalidArgument)
	}
}
