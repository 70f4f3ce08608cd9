// Package library persists the listener's offline downloads and theme.
package library

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/soundwave/internal/app/playback"
	"github.com/osa030/soundwave/internal/domain/track"
	"github.com/osa030/soundwave/internal/infra/store"
)

// Storage keys.
const (
	DownloadsKey = "soundwave_downloads"
	ThemeKey     = "soundwave_theme"
)

// Theme is a UI color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeOcean Theme = "ocean"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeDark, ThemeLight, ThemeOcean:
		return t, nil
	}
	return "", errors.Mark(errors.Newf("unknown theme: %q", s), playback.ErrInvalidArgument)
}

// Library reads and writes the listener's saved state.
type Library struct {
	mu    sync.Mutex
	store store.Store
}

// New creates a Library on top of s.
func New(s store.Store) *Library {
	return &Library{store: s}
}

// Download saves an offline copy of t. It returns false, without error,
// when the track is already downloaded.
func (l *Library) Download(ctx context.Context, t track.Track) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	downloads, err := l.downloadsLocked(ctx)
	if err != nil {
		return false, err
	}
	if track.IndexOf(downloads, t.ID) >= 0 {
		return false, nil
	}

	t.Offline = true
	downloads = append(downloads, t)

	data, err := json.Marshal(downloads)
	if err != nil {
		return false, errors.Wrap(err, "failed to encode downloads")
	}
	if err := l.store.Set(ctx, DownloadsKey, data); err != nil {
		return false, errors.Wrap(err, "failed to save downloads")
	}

	zlog.Info().Msgf("track downloaded: track_id=%s title=%s total=%d", t.ID, t.Title, len(downloads))
	return true, nil
}

// Downloads returns the downloaded tracks in the order they were saved.
func (l *Library) Downloads(ctx context.Context) ([]track.Track, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.downloadsLocked(ctx)
}

func (l *Library) downloadsLocked(ctx context.Context) ([]track.Track, error) {
	data, err := l.store.Get(ctx, DownloadsKey)
	if errors.Is(err, store.ErrNotFound) {
		return []track.Track{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load downloads")
	}

	var downloads []track.Track
	if err := json.Unmarshal(data, &downloads); err != nil {
		// A corrupt entry is treated as an empty library and overwritten
		// by the next download.
		zlog.Warn().Msgf("discarding unreadable downloads: error=%v", err)
		return []track.Track{}, nil
	}
	return downloads, nil
}

// Theme returns the saved theme, dark when none is saved.
func (l *Library) Theme(ctx context.Context) (Theme, error) {
	data, err := l.store.Get(ctx, ThemeKey)
	if errors.Is(err, store.ErrNotFound) {
		return ThemeDark, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load theme")
	}
	t, err := ParseTheme(string(data))
	if err != nil {
		zlog.Warn().Msgf("ignoring saved theme: value=%q", string(data))
		return ThemeDark, nil
	}
	return t, nil
}

// SetTheme validates and saves the theme.
func (l *Library) SetTheme(ctx context.Context, name string) (Theme, error) {
	t, err := ParseTheme(name)
	if err != nil {
		return "", err
	}
	if err := l.store.Set(ctx, ThemeKey, []byte(t)); err != nil {
		return "", errors.Wrap(err, "failed to save theme")
	}
	zlog.Debug().Msgf("theme changed: theme=%s", t)
	return t, nil
}
