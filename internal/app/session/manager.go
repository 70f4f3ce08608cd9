// Package session wires the catalog, library and playback controller
// together and publishes player changes to subscribers.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
	"github.com/osa030/soundwave/internal/app/catalog"
	"github.com/osa030/soundwave/internal/app/library"
	"github.com/osa030/soundwave/internal/app/notification"
	"github.com/osa030/soundwave/internal/app/playback"
	"github.com/osa030/soundwave/internal/domain/artist"
	"github.com/osa030/soundwave/internal/domain/playlist"
	"github.com/osa030/soundwave/internal/domain/track"
	"github.com/osa030/soundwave/internal/infra/config"
)

// Manager manages the player session.
type Manager struct {
	mu sync.RWMutex

	// Configuration
	config *config.Config

	// Components
	catalog      *catalog.Catalog
	library      *library.Library
	playback     *playback.Controller
	notification *notification.Manager

	// Last radio selection
	radio *playlist.Playlist

	// Channels
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// Status is the player status together with the active context name.
type Status struct {
	Snapshot playback.Snapshot
	Context  string
}

// NewManager creates a new session manager.
func NewManager(cfg *config.Config, cat *catalog.Catalog, lib *library.Library) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		config:  cfg,
		catalog: cat,
		library: lib,
		playback: playback.NewController(playback.Config{
			TickInterval: cfg.TickInterval(),
			EventBuffer:  cfg.Playback.EventBuffer,
		}),
		notification: notification.NewManager(),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
}

// Start starts forwarding playback events to subscribers.
func (m *Manager) Start() {
	zlog.Info().Msgf("session started: tracks=%d tick_interval=%v", m.catalog.Len(), m.config.TickInterval())
	go m.playbackLoop()
}

// Done is closed when the session is closed.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Close stops playback and drops every subscriber.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.cancel()
		m.playback.Close()
		m.notification.Close()
		close(m.done)
		zlog.Info().Msg("session closed")
	})
}

// GetNotificationManager returns the notification manager.
func (m *Manager) GetNotificationManager() *notification.Manager {
	return m.notification
}

// Play plays the track from the track list displayed under contextName.
func (m *Manager) Play(ctx context.Context, trackID, contextName string) (Status, error) {
	list, err := m.resolveContext(ctx, contextName)
	if err != nil {
		return Status{}, err
	}

	t, ok := list.Find(trackID)
	if !ok {
		return Status{}, errors.Mark(
			errors.Newf("track %s is not in context %s", trackID, list.ID),
			playback.ErrInvalidArgument)
	}

	if err := m.playback.PlayFrom(list.ID, t, list.Tracks); err != nil {
		return Status{}, err
	}

	zlog.Info().Msgf("play: track_id=%s title=%s context=%s", t.ID, t.Title, list.ID)
	return m.Status(), nil
}

// TogglePlayPause flips between playing and paused.
func (m *Manager) TogglePlayPause() (Status, error) {
	return m.apply(m.playback.TogglePlayPause)
}

// Next skips to the next track.
func (m *Manager) Next() (Status, error) {
	return m.apply(m.playback.AdvanceNext)
}

// Previous goes back to the previous track of the context.
func (m *Manager) Previous() (Status, error) {
	return m.apply(m.playback.AdvancePrevious)
}

// BeginSeek suspends ticking while the listener drags the progress bar.
func (m *Manager) BeginSeek() (Status, error) {
	return m.apply(m.playback.BeginSeek)
}

// Seek moves the playback position to seconds.
func (m *Manager) Seek(seconds int) (Status, error) {
	return m.apply(func() error { return m.playback.Seek(seconds) })
}

// EndSeek resumes ticking after a drag.
func (m *Manager) EndSeek() (Status, error) {
	return m.apply(m.playback.EndSeek)
}

// RemoveFromQueue removes the queue entry at index.
func (m *Manager) RemoveFromQueue(index int) (Status, error) {
	return m.apply(func() error { return m.playback.RemoveFromQueue(index) })
}

// SetShuffle stores the shuffle flag.
func (m *Manager) SetShuffle(enabled bool) (Status, error) {
	return m.apply(func() error { return m.playback.SetShuffle(enabled) })
}

// SetRepeat stores the repeat mode given by name.
func (m *Manager) SetRepeat(mode string) (Status, error) {
	parsed, err := playback.ParseRepeatMode(mode)
	if err != nil {
		return Status{}, err
	}
	return m.apply(func() error { return m.playback.SetRepeat(parsed) })
}

// CycleRepeat moves the repeat mode to the next one in none, all, one order.
func (m *Manager) CycleRepeat() (Status, error) {
	return m.apply(func() error {
		_, err := m.playback.CycleRepeat()
		return err
	})
}

// SetVolume stores the volume level.
func (m *Manager) SetVolume(level int) (Status, error) {
	return m.apply(func() error { return m.playback.SetVolume(level) })
}

// ToggleMute flips the mute flag.
func (m *Manager) ToggleMute() (Status, error) {
	return m.apply(m.playback.ToggleMute)
}

// ToggleLike flips the like flag of the current track.
func (m *Manager) ToggleLike() (Status, error) {
	return m.apply(m.playback.ToggleLike)
}

func (m *Manager) apply(op func() error) (Status, error) {
	if err := op(); err != nil {
		return Status{}, err
	}
	return m.Status(), nil
}

// Status returns the current player status.
func (m *Manager) Status() Status {
	return statusOf(m.playback.Snapshot())
}

// statusOf pairs a snapshot with the context it was played from. Nothing
// played yet means home.
func statusOf(s playback.Snapshot) Status {
	contextName := s.Context
	if contextName == "" {
		contextName = ContextHome
	}
	return Status{Snapshot: s, Context: contextName}
}

// Tracks returns the track list displayed under contextName and its
// canonical name.
func (m *Manager) Tracks(ctx context.Context, contextName string) ([]track.Track, string, error) {
	list, err := m.resolveContext(ctx, contextName)
	if err != nil {
		return nil, "", err
	}
	return list.Tracks, list.ID, nil
}

// StartRadio builds a radio selection seeded by the track's artist and
// plays its first track.
func (m *Manager) StartRadio(ctx context.Context, trackID string) ([]track.Track, string, Status, error) {
	seed, ok := m.catalog.Get(trackID)
	if !ok {
		return nil, "", Status{}, errors.Mark(errors.Newf("unknown track: %s", trackID), playback.ErrInvalidArgument)
	}

	tracks := m.catalog.Radio(seed.Artist)
	if len(tracks) == 0 {
		return nil, "", Status{}, errors.Mark(errors.New("catalog is empty"), playback.ErrPreconditionViolated)
	}

	m.mu.Lock()
	m.radio = &playlist.Playlist{
		ID:     ContextRadio,
		Name:   fmt.Sprintf("%s Radio", seed.Artist),
		Tracks: tracks,
	}
	m.mu.Unlock()

	status, err := m.Play(ctx, tracks[0].ID, ContextRadio)
	if err != nil {
		return nil, "", Status{}, err
	}

	message := fmt.Sprintf(m.config.GetMessage("radio_started"), seed.Artist)
	zlog.Info().Msgf("radio started: seed_track_id=%s artist=%s tracks=%d", seed.ID, seed.Artist, len(tracks))
	return tracks, message, status, nil
}

// ArtistProfile returns the artist profile and the artist page's tracks.
// Artists without a profile get the default bio under their own name.
func (m *Manager) ArtistProfile(name string) (artist.Artist, []track.Track) {
	a := m.catalog.Artist(name)
	a.Name = name
	return a, m.catalog.ByArtist(name)
}

// Download saves the catalog track to the library. It returns whether the
// track was added and the message to show.
func (m *Manager) Download(ctx context.Context, trackID string) (bool, string, error) {
	t, ok := m.catalog.Get(trackID)
	if !ok {
		return false, "", errors.Mark(errors.Newf("unknown track: %s", trackID), playback.ErrInvalidArgument)
	}

	added, err := m.library.Download(ctx, t)
	if err != nil {
		return false, "", err
	}
	if !added {
		return false, m.config.GetMessage("already_downloaded"), nil
	}
	return true, m.config.GetMessage("downloaded"), nil
}

// Downloads returns the downloaded tracks.
func (m *Manager) Downloads(ctx context.Context) ([]track.Track, error) {
	return m.library.Downloads(ctx)
}

// Theme returns the saved theme.
func (m *Manager) Theme(ctx context.Context) (library.Theme, error) {
	return m.library.Theme(ctx)
}

// SetTheme saves the theme.
func (m *Manager) SetTheme(ctx context.Context, theme string) (library.Theme, error) {
	return m.library.SetTheme(ctx, theme)
}

// ShareText returns the share text of the catalog track and the message to
// show once it is copied.
func (m *Manager) ShareText(trackID string) (string, string, error) {
	t, ok := m.catalog.Get(trackID)
	if !ok {
		return "", "", errors.Mark(errors.Newf("unknown track: %s", trackID), playback.ErrInvalidArgument)
	}
	return t.ShareText(), m.config.GetMessage("link_copied"), nil
}

// InitialNotification builds the notification sent to a new subscriber.
func (m *Manager) InitialNotification() *playerv1.Notification {
	status := m.Status()
	return &playerv1.Notification{
		Type:       playerv1.NotificationTypeInitialState,
		SequenceNo: m.notification.NextSequenceNo(),
		Status:     BuildPlaybackStatus(status.Snapshot, status.Context),
	}
}

// playbackLoop forwards playback events to subscribers until the session
// is closed.
func (m *Manager) playbackLoop() {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error().Msgf("playback loop panicked: %v", r)
			zlog.Info().Msg("restarting playback loop")
			go m.playbackLoop()
		}
	}()

	events := m.playback.Events()
	for {
		select {
		case <-m.ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			m.handlePlaybackEvent(event)
		}
	}
}

// handlePlaybackEvent publishes a playback event.
func (m *Manager) handlePlaybackEvent(event playback.Event) {
	switch event.Type {
	case playback.EventProgress:
		zlog.Debug().Msgf("playback event: type=%s elapsed=%d", event.Type, event.Snapshot.Elapsed)
	case playback.EventTrackStarted:
		if cur := event.Snapshot.Current; cur != nil {
			zlog.Info().Msgf("broadcast TRACK_STARTED: track_id=%s title=%s", cur.ID, cur.Title)
		}
	default:
		zlog.Info().Msgf("playback event: type=%s state=%s", event.Type, event.Snapshot.State)
	}

	status := statusOf(event.Snapshot)
	m.notification.Broadcast(&playerv1.Notification{
		Type:   notificationType(event.Type),
		Status: BuildPlaybackStatus(status.Snapshot, status.Context),
	})
}
