// Package connect provides Connect RPC service implementations.
package connect

import (
	"context"

	"connectrpc.com/connect"
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
	"github.com/osa030/soundwave/internal/app/playback"
	"github.com/osa030/soundwave/internal/app/session"
)

// PlayerService implements the PlayerService RPC.
type PlayerService struct {
	session *session.Manager
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(session *session.Manager) *PlayerService {
	return &PlayerService{
		session: session,
	}
}

// Ensure PlayerService implements the interface.
var _ playerv1.PlayerServiceHandler = (*PlayerService)(nil)

// toConnectError maps player errors to RPC codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, playback.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, playback.ErrPreconditionViolated):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		zlog.Error().Msgf("internal error: %+v", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

func statusResponse(status session.Status, err error) (*connect.Response[playerv1.StatusResponse], error) {
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.StatusResponse{
		Status: session.BuildPlaybackStatus(status.Snapshot, status.Context),
	}), nil
}

// Play plays a track from a context.
func (s *PlayerService) Play(
	ctx context.Context,
	req *connect.Request[playerv1.PlayRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.Play(ctx, req.Msg.TrackId, req.Msg.Context))
}

// TogglePlayPause flips between playing and paused.
func (s *PlayerService) TogglePlayPause(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.TogglePlayPause())
}

// Next skips to the next track.
func (s *PlayerService) Next(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.Next())
}

// Previous goes back one track.
func (s *PlayerService) Previous(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.Previous())
}

// BeginSeek starts a progress bar drag.
func (s *PlayerService) BeginSeek(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.BeginSeek())
}

// Seek moves the playback position.
func (s *PlayerService) Seek(
	ctx context.Context,
	req *connect.Request[playerv1.SeekRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.Seek(int(req.Msg.Seconds)))
}

// EndSeek ends a progress bar drag.
func (s *PlayerService) EndSeek(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.EndSeek())
}

// RemoveFromQueue removes a queue entry.
func (s *PlayerService) RemoveFromQueue(
	ctx context.Context,
	req *connect.Request[playerv1.RemoveFromQueueRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.RemoveFromQueue(int(req.Msg.Index)))
}

// SetShuffle stores the shuffle flag.
func (s *PlayerService) SetShuffle(
	ctx context.Context,
	req *connect.Request[playerv1.SetShuffleRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.SetShuffle(req.Msg.Enabled))
}

// SetRepeat stores the repeat mode.
func (s *PlayerService) SetRepeat(
	ctx context.Context,
	req *connect.Request[playerv1.SetRepeatRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.SetRepeat(req.Msg.Mode))
}

// CycleRepeat advances the repeat mode.
func (s *PlayerService) CycleRepeat(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.CycleRepeat())
}

// SetVolume stores the volume level.
func (s *PlayerService) SetVolume(
	ctx context.Context,
	req *connect.Request[playerv1.SetVolumeRequest],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.SetVolume(int(req.Msg.Volume)))
}

// ToggleMute flips the mute flag.
func (s *PlayerService) ToggleMute(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.ToggleMute())
}

// ToggleLike flips the like flag of the current track.
func (s *PlayerService) ToggleLike(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.ToggleLike())
}

// GetStatus returns the current player status.
func (s *PlayerService) GetStatus(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.StatusResponse], error) {
	return statusResponse(s.session.Status(), nil)
}

// ListTracks returns the tracks displayed under a context.
func (s *PlayerService) ListTracks(
	ctx context.Context,
	req *connect.Request[playerv1.ListTracksRequest],
) (*connect.Response[playerv1.ListTracksResponse], error) {
	tracks, name, err := s.session.Tracks(ctx, req.Msg.Context)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ListTracksResponse{
		Context: name,
		Tracks:  session.BuildTrackInfos(tracks),
	}), nil
}

// StartRadio starts a radio seeded by a track's artist.
func (s *PlayerService) StartRadio(
	ctx context.Context,
	req *connect.Request[playerv1.StartRadioRequest],
) (*connect.Response[playerv1.StartRadioResponse], error) {
	tracks, message, status, err := s.session.StartRadio(ctx, req.Msg.TrackId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.StartRadioResponse{
		Message: message,
		Tracks:  session.BuildTrackInfos(tracks),
		Status:  session.BuildPlaybackStatus(status.Snapshot, status.Context),
	}), nil
}

// GetArtist returns an artist profile and the artist page's tracks.
func (s *PlayerService) GetArtist(
	ctx context.Context,
	req *connect.Request[playerv1.GetArtistRequest],
) (*connect.Response[playerv1.GetArtistResponse], error) {
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("artist name is required"))
	}
	a, tracks := s.session.ArtistProfile(req.Msg.Name)
	return connect.NewResponse(&playerv1.GetArtistResponse{
		Artist: session.BuildArtistInfo(a),
		Tracks: session.BuildTrackInfos(tracks),
	}), nil
}

// Download saves a track to the library.
func (s *PlayerService) Download(
	ctx context.Context,
	req *connect.Request[playerv1.DownloadRequest],
) (*connect.Response[playerv1.DownloadResponse], error) {
	added, message, err := s.session.Download(ctx, req.Msg.TrackId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.DownloadResponse{
		Added:   added,
		Message: message,
	}), nil
}

// ListDownloads returns the downloaded tracks.
func (s *PlayerService) ListDownloads(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.ListTracksResponse], error) {
	tracks, err := s.session.Downloads(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ListTracksResponse{
		Context: session.ContextDownloads,
		Tracks:  session.BuildTrackInfos(tracks),
	}), nil
}

// GetTheme returns the saved theme.
func (s *PlayerService) GetTheme(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
) (*connect.Response[playerv1.ThemeResponse], error) {
	theme, err := s.session.Theme(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ThemeResponse{Theme: string(theme)}), nil
}

// SetTheme saves the theme.
func (s *PlayerService) SetTheme(
	ctx context.Context,
	req *connect.Request[playerv1.SetThemeRequest],
) (*connect.Response[playerv1.ThemeResponse], error) {
	theme, err := s.session.SetTheme(ctx, req.Msg.Theme)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ThemeResponse{Theme: string(theme)}), nil
}

// Share returns the share text of a track.
func (s *PlayerService) Share(
	ctx context.Context,
	req *connect.Request[playerv1.ShareRequest],
) (*connect.Response[playerv1.ShareResponse], error) {
	text, message, err := s.session.ShareText(req.Msg.TrackId)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&playerv1.ShareResponse{
		Text:    text,
		Message: message,
	}), nil
}

// SubscribeNotifications streams the current state followed by every
// player change until the client goes away or the session closes.
func (s *PlayerService) SubscribeNotifications(
	ctx context.Context,
	req *connect.Request[playerv1.Empty],
	stream *connect.ServerStream[playerv1.Notification],
) error {
	notifManager := s.session.GetNotificationManager()

	if err := stream.Send(s.session.InitialNotification()); err != nil {
		return err
	}

	adapter := &notificationStreamAdapter{stream: stream}
	subscriptionID := notifManager.Subscribe(adapter)
	defer notifManager.Unsubscribe(subscriptionID)

	select {
	case <-ctx.Done():
	case <-s.session.Done():
	}
	return nil
}

// notificationStreamAdapter adapts connect.ServerStream to notification.Stream.
type notificationStreamAdapter struct {
	stream *connect.ServerStream[playerv1.Notification]
}

func (a *notificationStreamAdapter) Send(notification *playerv1.Notification) error {
	return a.stream.Send(notification)
}
