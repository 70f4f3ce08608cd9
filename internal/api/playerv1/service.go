package playerv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// PlayerServiceName is the fully-qualified name of the PlayerService.
const PlayerServiceName = "soundwave.player.v1.PlayerService"

// Procedure paths.
const (
	PlayerServicePlayProcedure                   = "/soundwave.player.v1.PlayerService/Play"
	PlayerServiceTogglePlayPauseProcedure        = "/soundwave.player.v1.PlayerService/TogglePlayPause"
	PlayerServiceNextProcedure                   = "/soundwave.player.v1.PlayerService/Next"
	PlayerServicePreviousProcedure               = "/soundwave.player.v1.PlayerService/Previous"
	PlayerServiceBeginSeekProcedure              = "/soundwave.player.v1.PlayerService/BeginSeek"
	PlayerServiceSeekProcedure                   = "/soundwave.player.v1.PlayerService/Seek"
	PlayerServiceEndSeekProcedure                = "/soundwave.player.v1.PlayerService/EndSeek"
	PlayerServiceRemoveFromQueueProcedure        = "/soundwave.player.v1.PlayerService/RemoveFromQueue"
	PlayerServiceSetShuffleProcedure             = "/soundwave.player.v1.PlayerService/SetShuffle"
	PlayerServiceSetRepeatProcedure              = "/soundwave.player.v1.PlayerService/SetRepeat"
	PlayerServiceCycleRepeatProcedure            = "/soundwave.player.v1.PlayerService/CycleRepeat"
	PlayerServiceSetVolumeProcedure              = "/soundwave.player.v1.PlayerService/SetVolume"
	PlayerServiceToggleMuteProcedure             = "/soundwave.player.v1.PlayerService/ToggleMute"
	PlayerServiceToggleLikeProcedure             = "/soundwave.player.v1.PlayerService/ToggleLike"
	PlayerServiceGetStatusProcedure              = "/soundwave.player.v1.PlayerService/GetStatus"
	PlayerServiceListTracksProcedure             = "/soundwave.player.v1.PlayerService/ListTracks"
	PlayerServiceStartRadioProcedure             = "/soundwave.player.v1.PlayerService/StartRadio"
	PlayerServiceGetArtistProcedure              = "/soundwave.player.v1.PlayerService/GetArtist"
	PlayerServiceDownloadProcedure               = "/soundwave.player.v1.PlayerService/Download"
	PlayerServiceListDownloadsProcedure          = "/soundwave.player.v1.PlayerService/ListDownloads"
	PlayerServiceGetThemeProcedure               = "/soundwave.player.v1.PlayerService/GetTheme"
	PlayerServiceSetThemeProcedure               = "/soundwave.player.v1.PlayerService/SetTheme"
	PlayerServiceShareProcedure                  = "/soundwave.player.v1.PlayerService/Share"
	PlayerServiceSubscribeNotificationsProcedure = "/soundwave.player.v1.PlayerService/SubscribeNotifications"
)

// PlayerServiceHandler is implemented by the server.
type PlayerServiceHandler interface {
	Play(context.Context, *connect.Request[PlayRequest]) (*connect.Response[StatusResponse], error)
	TogglePlayPause(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	Next(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	Previous(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	BeginSeek(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	Seek(context.Context, *connect.Request[SeekRequest]) (*connect.Response[StatusResponse], error)
	EndSeek(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	RemoveFromQueue(context.Context, *connect.Request[RemoveFromQueueRequest]) (*connect.Response[StatusResponse], error)
	SetShuffle(context.Context, *connect.Request[SetShuffleRequest]) (*connect.Response[StatusResponse], error)
	SetRepeat(context.Context, *connect.Request[SetRepeatRequest]) (*connect.Response[StatusResponse], error)
	CycleRepeat(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	SetVolume(context.Context, *connect.Request[SetVolumeRequest]) (*connect.Response[StatusResponse], error)
	ToggleMute(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	ToggleLike(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	GetStatus(context.Context, *connect.Request[Empty]) (*connect.Response[StatusResponse], error)
	ListTracks(context.Context, *connect.Request[ListTracksRequest]) (*connect.Response[ListTracksResponse], error)
	StartRadio(context.Context, *connect.Request[StartRadioRequest]) (*connect.Response[StartRadioResponse], error)
	GetArtist(context.Context, *connect.Request[GetArtistRequest]) (*connect.Response[GetArtistResponse], error)
	Download(context.Context, *connect.Request[DownloadRequest]) (*connect.Response[DownloadResponse], error)
	ListDownloads(context.Context, *connect.Request[Empty]) (*connect.Response[ListTracksResponse], error)
	GetTheme(context.Context, *connect.Request[Empty]) (*connect.Response[ThemeResponse], error)
	SetTheme(context.Context, *connect.Request[SetThemeRequest]) (*connect.Response[ThemeResponse], error)
	Share(context.Context, *connect.Request[ShareRequest]) (*connect.Response[ShareResponse], error)
	SubscribeNotifications(context.Context, *connect.Request[Empty], *connect.ServerStream[Notification]) error
}

// NewPlayerServiceHandler builds an HTTP handler for svc. It returns the path
// to mount the handler on.
func NewPlayerServiceHandler(svc PlayerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)

	handlers := map[string]http.Handler{
		PlayerServicePlayProcedure:                   connect.NewUnaryHandler(PlayerServicePlayProcedure, svc.Play, opts...),
		PlayerServiceTogglePlayPauseProcedure:        connect.NewUnaryHandler(PlayerServiceTogglePlayPauseProcedure, svc.TogglePlayPause, opts...),
		PlayerServiceNextProcedure:                   connect.NewUnaryHandler(PlayerServiceNextProcedure, svc.Next, opts...),
		PlayerServicePreviousProcedure:               connect.NewUnaryHandler(PlayerServicePreviousProcedure, svc.Previous, opts...),
		PlayerServiceBeginSeekProcedure:              connect.NewUnaryHandler(PlayerServiceBeginSeekProcedure, svc.BeginSeek, opts...),
		PlayerServiceSeekProcedure:                   connect.NewUnaryHandler(PlayerServiceSeekProcedure, svc.Seek, opts...),
		PlayerServiceEndSeekProcedure:                connect.NewUnaryHandler(PlayerServiceEndSeekProcedure, svc.EndSeek, opts...),
		PlayerServiceRemoveFromQueueProcedure:        connect.NewUnaryHandler(PlayerServiceRemoveFromQueueProcedure, svc.RemoveFromQueue, opts...),
		PlayerServiceSetShuffleProcedure:             connect.NewUnaryHandler(PlayerServiceSetShuffleProcedure, svc.SetShuffle, opts...),
		PlayerServiceSetRepeatProcedure:              connect.NewUnaryHandler(PlayerServiceSetRepeatProcedure, svc.SetRepeat, opts...),
		PlayerServiceCycleRepeatProcedure:            connect.NewUnaryHandler(PlayerServiceCycleRepeatProcedure, svc.CycleRepeat, opts...),
		PlayerServiceSetVolumeProcedure:              connect.NewUnaryHandler(PlayerServiceSetVolumeProcedure, svc.SetVolume, opts...),
		PlayerServiceToggleMuteProcedure:             connect.NewUnaryHandler(PlayerServiceToggleMuteProcedure, svc.ToggleMute, opts...),
		PlayerServiceToggleLikeProcedure:             connect.NewUnaryHandler(PlayerServiceToggleLikeProcedure, svc.ToggleLike, opts...),
		PlayerServiceGetStatusProcedure:              connect.NewUnaryHandler(PlayerServiceGetStatusProcedure, svc.GetStatus, opts...),
		PlayerServiceListTracksProcedure:             connect.NewUnaryHandler(PlayerServiceListTracksProcedure, svc.ListTracks, opts...),
		PlayerServiceStartRadioProcedure:             connect.NewUnaryHandler(PlayerServiceStartRadioProcedure, svc.StartRadio, opts...),
		PlayerServiceGetArtistProcedure:              connect.NewUnaryHandler(PlayerServiceGetArtistProcedure, svc.GetArtist, opts...),
		PlayerServiceDownloadProcedure:               connect.NewUnaryHandler(PlayerServiceDownloadProcedure, svc.Download, opts...),
		PlayerServiceListDownloadsProcedure:          connect.NewUnaryHandler(PlayerServiceListDownloadsProcedure, svc.ListDownloads, opts...),
		PlayerServiceGetThemeProcedure:               connect.NewUnaryHandler(PlayerServiceGetThemeProcedure, svc.GetTheme, opts...),
		PlayerServiceSetThemeProcedure:               connect.NewUnaryHandler(PlayerServiceSetThemeProcedure, svc.SetTheme, opts...),
		PlayerServiceShareProcedure:                  connect.NewUnaryHandler(PlayerServiceShareProcedure, svc.Share, opts...),
		PlayerServiceSubscribeNotificationsProcedure: connect.NewServerStreamHandler(PlayerServiceSubscribeNotificationsProcedure, svc.SubscribeNotifications, opts...),
	}

	return "/" + PlayerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
