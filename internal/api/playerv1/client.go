package playerv1

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// PlayerServiceClient calls a remote PlayerService.
type PlayerServiceClient struct {
	play                   *connect.Client[PlayRequest, StatusResponse]
	togglePlayPause        *connect.Client[Empty, StatusResponse]
	next                   *connect.Client[Empty, StatusResponse]
	previous               *connect.Client[Empty, StatusResponse]
	beginSeek              *connect.Client[Empty, StatusResponse]
	seek                   *connect.Client[SeekRequest, StatusResponse]
	endSeek                *connect.Client[Empty, StatusResponse]
	removeFromQueue        *connect.Client[RemoveFromQueueRequest, StatusResponse]
	setShuffle             *connect.Client[SetShuffleRequest, StatusResponse]
	setRepeat              *connect.Client[SetRepeatRequest, StatusResponse]
	cycleRepeat            *connect.Client[Empty, StatusResponse]
	setVolume              *connect.Client[SetVolumeRequest, StatusResponse]
	toggleMute             *connect.Client[Empty, StatusResponse]
	toggleLike             *connect.Client[Empty, StatusResponse]
	getStatus              *connect.Client[Empty, StatusResponse]
	listTracks             *connect.Client[ListTracksRequest, ListTracksResponse]
	startRadio             *connect.Client[StartRadioRequest, StartRadioResponse]
	getArtist              *connect.Client[GetArtistRequest, GetArtistResponse]
	download               *connect.Client[DownloadRequest, DownloadResponse]
	listDownloads          *connect.Client[Empty, ListTracksResponse]
	getTheme               *connect.Client[Empty, ThemeResponse]
	setTheme               *connect.Client[SetThemeRequest, ThemeResponse]
	share                  *connect.Client[ShareRequest, ShareResponse]
	subscribeNotifications *connect.Client[Empty, Notification]
}

// NewPlayerServiceClient creates a client for the service at baseURL.
func NewPlayerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PlayerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)

	return &PlayerServiceClient{
		play:                   connect.NewClient[PlayRequest, StatusResponse](httpClient, baseURL+PlayerServicePlayProcedure, opts...),
		togglePlayPause:        connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceTogglePlayPauseProcedure, opts...),
		next:                   connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceNextProcedure, opts...),
		previous:               connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServicePreviousProcedure, opts...),
		beginSeek:              connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceBeginSeekProcedure, opts...),
		seek:                   connect.NewClient[SeekRequest, StatusResponse](httpClient, baseURL+PlayerServiceSeekProcedure, opts...),
		endSeek:                connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceEndSeekProcedure, opts...),
		removeFromQueue:        connect.NewClient[RemoveFromQueueRequest, StatusResponse](httpClient, baseURL+PlayerServiceRemoveFromQueueProcedure, opts...),
		setShuffle:             connect.NewClient[SetShuffleRequest, StatusResponse](httpClient, baseURL+PlayerServiceSetShuffleProcedure, opts...),
		setRepeat:              connect.NewClient[SetRepeatRequest, StatusResponse](httpClient, baseURL+PlayerServiceSetRepeatProcedure, opts...),
		cycleRepeat:            connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceCycleRepeatProcedure, opts...),
		setVolume:              connect.NewClient[SetVolumeRequest, StatusResponse](httpClient, baseURL+PlayerServiceSetVolumeProcedure, opts...),
		toggleMute:             connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceToggleMuteProcedure, opts...),
		toggleLike:             connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceToggleLikeProcedure, opts...),
		getStatus:              connect.NewClient[Empty, StatusResponse](httpClient, baseURL+PlayerServiceGetStatusProcedure, opts...),
		listTracks:             connect.NewClient[ListTracksRequest, ListTracksResponse](httpClient, baseURL+PlayerServiceListTracksProcedure, opts...),
		startRadio:             connect.NewClient[StartRadioRequest, StartRadioResponse](httpClient, baseURL+PlayerServiceStartRadioProcedure, opts...),
		getArtist:              connect.NewClient[GetArtistRequest, GetArtistResponse](httpClient, baseURL+PlayerServiceGetArtistProcedure, opts...),
		download:               connect.NewClient[DownloadRequest, DownloadResponse](httpClient, baseURL+PlayerServiceDownloadProcedure, opts...),
		listDownloads:          connect.NewClient[Empty, ListTracksResponse](httpClient, baseURL+PlayerServiceListDownloadsProcedure, opts...),
		getTheme:               connect.NewClient[Empty, ThemeResponse](httpClient, baseURL+PlayerServiceGetThemeProcedure, opts...),
		setTheme:               connect.NewClient[SetThemeRequest, ThemeResponse](httpClient, baseURL+PlayerServiceSetThemeProcedure, opts...),
		share:                  connect.NewClient[ShareRequest, ShareResponse](httpClient, baseURL+PlayerServiceShareProcedure, opts...),
		subscribeNotifications: connect.NewClient[Empty, Notification](httpClient, baseURL+PlayerServiceSubscribeNotificationsProcedure, opts...),
	}
}

func (c *PlayerServiceClient) Play(ctx context.Context, req *connect.Request[PlayRequest]) (*connect.Response[StatusResponse], error) {
	return c.play.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) TogglePlayPause(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.togglePlayPause.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) Next(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.next.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) Previous(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.previous.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) BeginSeek(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.beginSeek.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) Seek(ctx context.Context, req *connect.Request[SeekRequest]) (*connect.Response[StatusResponse], error) {
	return c.seek.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) EndSeek(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.endSeek.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) RemoveFromQueue(ctx context.Context, req *connect.Request[RemoveFromQueueRequest]) (*connect.Response[StatusResponse], error) {
	return c.removeFromQueue.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) SetShuffle(ctx context.Context, req *connect.Request[SetShuffleRequest]) (*connect.Response[StatusResponse], error) {
	return c.setShuffle.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) SetRepeat(ctx context.Context, req *connect.Request[SetRepeatRequest]) (*connect.Response[StatusResponse], error) {
	return c.setRepeat.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) CycleRepeat(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.cycleRepeat.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) SetVolume(ctx context.Context, req *connect.Request[SetVolumeRequest]) (*connect.Response[StatusResponse], error) {
	return c.setVolume.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) ToggleMute(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.toggleMute.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) ToggleLike(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.toggleLike.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) GetStatus(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[StatusResponse], error) {
	return c.getStatus.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) ListTracks(ctx context.Context, req *connect.Request[ListTracksRequest]) (*connect.Response[ListTracksResponse], error) {
	return c.listTracks.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) StartRadio(ctx context.Context, req *connect.Request[StartRadioRequest]) (*connect.Response[StartRadioResponse], error) {
	return c.startRadio.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) GetArtist(ctx context.Context, req *connect.Request[GetArtistRequest]) (*connect.Response[GetArtistResponse], error) {
	return c.getArtist.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) Download(ctx context.Context, req *connect.Request[DownloadRequest]) (*connect.Response[DownloadResponse], error) {
	return c.download.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) ListDownloads(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListTracksResponse], error) {
	return c.listDownloads.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) GetTheme(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ThemeResponse], error) {
	return c.getTheme.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) SetTheme(ctx context.Context, req *connect.Request[SetThemeRequest]) (*connect.Response[ThemeResponse], error) {
	return c.setTheme.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) Share(ctx context.Context, req *connect.Request[ShareRequest]) (*connect.Response[ShareResponse], error) {
	return c.share.CallUnary(ctx, req)
}

func (c *PlayerServiceClient) SubscribeNotifications(ctx context.Context, req *connect.Request[Empty]) (*connect.ServerStreamForClient[Notification], error) {
	return c.subscribeNotifications.CallServerStream(ctx, req)
}
