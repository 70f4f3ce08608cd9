package connect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
	"github.com/osa030/soundwave/internal/app/catalog"
	"github.com/osa030/soundwave/internal/app/library"
	"github.com/osa030/soundwave/internal/app/session"
	"github.com/osa030/soundwave/internal/infra/config"
	"github.com/osa030/soundwave/internal/infra/store"
)

func newTestServer(t *testing.T) (*playerv1.PlayerServiceClient, *session.Manager) {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Playback.TickIntervalMs = 0

	cat, err := catalog.New(context.Background(), catalog.NewBuiltinProvider(), catalog.Config{RadioSize: 5})
	require.NoError(t, err)

	mgr := session.NewManager(cfg, cat, library.New(store.NewMemoryStore()))
	mgr.Start()

	mux := http.NewServeMux()
	path, handler := playerv1.NewPlayerServiceHandler(
		NewPlayerService(mgr),
		connect.WithInterceptors(NewLoggingInterceptor()),
	)
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		mgr.Close()
		server.Close()
	})

	return playerv1.NewPlayerServiceClient(server.Client(), server.URL), mgr
}

func TestPlayerService_PlayAndControl(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := client.Play(ctx, connect.NewRequest(&playerv1.PlayRequest{TrackId: "2", Context: "home"}))
	require.NoError(t, err)
	status := resp.Msg.Status
	require.NotNil(t, status.Current)
	assert.Equal(t, "Blinding Lights", status.Current.Title)
	assert.Equal(t, "playing", status.State)
	assert.Len(t, status.Queue, 6)
	assert.Equal(t, int32(200), status.DurationSeconds)

	resp, err = client.Next(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "3", resp.Msg.Status.Current.TrackId)

	resp, err = client.Previous(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "2", resp.Msg.Status.Current.TrackId)

	resp, err = client.TogglePlayPause(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "paused", resp.Msg.Status.State)

	_, err = client.BeginSeek(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	resp, err = client.Seek(ctx, connect.NewRequest(&playerv1.SeekRequest{Seconds: 90}))
	require.NoError(t, err)
	assert.Equal(t, int32(90), resp.Msg.Status.ElapsedSeconds)
	assert.True(t, resp.Msg.Status.Seeking)
	resp, err = client.EndSeek(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.False(t, resp.Msg.Status.Seeking)

	resp, err = client.RemoveFromQueue(ctx, connect.NewRequest(&playerv1.RemoveFromQueueRequest{Index: 0}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Status.Queue, 4)

	resp, err = client.SetShuffle(ctx, connect.NewRequest(&playerv1.SetShuffleRequest{Enabled: true}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Status.Shuffle)

	resp, err = client.SetRepeat(ctx, connect.NewRequest(&playerv1.SetRepeatRequest{Mode: "one"}))
	require.NoError(t, err)
	assert.Equal(t, "one", resp.Msg.Status.Repeat)

	resp, err = client.CycleRepeat(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "none", resp.Msg.Status.Repeat)

	resp, err = client.GetStatus(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "home", resp.Msg.Status.Context)
}

func TestPlayerService_VolumeMuteLike(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := client.GetStatus(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, int32(80), resp.Msg.Status.Volume)

	resp, err = client.ToggleMute(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Status.Muted)

	resp, err = client.SetVolume(ctx, connect.NewRequest(&playerv1.SetVolumeRequest{Volume: 40}))
	require.NoError(t, err)
	assert.Equal(t, int32(40), resp.Msg.Status.Volume)
	assert.False(t, resp.Msg.Status.Muted)

	_, err = client.SetVolume(ctx, connect.NewRequest(&playerv1.SetVolumeRequest{Volume: 120}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.ToggleLike(ctx, connect.NewRequest(&playerv1.Empty{}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = client.Play(ctx, connect.NewRequest(&playerv1.PlayRequest{TrackId: "1"}))
	require.NoError(t, err)
	resp, err = client.ToggleLike(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Status.Liked)
}

func TestPlayerService_ErrorCodes(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	_, err := client.TogglePlayPause(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = client.Play(ctx, connect.NewRequest(&playerv1.PlayRequest{TrackId: "x", Context: "home"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.SetRepeat(ctx, connect.NewRequest(&playerv1.SetRepeatRequest{Mode: "twice"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.SetTheme(ctx, connect.NewRequest(&playerv1.SetThemeRequest{Theme: "pink"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.GetArtist(ctx, connect.NewRequest(&playerv1.GetArtistRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestPlayerService_LibraryAndDiscovery(t *testing.T) {
	client, _ := newTestServer(t)
	ctx := context.Background()

	tracks, err := client.ListTracks(ctx, connect.NewRequest(&playerv1.ListTracksRequest{Context: "artist:The Weeknd"}))
	require.NoError(t, err)
	assert.Equal(t, "artist:The Weeknd", tracks.Msg.Context)
	assert.Len(t, tracks.Msg.Tracks, 2)

	artistResp, err := client.GetArtist(ctx, connect.NewRequest(&playerv1.GetArtistRequest{Name: "M83"}))
	require.NoError(t, err)
	assert.Equal(t, "M83", artistResp.Msg.Artist.Name)
	assert.Len(t, artistResp.Msg.Tracks, 1)

	radio, err := client.StartRadio(ctx, connect.NewRequest(&playerv1.StartRadioRequest{TrackId: "3"}))
	require.NoError(t, err)
	assert.Equal(t, "Started radio for Dua Lipa", radio.Msg.Message)
	assert.Len(t, radio.Msg.Tracks, 5)
	assert.Equal(t, "radio", radio.Msg.Status.Context)

	dl, err := client.Download(ctx, connect.NewRequest(&playerv1.DownloadRequest{TrackId: "8"}))
	require.NoError(t, err)
	assert.True(t, dl.Msg.Added)
	assert.Equal(t, "Downloaded to library", dl.Msg.Message)

	dl, err = client.Download(ctx, connect.NewRequest(&playerv1.DownloadRequest{TrackId: "8"}))
	require.NoError(t, err)
	assert.False(t, dl.Msg.Added)
	assert.Equal(t, "Already downloaded", dl.Msg.Message)

	downloads, err := client.ListDownloads(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	require.Len(t, downloads.Msg.Tracks, 1)
	assert.True(t, downloads.Msg.Tracks[0].Offline)

	theme, err := client.GetTheme(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Msg.Theme)

	theme, err = client.SetTheme(ctx, connect.NewRequest(&playerv1.SetThemeRequest{Theme: "light"}))
	require.NoError(t, err)
	assert.Equal(t, "light", theme.Msg.Theme)

	share, err := client.Share(ctx, connect.NewRequest(&playerv1.ShareRequest{TrackId: "8"}))
	require.NoError(t, err)
	assert.Equal(t, "Check out Montero by Lil Nas X on SoundWave!", share.Msg.Text)
	assert.Equal(t, "Link copied to clipboard", share.Msg.Message)
}

func TestPlayerService_SubscribeNotifications(t *testing.T) {
	client, mgr := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.SubscribeNotifications(ctx, connect.NewRequest(&playerv1.Empty{}))
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Receive(), "initial state expected: %v", stream.Err())
	initial := stream.Msg()
	assert.Equal(t, playerv1.NotificationTypeInitialState, initial.Type)
	assert.Equal(t, "idle", initial.Status.State)

	// The subscription is registered right after the initial state is sent.
	require.Eventually(t, func() bool {
		return mgr.GetNotificationManager().SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	_, err = client.Play(ctx, connect.NewRequest(&playerv1.PlayRequest{TrackId: "5"}))
	require.NoError(t, err)

	require.True(t, stream.Receive(), "track started expected: %v", stream.Err())
	started := stream.Msg()
	assert.Equal(t, playerv1.NotificationTypeTrackStarted, started.Type)
	assert.Equal(t, "Save Your Tears", started.Status.Current.Title)
	assert.Greater(t, started.SequenceNo, initial.SequenceNo)
}
