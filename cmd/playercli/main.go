// Package main provides the player CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
	"github.com/osa030/soundwave/internal/domain/track"
)

var (
	app    = kingpin.New("soundwave-cli", "SoundWave player client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").Envar("SOUNDWAVE_SERVER").String()

	playCmd     = app.Command("play", "Play a track")
	playTrackID = playCmd.Arg("track-id", "Track ID").Required().String()
	playContext = playCmd.Flag("context", "Context to play from (home, artist:<name>, radio, downloads)").Short('c').Default("home").String()

	toggleCmd = app.Command("toggle", "Toggle play/pause")
	nextCmd   = app.Command("next", "Skip to the next track")
	prevCmd   = app.Command("prev", "Go back to the previous track")

	seekCmd     = app.Command("seek", "Seek within the current track")
	seekSeconds = seekCmd.Arg("seconds", "Target position in seconds").Required().Int32()

	queueCmd = app.Command("queue", "Show the upcoming queue")

	removeCmd   = app.Command("remove", "Remove a queue entry")
	removeIndex = removeCmd.Arg("index", "Zero-based queue index").Required().Int32()

	shuffleCmd     = app.Command("shuffle", "Set shuffle")
	shuffleEnabled = shuffleCmd.Arg("state", "on or off").Required().Enum("on", "off")

	repeatCmd  = app.Command("repeat", "Set the repeat mode, or cycle it when no mode is given")
	repeatMode = repeatCmd.Arg("mode", "none, all or one").Enum("none", "all", "one")

	volumeCmd   = app.Command("volume", "Set the volume level")
	volumeLevel = volumeCmd.Arg("level", "0-100").Required().Int32()

	muteCmd = app.Command("mute", "Toggle mute")
	likeCmd = app.Command("like", "Toggle like on the current track")

	statusCmd = app.Command("status", "Show the player status")

	tracksCmd     = app.Command("tracks", "List tracks")
	tracksContext = tracksCmd.Flag("context", "Context to list").Short('c').Default("home").String()

	radioCmd     = app.Command("radio", "Start a radio from a track")
	radioTrackID = radioCmd.Arg("track-id", "Seed track ID").Required().String()

	artistCmd  = app.Command("artist", "Show an artist profile")
	artistName = artistCmd.Arg("name", "Artist name").Required().String()

	downloadCmd     = app.Command("download", "Download a track")
	downloadTrackID = downloadCmd.Arg("track-id", "Track ID").Required().String()

	downloadsCmd = app.Command("downloads", "List downloaded tracks")

	themeCmd  = app.Command("theme", "Show or set the theme")
	themeName = themeCmd.Arg("name", "dark, light or ocean").String()

	shareCmd     = app.Command("share", "Print the share text of a track")
	shareTrackID = shareCmd.Arg("track-id", "Track ID").Required().String()

	subscribeCmd = app.Command("subscribe", "Subscribe to notifications")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	client := playerv1.NewPlayerServiceClient(http.DefaultClient, *server)
	ctx := context.Background()
	empty := func() *connect.Request[playerv1.Empty] { return connect.NewRequest(&playerv1.Empty{}) }

	switch command {
	case playCmd.FullCommand():
		printStatus(client.Play(ctx, connect.NewRequest(&playerv1.PlayRequest{TrackId: *playTrackID, Context: *playContext})))
	case toggleCmd.FullCommand():
		printStatus(client.TogglePlayPause(ctx, empty()))
	case nextCmd.FullCommand():
		printStatus(client.Next(ctx, empty()))
	case prevCmd.FullCommand():
		printStatus(client.Previous(ctx, empty()))
	case seekCmd.FullCommand():
		printStatus(client.Seek(ctx, connect.NewRequest(&playerv1.SeekRequest{Seconds: *seekSeconds})))
	case queueCmd.FullCommand():
		showQueue(ctx, client)
	case removeCmd.FullCommand():
		printStatus(client.RemoveFromQueue(ctx, connect.NewRequest(&playerv1.RemoveFromQueueRequest{Index: *removeIndex})))
	case shuffleCmd.FullCommand():
		printStatus(client.SetShuffle(ctx, connect.NewRequest(&playerv1.SetShuffleRequest{Enabled: *shuffleEnabled == "on"})))
	case repeatCmd.FullCommand():
		if *repeatMode == "" {
			printStatus(client.CycleRepeat(ctx, empty()))
		} else {
			printStatus(client.SetRepeat(ctx, connect.NewRequest(&playerv1.SetRepeatRequest{Mode: *repeatMode})))
		}
	case volumeCmd.FullCommand():
		printStatus(client.SetVolume(ctx, connect.NewRequest(&playerv1.SetVolumeRequest{Volume: *volumeLevel})))
	case muteCmd.FullCommand():
		printStatus(client.ToggleMute(ctx, empty()))
	case likeCmd.FullCommand():
		printStatus(client.ToggleLike(ctx, empty()))
	case statusCmd.FullCommand():
		printStatus(client.GetStatus(ctx, empty()))
	case tracksCmd.FullCommand():
		listTracks(ctx, client, *tracksContext)
	case radioCmd.FullCommand():
		startRadio(ctx, client, *radioTrackID)
	case artistCmd.FullCommand():
		showArtist(ctx, client, *artistName)
	case downloadCmd.FullCommand():
		download(ctx, client, *downloadTrackID)
	case downloadsCmd.FullCommand():
		resp, err := client.ListDownloads(ctx, empty())
		exitOnError(err)
		printTracks("Downloads", resp.Msg.Tracks)
	case themeCmd.FullCommand():
		theme(ctx, client, *themeName)
	case shareCmd.FullCommand():
		resp, err := client.Share(ctx, connect.NewRequest(&playerv1.ShareRequest{TrackId: *shareTrackID}))
		exitOnError(err)
		fmt.Println(resp.Msg.Text)
		fmt.Println(resp.Msg.Message)
	case subscribeCmd.FullCommand():
		subscribe(ctx, client)
	}
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Printf("Error [%s]: %v\n", connect.CodeOf(err), err)
	os.Exit(1)
}

func printStatus(resp *connect.Response[playerv1.StatusResponse], err error) {
	exitOnError(err)
	fmt.Print(formatStatus(resp.Msg.Status))
}

func formatTrack(t *playerv1.TrackInfo) string {
	offline := ""
	if t.Offline {
		offline = " (offline)"
	}
	return fmt.Sprintf("%s - %s [%s]%s", t.Title, t.Artist, track.FormatSeconds(int(t.DurationSeconds)), offline)
}

func formatState(state string) string {
	switch state {
	case "playing":
		return "▶️  Playing"
	case "paused":
		return "⏸  Paused"
	case "idle":
		return "⏹  Idle"
	default:
		return "❓ Unknown"
	}
}

func formatStatus(s *playerv1.PlaybackStatus) string {
	if s == nil {
		return "No status\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s\n", formatState(s.State))
	if s.Current != nil {
		liked := ""
		if s.Liked {
			liked = " ♥"
		}
		fmt.Fprintf(&b, "Now playing: %s%s\n", formatTrack(s.Current), liked)
		fmt.Fprintf(&b, "Position: %s / %s\n",
			track.FormatSeconds(int(s.ElapsedSeconds)), track.FormatSeconds(int(s.DurationSeconds)))
	}
	shuffle := "off"
	if s.Shuffle {
		shuffle = "on"
	}
	fmt.Fprintf(&b, "Shuffle: %s  Repeat: %s  Context: %s\n", shuffle, s.Repeat, s.Context)
	volume := fmt.Sprintf("%d%%", s.Volume)
	if s.Muted {
		volume += " (muted)"
	}
	fmt.Fprintf(&b, "Volume: %s\n", volume)
	fmt.Fprintf(&b, "Up next: %d tracks\n", len(s.Queue))
	return b.String()
}

func printTracks(title string, tracks []*playerv1.TrackInfo) {
	fmt.Printf("%s (%d tracks):\n", title, len(tracks))
	for i, t := range tracks {
		fmt.Printf("  %2d. [%s] %s\n", i, t.TrackId, formatTrack(t))
	}
}

func showQueue(ctx context.Context, client *playerv1.PlayerServiceClient) {
	resp, err := client.GetStatus(ctx, connect.NewRequest(&playerv1.Empty{}))
	exitOnError(err)
	printTracks("Queue", resp.Msg.Status.Queue)
}

func listTracks(ctx context.Context, client *playerv1.PlayerServiceClient, contextName string) {
	resp, err := client.ListTracks(ctx, connect.NewRequest(&playerv1.ListTracksRequest{Context: contextName}))
	exitOnError(err)
	printTracks(resp.Msg.Context, resp.Msg.Tracks)
}

func startRadio(ctx context.Context, client *playerv1.PlayerServiceClient, trackID string) {
	resp, err := client.StartRadio(ctx, connect.NewRequest(&playerv1.StartRadioRequest{TrackId: trackID}))
	exitOnError(err)
	fmt.Println(resp.Msg.Message)
	printTracks("Radio", resp.Msg.Tracks)
}

func showArtist(ctx context.Context, client *playerv1.PlayerServiceClient, name string) {
	resp, err := client.GetArtist(ctx, connect.NewRequest(&playerv1.GetArtistRequest{Name: name}))
	exitOnError(err)

	a := resp.Msg.Artist
	verified := ""
	if a.Verified {
		verified = " ✔"
	}
	fmt.Printf("%s%s\n", a.Name, verified)
	fmt.Printf("  Monthly listeners: %d\n", a.MonthlyListeners)
	fmt.Printf("  %s\n\n", a.Bio)
	printTracks("Popular", resp.Msg.Tracks)
}

func download(ctx context.Context, client *playerv1.PlayerServiceClient, trackID string) {
	resp, err := client.Download(ctx, connect.NewRequest(&playerv1.DownloadRequest{TrackId: trackID}))
	exitOnError(err)
	fmt.Println(resp.Msg.Message)
}

func theme(ctx context.Context, client *playerv1.PlayerServiceClient, name string) {
	var (
		resp *connect.Response[playerv1.ThemeResponse]
		err  error
	)
	if name == "" {
		resp, err = client.GetTheme(ctx, connect.NewRequest(&playerv1.Empty{}))
	} else {
		resp, err = client.SetTheme(ctx, connect.NewRequest(&playerv1.SetThemeRequest{Theme: name}))
	}
	exitOnError(err)
	fmt.Printf("Theme: %s\n", resp.Msg.Theme)
}

func subscribe(ctx context.Context, client *playerv1.PlayerServiceClient) {
	stream, err := client.SubscribeNotifications(ctx, connect.NewRequest(&playerv1.Empty{}))
	exitOnError(err)

	fmt.Println("Subscribed to notifications. Press Ctrl+C to exit.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nUnsubscribing...")
		os.Exit(0)
	}()

	for stream.Receive() {
		printNotification(stream.Msg())
	}

	if err := stream.Err(); err != nil {
		fmt.Printf("Stream error: %v\n", err)
	}
}

func printNotification(n *playerv1.Notification) {
	// Progress arrives every second; keep it on one line.
	if n.Type == playerv1.NotificationTypeProgress && n.Status != nil {
		fmt.Printf("\r[Sequence: %d] %s / %s", n.SequenceNo,
			track.FormatSeconds(int(n.Status.ElapsedSeconds)), track.FormatSeconds(int(n.Status.DurationSeconds)))
		return
	}

	fmt.Printf("\n[Sequence: %d] === %s ===\n", n.SequenceNo, strings.ToUpper(strings.ReplaceAll(string(n.Type), "_", " ")))
	fmt.Print(formatStatus(n.Status))
}
