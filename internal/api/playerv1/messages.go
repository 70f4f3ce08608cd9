// Package playerv1 defines the PlayerService wire messages and the Connect
// handler and client for them. Messages are plain structs carried as JSON.
package playerv1

// NotificationType identifies what changed in a Notification.
type NotificationType string

const (
	NotificationTypeInitialState NotificationType = "initial_state"
	NotificationTypeTrackStarted NotificationType = "track_started"
	NotificationTypeTrackEnded   NotificationType = "track_ended"
	NotificationTypeStateChanged NotificationType = "state_changed"
	NotificationTypeProgress     NotificationType = "progress"
	NotificationTypeQueueChanged NotificationType = "queue_changed"
	NotificationTypeModeChanged  NotificationType = "mode_changed"
)

// TrackInfo describes a track.
type TrackInfo struct {
	TrackId         string `json:"trackId"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Album           string `json:"album,omitempty"`
	CoverUrl        string `json:"coverUrl,omitempty"`
	DurationSeconds int32  `json:"durationSeconds"`
	Explicit        bool   `json:"explicit,omitempty"`
	Plays           int64  `json:"plays,omitempty"`
	Genre           string `json:"genre,omitempty"`
	ReleaseYear     int32  `json:"releaseYear,omitempty"`
	Offline         bool   `json:"offline,omitempty"`
}

// ArtistInfo describes an artist profile.
type ArtistInfo struct {
	Name             string `json:"name"`
	Bio              string `json:"bio"`
	MonthlyListeners int64  `json:"monthlyListeners"`
	Verified         bool   `json:"verified"`
	CoverUrl         string `json:"coverUrl,omitempty"`
}

// PlaybackStatus is a point-in-time view of the player.
type PlaybackStatus struct {
	State           string       `json:"state"`
	Current         *TrackInfo   `json:"current,omitempty"`
	Playing         bool         `json:"playing"`
	Queue           []*TrackInfo `json:"queue"`
	Shuffle         bool         `json:"shuffle"`
	Repeat          string       `json:"repeat"`
	ElapsedSeconds  int32        `json:"elapsedSeconds"`
	DurationSeconds int32        `json:"durationSeconds"`
	Seeking         bool         `json:"seeking,omitempty"`
	Context         string       `json:"context,omitempty"`
	Volume          int32        `json:"volume"`
	Muted           bool         `json:"muted,omitempty"`
	Liked           bool         `json:"liked,omitempty"`
}

// Notification is pushed to subscribers on every player change.
type Notification struct {
	Type       NotificationType `json:"type"`
	SequenceNo uint64           `json:"sequenceNo"`
	Status     *PlaybackStatus  `json:"status"`
}

type Empty struct{}

type StatusResponse struct {
	Status *PlaybackStatus `json:"status"`
}

type PlayRequest struct {
	TrackId string `json:"trackId"`
	Context string `json:"context,omitempty"`
}

type SeekRequest struct {
	Seconds int32 `json:"seconds"`
}

type RemoveFromQueueRequest struct {
	Index int32 `json:"index"`
}

type SetShuffleRequest struct {
	Enabled bool `json:"enabled"`
}

type SetRepeatRequest struct {
	Mode string `json:"mode"`
}

type SetVolumeRequest struct {
	Volume int32 `json:"volume"`
}

type ListTracksRequest struct {
	Context string `json:"context,omitempty"`
}

type ListTracksResponse struct {
	Context string       `json:"context"`
	Tracks  []*TrackInfo `json:"tracks"`
}

type StartRadioRequest struct {
	TrackId string `json:"trackId"`
}

type StartRadioResponse struct {
	Message string          `json:"message"`
	Tracks  []*TrackInfo    `json:"tracks"`
	Status  *PlaybackStatus `json:"status"`
}

type GetArtistRequest struct {
	Name string `json:"name"`
}

type GetArtistResponse struct {
	Artist *ArtistInfo  `json:"artist"`
	Tracks []*TrackInfo `json:"tracks"`
}

type DownloadRequest struct {
	TrackId string `json:"trackId"`
}

type DownloadResponse struct {
	Added   bool   `json:"added"`
	Message string `json:"message"`
}

type SetThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type ShareRequest struct {
	TrackId string `json:"trackId"`
}

type ShareResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}
