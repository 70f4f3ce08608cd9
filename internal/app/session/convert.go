package session

import (
	playerv1 "github.com/osa030/soundwave/internal/api/playerv1"
	"github.com/osa030/soundwave/internal/app/playback"
	"github.com/osa030/soundwave/internal/domain/artist"
	"github.com/osa030/soundwave/internal/domain/track"
)

// BuildTrackInfo converts a track to its wire form.
func BuildTrackInfo(t track.Track) *playerv1.TrackInfo {
	return &playerv1.TrackInfo{
		TrackId:         t.ID,
		Title:           t.Title,
		Artist:          t.Artist,
		Album:           t.Album,
		CoverUrl:        t.CoverURL,
		DurationSeconds: int32(t.Duration),
		Explicit:        t.Explicit,
		Plays:           t.Plays,
		Genre:           t.Genre,
		ReleaseYear:     int32(t.ReleaseYear),
		Offline:         t.Offline,
	}
}

// BuildTrackInfos converts a track list. The result is never nil.
func BuildTrackInfos(tracks []track.Track) []*playerv1.TrackInfo {
	infos := make([]*playerv1.TrackInfo, len(tracks))
	for i, t := range tracks {
		infos[i] = BuildTrackInfo(t)
	}
	return infos
}

// BuildArtistInfo converts an artist profile.
func BuildArtistInfo(a artist.Artist) *playerv1.ArtistInfo {
	return &playerv1.ArtistInfo{
		Name:             a.Name,
		Bio:              a.Bio,
		MonthlyListeners: a.MonthlyListeners,
		Verified:         a.Verified,
		CoverUrl:         a.CoverURL,
	}
}

// BuildPlaybackStatus converts a snapshot taken under the given context.
func BuildPlaybackStatus(s playback.Snapshot, contextName string) *playerv1.PlaybackStatus {
	status := &playerv1.PlaybackStatus{
		State:           s.State.String(),
		Playing:         s.Playing,
		Queue:           BuildTrackInfos(s.Queue),
		Shuffle:         s.Shuffle,
		Repeat:          s.Repeat.String(),
		ElapsedSeconds:  int32(s.Elapsed),
		DurationSeconds: int32(s.Duration()),
		Seeking:         s.Seeking,
		Context:         contextName,
		Volume:          int32(s.Volume),
		Muted:           s.Muted,
		Liked:           s.Liked,
	}
	if s.Current != nil {
		status.Current = BuildTrackInfo(*s.Current)
	}
	return status
}

func notificationType(t playback.EventType) playerv1.NotificationType {
	switch t {
	case playback.EventTrackStarted:
		return playerv1.NotificationTypeTrackStarted
	case playback.EventTrackEnded:
		return playerv1.NotificationTypeTrackEnded
	case playback.EventStateChanged:
		return playerv1.NotificationTypeStateChanged
	case playback.EventProgress:
		return playerv1.NotificationTypeProgress
	case playback.EventQueueChanged:
		return playerv1.NotificationTypeQueueChanged
	default:
		return playerv1.NotificationTypeModeChanged
	}
}
