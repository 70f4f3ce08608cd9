package catalog

import (
	"context"
	"math/rand"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/soundwave/internal/domain/artist"
	"github.com/osa030/soundwave/internal/domain/track"
)

const defaultRadioSize = 5

// Config holds catalog configuration.
type Config struct {
	RadioSize int // Number of tracks in a radio selection
}

// Catalog is the read-only, ordered set of tracks and artist profiles.
type Catalog struct {
	tracks  []track.Track
	byID    map[string]int
	artists map[string]artist.Artist

	radioSize int
	shuffle   func(n int, swap func(i, j int))
}

// New loads the provider and builds the catalog. Tracks that fail
// validation are skipped.
func New(ctx context.Context, provider Provider, cfg Config) (*Catalog, error) {
	contents, err := provider.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	radioSize := cfg.RadioSize
	if radioSize <= 0 {
		radioSize = defaultRadioSize
	}

	c := &Catalog{
		tracks:    make([]track.Track, 0, len(contents.Tracks)),
		byID:      make(map[string]int, len(contents.Tracks)),
		artists:   make(map[string]artist.Artist, len(contents.Artists)),
		radioSize: radioSize,
		shuffle:   rand.Shuffle,
	}

	for _, t := range contents.Tracks {
		if err := t.Validate(); err != nil {
			zlog.Warn().Msgf("invalid catalog track skipped: track_id=%s error=%v", t.ID, err)
			continue
		}
		if _, dup := c.byID[t.ID]; dup {
			zlog.Warn().Msgf("duplicate catalog track skipped: track_id=%s", t.ID)
			continue
		}
		c.byID[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}

	for _, a := range contents.Artists {
		if a.Name == "" {
			continue
		}
		c.artists[a.Name] = a
	}

	zlog.Info().Msgf("catalog loaded: tracks=%d artists=%d", len(c.tracks), len(c.artists))
	return c, nil
}

// All returns every track in catalog order.
func (c *Catalog) All() []track.Track {
	result := make([]track.Track, len(c.tracks))
	copy(result, c.tracks)
	return result
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Get returns the track with the given ID.
func (c *Catalog) Get(id string) (track.Track, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return track.Track{}, false
	}
	return c.tracks[idx], true
}

// ByArtist returns the artist's tracks in catalog order. When the artist has
// no tracks the whole catalog is returned, as the artist page does.
func (c *Catalog) ByArtist(name string) []track.Track {
	var result []track.Track
	for _, t := range c.tracks {
		if t.Artist == name {
			result = append(result, t)
		}
	}
	if len(result) == 0 {
		return c.All()
	}
	return result
}

// Artist returns the artist profile, or the default profile.
func (c *Catalog) Artist(name string) artist.Artist {
	if a, ok := c.artists[name]; ok {
		return a
	}
	return artist.Default()
}

// Radio returns a random selection of catalog tracks for a radio started
// from seedArtist.
func (c *Catalog) Radio(seedArtist string) []track.Track {
	shuffled := c.All()
	c.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := c.radioSize
	if n > len(shuffled) {
		n = len(shuffled)
	}
	zlog.Debug().Msgf("radio selection: seed_artist=%s tracks=%d", seedArtist, n)
	return shuffled[:n]
}
