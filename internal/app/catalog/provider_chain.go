package catalog

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/soundwave/internal/domain/artist"
	"github.com/osa030/soundwave/internal/domain/track"
)

// ProviderWithMetadata wraps a provider with its metadata.
type ProviderWithMetadata struct {
	Provider    Provider
	DisplayName string
}

// ProviderChain merges the contents of several providers in order.
type ProviderChain struct {
	providers []ProviderWithMetadata
}

// NewProviderChain creates a new provider chain.
func NewProviderChain(providers []ProviderWithMetadata) *ProviderChain {
	return &ProviderChain{
		providers: providers,
	}
}

// Load loads every provider and merges the results. A track or artist that
// an earlier provider already supplied is skipped. Failing providers are
// skipped; it is an error only when every provider fails.
func (c *ProviderChain) Load(ctx context.Context) (Contents, error) {
	var merged Contents
	seenTracks := make(map[string]bool)
	seenArtists := make(map[string]bool)
	failures := 0

	for i, pm := range c.providers {
		zlog.Debug().Msgf("loading catalog provider: index=%d total=%d name=%s provider_type=%s",
			i+1, len(c.providers), pm.DisplayName, pm.Provider.Name())

		contents, err := pm.Provider.Load(ctx)
		if err != nil {
			failures++
			zlog.Warn().Msgf("catalog provider failed, skipping: provider=%s error=%v", pm.DisplayName, err)
			continue
		}

		added := 0
		for _, t := range contents.Tracks {
			if seenTracks[t.ID] {
				zlog.Debug().Msgf("duplicate track skipped: provider=%s track_id=%s", pm.DisplayName, t.ID)
				continue
			}
			seenTracks[t.ID] = true
			merged.Tracks = append(merged.Tracks, t)
			added++
		}
		for _, a := range contents.Artists {
			if seenArtists[a.Name] {
				continue
			}
			seenArtists[a.Name] = true
			merged.Artists = append(merged.Artists, a)
		}

		zlog.Info().Msgf("catalog provider loaded: provider=%s tracks=%d total_so_far=%d",
			pm.DisplayName, added, len(merged.Tracks))
	}

	if len(c.providers) > 0 && failures == len(c.providers) {
		return Contents{}, errors.New("all catalog providers failed")
	}

	if merged.Tracks == nil {
		merged.Tracks = []track.Track{}
	}
	if merged.Artists == nil {
		merged.Artists = []artist.Artist{}
	}
	return merged, nil
}

// Name returns the chain name.
func (c *ProviderChain) Name() string {
	return "provider_chain"
}
