// Package catalog provides the track catalog and the sources it is built from.
package catalog

import (
	"context"

	"github.com/osa030/soundwave/internal/domain/artist"
	"github.com/osa030/soundwave/internal/domain/track"
)

// Contents is what a provider contributes to the catalog.
type Contents struct {
	Tracks  []track.Track   `yaml:"tracks"`
	Artists []artist.Artist `yaml:"artists"`
}

// Provider is the interface for catalog sources.
type Provider interface {
	// Load returns the provider's tracks (in catalog order) and artist profiles.
	Load(ctx context.Context) (Contents, error)

	// Name returns the provider name (used in config).
	Name() string
}
