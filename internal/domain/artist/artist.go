// Package artist provides the Artist profile entity.
package artist

// Artist represents an artist profile shown on the artist page.
type Artist struct {
	Name             string `json:"name" yaml:"name" validate:"required"`
	Bio              string `json:"bio" yaml:"bio"`
	MonthlyListeners int64  `json:"monthlyListeners" yaml:"monthly_listeners" validate:"gte=0"`
	Verified         bool   `json:"isVerified" yaml:"verified"`
	CoverURL         string `json:"coverUrl" yaml:"cover_url"`
}

// Default returns the profile used for artists without a bio.
func Default() Artist {
	return Artist{
		Name:             "Unknown Artist",
		Bio:              "Artist biography not available. Listen to their latest tracks and discover more music on SoundWave.",
		MonthlyListeners: 1000,
		Verified:         false,
		CoverURL:         "https://picsum.photos/seed/default/800/400",
	}
}
