package catalog

import (
	"context"

	"github.com/osa030/soundwave/internal/domain/artist"
	"github.com/osa030/soundwave/internal/domain/track"
)

// BuiltinProvider serves the static SoundWave demo catalog.
type BuiltinProvider struct{}

// NewBuiltinProvider creates a new BuiltinProvider.
func NewBuiltinProvider() *BuiltinProvider {
	return &BuiltinProvider{}
}

// Load returns copies of the demo records.
func (p *BuiltinProvider) Load(ctx context.Context) (Contents, error) {
	tracks := make([]track.Track, len(builtinTracks))
	copy(tracks, builtinTracks)
	artists := make([]artist.Artist, len(builtinArtists))
	copy(artists, builtinArtists)
	return Contents{Tracks: tracks, Artists: artists}, nil
}

// Name returns the provider name.
func (p *BuiltinProvider) Name() string {
	return "builtin"
}

var builtinTracks = []track.Track{
	{
		ID:          "1",
		Title:       "Midnight City",
		Artist:      "M83",
		Album:       "Hurry Up, We're Dreaming",
		CoverURL:    "https://picsum.photos/seed/m83/300/300",
		Duration:    243,
		Genre:       "Synthpop",
		ReleaseYear: 2011,
		Plays:       4500000,
	},
	{
		ID:          "2",
		Title:       "Blinding Lights",
		Artist:      "The Weeknd",
		Album:       "After Hours",
		CoverURL:    "https://picsum.photos/seed/weeknd/300/300",
		Duration:    200,
		Genre:       "Synthwave",
		ReleaseYear: 2019,
		Plays:       8900000,
	},
	{
		ID:          "3",
		Title:       "Levitating",
		Artist:      "Dua Lipa",
		Album:       "Future Nostalgia",
		CoverURL:    "https://picsum.photos/seed/dua/300/300",
		Duration:    203,
		Genre:       "Pop",
		ReleaseYear: 2020,
		Plays:       6200000,
	},
	{
		ID:          "4",
		Title:       "Peaches",
		Artist:      "Justin Bieber",
		Album:       "Justice",
		CoverURL:    "https://picsum.photos/seed/bieber/300/300",
		Duration:    198,
		Genre:       "R&B",
		ReleaseYear: 2021,
		Explicit:    true,
		Plays:       5100000,
	},
	{
		ID:          "5",
		Title:       "Save Your Tears",
		Artist:      "The Weeknd",
		Album:       "After Hours",
		CoverURL:    "https://picsum.photos/seed/tears/300/300",
		Duration:    215,
		Genre:       "Synthpop",
		ReleaseYear: 2020,
		Explicit:    true,
		Plays:       7800000,
	},
	{
		ID:          "6",
		Title:       "Good 4 U",
		Artist:      "Olivia Rodrigo",
		Album:       "Sour",
		CoverURL:    "https://picsum.photos/seed/olivia/300/300",
		Duration:    178,
		Genre:       "Pop Punk",
		ReleaseYear: 2021,
		Explicit:    true,
		Plays:       6500000,
	},
	{
		ID:          "7",
		Title:       "Kiss Me More",
		Artist:      "Doja Cat",
		Album:       "Planet Her",
		CoverURL:    "https://picsum.photos/seed/doja/300/300",
		Duration:    208,
		Genre:       "Disco Pop",
		ReleaseYear: 2021,
		Explicit:    true,
		Plays:       5900000,
	},
	{
		ID:          "8",
		Title:       "Montero",
		Artist:      "Lil Nas X",
		Album:       "Montero",
		CoverURL:    "https://picsum.photos/seed/nas/300/300",
		Duration:    137,
		Genre:       "Hip Hop",
		ReleaseYear: 2021,
		Explicit:    true,
		Plays:       7100000,
	},
}

var builtinArtists = []artist.Artist{
	{
		Name:             "M83",
		Bio:              "M83 is a French electronic music project formed in Antibes, Alpes-Maritimes in 1999 and currently based in Los Angeles.",
		MonthlyListeners: 12000000,
		Verified:         true,
		CoverURL:         "https://picsum.photos/seed/m83-header/800/400",
	},
	{
		Name:             "The Weeknd",
		Bio:              "Abel Makkonen Tesfaye, known professionally as The Weeknd, is a Canadian singer, songwriter, and record producer. Known for his sonic versatility and dark lyricism.",
		MonthlyListeners: 105000000,
		Verified:         true,
		CoverURL:         "https://picsum.photos/seed/weeknd-header/800/400",
	},
	{
		Name:             "Dua Lipa",
		Bio:              "Dua Lipa is an English and Albanian singer and songwriter. Her mezzo-soprano vocal range and disco-influenced production have received critical acclaim.",
		MonthlyListeners: 75000000,
		Verified:         true,
		CoverURL:         "https://picsum.photos/seed/dua-header/800/400",
	},
	{
		Name:             "Justin Bieber",
		Bio:              "Justin Drew Bieber is a Canadian singer. He is recognized for his genre-melding musicianship and has played an influential role in modern-day popular music.",
		MonthlyListeners: 80000000,
		Verified:         true,
		CoverURL:         "https://picsum.photos/seed/bieber-header/800/400",
	},
}
