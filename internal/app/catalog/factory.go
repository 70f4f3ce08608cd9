package catalog

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/soundwave/internal/infra/config"
)

// NewProviderChainFromConfig creates a provider chain from configuration.
func NewProviderChainFromConfig(cfg config.CatalogConfig) (*ProviderChain, error) {
	if len(cfg.Sources) == 0 {
		return nil, errors.New("no catalog sources configured")
	}

	var providers []ProviderWithMetadata

	for i, scfg := range cfg.Sources {
		var provider Provider
		var err error
		zlog.Debug().Msgf("creating catalog provider: index=%d type=%s settings=%+v", i+1, scfg.Type, scfg.Settings)
		switch scfg.Type {
		case "builtin":
			provider = NewBuiltinProvider()

		case "file":
			provider, err = NewFileProvider(scfg.Settings)

		default:
			return nil, errors.Newf("unsupported catalog source type: %s (source index %d)", scfg.Type, i)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to create catalog source (index %d, type %s)", i, scfg.Type)
		}

		displayName := scfg.DisplayName
		if displayName == "" {
			displayName = scfg.Type
		}
		providers = append(providers, ProviderWithMetadata{
			Provider:    provider,
			DisplayName: displayName,
		})

		zlog.Info().Msgf("registered catalog provider: index=%d type=%s display_name=%s", i+1, scfg.Type, displayName)
	}

	return NewProviderChain(providers), nil
}
