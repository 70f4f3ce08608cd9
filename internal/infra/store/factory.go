package store

import (
	"context"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/soundwave/internal/infra/config"
)

// NewFromConfig creates the store selected by configuration.
func NewFromConfig(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Type {
	case "memory", "":
		zlog.Info().Msg("using in-memory store")
		return NewMemoryStore(), nil

	case "redis":
		rcfg, err := DecodeRedisConfig(cfg.Settings)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(ctx, rcfg)

	default:
		return nil, errors.Newf("unsupported storage type: %s", cfg.Type)
	}
}
