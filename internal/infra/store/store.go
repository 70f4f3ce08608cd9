// Package store provides the small key-value persistence used for the
// user's library: downloaded tracks and the selected theme.
package store

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed byte store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
