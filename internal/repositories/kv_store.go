package repositories

import "context"

// KVStore is the persistence substrate behind the history store: values are
// written by exact key and read back by key prefix.
type KVStore interface {
	Set(ctx context.Context, key string, value []byte) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
