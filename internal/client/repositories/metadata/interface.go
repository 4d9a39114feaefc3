// Package metadata is a small key/value repository over the local SQLite
// database. The session store keeps its single record here.
package metadata

import (
	"context"
	"time"
)

// Record is one stored value.
type Record struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// Repository stores opaque values by key.
//
//   - Get reports found=false for an absent key; that is not an error.
//   - Put inserts or overwrites and stamps UpdatedAt.
//   - Delete reports whether a row was removed.
type Repository interface {
	Get(ctx context.Context, key string) (rec Record, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)
}
