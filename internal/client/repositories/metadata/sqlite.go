package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/useraccount/internal/dbx"
)

// now is a test seam for the UpdatedAt stamp.
var now = time.Now

const (
	queryGet    = `SELECT value, updated_at FROM metadata WHERE key = ?`
	queryPut    = `INSERT INTO metadata (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	queryDelete = `DELETE FROM metadata WHERE key = ?`
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository binds the repository to db, which may be a *sql.DB or
// a *sql.Tx handed out by dbx.WithTx.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (Record, bool, error) {
	var (
		value   []byte
		updated int64
	)
	err := r.db.QueryRowContext(ctx, queryGet, key).Scan(&value, &updated)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Record{}, false, nil
	case err != nil:
		return Record{}, false, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return Record{Key: key, Value: value, UpdatedAt: time.UnixMilli(updated).UTC()}, true, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, queryPut, key, value, now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to put metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) (bool, error) {
	res, err := r.db.ExecContext(ctx, queryDelete, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return n > 0, nil
}
