package session

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/storage"
	"github.com/dmitrijs2005/useraccount/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (Store, *sql.DB, *bytes.Buffer) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	return NewStore(db, log), db, &buf
}

func putRaw(t *testing.T, db *sql.DB, v string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key, value, updated_at) VALUES (?, ?, 0)`, Key, []byte(v))
	require.NoError(t, err)
}

func TestSetActive_ThenGetActive(t *testing.T) {
	s, _, _ := setup(t)
	ctx := context.Background()

	in := models.Session{ID: "1", Username: "joe", Email: "j@x.com"}
	require.NoError(t, s.SetActive(ctx, in))

	got, ok := s.GetActive(ctx)
	require.True(t, ok)
	assert.Equal(t, models.Session{ID: "1", Username: "joe", Email: "j@x.com", Active: true}, got)
}

func TestSetActive_ReplacesPrevious(t *testing.T) {
	s, db, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, s.SetActive(ctx, models.Session{ID: "1", Username: "joe", Email: "old@x.com"}))
	require.NoError(t, s.SetActive(ctx, models.Session{ID: "1", Username: "joe", Email: "new@x.com"}))

	got, ok := s.GetActive(ctx)
	require.True(t, ok)
	assert.Equal(t, "new@x.com", got.Email)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM metadata`).Scan(&n))
	assert.Equal(t, 1, n, "at most one session record")
}

func TestClearActive(t *testing.T) {
	s, _, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, s.SetActive(ctx, models.Session{ID: "1", Username: "joe"}))
	require.NoError(t, s.ClearActive(ctx))

	_, ok := s.GetActive(ctx)
	assert.False(t, ok)

	// idempotent
	require.NoError(t, s.ClearActive(ctx))
}

func TestGetActive_TreatedAsAbsent(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		wantLog string
	}{
		{name: "nothing stored"},
		{name: "inactive record", stored: `{"id":1,"username":"joe","email":"j@x.com","active":false}`},
		{name: "missing active flag", stored: `{"id":1,"username":"joe"}`},
		{name: "malformed json", stored: `{"id":1,`, wantLog: "stored session is malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, db, logs := setup(t)
			if tt.stored != "" {
				putRaw(t, db, tt.stored)
			}

			got, ok := s.GetActive(context.Background())
			assert.False(t, ok)
			assert.Equal(t, models.Session{}, got)
			if tt.wantLog != "" {
				assert.Contains(t, logs.String(), tt.wantLog)
			}
		})
	}
}

func TestGetActive_StorageErrorIsAbsent(t *testing.T) {
	s, db, logs := setup(t)
	require.NoError(t, db.Close())

	_, ok := s.GetActive(context.Background())
	assert.False(t, ok)
	assert.Contains(t, logs.String(), "session read failed")
}

func TestSetActive_StorageError(t *testing.T) {
	s, db, _ := setup(t)
	require.NoError(t, db.Close())

	err := s.SetActive(context.Background(), models.Session{ID: "1"})
	require.ErrorContains(t, err, "store session")
}
