// Package session keeps the single active-user record in local session
// storage.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/useraccount/internal/client/models"
	"github.com/dmitrijs2005/useraccount/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/useraccount/internal/dbx"
	"github.com/dmitrijs2005/useraccount/internal/logging"
)

// Key is the storage key of the session record.
const Key = "user"

// Store reads and writes the active session.
//
// GetActive never fails: storage errors and undecodable records are logged
// and reported as "no session".
type Store interface {
	GetActive(ctx context.Context) (models.Session, bool)
	SetActive(ctx context.Context, s models.Session) error
	ClearActive(ctx context.Context) error
}

type store struct {
	db  *sql.DB
	log logging.Logger
}

// NewStore returns a Store persisting into the metadata table of db.
func NewStore(db *sql.DB, log logging.Logger) Store {
	return &store{db: db, log: log.With("component", "session")}
}

func (s *store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *store) GetActive(ctx context.Context) (models.Session, bool) {
	rec, found, err := s.repo(s.db).Get(ctx, Key)
	if err != nil {
		s.log.Warn(ctx, "session read failed", "error", err)
		return models.Session{}, false
	}
	if !found {
		return models.Session{}, false
	}

	var sess models.Session
	if err := json.Unmarshal(rec.Value, &sess); err != nil {
		s.log.Warn(ctx, "stored session is malformed", "error", err)
		return models.Session{}, false
	}
	if !sess.Active {
		return models.Session{}, false
	}
	return sess, true
}

// SetActive replaces whatever is stored with sess, marked active. The old
// record is removed and the new one written in one transaction.
func (s *store) SetActive(ctx context.Context, sess models.Session) error {
	sess.Active = true
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if _, err := repo.Delete(ctx, Key); err != nil {
			return err
		}
		return repo.Put(ctx, Key, payload)
	})
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	s.log.Info(ctx, "session stored", "user", sess.Username)
	return nil
}

func (s *store) ClearActive(ctx context.Context) error {
	removed, err := s.repo(s.db).Delete(ctx, Key)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if removed {
		s.log.Info(ctx, "session cleared")
	}
	return nil
}
