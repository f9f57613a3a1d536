// Package session persists the client's session state between runs.
//
// The browser build of this application keeps exactly two local-storage
// keys: the auth token and the serialized current-user record. This store
// mirrors that contract on top of a local SQLite key/value table, surviving
// restarts until an explicit logout clears both keys.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
	"github.com/dmitrijs2005/scanmark/internal/client/session/migrations"
)

const (
	keyAuthToken   = "auth_token"
	keyCurrentUser = "current_user"
)

// Store defines persistence for the session's two local-storage keys.
type Store interface {
	Save(ctx context.Context, s *models.Session) error
	// Load returns the persisted session, or nil if none is stored.
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

// SQLiteStore is the concrete Store backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the store at dsn and migrates its schema.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-open database. The schema must exist.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set local_storage[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get local_storage[%s]: %w", key, err)
	}
	return value, nil
}

// Save persists both keys in one transaction so a crash can never leave a
// token without its user record.
func (s *SQLiteStore) Save(ctx context.Context, sess *models.Session) error {
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, kv := range []struct {
		key   string
		value []byte
	}{
		{keyAuthToken, []byte(sess.Token)},
		{keyCurrentUser, userData},
	} {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO local_storage (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, kv.key, kv.value); err != nil {
			return fmt.Errorf("failed to set local_storage[%s]: %w", kv.key, err)
		}
	}

	return tx.Commit()
}

// Load reads both keys back. A missing token means no session; a token with
// a missing or corrupt user record is still a usable session with a zero
// user (the caller may recover the role from the token claims).
func (s *SQLiteStore) Load(ctx context.Context) (*models.Session, error) {
	token, err := s.get(ctx, keyAuthToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	sess := &models.Session{Token: string(token)}

	userData, err := s.get(ctx, keyCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(userData) > 0 {
		_ = json.Unmarshal(userData, &sess.User)
	}
	return sess, nil
}

// Clear removes both keys.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key IN (?, ?)`, keyAuthToken, keyCurrentUser)
	if err != nil {
		return fmt.Errorf("failed to clear local_storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
