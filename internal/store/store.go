package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"harmonia/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// ErrStore tags any failure surfaced by the persistence layer.
var ErrStore = errors.New("store error")

// Defaults seeded into a freshly created database.
const (
	defaultReindexIntervalSeconds = 1800
	defaultAlbumArtPattern        = `Folder.(jpg|jpeg|png)`
)

// Store manages settings persistence backed by SQLite. A single mutex
// serializes every primitive; a file lock keeps other processes out for the
// lifetime of the handle.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	lock   *flock.Flock
	path   string
	issuer CredentialIssuer
}

// Open initializes or connects to the settings database, applies the schema,
// and seeds default rows on first creation.
func Open(cfg *config.Config, issuer CredentialIssuer) (*Store, error) {
	if cfg == nil || issuer == nil {
		return nil, errors.New("store requires config and credential issuer")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(cfg.DatabasePath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire settings lock: %w", ErrStore, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: settings database %s is locked by another process", ErrStore, cfg.DatabasePath)
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: open sqlite db: %w", ErrStore, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("%w: apply pragma %q: %w", ErrStore, pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: cfg.DatabasePath, issuer: issuer}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the settings file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

// Path returns the filesystem location of the settings database.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin schema tx: %w", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: create schema: %w", ErrStore, err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO settings (id, auth_secret, reindex_interval_seconds, album_art_pattern)
         VALUES (1, ?, ?, ?)`,
		uuid.NewString(),
		defaultReindexIntervalSeconds,
		defaultAlbumArtPattern,
	); err != nil {
		return fmt.Errorf("%w: seed settings row: %w", ErrStore, err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO ddns_settings (id, host, username, password) VALUES (1, '', '', '')`,
	); err != nil {
		return fmt.Errorf("%w: seed ddns row: %w", ErrStore, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit schema: %w", ErrStore, err)
	}
	return nil
}
