// Package sqlitestore keeps the slot as a row of a key-value table in a
// SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

const dbFileName = "tada.db"

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (creating if needed) dir/tada.db.
func Open(ctx context.Context, dir string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	path := filepath.Join(dir, dbFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	log.Debug("sqlite store ready", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

func (s *Store) Load(ctx context.Context) ([]model.Todo, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, store.Key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Todo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot: %w", err)
	}
	items, err := store.Decode([]byte(value))
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded", zap.Int("items", len(items)))
	return items, nil
}

func (s *Store) Save(ctx context.Context, items []model.Todo) error {
	b, err := store.Encode(items)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		store.Key, string(b))
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	s.log.Debug("saved", zap.Int("items", len(items)))
	return nil
}

func (s *Store) Close() error { return s.db.Close() }
