package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

const dataFileName = store.Key + ".json"

type Store struct {
	path string
	log  *zap.Logger
}

// New returns a store keeping its slot in dir/todos.json.
func New(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: filepath.Join(dir, dataFileName), log: log}
}

// Path is the file backing the slot.
func (s *Store) Path() string { return s.path }

func (s *Store) Load(ctx context.Context) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug("no data file yet", zap.String("path", s.path))
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	items, err := store.Decode(b)
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded", zap.String("path", s.path), zap.Int("items", len(items)))
	return items, nil
}

func (s *Store) Save(ctx context.Context, items []model.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := store.Encode(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	s.log.Debug("saved", zap.String("path", s.path), zap.Int("items", len(items)))
	return nil
}

func (s *Store) Close() error { return nil }
