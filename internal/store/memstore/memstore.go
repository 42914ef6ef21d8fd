// Package memstore keeps the slot in memory. Tests use it in place of a
// file or database.
package memstore

import (
	"context"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store"
)

type Store struct {
	slot  []byte
	Saves int
	Err   error
}

func New() *Store { return &Store{} }

// Seed sets the slot content as if it had been saved earlier.
func Seed(items []model.Todo) *Store {
	s := New()
	s.slot, _ = store.Encode(items)
	return s
}

func (s *Store) Load(ctx context.Context) ([]model.Todo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return store.Decode(s.slot)
}

func (s *Store) Save(ctx context.Context, items []model.Todo) error {
	if s.Err != nil {
		return s.Err
	}
	b, err := store.Encode(items)
	if err != nil {
		return err
	}
	s.slot = b
	s.Saves++
	return nil
}

// Raw returns the serialized slot.
func (s *Store) Raw() []byte { return s.slot }

func (s *Store) Close() error { return nil }
