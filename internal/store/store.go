// Package store persists the todo list into a single named slot of a
// key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Makepad-fr/tada/internal/model"
)

// Key names the slot the list lives in.
const Key = "todos"

// ErrUnknownDriver is returned by Open for an unsupported backend name.
var ErrUnknownDriver = errors.New("unknown store driver")

// Store reads and writes the whole list at once.
type Store interface {
	Load(ctx context.Context) ([]model.Todo, error)
	Save(ctx context.Context, items []model.Todo) error
	Close() error
}

// Encode serializes items as an ordered array of {text, done} records.
func Encode(items []model.Todo) ([]byte, error) {
	if items == nil {
		items = []model.Todo{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode is the inverse of Encode. Empty input decodes to an empty list.
func Decode(b []byte) ([]model.Todo, error) {
	if len(b) == 0 {
		return []model.Todo{}, nil
	}
	var items []model.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Todo{}
	}
	return items, nil
}
