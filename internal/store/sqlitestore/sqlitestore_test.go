package sqlitestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, dir, nil)
	require.NoError(t, err)

	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	want := []model.Todo{{Text: "Lorem"}, {Text: "Ipsum", Done: true}}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Save(ctx, want[:1]))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, dir, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want[:1], got)
}

func TestSingleSlot(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, t.TempDir(), nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, []model.Todo{{Text: "one"}}))
	require.NoError(t, s.Save(ctx, []model.Todo{{Text: "two"}}))

	var n int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv`).Scan(&n))
	assert.Equal(t, 1, n)
}
