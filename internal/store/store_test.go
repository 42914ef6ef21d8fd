package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestEncodeFormat(t *testing.T) {
	b, err := Encode([]model.Todo{{Text: "Lorem"}, {Text: "Ipsum", Done: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"Lorem","done":false},{"text":"Ipsum","done":true}]`, string(b))
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	b, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestDecode(t *testing.T) {
	items, err := Decode([]byte(`[{"text":"Dolor","done":true}]`))
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{{Text: "Dolor", Done: true}}, items)

	items, err = Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = Decode([]byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, items)

	_, err = Decode([]byte("{"))
	assert.Error(t, err)
}
