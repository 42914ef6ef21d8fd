package markdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestChecklist(t *testing.T) {
	got := Checklist([]*model.Todo{{Text: "Lorem"}, {Text: "Ipsum", Done: true}})
	assert.Equal(t, "# Todos\n\n- [ ] Lorem\n- [x] Ipsum\n", got)
}

func TestChecklistEmpty(t *testing.T) {
	assert.Equal(t, "# Todos\n\n_no items_\n", Checklist(nil))
}

func TestChecklistEscapes(t *testing.T) {
	got := Checklist([]*model.Todo{{Text: "*not* [a] link\nnext"}})
	assert.Equal(t, "# Todos\n\n- [ ] \\*not\\* \\[a\\] link next\n", got)
}

func TestPlainRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Render([]*model.Todo{{Text: "Dolor"}}, nil))
	assert.Equal(t, "# Todos\n\n- [ ] Dolor\n", buf.String())
}

func TestStyledRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewStyled(&buf, 0).Render([]*model.Todo{{Text: "Dolor"}}, nil))
	assert.Contains(t, buf.String(), "Dolor")
}
