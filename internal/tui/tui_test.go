package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

type harness struct {
	m     Model
	orch  *app.Orchestrator
	store *memstore.Store
	sess  *Session
}

func newHarness(t *testing.T, seed ...model.Todo) *harness {
	t.Helper()
	th, err := ui.ThemeByName("mono")
	require.NoError(t, err)

	ctx := context.Background()
	sess := NewSession(th)
	st := memstore.Seed(seed)
	o := app.New(st, sess.Renderer(), sess.Notifier(), app.WithErrorHandler(sess.ReportError))
	require.NoError(t, o.Load(ctx))

	return &harness{m: sess.Model(ctx, o), orch: o, store: st, sess: sess}
}

func (h *harness) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		next, _ := h.m.Update(msg)
		h.m = next.(Model)
	}
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = runes(" ")
)

func TestRowsFollowRenderedList(t *testing.T) {
	h := newHarness(t, model.Todo{Text: "Lorem"}, model.Todo{Text: "Ipsum", Done: true})
	items := h.m.list.Items()
	require.Len(t, items, 2)
	assert.Same(t, h.orch.List().At(1), items[1].(row).todo)
}

func TestEnterTogglesSelected(t *testing.T) {
	h := newHarness(t, model.Todo{Text: "Lorem"}, model.Todo{Text: "Ipsum"})

	h.send(enter)
	assert.True(t, h.orch.List().At(0).Done)
	assert.Equal(t, 1, h.store.Saves)

	h.send(space)
	assert.False(t, h.orch.List().At(0).Done)
	assert.Equal(t, 2, h.store.Saves)
}

func TestAddAccepted(t *testing.T) {
	h := newHarness(t)

	h.send(runes("a"), runes("Hello world"), enter)

	assert.False(t, h.m.adding)
	require.Equal(t, 1, h.orch.List().Len())
	assert.Equal(t, "Hello world", h.orch.List().At(0).Text)
	assert.Len(t, h.m.list.Items(), 1)
	assert.Equal(t, 1, h.store.Saves)
}

func TestAddRejectedShowsDismissibleError(t *testing.T) {
	h := newHarness(t)

	h.send(runes("a"), runes("H"), enter)

	assert.True(t, h.m.adding)
	assert.Equal(t, todo.MinLengthMessage, h.sess.status.msg)
	assert.Contains(t, h.m.View(), todo.MinLengthMessage)
	assert.Equal(t, 0, h.orch.List().Len())
	assert.Equal(t, 0, h.store.Saves)

	h.send(runes("i"))
	assert.Empty(t, h.sess.status.msg)

	h.send(enter)
	assert.Equal(t, todo.MinLengthMessage, h.sess.status.msg)
	assert.Equal(t, 0, h.orch.List().Len())

	h.send(runes("!"), enter)
	assert.Equal(t, "Hi!", h.orch.List().At(0).Text)
}

func TestAddEscCancels(t *testing.T) {
	h := newHarness(t)

	h.send(runes("a"), runes("Lorem"), esc)

	assert.False(t, h.m.adding)
	assert.Equal(t, 0, h.orch.List().Len())
}

func TestSortAndClear(t *testing.T) {
	h := newHarness(t,
		model.Todo{Text: "Lorem"},
		model.Todo{Text: "Ipsum", Done: true},
		model.Todo{Text: "Dolor"},
	)

	h.send(runes("s"))
	assert.Equal(t, "Dolor", h.m.list.Items()[0].(row).todo.Text)
	assert.Equal(t, []model.Todo{{Text: "Dolor"}, {Text: "Lorem"}, {Text: "Ipsum", Done: true}}, h.orch.List().Snapshot())

	h.send(runes("C"))
	assert.Empty(t, h.m.list.Items())
	assert.Equal(t, 0, h.orch.List().Len())
	assert.Equal(t, "[]", string(h.store.Raw()))
}

func TestToggleSaveFailureIsShown(t *testing.T) {
	h := newHarness(t, model.Todo{Text: "Lorem"})
	h.store.Err = assert.AnError

	h.send(enter)
	assert.Contains(t, h.sess.status.msg, assert.AnError.Error())

	h.send(runes("x"))
	assert.Empty(t, h.sess.status.msg)
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	_, cmd := h.m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsCounts(t *testing.T) {
	h := newHarness(t, model.Todo{Text: "Lorem", Done: true}, model.Todo{Text: "Ipsum"})
	h.send(tea.WindowSizeMsg{Width: 80, Height: 20})

	out := h.m.View()
	assert.Contains(t, out, "Total 2")
	assert.Contains(t, out, "[x] Lorem")
	assert.Contains(t, out, "[ ] Ipsum")
}
