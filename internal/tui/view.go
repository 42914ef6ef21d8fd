package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/render"
	"github.com/Makepad-fr/tada/internal/ui"
)

// row adapts a todo to bubbles/list.Item and carries the activate handler
// the orchestrator bound to it.
type row struct {
	todo     *model.Todo
	activate func()
}

func (r row) Title() string       { return r.todo.Text }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.todo.Text }

// view is the Renderer the orchestrator draws into. Rows are picked up by
// the model after each action.
type view struct {
	rows    []list.Item
	renders int
}

var _ render.Renderer = (*view)(nil)

func (v *view) Render(items []*model.Todo, activate render.ActivateFunc) error {
	rows := make([]list.Item, 0, len(items))
	for _, t := range items {
		rows = append(rows, row{todo: t, activate: func() {
			if activate != nil {
				activate(t)
			}
		}})
	}
	v.rows = rows
	v.renders++
	return nil
}

// status holds the dismissible error line. It doubles as the session's
// render.Notifier.
type status struct {
	msg string
}

var _ render.Notifier = (*status)(nil)

func (s *status) ShowError(msg string) { s.msg = msg }
func (s *status) HideError()           { s.msg = "" }

// delegate renders each row on a single line.
type delegate struct {
	theme ui.Theme
}

func (d delegate) Height() int                               { return 1 }
func (d delegate) Spacing() int                              { return 0 }
func (d delegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(row)
	if !ok {
		return
	}
	t := d.theme
	box := t.Muted.Render(t.BoxUnchecked)
	text := it.todo.Text
	if it.todo.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+strings.TrimSpace(text))
}
