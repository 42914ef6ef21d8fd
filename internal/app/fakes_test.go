package app

import (
	"errors"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/render"
)

// fakeRenderer records every redraw and keeps the last activate handler.
type fakeRenderer struct {
	calls    int
	last     []model.Todo
	activate render.ActivateFunc
	items    []*model.Todo
	err      error
}

func (f *fakeRenderer) Render(items []*model.Todo, activate render.ActivateFunc) error {
	f.calls++
	f.items = items
	f.activate = activate
	f.last = f.last[:0]
	for _, t := range items {
		f.last = append(f.last, *t)
	}
	return f.err
}

// click simulates activating the rendered item at i.
func (f *fakeRenderer) click(i int) {
	f.activate(f.items[i])
}

type fakeNotifier struct {
	shown  []string
	hidden int
}

func (f *fakeNotifier) ShowError(msg string) { f.shown = append(f.shown, msg) }
func (f *fakeNotifier) HideError()           { f.hidden++ }

var errBoom = errors.New("boom")
