// Package app glues user actions to the list operations and triggers the
// save and redraw that follow each mutation.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/render"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/todo"
)

// ErrIndexOutOfRange is returned by ToggleAt for an index with no entry.
var ErrIndexOutOfRange = errors.New("index out of range")

// Orchestrator owns the session's list. Every handler goes through it;
// none of them touch the list directly.
//
// It is not safe for concurrent use: actions arrive one at a time from
// the UI loop.
type Orchestrator struct {
	list     *todo.List
	sorter   *todo.Sorter
	store    store.Store
	renderer render.Renderer
	notifier render.Notifier
	log      *zap.Logger
	onError  func(error)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSorter replaces the default-locale sorter.
func WithSorter(s *todo.Sorter) Option { return func(o *Orchestrator) { o.sorter = s } }

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option { return func(o *Orchestrator) { o.log = l } }

// WithErrorHandler receives failures of toggles started from a view's
// activate handler, which has no caller to return them to.
func WithErrorHandler(h func(error)) Option { return func(o *Orchestrator) { o.onError = h } }

// New returns an orchestrator with an empty list. Call Load to rehydrate.
func New(st store.Store, r render.Renderer, n render.Notifier, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		list:     todo.New(),
		store:    st,
		renderer: r,
		notifier: n,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.sorter == nil {
		o.sorter = todo.NewSorter(todo.DefaultLocale)
	}
	return o
}

// List exposes the owned list for read access.
func (o *Orchestrator) List() *todo.List { return o.list }

// SetRenderer swaps the view, e.g. once an interactive UI has started.
func (o *Orchestrator) SetRenderer(r render.Renderer) { o.renderer = r }

// Load replaces the list contents with the store's last saved state and
// draws it. The list keeps its identity.
func (o *Orchestrator) Load(ctx context.Context) error {
	items, err := o.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	o.list.Reset(items)
	o.log.Debug("list loaded", zap.Int("items", o.list.Len()))
	return o.redraw()
}

// SubmitNewEntry adds text. A rejection is shown through the notifier and
// returned in the result; nothing is saved or redrawn in that case.
func (o *Orchestrator) SubmitNewEntry(ctx context.Context, text string) (todo.AddResult, error) {
	res := todo.Add(text, o.list)
	if !res.Accepted {
		o.log.Debug("entry rejected", zap.String("reason", res.Message))
		o.notifier.ShowError(res.Message)
		return res, nil
	}
	o.notifier.HideError()
	o.log.Debug("entry added", zap.Int("items", o.list.Len()))
	return res, o.commit(ctx)
}

// ToggleEntry flips t, which must belong to the owned list.
func (o *Orchestrator) ToggleEntry(ctx context.Context, t *model.Todo) error {
	todo.Toggle(t)
	o.log.Debug("entry toggled", zap.Bool("done", t.Done))
	return o.commit(ctx)
}

// ToggleAt toggles the entry at 1-based index n.
func (o *Orchestrator) ToggleAt(ctx context.Context, n int) error {
	t := o.list.At(n - 1)
	if t == nil {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, o.list.Len(), n)
	}
	return o.ToggleEntry(ctx, t)
}

// ClearAllEntries empties the list.
func (o *Orchestrator) ClearAllEntries(ctx context.Context) error {
	todo.ClearAll(o.list)
	o.log.Debug("list cleared")
	return o.commit(ctx)
}

// SortEntries sorts the list, redraws it and saves the new order.
func (o *Orchestrator) SortEntries(ctx context.Context) error {
	o.sorter.Sort(o.list)
	o.log.Debug("list sorted")
	if err := o.redraw(); err != nil {
		return err
	}
	return o.save(ctx)
}

func (o *Orchestrator) commit(ctx context.Context) error {
	if err := o.redraw(); err != nil {
		return err
	}
	return o.save(ctx)
}

func (o *Orchestrator) redraw() error {
	if o.renderer == nil {
		return nil
	}
	if err := o.renderer.Render(o.list.Items(), o.activate); err != nil {
		o.log.Warn("render failed", zap.Error(err))
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (o *Orchestrator) save(ctx context.Context) error {
	if err := o.store.Save(ctx, o.list.Snapshot()); err != nil {
		o.log.Warn("save failed", zap.Error(err))
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// activate is the click handler handed to every renderer.
func (o *Orchestrator) activate(t *model.Todo) {
	if err := o.ToggleEntry(context.Background(), t); err != nil && o.onError != nil {
		o.onError(err)
	}
}
