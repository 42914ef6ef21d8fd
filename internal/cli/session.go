package cli

import (
	"context"
	"fmt"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/render"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/store/sqlitestore"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// openStore picks the backend named by cfg.Store.
func (e *env) openStore(ctx context.Context) (store.Store, error) {
	switch e.cfg.Store {
	case config.StoreJSON:
		return jsonstore.New(e.cfg.DataDir, e.log.Named("jsonstore")), nil
	case config.StoreSQLite:
		st, err := sqlitestore.Open(ctx, e.cfg.DataDir, e.log.Named("sqlitestore"))
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	return nil, fmt.Errorf("%w: %q", store.ErrUnknownDriver, e.cfg.Store)
}

// session opens the store and returns a loaded orchestrator. Loading
// draws into r, which may be nil for commands that draw only after
// their action. The caller closes the store.
func (e *env) session(ctx context.Context, r render.Renderer, n render.Notifier, opts ...app.Option) (*app.Orchestrator, store.Store, error) {
	st, err := e.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	if n == nil {
		n = ui.Notifier{W: e.stderr, Theme: e.theme}
	}
	tag, _ := e.cfg.LanguageTag()
	opts = append([]app.Option{
		app.WithLogger(e.log.Named("app")),
		app.WithSorter(todo.NewSorter(tag)),
	}, opts...)

	o := app.New(st, r, n, opts...)
	if err := o.Load(ctx); err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return o, st, nil
}
