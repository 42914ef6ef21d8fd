package todo

import "github.com/Makepad-fr/tada/internal/model"

// List is the ordered collection of todos for one session.
// All operations mutate it in place; callers share it by pointer.
type List struct {
	items []*model.Todo
}

// New returns an empty list.
func New() *List { return &List{} }

// FromItems rehydrates a list from persisted records.
func FromItems(items []model.Todo) *List {
	l := New()
	l.Reset(items)
	return l
}

// Reset replaces the contents of l with fresh copies of items.
func (l *List) Reset(items []model.Todo) {
	ClearAll(l)
	for i := range items {
		t := items[i]
		l.items = append(l.items, &t)
	}
}

// Items returns the entries in list order. The slice is a copy; the
// todos are not.
func (l *List) Items() []*model.Todo {
	out := make([]*model.Todo, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int { return len(l.items) }

// At returns the entry at 0-based index i, or nil when out of range.
func (l *List) At(i int) *model.Todo {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Snapshot copies the entries by value, in order, for persistence.
func (l *List) Snapshot() []model.Todo {
	out := make([]model.Todo, 0, len(l.items))
	for _, t := range l.items {
		out = append(out, *t)
	}
	return out
}

// Stats counts done and pending entries.
func (l *List) Stats() (done, pending int) {
	for _, t := range l.items {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
