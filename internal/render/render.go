// Package render defines how the todo list is projected onto a view and
// how add rejections are surfaced to the user.
package render

import "github.com/Makepad-fr/tada/internal/model"

// ActivateFunc is the per-item handler a view invokes when the user
// activates (clicks, selects) that item.
type ActivateFunc func(t *model.Todo)

// Renderer redraws the whole list, one visual item per todo in order.
// Implementations bind activate to each item's own *model.Todo.
type Renderer interface {
	Render(items []*model.Todo, activate ActivateFunc) error
}

// Notifier displays and dismisses the add validation message.
type Notifier interface {
	ShowError(msg string)
	HideError()
}
