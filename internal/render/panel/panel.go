// Package panel draws the list as a framed terminal panel.
package panel

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/render"
	"github.com/Makepad-fr/tada/internal/ui"
)

const maxTitle = 80

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
	Tip   bool // print the usage tip under the list
}

// Renderer writes one panel per Render call. Items are activated from the
// command line by index, so the activate handler is not retained.
type Renderer struct {
	w     io.Writer
	theme ui.Theme
	opt   Options
}

func New(w io.Writer, theme ui.Theme, opt Options) *Renderer {
	return &Renderer{w: w, theme: theme, opt: opt}
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) Render(items []*model.Todo, _ render.ActivateFunc) error {
	t := r.theme
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if r.opt.Group {
		lines = append(lines, r.groupLines(items)...)
	} else {
		lines = append(lines, r.flatLines(items)...)
	}
	if r.opt.Tip {
		lines = append(lines, "")
		lines = append(lines, t.Muted.Render("Tip: add with `tada add \"Buy milk\"`"))
	}
	_, err := fmt.Fprintln(r.w, ui.Panel(t, lines))
	return err
}

func stats(items []*model.Todo) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

type indexed struct {
	n    int
	todo *model.Todo
}

func (r *Renderer) flatLines(items []*model.Todo) []string {
	rows := make([]indexed, 0, len(items))
	for i, it := range items {
		rows = append(rows, indexed{n: i + 1, todo: it})
	}
	return r.lines(rows)
}

// lines keeps each row's position in the full list so `tada done <n>`
// matches what is shown, grouped or not.
func (r *Renderer) lines(rows []indexed) []string {
	t := r.theme
	if len(rows) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		idx := fmt.Sprintf("%2d.", row.n)
		box, boxStyle := t.BoxUnchecked, t.Muted
		text := truncate(row.todo.Text)
		if row.todo.Done {
			box, boxStyle = t.BoxChecked, t.Success
			text = t.DoneText.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), boxStyle.Render(box), text))
	}
	return out
}

func (r *Renderer) groupLines(items []*model.Todo) []string {
	t := r.theme
	var pend, done []indexed
	for i, it := range items {
		row := indexed{n: i + 1, todo: it}
		if it.Done {
			done = append(done, row)
		} else {
			pend = append(pend, row)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, r.lines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, r.lines(done)...)
	}
	return lines
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return s
}
