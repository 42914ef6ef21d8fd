// Package markdown renders the list as a GitHub-style task list, either
// as raw text or styled for the terminal with glamour.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/render"
)

type Renderer struct {
	w      io.Writer
	styled bool
	wrap   int
}

// New writes plain markdown.
func New(w io.Writer) *Renderer { return &Renderer{w: w} }

// NewStyled pipes the markdown through glamour before writing it.
func NewStyled(w io.Writer, wrap int) *Renderer {
	if wrap <= 0 {
		wrap = 80
	}
	return &Renderer{w: w, styled: true, wrap: wrap}
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) Render(items []*model.Todo, _ render.ActivateFunc) error {
	md := Checklist(items)
	if !r.styled {
		_, err := io.WriteString(r.w, md)
		return err
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.wrap),
	)
	if err != nil {
		return fmt.Errorf("glamour: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return fmt.Errorf("glamour render: %w", err)
	}
	_, err = io.WriteString(r.w, out)
	return err
}

// Checklist formats items as "- [ ] text" lines under a heading.
func Checklist(items []*model.Todo) string {
	var b strings.Builder
	b.WriteString("# Todos\n\n")
	if len(items) == 0 {
		b.WriteString("_no items_\n")
		return b.String()
	}
	for _, t := range items {
		box := " "
		if t.Done {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, escape(t.Text))
	}
	return b.String()
}

var escaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "#", `\#`,
	"\n", " ",
)

func escape(s string) string { return escaper.Replace(s) }
