// Package htmlview projects the list onto an HTML <ul>, the same markup
// the page version of the app uses.
package htmlview

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/render"
)

const (
	ListID        = "todos"
	ListClass     = "todo"
	ItemClass     = "todo__text"
	ItemDoneClass = "todo__text--done"
	IndexAttr     = "data-index"
)

// View renders into w and remembers the handler bound to each item so a
// later activation by index reaches the right todo.
type View struct {
	w        io.Writer
	document bool

	handlers []func()
}

// New returns a view writing a bare <ul> fragment.
func New(w io.Writer) *View { return &View{w: w} }

// NewDocument returns a view writing a complete HTML page.
func NewDocument(w io.Writer) *View { return &View{w: w, document: true} }

var _ render.Renderer = (*View)(nil)

func (v *View) Render(items []*model.Todo, activate render.ActivateFunc) error {
	ul := List(items)

	v.handlers = make([]func(), len(items))
	for i, t := range items {
		v.handlers[i] = func() {
			if activate != nil {
				activate(t)
			}
		}
	}

	root := ul
	if v.document {
		root = document(ul)
	}
	if err := html.Render(v.w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Activate fires the handler of the item rendered at index. It is for
// hosts that embed the view and route clicks back by data-index; a
// static export renders with a nil handler and never calls it.
func (v *View) Activate(index int) error {
	if index < 0 || index >= len(v.handlers) {
		return fmt.Errorf("no rendered item at index %d", index)
	}
	v.handlers[index]()
	return nil
}

// List builds the <ul id="todos"> node for items.
func List(items []*model.Todo) *html.Node {
	ul := element(atom.Ul,
		html.Attribute{Key: "id", Val: ListID},
		html.Attribute{Key: "class", Val: ListClass},
	)
	for i, t := range items {
		class := ItemClass
		if t.Done {
			class += " " + ItemDoneClass
		}
		li := element(atom.Li,
			html.Attribute{Key: "class", Val: class},
			html.Attribute{Key: IndexAttr, Val: strconv.Itoa(i)},
		)
		li.AppendChild(&html.Node{Type: html.TextNode, Data: t.Text})
		ul.AppendChild(li)
	}
	return ul
}

func document(body *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html)
	head := element(atom.Head)
	meta := element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"})
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: "Todos"})
	head.AppendChild(meta)
	head.AppendChild(title)

	bodyEl := element(atom.Body)
	bodyEl.AppendChild(body)

	htmlEl.AppendChild(head)
	htmlEl.AppendChild(bodyEl)
	doc.AppendChild(htmlEl)
	return doc
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}
