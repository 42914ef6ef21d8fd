package htmlview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/Makepad-fr/tada/internal/model"
)

// parseList renders items and returns the parsed <ul id="todos">.
func parseList(t *testing.T, v *View, buf *bytes.Buffer, items []*model.Todo, activate func(*model.Todo)) *html.Node {
	t.Helper()
	require.NoError(t, v.Render(items, activate))
	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	ul := find(doc, func(n *html.Node) bool { return n.Data == "ul" && attr(n, "id") == ListID })
	require.NotNil(t, ul)
	return ul
}

func TestEmptyListHasNoItems(t *testing.T) {
	var buf bytes.Buffer
	ul := parseList(t, New(&buf), &buf, nil, nil)

	assert.Nil(t, ul.FirstChild)
	assert.Equal(t, `<ul id="todos" class="todo"></ul>`, buf.String())
}

func TestOneItemPerTodo(t *testing.T) {
	for _, n := range []int{1, 3} {
		var buf bytes.Buffer
		items := make([]*model.Todo, n)
		for i := range items {
			items[i] = &model.Todo{Text: "item"}
		}
		ul := parseList(t, New(&buf), &buf, items, nil)
		assert.Len(t, children(ul), n)
	}
}

func TestDoneClass(t *testing.T) {
	var buf bytes.Buffer
	ul := parseList(t, New(&buf), &buf, []*model.Todo{{Text: "Hello world", Done: true}, {Text: "Lorem"}}, nil)

	li := children(ul)
	require.Len(t, li, 2)
	assert.Contains(t, strings.Fields(attr(li[0], "class")), ItemDoneClass)
	assert.NotContains(t, strings.Fields(attr(li[1], "class")), ItemDoneClass)
	assert.Equal(t, "Hello world", li[0].FirstChild.Data)
}

func TestTextIsEscaped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).Render([]*model.Todo{{Text: "<b>bold</b>"}}, nil))
	assert.Contains(t, buf.String(), "&lt;b&gt;bold&lt;/b&gt;")
}

func TestActivateCallsHandlerWithItsTodo(t *testing.T) {
	var buf bytes.Buffer
	v := New(&buf)
	items := []*model.Todo{{Text: "Lorem"}, {Text: "Ipsum"}}

	var got []*model.Todo
	require.NoError(t, v.Render(items, func(t *model.Todo) { got = append(got, t) }))

	require.NoError(t, v.Activate(1))
	require.Len(t, got, 1)
	assert.Same(t, items[1], got[0])

	assert.Error(t, v.Activate(2))
	assert.Error(t, v.Activate(-1))
}

func TestDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDocument(&buf).Render([]*model.Todo{{Text: "Lorem"}}, nil))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<li class="todo__text" data-index="0">Lorem</li>`)
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, match); f != nil {
			return f
		}
	}
	return nil
}

func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestActivateWithoutHandlerIsNoop(t *testing.T) {
	var buf bytes.Buffer
	v := NewDocument(&buf)
	require.NoError(t, v.Render([]*model.Todo{{Text: "Lorem"}}, nil))
	assert.NoError(t, v.Activate(0))
}
