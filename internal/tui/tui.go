// Package tui is the interactive list: a Bubble Tea program driving an
// app.Orchestrator.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/render"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Session holds the renderer and notifier an orchestrator is built with
// before the program starts.
type Session struct {
	theme  ui.Theme
	view   *view
	status *status
}

func NewSession(theme ui.Theme) *Session {
	return &Session{theme: theme, view: &view{}, status: &status{}}
}

func (s *Session) Renderer() render.Renderer { return s.view }
func (s *Session) Notifier() render.Notifier { return s.status }

// ReportError shows err on the status line. Pass it to
// app.WithErrorHandler so failed toggles are visible.
func (s *Session) ReportError(err error) { s.status.ShowError(err.Error()) }

var keys = struct {
	toggle, add, sort, clear, dismiss key.Binding
}{
	toggle:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter/space", "toggle")),
	add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
}

func helpKeys() []key.Binding {
	return []key.Binding{keys.toggle, keys.add, keys.sort, keys.clear, keys.dismiss}
}

// Model implements tea.Model on top of an orchestrator.
type Model struct {
	ctx    context.Context
	orch   *app.Orchestrator
	sess   *Session
	list   list.Model
	ti     textinput.Model
	adding bool
	width  int
	height int
}

// Model returns the program model. The orchestrator must have been built
// with s.Renderer() and s.Notifier() and loaded.
func (s *Session) Model(ctx context.Context, o *app.Orchestrator) Model {
	l := list.New(nil, delegate{theme: s.theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.theme.Title
	l.Styles.HelpStyle = s.theme.Muted
	l.Styles.PaginationStyle = s.theme.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = helpKeys
	l.AdditionalFullHelpKeys = helpKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item..."
	ti.CharLimit = 200

	m := Model{ctx: ctx, orch: o, sess: s, list: l, ti: ti, width: 80, height: 24}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func (s *Session) Run(ctx context.Context, o *app.Orchestrator, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(s.Model(ctx, o), opts...)
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.resize()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// add mode
	if m.adding {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				res, err := m.orch.SubmitNewEntry(m.ctx, m.ti.Value())
				if err != nil {
					m.sess.ReportError(err)
				}
				if res.Accepted {
					m.ti.SetValue("")
					m.ti.Blur()
					m.adding = false
				}
				return m, m.refresh()
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				m.sess.status.HideError()
				return m, nil
			}
		}
		if _, ok := msg.(tea.KeyMsg); ok {
			m.sess.status.HideError()
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// let the filter input have every key while typing
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.String() == "q" || (k.String() == "esc" && m.list.FilterState() == list.Unfiltered):
			return m, tea.Quit
		case key.Matches(k, keys.toggle):
			if r, ok := m.list.SelectedItem().(row); ok {
				r.activate()
				return m, m.refresh()
			}
			return m, nil
		case key.Matches(k, keys.add):
			m.adding = true
			m.ti.SetValue("")
			m.ti.Focus()
			return m, textinput.Blink
		case key.Matches(k, keys.sort):
			m.report(m.orch.SortEntries(m.ctx))
			return m, m.refresh()
		case key.Matches(k, keys.clear):
			m.report(m.orch.ClearAllEntries(m.ctx))
			return m, m.refresh()
		case key.Matches(k, keys.dismiss):
			m.sess.status.HideError()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) report(err error) {
	if err != nil {
		m.sess.ReportError(err)
	}
}

// refresh copies the rows of the last render into the list and updates
// the header counts.
func (m *Model) refresh() tea.Cmd {
	idx := m.list.Index()
	cmd := m.list.SetItems(m.sess.view.rows)
	if idx >= len(m.sess.view.rows) {
		idx = len(m.sess.view.rows) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}

	t := m.sess.theme
	done, pending := m.orch.List().Stats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), done+pending,
	)
	return cmd
}

// resize fits the list between the frame and the add/status bars.
func (m *Model) resize() {
	listHeight := m.height - 4
	if m.adding {
		listHeight -= 4
	}
	if m.sess.status.msg != "" {
		listHeight--
	}
	m.list.SetSize(max(m.width-4, 10), max(listHeight, 1))
}

func (m Model) View() string {
	t := m.sess.theme
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().Border(t.Border).BorderForeground(t.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render("Add new item\n"+m.ti.View())
	}
	if msg := m.sess.status.msg; msg != "" {
		hint := "  (x to dismiss)"
		if m.adding {
			hint = "  (keep typing or esc)"
		}
		content += "\n" + t.Error.Render(t.SymFail+" "+msg) + t.Muted.Render(hint)
	}
	return ui.Panel(t, []string{content})
}
