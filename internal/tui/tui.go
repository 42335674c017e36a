// Package tui is the interactive terminal surface: greetings on top, the
// task list below, and an inline form to add tasks.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/daylist/internal/page"
	"github.com/idilsaglam/daylist/internal/session"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	greetingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	checkedStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// listItem adapts a rendered page item to bubbles/list.Item.
type listItem struct {
	ID    string
	Label string
	Done  bool
}

func fromPage(it page.Item) listItem {
	return listItem{ID: it.ID, Label: it.Label, Done: it.Checked()}
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.Done {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.Label)
}

func (i listItem) Description() string { return i.ID }
func (i listItem) FilterValue() string { return i.Label }

// itemDelegate draws each task on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	box := mutedStyle.Render(boxUnchecked)
	label := it.Label
	if it.Done {
		box = successStyle.Render(boxChecked)
		label = checkedStyle.Render(label)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, label)
}

var (
	addBind   = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	doneBind  = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "check off"))
	greetBind = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "greet"))
	quitBind  = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit"))
)

// Model is the Bubble Tea model. All state changes go through the session,
// one message at a time.
type Model struct {
	sess   *session.Session
	list   list.Model
	ti     textinput.Model
	adding bool
	width  int
	height int
}

// New builds a model over sess, showing whatever the session's page holds.
func New(sess *session.Session) Model {
	doc := sess.Document()
	items := doc.Items()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, fromPage(it))
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.Title = "Tasks"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	extra := func() []key.Binding { return []key.Binding{addBind, doneBind, greetBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New task..."
	ti.CharLimit = 200

	m := Model{sess: sess, list: l, ti: ti, width: 80, height: 24}
	m.list.Title = m.header()
	return m
}

// Run starts the program, greeting first if the page has no greeting yet.
// Saving is left to the caller.
func Run(sess *session.Session, opts ...tea.ProgramOption) error {
	if len(sess.Document().Paragraphs()) == 0 {
		sess.Greet()
	}
	if opts == nil {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	if _, err := tea.NewProgram(New(sess), opts...).Run(); err != nil {
		return err
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, quitBind):
			return m, tea.Quit
		case key.Matches(km, doneBind):
			cmd := m.checkOffSelected()
			return m, cmd
		case key.Matches(km, addBind):
			m.adding = true
			m.ti.SetValue("")
			m.resize()
			cmd := m.ti.Focus()
			return m, cmd
		case key.Matches(km, greetBind):
			m.sess.Greet()
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			// Labels go through untouched; an empty submit still adds a task.
			e := m.sess.Add(m.ti.Value())
			it, _ := m.sess.Document().Item(e.ElementID())
			cmd := m.list.InsertItem(len(m.list.Items()), fromPage(it))
			m.list.Select(len(m.list.Items()) - 1)
			m.closeForm()
			return m, cmd
		case tea.KeyEsc:
			m.closeForm()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeForm() {
	m.adding = false
	m.ti.SetValue("")
	m.ti.Blur()
	m.list.Title = m.header()
	m.resize()
}

// checkOffSelected marks the highlighted row done. With a filter applied the
// returned cmd refreshes the visible rows.
func (m *Model) checkOffSelected() tea.Cmd {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok || li.Done {
		return nil
	}
	if !m.sess.SetDone(li.ID) {
		return nil
	}
	li.Done = m.sess.Document().Checked(li.ID)
	cmd := m.list.SetItem(m.list.GlobalIndex(), li)
	m.list.Title = m.header()
	return cmd
}

func (m Model) header() string {
	d, p := m.sess.List().Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Tasks"),
		successStyle.Render("✔"), d,
		pendingStyle.Render("•"), p,
		accentStyle.Render("Total"), d+p,
	)
}

func (m Model) greetings() string {
	ps := m.sess.Document().Paragraphs()
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, greetingStyle.Render(p))
	}
	return strings.Join(out, "\n")
}

func (m *Model) resize() {
	h := m.height - 4 - len(m.sess.Document().Paragraphs())
	if m.adding {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	var sb strings.Builder
	if g := m.greetings(); g != "" {
		sb.WriteString(g)
		sb.WriteString("\n\n")
	}
	sb.WriteString(m.list.View())
	if m.adding {
		form := "Add task\n" + m.ti.View()
		sb.WriteString("\n")
		sb.WriteString(frameStyle.Render(form))
	}
	return frameStyle.Render(sb.String())
}
