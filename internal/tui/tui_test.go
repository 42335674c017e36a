package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/daylist/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	clock := func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	sess, err := session.Open(context.Background(), nil, clock)
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	m := New(sess)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func addTask(m Model, label string) Model {
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = typeText(m, label)
	return press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_AddThroughForm(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if !m.adding {
		t.Fatal("expected add form to open")
	}
	m = typeText(m, "Buy milk")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.adding {
		t.Fatal("expected form to close after enter")
	}
	m = addTask(m, "Walk dog")

	items := m.list.Items()
	if len(items) != 2 {
		t.Fatalf("list items = %d, want 2", len(items))
	}
	first := items[0].(listItem)
	second := items[1].(listItem)
	if first.ID != "item1" || first.Label != "Buy milk" || second.ID != "item2" {
		t.Fatalf("items = %+v, %+v", first, second)
	}
}

func TestModel_EscCancelsForm(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = typeText(m, "never")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.adding || len(m.list.Items()) != 0 || m.sess.List().Counter() != 0 {
		t.Fatal("esc must discard the form without adding")
	}
}

func TestModel_CheckOffSelected(t *testing.T) {
	m := newTestModel(t)
	m = addTask(m, "Buy milk")
	m = addTask(m, "Walk dog")
	m.list.Select(0)

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.sess.Document().Checked("item1") {
		t.Fatal("item1 should be checked-off")
	}
	if m.sess.Document().Checked("item2") {
		t.Fatal("item2 should still be pending")
	}
	if !m.list.Items()[0].(listItem).Done {
		t.Fatal("list row not updated")
	}

	// Checking off again leaves it done.
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !m.list.Items()[0].(listItem).Done {
		t.Fatal("done must be one-way")
	}
}

func TestModel_CheckOffWhileFiltered(t *testing.T) {
	m := newTestModel(t)
	m = addTask(m, "Buy milk")
	m = addTask(m, "Walk dog")
	m.list.SetFilterText("Walk")
	if n := len(m.list.VisibleItems()); n != 1 {
		t.Fatalf("visible items = %d, want 1", n)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)
	if !m.sess.Document().Checked("item2") || m.sess.Document().Checked("item1") {
		t.Fatalf("document = %+v, want only item2 checked", m.sess.Document().Items())
	}

	items := m.list.Items()
	if len(items) != 2 {
		t.Fatalf("list items = %d, want 2", len(items))
	}
	first, second := items[0].(listItem), items[1].(listItem)
	if first.ID != "item1" || first.Done {
		t.Fatalf("first row = %+v, want pending item1", first)
	}
	if second.ID != "item2" || !second.Done {
		t.Fatalf("second row = %+v, want done item2", second)
	}

	if cmd == nil {
		t.Fatal("expected a refilter command")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	visible := m.list.VisibleItems()
	if len(visible) != 1 || !visible[0].(listItem).Done {
		t.Fatalf("visible rows = %+v, want the done item2 only", visible)
	}
}

func TestModel_GreetAppends(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})

	if n := len(m.sess.Document().Paragraphs()); n != 2 {
		t.Fatalf("paragraphs = %d, want 2", n)
	}
	if !strings.Contains(m.View(), "Good Morning") {
		t.Fatalf("view missing greeting:\n%s", m.View())
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
