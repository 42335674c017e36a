// Package page is the in-memory document the widgets mutate. Surfaces
// (terminal, TUI, web) draw from it; they never hold widget state themselves.
package page

import "github.com/idilsaglam/daylist/internal/model"

// ClassCheckedOff is the class applied to a finished task item.
const ClassCheckedOff = "checked-off"

// TaskListID is the id of the list container items are appended to.
const TaskListID = "taskList"

// Item is one rendered checkbox + label node.
type Item struct {
	ID    string
	Label string
	Class string
}

func (it Item) Checked() bool { return it.Class == ClassCheckedOff }

// Document collects greeting paragraphs and task list items in the order
// they were appended.
type Document struct {
	paragraphs []string
	items      []Item
	byID       map[string]int
}

func New() *Document {
	return &Document{byID: make(map[string]int)}
}

// AppendParagraph adds a paragraph to the end of the body.
func (d *Document) AppendParagraph(text string) {
	d.paragraphs = append(d.paragraphs, text)
}

// Render appends a list item for entry to the task list.
func (d *Document) Render(entry model.Entry) {
	id := entry.ElementID()
	d.byID[id] = len(d.items)
	d.items = append(d.items, Item{ID: id, Label: entry.Label})
}

// MarkDone sets the checked-off class on the item with id.
func (d *Document) MarkDone(id string) bool {
	i, ok := d.byID[id]
	if !ok {
		return false
	}
	d.items[i].Class = ClassCheckedOff
	return true
}

func (d *Document) Paragraphs() []string {
	out := make([]string, len(d.paragraphs))
	copy(out, d.paragraphs)
	return out
}

func (d *Document) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Document) Item(id string) (Item, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Item{}, false
	}
	return d.items[i], true
}

// Checked reports whether the item with id carries the checked-off class.
func (d *Document) Checked(id string) bool {
	it, ok := d.Item(id)
	return ok && it.Checked()
}
