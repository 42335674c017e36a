// Package tasklist holds the task list state machine. Entries are added in
// Pending state and can only move to Done; nothing is ever removed.
package tasklist

import "github.com/idilsaglam/daylist/internal/model"

// Renderer is the surface the list draws onto.
type Renderer interface {
	// Render appends a checkbox + label item for entry.
	Render(entry model.Entry)
	// MarkDone applies the checked-off style to the item with elementID.
	// It reports false when there is no such item.
	MarkDone(elementID string) bool
}

// List owns the id counter and the ordered entries. It is not safe for
// concurrent use; callers run one operation to completion at a time.
type List struct {
	counter int
	entries []model.Entry
	index   map[string]int // element id -> position in entries
	r       Renderer
}

func New(r Renderer) *List {
	return &List{index: make(map[string]int), r: r}
}

// Restore rebuilds a list from a snapshot and renders every entry again,
// in order, with its done state. The counter never goes below the highest
// restored id. A repeated id keeps only its first entry.
func Restore(snap model.Snapshot, r Renderer) *List {
	l := New(r)
	l.counter = snap.Counter
	for _, e := range snap.Entries {
		if e.ID > l.counter {
			l.counter = e.ID
		}
		if _, dup := l.index[e.ElementID()]; dup {
			continue
		}
		l.index[e.ElementID()] = len(l.entries)
		l.entries = append(l.entries, e)
		r.Render(e)
		if e.Done {
			r.MarkDone(e.ElementID())
		}
	}
	return l
}

// Add appends a pending entry and renders it. Labels are taken as given,
// the empty string included.
func (l *List) Add(label string) model.Entry {
	l.counter++
	e := model.Entry{ID: l.counter, Label: label}
	l.index[e.ElementID()] = len(l.entries)
	l.entries = append(l.entries, e)
	l.r.Render(e)
	return e
}

// SetDone moves the entry with elementID to Done. Unknown ids are ignored
// and already-done entries are left alone. It reports whether the id
// resolved to an entry.
func (l *List) SetDone(elementID string) bool {
	i, ok := l.index[elementID]
	if !ok {
		return false
	}
	if l.entries[i].Done {
		return true
	}
	l.entries[i].Done = true
	l.r.MarkDone(elementID)
	return true
}

// Lookup returns the entry with elementID.
func (l *List) Lookup(elementID string) (model.Entry, bool) {
	i, ok := l.index[elementID]
	if !ok {
		return model.Entry{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of the entries in insertion order.
func (l *List) Entries() []model.Entry {
	out := make([]model.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *List) Len() int     { return len(l.entries) }
func (l *List) Counter() int { return l.counter }

func (l *List) Snapshot() model.Snapshot {
	return model.Snapshot{Counter: l.counter, Entries: l.Entries()}
}

// Stats counts done and pending entries.
func (l *List) Stats() (done, pending int) {
	return Stats(l.entries)
}

// Stats counts done and pending entries in items.
func Stats(items []model.Entry) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
