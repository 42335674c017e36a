package tasklist

import (
	"testing"

	"github.com/idilsaglam/daylist/internal/model"
	"github.com/idilsaglam/daylist/internal/page"
)

// recorder counts renderer calls so tests can check no extra work happens.
type recorder struct {
	rendered []model.Entry
	marked   []string
}

func (r *recorder) Render(e model.Entry) { r.rendered = append(r.rendered, e) }
func (r *recorder) MarkDone(id string) bool {
	r.marked = append(r.marked, id)
	return true
}

func TestList_AddAssignsSequentialIDs(t *testing.T) {
	doc := page.New()
	l := New(doc)

	first := l.Add("Buy milk")
	second := l.Add("Walk dog")

	if first.ElementID() != "item1" || second.ElementID() != "item2" {
		t.Fatalf("ids = %s, %s, want item1, item2", first.ElementID(), second.ElementID())
	}
	items := doc.Items()
	if len(items) != 2 || items[0].Label != "Buy milk" || items[1].Label != "Walk dog" {
		t.Fatalf("rendered items = %+v", items)
	}
	if first.State() != model.Pending {
		t.Fatalf("new entry state = %s, want pending", first.State())
	}
}

func TestList_SetDoneMarksOnlyTarget(t *testing.T) {
	doc := page.New()
	l := New(doc)
	l.Add("Buy milk")
	l.Add("Walk dog")

	if !l.SetDone("item1") {
		t.Fatal("SetDone(item1) = false")
	}
	if !doc.Checked("item1") {
		t.Fatal("item1 should be checked-off")
	}
	if doc.Checked("item2") {
		t.Fatal("item2 should not be checked-off")
	}
	e, _ := l.Lookup("item1")
	if e.State() != model.Done {
		t.Fatalf("item1 state = %s, want done", e.State())
	}
}

func TestList_SetDoneIsIdempotent(t *testing.T) {
	rec := &recorder{}
	l := New(rec)
	l.Add("a")

	l.SetDone("item1")
	before := l.Entries()
	l.SetDone("item1")

	if len(rec.marked) != 1 {
		t.Fatalf("MarkDone called %d times, want 1", len(rec.marked))
	}
	after := l.Entries()
	if before[0] != after[0] {
		t.Fatalf("entry changed on repeat: %+v -> %+v", before[0], after[0])
	}
}

func TestList_SetDoneUnknownIDIsNoop(t *testing.T) {
	rec := &recorder{}
	l := New(rec)
	l.Add("a")

	for _, id := range []string{"item2", "item0", "", "1", "itemx"} {
		if l.SetDone(id) {
			t.Errorf("SetDone(%q) = true, want false", id)
		}
	}
	if len(rec.marked) != 0 {
		t.Fatalf("renderer touched for unknown ids: %v", rec.marked)
	}
	if l.Entries()[0].Done {
		t.Fatal("state changed for unknown id")
	}
}

func TestList_AddAcceptsEmptyLabel(t *testing.T) {
	l := New(page.New())
	e := l.Add("")
	if e.ID != 1 || e.Label != "" {
		t.Fatalf("entry = %+v", e)
	}
	if l.Counter() != 1 {
		t.Fatalf("counter = %d, want 1", l.Counter())
	}
}

func TestRestore(t *testing.T) {
	snap := model.Snapshot{
		Counter: 3,
		Entries: []model.Entry{
			{ID: 1, Label: "one", Done: true},
			{ID: 3, Label: "three"},
		},
	}
	doc := page.New()
	l := Restore(snap, doc)

	if !doc.Checked("item1") || doc.Checked("item3") {
		t.Fatalf("restored classes wrong: %+v", doc.Items())
	}
	next := l.Add("four")
	if next.ElementID() != "item4" {
		t.Fatalf("next id = %s, want item4", next.ElementID())
	}
	done, pending := l.Stats()
	if done != 1 || pending != 2 {
		t.Fatalf("stats = %d/%d, want 1/2", done, pending)
	}
}

func TestRestore_CounterNeverBelowHighestID(t *testing.T) {
	snap := model.Snapshot{Counter: 0, Entries: []model.Entry{{ID: 7, Label: "x"}}}
	l := Restore(snap, page.New())
	if got := l.Add("y").ID; got != 8 {
		t.Fatalf("next id = %d, want 8", got)
	}
}

func TestRestore_DuplicateIDKeepsFirst(t *testing.T) {
	snap := model.Snapshot{
		Counter: 2,
		Entries: []model.Entry{
			{ID: 1, Label: "first"},
			{ID: 2, Label: "two"},
			{ID: 1, Label: "copy", Done: true},
		},
	}
	doc := page.New()
	l := Restore(snap, doc)

	if l.Len() != 2 || len(doc.Items()) != 2 {
		t.Fatalf("len = %d, items = %d, want 2 and 2", l.Len(), len(doc.Items()))
	}
	if e, _ := l.Lookup("item1"); e.Label != "first" || e.Done {
		t.Fatalf("item1 = %+v, want the first pending copy", e)
	}
	if !l.SetDone("item1") || !doc.Checked("item1") {
		t.Fatal("item1 should be checked off")
	}
	for _, e := range l.Entries() {
		if e.ID == 1 && !e.Done {
			t.Fatalf("an item1 entry stayed pending: %+v", l.Entries())
		}
	}
}
