package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/daylist/internal/model"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatal(err)
	}
	snap, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Counter != 0 || len(snap.Entries) != 0 {
		t.Fatalf("snapshot = %+v, want empty", snap)
	}
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "daylist.json")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	in := model.Snapshot{
		Counter: 2,
		Entries: []model.Entry{{ID: 1, Label: "Buy milk", Done: true}, {ID: 2, Label: "Walk dog"}},
	}
	if err := s.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}

	out, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Counter != 2 || len(out.Entries) != 2 || out.Entries[0] != in.Entries[0] {
		t.Fatalf("round trip = %+v", out)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _ := New(path)
	if _, err := s.Load(context.Background()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
