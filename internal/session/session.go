// Package session wires the greeting and task list widgets to one page and
// to the snapshot store. A Session is not safe for concurrent use.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/idilsaglam/daylist/internal/greeting"
	"github.com/idilsaglam/daylist/internal/model"
	"github.com/idilsaglam/daylist/internal/page"
	"github.com/idilsaglam/daylist/internal/store"
	"github.com/idilsaglam/daylist/internal/tasklist"
)

type Session struct {
	doc      *page.Document
	list     *tasklist.List
	greeter  *greeting.Widget
	store    store.Store
	modified bool
}

// Open restores the stored task list onto a fresh page. A nil store gives
// an in-memory session that never persists.
func Open(ctx context.Context, st store.Store, clock func() time.Time) (*Session, error) {
	snap := model.Snapshot{}
	if st != nil {
		var err error
		snap, err = st.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}
	doc := page.New()
	return &Session{
		doc:     doc,
		list:    tasklist.Restore(snap, doc),
		greeter: greeting.NewWidget(doc, clock),
		store:   st,
	}, nil
}

func (s *Session) Add(label string) model.Entry {
	s.modified = true
	return s.list.Add(label)
}

// SetDone marks elementID done and reports whether it named an entry.
func (s *Session) SetDone(elementID string) bool {
	e, ok := s.list.Lookup(elementID)
	if !ok {
		return false
	}
	if !e.Done {
		s.modified = true
	}
	return s.list.SetDone(elementID)
}

// Greet appends a greeting paragraph. Greetings are not persisted.
func (s *Session) Greet() string { return s.greeter.Render() }

func (s *Session) Document() *page.Document { return s.doc }
func (s *Session) List() *tasklist.List     { return s.list }

// Modified reports whether the task list changed since Open or the last Save.
func (s *Session) Modified() bool { return s.modified }

// Save persists the task list if anything changed.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil || !s.modified {
		return nil
	}
	if err := s.store.Save(ctx, s.list.Snapshot()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.modified = false
	return nil
}
