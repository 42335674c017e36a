package model

import "strconv"

// State is the lifecycle of a task entry. It only ever moves Pending -> Done.
type State int

const (
	Pending State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "done"
	}
	return "pending"
}

// ElementPrefix is prepended to an entry id to form its element id.
const ElementPrefix = "item"

// Entry is the domain model for a task on the list.
type Entry struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Done  bool   `json:"done" yaml:"done"`
}

// ElementID is the stable handle used to find the rendered entry, e.g. "item3".
func (e Entry) ElementID() string { return ElementID(e.ID) }

func (e Entry) State() State {
	if e.Done {
		return Done
	}
	return Pending
}

// ElementID formats a numeric entry id as an element id.
func ElementID(id int) string { return ElementPrefix + strconv.Itoa(id) }

// Snapshot is what gets persisted between runs: the entries in render order
// plus the counter, so ids stay unique after a restore.
type Snapshot struct {
	Counter int     `json:"counter" yaml:"counter"`
	Entries []Entry `json:"entries" yaml:"entries"`
}
