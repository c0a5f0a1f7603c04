package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lnds/daily-log/pkg/entry"
)

// Journal holds the sectioned log. Every entry's Section field matches
// the name of the section holding it; Move keeps the two in sync.
type Journal struct {
	sections map[string][]*entry.Entry
}

// New returns a journal seeded with the default section.
func New() *Journal {
	j := NewEmpty()
	j.Ensure(Default)
	return j
}

// NewEmpty returns a journal with no sections. The parser builds on top
// of this so that files without the default section round-trip
// unchanged.
func NewEmpty() *Journal {
	return &Journal{sections: map[string][]*entry.Entry{}}
}

// Ensure creates the named section if it does not exist yet.
func (j *Journal) Ensure(name string) {
	if _, ok := j.sections[name]; !ok {
		j.sections[name] = []*entry.Entry{}
	}
}

func (j *Journal) Has(name string) bool {
	_, ok := j.sections[name]
	return ok
}

// Names lists the sections in serialization order: the default section
// first when present, the rest sorted by name.
func (j *Journal) Names() []string {
	rest := make([]string, 0, len(j.sections))
	hasDefault := false
	for name := range j.sections {
		if name == Default {
			hasDefault = true
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)
	if hasDefault {
		return append([]string{Default}, rest...)
	}
	return rest
}

// Entries returns the named section's entries in file order, or nil if
// the section does not exist.
func (j *Journal) Entries(name string) []*entry.Entry {
	return j.sections[name]
}

// Counts reports how many entries each section holds.
func (j *Journal) Counts() map[string]int {
	counts := make(map[string]int, len(j.sections))
	for name, entries := range j.sections {
		counts[name] = len(entries)
	}
	return counts
}

// Add appends the entry to the section named by its Section field,
// creating the section if needed.
func (j *Journal) Add(e *entry.Entry) {
	j.sections[e.Section] = append(j.sections[e.Section], e)
}

// All returns every entry in deterministic order: sections per Names,
// entries in file order within each.
func (j *Journal) All() []*entry.Entry {
	var out []*entry.Entry
	for _, name := range j.Names() {
		out = append(out, j.sections[name]...)
	}
	return out
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(n int) []*entry.Entry {
	all := j.All()
	sort.SliceStable(all, func(a, b int) bool {
		return all[a].Timestamp.After(all[b].Timestamp)
	})
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// Since returns every entry with a timestamp at or after t.
func (j *Journal) Since(t time.Time) []*entry.Entry {
	var out []*entry.Entry
	for _, e := range j.All() {
		if !e.Timestamp.Before(t) {
			out = append(out, e)
		}
	}
	return out
}

// Last returns the newest entry across all sections, or nil when the
// journal is empty.
func (j *Journal) Last() *entry.Entry {
	var last *entry.Entry
	for _, e := range j.All() {
		if last == nil || e.Timestamp.After(last.Timestamp) {
			last = e
		}
	}
	return last
}

// LastWhere returns the newest entry in the named section that
// satisfies pred, or nil when none does. A nil pred matches all.
func (j *Journal) LastWhere(section string, pred func(*entry.Entry) bool) *entry.Entry {
	var last *entry.Entry
	for _, e := range j.sections[section] {
		if pred != nil && !pred(e) {
			continue
		}
		if last == nil || e.Timestamp.After(last.Timestamp) {
			last = e
		}
	}
	return last
}

// FindByID locates an entry anywhere in the journal.
func (j *Journal) FindByID(id uuid.UUID) (*entry.Entry, bool) {
	for _, entries := range j.sections {
		for _, e := range entries {
			if e.ID == id {
				return e, true
			}
		}
	}
	return nil, false
}

// RemoveByID deletes the entry from whichever section holds it. The
// section stays behind even when it becomes empty.
func (j *Journal) RemoveByID(id uuid.UUID) bool {
	for name, entries := range j.sections {
		for i, e := range entries {
			if e.ID == id {
				j.sections[name] = append(entries[:i], entries[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Move relocates an entry to the end of the named section, creating
// the section if needed, and updates the entry's Section field.
func (j *Journal) Move(id uuid.UUID, to string) error {
	e, ok := j.FindByID(id)
	if !ok {
		return fmt.Errorf("journal: no entry with id %s", id)
	}
	if e.Section == to {
		return nil
	}
	j.RemoveByID(id)
	e.Section = to
	j.sections[to] = append(j.sections[to], e)
	return nil
}

// Prepend inserts entries at the front of the named section in the
// order given, creating the section if needed. Entries are rehomed to
// the section.
func (j *Journal) Prepend(name string, entries []*entry.Entry) {
	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		e.Section = name
	}
	j.sections[name] = append(append([]*entry.Entry{}, entries...), j.sections[name]...)
}

// AddSection creates a new empty section; it is an error if the name is
// already taken.
func (j *Journal) AddSection(name string) error {
	if j.Has(name) {
		return fmt.Errorf("journal: section %q already exists", name)
	}
	j.Ensure(name)
	return nil
}

// RemoveSection deletes the named section and returns the entries it
// held so the caller can rehome them.
func (j *Journal) RemoveSection(name string) ([]*entry.Entry, error) {
	entries, ok := j.sections[name]
	if !ok {
		return nil, fmt.Errorf("journal: section %q does not exist", name)
	}
	delete(j.sections, name)
	return entries, nil
}
