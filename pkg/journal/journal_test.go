package journal

import (
	"testing"
	"time"

	"github.com/lnds/daily-log/pkg/entry"
)

func stamped(desc, section string, ts time.Time) *entry.Entry {
	e := entry.New(desc, section)
	e.Timestamp = ts
	return e
}

func TestNewSeedsDefaultSection(t *testing.T) {
	j := New()
	if !j.Has(Default) {
		t.Fatalf("new journal should contain the %s section", Default)
	}
	if got := len(j.Entries(Default)); got != 0 {
		t.Fatalf("default section should start empty, got %d entries", got)
	}
}

func TestNamesOrdering(t *testing.T) {
	j := NewEmpty()
	j.Ensure("Projects")
	j.Ensure("Archive")
	j.Ensure(Default)
	j.Ensure("Beta")

	got := j.Names()
	want := []string{Default, "Archive", "Beta", "Projects"}
	if len(got) != len(want) {
		t.Fatalf("Names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names = %v, want %v", got, want)
		}
	}
}

func TestNamesWithoutDefault(t *testing.T) {
	j := NewEmpty()
	j.Ensure("Work")
	j.Ensure("Archive")
	got := j.Names()
	if len(got) != 2 || got[0] != "Archive" || got[1] != "Work" {
		t.Fatalf("Names = %v, want [Archive Work]", got)
	}
}

func TestAddCreatesSection(t *testing.T) {
	j := New()
	j.Add(stamped("sketch design", "Projects", time.Now()))
	if !j.Has("Projects") {
		t.Fatalf("Add should create the entry's section")
	}
	if got := len(j.Entries("Projects")); got != 1 {
		t.Fatalf("Projects has %d entries, want 1", got)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	j := New()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	j.Add(stamped("oldest", Default, base))
	j.Add(stamped("newest", Default, base.Add(2*time.Hour)))
	j.Add(stamped("middle", "Archive", base.Add(time.Hour)))

	got := j.Recent(2)
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d entries", len(got))
	}
	if got[0].Description != "newest" || got[1].Description != "middle" {
		t.Errorf("Recent order = %q, %q", got[0].Description, got[1].Description)
	}
}

func TestSince(t *testing.T) {
	j := New()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	j.Add(stamped("before", Default, base.Add(-time.Hour)))
	j.Add(stamped("at", Default, base))
	j.Add(stamped("after", Default, base.Add(time.Hour)))

	got := j.Since(base)
	if len(got) != 2 {
		t.Fatalf("Since returned %d entries, want 2", len(got))
	}
}

func TestLast(t *testing.T) {
	j := New()
	if j.Last() != nil {
		t.Fatalf("empty journal should have no last entry")
	}
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	j.Add(stamped("early", Default, base))
	j.Add(stamped("late", "Projects", base.Add(time.Minute)))
	if got := j.Last(); got == nil || got.Description != "late" {
		t.Fatalf("Last = %v, want the late entry", got)
	}
}

func TestMoveUpdatesSectionField(t *testing.T) {
	j := New()
	e := stamped("park it", Default, time.Now())
	j.Add(e)

	if err := j.Move(e.ID, Archive); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if e.Section != Archive {
		t.Errorf("entry section = %q, want %q", e.Section, Archive)
	}
	if len(j.Entries(Default)) != 0 {
		t.Errorf("entry still present in %s", Default)
	}
	if len(j.Entries(Archive)) != 1 {
		t.Errorf("entry missing from %s", Archive)
	}
}

func TestMoveAppendsToDestination(t *testing.T) {
	j := New()
	older := stamped("already archived", Archive, time.Now().Add(-time.Hour))
	j.Add(older)
	e := stamped("fresh", Default, time.Now())
	j.Add(e)

	if err := j.Move(e.ID, Archive); err != nil {
		t.Fatalf("Move: %v", err)
	}
	got := j.Entries(Archive)
	if len(got) != 2 || got[1].Description != "fresh" {
		t.Fatalf("moved entry should land at the end, got %v", got)
	}
}

func TestPrependKeepsOrderAndRehomes(t *testing.T) {
	j := New()
	j.Add(stamped("old resident", Archive, time.Now().Add(-time.Hour)))

	a := stamped("first", Default, time.Now())
	b := stamped("second", Default, time.Now())
	j.Prepend(Archive, []*entry.Entry{a, b})

	got := j.Entries(Archive)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Description != "first" || got[1].Description != "second" {
		t.Errorf("prepended entries out of order: %q, %q", got[0].Description, got[1].Description)
	}
	if a.Section != Archive || b.Section != Archive {
		t.Errorf("prepended entries not rehomed: %q, %q", a.Section, b.Section)
	}
}

func TestRemoveByIDKeepsEmptySection(t *testing.T) {
	j := New()
	e := stamped("only one", "Scratch", time.Now())
	j.Add(e)

	if !j.RemoveByID(e.ID) {
		t.Fatalf("RemoveByID should find the entry")
	}
	if !j.Has("Scratch") {
		t.Errorf("emptied section must be preserved until explicit removal")
	}
	if j.RemoveByID(e.ID) {
		t.Errorf("second removal should report not found")
	}
}

func TestAddSectionDuplicate(t *testing.T) {
	j := New()
	if err := j.AddSection("Work"); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if err := j.AddSection("Work"); err == nil {
		t.Fatalf("duplicate AddSection should fail")
	}
}

func TestRemoveSection(t *testing.T) {
	j := New()
	j.Add(stamped("a", "Work", time.Now()))
	j.Add(stamped("b", "Work", time.Now()))

	entries, err := j.RemoveSection("Work")
	if err != nil {
		t.Fatalf("RemoveSection: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("RemoveSection returned %d entries, want 2", len(entries))
	}
	if j.Has("Work") {
		t.Errorf("section should be gone")
	}
	if _, err := j.RemoveSection("Work"); err == nil {
		t.Errorf("removing a missing section should fail")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"currently", Default},
		{"Current", Default},
		{"later", Later},
		{"ARCHIVED", Archive},
		{" Archive ", Archive},
		{"Projects", "Projects"},
		{" My Stuff ", "My Stuff"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
