package sections

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/store"
)

func testPersistence(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Open(&store.Config{
		DoingFile: filepath.Join(t.TempDir(), "daily-log.taskpaper"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAddSection(t *testing.T) {
	p := testPersistence(t)
	var out bytes.Buffer
	r := &Add{Name: "Reading", Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	if !j.Has("Reading") {
		t.Error("section should exist after add")
	}
	if !strings.Contains(out.String(), "Added section: Reading") {
		t.Errorf("output = %q", out.String())
	}
}

func TestAddDuplicateSection(t *testing.T) {
	p := testPersistence(t)
	r := &Add{Name: journal.Default, Persistence: p, Out: &bytes.Buffer{}}
	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v", err)
	}
}

func TestRemoveSection(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	j.AddSection("Scratch")
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	r := &Remove{Name: "Scratch", Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ = p.Load()
	if j.Has("Scratch") {
		t.Error("section should be gone")
	}
}

func TestRemoveDefaultSectionRefused(t *testing.T) {
	p := testPersistence(t)
	r := &Remove{Name: journal.Default, Persistence: p, Out: &bytes.Buffer{}}
	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "Cannot remove") {
		t.Errorf("err = %v", err)
	}
}

func TestRemoveSectionArchivesEntries(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	e := entry.New("orphaned work", "Scratch")
	j.Add(e)
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	r := &Remove{Name: "Scratch", Archive: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ = p.Load()
	archived := j.Entries(journal.Archive)
	if len(archived) != 1 || archived[0].Description != "orphaned work" {
		t.Errorf("archived = %+v", archived)
	}
}

func TestListSections(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	j.Add(entry.New("one thing", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &List{Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), journal.Default) || !strings.Contains(out.String(), "(1 entry)") {
		t.Errorf("output = %q", out.String())
	}
}
