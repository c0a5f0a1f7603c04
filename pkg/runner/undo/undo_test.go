package undo

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
	dir := t.TempDir()
	p, err := store.Open(&store.Config{
		DoingFile: filepath.Join(dir, "daily-log.taskpaper"),
		Backups:   true,
		BackupDir: filepath.Join(dir, "backups"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestUndoRestoresPreviousSave(t *testing.T) {
	p := testPersistence(t)

	j, _ := p.Load()
	j.Add(entry.New("first", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
	j.Add(entry.New("second", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &Undo{Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Restored") {
		t.Errorf("output = %q", out.String())
	}

	j, _ = p.Load()
	entries := j.Entries(journal.Default)
	if len(entries) != 1 || entries[0].Description != "first" {
		t.Fatalf("after undo = %+v", entries)
	}
}

func TestUndoStepsBackThroughSaves(t *testing.T) {
	p := testPersistence(t)

	j, _ := p.Load()
	j.Add(entry.New("first", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
	j.Add(entry.New("second", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
	j.Add(entry.New("third", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		r := &Undo{Persistence: p, Out: &bytes.Buffer{}}
		if err := r.Do(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	j, _ = p.Load()
	entries := j.Entries(journal.Default)
	if len(entries) != 1 || entries[0].Description != "first" {
		t.Fatalf("after two undos = %+v", entries)
	}
}

func TestUndoNothingLeft(t *testing.T) {
	p := testPersistence(t)

	var out bytes.Buffer
	r := &Undo{Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Nothing to undo") {
		t.Errorf("output = %q", out.String())
	}
}
