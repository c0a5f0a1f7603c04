package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/journal"
)

func testStore(t *testing.T) Persistence {
	t.Helper()
	dir := t.TempDir()
	p, err := Open(&Config{
		DoingFile: filepath.Join(dir, "daily-log.taskpaper"),
		Backups:   true,
		BackupDir: filepath.Join(dir, "backups"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadMissingFileSeedsJournal(t *testing.T) {
	p := testStore(t)
	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !j.Has(journal.Default) {
		t.Errorf("fresh journal should have %s", journal.Default)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := testStore(t)
	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	e := entry.New("wrote a store test", journal.Default)
	e.SetTag("app", "store")
	j.Add(e)

	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	loaded, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	got := loaded.Entries(journal.Default)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Description != "wrote a store test" || got[0].ID != e.ID {
		t.Errorf("loaded entry = %+v", got[0])
	}
	if got[0].Tags["app"] != "store" {
		t.Errorf("tags = %v", got[0].Tags)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	p := testStore(t)
	j, _ := p.Load()
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(p.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestUndoRestoresPreviousContent(t *testing.T) {
	p := testStore(t)

	j, _ := p.Load()
	j.Add(entry.New("first version", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	j, _ = p.Load()
	j.Add(entry.New("second version", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	if err := p.Undo(); err != nil {
		t.Fatal(err)
	}
	restored, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	got := restored.Entries(journal.Default)
	if len(got) != 1 || got[0].Description != "first version" {
		t.Fatalf("restored entries = %v", got)
	}

	keys, err := p.Backups()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Errorf("undo should consume the snapshot, %d left", len(keys))
	}
}

func TestUndoWithoutBackups(t *testing.T) {
	dir := t.TempDir()
	p, err := Open(&Config{DoingFile: filepath.Join(dir, "log.taskpaper")})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Undo(); err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("expected disabled error, got %v", err)
	}
}

func TestUndoWithNothingToRestore(t *testing.T) {
	p := testStore(t)
	if err := p.Undo(); err == nil {
		t.Error("expected error when no snapshots exist")
	}
}

func TestConfigSection(t *testing.T) {
	cfg := &Config{DefaultSection: "Work"}
	if got := cfg.Section(""); got != "Work" {
		t.Errorf("Section(\"\") = %q", got)
	}
	if got := cfg.Section("later"); got != journal.Later {
		t.Errorf("Section(later) = %q", got)
	}
	var missing *Config
	if got := missing.Section(""); got != journal.Default {
		t.Errorf("nil config Section = %q", got)
	}
}
