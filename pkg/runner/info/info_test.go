package info

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

func TestInfo(t *testing.T) {
	t.Setenv("DAILYLOG_CONFIG", "")
	cfg := &store.Config{
		DoingFile: filepath.Join(t.TempDir(), "daily-log.taskpaper"),
	}
	p, err := store.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	j, _ := p.Load()
	j.Add(entry.New("first task", journal.Default))
	j.Add(entry.New("second task", journal.Default))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &Info{Config: cfg, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{
		"DAILYLOG_CONFIG env var not set",
		"Journal file: " + cfg.DoingFile,
		"Default section: " + journal.Default,
		"Backups: disabled",
		"Sections",
		journal.Default,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestInfoCountsBackups(t *testing.T) {
	t.Setenv("DAILYLOG_CONFIG", "")
	dir := t.TempDir()
	cfg := &store.Config{
		DoingFile: filepath.Join(dir, "daily-log.taskpaper"),
		Backups:   true,
		BackupDir: filepath.Join(dir, "backups"),
	}
	p, err := store.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, desc := range []string{"first", "second"} {
		j, _ := p.Load()
		j.Add(entry.New(desc, journal.Default))
		if err := p.Save(j); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	r := &Info{Config: cfg, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Backups: 1 under "+cfg.BackupDir) {
		t.Errorf("output = %q", out.String())
	}
}
