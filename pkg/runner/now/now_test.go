package now

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

func TestNowAddsEntry(t *testing.T) {
	p := testPersistence(t)
	var out bytes.Buffer
	r := &Now{Words: []string{"writing", "docs"}, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	e := j.Last()
	if e == nil {
		t.Fatal("expected an entry")
	}
	if e.Description != "writing docs" {
		t.Errorf("description = %q", e.Description)
	}
	if e.Section != journal.Default {
		t.Errorf("section = %q, want %q", e.Section, journal.Default)
	}
	if !strings.Contains(out.String(), "writing docs") {
		t.Errorf("output missing description: %q", out.String())
	}
}

func TestNowExtractsTagsAndNote(t *testing.T) {
	p := testPersistence(t)
	r := &Now{
		Words:       []string{"deploy", "@env(prod)", "(watch", "the", "dashboards)"},
		Persistence: p,
		Out:         &bytes.Buffer{},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	e := j.Last()
	if e.Description != "deploy" {
		t.Errorf("description = %q, want deploy", e.Description)
	}
	if v, ok := e.Tags["env"]; !ok || v != "prod" {
		t.Errorf("tags = %v, want env=prod", e.Tags)
	}
	if e.Note != "watch the dashboards" {
		t.Errorf("note = %q", e.Note)
	}
}

func TestNowFinishesPrevious(t *testing.T) {
	p := testPersistence(t)
	first := &Now{Words: []string{"first", "task"}, Persistence: p, Out: &bytes.Buffer{}}
	if err := first.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	second := &Now{Words: []string{"second", "task"}, FinishLast: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := second.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	var prev *entry.Entry
	for _, e := range j.Entries(journal.Default) {
		if e.Description == "first task" {
			prev = e
		}
	}
	if prev == nil {
		t.Fatal("first task missing")
	}
	if !prev.IsDone() {
		t.Error("previous entry should be done")
	}
}

func TestNowBackdates(t *testing.T) {
	p := testPersistence(t)
	r := &Now{Words: []string{"standup"}, Back: "2025-06-01 09:30", Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	got := j.Entries(journal.Default)[0].Timestamp.Format(entry.Stamp)
	if got != "2025-06-01 09:30" {
		t.Errorf("timestamp = %q", got)
	}
}

func TestNowFromRangeFinishesEntry(t *testing.T) {
	p := testPersistence(t)
	r := &Now{
		Words:       []string{"sprint", "review"},
		From:        "from 2025-06-01 10:00 to 2025-06-01 11:00",
		Persistence: p,
		Out:         &bytes.Buffer{},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	e := j.Entries(journal.Default)[0]
	if e.Timestamp.Format(entry.Stamp) != "2025-06-01 10:00" {
		t.Errorf("start = %q", e.Timestamp.Format(entry.Stamp))
	}
	if !e.IsDone() {
		t.Fatal("entry should be done")
	}
	if done := e.DoneTime(); done == nil || done.Format(entry.Stamp) != "2025-06-01 11:00" {
		t.Errorf("done time = %v", done)
	}
}

func TestNowRejectsEmptyText(t *testing.T) {
	p := testPersistence(t)
	r := &Now{Persistence: p, In: strings.NewReader("\n"), Out: &bytes.Buffer{}}
	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "cannot be empty") {
		t.Errorf("err = %v", err)
	}
}
