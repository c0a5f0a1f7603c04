package show

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

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

func seed(t *testing.T, p store.Persistence) {
	t.Helper()
	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	base := time.Now().Add(-time.Hour)

	first := entry.New("drafting the plan", journal.Default)
	first.Timestamp = base
	j.Add(first)

	second := entry.New("running the migration", journal.Default)
	second.Timestamp = base.Add(10 * time.Minute)
	second.SetTag("urgent", "")
	j.Add(second)

	queued := entry.New("clean the backlog", journal.Later)
	queued.Timestamp = base.Add(20 * time.Minute)
	j.Add(queued)

	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
}

func TestShowAllSections(t *testing.T) {
	p := testPersistence(t)
	seed(t, p)

	var out bytes.Buffer
	r := &Show{Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{"drafting the plan", "running the migration", "clean the backlog"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestShowSectionArgument(t *testing.T) {
	p := testPersistence(t)
	seed(t, p)

	var out bytes.Buffer
	r := &Show{Args: []string{journal.Later}, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "clean the backlog") {
		t.Errorf("missing Later entry: %q", got)
	}
	if strings.Contains(got, "drafting the plan") {
		t.Errorf("other sections should be excluded: %q", got)
	}
}

func TestShowTagArgument(t *testing.T) {
	p := testPersistence(t)
	seed(t, p)

	var out bytes.Buffer
	r := &Show{Args: []string{"@urgent"}, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "running the migration") {
		t.Errorf("missing tagged entry: %q", got)
	}
	if strings.Contains(got, "drafting the plan") {
		t.Errorf("untagged entries should be excluded: %q", got)
	}
}

func TestShowCountKeepsNewest(t *testing.T) {
	p := testPersistence(t)
	seed(t, p)

	var out bytes.Buffer
	r := &Show{Count: 1, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "clean the backlog") {
		t.Errorf("newest entry should survive the count: %q", got)
	}
	if strings.Contains(got, "drafting the plan") || strings.Contains(got, "running the migration") {
		t.Errorf("count should cut older entries: %q", got)
	}
}

func TestShowAscendingSort(t *testing.T) {
	p := testPersistence(t)
	seed(t, p)

	var out bytes.Buffer
	r := &Show{Sort: "asc", Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	oldest := strings.Index(got, "drafting the plan")
	newest := strings.Index(got, "clean the backlog")
	if oldest < 0 || newest < 0 || oldest > newest {
		t.Errorf("ascending sort should list oldest first: %q", got)
	}
}

func TestShowMenuUnimplemented(t *testing.T) {
	p := testPersistence(t)
	seed(t, p)

	r := &Show{Menu: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("menu mode should report it is not implemented")
	}
}
