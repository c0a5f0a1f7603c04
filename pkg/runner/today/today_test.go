package today

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

func TestTodaySkipsOlderEntries(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	old := entry.New("yesterday's grind", journal.Default)
	old.Timestamp = time.Now().Add(-24 * time.Hour)
	j.Add(old)
	fresh := entry.New("today's push", journal.Default)
	fresh.MarkDone(time.Now())
	j.Add(fresh)
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &Today{Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if strings.Contains(got, "yesterday's grind") {
		t.Errorf("output should not list older entries: %q", got)
	}
	if !strings.Contains(got, "✓ today's push") {
		t.Errorf("done entry should carry a check mark: %q", got)
	}
	if !strings.Contains(got, "Today's entries:") {
		t.Errorf("missing header: %q", got)
	}
}

func TestTodayEmpty(t *testing.T) {
	p := testPersistence(t)
	var out bytes.Buffer
	r := &Today{Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No entries for today") {
		t.Errorf("output = %q", out.String())
	}
}

func TestTodaySectionFilter(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	j.Add(entry.New("main work", journal.Default))
	j.Add(entry.New("queued idea", journal.Later))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &Today{Section: journal.Later, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if strings.Contains(got, "main work") || !strings.Contains(got, "queued idea") {
		t.Errorf("output = %q", got)
	}
}
