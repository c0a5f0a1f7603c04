package on

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

func add(t *testing.T, j *journal.Journal, desc, stamp string) {
	t.Helper()
	ts, err := time.ParseInLocation(entry.Stamp, stamp, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	e := entry.New(desc, journal.Default)
	e.Timestamp = ts
	j.Add(e)
}

func TestOnSingleDay(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	add(t, j, "morning fix", "2025-06-01 09:00")
	add(t, j, "evening fix", "2025-06-01 21:30")
	add(t, j, "next day", "2025-06-02 09:00")
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &On{Date: "2025-06-01", Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "morning fix") || !strings.Contains(got, "evening fix") {
		t.Errorf("entries on the day missing: %q", got)
	}
	if strings.Contains(got, "next day") {
		t.Errorf("entries outside the day leaked: %q", got)
	}
}

func TestOnDateRange(t *testing.T) {
	p := testPersistence(t)
	j, _ := p.Load()
	add(t, j, "inside range", "2025-06-02 12:00")
	add(t, j, "outside range", "2025-06-07 12:00")
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &On{Date: "2025-06-01 to 2025-06-03", Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, "inside range") {
		t.Errorf("range entry missing: %q", got)
	}
	if strings.Contains(got, "outside range") {
		t.Errorf("entry past the range leaked: %q", got)
	}
}

func TestOnNoMatches(t *testing.T) {
	p := testPersistence(t)
	var out bytes.Buffer
	r := &On{Date: "2025-06-01", Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No entries found for 2025-06-01") {
		t.Errorf("output = %q", out.String())
	}
}

func TestOnBadDate(t *testing.T) {
	p := testPersistence(t)
	r := &On{Date: "not a date at all", Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err == nil {
		t.Fatal("expected a parse error")
	}
}
