package finish

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

func seed(t *testing.T, p store.Persistence, descs ...string) {
	t.Helper()
	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	base := time.Now().Add(-time.Hour)
	for i, d := range descs {
		e := entry.New(d, journal.Default)
		e.Timestamp = base.Add(time.Duration(i) * time.Minute)
		j.Add(e)
	}
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
}

func byDesc(t *testing.T, p store.Persistence) map[string]*entry.Entry {
	t.Helper()
	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	out := map[string]*entry.Entry{}
	for _, e := range j.All() {
		out[e.Description] = e
	}
	return out
}

func TestFinishMarksNewestFirst(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "first", "second", "third")

	r := &Finish{Count: 2, Date: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := byDesc(t, p)
	if got["first"].IsDone() {
		t.Error("oldest entry should stay open")
	}
	if !got["second"].IsDone() || !got["third"].IsDone() {
		t.Error("two newest entries should be done")
	}
}

func TestFinishWithoutDateWritesBareTag(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "abandoned experiment")

	var out bytes.Buffer
	r := &Finish{Count: 1, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	e := byDesc(t, p)["abandoned experiment"]
	if v, ok := e.Tags[entry.DoneTag]; !ok || v != "" {
		t.Errorf("done tag = %q, %v; want empty value", v, ok)
	}
	if strings.Contains(out.String(), "@done(") {
		t.Errorf("output should not carry a timestamp: %q", out.String())
	}
}

func TestFinishSkipsAlreadyDone(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "wrapped")
	j, _ := p.Load()
	j.Last().MarkDone(time.Now())
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	r := &Finish{Count: 1, Date: true, Persistence: p, Out: &bytes.Buffer{}}
	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "No entries were finished") {
		t.Errorf("err = %v", err)
	}
}

func TestFinishUpdateRestamps(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "restamp me")
	j, _ := p.Load()
	j.Last().MarkDone(time.Now().Add(-30 * time.Minute))
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	r := &Finish{Count: 1, Date: true, Update: true, At: "2025-06-01 12:00", Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	e := byDesc(t, p)["restamp me"]
	if done := e.DoneTime(); done == nil || done.Format(entry.Stamp) != "2025-06-01 12:00" {
		t.Errorf("done time = %v", done)
	}
}

func TestFinishArchiveSweepsSection(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "ship it")

	r := &Finish{Count: 1, Date: true, Archive: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	e := byDesc(t, p)["ship it"]
	if e.Section != journal.Archive {
		t.Errorf("section = %q, want %q", e.Section, journal.Archive)
	}
}

func TestFinishUnfinishedTargetsOpenEntry(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "open one", "closed one")
	j, _ := p.Load()
	j.Last().MarkDone(time.Now())
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	r := &Finish{Count: 1, Date: true, Unfinished: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	if e := byDesc(t, p)["open one"]; !e.IsDone() {
		t.Error("open entry should have been finished")
	}
}

func TestFinishAutoUsesNextStart(t *testing.T) {
	p := testPersistence(t)
	seed(t, p, "morning work", "afternoon work")

	r := &Finish{Count: 1, Date: true, Auto: true, Search: "morning", Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := byDesc(t, p)
	done := got["morning work"].DoneTime()
	if done == nil {
		t.Fatal("missing done time")
	}
	want := got["afternoon work"].Timestamp.Add(-time.Minute)
	if !done.Equal(want) {
		t.Errorf("done = %v, want %v", done, want)
	}
}

func TestFinishNoMatches(t *testing.T) {
	p := testPersistence(t)
	r := &Finish{Count: 1, Date: true, Persistence: p, Out: &bytes.Buffer{}}
	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "No matching entries found to finish") {
		t.Errorf("err = %v", err)
	}
}
