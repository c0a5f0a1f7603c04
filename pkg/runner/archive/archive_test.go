package archive

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

func seedSection(t *testing.T, p store.Persistence, section string, descs ...string) {
	t.Helper()
	j, err := p.Load()
	if err != nil {
		t.Fatal(err)
	}
	base := time.Now().Add(-time.Hour)
	for i, d := range descs {
		e := entry.New(d, section)
		e.Timestamp = base.Add(time.Duration(i) * time.Minute)
		j.Add(e)
	}
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}
}

func TestArchiveByTag(t *testing.T) {
	p := testPersistence(t)
	seedSection(t, p, journal.Default, "still going", "all wrapped")
	j, _ := p.Load()
	j.Last().MarkDone(time.Now())
	if err := p.Save(j); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	r := &Archive{Target: "@done", Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ = p.Load()
	for _, e := range j.All() {
		switch e.Description {
		case "all wrapped":
			if e.Section != journal.Archive {
				t.Errorf("done entry section = %q", e.Section)
			}
		case "still going":
			if e.Section != journal.Default {
				t.Errorf("open entry section = %q", e.Section)
			}
		}
	}
	if !strings.Contains(out.String(), "Moved 1 entry from Currently to Archive") {
		t.Errorf("output = %q", out.String())
	}
}

func TestArchiveWholeSection(t *testing.T) {
	p := testPersistence(t)
	seedSection(t, p, journal.Default, "one", "two")

	var out bytes.Buffer
	r := &Archive{Target: journal.Default, Persistence: p, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	if n := len(j.Entries(journal.Archive)); n != 2 {
		t.Errorf("archive holds %d entries, want 2", n)
	}
	if !strings.Contains(out.String(), "Moved 2 entries") {
		t.Errorf("output = %q", out.String())
	}
}

func TestArchiveKeepLeavesNewest(t *testing.T) {
	p := testPersistence(t)
	seedSection(t, p, journal.Default, "oldest", "middle", "newest")

	r := &Archive{Target: journal.Default, Keep: 2, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	if n := len(j.Entries(journal.Default)); n != 2 {
		t.Errorf("section holds %d entries, want 2", n)
	}
	archived := j.Entries(journal.Archive)
	if len(archived) != 1 || archived[0].Description != "oldest" {
		t.Errorf("archived = %+v, want just the oldest", archived)
	}
}

func TestArchiveLabelsSource(t *testing.T) {
	p := testPersistence(t)
	seedSection(t, p, journal.Later, "someday project")

	r := &Archive{Target: journal.Later, Label: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	e := j.Entries(journal.Archive)[0]
	if !e.HasTag("from_later") {
		t.Errorf("tags = %v, want from_later", e.Tags)
	}
}

func TestArchiveSkipsLabelForDefaultSection(t *testing.T) {
	p := testPersistence(t)
	seedSection(t, p, journal.Default, "routine work")

	r := &Archive{Target: journal.Default, Label: true, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	e := j.Entries(journal.Archive)[0]
	if e.HasTag("from_currently") {
		t.Errorf("tags = %v, default section must not be labelled", e.Tags)
	}
}

func TestArchiveMissingSection(t *testing.T) {
	p := testPersistence(t)

	var errOut bytes.Buffer
	r := &Archive{Target: "Nonesuch", Persistence: p, Out: &bytes.Buffer{}, ErrOut: &errOut}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(errOut.String(), "Section 'Nonesuch' not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestArchivePutsNewArrivalsOnTop(t *testing.T) {
	p := testPersistence(t)
	seedSection(t, p, journal.Archive, "long archived")
	seedSection(t, p, journal.Default, "fresh move")

	r := &Archive{Target: journal.Default, Persistence: p, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatal(err)
	}

	j, _ := p.Load()
	archived := j.Entries(journal.Archive)
	if len(archived) != 2 || archived[0].Description != "fresh move" {
		t.Errorf("archive order = %+v, want fresh move first", archived)
	}
}
