package reset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/dates"
	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/store"
	"github.com/lnds/daily-log/pkg/timeutil"
)

// Reset moves the start time of the most recent matching entry,
// resuming it unless told otherwise.
type Reset struct {
	Date        string
	Bool        string
	Case        string
	From        string
	Interactive bool
	NoResume    bool
	Not         bool
	Resume      bool
	Sections    []string
	Search      string
	Took        string
	Tag         string
	Val         []string
	Exact       bool

	Config      *store.Config
	Persistence store.Persistence

	Out io.Writer
}

func (r *Reset) Do(ctx context.Context) error {
	if r.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}

	j, err := r.Persistence.Load()
	if err != nil {
		return err
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: r.Sections,
		Search:   r.Search,
		Exact:    r.Exact,
		Case:     filter.ParseCase(r.Case),
		Strategy: filter.ParseStrategy(r.Bool),
		Tags:     filter.SplitTags(r.Tag),
		Val:      r.Val,
		Invert:   r.Not,
	})
	if err != nil {
		return err
	}
	matches = filter.ByNewest(matches)
	if len(matches) == 0 {
		return fmt.Errorf("No matching entry found")
	}
	e := matches[0].Entry

	now := time.Now()
	start := now
	switch {
	case r.From != "":
		s := r.From
		if i := strings.Index(s, " to "); i >= 0 {
			s = s[:i]
		}
		b, err := dates.Parse(strings.TrimSpace(s), now)
		if err != nil {
			return err
		}
		start = b.At
	case r.Date != "":
		b, err := dates.Parse(r.Date, now)
		if err != nil {
			return err
		}
		start = b.At
	}

	old := e.Timestamp
	e.Timestamp = start

	resumed := r.Resume && !r.NoResume && r.Took == ""
	if resumed {
		e.RemoveTag(entry.DoneTag)
	}
	if r.Took != "" {
		dur, err := timeutil.ParseInterval(r.Took)
		if err != nil {
			return fmt.Errorf("Invalid duration format")
		}
		e.MarkDone(start.Add(dur))
	}

	fmt.Fprintln(r.out(), "Reset start time for entry:")
	fmt.Fprintf(r.out(), "Old: %s: %s\n", old.Format(entry.Stamp), e.Description)
	fmt.Fprintf(r.out(), "New: %s: %s %s\n",
		e.Timestamp.Format(entry.Stamp), e.Description, strings.Join(e.TagList(), " "))
	if resumed && !old.Equal(e.Timestamp) {
		fmt.Fprintln(r.out(), "Entry resumed.")
	}

	return r.Persistence.Save(j)
}

func (r *Reset) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
