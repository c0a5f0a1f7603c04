package finish

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/lnds/daily-log/pkg/dates"
	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/store"
	"github.com/lnds/daily-log/pkg/timeutil"
)

var rangeRe = regexp.MustCompile(`(?i)(?:from\s+)?(.+?)\s+to\s+(.+)$`)

// Finish marks the most recent matching entries complete. With Date
// false the done tag is written without a timestamp, which is how
// cancel works.
type Finish struct {
	Count       int
	Archive     bool
	At          string
	Auto        bool
	Back        string
	From        string
	Interactive bool
	Not         bool
	Remove      bool
	Sections    []string
	Search      string
	Took        string
	Tag         string
	Unfinished  bool
	Update      bool
	Exact       bool
	Date        bool

	Config      *store.Config
	Persistence store.Persistence

	Out io.Writer
}

func (f *Finish) Do(ctx context.Context) error {
	if f.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}

	j, err := f.Persistence.Load()
	if err != nil {
		return err
	}

	sections := f.Sections
	if len(sections) == 0 {
		sections = []string{f.Config.Section("")}
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: sections,
		Search:   f.Search,
		Exact:    f.Exact,
		Tags:     filter.SplitTags(f.Tag),
		Invert:   f.Not,
	})
	if err != nil {
		return err
	}
	if f.Unfinished {
		kept := matches[:0]
		for _, m := range matches {
			if !m.Entry.IsDone() {
				kept = append(kept, m)
			}
		}
		matches = kept
	}
	matches = filter.ByNewest(matches)
	if f.Count < len(matches) {
		matches = matches[:f.Count]
	}
	if len(matches) == 0 {
		return fmt.Errorf("No matching entries found to finish")
	}

	finished := 0
	for _, m := range matches {
		e := m.Entry
		if e.IsDone() && !f.Update && !f.Remove {
			continue
		}

		if f.Remove {
			e.RemoveTag(entry.DoneTag)
			fmt.Fprintf(f.out(), "Removed @done tag from: %s\n", e.Description)
			finished++
			continue
		}

		doneTime, err := f.doneTime(j, e.Timestamp)
		if err != nil {
			return err
		}
		if f.Date {
			e.MarkDone(doneTime)
			fmt.Fprintf(f.out(), "%s: %s @done(%s)\n",
				e.Timestamp.Format(entry.Stamp), e.Description, doneTime.Format(entry.Stamp))
		} else {
			e.MarkDone(time.Time{})
			fmt.Fprintf(f.out(), "%s: %s @done\n",
				e.Timestamp.Format(entry.Stamp), e.Description)
		}
		finished++
	}

	if f.Archive && !f.Remove {
		var move []uuid.UUID
		for _, name := range sections {
			for _, e := range j.Entries(name) {
				if e.IsDone() {
					move = append(move, e.ID)
				}
			}
		}
		for _, id := range move {
			if err := j.Move(id, journal.Archive); err != nil {
				return err
			}
		}
	}

	if err := f.Persistence.Save(j); err != nil {
		return err
	}
	if finished == 0 {
		return fmt.Errorf("No entries were finished")
	}
	return nil
}

// doneTime resolves the completion time for one entry. --auto derives
// it from the next entry's start, --from takes the range end, otherwise
// the at/back/took flags decide.
func (f *Finish) doneTime(j *journal.Journal, start time.Time) (time.Time, error) {
	now := time.Now()
	switch {
	case f.Auto:
		return autoDoneTime(j, start, now), nil
	case f.From != "":
		m := rangeRe.FindStringSubmatch(f.From)
		if m == nil {
			return time.Time{}, fmt.Errorf("Invalid from format. Use: X to Y")
		}
		s, err := dates.Parse(m[1], now)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid start time: %s", m[1])
		}
		end, err := dates.Parse(m[2], s.At)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid end time: %s", m[2])
		}
		return end.At, nil
	case f.At != "":
		b, err := dates.Parse(f.At, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid date string: %s", f.At)
		}
		return b.At, nil
	case f.Back != "":
		b, err := dates.Parse(f.Back, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid date string: %s", f.Back)
		}
		return b.At, nil
	case f.Took != "":
		dur, err := timeutil.ParseInterval(f.Took)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid duration format: %s. Use XX[mhd] or HH:MM", f.Took)
		}
		return start.Add(dur), nil
	default:
		return now, nil
	}
}

// autoDoneTime picks one minute before the start of the next entry
// anywhere in the journal, falling back to now when the entry is the
// newest.
func autoDoneTime(j *journal.Journal, start, now time.Time) time.Time {
	var next time.Time
	for _, e := range j.All() {
		if !e.Timestamp.After(start) {
			continue
		}
		if next.IsZero() || e.Timestamp.Before(next) {
			next = e.Timestamp
		}
	}
	if next.IsZero() {
		return now
	}
	return next.Add(-time.Minute)
}

func (f *Finish) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}
