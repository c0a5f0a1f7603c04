package done

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/dates"
	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
	"github.com/lnds/daily-log/pkg/timeutil"
)

var rangeRe = regexp.MustCompile(`(?i)(?:from\s+)?(.+?)\s+to\s+(.+)$`)

// Done marks the last entry complete, or records a new already-finished
// entry when task text is given.
type Done struct {
	Words      []string
	Note       string
	Ask        bool
	Back       string
	At         string
	Took       string
	From       string
	Section    string
	Editor     bool
	Archive    bool
	Remove     bool
	Unfinished bool

	Config      *store.Config
	Persistence store.Persistence

	In  io.Reader
	Out io.Writer
}

func (d *Done) Do(ctx context.Context) error {
	j, err := d.Persistence.Load()
	if err != nil {
		return err
	}

	if d.Remove {
		return d.removeLast(j)
	}
	if len(d.Words) == 0 {
		return d.markLast(j)
	}
	return d.record(j)
}

// removeLast strips the done tag from the newest completed entry in the
// target section.
func (d *Done) removeLast(j *journal.Journal) error {
	section := d.Config.Section(d.Section)
	last := j.LastWhere(section, func(e *entry.Entry) bool { return e.IsDone() })
	if last == nil {
		return fmt.Errorf("No completed entries found to remove @done tag from")
	}
	last.RemoveTag(entry.DoneTag)
	if err := d.Persistence.Save(j); err != nil {
		return err
	}
	fmt.Fprintf(d.out(), "Removed @done tag from: %s\n", last.Description)
	return nil
}

// markLast completes the newest entry in the target section.
func (d *Done) markLast(j *journal.Journal) error {
	section := d.Config.Section(d.Section)
	last := j.LastWhere(section, func(e *entry.Entry) bool {
		return !d.Unfinished || !e.IsDone()
	})
	if last == nil {
		return fmt.Errorf("No entries found to mark as done")
	}
	if last.IsDone() && !d.Unfinished {
		return fmt.Errorf("Last entry is already marked @done")
	}

	doneTime, err := d.doneTime(last.Timestamp)
	if err != nil {
		return err
	}
	last.MarkDone(doneTime)

	if d.Archive {
		if err := j.Move(last.ID, journal.Archive); err != nil {
			return err
		}
	}

	if err := d.Persistence.Save(j); err != nil {
		return err
	}
	fmt.Fprintf(d.out(), "%s: %s @done(%s)\n",
		last.Timestamp.Format(entry.Stamp), last.Description, doneTime.Format(entry.Stamp))
	return nil
}

// record adds a brand new entry that is already finished.
func (d *Done) record(j *journal.Journal) error {
	if d.Editor {
		return fmt.Errorf("Editor support not yet implemented")
	}
	text := strings.Join(d.Words, " ")
	if text == "" {
		return fmt.Errorf("Entry text cannot be empty")
	}

	section := d.Config.Section(d.Section)
	if d.Archive {
		section = journal.Archive
	}
	e, parenNote := entry.Compose(text, section)

	note := d.Note
	if note == "" {
		note = parenNote
	}
	if note == "" && d.Ask {
		var err error
		note, err = prompt.Note(d.out(), d.in())
		if err != nil {
			return err
		}
	}

	now := time.Now()
	var start, done time.Time
	var err error
	if d.From != "" {
		start, done, err = parseFromRange(d.From, now)
	} else {
		start, done, err = calculateTimes(d.Back, d.At, d.Took, now)
	}
	if err != nil {
		return err
	}

	e.Timestamp = start
	e.MarkDone(done)
	e.Note = note

	j.Add(e)
	if err := d.Persistence.Save(j); err != nil {
		return err
	}

	fmt.Fprintf(d.out(), "%s: %s @done(%s)\n",
		e.Timestamp.Format(entry.Stamp), e.Description, done.Format(entry.Stamp))
	if tags := e.TagListExcept(entry.DoneTag); len(tags) > 0 {
		fmt.Fprintf(d.out(), "  %s\n", strings.Join(tags, " "))
	}
	if e.Note != "" {
		lines := strings.Split(e.Note, "\n")
		fmt.Fprintf(d.out(), "  Note: %s\n", lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(d.out(), "        %s\n", line)
		}
	}
	return nil
}

// doneTime resolves the completion time for an existing entry: --at
// wins, --took counts from the entry's start, otherwise now.
func (d *Done) doneTime(start time.Time) (time.Time, error) {
	if d.At != "" {
		b, err := dates.Parse(d.At, time.Now())
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid date string: %s", d.At)
		}
		return b.At, nil
	}
	if d.Took != "" {
		dur, err := parseTook(d.Took)
		if err != nil {
			return time.Time{}, err
		}
		return start.Add(dur), nil
	}
	return time.Now(), nil
}

// calculateTimes resolves start and completion for a new entry from the
// --back, --at and --took flags.
func calculateTimes(back, at, took string, now time.Time) (time.Time, time.Time, error) {
	if at != "" {
		b, err := dates.Parse(at, now)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid date string: %s", at)
		}
		done := b.At
		switch {
		case took != "":
			dur, err := parseTook(took)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			return done.Add(-dur), done, nil
		case back != "":
			s, err := dates.Parse(back, now)
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("Invalid date string: %s", back)
			}
			return s.At, done, nil
		default:
			return done, done, nil
		}
	}
	if took != "" {
		dur, err := parseTook(took)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if back != "" {
			s, err := dates.Parse(back, now)
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("Invalid date string: %s", back)
			}
			return s.At, now, nil
		}
		return now.Add(-dur), now, nil
	}
	if back != "" {
		s, err := dates.Parse(back, now)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid date string: %s", back)
		}
		return s.At, now, nil
	}
	return now, now, nil
}

// parseFromRange reads "X to Y" with an optional leading "from". Both
// ends are required; the end parses relative to the start.
func parseFromRange(s string, now time.Time) (time.Time, time.Time, error) {
	m := rangeRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("Invalid from format. Use: X to Y")
	}
	start, err := dates.Parse(m[1], now)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("Invalid start time: %s", m[1])
	}
	end, err := dates.Parse(m[2], start.At)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("Invalid end time: %s", m[2])
	}
	return start.At, end.At, nil
}

func parseTook(s string) (time.Duration, error) {
	dur, err := timeutil.ParseInterval(s)
	if err != nil {
		return 0, fmt.Errorf("Invalid duration format: %s. Use XX[dhms] or HH:MM", s)
	}
	return dur, nil
}

func (d *Done) in() io.Reader {
	if d.In != nil {
		return d.In
	}
	return os.Stdin
}

func (d *Done) out() io.Writer {
	if d.Out != nil {
		return d.Out
	}
	return os.Stdout
}
