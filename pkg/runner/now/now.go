package now

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
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
)

var fromRe = regexp.MustCompile(`(?i)from\s+(.+?)(?:\s+to\s+(.+))?$`)

// Now starts a new entry, optionally finishing the previous one.
type Now struct {
	Words      []string
	Note       string
	Ask        bool
	Back       string
	From       string
	Section    string
	Editor     bool
	FinishLast bool

	Config      *store.Config
	Persistence store.Persistence

	In  io.Reader
	Out io.Writer
}

func (n *Now) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	section := n.Config.Section(n.Section)

	if n.FinishLast {
		if last := j.LastWhere(section, func(e *entry.Entry) bool { return !e.IsDone() }); last != nil {
			last.MarkDone(time.Now())
		}
	}

	var text string
	if len(n.Words) == 0 {
		if n.Editor {
			return fmt.Errorf("Editor support not yet implemented")
		}
		text, err = prompt.Line(n.out(), n.in(), "What are you doing now? ")
		if err != nil {
			return err
		}
	} else {
		text = strings.Join(n.Words, " ")
	}
	if text == "" {
		return fmt.Errorf("Entry text cannot be empty")
	}

	e, parenNote := entry.Compose(text, section)

	note := n.Note
	if note == "" {
		note = parenNote
	}
	if note == "" && n.Ask {
		note, err = prompt.Note(n.out(), n.in())
		if err != nil {
			return err
		}
	}

	now := time.Now()
	at := now
	switch {
	case n.Back != "":
		b, err := dates.Parse(n.Back, now)
		if err != nil {
			return fmt.Errorf("Invalid date string: %s", n.Back)
		}
		at = b.At
	case n.From != "":
		at, err = applyFromRange(n.From, now, e)
		if err != nil {
			return err
		}
	}
	e.Timestamp = at
	e.Note = note

	j.Add(e)
	if err := n.Persistence.Save(j); err != nil {
		return err
	}

	fmt.Fprintf(n.out(), "%s: %s\n", e.Timestamp.Format(entry.Stamp), e.Description)
	if tags := e.TagList(); len(tags) > 0 {
		fmt.Fprintf(n.out(), "  %s\n", strings.Join(tags, " "))
	}
	if e.Note != "" {
		lines := strings.Split(e.Note, "\n")
		fmt.Fprintf(n.out(), "  Note: %s\n", lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(n.out(), "        %s\n", line)
		}
	}
	return nil
}

// applyFromRange reads "from TIME [to TIME]", returns the start time
// and, when an end is given, marks the entry done at the end time.
func applyFromRange(s string, now time.Time, e *entry.Entry) (time.Time, error) {
	m := fromRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("Invalid from format. Use: from TIME [to TIME]")
	}
	start, err := dates.Parse(m[1], now)
	if err != nil {
		return time.Time{}, fmt.Errorf("Invalid start time: %s", m[1])
	}
	if m[2] != "" {
		end, err := dates.Parse(m[2], start.At)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid end time: %s", m[2])
		}
		e.MarkDone(end.At)
	}
	return start.At, nil
}

func (n *Now) in() io.Reader {
	if n.In != nil {
		return n.In
	}
	return os.Stdin
}

func (n *Now) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}
