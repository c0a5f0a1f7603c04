package today

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/store"
)

// Today prints a plain rundown of everything logged since midnight.
type Today struct {
	Section string

	Persistence store.Persistence

	Out io.Writer
}

func (t *Today) Do(ctx context.Context) error {
	j, err := t.Persistence.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	entries := j.Since(midnight)

	if t.Section != "" {
		kept := entries[:0]
		for _, e := range entries {
			if e.Section == t.Section {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	if len(entries) == 0 {
		fmt.Fprintln(t.out(), "No entries for today")
		return nil
	}

	fmt.Fprintln(t.out(), "Today's entries:")
	section := ""
	for _, e := range entries {
		if e.Section != section {
			fmt.Fprintf(t.out(), "\n%s:\n", e.Section)
			section = e.Section
		}
		mark := ""
		if e.IsDone() {
			mark = "\u2713 "
		}
		fmt.Fprintf(t.out(), "  %s - %s%s\n", e.Timestamp.Format("15:04"), mark, e.Description)
		if e.Note != "" {
			for _, line := range strings.Split(e.Note, "\n") {
				fmt.Fprintf(t.out(), "      %s\n", line)
			}
		}
	}
	return nil
}

func (t *Today) out() io.Writer {
	if t.Out != nil {
		return t.Out
	}
	return os.Stdout
}
