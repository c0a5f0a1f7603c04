package recent

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/store"
)

// Recent lists the newest entries across the journal, or a whole
// section in file order when one is named.
type Recent struct {
	Count   int
	Section string

	Persistence store.Persistence

	Out io.Writer
}

func (r *Recent) Do(ctx context.Context) error {
	j, err := r.Persistence.Load()
	if err != nil {
		return err
	}

	var entries []*entry.Entry
	if r.Section != "" {
		entries = j.Entries(r.Section)
	} else {
		entries = j.Recent(r.Count)
	}
	if len(entries) == 0 {
		fmt.Fprintln(r.out(), "No entries found")
		return nil
	}

	section := ""
	for _, e := range entries {
		if e.Section != section {
			fmt.Fprintf(r.out(), "\n%s:\n", e.Section)
			section = e.Section
		}
		mark := ""
		if e.IsDone() {
			mark = "\u2713 "
		}
		fmt.Fprintf(r.out(), "  %s - %s%s\n", e.Timestamp.Format(entry.Stamp), mark, e.Description)
		if tags := e.TagListExcept(entry.DoneTag); len(tags) > 0 {
			fmt.Fprintf(r.out(), "      Tags: %s\n", strings.Join(tags, " "))
		}
		if e.Note != "" {
			for _, line := range strings.Split(e.Note, "\n") {
				fmt.Fprintf(r.out(), "      %s\n", line)
			}
		}
	}
	return nil
}

func (r *Recent) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
