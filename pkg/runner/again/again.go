package again

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
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
)

// Again duplicates the most recent matching entry as a fresh start.
type Again struct {
	Ask         bool
	Back        string
	Bool        string
	Case        string
	Editor      bool
	Interactive bool
	In          string
	Note        string
	Not         bool
	Sections    []string
	Search      string
	Tag         string
	Val         []string
	Exact       bool

	Config      *store.Config
	Persistence store.Persistence

	Input  io.Reader
	Output io.Writer
}

func (a *Again) Do(ctx context.Context) error {
	if a.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}
	if a.Editor {
		return fmt.Errorf("Editor mode not yet implemented")
	}

	j, err := a.Persistence.Load()
	if err != nil {
		return err
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: a.Sections,
		Search:   a.Search,
		Exact:    a.Exact,
		Case:     filter.ParseCase(a.Case),
		Tags:     filter.SplitTags(a.Tag),
		Strategy: filter.ParseStrategy(a.Bool),
		Val:      a.Val,
		Invert:   a.Not,
	})
	if err != nil {
		return err
	}
	matches = filter.ByNewest(matches)
	if len(matches) == 0 {
		return fmt.Errorf("No matching entry found to duplicate")
	}
	src := matches[0].Entry

	at := time.Now()
	if a.Back != "" {
		b, err := dates.Parse(a.Back, at)
		if err != nil {
			return fmt.Errorf("Invalid date string: %s", a.Back)
		}
		at = b.At
	}

	e := src.Duplicate(at)
	if a.In != "" {
		e.Section = a.In
	}

	// Duplicate copied the source note; --note replaces it and --ask
	// replaces it with whatever is typed, even nothing.
	switch {
	case a.Note != "":
		e.Note = a.Note
	case a.Ask:
		note, err := prompt.Note(a.out(), a.in())
		if err != nil {
			return err
		}
		e.Note = note
	}

	j.Add(e)
	if err := a.Persistence.Save(j); err != nil {
		return err
	}

	fmt.Fprintf(a.out(), "%s: %s\n", e.Timestamp.Format(entry.Stamp), e.Description)
	if e.Note != "" {
		for _, line := range strings.Split(e.Note, "\n") {
			fmt.Fprintf(a.out(), "  %s\n", line)
		}
	}
	return nil
}

func (a *Again) in() io.Reader {
	if a.Input != nil {
		return a.Input
	}
	return os.Stdin
}

func (a *Again) out() io.Writer {
	if a.Output != nil {
		return a.Output
	}
	return os.Stdout
}
