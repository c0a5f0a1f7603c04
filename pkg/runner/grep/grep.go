package grep

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/printers"
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
)

// Grep searches entries by pattern and shows or deletes the matches.
type Grep struct {
	Pattern     string
	Delete      bool
	Interactive bool

	Filter filter.Options
	Print  printers.Options

	Persistence store.Persistence

	In  io.Reader
	Out io.Writer
}

func (g *Grep) Do(ctx context.Context) error {
	if g.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}

	j, err := g.Persistence.Load()
	if err != nil {
		return err
	}

	opts := g.Filter
	opts.Search = g.Pattern
	matches, err := filter.Apply(j, opts)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintf(g.out(), "No entries found matching '%s'\n", g.Pattern)
		return nil
	}

	if g.Delete {
		return g.deleteMatches(j, matches)
	}

	p := printers.Printer{Out: g.Out, Options: g.Print}
	return p.Print(matches)
}

func (g *Grep) deleteMatches(j *journal.Journal, matches []filter.Match) error {
	noun := "entries"
	rest := "entries"
	if len(matches) == 1 {
		noun = "entry"
		rest = ""
	}
	question := fmt.Sprintf("Delete %s matching %s? [y/N] ", noun, rest)
	ok, err := prompt.Confirm(g.out(), g.in(), question)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(g.out(), "Deletion cancelled.")
		return nil
	}

	for _, m := range matches {
		j.RemoveByID(m.Entry.ID)
	}
	if err := g.Persistence.Save(j); err != nil {
		return err
	}
	fmt.Fprintf(g.out(), "Deleted %d %s.\n", len(matches), noun)
	return nil
}

func (g *Grep) in() io.Reader {
	if g.In != nil {
		return g.In
	}
	return os.Stdin
}

func (g *Grep) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}
