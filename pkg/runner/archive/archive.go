package archive

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
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/store"
)

// Archive moves matching entries into another section, newest at the
// top. Target names either a source section or, with a leading @, a
// tag to collect from every section.
type Archive struct {
	Target string

	After  string
	Before string
	Case   string
	From   string
	Keep   int
	Label  bool
	Not    bool
	Search string
	To     string
	Tag    string
	Val    []string
	Exact  bool

	Persistence store.Persistence

	Out    io.Writer
	ErrOut io.Writer
}

func (a *Archive) Do(ctx context.Context) error {
	j, err := a.Persistence.Load()
	if err != nil {
		return err
	}

	to := a.To
	if to == "" {
		to = journal.Archive
	}

	tags := filter.SplitTags(a.Tag)
	var sections []string
	switch {
	case strings.HasPrefix(a.Target, "@"):
		tags = append(tags, "+"+strings.TrimPrefix(a.Target, "@"))
		sections = j.Names()
	case a.Target != "":
		if !j.Has(a.Target) {
			fmt.Fprintf(a.errOut(), "Section '%s' not found\n", a.Target)
			return nil
		}
		sections = []string{a.Target}
	default:
		sections = j.Names()
	}
	// Never drain the destination into itself.
	kept := sections[:0]
	for _, name := range sections {
		if name != to {
			kept = append(kept, name)
		}
	}
	sections = kept
	if len(sections) == 0 {
		fmt.Fprintln(a.out(), "No entries found matching the specified criteria")
		return nil
	}

	now := time.Now()
	opts := filter.Options{
		Sections: sections,
		Search:   a.Search,
		Exact:    a.Exact,
		Case:     filter.ParseCase(a.Case),
		Tags:     tags,
		Val:      a.Val,
		Invert:   a.Not,
	}
	if a.After != "" {
		b, err := dates.Parse(a.After, now)
		if err != nil {
			return fmt.Errorf("Invalid date string: %s", a.After)
		}
		opts.After = &b
	}
	if a.Before != "" {
		b, err := dates.Parse(a.Before, now)
		if err != nil {
			return fmt.Errorf("Invalid date string: %s", a.Before)
		}
		opts.Before = &b
	}
	if a.From != "" {
		r, err := dates.ParseRange(a.From, now)
		if err != nil {
			return fmt.Errorf("Invalid date string: %s", a.From)
		}
		opts.From = &r
	}

	matches, err := filter.Apply(j, opts)
	if err != nil {
		return err
	}

	bySection := map[string][]*entry.Entry{}
	var order []string
	for _, m := range matches {
		if _, ok := bySection[m.Section]; !ok {
			order = append(order, m.Section)
		}
		bySection[m.Section] = append(bySection[m.Section], m.Entry)
	}

	moved := 0
	var sources []string
	for _, name := range order {
		picked := bySection[name]
		// Entries sit in file order, oldest first. Keep leaves the
		// newest n where they are and moves the rest.
		if a.Keep > 0 {
			if len(picked) <= a.Keep {
				continue
			}
			picked = picked[:len(picked)-a.Keep]
		}
		for _, e := range picked {
			j.RemoveByID(e.ID)
			if a.Label && name != journal.Default {
				e.SetTag("from_"+strings.ToLower(name), "")
			}
		}
		j.Prepend(to, picked)
		moved += len(picked)
		sources = append(sources, name)
	}

	if moved == 0 {
		fmt.Fprintln(a.out(), "No entries found matching the specified criteria")
		return nil
	}
	if err := a.Persistence.Save(j); err != nil {
		return err
	}

	noun := "entries"
	if moved == 1 {
		noun = "entry"
	}
	fmt.Fprintf(a.out(), "Moved %d %s from %s to %s\n", moved, noun, strings.Join(sources, ", "), to)
	return nil
}

func (a *Archive) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *Archive) errOut() io.Writer {
	if a.ErrOut != nil {
		return a.ErrOut
	}
	return os.Stderr
}
