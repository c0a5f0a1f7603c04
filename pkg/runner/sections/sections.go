package sections

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gosuri/uitable"

	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/store"
)

// List prints every section alphabetically, with entry counts unless
// Column asks for bare names.
type List struct {
	Column bool

	Persistence store.Persistence

	Out io.Writer
}

func (l *List) Do(ctx context.Context) error {
	j, err := l.Persistence.Load()
	if err != nil {
		return err
	}

	names := j.Names()
	sort.Strings(names)

	if l.Column {
		for _, name := range names {
			fmt.Fprintln(l.out(), name)
		}
		return nil
	}

	counts := j.Counts()
	tbl := uitable.New()
	tbl.Separator = " "
	for _, name := range names {
		n := counts[name]
		noun := "entries"
		if n == 1 {
			noun = "entry"
		}
		tbl.AddRow(name, fmt.Sprintf("(%d %s)", n, noun))
	}
	fmt.Fprintln(l.out(), tbl)
	return nil
}

func (l *List) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

// Add creates a new empty section.
type Add struct {
	Name string

	Persistence store.Persistence

	Out io.Writer
}

func (a *Add) Do(ctx context.Context) error {
	j, err := a.Persistence.Load()
	if err != nil {
		return err
	}

	if j.Has(a.Name) {
		return fmt.Errorf("Section '%s' already exists", a.Name)
	}
	if err := j.AddSection(a.Name); err != nil {
		return err
	}
	if err := a.Persistence.Save(j); err != nil {
		return err
	}

	fmt.Fprintf(a.out(), "Added section: %s\n", a.Name)
	return nil
}

func (a *Add) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

// Remove deletes a section, optionally rehoming its entries at the top
// of the Archive section first.
type Remove struct {
	Name    string
	Archive bool

	Persistence store.Persistence

	Out io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	j, err := r.Persistence.Load()
	if err != nil {
		return err
	}

	if !j.Has(r.Name) {
		return fmt.Errorf("Section '%s' does not exist", r.Name)
	}
	if r.Name == journal.Default {
		return fmt.Errorf("Cannot remove the '%s' section", journal.Default)
	}

	entries, err := j.RemoveSection(r.Name)
	if err != nil {
		return err
	}
	if r.Archive && len(entries) > 0 {
		j.Prepend(journal.Archive, entries)
	}
	if err := r.Persistence.Save(j); err != nil {
		return err
	}

	fmt.Fprintf(r.out(), "Removed section: %s\n", r.Name)
	return nil
}

func (r *Remove) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
