package remove

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
)

// Remove deletes the most recent matching entries after confirmation.
type Remove struct {
	Count       int
	Interactive bool
	Not         bool
	Sections    []string
	Search      string
	Tag         string
	Exact       bool
	Force       bool

	Config      *store.Config
	Persistence store.Persistence

	In  io.Reader
	Out io.Writer
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}

	j, err := r.Persistence.Load()
	if err != nil {
		return err
	}

	sections := r.Sections
	if len(sections) == 0 {
		sections = []string{r.Config.Section("")}
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: sections,
		Search:   r.Search,
		Exact:    r.Exact,
		Tags:     filter.SplitTags(r.Tag),
		Invert:   r.Not,
	})
	if err != nil {
		return err
	}
	matches = filter.ByNewest(matches)
	if r.Count < len(matches) {
		matches = matches[:r.Count]
	}
	if len(matches) == 0 {
		return fmt.Errorf("No matching entries found to delete")
	}

	if !r.Force {
		fmt.Fprintln(r.out(), "The following entries will be deleted:")
		for _, m := range matches {
			fmt.Fprintf(r.out(), "  %s | %s [%s]\n",
				m.Entry.Timestamp.Format(entry.Stamp), m.Entry.Description, m.Section)
		}
		question := fmt.Sprintf("\nAre you sure you want to delete %d %s? [y/N] ",
			len(matches), plural(len(matches)))
		ok, err := prompt.Confirm(r.out(), r.in(), question)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out(), "Deletion cancelled.")
			return nil
		}
	}

	deleted := 0
	for _, m := range matches {
		if j.RemoveByID(m.Entry.ID) {
			deleted++
			fmt.Fprintf(r.out(), "Deleted: %s | %s\n",
				m.Entry.Timestamp.Format(entry.Stamp), m.Entry.Description)
		}
	}

	if err := r.Persistence.Save(j); err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("No entries were deleted")
	}
	fmt.Fprintf(r.out(), "\nDeleted %d %s.\n", deleted, plural(deleted))
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

func (r *Remove) in() io.Reader {
	if r.In != nil {
		return r.In
	}
	return os.Stdin
}

func (r *Remove) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
