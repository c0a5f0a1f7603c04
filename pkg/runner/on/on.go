package on

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lnds/daily-log/pkg/dates"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/printers"
	"github.com/lnds/daily-log/pkg/store"
)

// On lists the entries recorded on a given date or date range.
type On struct {
	Date string

	Filter filter.Options
	Print  printers.Options

	Persistence store.Persistence

	Out io.Writer
}

func (o *On) Do(ctx context.Context) error {
	now := time.Now()
	r, err := dates.ParseRange(o.Date, now)
	if err != nil {
		return err
	}
	if r.End == nil {
		day := r.Start.At
		end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
		r.End = &dates.Bound{At: end}
	}

	opts := o.Filter
	// --after and --before narrow within the day only when they name a
	// clock time; a date there would fight the range. A --from range
	// replaces them outright.
	if opts.After != nil && !opts.After.TimeOfDay {
		opts.After = nil
	}
	if opts.Before != nil && !opts.Before.TimeOfDay {
		opts.Before = nil
	}
	if opts.From != nil {
		opts.After = &opts.From.Start
		opts.Before = opts.From.End
	}
	opts.From = &r

	j, err := o.Persistence.Load()
	if err != nil {
		return err
	}
	matches, err := filter.Apply(j, opts)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintf(o.out(), "No entries found for %s\n", o.Date)
		return nil
	}

	p := printers.Printer{Out: o.Out, Options: o.Print}
	return p.Print(matches)
}

func (o *On) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}
