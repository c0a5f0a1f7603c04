package yesterday

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

// Yesterday displays everything logged during the previous calendar day.
type Yesterday struct {
	After  string
	Before string
	From   string

	Filter filter.Options
	Print  printers.Options

	Persistence store.Persistence

	Out io.Writer
}

func (y *Yesterday) Do(ctx context.Context) error {
	j, err := y.Persistence.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	day := now.AddDate(0, 0, -1)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())

	opts := y.Filter
	opts.From = &dates.Range{Start: dates.Bound{At: start}, End: &dates.Bound{At: end}}

	// --after, --before, and --from carry a clock time. Whatever date the
	// parser attached to it, the time is moved onto yesterday.
	if y.After != "" {
		b, err := dates.Parse(y.After, now)
		if err != nil {
			return err
		}
		bnd := anchor(b, day)
		opts.After = &bnd
	}
	if y.Before != "" {
		b, err := dates.Parse(y.Before, now)
		if err != nil {
			return err
		}
		bnd := anchor(b, day)
		opts.Before = &bnd
	}
	if y.From != "" {
		r, err := dates.ParseRange(y.From, now)
		if err != nil {
			return err
		}
		bnd := anchor(r.Start, day)
		opts.After = &bnd
		if r.End != nil {
			bnd := anchor(*r.End, day)
			opts.Before = &bnd
		}
	}

	matches, err := filter.Apply(j, opts)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(y.out(), "No entries found for yesterday")
		return nil
	}

	p := printers.Printer{Out: y.out(), Options: y.Print}
	return p.Print(matches)
}

func anchor(b dates.Bound, day time.Time) dates.Bound {
	at := b.At
	return dates.Bound{At: time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), at.Second(), 0, day.Location())}
}

func (y *Yesterday) out() io.Writer {
	if y.Out != nil {
		return y.Out
	}
	return os.Stdout
}
