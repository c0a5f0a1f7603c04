package since

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

// Since lists the entries recorded at or after a given date.
type Since struct {
	Date string

	Filter filter.Options
	Print  printers.Options

	Persistence store.Persistence

	Out io.Writer
}

func (s *Since) Do(ctx context.Context) error {
	b, err := dates.Parse(s.Date, time.Now())
	if err != nil {
		return err
	}

	opts := s.Filter
	opts.After = &b

	j, err := s.Persistence.Load()
	if err != nil {
		return err
	}
	matches, err := filter.Apply(j, opts)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintf(s.out(), "No entries found since %s\n", s.Date)
		return nil
	}

	p := printers.Printer{Out: s.Out, Options: s.Print}
	return p.Print(matches)
}

func (s *Since) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}
