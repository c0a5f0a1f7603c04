package last

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/store"
	"github.com/lnds/daily-log/pkg/timeutil"
)

// Last shows the newest entry in the journal and how long ago it was
// started.
type Last struct {
	Persistence store.Persistence

	Out io.Writer
}

func (l *Last) Do(ctx context.Context) error {
	j, err := l.Persistence.Load()
	if err != nil {
		return err
	}

	e := j.Last()
	if e == nil {
		fmt.Fprintln(l.out(), "No entries found")
		return nil
	}

	ago := timeutil.FormatAgo(time.Since(e.Timestamp))
	fmt.Fprintf(l.out(), "%s - %s (%s)\n", e.Timestamp.Format(entry.Stamp), e.Description, ago)
	if tags := e.TagList(); len(tags) > 0 {
		fmt.Fprintf(l.out(), "  Tags: %s\n", strings.Join(tags, " "))
	}
	if e.Note != "" {
		fmt.Fprintf(l.out(), "  Note: %s\n", e.Note)
	}
	return nil
}

func (l *Last) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}
