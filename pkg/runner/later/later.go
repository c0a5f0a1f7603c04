package later

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/store"
)

var tagRe = regexp.MustCompile(`^@?(\w+)(?:\(([^)]+)\))?$`)

// Later files a task under the Later section instead of starting it.
type Later struct {
	Words []string
	Tags  []string
	Note  string

	Persistence store.Persistence

	Out io.Writer
}

func (l *Later) Do(ctx context.Context) error {
	j, err := l.Persistence.Load()
	if err != nil {
		return err
	}

	desc := strings.Join(l.Words, " ")
	if desc == "" {
		return fmt.Errorf("Task description cannot be empty")
	}

	e := entry.New(desc, journal.Later)
	for _, raw := range l.Tags {
		m := tagRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		e.SetTag(m[1], m[2])
	}
	if l.Note != "" {
		e.Note = l.Note
	}

	j.Add(e)
	if err := l.Persistence.Save(j); err != nil {
		return err
	}

	fmt.Fprintf(l.out(), "Added to Later: %s\n", e.Description)
	return nil
}

func (l *Later) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}
