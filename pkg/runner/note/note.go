package note

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
)

// Note edits the note on the most recent matching entry.
type Note struct {
	Words       []string
	Ask         bool
	Editor      bool
	Remove      bool
	Interactive bool
	Sections    []string
	Search      string
	Tag         string
	Bool        string
	Case        string
	Val         []string
	Exact       bool
	Not         bool

	Config      *store.Config
	Persistence store.Persistence

	In  io.Reader
	Out io.Writer
}

func (n *Note) Do(ctx context.Context) error {
	if n.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}
	if n.Editor {
		return fmt.Errorf("Editor mode not yet implemented")
	}

	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: n.Sections,
		Search:   n.Search,
		Exact:    n.Exact,
		Case:     filter.ParseCase(n.Case),
		Tags:     filter.SplitTags(n.Tag),
		Strategy: filter.ParseStrategy(n.Bool),
		Val:      n.Val,
		Invert:   n.Not,
	})
	if err != nil {
		return err
	}
	matches = filter.ByNewest(matches)
	if len(matches) == 0 {
		return fmt.Errorf("No matching entry found")
	}
	e := matches[0].Entry

	text := strings.Join(n.Words, " ")
	if text == "" && n.Ask {
		text, err = prompt.Note(n.out(), n.in())
		if err != nil {
			return err
		}
	}

	switch {
	case n.Remove && text == "":
		e.Note = ""
		fmt.Fprintf(n.out(), "Note removed from: %s\n", e.Description)
	case n.Remove:
		e.Note = text
		fmt.Fprintf(n.out(), "Note replaced for: %s\n", e.Description)
		n.printNote(e.Note)
	case text != "":
		e.AppendNote(text)
		fmt.Fprintf(n.out(), "Note added to: %s\n", e.Description)
		n.printNote(e.Note)
	default:
		return nil
	}

	return n.Persistence.Save(j)
}

func (n *Note) printNote(note string) {
	for _, line := range strings.Split(note, "\n") {
		fmt.Fprintf(n.out(), "  %s\n", line)
	}
}

func (n *Note) in() io.Reader {
	if n.In != nil {
		return n.In
	}
	return os.Stdin
}

func (n *Note) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return os.Stdout
}
