package show

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/printers"
	"github.com/lnds/daily-log/pkg/store"
)

// Show lists matching entries. Positional arguments name sections,
// except @words which add tag filters.
type Show struct {
	Args        []string
	Age         string
	Sort        string
	Count       int
	Interactive bool
	Menu        bool

	Filter filter.Options
	Print  printers.Options

	Persistence store.Persistence

	Out io.Writer
}

func (s *Show) Do(ctx context.Context) error {
	if s.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}
	if s.Menu {
		return fmt.Errorf("Menu mode not yet implemented")
	}

	opts := s.Filter
	for _, arg := range s.Args {
		switch {
		case strings.HasPrefix(arg, "@"):
			opts.Tags = append(opts.Tags, arg)
		case arg == "pick" || arg == "choose":
			return fmt.Errorf("Section menu not yet implemented")
		default:
			opts.Sections = append(opts.Sections, arg)
		}
	}

	j, err := s.Persistence.Load()
	if err != nil {
		return err
	}
	matches, err := filter.Apply(j, opts)
	if err != nil {
		return err
	}

	if s.Sort == "asc" {
		sort.SliceStable(matches, func(a, b int) bool {
			return matches[a].Entry.Timestamp.Before(matches[b].Entry.Timestamp)
		})
	} else {
		matches = filter.ByNewest(matches)
	}
	if s.Age == "oldest" {
		for i, k := 0, len(matches)-1; i < k; i, k = i+1, k-1 {
			matches[i], matches[k] = matches[k], matches[i]
		}
	}
	if s.Count > 0 && s.Count < len(matches) {
		matches = matches[:s.Count]
	}

	p := printers.Printer{Out: s.Out, Options: s.Print}
	return p.Print(matches)
}
