package tags

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/store"
)

// Tags tallies how often each tag appears across the matching entries.
type Tags struct {
	MaxCount int

	Counts      bool
	Line        bool
	Order       string
	Sort        string
	Interactive bool

	Sections []string
	Search   string
	Tag      string
	Val      []string
	Case     string
	Exact    bool
	Not      bool

	Persistence store.Persistence

	Out io.Writer
}

type tally struct {
	name  string
	count int
}

func (t *Tags) Do(ctx context.Context) error {
	j, err := t.Persistence.Load()
	if err != nil {
		return err
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: t.Sections,
		Search:   t.Search,
		Exact:    t.Exact,
		Case:     filter.ParseCase(t.Case),
		Tags:     filter.SplitTags(t.Tag),
		Val:      t.Val,
		Invert:   t.Not,
	})
	if err != nil {
		return err
	}

	counts := map[string]int{}
	for _, m := range matches {
		for name := range m.Entry.Tags {
			counts[name]++
		}
	}
	if len(counts) == 0 {
		fmt.Fprintln(t.out(), "No tags found")
		return nil
	}

	sorted := make([]tally, 0, len(counts))
	for name, n := range counts {
		sorted = append(sorted, tally{name: name, count: n})
	}
	switch t.Sort {
	case "count", "time":
		sort.Slice(sorted, func(a, b int) bool {
			if sorted[a].count != sorted[b].count {
				return sorted[a].count > sorted[b].count
			}
			return sorted[a].name < sorted[b].name
		})
	default:
		sort.Slice(sorted, func(a, b int) bool {
			return sorted[a].name < sorted[b].name
		})
	}
	if t.Order == "desc" {
		for a, b := 0, len(sorted)-1; a < b; a, b = a+1, b-1 {
			sorted[a], sorted[b] = sorted[b], sorted[a]
		}
	}
	if t.MaxCount > 0 && len(sorted) > t.MaxCount {
		sorted = sorted[:t.MaxCount]
	}

	if t.Interactive {
		fmt.Fprintln(t.out(), "Interactive mode not yet implemented")
		return nil
	}

	if t.Line {
		parts := make([]string, 0, len(sorted))
		for _, tl := range sorted {
			if t.Counts {
				parts = append(parts, fmt.Sprintf("@%s(%d)", tl.name, tl.count))
			} else {
				parts = append(parts, "@"+tl.name)
			}
		}
		fmt.Fprintln(t.out(), strings.Join(parts, " "))
		return nil
	}

	if t.Counts {
		tbl := uitable.New()
		tbl.Separator = " "
		for _, tl := range sorted {
			tbl.AddRow(tl.name, fmt.Sprintf("(%d)", tl.count))
		}
		fmt.Fprintln(t.out(), tbl)
		return nil
	}
	for _, tl := range sorted {
		fmt.Fprintln(t.out(), tl.name)
	}
	return nil
}

func (t *Tags) out() io.Writer {
	if t.Out != nil {
		return t.Out
	}
	return os.Stdout
}
