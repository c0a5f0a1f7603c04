// Package printers renders filtered entries for people and for
// machines: a pretty table by default, plus json, csv, markdown, html,
// taskpaper and timeline exports.
package printers

import (
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
)

// Format names an output rendering.
type Format int

const (
	FormatDefault Format = iota
	FormatJSON
	FormatCSV
	FormatMarkdown
	FormatHTML
	FormatTaskPaper
	FormatTimeline
)

// ParseFormat maps the -o flag spellings onto a Format; anything
// unrecognized renders the default table.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "csv":
		return FormatCSV
	case "markdown":
		return FormatMarkdown
	case "html":
		return FormatHTML
	case "taskpaper":
		return FormatTaskPaper
	case "timeline":
		return FormatTimeline
	default:
		return FormatDefault
	}
}

// SortOrder orders rendered tag lists.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// ParseSortOrder maps "desc" to descending, anything else ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == "desc" {
		return SortDesc
	}
	return SortAsc
}

// Options controls rendering. Times folds completion durations into
// done entries; Duration shows elapsed time on open ones; Totals sums
// whatever durations were shown.
type Options struct {
	Times    bool
	Duration bool
	Totals   bool
	Hilite   bool
	Query    string
	Format   Format
	TagOrder SortOrder
}

// Printer writes entries to Out, or to color.Output when Out is nil.
type Printer struct {
	Out     io.Writer
	Options Options
}

// Print renders the matches in the configured format.
func (p *Printer) Print(matches []filter.Match) error {
	switch p.Options.Format {
	case FormatJSON:
		return p.json(matches)
	case FormatCSV:
		return p.csv(matches)
	case FormatMarkdown:
		return p.markdown(matches)
	case FormatHTML:
		return p.html(matches)
	case FormatTaskPaper:
		return p.taskpaper(matches)
	case FormatTimeline:
		return p.timeline(matches)
	default:
		return p.pretty(matches)
	}
}

func (p *Printer) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return color.Output
}

// formatTags renders an entry's tags name-sorted, reversed for
// descending order.
func (p *Printer) formatTags(e *entry.Entry) string {
	list := e.TagList()
	if p.Options.TagOrder == SortDesc {
		sort.Sort(sort.Reverse(sort.StringSlice(list)))
	}
	return strings.Join(list, " ")
}
