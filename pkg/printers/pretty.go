package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/glyph"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/timeutil"
)

const maxDescWidth = 50

func (p *Printer) pretty(matches []filter.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(p.out(), "No entries found")
		return err
	}

	now := time.Now()
	faint := color.New(color.Faint)
	sectionColor := color.New(color.Faint, color.Italic)

	tbl := uitable.New()
	tbl.Separator = " "

	var total time.Duration
	for _, m := range matches {
		e := m.Entry

		var trailer []string
		if m.Section != journal.Default {
			trailer = append(trailer, sectionColor.Sprintf("[%s]", m.Section))
		}
		if d, ok := p.shownDuration(e, now); ok {
			total += d
			trailer = append(trailer, faint.Sprintf("(%s)", timeutil.FormatDuration(d)))
		}

		desc := e.Description
		if tags := p.formatTags(e); tags != "" {
			desc += " " + tags
		}
		if p.Options.Hilite && p.Options.Query != "" {
			desc = highlight(desc, p.Options.Query)
		}

		cell := truncate(desc, maxDescWidth)
		if e.Marker() == glyph.Canceled {
			cell = glyph.Strike(cell)
		}
		tbl.AddRow(
			faint.Sprint(e.DisplayDate(now)),
			e.Timestamp.Format("15:04"),
			marker(e),
			cell,
			strings.Join(trailer, " "),
		)

		if e.Note != "" {
			for _, line := range strings.Split(e.Note, "\n") {
				tbl.AddRow("", "", glyph.Note.String(), faint.Sprint(line), "")
			}
		}
	}
	tbl.RightAlign(0)

	if _, err := fmt.Fprintln(p.out(), tbl); err != nil {
		return err
	}

	if p.Options.Totals && total > 0 {
		if _, err := fmt.Fprintf(p.out(), "\n%s\nTotal: %s\n",
			faint.Sprint(strings.Repeat("═", 40)),
			timeutil.FormatDuration(total)); err != nil {
			return err
		}
	}
	return nil
}

// shownDuration yields the duration rendered next to an entry: time to
// completion for done entries when Times is on, time elapsed so far for
// open entries when Duration is on.
func (p *Printer) shownDuration(e *entry.Entry, now time.Time) (time.Duration, bool) {
	if p.Options.Times && e.IsDone() {
		if at, ok := e.DoneTime(); ok {
			return at.Sub(e.Timestamp), true
		}
		return 0, false
	}
	if p.Options.Duration && !e.IsDone() {
		return now.Sub(e.Timestamp), true
	}
	return 0, false
}

func marker(e *entry.Entry) string {
	m := e.Marker()
	switch m {
	case glyph.Done:
		return color.GreenString(m.String())
	case glyph.Canceled:
		return color.New(color.Faint).Sprint(m.String())
	case glyph.Flagged:
		return color.New(color.FgHiRed).Sprint(m.String())
	default:
		return m.String()
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func highlight(text, query string) string {
	if query == "" {
		return text
	}
	return strings.ReplaceAll(text, query, color.New(color.FgYellow).Sprint(query))
}
