package printers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/journal"
	"github.com/lnds/daily-log/pkg/timeutil"
)

const dateHeading = "Monday, January 02, 2006"

type jsonEntry struct {
	Section     string             `json:"section"`
	Timestamp   string             `json:"timestamp"`
	Description string             `json:"description"`
	Tags        map[string]*string `json:"tags"`
	Note        *string            `json:"note"`
	UUID        string             `json:"uuid"`
}

func (p *Printer) json(matches []filter.Match) error {
	out := make([]jsonEntry, 0, len(matches))
	for _, m := range matches {
		e := m.Entry
		tags := make(map[string]*string, len(e.Tags))
		for name, value := range e.Tags {
			if value == "" {
				tags[name] = nil
				continue
			}
			v := value
			tags[name] = &v
		}
		je := jsonEntry{
			Section:     m.Section,
			Timestamp:   e.Timestamp.Format(time.RFC3339),
			Description: e.Description,
			Tags:        tags,
			UUID:        e.ID.String(),
		}
		if e.Note != "" {
			note := e.Note
			je.Note = &note
		}
		out = append(out, je)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("printers: marshal entries: %w", err)
	}
	_, err = fmt.Fprintln(p.out(), string(data))
	return err
}

func (p *Printer) csv(matches []filter.Match) error {
	w := csv.NewWriter(p.out())
	if err := w.Write([]string{"timestamp", "description", "section", "tags", "note", "uuid"}); err != nil {
		return fmt.Errorf("printers: write csv: %w", err)
	}
	for _, m := range matches {
		e := m.Entry
		row := []string{
			e.Timestamp.Format(time.RFC3339),
			e.Description,
			m.Section,
			strings.Join(e.TagList(), " "),
			e.Note,
			e.ID.String(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("printers: write csv: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func (p *Printer) markdown(matches []filter.Match) error {
	var b strings.Builder
	b.WriteString("# Daily Log\n")

	var day string
	for _, m := range matches {
		e := m.Entry
		if heading := e.Timestamp.Format(dateHeading); heading != day {
			day = heading
			b.WriteString("\n## " + heading + "\n\n")
		}

		b.WriteString("- **" + e.Timestamp.Format("15:04") + "** - " + e.Description)
		if tags := p.formatTags(e); tags != "" {
			b.WriteString(" " + tags)
		}
		if m.Section != journal.Default {
			b.WriteString(" _[" + m.Section + "]_")
		}
		b.WriteByte('\n')

		if e.Note != "" {
			for _, line := range strings.Split(e.Note, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	_, err := fmt.Fprint(p.out(), b.String())
	return err
}

func (p *Printer) html(matches []filter.Match) error {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <title>Daily Log</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; }
        .entry { margin: 10px 0; padding: 10px; border-left: 3px solid #007acc; }
        .timestamp { font-weight: bold; color: #666; }
        .tags { color: #007acc; }
        .section { color: #999; font-style: italic; }
        .note { margin-left: 20px; color: #666; font-style: italic; }
    </style>
</head>
<body>
    <h1>Daily Log</h1>
`)

	for _, m := range matches {
		e := m.Entry
		b.WriteString("    <div class=\"entry\">\n")
		b.WriteString("        <span class=\"timestamp\">" + e.Timestamp.Format(entry.Stamp) + "</span> - " + html.EscapeString(e.Description))
		if tags := p.formatTags(e); tags != "" {
			b.WriteString(" <span class=\"tags\">" + html.EscapeString(tags) + "</span>")
		}
		if m.Section != journal.Default {
			b.WriteString(" <span class=\"section\">[" + html.EscapeString(m.Section) + "]</span>")
		}
		b.WriteByte('\n')
		if e.Note != "" {
			b.WriteString("        <div class=\"note\">" + html.EscapeString(e.Note) + "</div>\n")
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	_, err := fmt.Fprint(p.out(), b.String())
	return err
}

// taskpaper renders the matches in the journal file format, grouped by
// section in first-seen order.
func (p *Printer) taskpaper(matches []filter.Match) error {
	var order []string
	grouped := map[string][]*entry.Entry{}
	for _, m := range matches {
		if _, ok := grouped[m.Section]; !ok {
			order = append(order, m.Section)
		}
		grouped[m.Section] = append(grouped[m.Section], m.Entry)
	}

	var b strings.Builder
	for _, name := range order {
		b.WriteString(name + ":\n")
		for _, e := range grouped[name] {
			b.WriteString(e.TaskLine() + "\n")
			if e.Note != "" {
				for _, line := range strings.Split(e.Note, "\n") {
					b.WriteString("  " + line + "\n")
				}
			}
		}
		b.WriteByte('\n')
	}

	_, err := fmt.Fprint(p.out(), b.String())
	return err
}

func (p *Printer) timeline(matches []filter.Match) error {
	if len(matches) == 0 {
		return nil
	}

	var b strings.Builder
	var day string
	for _, m := range matches {
		e := m.Entry
		if heading := e.Timestamp.Format(dateHeading); heading != day {
			day = heading
			b.WriteString("\n══════════════════ " + heading + " ══════════════════\n")
		}

		b.WriteString(e.Timestamp.Format("15:04") + " ")
		if p.Options.Times && e.IsDone() {
			if at, ok := e.DoneTime(); ok {
				b.WriteString("(" + timeutil.FormatDuration(at.Sub(e.Timestamp)) + ") ")
			}
		}
		b.WriteString("│ " + e.Description)
		if tags := p.formatTags(e); tags != "" {
			b.WriteString(" " + tags)
		}
		if m.Section != journal.Default {
			b.WriteString(" [" + m.Section + "]")
		}
		b.WriteByte('\n')

		if e.Note != "" {
			for _, line := range strings.Split(e.Note, "\n") {
				b.WriteString("      │   " + line + "\n")
			}
		}
	}

	_, err := fmt.Fprint(p.out(), b.String())
	return err
}
