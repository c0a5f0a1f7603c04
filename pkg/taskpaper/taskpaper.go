// Package taskpaper reads and writes the plain-text journal format: one
// section header per line, task lines carrying a timestamp, tags and a
// uuid, and indented note lines attached to the task above them.
package taskpaper

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/journal"
)

var (
	// taskRe matches a task line: a dash marker, a minute-precision
	// timestamp, a pipe separator, the description clause, and an
	// optional trailing <uuid>. Leading indentation is tolerated.
	taskRe = regexp.MustCompile(`^\s*- (\d{4}-\d{2}-\d{2} \d{2}:\d{2}) \| (.*?)(?: <([^<>]*)>)?\s*$`)

	// tagRe matches @name and @name(value) anywhere in the clause.
	tagRe = regexp.MustCompile(`@(\w+)(?:\(([^)]+)\))?`)
)

// Parse builds a journal from raw file text. It never fails: lines that
// match nothing are skipped, a bad timestamp falls back to the current
// time and a bad or missing uuid is replaced with a fresh one, so one
// mangled line never loses the rest of the file.
func Parse(raw string) *journal.Journal {
	j := journal.NewEmpty()
	section := journal.Default
	var open *entry.Entry

	flush := func() {
		if open != nil {
			j.Add(open)
			open = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			continue
		}
		// Header before task: a task line keeps its uuid suffix, so a
		// line ending in ':' is always a header.
		if strings.HasSuffix(trimmed, ":") && len(trimmed) > 1 {
			flush()
			section = journal.Normalize(strings.TrimRight(trimmed, ":"))
			j.Ensure(section)
			continue
		}
		if m := taskRe.FindStringSubmatch(line); m != nil {
			flush()
			open = parseTask(m, section)
			continue
		}
		if open != nil && strings.HasPrefix(line, "  ") {
			open.AppendNote(strings.TrimLeft(line, " \t"))
			continue
		}
		// Anything else is noise and dropped.
	}
	flush()
	return j
}

func parseTask(m []string, section string) *entry.Entry {
	ts, err := entry.ParseStamp(m[1])
	if err != nil {
		ts = time.Now()
	}

	clause := m[2]
	tags := map[string]string{}
	for _, t := range tagRe.FindAllStringSubmatch(clause, -1) {
		tags[t[1]] = t[2]
	}

	id, err := uuid.Parse(m[3])
	if err != nil {
		id = uuid.New()
	}

	return &entry.Entry{
		ID:          id,
		Description: strings.TrimSpace(tagRe.ReplaceAllString(clause, "")),
		Timestamp:   ts,
		Section:     section,
		Tags:        tags,
	}
}

// Serialize renders the journal back to file text. The default section
// comes first and the rest follow in name order, so the same journal
// always produces the same bytes. Every section is written, empty ones
// included, separated by single blank lines.
func Serialize(j *journal.Journal) string {
	var b strings.Builder
	for _, name := range j.Names() {
		b.WriteString(name)
		b.WriteString(":\n")
		for _, e := range j.Entries(name) {
			b.WriteString(e.TaskLine())
			b.WriteByte('\n')
			if e.Note != "" {
				for _, noteLine := range strings.Split(e.Note, "\n") {
					b.WriteString("  ")
					b.WriteString(noteLine)
					b.WriteByte('\n')
				}
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), " \t\n")
}
