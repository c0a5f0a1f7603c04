// Package filter selects entries out of a journal. An Options value
// describes the whole query; Apply runs the stages in a fixed order
// and either returns the matching (section, entry) pairs or a
// descriptive error for a bad search pattern, value query or bound.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lnds/daily-log/pkg/dates"
	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/journal"
)

// Case picks how search and tag-name matching treat letter case.
type Case int

const (
	// CaseSmart is case-sensitive only when the query itself contains
	// an uppercase letter.
	CaseSmart Case = iota
	CaseSensitive
	CaseIgnore
)

// ParseCase maps the CLI flag spellings onto a Case.
func ParseCase(s string) Case {
	switch strings.ToLower(s) {
	case "c", "case-sensitive":
		return CaseSensitive
	case "i", "ignore":
		return CaseIgnore
	default:
		return CaseSmart
	}
}

// Strategy picks how a list of tag tokens combines.
type Strategy int

const (
	// StrategyPattern reads +name as required, -name as excluded and
	// bare names as an any-of group.
	StrategyPattern Strategy = iota
	StrategyAnd
	StrategyOr
	StrategyNot
)

// ParseStrategy maps the CLI flag spellings onto a Strategy.
func ParseStrategy(s string) Strategy {
	switch strings.ToLower(s) {
	case "and":
		return StrategyAnd
	case "or":
		return StrategyOr
	case "not":
		return StrategyNot
	default:
		return StrategyPattern
	}
}

// Options is one complete filter query.
type Options struct {
	Sections  []string
	Search    string
	Exact     bool
	Case      Case
	Tags      []string
	Strategy  Strategy
	After     *dates.Bound
	Before    *dates.Bound
	From      *dates.Range
	OnlyTimed bool
	Val       []string
	Invert    bool
}

// Match is one entry together with the section it came from.
type Match struct {
	Section string
	Entry   *entry.Entry
}

// ByNewest returns the matches reordered newest first. The input slice
// is left alone.
func ByNewest(in []Match) []Match {
	out := append([]Match{}, in...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Entry.Timestamp.After(out[b].Entry.Timestamp)
	})
	return out
}

// Apply runs the query against the journal. The journal is never
// mutated; entries appear in section order, file order within each
// section.
func Apply(j *journal.Journal, opts Options) ([]Match, error) {
	matches := collect(j, opts.Sections)

	if opts.After != nil {
		matches = keepAfter(matches, *opts.After)
	}
	if opts.Before != nil {
		matches = keepBefore(matches, *opts.Before)
	}
	if opts.From != nil {
		matches = keepWithin(matches, *opts.From)
	}
	if opts.Search != "" {
		var err error
		matches, err = search(matches, opts.Search, opts.Exact, opts.Case)
		if err != nil {
			return nil, err
		}
	}
	if len(opts.Tags) > 0 {
		matches = matchTags(matches, opts.Tags, opts.Strategy)
	}
	if opts.OnlyTimed {
		matches = keep(matches, func(e *entry.Entry) bool { return e.IsDone() })
	}
	if len(opts.Val) > 0 {
		var err error
		matches, err = matchValues(matches, opts.Val)
		if err != nil {
			return nil, err
		}
	}
	if opts.Invert {
		matches = invert(j, opts.Sections, matches)
	}
	return matches, nil
}

// collect gathers candidates. With no sections requested every section
// contributes, in journal order; otherwise the requested sections
// contribute in the order given, unknown names silently skipped.
func collect(j *journal.Journal, sections []string) []Match {
	names := j.Names()
	if len(sections) > 0 {
		names = names[:0:0]
		for _, name := range sections {
			if j.Has(name) {
				names = append(names, name)
			}
		}
	}

	var out []Match
	for _, name := range names {
		for _, e := range j.Entries(name) {
			out = append(out, Match{Section: name, Entry: e})
		}
	}
	return out
}

// invert recomputes the unfiltered candidates for the same sections and
// subtracts the matched set by entry id, never by field equality.
func invert(j *journal.Journal, sections []string, matched []Match) []Match {
	drop := make(map[uuid.UUID]struct{}, len(matched))
	for _, m := range matched {
		drop[m.Entry.ID] = struct{}{}
	}

	all := collect(j, sections)
	out := make([]Match, 0, len(all))
	for _, m := range all {
		if _, ok := drop[m.Entry.ID]; !ok {
			out = append(out, m)
		}
	}
	return out
}

func keep(in []Match, pred func(*entry.Entry) bool) []Match {
	out := make([]Match, 0, len(in))
	for _, m := range in {
		if pred(m.Entry) {
			out = append(out, m)
		}
	}
	return out
}

func keepAfter(in []Match, b dates.Bound) []Match {
	if b.TimeOfDay {
		bound := secondOfDay(b.At)
		return keep(in, func(e *entry.Entry) bool { return secondOfDay(e.Timestamp) >= bound })
	}
	return keep(in, func(e *entry.Entry) bool { return !e.Timestamp.Before(b.At) })
}

func keepBefore(in []Match, b dates.Bound) []Match {
	if b.TimeOfDay {
		bound := secondOfDay(b.At)
		return keep(in, func(e *entry.Entry) bool { return secondOfDay(e.Timestamp) <= bound })
	}
	return keep(in, func(e *entry.Entry) bool { return !e.Timestamp.After(b.At) })
}

// keepWithin compares full timestamps. A caller that wants a bare time
// range applied to some other day anchors the bounds before filtering.
func keepWithin(in []Match, r dates.Range) []Match {
	return keep(in, func(e *entry.Entry) bool {
		if e.Timestamp.Before(r.Start.At) {
			return false
		}
		return r.End == nil || !e.Timestamp.After(r.End.At)
	})
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
