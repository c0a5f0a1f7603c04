// Package dates parses the date and time bounds accepted by filter
// flags: bare clock times, am/pm times, explicit dates and natural
// language such as "yesterday" or "last friday".
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Bound is one end of a time filter. TimeOfDay marks a bound that came
// from a bare clock time; such bounds compare against the clock
// component of an entry's timestamp only, so "after 8am" matches every
// day, not just today.
type Bound struct {
	At        time.Time
	TimeOfDay bool
}

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	meridiemRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

	explicitLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

	parser = newParser()
)

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// Parse turns a user-supplied string into a bound, anchored to now for
// inputs that carry no date of their own.
func Parse(s string, now time.Time) (Bound, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)

	if m := clockRe.FindStringSubmatch(trimmed); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 24 && minute < 60 {
			return Bound{At: clockOn(now, hour, minute), TimeOfDay: true}, nil
		}
	}

	if m := meridiemRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch {
		case m[3] == "pm" && hour != 12:
			hour += 12
		case m[3] == "am" && hour == 12:
			hour = 0
		}
		if hour < 24 && minute < 60 {
			return Bound{At: clockOn(now, hour, minute), TimeOfDay: true}, nil
		}
	}

	for _, layout := range explicitLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return Bound{At: t}, nil
		}
	}

	r, err := parser.Parse(trimmed, now)
	if err != nil || r == nil {
		return Bound{}, fmt.Errorf("dates: cannot parse %q as a date or time", s)
	}
	return Bound{At: r.Time}, nil
}

// Range is a start bound with an optional inclusive end.
type Range struct {
	Start Bound
	End   *Bound
}

// ParseRange splits "X to Y", "X through Y" or "X - Y" into a range.
// Without a separator the whole string parses as the start and the end
// stays nil.
func ParseRange(s string, now time.Time) (Range, error) {
	for _, sep := range []string{" to ", " through ", " - "} {
		i := strings.Index(s, sep)
		if i < 0 {
			continue
		}
		start, err := Parse(s[:i], now)
		if err != nil {
			return Range{}, err
		}
		end, err := Parse(s[i+len(sep):], now)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: start, End: &end}, nil
	}
	start, err := Parse(s, now)
	return Range{Start: start}, err
}

func clockOn(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}
