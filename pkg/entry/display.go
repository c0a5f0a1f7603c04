package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/glyph"
)

// Marker picks the listing symbol for the entry's state.
func (e *Entry) Marker() glyph.Marker {
	switch {
	case e.IsDone():
		if _, timed := e.DoneTime(); !timed {
			return glyph.Canceled
		}
		return glyph.Done
	case e.IsFlagged():
		return glyph.Flagged
	default:
		return glyph.Open
	}
}

// String renders the confirmation line printed after an entry is added
// or modified.
func (e *Entry) String() string {
	s := fmt.Sprintf("%s: %s", e.Timestamp.Format(Stamp), e.Description)
	if tags := e.TagList(); len(tags) > 0 {
		s += " " + strings.Join(tags, " ")
	}
	return s
}

// DisplayDate renders the date column the way listings show it: Today,
// Yesterday, a weekday name inside the last week, month/day beyond.
func (e *Entry) DisplayDate(now time.Time) string {
	days := daysBetween(e.Timestamp, now)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return e.Timestamp.Format("Mon")
	default:
		return e.Timestamp.Format("01/02")
	}
}

func daysBetween(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
