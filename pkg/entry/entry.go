package entry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stamp is the minute-precision layout used wherever an entry timestamp
// or completion time is written out.
const Stamp = "2006-01-02 15:04"

// DoneTag marks an entry complete regardless of its value. The value,
// when present, records the completion time in the Stamp layout.
const DoneTag = "done"

// FlagTag marks an entry as flagged for attention.
const FlagTag = "flagged"

func New(description, section string) *Entry {
	return &Entry{
		ID:          uuid.New(),
		Description: description,
		Section:     section,
		Timestamp:   time.Now(),
		Tags:        map[string]string{},
	}
}

// Entry is one logged activity. Tags map names to optional values; the
// empty string means the tag carries no value. The wire format cannot
// produce an empty parenthesized value, so nothing is lost by the
// sentinel.
type Entry struct {
	ID          uuid.UUID         `json:"uuid"`
	Description string            `json:"description"`
	Timestamp   time.Time         `json:"timestamp"`
	Section     string            `json:"section"`
	Tags        map[string]string `json:"tags"`
	Note        string            `json:"note,omitempty"`
}

func (e *Entry) SetTag(name, value string) {
	if e.Tags == nil {
		e.Tags = map[string]string{}
	}
	e.Tags[name] = value
}

func (e *Entry) RemoveTag(name string) {
	delete(e.Tags, name)
}

func (e *Entry) HasTag(name string) bool {
	_, ok := e.Tags[name]
	return ok
}

func (e *Entry) IsDone() bool {
	return e.HasTag(DoneTag)
}

func (e *Entry) IsFlagged() bool {
	return e.HasTag(FlagTag)
}

// MarkDone records completion at the given time. A zero time records the
// done tag with no value, which is how canceled entries are written.
func (e *Entry) MarkDone(at time.Time) {
	if at.IsZero() {
		e.SetTag(DoneTag, "")
		return
	}
	e.SetTag(DoneTag, at.Format(Stamp))
}

// DoneTime reports the completion time recorded on the done tag, if the
// entry has one with a parseable value.
func (e *Entry) DoneTime() (time.Time, bool) {
	v, ok := e.Tags[DoneTag]
	if !ok || v == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(Stamp, v, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AppendNote adds text to the entry's note, newline-joined.
func (e *Entry) AppendNote(text string) {
	if text == "" {
		return
	}
	if e.Note == "" {
		e.Note = text
		return
	}
	e.Note = e.Note + "\n" + text
}

// Duplicate makes a fresh copy of the entry starting at the given time:
// new id, same description, section, note and tags minus the done tag.
func (e *Entry) Duplicate(at time.Time) *Entry {
	d := New(e.Description, e.Section)
	d.Timestamp = at
	d.Note = e.Note
	for name, value := range e.Tags {
		if name == DoneTag {
			continue
		}
		d.Tags[name] = value
	}
	return d
}

// TagList renders the tags as @name / @name(value) strings, name-sorted
// so output is deterministic.
func (e *Entry) TagList() []string {
	if len(e.Tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Tags))
	for name := range e.Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		if v := e.Tags[name]; v != "" {
			out = append(out, fmt.Sprintf("@%s(%s)", name, v))
		} else {
			out = append(out, "@"+name)
		}
	}
	return out
}

// TagListExcept renders the tags like TagList, leaving out the named
// ones.
func (e *Entry) TagListExcept(skip ...string) []string {
	if len(e.Tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Tags))
	for name := range e.Tags {
		keep := true
		for _, s := range skip {
			if name == s {
				keep = false
				break
			}
		}
		if keep {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		if v := e.Tags[name]; v != "" {
			out = append(out, fmt.Sprintf("@%s(%s)", name, v))
		} else {
			out = append(out, "@"+name)
		}
	}
	return out
}

// TaskLine renders the entry's wire line, without note lines.
func (e *Entry) TaskLine() string {
	var b strings.Builder
	b.WriteString(" - ")
	b.WriteString(e.Timestamp.Format(Stamp))
	b.WriteString(" | ")
	b.WriteString(e.Description)
	for _, tag := range e.TagList() {
		b.WriteString(" ")
		b.WriteString(tag)
	}
	b.WriteString(" <")
	b.WriteString(e.ID.String())
	b.WriteString(">")
	return b.String()
}
