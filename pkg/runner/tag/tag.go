package tag

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/lnds/daily-log/pkg/entry"
	"github.com/lnds/daily-log/pkg/filter"
	"github.com/lnds/daily-log/pkg/prompt"
	"github.com/lnds/daily-log/pkg/store"
)

// Tag adds, removes or renames tags on the most recent matching
// entries.
type Tag struct {
	Tags        []string
	Count       int
	Bool        string
	Case        string
	Date        bool
	Force       bool
	Interactive bool
	Not         bool
	Remove      bool
	Regex       bool
	Rename      string
	Sections    []string
	Search      string
	Tag         string
	Unfinished  bool
	Val         []string
	Value       string
	Exact       bool

	Config      *store.Config
	Persistence store.Persistence

	In  io.Reader
	Out io.Writer
}

func (t *Tag) Do(ctx context.Context) error {
	if t.Interactive {
		return fmt.Errorf("Interactive mode not yet implemented")
	}

	if t.Count == 0 && !t.Force {
		ok, err := prompt.Confirm(t.out(), t.in(), "Are you sure you want to tag all entries? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(t.out(), "Tag operation cancelled.")
			return nil
		}
	}

	j, err := t.Persistence.Load()
	if err != nil {
		return err
	}

	matches, err := filter.Apply(j, filter.Options{
		Sections: t.Sections,
		Search:   t.Search,
		Exact:    t.Exact,
		Case:     filter.ParseCase(t.Case),
		Strategy: filter.ParseStrategy(t.Bool),
		Tags:     filter.SplitTags(t.Tag),
		Val:      t.Val,
		Invert:   t.Not,
	})
	if err != nil {
		return err
	}
	if t.Unfinished {
		kept := matches[:0]
		for _, m := range matches {
			if !m.Entry.IsDone() {
				kept = append(kept, m)
			}
		}
		matches = kept
	}
	matches = filter.ByNewest(matches)
	if t.Count > 0 && t.Count < len(matches) {
		matches = matches[:t.Count]
	}
	if len(matches) == 0 {
		return fmt.Errorf("No matching entries found")
	}

	value := t.Value
	if value == "" && t.Date {
		value = time.Now().Format(entry.Stamp)
	}

	modified := 0
	for _, m := range matches {
		e := m.Entry
		switch {
		case t.Rename != "":
			if err := t.renameTags(e); err != nil {
				return err
			}
		case t.Remove:
			if err := t.removeTags(e); err != nil {
				return err
			}
		default:
			for _, name := range t.Tags {
				e.SetTag(strings.TrimPrefix(name, "@"), value)
			}
		}
		fmt.Fprintf(t.out(), "%s: %s %s\n",
			e.Timestamp.Format(entry.Stamp), e.Description, strings.Join(e.TagList(), " "))
		modified++
	}

	if err := t.Persistence.Save(j); err != nil {
		return err
	}
	fmt.Fprintf(t.out(), "\nTagged %d %s.\n", modified, plural(modified))
	return nil
}

// renameTags re-keys every tag matching the --rename pattern to the
// first tag argument, keeping values.
func (t *Tag) renameTags(e *entry.Entry) error {
	re, err := t.pattern(t.Rename)
	if err != nil {
		return err
	}
	to := strings.TrimPrefix(t.Tags[0], "@")
	var old []string
	for name := range e.Tags {
		if re.MatchString(name) {
			old = append(old, name)
		}
	}
	for _, name := range old {
		value := e.Tags[name]
		e.RemoveTag(name)
		e.SetTag(to, value)
	}
	return nil
}

// removeTags deletes every tag matching any of the tag arguments.
func (t *Tag) removeTags(e *entry.Entry) error {
	for _, arg := range t.Tags {
		re, err := t.pattern(arg)
		if err != nil {
			return err
		}
		for name := range e.Tags {
			if re.MatchString(name) {
				e.RemoveTag(name)
			}
		}
	}
	return nil
}

// pattern compiles an anchored tag-name matcher. Without --regex the
// pattern is a wildcard where * and ? stand for any text.
func (t *Tag) pattern(raw string) (*regexp.Regexp, error) {
	p := strings.TrimPrefix(raw, "@")
	if !t.Regex {
		p = strings.ReplaceAll(p, "*", ".*")
		p = strings.ReplaceAll(p, "?", ".")
	}
	if filter.Sensitive(filter.ParseCase(t.Case), p) {
		return regexp.Compile("^" + p + "$")
	}
	return regexp.Compile("(?i)^" + p + "$")
}

func plural(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}

func (t *Tag) in() io.Reader {
	if t.In != nil {
		return t.In
	}
	return os.Stdin
}

func (t *Tag) out() io.Writer {
	if t.Out != nil {
		return t.Out
	}
	return os.Stdout
}
