package entry

import (
	"regexp"
	"strings"
)

var (
	parenRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
	tagRe   = regexp.MustCompile(`@(\w+)(?:\(([^)]+)\))?`)
)

// Compose parses raw task text into an entry for the named section. A
// trailing parenthetical becomes the returned note, and inline @tag
// tokens become tags; both are stripped from the description.
func Compose(text, section string) (*Entry, string) {
	note := ""
	if m := parenRe.FindStringSubmatch(text); m != nil {
		text = m[1]
		note = m[2]
	}
	e := New("", section)
	for _, m := range tagRe.FindAllStringSubmatch(text, -1) {
		e.Tags[m[1]] = m[2]
	}
	e.Description = strings.TrimSpace(tagRe.ReplaceAllString(text, ""))
	return e, note
}
