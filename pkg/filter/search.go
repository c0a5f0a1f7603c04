package filter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/lnds/daily-log/pkg/entry"
)

// Sensitive resolves the case policy for one query string. Smart case
// is sensitive only when the query carries an uppercase letter. Tag
// renaming and removal share this policy with search.
func Sensitive(c Case, query string) bool {
	switch c {
	case CaseSensitive:
		return true
	case CaseIgnore:
		return false
	default:
		return strings.ContainsFunc(query, unicode.IsUpper)
	}
}

// search narrows matches by description or note. The mode is inferred
// from the query: /…/ is a regular expression, a leading single quote
// forces exact equality, anything else is substring containment unless
// the exact flag upgrades it to equality.
func search(in []Match, query string, exact bool, c Case) ([]Match, error) {
	sensitive := Sensitive(c, query)

	if len(query) >= 2 && strings.HasPrefix(query, "/") && strings.HasSuffix(query, "/") {
		pattern := query[1 : len(query)-1]
		if !sensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("filter: bad search pattern %q: %w", query, err)
		}
		return keep(in, func(e *entry.Entry) bool {
			return re.MatchString(e.Description) || (e.Note != "" && re.MatchString(e.Note))
		}), nil
	}

	if strings.HasPrefix(query, "'") || exact {
		q := strings.TrimPrefix(query, "'")
		equal := func(s string) bool { return s == q }
		if !sensitive {
			equal = func(s string) bool { return strings.EqualFold(s, q) }
		}
		return keep(in, func(e *entry.Entry) bool {
			return equal(e.Description) || (e.Note != "" && equal(e.Note))
		}), nil
	}

	contains := func(s string) bool { return strings.Contains(s, query) }
	if !sensitive {
		lowered := strings.ToLower(query)
		contains = func(s string) bool { return strings.Contains(strings.ToLower(s), lowered) }
	}
	return keep(in, func(e *entry.Entry) bool {
		return contains(e.Description) || (e.Note != "" && contains(e.Note))
	}), nil
}
