package filter

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/lnds/daily-log/pkg/entry"
)

// SplitTags breaks a comma-separated tag flag into tokens, dropping
// empties.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func matchTags(in []Match, tokens []string, s Strategy) []Match {
	switch s {
	case StrategyAnd:
		return keep(in, func(e *entry.Entry) bool {
			for _, tok := range tokens {
				if !hasTag(e, stripToken(tok)) {
					return false
				}
			}
			return true
		})
	case StrategyOr:
		return keep(in, func(e *entry.Entry) bool {
			for _, tok := range tokens {
				if hasTag(e, stripToken(tok)) {
					return true
				}
			}
			return false
		})
	case StrategyNot:
		return keep(in, func(e *entry.Entry) bool {
			for _, tok := range tokens {
				if hasTag(e, stripToken(tok)) {
					return false
				}
			}
			return true
		})
	}

	// Pattern grammar: +name required, -name excluded, bare names form
	// an any-of group.
	var required, excluded, bare []string
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "+"):
			required = append(required, stripToken(strings.TrimPrefix(tok, "+")))
		case strings.HasPrefix(tok, "-"):
			excluded = append(excluded, stripToken(strings.TrimPrefix(tok, "-")))
		default:
			bare = append(bare, stripToken(tok))
		}
	}

	return keep(in, func(e *entry.Entry) bool {
		for _, name := range required {
			if !hasTag(e, name) {
				return false
			}
		}
		for _, name := range excluded {
			if hasTag(e, name) {
				return false
			}
		}
		if len(bare) == 0 {
			return true
		}
		for _, name := range bare {
			if hasTag(e, name) {
				return true
			}
		}
		return false
	})
}

// stripToken drops the optional @ that users habitually type in front
// of tag names.
func stripToken(tok string) string {
	return strings.TrimPrefix(tok, "@")
}

// hasTag reports whether the entry carries a tag matching the name,
// which may use * and ? wildcards. A pattern that fails to compile
// matches nothing.
func hasTag(e *entry.Entry, name string) bool {
	if !strings.ContainsAny(name, "*?") {
		return e.HasTag(name)
	}
	g, err := glob.Compile(name)
	if err != nil {
		return false
	}
	for tag := range e.Tags {
		if g.Match(tag) {
			return true
		}
	}
	return false
}
