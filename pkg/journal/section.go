package journal

import "strings"

// Canonical section names. Default is pinned first in serialized output
// and is the target for new entries when no section is given.
const (
	Default = "Currently"
	Later   = "Later"
	Archive = "Archive"
)

// Normalize maps well-known aliases onto their canonical names; custom
// section names pass through with surrounding whitespace trimmed.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "currently", "current":
		return Default
	case "later":
		return Later
	case "archive", "archived":
		return Archive
	}
	return trimmed
}
