package glyph

import "fmt"

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// Marker is the leading symbol for an entry row in default output.
type Marker int

const (
	Open Marker = iota
	Done
	Canceled
	Flagged
	Note
)

var symbols = map[Marker]string{
	Open:     "•",
	Done:     "✔",
	Canceled: "⦵",
	Flagged:  "‼",
	Note:     "⁃",
}

func (m Marker) String() string {
	if s, ok := symbols[m]; ok {
		return s
	}
	return " "
}
