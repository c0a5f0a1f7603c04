// Package prompt reads interactive answers from the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line prints the question and returns the trimmed one-line answer.
func Line(w io.Writer, r io.Reader, question string) (string, error) {
	fmt.Fprint(w, question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm prints the question and reports whether the answer was yes.
// Only "y", in any case, confirms.
func Confirm(w io.Writer, r io.Reader, question string) (bool, error) {
	answer, err := Line(w, r, question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Note collects a multi-line note. Editing ends at two consecutive
// blank lines or EOF; interior blank lines are kept, trailing ones
// dropped.
func Note(w io.Writer, r io.Reader) (string, error) {
	fmt.Fprintln(w, "Add a note:")
	fmt.Fprintln(w, "Enter a blank line (return twice) to end editing and save, CTRL-C to cancel")

	var lines []string
	blanks := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks >= 2 {
				break
			}
			lines = append(lines, "")
			continue
		}
		blanks = 0
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n"), nil
}
