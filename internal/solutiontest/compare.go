package solutiontest

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const eof = "EOF"

// Mismatch describes the first line where two outputs differ.
type Mismatch struct {
	Line     int    // 1-based
	Expected string // "EOF" when the expected output is shorter
	Actual   string // "EOF" when the actual output is shorter
	Diff     string // whole-output line diff, "-" expected, "+" actual
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("wrong answer: outputs differ in line %d\n  actual: %s\nexpected: %s\n%s",
		m.Line, m.Actual, m.Expected, m.Diff)
}

// Compare returns nil when expected and actual hold the same lines. A missing
// trailing newline and CR line endings are ignored.
func Compare(expected, actual string) *Mismatch {
	want, got := lines(expected), lines(actual)
	for i := 0; i < max(len(want), len(got)); i++ {
		w, g := eof, eof
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) && i < len(got) && w == g {
			continue
		}
		return &Mismatch{Line: i + 1, Expected: w, Actual: g, Diff: lineDiff(want, got)}
	}

	return nil
}

func lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func lineDiff(want, got []string) string {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(join(want), join(got))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		mark := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(mark)
			sb.WriteString(line)
		}
	}

	return sb.String()
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}
