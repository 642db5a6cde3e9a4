package komodo

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp marks a line of a Diff.
type DiffOp byte

const (
	DiffEqual  DiffOp = ' '
	DiffDelete DiffOp = '-'
	DiffInsert DiffOp = '+'
)

// DiffLine is one line of a line-level diff, without its newline.
type DiffLine struct {
	Op   DiffOp
	Text string
}

func (l DiffLine) String() string { return string(l.Op) + " " + l.Text }

// Diff compares two card inputs line by line.
func Diff(a, b string) []DiffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		op := DiffEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

// Changed reports whether any line of d differs.
func Changed(d []DiffLine) bool {
	for _, l := range d {
		if l.Op != DiffEqual {
			return true
		}
	}
	return false
}
