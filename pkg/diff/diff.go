// Package diff renders line-oriented differences between two documents.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares two documents line by line and returns the result in
// unified diff layout, or "" when they are identical. Every line of both
// documents is shown, prefixed with ' ', '-' or '+'.
func Unified(from, to []byte, fromLabel, toLabel string) string {
	if bytes.Equal(from, to) {
		return ""
	}

	dmp := diffmatchpatch.New()
	fromChars, toChars, lineArray := dmp.DiffLinesToChars(string(from), string(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", fromLabel)
	fmt.Fprintf(&buf, "+++ %s\n", toLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(from), countLines(to))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteString("\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}
	return buf.String()
}

// Changed reports how many lines were removed and added.
func Changed(from, to []byte) (removed, added int) {
	dmp := diffmatchpatch.New()
	fromChars, toChars, lineArray := dmp.DiffLinesToChars(string(from), string(to))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lineArray) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		}
	}
	return removed, added
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
