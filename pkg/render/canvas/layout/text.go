package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks a label that was cut short.
const Ellipsis = "…"

// WrapLabel word-wraps s to lines of at most width display cells and keeps
// at most maxLines of them. When text remains after the last kept line, that
// line ends in [Ellipsis]. Runs of whitespace collapse to single spaces and
// words longer than width are broken. Empty input yields no lines.
func WrapLabel(s string, width, maxLines int) []string {
	width = max(width, 1)
	maxLines = max(maxLines, 1)

	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}

	var lines []string
	for _, l := range strings.Split(ansi.Wrap(s, width, "-"), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) <= maxLines {
		return lines
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if ansi.StringWidth(last) >= width {
		last = strings.TrimRight(ansi.Truncate(last, width-1, ""), " ")
	}
	lines[maxLines-1] = last + Ellipsis
	return lines
}
