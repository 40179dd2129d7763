// Package textwidth measures strings the way a terminal draws them.
//
// Escape sequences take no columns, grapheme clusters (flags, emoji with
// modifiers, base + combining marks) are measured as one unit, and East Asian
// wide characters take two columns.
package textwidth

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// ansiPattern matches the CSI sequences this module emits: SGR colors,
// cursor movement, line and screen clearing, cursor visibility.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// Strip removes ANSI escape sequences, leaving printable content
// (newlines and carriage returns included) untouched. Fragments that do not
// form a complete sequence pass through as they are.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansiPattern.ReplaceAllString(s, "")
}

// Width returns the number of terminal columns s occupies once escapes are
// removed. Embedded newlines count as zero columns.
func Width(s string) int {
	return uniseg.StringWidth(Strip(s))
}

// Cut truncates s to at most width visible columns. Escape sequences are
// kept, including those after the cut point, so a trailing reset survives.
// A wide cluster that would straddle the limit is dropped.
func Cut(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	used := 0
	full := false
	pos := 0
	spans := append(ansiPattern.FindAllStringIndex(s, -1), []int{len(s), len(s)})
	for _, span := range spans {
		text := s[pos:span[0]]
		state := -1
		for len(text) > 0 && !full {
			var cluster string
			var w int
			cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
			if used+w > width {
				full = true
				break
			}
			used += w
			b.WriteString(cluster)
		}
		b.WriteString(s[span[0]:span[1]])
		pos = span[1]
	}
	return b.String()
}

// Fill cuts or pads s so it occupies exactly width columns. pad defaults to a
// single space; a wide pad that cannot fit the remainder is completed with
// spaces.
func Fill(s string, width int, pad string) string {
	if width <= 0 {
		return ""
	}
	if pad == "" {
		pad = " "
	}
	cut := Cut(s, width)
	missing := width - Width(cut)
	if missing <= 0 {
		return cut
	}

	padWidth := Width(pad)
	if padWidth <= 0 {
		pad, padWidth = " ", 1
	}
	n := missing / padWidth
	return cut + strings.Repeat(pad, n) + strings.Repeat(" ", missing-n*padWidth)
}
