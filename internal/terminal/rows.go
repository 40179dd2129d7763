package terminal

import (
	"strings"

	"github.com/dmagro/termlog/internal/textwidth"
)

// HistoryCapacity is the number of printed lines remembered for erasing and
// cursor movement.
const HistoryCapacity = 10

// RowsFor returns how many terminal rows line occupies at the given width:
// every newline-separated segment takes at least one row and wraps every
// columns cells.
func RowsFor(line string, columns int) int {
	if columns <= 0 {
		columns = DefaultColumns
	}
	rows := 0
	for _, segment := range strings.Split(textwidth.Strip(line), "\n") {
		w := textwidth.Width(segment)
		n := (w + columns - 1) / columns
		if n < 1 {
			n = 1
		}
		rows += n
	}
	return rows
}

// History is the bounded list of recently printed lines, oldest first,
// stored without escape sequences.
type History struct {
	lines []string
}

// Record appends line, evicting the oldest entry past HistoryCapacity.
func (h *History) Record(line string) {
	h.lines = append(h.lines, textwidth.Strip(line))
	if over := len(h.lines) - HistoryCapacity; over > 0 {
		h.lines = append(h.lines[:0:0], h.lines[over:]...)
	}
}

// Lines returns a copy of the recorded lines.
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Len returns the number of recorded lines.
func (h *History) Len() int { return len(h.lines) }

// Last returns the most recent line.
func (h *History) Last() (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	return h.lines[len(h.lines)-1], true
}

// Rows sums the rows taken by every recorded line.
func (h *History) Rows(columns int) int {
	total := 0
	for _, line := range h.lines {
		total += RowsFor(line, columns)
	}
	return total
}

// Erase returns fill repeated to cover the last line, capped at the
// terminal width. It returns "" when nothing has been recorded.
func (h *History) Erase(fill string, columns int) string {
	last, ok := h.Last()
	if !ok {
		return ""
	}
	if columns <= 0 {
		columns = DefaultColumns
	}
	if fill == "" {
		fill = " "
	}
	w := 0
	for _, segment := range strings.Split(last, "\n") {
		w = max(w, textwidth.Width(segment))
	}
	return textwidth.Fill("", min(w, columns), fill)
}

// Reset forgets every recorded line.
func (h *History) Reset() {
	h.lines = nil
}
