package terminal

import (
	"strconv"
	"strings"

	"github.com/dmagro/termlog/internal/textwidth"
)

// Escape sequences emitted by Cursor.
const (
	SeqClearLine   = "\x1b[2K\r"
	SeqClearScreen = "\x1b[2J\x1b[0;0H"
	SeqHide        = "\x1b[?25l"
	SeqShow        = "\x1b[?25h"
)

// SeqUp returns the sequence moving the cursor n rows up.
func SeqUp(n int) string { return "\x1b[" + strconv.Itoa(n) + "A" }

// SeqDown returns the sequence moving the cursor n rows down.
func SeqDown(n int) string { return "\x1b[" + strconv.Itoa(n) + "B" }

// Cursor moves the cursor relative to its current position. It keeps no
// absolute position; the history bounds how far up it may go.
type Cursor struct {
	env     Environment
	history *History
}

// NewCursor returns a Cursor writing to env and bounded by history.
func NewCursor(env Environment, history *History) *Cursor {
	if history == nil {
		history = &History{}
	}
	return &Cursor{env: env, history: history}
}

// Write is the single write primitive: escape sequences are stripped when
// the environment is not interactive, and empty strings are never written.
func (c *Cursor) Write(s string) error {
	if !c.env.IsInteractive() {
		s = textwidth.Strip(s)
	}
	if s == "" {
		return nil
	}
	return c.env.WriteRaw(s)
}

// Hide returns the hide-cursor sequence, "" on a non-interactive output.
func (c *Cursor) Hide() string {
	if !c.env.IsInteractive() {
		return ""
	}
	return SeqHide
}

// Show returns the show-cursor sequence, "" on a non-interactive output.
func (c *Cursor) Show() string {
	if !c.env.IsInteractive() {
		return ""
	}
	return SeqShow
}

// Available returns how many rows the recorded history spans at the current
// width.
func (c *Cursor) Available() int {
	columns, _ := c.env.WindowSize()
	return c.history.Rows(columns)
}

// Up moves the cursor n rows up. Without clear it only returns the sequence,
// for the caller to write or pass to ClearLine. With clear it writes one
// "up one row, clear it" pair per row, so exactly n rows are blanked even if
// their wrapping changed since they were printed, and returns what it wrote.
//
// Up is a no-op on a non-interactive output or for n < 1. When lines have
// been recorded, n is clamped to the rows they span.
func (c *Cursor) Up(n int, clear bool) string {
	if !c.env.IsInteractive() || n < 1 {
		return ""
	}
	if c.history.Len() > 0 {
		n = min(n, c.Available())
	}
	if !clear {
		return SeqUp(n)
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		up := SeqUp(1)
		_ = c.Write(up)
		b.WriteString(up)
		b.WriteString(c.ClearLine(""))
	}
	return b.String()
}

// Down returns the sequence moving the cursor n rows down; n < 1 moves one
// row. It is returned on any output.
func (c *Cursor) Down(n int) string {
	if n < 1 {
		n = 1
	}
	return SeqDown(n)
}

// ClearLine writes prefix followed by the clear-line sequence as a single
// write and returns it.
func (c *Cursor) ClearLine(prefix string) string {
	s := prefix + SeqClearLine
	_ = c.Write(s)
	return s
}

// ClearScreen writes the clear-screen sequence and returns it.
func (c *Cursor) ClearScreen() string {
	_ = c.Write(SeqClearScreen)
	return SeqClearScreen
}
