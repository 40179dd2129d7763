// Package output holds the destinations composed lines are written to: the
// console, an in-memory capture and an append-only file stream.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Console writes lines to an output and an error stream, the way a
// terminal program prints: debug, info and log go to Out, warn and error to
// Err. It also keeps counters, timers and group indentation.
type Console struct {
	Out io.Writer
	Err io.Writer

	depth    int
	counters map[string]int
	timers   map[string]time.Time
	now      func() time.Time
}

// NewConsole returns a Console; nil writers default to os.Stdout and
// os.Stderr.
func NewConsole(out, errOut io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Console{
		Out:      out,
		Err:      errOut,
		counters: make(map[string]int),
		timers:   make(map[string]time.Time),
		now:      time.Now,
	}
}

func (c *Console) print(w io.Writer, line string) {
	if c.depth > 0 {
		indent := strings.Repeat("  ", c.depth)
		line = indent + strings.ReplaceAll(line, "\n", "\n"+indent)
	}
	fmt.Fprintln(w, line)
}

// Debug prints line on Out.
func (c *Console) Debug(line string) { c.print(c.Out, line) }

// Info prints line on Out.
func (c *Console) Info(line string) { c.print(c.Out, line) }

// Log prints line on Out.
func (c *Console) Log(line string) { c.print(c.Out, line) }

// Warn prints line on Err.
func (c *Console) Warn(line string) { c.print(c.Err, line) }

// Error prints line on Err.
func (c *Console) Error(line string) { c.print(c.Err, line) }

// Assert prints "Assertion failed" and line on Err when ok is false.
func (c *Console) Assert(ok bool, line string) {
	if ok {
		return
	}
	c.print(c.Err, assertion(line))
}

// Group prints label and indents everything after it until GroupEnd.
func (c *Console) Group(label string) {
	if label != "" {
		c.print(c.Out, label)
	}
	c.depth++
}

// GroupEnd closes the innermost group.
func (c *Console) GroupEnd() {
	if c.depth > 0 {
		c.depth--
	}
}

// Count prints how many times label has been counted.
func (c *Console) Count(label string) {
	if label == "" {
		label = "default"
	}
	c.counters[label]++
	c.print(c.Out, fmt.Sprintf("%s: %d", label, c.counters[label]))
}

// CountReset sets the counter of label back to zero.
func (c *Console) CountReset(label string) {
	if label == "" {
		label = "default"
	}
	delete(c.counters, label)
}

// Time starts a timer named label.
func (c *Console) Time(label string) {
	if label == "" {
		label = "default"
	}
	c.timers[label] = c.now()
}

// TimeLog prints the time elapsed since Time(label).
func (c *Console) TimeLog(label string) {
	if label == "" {
		label = "default"
	}
	start, ok := c.timers[label]
	if !ok {
		c.print(c.Err, fmt.Sprintf("Timer %q does not exist", label))
		return
	}
	c.print(c.Out, fmt.Sprintf("%s: %s", label, c.now().Sub(start)))
}

// TimeEnd prints the elapsed time and stops the timer.
func (c *Console) TimeEnd(label string) {
	if label == "" {
		label = "default"
	}
	c.TimeLog(label)
	delete(c.timers, label)
}

func assertion(line string) string {
	if line == "" {
		return "Assertion failed"
	}
	return "Assertion failed: " + line
}
