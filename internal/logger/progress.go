package logger

import (
	"strconv"
	"strings"
	"time"
)

// Progress returns i/total as a percentage with fixed decimals.
func Progress(i, total int, fixed int) string {
	pct := 0.0
	if total > 0 {
		pct = float64(i) / float64(total) * 100
	}
	return strconv.FormatFloat(pct, 'f', max(fixed, 0), 64)
}

// Spent returns the seconds elapsed between checkpoint and now with fixed
// decimals.
func Spent(checkpoint, now time.Time, fixed int) string {
	return strconv.FormatFloat(now.Sub(checkpoint).Seconds(), 'f', max(fixed, 0), 64)
}

// BarOptions shapes a progress bar. Zero values take the defaults.
type BarOptions struct {
	Width int    // default 12
	Char  string // default "█"
	Space string // default "·"
}

// Bar draws the bar of step i (zero based) out of total steps, followed by
// the percentage of completed steps.
//
//	Bar(0, 10, BarOptions{}) == "█··········· 10.00%"
func Bar(i, total int, opts BarOptions) string {
	if opts.Width <= 0 {
		opts.Width = 12
	}
	if opts.Char == "" {
		opts.Char = "█"
	}
	if opts.Space == "" {
		opts.Space = "·"
	}

	done := i + 1
	filled := 0
	if total > 0 {
		filled = opts.Width * done / total
	}
	filled = min(max(filled, 0), opts.Width)

	return strings.Repeat(opts.Char, filled) +
		strings.Repeat(opts.Space, opts.Width-filled) +
		" " + Progress(done, total, 2) + "%"
}
