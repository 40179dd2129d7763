package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmagro/termlog/internal/format"
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/style"
)

// TimestampLayout is the ISO-8601 layout of the optional timestamp token.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Composer builds one output line from a level, an optional descriptor
// override and the caller's message parts.
type Composer struct {
	Registry *format.Registry

	Icons  bool
	Colors bool
	// Styled reports whether escape sequences may be emitted right now.
	// Nil means always.
	Styled func() bool

	Timestamp bool
	Elapsed   bool
	// Precision is the number of decimals of the elapsed-seconds token.
	Precision int

	// Prefix is written first, raw, outside any level styling.
	Prefix string

	checkpoint time.Time
}

// Checkpoint sets the instant the next elapsed token is measured from.
func (c *Composer) Checkpoint(t time.Time) {
	c.checkpoint = t
}

// Compose returns the final line for parts logged at l at instant now.
func (c *Composer) Compose(l level.Level, override *format.Descriptor, parts []any, now time.Time) string {
	d := c.Registry.Resolve(l, override)
	if !c.Icons {
		d = d.WithoutIcon()
	}
	if !c.Colors {
		d = d.WithoutColors()
	}

	tokens := make([]string, 0, len(parts)+3)
	if c.Timestamp {
		tokens = append(tokens, now.UTC().Format(TimestampLayout))
	}
	if c.Elapsed {
		tokens = append(tokens, Spent(c.checkpoint, now, c.Precision))
		c.checkpoint = now
	}
	if d.Icon != "" {
		tokens = append(tokens, d.Icon)
	}
	for _, p := range parts {
		tokens = append(tokens, fmt.Sprint(p))
	}

	body := strings.Join(tokens, " ")
	if d.Color.IsSet() || d.Background.IsSet() {
		opts := d.Style()
		opts.Stripped = c.Styled != nil && !c.Styled()
		body = style.Apply(body, opts)
	}
	return c.Prefix + body
}
