package output

import "github.com/dmagro/termlog/internal/level"

// Entry is one captured line and the channel it was sent on.
type Entry struct {
	Channel level.Level
	Text    string
}

// Capture is a Sink that stores lines instead of printing them.
type Capture struct {
	// Silent drops everything instead of storing it.
	Silent  bool
	entries []Entry
}

// NewCapture returns an empty Capture.
func NewCapture() *Capture {
	return &Capture{}
}

// push stores line unless the capture is silent.
func (c *Capture) push(ch level.Level, line string) {
	if c.Silent {
		return
	}
	c.entries = append(c.entries, Entry{Channel: ch, Text: line})
}

// Debug stores line on the debug channel.
func (c *Capture) Debug(line string) { c.push(level.Debug, line) }

// Info stores line on the info channel.
func (c *Capture) Info(line string) { c.push(level.Info, line) }

// Warn stores line on the warn channel.
func (c *Capture) Warn(line string) { c.push(level.Warn, line) }

// Error stores line on the error channel.
func (c *Capture) Error(line string) { c.push(level.Error, line) }

// Log stores line on the log channel.
func (c *Capture) Log(line string) { c.push(level.Log, line) }

// Assert stores a failed assertion on the error channel, the way Console
// prints it. Passing assertions store nothing.
func (c *Capture) Assert(ok bool, line string) {
	if !ok {
		c.push(level.Error, assertion(line))
	}
}

// Clear drops every captured entry.
func (c *Capture) Clear() {
	c.entries = nil
}

// Output returns the captured entries accepted by every filter, in order.
func (c *Capture) Output(filters ...func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(c.entries))
next:
	for _, e := range c.entries {
		for _, keep := range filters {
			if !keep(e) {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// OutputOf returns the entries sent on channel.
func (c *Capture) OutputOf(channel level.Level) []Entry {
	return c.Output(func(e Entry) bool { return e.Channel == channel })
}

// Texts returns the text of every captured entry.
func (c *Capture) Texts() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Text
	}
	return out
}
