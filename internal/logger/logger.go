// Package logger turns leveled calls into styled terminal lines and keeps
// track of what it printed, so progress output can be redrawn in place.
//
// A Logger writes composed lines to a primary output.Sink, records them in a
// bounded history used for cursor movement and erasing, and broadcasts them
// to an optional secondary stream off the caller's goroutine.
package logger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmagro/termlog/internal/format"
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/output"
	"github.com/dmagro/termlog/internal/style"
	"github.com/dmagro/termlog/internal/table"
	"github.com/dmagro/termlog/internal/terminal"
	"github.com/dmagro/termlog/internal/textwidth"
)

// Logger is owned by one goroutine. The mutex only serialises it with the
// stream drainer, which delivers queued lines and reports their failures.
type Logger struct {
	mu sync.Mutex

	threshold   level.Level
	sink        output.Sink
	env         terminal.Environment
	registry    *format.Registry
	composer    *Composer
	history     *terminal.History
	cursor      *terminal.Cursor
	now         func() time.Time
	minInterval time.Duration
	prev        time.Time

	ctx      context.Context
	stream   output.Stream
	streams  *errgroup.Group
	queue    []string
	draining bool
}

// New returns a Logger writing to the console of os.Stdout unless options
// say otherwise.
func New(opts ...Option) *Logger {
	s := settings{
		threshold: level.Info,
		now:       time.Now,
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.env == nil {
		s.env = terminal.NewStdio(nil)
	}
	if s.sink == nil {
		s.sink = output.NewConsole(nil, nil)
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}

	colors := !s.env.IsInteractive()
	if s.color != nil {
		colors = *s.color
	}

	registry := format.NewRegistry()
	for l, d := range s.formats {
		registry.Set(l, d)
	}

	env, force := s.env, s.forceStyle
	composer := &Composer{
		Registry:  registry,
		Icons:     s.icons,
		Colors:    colors,
		Styled:    func() bool { return force || env.IsInteractive() },
		Timestamp: s.timestamp,
		Elapsed:   s.elapsed,
		Precision: s.precision,
		Prefix:    s.prefix,
	}
	composer.Checkpoint(s.now())

	var minInterval time.Duration
	if s.fps > 0 {
		minInterval = time.Duration(float64(time.Second) / s.fps)
	}

	history := &terminal.History{}
	return &Logger{
		threshold:   s.threshold,
		sink:        s.sink,
		env:         s.env,
		registry:    registry,
		composer:    composer,
		history:     history,
		cursor:      terminal.NewCursor(s.env, history),
		now:         s.now,
		minInterval: minInterval,
		ctx:         s.ctx,
		stream:      s.stream,
		streams:     &errgroup.Group{},
	}
}

// NewCaptured returns a Logger whose lines are stored in the returned
// Capture, on a non-interactive environment, with icons off. Options are
// applied after those defaults.
func NewCaptured(opts ...Option) (*Logger, *output.Capture) {
	capture := output.NewCapture()
	base := []Option{
		WithSink(capture),
		WithEnvironment(&terminal.Fixed{}),
		WithColor(true),
	}
	return New(append(base, opts...)...), capture
}

// Debug logs parts at debug level and returns the rows printed.
func (l *Logger) Debug(parts ...any) int { return l.Print(level.Debug, nil, parts...) }

// Info logs parts at info level and returns the rows printed.
func (l *Logger) Info(parts ...any) int { return l.Print(level.Info, nil, parts...) }

// Warn logs parts at warn level and returns the rows printed.
func (l *Logger) Warn(parts ...any) int { return l.Print(level.Warn, nil, parts...) }

// Error logs parts at error level and returns the rows printed.
func (l *Logger) Error(parts ...any) int { return l.Print(level.Error, nil, parts...) }

// Success logs parts with the success format on the info channel.
func (l *Logger) Success(parts ...any) int { return l.Print(level.Success, nil, parts...) }

// Log logs parts on the log channel, ranked as info.
func (l *Logger) Log(parts ...any) int { return l.Print(level.Log, nil, parts...) }

// Print logs parts at lvl, styled by override where it sets fields. It
// returns the number of terminal rows the line takes, or 0 when the call
// was suppressed by the level threshold or the frame rate.
func (l *Logger) Print(lvl level.Level, override *format.Descriptor, parts ...any) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	line, rows, ok := l.emit(lvl, override, parts)
	if ok {
		l.enqueue(line)
	}
	return rows
}

// emit runs the gates, composes and writes one line. Callers hold mu.
func (l *Logger) emit(lvl level.Level, override *format.Descriptor, parts []any) (string, int, bool) {
	if !lvl.Enabled(l.threshold) {
		return "", 0, false
	}
	now := l.now()
	if l.minInterval > 0 && !l.prev.IsZero() && now.Sub(l.prev) < l.minInterval {
		return "", 0, false
	}

	line := l.composer.Compose(lvl, override, parts, now)
	output.Emit(l.sink, lvl.Channel(), line)
	l.prev = now
	l.history.Record(line)

	columns, _ := l.env.WindowSize()
	return line, terminal.RowsFor(line, columns), true
}

// Broadcast queues line for the stream, if any, without waiting for it.
// Lines reach the stream one at a time, in the order they were queued.
// Failures are logged at error level on the primary sink only.
func (l *Logger) Broadcast(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enqueue(line)
}

// enqueue appends line to the stream queue and starts the drainer when it
// is idle. Callers hold mu.
func (l *Logger) enqueue(line string) {
	if l.stream == nil {
		return
	}
	l.queue = append(l.queue, line)
	if l.draining {
		return
	}
	l.draining = true
	l.streams.Go(l.drain)
}

// drain delivers queued lines until the queue is empty and returns the
// first failure. Only one drain runs at a time.
func (l *Logger) drain() error {
	var first error
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.queue = nil
			l.draining = false
			l.mu.Unlock()
			return first
		}
		line := l.queue[0]
		l.queue = l.queue[1:]
		stream, ctx := l.stream, l.ctx
		l.mu.Unlock()

		if stream == nil {
			continue
		}
		if err := stream(ctx, line); err != nil {
			l.mu.Lock()
			l.emit(level.Error, nil, []any{fmt.Sprintf("stream failed: %v", err)})
			l.mu.Unlock()
			if first == nil {
				first = err
			}
		}
	}
}

// Wait blocks until every line queued so far has been delivered and returns
// the first stream failure among them.
func (l *Logger) Wait() error {
	l.mu.Lock()
	g := l.streams
	l.streams = &errgroup.Group{}
	l.mu.Unlock()
	return g.Wait()
}

// SetFormat replaces the descriptor of lvl.
func (l *Logger) SetFormat(lvl level.Level, d format.Descriptor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.registry.Set(lvl, d)
}

// Format returns the descriptor lvl resolves to, before the icon and color
// switches apply.
func (l *Logger) Format(lvl level.Level) format.Descriptor {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Resolve(lvl, nil)
}

// Levels lists every level with a descriptor.
func (l *Logger) Levels() []level.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.Levels()
}

// SetStream replaces the secondary stream; nil disables broadcasting.
func (l *Logger) SetStream(stream output.Stream) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stream = stream
}

// SetLevel changes the threshold.
func (l *Logger) SetLevel(lvl level.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = lvl
}

// Level returns the threshold.
func (l *Logger) Level() level.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// Table lays data out (see table.Layout) and, unless opts.Silent, prints
// every row at info level. It returns the rows.
func (l *Logger) Table(data any, columns []string, opts table.Options) []string {
	rows := table.Layout(data, columns, opts)
	if opts.Silent {
		return rows
	}
	for _, row := range rows {
		l.Info(row)
	}
	return rows
}

// Write writes s to the terminal, without escape sequences when it is not
// interactive.
func (l *Logger) Write(s string) error {
	return l.cursor.Write(s)
}

// CursorUp moves the cursor n rows up. With clear it also blanks each row
// it passes and writes the sequences itself; without it the sequence is
// only returned. See terminal.Cursor.Up.
func (l *Logger) CursorUp(n int, clear bool) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor.Up(n, clear)
}

// CursorDown returns the sequence moving the cursor n rows down.
func (l *Logger) CursorDown(n int) string {
	return l.cursor.Down(n)
}

// HideCursor writes and returns the hide-cursor sequence.
func (l *Logger) HideCursor() string {
	s := l.cursor.Hide()
	_ = l.cursor.Write(s)
	return s
}

// ShowCursor writes and returns the show-cursor sequence.
func (l *Logger) ShowCursor() string {
	s := l.cursor.Show()
	_ = l.cursor.Write(s)
	return s
}

// ClearLine writes prefix, typically a cursor movement, then clears the
// line and returns the carriage to column 0.
func (l *Logger) ClearLine(prefix string) string {
	return l.cursor.ClearLine(prefix)
}

// Clear clears the screen, forgets the history and clears the sink when it
// supports it.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cursor.ClearScreen()
	l.history.Reset()
	if c, ok := l.sink.(output.Clearer); ok {
		c.Clear()
	}
}

// WindowSize returns the terminal size as columns, rows.
func (l *Logger) WindowSize() (int, int) {
	return l.env.WindowSize()
}

// Cut truncates s to width visible columns; width <= 0 means the terminal
// width.
func (l *Logger) Cut(s string, width int) string {
	if width <= 0 {
		width, _ = l.env.WindowSize()
	}
	return textwidth.Cut(s, width)
}

// Fill cuts or pads s to exactly width visible columns; width <= 0 means
// the terminal width.
func (l *Logger) Fill(s string, width int, pad string) string {
	if width <= 0 {
		width, _ = l.env.WindowSize()
	}
	return textwidth.Fill(s, width, pad)
}

// Erase returns fill repeated over the width of the last printed line.
func (l *Logger) Erase(fill string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	columns, _ := l.env.WindowSize()
	return l.history.Erase(fill, columns)
}

// History returns the last printed lines without escape sequences.
func (l *Logger) History() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.history.Lines()
}

// Style applies opts to text, returning plain text on a non-interactive
// output unless style was forced.
func (l *Logger) Style(text string, opts style.Options) string {
	if l.composer.Styled != nil && !l.composer.Styled() {
		opts.Stripped = true
	}
	return style.Apply(text, opts)
}

// Assert reports parts, joined by spaces, as a failed assertion when ok is
// false, on sinks that support it.
func (l *Logger) Assert(ok bool, parts ...any) {
	a, supported := l.sink.(output.Asserter)
	if !supported {
		return
	}
	words := make([]string, len(parts))
	for i, p := range parts {
		words[i] = fmt.Sprint(p)
	}
	a.Assert(ok, strings.Join(words, " "))
}

// Group opens an indented group on sinks that support it.
func (l *Logger) Group(label string) {
	if g, ok := l.sink.(output.Grouper); ok {
		g.Group(label)
	}
}

// GroupEnd closes the innermost group.
func (l *Logger) GroupEnd() {
	if g, ok := l.sink.(output.Grouper); ok {
		g.GroupEnd()
	}
}

// Count prints how many times label was counted, on sinks that count.
func (l *Logger) Count(label string) {
	if c, ok := l.sink.(output.Counter); ok {
		c.Count(label)
	}
}

// CountReset resets the counter of label.
func (l *Logger) CountReset(label string) {
	if c, ok := l.sink.(output.Counter); ok {
		c.CountReset(label)
	}
}

// Time starts the timer label on sinks that time.
func (l *Logger) Time(label string) {
	if t, ok := l.sink.(output.Timer); ok {
		t.Time(label)
	}
}

// TimeLog prints the time elapsed on timer label.
func (l *Logger) TimeLog(label string) {
	if t, ok := l.sink.(output.Timer); ok {
		t.TimeLog(label)
	}
}

// TimeEnd prints and stops the timer label.
func (l *Logger) TimeEnd(label string) {
	if t, ok := l.sink.(output.Timer); ok {
		t.TimeEnd(label)
	}
}
