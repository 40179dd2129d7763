package logger

import (
	"context"
	"time"

	"github.com/dmagro/termlog/internal/format"
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/output"
	"github.com/dmagro/termlog/internal/terminal"
)

// settings collects what the options configure before New builds the Logger.
type settings struct {
	threshold  level.Level
	icons      bool
	color      *bool
	forceStyle bool
	timestamp  bool
	elapsed    bool
	precision  int
	prefix     string
	fps        float64
	sink       output.Sink
	stream     output.Stream
	env        terminal.Environment
	formats    map[level.Level]format.Descriptor
	now        func() time.Time
	ctx        context.Context
}

// Option configures a Logger in New.
type Option func(*settings)

// WithLevel sets the threshold below which calls are suppressed. Unknown
// names rank as info; level.Silent suppresses everything.
func WithLevel(l level.Level) Option {
	return func(s *settings) { s.threshold = l }
}

// WithIcons shows the level icon in front of every line.
func WithIcons(on bool) Option {
	return func(s *settings) { s.icons = on }
}

// WithColor turns level colors on or off. Without it, colors are enabled
// only when the environment is not interactive.
func WithColor(on bool) Option {
	return func(s *settings) { s.color = &on }
}

// WithForceStyle emits escape sequences even on a non-interactive output.
func WithForceStyle(on bool) Option {
	return func(s *settings) { s.forceStyle = on }
}

// WithTimestamp puts an ISO-8601 timestamp in front of every line.
func WithTimestamp(on bool) Option {
	return func(s *settings) { s.timestamp = on }
}

// WithElapsed puts the seconds elapsed since the previous line, with
// precision decimals, in front of every line.
func WithElapsed(precision int) Option {
	return func(s *settings) {
		s.elapsed = true
		s.precision = precision
	}
}

// WithPrefix writes prefix, raw, at the start of every line.
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithFPS drops lines emitted faster than fps per second. Zero disables the
// throttle.
func WithFPS(fps float64) Option {
	return func(s *settings) { s.fps = fps }
}

// WithSink sets the primary destination of composed lines.
func WithSink(sink output.Sink) Option {
	return func(s *settings) { s.sink = sink }
}

// WithStream sets the secondary destination every emitted line is
// broadcast to.
func WithStream(stream output.Stream) Option {
	return func(s *settings) { s.stream = stream }
}

// WithEnvironment sets the terminal the Logger writes cursor sequences to
// and asks for its size.
func WithEnvironment(env terminal.Environment) Option {
	return func(s *settings) { s.env = env }
}

// WithFormats sets per-level descriptors, as SetFormat would.
func WithFormats(formats map[level.Level]format.Descriptor) Option {
	return func(s *settings) { s.formats = formats }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithContext sets the context passed to the stream.
func WithContext(ctx context.Context) Option {
	return func(s *settings) { s.ctx = ctx }
}
