package output

import (
	"context"

	"github.com/dmagro/termlog/internal/level"
)

// Sink receives fully composed lines, one call per emitted line.
type Sink interface {
	Debug(line string)
	Info(line string)
	Warn(line string)
	Error(line string)
	Log(line string)
}

// Clearer is implemented by sinks that can forget or wipe what they showed.
type Clearer interface {
	Clear()
}

// Grouper is implemented by sinks that indent nested groups.
type Grouper interface {
	Group(label string)
	GroupEnd()
}

// Counter is implemented by sinks that count labelled calls.
type Counter interface {
	Count(label string)
	CountReset(label string)
}

// Timer is implemented by sinks that time labelled operations.
type Timer interface {
	Time(label string)
	TimeLog(label string)
	TimeEnd(label string)
}

// Asserter is implemented by sinks that report failed assertions.
type Asserter interface {
	Assert(ok bool, line string)
}

// Stream is a secondary destination receiving every emitted line. It runs
// off the caller's goroutine.
type Stream func(ctx context.Context, line string) error

// Emit sends line to the sink method of channel.
func Emit(s Sink, channel level.Level, line string) {
	switch channel {
	case level.Debug:
		s.Debug(line)
	case level.Warn:
		s.Warn(line)
	case level.Error:
		s.Error(line)
	case level.Log:
		s.Log(line)
	default:
		s.Info(line)
	}
}
