package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/termlog/internal/level"
)

func TestEmitDispatch(t *testing.T) {
	c := NewCapture()
	for _, ch := range []level.Level{level.Debug, level.Info, level.Warn, level.Error, level.Log, level.Level("other")} {
		Emit(c, ch, string(ch))
	}

	assert.Equal(t, []Entry{
		{level.Debug, "debug"},
		{level.Info, "info"},
		{level.Warn, "warn"},
		{level.Error, "error"},
		{level.Log, "log"},
		{level.Info, "other"},
	}, c.Output())
}

func TestCaptureFilters(t *testing.T) {
	c := NewCapture()
	c.Info("one")
	c.Warn("two")
	c.Info("three")

	assert.Equal(t, []Entry{{level.Info, "one"}, {level.Info, "three"}}, c.OutputOf(level.Info))
	assert.Equal(t, []Entry{{level.Info, "three"}}, c.Output(
		func(e Entry) bool { return e.Channel == level.Info },
		func(e Entry) bool { return strings.HasPrefix(e.Text, "t") },
	))
	assert.Equal(t, []string{"one", "two", "three"}, c.Texts())

	c.Clear()
	assert.Empty(t, c.Output())
}

func TestCaptureSilent(t *testing.T) {
	c := &Capture{Silent: true}
	c.Error("dropped")
	assert.Empty(t, c.Output())
}

func TestConsoleStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)

	c.Info("info")
	c.Log("log")
	c.Debug("debug")
	c.Warn("warn")
	c.Error("error")

	assert.Equal(t, "info\nlog\ndebug\n", out.String())
	assert.Equal(t, "warn\nerror\n", errOut.String())
}

func TestConsoleGroupsAndCounters(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out)

	c.Group("outer")
	c.Info("a\nb")
	c.Count("")
	c.Count("")
	c.CountReset("")
	c.Count("")
	c.GroupEnd()
	c.GroupEnd()
	c.Info("c")

	assert.Equal(t, "outer\n  a\n  b\n  default: 1\n  default: 2\n  default: 1\nc\n", out.String())
}

func TestConsoleTimers(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, &out)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start
	c.now = func() time.Time { return now }

	c.Time("load")
	now = start.Add(1500 * time.Millisecond)
	c.TimeEnd("load")
	c.TimeLog("load")

	assert.Equal(t, "load: 1.5s\nTimer \"load\" does not exist\n", out.String())
}

func TestFileStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.log")
	fs, err := OpenFileStream(path)
	require.NoError(t, err)

	send := fs.Stream()
	require.NoError(t, send(context.Background(), "\x1b[31mred\x1b[0m"))
	require.NoError(t, send(context.Background(), "plain"))
	require.NoError(t, fs.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "red\nplain\n", string(data))
}

func TestFileStreamCancelled(t *testing.T) {
	fs, err := OpenFileStream(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)
	defer fs.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fs.Send(ctx, "x"), context.Canceled)
}

func TestAssert(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(&out, &errOut)
	c.Assert(true, "never shown")
	c.Assert(false, "queue drained")
	c.Assert(false, "")

	assert.Empty(t, out.String())
	assert.Equal(t, "Assertion failed: queue drained\nAssertion failed\n", errOut.String())

	capture := NewCapture()
	capture.Assert(true, "x")
	capture.Assert(false, "y")
	assert.Equal(t, []Entry{{level.Error, "Assertion failed: y"}}, capture.Output())
}
