package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/termlog/internal/format"
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/logger"
	"github.com/dmagro/termlog/internal/style"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TERMLOG_TEST_PREFIX", "build")
	path := writeFile(t, "termlog.yaml", `
level: warn
icons: true
color: false
elapsed: 2
prefix: "${TERMLOG_TEST_PREFIX}> "
fps: 30
formats:
  warn: { icon: "!", color: magenta, background: bg-white }
  notice: { icon: "N" }
stream:
  file: /tmp/termlog.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, level.Warn, cfg.Threshold())
	assert.Equal(t, "build> ", cfg.Prefix)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
	require.NotNil(t, cfg.Elapsed)
	assert.Equal(t, 2, *cfg.Elapsed)
	assert.Equal(t, "/tmp/termlog.log", cfg.Stream.File)
	assert.Equal(t, map[level.Level]format.Descriptor{
		level.Warn:            {Icon: "!", Color: style.Magenta, Background: style.BgWhite},
		level.Level("notice"): {Icon: "N"},
	}, cfg.formats)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad yaml", "level: [", "failed to parse config"},
		{"negative fps", "fps: -1", "fps must be >= 0"},
		{"elapsed precision", "elapsed: 12", "elapsed precision"},
		{"unknown color", "formats:\n  info: { color: mauve }", `formats.info: unknown color "mauve"`},
		{"unknown background", "formats:\n  info: { background: plaid }", `unknown background "plaid"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "c.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	cfg := &Config{Level: "verbose"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, level.Info, cfg.Threshold())
	assert.Contains(t, buf.String(), "verbose")

	loaded, err := Load(writeFile(t, "c.yaml", "level: LOUD\n"))
	require.NoError(t, err)
	assert.Equal(t, level.Info, loaded.Threshold())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, level.Info, cfg.Threshold())
	assert.Nil(t, cfg.Color)
	assert.Nil(t, cfg.Elapsed)
}

func TestOptions(t *testing.T) {
	path := writeFile(t, "c.yaml", `
level: debug
icons: true
formats:
  info: { icon: "i" }
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	l, capture := logger.NewCaptured(cfg.Options()...)
	l.Debug("d")
	l.Info("x")
	assert.Equal(t, []string{"• d", "i x"}, capture.Texts())
}

func TestOpenStream(t *testing.T) {
	cfg := Default()
	fs, err := cfg.OpenStream()
	require.NoError(t, err)
	assert.Nil(t, fs)

	cfg.Stream.File = filepath.Join(t.TempDir(), "stream.log")
	fs, err = cfg.OpenStream()
	require.NoError(t, err)
	require.NotNil(t, fs)
	assert.NoError(t, fs.Close())

	blocker := writeFile(t, "blocker", "")
	cfg.Stream.File = filepath.Join(blocker, "stream.log")
	_, err = cfg.OpenStream()
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, ".env", `
# comment
TERMLOG_TEST_A=plain
TERMLOG_TEST_B="quoted=value"
broken line
`)
	t.Setenv("TERMLOG_TEST_A", "")
	t.Setenv("TERMLOG_TEST_B", "")

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "plain", os.Getenv("TERMLOG_TEST_A"))
	assert.Equal(t, "quoted=value", os.Getenv("TERMLOG_TEST_B"))

	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), ".env")))
}
