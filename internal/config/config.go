// Package config loads the YAML file that presets a Logger: threshold,
// decorations, per-level formats and the optional file stream.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/termlog/internal/format"
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/logger"
	"github.com/dmagro/termlog/internal/output"
	"github.com/dmagro/termlog/internal/style"
)

// Config is the root of the configuration file.
type Config struct {
	Level      string            `yaml:"level"`
	Icons      bool              `yaml:"icons"`
	Color      *bool             `yaml:"color"` // nil keeps the derived default
	ForceStyle bool              `yaml:"force_style"`
	Timestamp  bool              `yaml:"timestamp"`
	Elapsed    *int              `yaml:"elapsed"` // precision; nil disables
	Prefix     string            `yaml:"prefix"`
	FPS        float64           `yaml:"fps"`
	Formats    map[string]Format `yaml:"formats"`
	Stream     Stream            `yaml:"stream"`

	threshold level.Level
	formats   map[level.Level]format.Descriptor
}

// Format is the descriptor of one level, colors given by name.
type Format struct {
	Icon       string `yaml:"icon"`
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
}

// Stream configures the secondary destination.
type Stream struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate checks the configuration and resolves level and color names.
// Suspicious values, unknown level names included, are logged as warnings
// and do not fail; an unknown level falls back to info.
func (c *Config) Validate() error {
	if c.Level == "" {
		c.Level = string(level.Info)
	}
	l, ok := level.Parse(c.Level)
	if !ok {
		log.Warn().Str("level", c.Level).Msg("unknown level, using info")
	}
	c.threshold = l

	if c.Elapsed != nil && (*c.Elapsed < 0 || *c.Elapsed > 9) {
		return fmt.Errorf("elapsed precision must be between 0 and 9, got %d", *c.Elapsed)
	}

	if c.FPS < 0 {
		return fmt.Errorf("fps must be >= 0, got %g", c.FPS)
	}
	if c.FPS > 0 && c.FPS < 1 {
		log.Warn().Float64("fps", c.FPS).Msg("fps below 1 drops most lines")
	}
	if c.FPS > 240 {
		log.Warn().Float64("fps", c.FPS).Msg("fps above 240 is faster than any terminal redraws")
	}

	c.formats = make(map[level.Level]format.Descriptor, len(c.Formats))
	for name, f := range c.Formats {
		d, err := f.descriptor()
		if err != nil {
			return fmt.Errorf("formats.%s: %w", name, err)
		}
		c.formats[level.Level(strings.ToLower(name))] = d
	}
	return nil
}

func (f Format) descriptor() (format.Descriptor, error) {
	fg, ok := style.ParseColor(f.Color)
	if !ok {
		return format.Descriptor{}, fmt.Errorf("unknown color %q", f.Color)
	}
	bg, ok := style.ParseBackground(f.Background)
	if !ok {
		return format.Descriptor{}, fmt.Errorf("unknown background %q", f.Background)
	}
	return format.Descriptor{Icon: f.Icon, Color: fg, Background: bg}, nil
}

// Threshold returns the validated level.
func (c *Config) Threshold() level.Level {
	return c.threshold
}

// Options converts the configuration to logger options. Options given on
// the command line should be appended after these.
func (c *Config) Options() []logger.Option {
	opts := []logger.Option{
		logger.WithLevel(c.threshold),
		logger.WithIcons(c.Icons),
		logger.WithForceStyle(c.ForceStyle),
		logger.WithTimestamp(c.Timestamp),
		logger.WithPrefix(c.Prefix),
		logger.WithFPS(c.FPS),
	}
	if c.Color != nil {
		opts = append(opts, logger.WithColor(*c.Color))
	}
	if c.Elapsed != nil {
		opts = append(opts, logger.WithElapsed(*c.Elapsed))
	}
	if len(c.formats) > 0 {
		opts = append(opts, logger.WithFormats(c.formats))
	}
	return opts
}

// OpenStream opens the configured stream file. It returns nil, nil when no
// stream is configured.
func (c *Config) OpenStream() (*output.FileStream, error) {
	if c.Stream.File == "" {
		return nil, nil
	}
	fs, err := output.OpenFileStream(c.Stream.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream: %w", err)
	}
	return fs, nil
}

// Load reads a configuration file, expands ${VAR} references and validates
// it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv sets the KEY=VALUE pairs of a dotenv file, so they can be
// referenced from the configuration. A missing file is not an error.
// Blank lines and # comments are skipped and surrounding quotes removed.
func LoadEnv(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if err := os.Setenv(strings.TrimSpace(key), strings.Trim(strings.TrimSpace(value), `"'`)); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}
