package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dmagro/termlog/internal/config"
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/logger"
	"github.com/dmagro/termlog/internal/logging"
	"github.com/dmagro/termlog/internal/output"
	"github.com/dmagro/termlog/internal/terminal"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	cfgPath   string
	envPath   string
	levelName string
	prefix    string
	noColor   bool
	icons     bool
	verbosity int
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "termlog",
		Short: "Leveled terminal output, tables and in-place progress",
		Long: `termlog prints leveled, styled lines and aligned tables, and redraws
progress output in place on interactive terminals.

Examples:
  termlog say warn "disk almost full"
  termlog table fruits.yaml --border --align left,right
  termlog formats --config termlog.yaml
  termlog demo --steps 40`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(g.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.cfgPath, "config", "", "Config file path (YAML)")
	flags.StringVar(&g.envPath, "env-file", ".env", "Dotenv file loaded before the config")
	flags.StringVar(&g.levelName, "level", "", "Threshold: debug|log|info|warn|error|silent")
	flags.StringVar(&g.prefix, "prefix", "", "Text written before every line")
	flags.BoolVar(&g.noColor, "no-color", false, "Disable colors")
	flags.BoolVar(&g.icons, "icons", false, "Show level icons")
	flags.CountVarP(&g.verbosity, "verbose", "v", "Diagnostics on stderr (-v INFO, -vv DEBUG, -vvv TRACE)")

	cmd.AddCommand(sayCmd(g))
	cmd.AddCommand(tableCmd(g))
	cmd.AddCommand(formatsCmd(g))
	cmd.AddCommand(demoCmd(g))
	return cmd
}

// loadConfig loads the dotenv file then the config file, or the defaults
// when no config is given.
func (g *globals) loadConfig() (*config.Config, error) {
	if err := config.LoadEnv(g.envPath); err != nil {
		return nil, err
	}
	if g.cfgPath == "" {
		return config.Default(), nil
	}
	diag := logging.Component("config")
	defer logging.Duration(diag, time.Now(), "load "+g.cfgPath)

	cfg, err := config.Load(g.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// options returns the config options followed by the flag overrides.
func (g *globals) options(cmd *cobra.Command, cfg *config.Config) ([]logger.Option, error) {
	opts := cfg.Options()
	flags := cmd.Flags()

	if flags.Changed("level") {
		l, ok := level.Parse(g.levelName)
		if !ok {
			log.Warn().Str("level", g.levelName).Msg("unknown level, using info")
		}
		opts = append(opts, logger.WithLevel(l))
	}
	if flags.Changed("icons") {
		opts = append(opts, logger.WithIcons(g.icons))
	}
	if flags.Changed("prefix") {
		opts = append(opts, logger.WithPrefix(g.prefix))
	}
	if g.noColor {
		color.NoColor = true
		opts = append(opts, logger.WithColor(false))
	}
	return opts, nil
}

// environment returns the terminal behind w. Anything that is not a file is
// treated as a non-interactive 80 column output.
func environment(w io.Writer) terminal.Environment {
	if f, ok := w.(*os.File); ok {
		return terminal.NewStdio(f)
	}
	return &terminal.Fixed{Out: w}
}

// session is a Logger wired to the command's output, plus the cleanup that
// drains and closes its stream.
type session struct {
	*logger.Logger
	stream *output.FileStream
}

func (g *globals) session(cmd *cobra.Command, extra ...logger.Option) (*session, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	opts, err := g.options(cmd, cfg)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	opts = append(opts,
		logger.WithSink(output.NewConsole(out, cmd.ErrOrStderr())),
		logger.WithEnvironment(environment(out)),
		logger.WithContext(cmd.Context()),
	)

	fs, err := cfg.OpenStream()
	if err != nil {
		return nil, err
	}
	if fs != nil {
		opts = append(opts, logger.WithStream(fs.Stream()))
	}

	return &session{Logger: logger.New(append(opts, extra...)...), stream: fs}, nil
}

// Close waits for pending broadcasts and closes the stream file.
func (s *session) Close() error {
	err := s.Wait()
	if s.stream != nil {
		err = errors.Join(err, s.stream.Close())
	}
	return err
}
