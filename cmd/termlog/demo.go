package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmagro/termlog/internal/logger"
)

type demoOptions struct {
	steps      int
	delay      time.Duration
	width      int
	burst      int
	burstDelay time.Duration
	fps        float64
}

func demoCmd(g *globals) *cobra.Command {
	var opts demoOptions

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Progress playground: in-place bar and frame-rate throttle",
		Long: `Draw a progress bar that is redrawn in place, then emit a burst of lines
through a frame-rate throttle and report how many got through.

On a non-interactive output the bar frames are printed one under another.

Examples:
  termlog demo
  termlog demo --steps 50 --delay 20ms --fps 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				select {
				case <-sigCh:
					cancel()
				case <-ctx.Done():
				}
			}()

			return runDemo(ctx, cmd, g, opts)
		},
	}

	cmd.Flags().IntVar(&opts.steps, "steps", 30, "Number of bar steps")
	cmd.Flags().DurationVar(&opts.delay, "delay", 60*time.Millisecond, "Delay between bar steps")
	cmd.Flags().IntVar(&opts.width, "width", 24, "Bar width in columns")
	cmd.Flags().IntVar(&opts.burst, "burst", 200, "Lines emitted in the throttle burst")
	cmd.Flags().DurationVar(&opts.burstDelay, "burst-delay", 5*time.Millisecond, "Delay between burst lines")
	cmd.Flags().Float64Var(&opts.fps, "fps", 20, "Frame rate of the burst logger")
	return cmd
}

func runDemo(ctx context.Context, cmd *cobra.Command, g *globals, opts demoOptions) error {
	if opts.steps < 1 {
		return fmt.Errorf("steps must be > 0, got %d", opts.steps)
	}
	if opts.delay <= 0 {
		opts.delay = time.Millisecond
	}

	s, err := g.session(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.HideCursor()
	defer s.ShowCursor()

	s.Info("Progress")
	ticker := time.NewTicker(opts.delay)
	defer ticker.Stop()

	drawn := 0
	for i := 0; i < opts.steps; i++ {
		select {
		case <-ctx.Done():
			s.Warn("interrupted at step", i)
			return nil
		case <-ticker.C:
		}
		if drawn > 0 {
			s.CursorUp(drawn, true)
		}
		bar := logger.Bar(i, opts.steps, logger.BarOptions{Width: opts.width})
		drawn = s.Info(s.Cut(bar, 0))
	}
	s.Success("done")

	burst, err := g.session(cmd, logger.WithFPS(opts.fps))
	if err != nil {
		return err
	}
	defer burst.Close()

	printed := 0
	for i := 0; i < opts.burst; i++ {
		if ctx.Err() != nil {
			break
		}
		if burst.Info("frame", i+1) > 0 {
			printed++
		}
		if opts.burstDelay > 0 {
			time.Sleep(opts.burstDelay)
		}
	}
	s.Info(fmt.Sprintf("%d of %d lines passed the %g fps throttle", printed, opts.burst, opts.fps))
	return nil
}
