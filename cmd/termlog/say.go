package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/termlog/internal/level"
)

func sayCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "say LEVEL MESSAGE...",
		Short: "Print one leveled line",
		Long: `Print the message parts joined by spaces, styled as LEVEL.

LEVEL is debug, log, info, warn, error or success, in any case. Any other
name prints at info rank with the format configured for it, if any.

Examples:
  termlog say success "deployed"
  termlog say warn --icons disk 93%`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session(cmd)
			if err != nil {
				return err
			}

			parts := make([]any, len(args)-1)
			for i, a := range args[1:] {
				parts[i] = a
			}
			s.Print(level.Level(strings.ToLower(strings.TrimSpace(args[0]))), nil, parts...)
			return s.Close()
		},
	}
}
