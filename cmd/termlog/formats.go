package main

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/dmagro/termlog/internal/style"
)

func formatsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the level formats in effect",
		Long: `List every level with its rank, sink channel, icon and colors, after the
config file and flags are applied.

Example:
  termlog formats --config termlog.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.session(cmd)
			if err != nil {
				return err
			}

			headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
			tbl := table.New("Level", "Rank", "Channel", "Icon", "Color", "Background", "Sample")
			tbl.WithHeaderFormatter(headerFmt)
			tbl.WithWriter(cmd.OutOrStdout())

			for _, l := range s.Levels() {
				d := s.Format(l)
				tbl.AddRow(
					string(l),
					strconv.Itoa(l.Rank()),
					string(l.Channel()),
					orDash(d.Icon),
					orDash(d.Color.Name()),
					orDash(d.Background.Name()),
					s.Style(string(l), style.Options{Color: d.Color, Background: d.Background}),
				)
			}

			tbl.Print()
			return s.Close()
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
