package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/termlog/internal/logging"
	"github.com/dmagro/termlog/internal/table"
)

// tableDoc is the file rendered by the table command. Rows are lists of
// cells or records keyed by column.
type tableDoc struct {
	Columns []string `yaml:"columns"`
	Rows    []any    `yaml:"rows"`
}

func loadTable(path string) (*tableDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	var doc tableDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse table: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, fmt.Errorf("table %s has no rows", path)
	}
	return &doc, nil
}

func tableCmd(g *globals) *cobra.Command {
	var (
		padding    int
		widths     []int
		aligns     []string
		border     bool
		headBorder bool
		footBorder bool
		rowPrefix  string
	)

	cmd := &cobra.Command{
		Use:   "table FILE",
		Short: "Render a YAML table with aligned columns",
		Long: `Render FILE, a YAML document with optional columns and a list of rows:

  columns: [name, qty]
  rows:
    - [apple, 3]
    - {name: pear, qty: 12}

Examples:
  termlog table fruits.yaml
  termlog table fruits.yaml --padding 2 --align left,right --border`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadTable(args[0])
			if err != nil {
				return err
			}

			opts := table.Options{
				Widths:     widths,
				Border:     border,
				HeadBorder: headBorder,
				FootBorder: footBorder,
				Prefix:     rowPrefix,
			}
			if cmd.Flags().Changed("padding") {
				opts.Padding = table.Pad(padding)
			}
			for _, a := range aligns {
				opts.Aligns = append(opts.Aligns, table.ParseAlign(strings.TrimSpace(a)))
			}

			s, err := g.session(cmd)
			if err != nil {
				return err
			}
			start := time.Now()
			s.Table(doc.Rows, doc.Columns, opts)
			logging.Duration(logging.Component("table"), start, "layout")
			return s.Close()
		},
	}

	cmd.Flags().IntVar(&padding, "padding", table.DefaultPadding, "Spaces between columns")
	cmd.Flags().IntSliceVar(&widths, "width", nil, "Minimum width per column")
	cmd.Flags().StringSliceVar(&aligns, "align", nil, "Alignment per column: left|right|center (one value applies to all)")
	cmd.Flags().BoolVar(&border, "border", false, "Rule above and below the table")
	cmd.Flags().BoolVar(&headBorder, "head-border", false, "Rule under the header")
	cmd.Flags().BoolVar(&footBorder, "foot-border", false, "Rule above the last row")
	cmd.Flags().StringVar(&rowPrefix, "row-prefix", "", "Text written before every row")
	return cmd
}
