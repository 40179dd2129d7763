// Package table lays out rows of cells into aligned, optionally framed text
// rows. All width arithmetic is done on visible terminal columns.
package table

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/dmagro/termlog/internal/textwidth"
)

// Align is the horizontal alignment of a column.
type Align string

const (
	Left   Align = "left"
	Right  Align = "right"
	Center Align = "center"
)

// ParseAlign maps a name to an Align; anything unknown is Left.
func ParseAlign(name string) Align {
	switch a := Align(strings.ToLower(strings.TrimSpace(name))); a {
	case Right, Center:
		return a
	default:
		return Left
	}
}

// DefaultPadding is the number of spaces separating columns.
const DefaultPadding = 1

// Options controls Layout.
type Options struct {
	// Padding is added to every column width. Nil means DefaultPadding.
	Padding *int
	// Widths holds minimum widths per column; zero entries are ignored.
	Widths []int
	// Aligns holds one alignment per column. A single entry applies to
	// every column.
	Aligns []Align
	// Border frames the table with a rule above and below.
	Border bool
	// HeadBorder puts a rule under the header row.
	HeadBorder bool
	// FootBorder puts a rule above the last data row.
	FootBorder bool
	// Prefix is prepended to every data row.
	Prefix string
	// Silent asks the caller not to print the rows.
	Silent bool
}

// Pad returns an int pointer for Options.Padding.
func Pad(n int) *int { return &n }

func (o Options) padding() int {
	if o.Padding == nil {
		return DefaultPadding
	}
	return max(*o.Padding, 0)
}

// Rule is the character rules are drawn with.
const Rule = "-"

// Layout renders data under columns. data may be [][]string, [][]any,
// []map[string]any, []map[string]string or []any holding slices or maps.
// Records are projected on columns; without columns their keys are used in
// sorted order. Unsupported or empty data returns nil.
func Layout(data any, columns []string, opts Options) []string {
	rows := Normalize(data, columns)
	if len(rows) == 0 {
		return nil
	}

	var header []string
	if len(columns) > 0 {
		header = columns
	}

	count := len(header)
	for _, row := range rows {
		count = max(count, len(row))
	}

	aligns := broadcast(opts.Aligns, count)
	widths := Widths(rows, header, count, opts.padding(), opts.Widths)

	var out []string
	if header != nil {
		out = append(out, opts.Prefix+renderRow(header, widths, aligns, opts.padding()))
	}
	for _, row := range rows {
		out = append(out, opts.Prefix+renderRow(row, widths, aligns, opts.padding()))
	}

	longest := 0
	for _, line := range out {
		longest = max(longest, textwidth.Width(line))
	}
	rule := strings.Repeat(Rule, longest)

	if opts.FootBorder {
		out = slices.Insert(out, len(out)-1, rule)
	}
	if opts.HeadBorder && header != nil {
		out = slices.Insert(out, 1, rule)
	}
	if opts.Border {
		out = append([]string{rule}, out...)
		out = append(out, rule)
	}
	return out
}

// Widths computes the width of every column: the widest cell (header
// included) plus padding, raised to any explicit override.
func Widths(rows [][]string, header []string, count, padding int, override []int) []int {
	widths := make([]int, count)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], textwidth.Width(cell)+padding)
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	for i := range widths {
		if i < len(override) {
			widths[i] = max(widths[i], override[i])
		}
	}
	return widths
}

func renderRow(row []string, widths []int, aligns []Align, padding int) string {
	var b strings.Builder
	last := len(widths) - 1
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		b.WriteString(align(cell, width, aligns[i], padding, i == last))
	}
	return b.String()
}

func align(cell string, width int, a Align, padding int, last bool) string {
	slack := max(width-textwidth.Width(cell), 0)
	switch a {
	case Right:
		if last {
			return spaces(slack) + cell
		}
		// The trailing padding separates this column from the next one, so a
		// right column followed by another right column still reads as two.
		trail := min(padding, slack)
		return spaces(slack-trail) + cell + spaces(trail)
	case Center:
		return spaces(slack/2) + cell + spaces(slack-slack/2)
	default:
		return cell + spaces(slack)
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func broadcast(aligns []Align, count int) []Align {
	out := make([]Align, count)
	for i := range out {
		switch {
		case len(aligns) == 1:
			out[i] = aligns[0]
		case i < len(aligns):
			out[i] = aligns[i]
		default:
			out[i] = Left
		}
		if out[i] == "" {
			out[i] = Left
		}
	}
	return out
}

// Normalize converts the accepted data shapes to rows of strings.
func Normalize(data any, columns []string) [][]string {
	switch v := data.(type) {
	case [][]string:
		out := make([][]string, len(v))
		for i, row := range v {
			out[i] = append([]string(nil), row...)
		}
		return out
	case [][]any:
		out := make([][]string, len(v))
		for i, row := range v {
			out[i] = cells(row)
		}
		return out
	case []map[string]any:
		out := make([][]string, len(v))
		for i, rec := range v {
			out[i] = project(rec, columns)
		}
		return out
	case []map[string]string:
		out := make([][]string, len(v))
		for i, rec := range v {
			m := make(map[string]any, len(rec))
			for k, s := range rec {
				m[k] = s
			}
			out[i] = project(m, columns)
		}
		return out
	case []any:
		out := make([][]string, 0, len(v))
		for _, item := range v {
			switch row := item.(type) {
			case []any:
				out = append(out, cells(row))
			case []string:
				out = append(out, append([]string(nil), row...))
			case map[string]any:
				out = append(out, project(row, columns))
			default:
				out = append(out, []string{stringify(row)})
			}
		}
		return out
	default:
		return nil
	}
}

func cells(row []any) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = stringify(c)
	}
	return out
}

func project(rec map[string]any, columns []string) []string {
	keys := columns
	if len(keys) == 0 {
		keys = make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		if v, ok := rec[k]; ok {
			out[i] = stringify(v)
		}
	}
	return out
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
