package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/termlog/internal/textwidth"
)

func isRule(s string) bool {
	return s != "" && strings.Trim(s, Rule) == ""
}

func TestLayoutLeftAligned(t *testing.T) {
	got := Layout([][]any{{"John", 30}, {"Jane", 25}}, []string{"name", "age"}, Options{})

	require.Equal(t, []string{
		"name age ",
		"John 30  ",
		"Jane 25  ",
	}, got)
	for _, row := range got {
		assert.Len(t, row, 5+4)
	}
}

func TestLayoutRecordsWithBorder(t *testing.T) {
	data := []map[string]any{
		{"name": "John", "age": 30, "city": "New York"},
		{"name": "Jane", "age": 25, "city": "Los Angeles"},
		{"name": "Bob", "age": 35, "city": "Chicago"},
	}

	got := Layout(data, []string{"name", "age", "city"}, Options{Padding: Pad(2), Border: true})

	assert.Equal(t, []string{
		"------------------------",
		"name  age  city         ",
		"John  30   New York     ",
		"Jane  25   Los Angeles  ",
		"Bob   35   Chicago      ",
		"------------------------",
	}, got)
}

func TestLayoutBorderAndHeadBorder(t *testing.T) {
	data := []map[string]any{
		{"name": "John", "age": 30},
		{"name": "Jane", "age": 25},
	}

	got := Layout(data, []string{"name", "age"}, Options{Border: true, HeadBorder: true})

	require.Len(t, got, 6)
	first, last := got[0], got[len(got)-1]
	assert.True(t, isRule(first))
	assert.True(t, isRule(last))
	assert.Equal(t, len(first), len(last))
	assert.Equal(t, "name age ", got[1])
	assert.True(t, isRule(got[2]))
}

func TestLayoutFootBorder(t *testing.T) {
	got := Layout([][]string{{"a"}, {"b"}, {"total"}}, nil, Options{FootBorder: true})

	assert.Equal(t, []string{"a     ", "b     ", "------", "total "}, got)
}

func TestLayoutHeadBorderNeedsHeader(t *testing.T) {
	got := Layout([][]string{{"a"}, {"b"}}, nil, Options{HeadBorder: true})
	assert.Equal(t, []string{"a ", "b "}, got)
}

func TestLayoutWideCells(t *testing.T) {
	data := [][]string{
		{"🇩🇪", "Deutsch", "de"},
		{"🇯🇵", "日本語", "ja"},
	}

	got := Layout(data, nil, Options{Silent: true})

	require.Len(t, got, 2)
	widths := Widths(data, nil, 3, DefaultPadding, nil)
	assert.Equal(t, []int{3, 8, 3}, widths)
	for _, row := range got {
		assert.Equal(t, 14, textwidth.Width(row), row)
	}
	assert.Equal(t, "🇩🇪 Deutsch de ", got[0])
	assert.Equal(t, "🇯🇵 日本語  ja ", got[1])
}

func TestLayoutRightAligned(t *testing.T) {
	tests := []struct {
		name    string
		data    [][]string
		columns []string
		aligns  []Align
		want    []string
	}{
		{
			name:    "last column right",
			data:    [][]string{{"apple", "3"}, {"kiwi", "12"}},
			columns: []string{"item", "qty"},
			aligns:  []Align{Left, Right},
			want: []string{
				"item   qty",
				"apple    3",
				"kiwi    12",
			},
		},
		{
			name:    "adjacent right columns stay separated",
			data:    [][]string{{"1", "22", "333"}},
			columns: []string{"a", "b", "c"},
			aligns:  []Align{Right},
			want: []string{
				"a  b    c",
				"1 22  333",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Layout(tt.data, tt.columns, Options{Aligns: tt.aligns})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutCenter(t *testing.T) {
	got := Layout([][]string{{"ab"}}, []string{"x"}, Options{Padding: Pad(3), Aligns: []Align{Center}})
	assert.Equal(t, []string{"  x  ", " ab  "}, got)
}

func TestLayoutWidthOverride(t *testing.T) {
	got := Layout([][]string{{"a", "b"}}, nil, Options{Widths: []int{4}})
	assert.Equal(t, []string{"a   b "}, got)

	// an override narrower than the content is ignored
	got = Layout([][]string{{"abcdef"}}, nil, Options{Widths: []int{2}})
	assert.Equal(t, []string{"abcdef "}, got)
}

func TestLayoutPrefix(t *testing.T) {
	got := Layout([][]string{{"a", "b"}}, []string{"h1", "h2"}, Options{Prefix: "> ", Border: true})
	assert.Equal(t, []string{
		"--------",
		"> h1 h2 ",
		"> a  b  ",
		"--------",
	}, got)
}

func TestLayoutRaggedRows(t *testing.T) {
	got := Layout([][]string{{"a"}, {"b", "c"}}, nil, Options{})
	assert.Equal(t, []string{"a   ", "b c "}, got)
}

func TestLayoutRecordsWithoutColumns(t *testing.T) {
	got := Layout([]map[string]string{{"b": "2", "a": "1"}}, nil, Options{})
	assert.Equal(t, []string{"1 2 "}, got)
}

func TestLayoutMixedSlice(t *testing.T) {
	data := []any{[]any{"x", 1}, map[string]any{"k": "v", "n": 2}}
	got := Layout(data, []string{"k", "n"}, Options{})
	assert.Equal(t, []string{"k n ", "x 1 ", "v 2 "}, got)
}

func TestLayoutEmptyAndUnsupported(t *testing.T) {
	assert.Nil(t, Layout([][]string{}, []string{"a"}, Options{}))
	assert.Nil(t, Layout(nil, nil, Options{}))
	assert.Nil(t, Layout("not rows", nil, Options{}))
	assert.Nil(t, Layout(42, []string{"a"}, Options{Border: true}))
}

func TestParseAlign(t *testing.T) {
	assert.Equal(t, Right, ParseAlign("RIGHT"))
	assert.Equal(t, Center, ParseAlign("center"))
	assert.Equal(t, Left, ParseAlign("justify"))
}
