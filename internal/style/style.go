// Package style holds the color vocabulary and the function that wraps text
// in SGR sequences.
package style

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is an SGR attribute. The zero value means "unset".
type Color color.Attribute

// Foreground colors
const (
	None    Color = 0
	Bold          = Color(color.Bold)
	Dim           = Color(color.Faint)
	Black         = Color(color.FgBlack)
	Red           = Color(color.FgRed)
	Green         = Color(color.FgGreen)
	Yellow        = Color(color.FgYellow)
	Blue          = Color(color.FgBlue)
	Magenta       = Color(color.FgMagenta)
	Cyan          = Color(color.FgCyan)
	White         = Color(color.FgWhite)
)

// Background colors
const (
	BgBlack   = Color(color.BgBlack)
	BgRed     = Color(color.BgRed)
	BgGreen   = Color(color.BgGreen)
	BgYellow  = Color(color.BgYellow)
	BgBlue    = Color(color.BgBlue)
	BgMagenta = Color(color.BgMagenta)
	BgCyan    = Color(color.BgCyan)
	BgWhite   = Color(color.BgWhite)
)

// IsSet reports whether c carries an attribute.
func (c Color) IsSet() bool { return c != None }

// Options controls Apply.
type Options struct {
	Color      Color
	Background Color
	// Stripped returns the text untouched whatever the colors are.
	Stripped bool
}

// painter returns the fatih/color printer for o, nil when no color is set.
// Color is forced on: whether escapes may be emitted is decided by the
// caller through Stripped, not by color.NoColor.
func (o Options) painter() *color.Color {
	var attrs []color.Attribute
	if o.Color.IsSet() {
		attrs = append(attrs, color.Attribute(o.Color))
	}
	if o.Background.IsSet() {
		attrs = append(attrs, color.Attribute(o.Background))
	}
	if len(attrs) == 0 {
		return nil
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Apply wraps every line of text in its own open/reset pair so that colors
// never bleed across a line break.
func Apply(text string, opts Options) string {
	if opts.Stripped {
		return text
	}
	c := opts.painter()
	if c == nil {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = c.Sprint(line)
	}
	return strings.Join(lines, "\n")
}

var foregrounds = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
	"dim":     Dim,
	"bold":    Bold,
}

var backgrounds = map[string]Color{
	"black":   BgBlack,
	"red":     BgRed,
	"green":   BgGreen,
	"yellow":  BgYellow,
	"blue":    BgBlue,
	"magenta": BgMagenta,
	"cyan":    BgCyan,
	"white":   BgWhite,
}

// ParseColor maps a color name to a foreground Color. The empty name
// resolves to None.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return None, true
	}
	c, ok := foregrounds[name]
	return c, ok
}

// ParseBackground maps a color name ("white" or "bg-white") to a
// background Color.
func ParseBackground(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(strings.TrimPrefix(name, "bg-"), "bg_")
	if name == "" || name == "none" {
		return None, true
	}
	c, ok := backgrounds[name]
	return c, ok
}

// Name returns the lowercase name of c, "" for None.
func (c Color) Name() string {
	if c == None {
		return ""
	}
	for name, fg := range foregrounds {
		if fg == c {
			return name
		}
	}
	for name, bg := range backgrounds {
		if bg == c {
			return "bg-" + name
		}
	}
	return strconv.Itoa(int(c))
}
