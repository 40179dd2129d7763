// Package format resolves how a level is presented: its icon, foreground
// and background.
package format

import (
	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/style"
)

// Descriptor is the icon/color/background triple of one level. Empty fields
// are unset and fall back during resolution.
type Descriptor struct {
	Icon       string
	Color      style.Color
	Background style.Color
}

// IsZero reports whether no field is set.
func (d Descriptor) IsZero() bool {
	return d.Icon == "" && !d.Color.IsSet() && !d.Background.IsSet()
}

// Over fills the unset fields of d from base.
func (d Descriptor) Over(base Descriptor) Descriptor {
	if d.Icon == "" {
		d.Icon = base.Icon
	}
	if !d.Color.IsSet() {
		d.Color = base.Color
	}
	if !d.Background.IsSet() {
		d.Background = base.Background
	}
	return d
}

// WithoutIcon returns d with the icon cleared.
func (d Descriptor) WithoutIcon() Descriptor {
	d.Icon = ""
	return d
}

// WithoutColors returns d with both colors cleared.
func (d Descriptor) WithoutColors() Descriptor {
	d.Color, d.Background = style.None, style.None
	return d
}

// Style converts d to style options.
func (d Descriptor) Style() style.Options {
	return style.Options{Color: d.Color, Background: d.Background}
}

var defaults = map[level.Level]Descriptor{
	level.Debug:   {Icon: "•", Color: style.Dim},
	level.Log:     {},
	level.Info:    {Icon: "ℹ"},
	level.Warn:    {Icon: "∆", Color: style.Yellow},
	level.Error:   {Icon: "×", Color: style.Red},
	level.Success: {Icon: "✓", Color: style.Green},
}

// Default returns the built-in descriptor of l; unknown levels have none.
func Default(l level.Level) Descriptor {
	return defaults[l]
}
