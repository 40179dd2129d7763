package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmagro/termlog/internal/level"
	"github.com/dmagro/termlog/internal/style"
)

func TestResolveDefaults(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, Descriptor{Icon: "∆", Color: style.Yellow}, r.Resolve(level.Warn, nil))
	assert.Equal(t, Descriptor{Icon: "ℹ"}, r.Resolve(level.Info, nil))
	assert.True(t, r.Resolve(level.Level("custom"), nil).IsZero())
}

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		name     string
		entry    *Descriptor
		override *Descriptor
		want     Descriptor
	}{
		{
			name: "default only",
			want: Descriptor{Icon: "×", Color: style.Red},
		},
		{
			name:  "registry over default",
			entry: &Descriptor{Icon: "!", Background: style.BgWhite},
			want:  Descriptor{Icon: "!", Color: style.Red, Background: style.BgWhite},
		},
		{
			name:     "override over registry",
			entry:    &Descriptor{Icon: "!", Color: style.Magenta},
			override: &Descriptor{Color: style.Cyan},
			want:     Descriptor{Icon: "!", Color: style.Cyan},
		},
		{
			name:     "override over default",
			override: &Descriptor{Icon: "❌"},
			want:     Descriptor{Icon: "❌", Color: style.Red},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			if tt.entry != nil {
				r.Set(level.Error, *tt.entry)
			}
			assert.Equal(t, tt.want, r.Resolve(level.Error, tt.override))
		})
	}
}

func TestSetReplacesWithoutMerging(t *testing.T) {
	r := NewRegistry()
	r.Set(level.Info, Descriptor{Icon: "i", Color: style.Blue})
	r.Set(level.Info, Descriptor{Color: style.Green})

	got, ok := r.Get(level.Info)
	assert.True(t, ok)
	assert.Equal(t, Descriptor{Color: style.Green}, got)

	// the empty icon falls back to the default, not to the previous entry
	assert.Equal(t, Descriptor{Icon: "ℹ", Color: style.Green}, r.Resolve(level.Info, nil))
}

func TestLevels(t *testing.T) {
	r := NewRegistry()
	r.Set(level.Level("trace"), Descriptor{Icon: "~"})

	got := r.Levels()
	assert.Equal(t, level.Debug, got[0])
	assert.Contains(t, got, level.Level("trace"))
	assert.Equal(t, level.Error, got[len(got)-1])
}

func TestDescriptorHelpers(t *testing.T) {
	d := Descriptor{Icon: "x", Color: style.Red, Background: style.BgBlack}
	assert.Equal(t, Descriptor{Color: style.Red, Background: style.BgBlack}, d.WithoutIcon())
	assert.Equal(t, Descriptor{Icon: "x"}, d.WithoutColors())
	assert.Equal(t, style.Options{Color: style.Red, Background: style.BgBlack}, d.Style())
}
