package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Debug, 0},
		{Log, 1},
		{Info, 1},
		{Success, 1},
		{Warn, 2},
		{Error, 3},
		{Silent, 4},
		{Level("custom"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Rank())
		})
	}
}

func TestEnabled(t *testing.T) {
	assert.True(t, Debug.Enabled(Debug))
	assert.False(t, Debug.Enabled(Info))
	assert.True(t, Warn.Enabled(Info))
	assert.False(t, Info.Enabled(Warn))
	assert.True(t, Error.Enabled(Error))
	assert.False(t, Error.Enabled(Silent))
	assert.False(t, Silent.Enabled(Debug))
	assert.True(t, Level("custom").Enabled(Info))
}

func TestChannel(t *testing.T) {
	assert.Equal(t, Info, Success.Channel())
	assert.Equal(t, Warn, Warn.Channel())
	assert.Equal(t, Log, Log.Channel())
	assert.Equal(t, Info, Level("custom").Channel())
}

func TestParse(t *testing.T) {
	l, ok := Parse(" WARN ")
	assert.True(t, ok)
	assert.Equal(t, Warn, l)

	l, ok = Parse("verbose")
	assert.False(t, ok)
	assert.Equal(t, Info, l)
}

func TestDetect(t *testing.T) {
	l, ok := Detect([]string{"--other", "--debug"})
	assert.True(t, ok)
	assert.Equal(t, Debug, l)

	_, ok = Detect([]string{"debug", "-v"})
	assert.False(t, ok)
}
