// Package level defines severity names, their ranks and the sink channel
// each one is emitted on.
package level

import "strings"

// Level names a severity. New names may be used freely: they rank as Info
// and are emitted on the info channel.
type Level string

const (
	Debug   Level = "debug"
	Log     Level = "log"
	Info    Level = "info"
	Warn    Level = "warn"
	Error   Level = "error"
	Success Level = "success"
	// Silent is only meaningful as a threshold; nothing is emitted at it.
	Silent Level = "silent"
)

// Rank values used for threshold gating.
const (
	RankDebug  = 0
	RankInfo   = 1
	RankWarn   = 2
	RankError  = 3
	RankSilent = 4
)

var ranks = map[Level]int{
	Debug:   RankDebug,
	Log:     RankInfo,
	Info:    RankInfo,
	Success: RankInfo,
	Warn:    RankWarn,
	Error:   RankError,
	Silent:  RankSilent,
}

// Rank returns the severity of l; unknown names rank as Info.
func (l Level) Rank() int {
	if r, ok := ranks[l]; ok {
		return r
	}
	return RankInfo
}

// Channel returns the sink method a line at this level is sent to.
func (l Level) Channel() Level {
	switch l {
	case Debug, Info, Warn, Error, Log:
		return l
	default:
		return Info
	}
}

// Enabled reports whether a line at l passes the threshold.
func (l Level) Enabled(threshold Level) bool {
	rank := l.Rank()
	return rank < RankSilent && threshold.Rank() <= rank
}

// Parse normalises a level name. Unknown names fall back to Info and report
// false.
func Parse(name string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := ranks[l]; ok {
		return l, true
	}
	return Info, false
}

// Detect returns the level named by the first --debug, --info, --warn,
// --error or --silent flag in argv.
func Detect(argv []string) (Level, bool) {
	for _, arg := range argv {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		switch l := Level(strings.TrimPrefix(arg, "--")); l {
		case Debug, Info, Warn, Error, Silent:
			return l, true
		}
	}
	return "", false
}

// All lists the levels that can be emitted, in rank order.
func All() []Level {
	return []Level{Debug, Log, Info, Success, Warn, Error}
}
