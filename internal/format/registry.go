package format

import (
	"sort"

	"github.com/dmagro/termlog/internal/level"
)

// Registry maps level names to descriptors set by the caller.
type Registry struct {
	entries map[level.Level]Descriptor
}

// NewRegistry returns an empty registry; every level resolves to its
// built-in default until Set is called.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[level.Level]Descriptor)}
}

// Set stores d for l, replacing any previous entry. Fields left empty stay
// empty; they are not merged with the previous entry.
func (r *Registry) Set(l level.Level, d Descriptor) {
	r.entries[l] = d
}

// Get returns the entry stored for l.
func (r *Registry) Get(l level.Level) (Descriptor, bool) {
	d, ok := r.entries[l]
	return d, ok
}

// Resolve merges, field by field, the override, the registry entry and the
// built-in default of l, in that order of priority.
func (r *Registry) Resolve(l level.Level, override *Descriptor) Descriptor {
	d := Default(l)
	if entry, ok := r.entries[l]; ok {
		d = entry.Over(d)
	}
	if override != nil {
		d = override.Over(d)
	}
	return d
}

// Levels returns the built-in levels plus any custom level that has an
// entry, sorted by rank then name.
func (r *Registry) Levels() []level.Level {
	seen := make(map[level.Level]bool)
	var out []level.Level
	for _, l := range level.All() {
		seen[l] = true
		out = append(out, l)
	}
	var custom []level.Level
	for l := range r.entries {
		if !seen[l] {
			custom = append(custom, l)
		}
	}
	sort.Slice(custom, func(i, j int) bool { return custom[i] < custom[j] })
	out = append(out, custom...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank() < out[j].Rank() })
	return out
}
