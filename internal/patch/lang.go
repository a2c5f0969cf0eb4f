package patch

import (
	"maps"
	"slices"
)

// Highlighter renders source code extracted from a document
// into highlighted HTML.
// The returned markup must form one or more whole HTML elements.
type Highlighter interface {
	Highlight(src []byte) (string, error)
}

// Registry holds the highlighters available to a patch run,
// indexed by language key.
type Registry map[string]Highlighter

// Set is a set of language keys.
type Set map[string]struct{}

// Add adds a key to the set.
func (s Set) Add(key string) { s[key] = struct{}{} }

// Union folds the contents of other into s.
func (s Set) Union(other Set) {
	for key := range other {
		s[key] = struct{}{}
	}
}

// Sorted returns the keys in the set in sorted order.
func (s Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
