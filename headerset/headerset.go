// Package headerset models the set of headers a single invocation asks
// the pipeline to translate, grouped by feature tag, adapted from
// reqtraq's repos package (which mapped repository names to checked-out
// paths) to instead map feature tags to the header paths and compiler
// arguments parsed under them.
package headerset

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Feature is an opaque label attached to a parse invocation and carried
// through to every item emitted from it (spec GLOSSARY "Feature tag").
type Feature string

// Set is an unordered collection of Features, compared by membership
// rather than order.
type Set map[Feature]struct{}

// NewSet builds a Set from a list of feature names.
func NewSet(names ...Feature) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Union returns the set containing every feature in either operand.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for f := range s {
		out[f] = struct{}{}
	}
	for f := range other {
		out[f] = struct{}{}
	}
	return out
}

// Disjoint reports whether s and other share no feature.
func (s Set) Disjoint(other Set) bool {
	for f := range s {
		if _, ok := other[f]; ok {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same features.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for f := range s {
		if _, ok := other[f]; !ok {
			return false
		}
	}
	return true
}

func (s Set) String() string {
	names := make([]string, 0, len(s))
	for f := range s {
		names = append(names, string(f))
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Header is one header file to be parsed, plus the clang arguments to
// parse it with.
type Header struct {
	Path string
	Args []string
}

// Stem is the header's filename with its extension stripped — the key
// the output aggregator groups declarations by (spec GLOSSARY "Header
// stem").
func (h Header) Stem() string {
	base := filepath.Base(h.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Invocation is one (feature tag, header list, shared clang args) group
// to be parsed together — e.g. the "desktop" or "app" surface of a
// vendor SDK in spec §1's example.
type Invocation struct {
	Features Feature
	Headers  []Header
	Args     []string
}

// Group collects the invocations a single run processes, keyed by
// feature name to catch accidental duplicate registration early rather
// than silently shadowing one invocation with another.
type Group struct {
	invocations map[Feature]Invocation
	order       []Feature
}

// NewGroup returns an empty Group.
func NewGroup() *Group {
	return &Group{invocations: make(map[Feature]Invocation)}
}

// Add registers an invocation under its feature name. It is an error to
// register the same feature name twice.
func (g *Group) Add(inv Invocation) error {
	if _, exists := g.invocations[inv.Features]; exists {
		return errors.Errorf("feature %q already registered", inv.Features)
	}
	g.invocations[inv.Features] = inv
	g.order = append(g.order, inv.Features)
	return nil
}

// All returns every registered invocation, in registration order.
func (g *Group) All() []Invocation {
	out := make([]Invocation, 0, len(g.order))
	for _, f := range g.order {
		out = append(out, g.invocations[f])
	}
	return out
}
