package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/daedaleanai/cbindgen/headerset"
)

// Emit renders one header's items to w in first-observation order,
// gating each declaration with a feature predicate when it was not
// observed under every feature the run parsed — spec §4.4 "Ordering":
// "features are emitted as a predicate preceding each item. Annotation
// text ... is appended verbatim and is purely advisory."
//
// universe is every feature tag the run parsed under; an item whose
// Features equals universe needs no gate (it was observed everywhere)
// — spec §8 scenario 6's "items observed in both must merge ... items
// observed only in {desktop} must emit with a gate predicate
// equivalent to 'desktop only'".
func Emit(w io.Writer, items []Item, universe headerset.Set) error {
	for _, item := range items {
		if !item.Features.Equal(universe) {
			if _, err := fmt.Fprintf(w, "#[cfg(any(%s))]\n", featurePredicate(item.Features)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, item.DeclarationText); err != nil {
			return err
		}
		if item.AnnotationText != "" {
			if _, err := fmt.Fprintf(w, "/* %s */\n", item.AnnotationText); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// featurePredicate renders a feature set as a cfg-style predicate body,
// features sorted for deterministic output across runs.
func featurePredicate(set headerset.Set) string {
	names := make([]string, 0, len(set))
	for f := range set {
		names = append(names, string(f))
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("feature = %q", n)
	}
	return strings.Join(parts, ", ")
}
