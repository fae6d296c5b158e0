// Package output implements spec §4.4's output aggregator: per-header
// collection, deduplication, feature-gate composition, and stable
// emission ordering of translated declarations.
package output

import "github.com/daedaleanai/cbindgen/headerset"

// Item is one declaration ready for emission: a rendered declaration
// string plus the header it came from, the name it's keyed by, the
// feature tags under which it was observed, and an advisory provenance
// annotation.
type Item struct {
	Name            string
	Header          string
	Features        headerset.Set
	DeclarationText string
	AnnotationText  string
}

func (i Item) key() itemKey {
	return itemKey{header: i.Header, name: i.Name}
}

type itemKey struct {
	header string
	name   string
}
