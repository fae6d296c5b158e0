package output

import (
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/daedaleanai/cbindgen/diagnostics"
)

// entry is the aggregator's internal record for one (header, name) key:
// the merged item plus its first-observation index, used to reproduce
// first-observation emission order (spec §4.4 "Ordering").
type entry struct {
	item  Item
	order int
}

// Aggregator collects Items across every header/feature invocation of a
// run, merging duplicates and flagging conflicts. It accumulates
// per-item errors with hashicorp/go-multierror rather than aborting —
// spec §4.4 "Failure handling": "Translation errors are accumulated per
// item without aborting the overall pipeline".
type Aggregator struct {
	entries map[itemKey]*entry
	next    int
	errs    *multierror.Error
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{entries: make(map[itemKey]*entry)}
}

// Add inserts an item. A second insertion under the same (header, name)
// key with identical declaration text merges feature sets; one with
// different declaration text is a conflict unless its feature set is
// disjoint from that of the item first recorded under that key — in
// which case it is kept as a feature-discriminated alternative rather
// than merged, matching spec §4.4's keying rule. Only the first-recorded
// item is compared against; alternatives already kept for the key are
// not consulted.
func (a *Aggregator) Add(item Item) {
	key := item.key()
	existing, ok := a.entries[key]
	if !ok {
		a.entries[key] = &entry{item: item, order: a.next}
		a.next++
		return
	}

	if existing.item.DeclarationText == item.DeclarationText {
		existing.item.Features = existing.item.Features.Union(item.Features)
		return
	}

	if existing.item.Features.Disjoint(item.Features) {
		// Keep as-is: a later emit pass renders per-feature alternatives
		// under the same name rather than overwriting the first.
		a.entries[itemKey{header: key.header, name: key.name + "@" + item.Features.String()}] = &entry{
			item:  item,
			order: a.next,
		}
		a.next++
		return
	}

	a.errs = multierror.Append(a.errs, diagnostics.Issue{
		Header:       item.Header,
		Name:         item.Name,
		Annotation:   item.AnnotationText,
		Description:  "conflicting declaration for " + item.Name,
		Severity:     diagnostics.SeverityItem,
		Kind:         diagnostics.KindConflictingDeclaration,
		ExistingText: existing.item.DeclarationText,
		IncomingText: item.DeclarationText,
	})
}

// AddIssue records a translation failure against the running error
// accumulator without touching the item table.
func (a *Aggregator) AddIssue(issue diagnostics.Issue) {
	a.errs = multierror.Append(a.errs, issue)
}

// Errors returns the accumulated per-item errors, or nil if there were
// none.
func (a *Aggregator) Errors() error {
	if a.errs == nil || len(a.errs.Errors) == 0 {
		return nil
	}
	return a.errs
}

// ByHeader groups every recorded item by header, each header's items in
// first-observation order.
func (a *Aggregator) ByHeader() map[string][]Item {
	type indexed struct {
		item  Item
		order int
	}
	byHeader := make(map[string][]indexed)
	for key, e := range a.entries {
		byHeader[key.header] = append(byHeader[key.header], indexed{item: e.item, order: e.order})
	}

	out := make(map[string][]Item, len(byHeader))
	for header, items := range byHeader {
		sort.Slice(items, func(i, j int) bool { return items[i].order < items[j].order })
		rendered := make([]Item, len(items))
		for i, it := range items {
			rendered[i] = it.item
		}
		out[header] = rendered
	}
	return out
}
