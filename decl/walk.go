// Package decl implements spec §4.2's declaration processor: a cursor
// walk that classifies each top-level declaration in a translation unit
// by CursorKind and renders it into an output.Item, grounded on the
// dispatch-by-kind shape of the teacher's
// code/parsers/clang.go:visitAstNodes (there: dispatch to collect
// requirement tags; here: dispatch to render declarations).
package decl

import (
	"fmt"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/diagnostics"
	"github.com/daedaleanai/cbindgen/headerset"
	"github.com/daedaleanai/cbindgen/internal/logging"
	"github.com/daedaleanai/cbindgen/output"
)

// Options controls which declarations a Walk call emits.
type Options struct {
	// Headers is the set of header paths in scope for this invocation,
	// keyed by clang.File.Name(). A declaration whose primary location
	// isn't in this set is dropped — spec §4.2 "Only declarations whose
	// primary location resides in the requested set of headers are
	// emitted".
	Headers map[string]bool
	// IncludeSystemHeaders, when false (the default), drops declarations
	// reached only through an angle-bracket system include — spec §4.2
	// "system-header declarations are filtered unless explicitly
	// requested".
	IncludeSystemHeaders bool
	// StubUnsupportedMacros, when true, emits a commented stub for a
	// macro outside ppmac's grammar instead of a MacroUnsupported
	// diagnostic — spec §4.3.
	StubUnsupportedMacros bool
	// Features is the feature-tag set every item produced by this Walk
	// is stamped with (spec GLOSSARY "Feature tag").
	Features headerset.Set
}

// ctx bundles per-walk state threaded through the per-kind handlers
// without each of them needing the full Options/Aggregator argument
// list.
type ctx struct {
	opts Options
	agg  *output.Aggregator
}

// Walk visits every direct child of tu's root cursor, dispatches by
// CursorKind to the handler for that kind, and adds the resulting
// output.Items (or diagnostics.Issues) to agg. Kinds outside the
// dispatch table are ignored with a trace log, per spec §4.2.
func Walk(tu *clang.TranslationUnit, opts Options, agg *output.Aggregator) {
	c := &ctx{opts: opts, agg: agg}
	root := tu.RootCursor()
	root.VisitChildren(func(cursor, _ clang.Cursor, _ bool) clang.VisitAction {
		c.dispatch(cursor)
		return clang.VisitContinue
	})
}

// inScope reports whether cursor's primary (file) location is both in
// the requested header set and, unless explicitly allowed, not a system
// header.
func (c *ctx) inScope(cursor clang.Cursor) (header string, ok bool) {
	loc := cursor.Location()
	if loc.IsInSystemHeader() && !c.opts.IncludeSystemHeaders {
		return "", false
	}
	resolved := loc.FileLocation()
	if resolved.File == nil {
		return "", false
	}
	name := resolved.File.Name()
	if !c.opts.Headers[name] {
		return "", false
	}
	return resolved.File.Stem(), true
}

func (c *ctx) dispatch(cursor clang.Cursor) {
	switch cursor.Kind() {
	case clang.CursorStructDecl, clang.CursorUnionDecl, clang.CursorClassDecl:
		header, ok := c.inScope(cursor)
		if !ok {
			return
		}
		if !cursor.IsDefinition() {
			// Forward declaration only; wait for the defining cursor.
			return
		}
		emitRecord(c, cursor, header, cursor.Kind() == clang.CursorUnionDecl)

	case clang.CursorEnumDecl:
		header, ok := c.inScope(cursor)
		if !ok {
			return
		}
		if !cursor.IsDefinition() {
			return
		}
		emitEnum(c, cursor, header)

	case clang.CursorTypedefDecl:
		header, ok := c.inScope(cursor)
		if !ok {
			return
		}
		emitTypedef(c, cursor, header)

	case clang.CursorFunctionDecl:
		header, ok := c.inScope(cursor)
		if !ok {
			return
		}
		emitFunction(c, cursor, header)

	case clang.CursorVarDecl:
		header, ok := c.inScope(cursor)
		if !ok {
			return
		}
		emitVar(c, cursor, header)

	case clang.CursorMacroDefinition:
		header, ok := c.inScope(cursor)
		if !ok {
			return
		}
		emitMacro(c, cursor, header)

	default:
		logging.Debugf("decl: ignoring cursor kind %s (%s)", cursor.Kind(), cursor.Spelling())
	}
}

// addItem stamps an item with the walk's feature set and adds it to the
// aggregator.
func (c *ctx) addItem(name, header, declText, annotation string) {
	c.agg.Add(output.Item{
		Name:            name,
		Header:          header,
		Features:        c.opts.Features,
		DeclarationText: declText,
		AnnotationText:  annotation,
	})
}

func (c *ctx) addIssue(header, name string, kind diagnostics.Kind, severity diagnostics.Severity, format string, args ...interface{}) {
	c.agg.AddIssue(diagnostics.Issue{
		Header:      header,
		Name:        name,
		Description: fmt.Sprintf(format, args...),
		Severity:    severity,
		Kind:        kind,
	})
}
