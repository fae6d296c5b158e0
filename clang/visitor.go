package clang

import libclang "github.com/go-clang/clang-v14/clang"

// VisitAction is the three-valued result a visitor callback returns to
// control traversal, matching libclang's CXChildVisitResult.
type VisitAction int

const (
	VisitBreak VisitAction = iota
	VisitContinue
	VisitRecurse
)

func (a VisitAction) toNative() libclang.ChildVisitResult {
	switch a {
	case VisitBreak:
		return libclang.ChildVisit_Break
	case VisitRecurse:
		return libclang.ChildVisit_Recurse
	default:
		return libclang.ChildVisit_Continue
	}
}

// VisitTermination reports why VisitChildren stopped: it either ran to
// completion (Normal) or a callback returned VisitBreak (Early).
type VisitTermination int

const (
	VisitNormal VisitTermination = iota
	VisitEarly
)

// VisitFunc is the callback signature for VisitChildren. parentOK is
// false when the root cursor has no parent (it is visiting itself), per
// spec §3's "A null cursor is represented as absence".
type VisitFunc func(cursor Cursor, parent Cursor, parentOK bool) VisitAction

// VisitChildren walks the direct children of c, invoking f for each. The
// underlying libclang API takes a C function pointer and opaque
// userdata; go-clang already hides that FFI boundary from us, but it
// still calls back into this Go closure from within a C frame, so a
// panic inside f must not be allowed to unwind through it. The thunk
// here recovers any such panic, turns the visit into an early
// VisitBreak so libclang's traversal loop exits cleanly, and re-raises
// the panic once clang_visitChildren has returned — see spec §4.1 and
// §4.9 ("Visitor callbacks across the native boundary"). The callback
// cursors carry only the native translation-unit handle they came from,
// not our wrapper, so the thunk resolves their owning *TranslationUnit
// through the registry (spec §3 invariant ii, §8) rather than assuming
// they belong to c's own tu.
func (c Cursor) VisitChildren(f VisitFunc) VisitTermination {
	var caught interface{}

	thunk := func(cursor, parent libclang.Cursor) (result libclang.ChildVisitResult) {
		defer func() {
			if r := recover(); r != nil {
				caught = r
				result = libclang.ChildVisit_Break
			}
		}()

		owner := resolveTU(cursor.TranslationUnit())

		wrapped, ok := wrapCursor(owner, cursor)
		if !ok {
			panicInvariant("visitor received a null cursor")
		}
		parentWrapped, parentOK := wrapCursor(owner, parent)
		return f(wrapped, parentWrapped, parentOK).toNative()
	}

	status := c.native.Visit(thunk)

	if caught != nil {
		panic(caught)
	}
	if status == 0 {
		return VisitNormal
	}
	return VisitEarly
}
