package clang

import (
	"sync"

	libclang "github.com/go-clang/clang-v14/clang"
)

// TranslationUnit is the parsed representation of a source file plus its
// command-line arguments and overlay buffers. Cursors, types, tokens,
// locations and files obtained from it all hold a reference back to it
// (see Cursor, Type, Token, SourceLocation, File) so that none of them
// can outlive the translation unit that produced them while the Go
// garbage collector is the one deciding when this struct itself goes
// away.
//
// Disposal happens at most once (guarded by closeOnce) and unregisters
// the TU from the process-wide registry (see registry.go) before
// releasing the native handle.
type TranslationUnit struct {
	index  *Index
	native libclang.TranslationUnit

	closeOnce sync.Once
}

func newTranslationUnit(index *Index, native libclang.TranslationUnit) *TranslationUnit {
	tu := &TranslationUnit{index: index, native: native}
	registry.insert(native, tu)
	return tu
}

// resolveTU looks up the wrapper owning a native handle surfaced by a
// callback. It is the one place outside of construction that reaches
// into the registry.
func resolveTU(native libclang.TranslationUnit) *TranslationUnit {
	return registry.resolve(native)
}

// RootCursor returns the cursor for the translation unit itself, the
// root of the AST. Every translation unit has one; a nil result here
// would indicate libclang hand back a dead TU, which is a precondition
// violation rather than a case this package tries to recover from.
func (tu *TranslationUnit) RootCursor() Cursor {
	native := tu.native.TranslationUnitCursor()
	c, ok := wrapCursor(tu, native)
	if !ok {
		panicInvariant("translation unit has no root cursor")
	}
	return c
}

// Tokenize tokenizes the extent of the root cursor, i.e. the whole file.
func (tu *TranslationUnit) Tokenize() Tokens {
	return tu.RootCursor().Tokenize()
}

// Diagnostics returns the diagnostic messages libclang produced while
// parsing, independent of whether parsing itself "succeeded" (returned a
// non-error ErrorCode).
func (tu *TranslationUnit) Diagnostics() []string {
	n := tu.native.NumDiagnostics()
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		d := tu.native.Diagnostic(i)
		out = append(out, d.Spelling())
		d.Dispose()
	}
	return out
}

// Dispose releases the native translation unit. Safe to call more than
// once; only the first call has an effect.
func (tu *TranslationUnit) Dispose() {
	tu.closeOnce.Do(func() {
		registry.remove(tu.native)
		tu.native.Dispose()
	})
}
