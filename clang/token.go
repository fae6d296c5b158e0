package clang

import libclang "github.com/go-clang/clang-v14/clang"

// Token is a (TranslationUnit, native token) pair. Tokens are always
// obtained as part of a Tokens batch (see Cursor.Tokenize) since
// libclang tokenizes and disposes them as a unit.
type Token struct {
	tu     *TranslationUnit
	native libclang.Token
}

// Spelling is the token's exact source text.
func (t Token) Spelling() string {
	return t.native.Spelling(t.tu.native)
}

// Location is the token's source location.
func (t Token) Location() SourceLocation {
	return newSourceLocation(t.tu, t.native.Location(t.tu.native))
}

// Extent is the token's source range, used by the macro processor to
// determine column adjacency between consecutive tokens (spec §4.3
// step 2).
func (t Token) Extent() SourceRange {
	return newSourceRange(t.tu, t.native.Extent(t.tu.native))
}

// Tokens is the result of tokenizing a cursor's extent. It owns the
// native token buffer and releases it on Dispose — callers that hold a
// Tokens across a long-lived scope must call Dispose explicitly; Tokens
// does not rely on a finalizer.
type Tokens struct {
	tu     *TranslationUnit
	native []libclang.Token
}

// Len returns the number of tokens.
func (ts Tokens) Len() int { return len(ts.native) }

// At returns the token at index i. Panics on an out-of-range index,
// matching slice semantics.
func (ts Tokens) At(i int) Token {
	return Token{tu: ts.tu, native: ts.native[i]}
}

// Get returns the token at index i, or false if i is out of range.
func (ts Tokens) Get(i int) (Token, bool) {
	if i < 0 || i >= len(ts.native) {
		return Token{}, false
	}
	return ts.At(i), true
}

// All returns every token in forward order.
func (ts Tokens) All() []Token {
	out := make([]Token, ts.Len())
	for i := range out {
		out[i] = ts.At(i)
	}
	return out
}

// Reversed returns every token in reverse order.
func (ts Tokens) Reversed() []Token {
	all := ts.All()
	out := make([]Token, len(all))
	for i, t := range all {
		out[len(all)-1-i] = t
	}
	return out
}

// Dispose releases the native token buffer.
func (ts Tokens) Dispose() {
	ts.tu.native.DisposeTokens(ts.native)
}
