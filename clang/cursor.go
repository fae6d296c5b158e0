package clang

import (
	"fmt"

	libclang "github.com/go-clang/clang-v14/clang"
)

// Cursor is a (TranslationUnit, native cursor) pair. It is cheap to copy
// and belongs to exactly one TranslationUnit. A null native cursor is
// never wrapped — every constructor that might receive one returns
// (Cursor, bool) instead of a sentinel Cursor value, per spec §3: "A null
// cursor is represented as absence rather than a sentinel value."
type Cursor struct {
	tu     *TranslationUnit
	native libclang.Cursor
}

// wrapCursor wraps a native cursor obtained from tu, or reports false if
// the native cursor is null.
func wrapCursor(tu *TranslationUnit, native libclang.Cursor) (Cursor, bool) {
	if native.IsNull() {
		return Cursor{}, false
	}
	return Cursor{tu: tu, native: native}, true
}

// TranslationUnit returns the translation unit that owns this cursor.
func (c Cursor) TranslationUnit() *TranslationUnit { return c.tu }

// Kind returns the cursor's CursorKind.
func (c Cursor) Kind() CursorKind {
	return cursorKindFromNative(c.native.Kind())
}

// Spelling returns the cursor's name as libclang spells it (e.g. the
// struct tag, the function name, the macro name).
func (c Cursor) Spelling() string {
	return c.native.Spelling()
}

// Definition returns the cursor for the definition of whatever this
// cursor declares, if one exists in this translation unit.
func (c Cursor) Definition() (Cursor, bool) {
	return wrapCursor(c.tu, c.native.Definition())
}

// LexicalParent returns the cursor lexically enclosing this one.
func (c Cursor) LexicalParent() (Cursor, bool) {
	return wrapCursor(c.tu, c.native.LexicalParent())
}

// Location returns the cursor's source location.
func (c Cursor) Location() SourceLocation {
	return newSourceLocation(c.tu, c.native.Location())
}

// Type returns the type of whatever entity this cursor refers to.
func (c Cursor) Type() Type {
	return newType(c.tu, c.native.Type())
}

// TypedefUnderlyingType returns the type a TypedefDecl cursor aliases.
func (c Cursor) TypedefUnderlyingType() Type {
	return newType(c.tu, c.native.TypedefDeclUnderlyingType())
}

// EnumIntegerType returns the integer type backing an EnumDecl cursor.
func (c Cursor) EnumIntegerType() Type {
	return newType(c.tu, c.native.EnumDeclIntegerType())
}

// EnumConstantValue returns the evaluated value of an EnumConstantDecl
// cursor.
func (c Cursor) EnumConstantValue() int64 {
	return c.native.EnumConstantDeclValue()
}

// IsDefinition reports whether this cursor is itself a definition, as
// opposed to a forward declaration.
func (c Cursor) IsDefinition() bool {
	return c.native.IsDefinition()
}

// Tokenize tokenizes this cursor's extent. The result includes the
// framing tokens (e.g. for a macro: the name, the parameter list if any,
// the body, and a trailing newline-equivalent token) — callers that need
// just the body must strip them, see ppmac/decl's macro handling.
func (c Cursor) Tokenize() Tokens {
	extent := c.native.Extent()
	native := c.tu.native.Tokenize(extent)
	return Tokens{tu: c.tu, native: native}
}

// Children returns the direct children of this cursor, in source order.
// It is a convenience built on VisitChildren for callers that don't need
// streaming or early termination.
func (c Cursor) Children() []Cursor {
	var out []Cursor
	c.VisitChildren(func(cursor Cursor, parent Cursor, parentOK bool) VisitAction {
		out = append(out, cursor)
		return VisitContinue
	})
	return out
}

// IsBitField reports whether this FieldDecl cursor declares a bitfield.
func (c Cursor) IsBitField() bool {
	return c.native.IsBitField()
}

// BitWidth returns a bitfield's declared width. Only meaningful when
// IsBitField reports true.
func (c Cursor) BitWidth() int32 {
	return c.native.GetFieldDeclBitWidth()
}

// HasPackedAttr reports whether this cursor has a direct PackedAttr
// child, libclang's signal for a `__attribute__((packed))` record —
// spec §4.2 "packed attributes are propagated".
func (c Cursor) HasPackedAttr() bool {
	for _, child := range c.Children() {
		if child.Kind() == CursorPackedAttr {
			return true
		}
	}
	return false
}

// Equal reports whether two cursors refer to the same AST node, using
// libclang's own equality predicate rather than Go struct equality
// (native cursor values may alias the same node via distinct
// representations).
func (c Cursor) Equal(other Cursor) bool {
	return c.native.Equal(other.native)
}

// Hash returns libclang's hash for this cursor, suitable for use as a
// map key alongside Equal — Cursor itself is not comparable with == in
// the general case because the native type may not have value identity
// the same way across cursors that are ==-equal.
func (c Cursor) Hash() uint32 {
	return c.native.Hash()
}

func (c Cursor) String() string {
	return fmt.Sprintf("%s: %s %q", c.Location().DisplayShort(), c.Kind(), c.Spelling())
}
