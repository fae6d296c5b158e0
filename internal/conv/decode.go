package conv

import "github.com/pkg/errors"

// nativeEnum is the set of native enum key types Decoder accepts:
// libclang represents every enum (CXTypeKind, CXCursorKind, CXErrorCode,
// CXCallingConv, ...) as a C uint under the hood, but go-clang gives each
// one its own defined Go type rather than a bare uint32.
type nativeEnum interface {
	~uint32
}

// Decoder maps a raw native enum value to a typed Go value. Type kinds
// and calling conventions go through a Decoder instead of a bare type
// conversion, so that a libclang value outside the range this codebase
// knows about surfaces as an error instead of a bogus enum member.
// Cursor kinds and error codes use their own lookups, which fall back to
// CursorOther and ErrorUnknown respectively.
type Decoder[K nativeEnum, T comparable] struct {
	name  string
	table map[K]T
}

// NewDecoder builds a Decoder from a native-value -> Go-value table.
func NewDecoder[K nativeEnum, T comparable](name string, table map[K]T) Decoder[K, T] {
	return Decoder[K, T]{name: name, table: table}
}

// Decode looks up v in the table. Callers that must tolerate unknown
// values (e.g. a newer libclang adding an ErrorCode this codebase
// doesn't list) should fall back to a designated "unknown" member
// instead of propagating this error.
func (d Decoder[K, T]) Decode(v K) (T, error) {
	t, ok := d.table[v]
	if !ok {
		var zero T
		return zero, errors.Errorf("unrecognized %s value %d", d.name, v)
	}
	return t, nil
}
