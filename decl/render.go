package decl

import (
	"fmt"
	"strings"

	"github.com/daedaleanai/cbindgen/clang"
)

// renderType renders a clang.Type as the target-language type text used
// in emitted field lists, parameter lists, and typedef bodies. Pointer
// levels are preserved, and a const-qualified pointee renders as
// `*const`. A const qualifier anywhere else (e.g. on a non-pointer
// typedef target or array element) is dropped from the rendered text.
func renderType(t clang.Type) string {
	switch t.Kind() {
	case clang.TypePointer:
		inner := renderType(t.Pointee())
		if t.Pointee().IsConstQualified() {
			return fmt.Sprintf("*const %s", inner)
		}
		return fmt.Sprintf("*mut %s", inner)

	case clang.TypeConstantArray:
		return fmt.Sprintf("[%s; %d]", renderType(t.ArrayElementType()), t.ArraySize())

	case clang.TypeIncompleteArray, clang.TypeVariableArray:
		return fmt.Sprintf("[%s]", renderType(t.ArrayElementType()))

	case clang.TypeRecord, clang.TypeEnum, clang.TypeTypedef:
		return sanitizeTypeSpelling(t.Spelling())

	default:
		return sanitizeTypeSpelling(t.Spelling())
	}
}

// sanitizeTypeSpelling strips a leading "struct "/"union "/"enum " tag
// clang's type spelling carries for untagged-typedef C types, and a
// leading "const " qualifier, neither of which the target language's
// type text carries.
func sanitizeTypeSpelling(s string) string {
	for _, prefix := range []string{"struct ", "union ", "enum ", "const "} {
		s = strings.TrimPrefix(s, prefix)
	}
	return strings.TrimSpace(s)
}
