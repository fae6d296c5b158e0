package clang

import (
	"path/filepath"
	"strings"

	libclang "github.com/go-clang/clang-v14/clang"
	"golang.org/x/text/unicode/norm"
)

// File is a handle to one file participating in a translation unit,
// borrowed from a SourceLocation.
type File struct {
	tu     *TranslationUnit
	native libclang.File
}

func newFile(tu *TranslationUnit, native libclang.File) File {
	return File{tu: tu, native: native}
}

// Name returns the file's name, with path separators normalized to '/'
// regardless of host platform and its Unicode form normalized to NFC —
// libclang headers retrieved from case-sensitive or differently-encoded
// filesystems can otherwise produce two spellings of the same path that
// compare unequal. This is what spec §3 calls the "platform-normalized
// filename". Grounded on reqtraq's clang.go, which resolves a
// clang.File the same way via TryGetRealPathName rather than the
// type's raw spelling accessor.
func (f File) Name() string {
	return NormalizePath(f.native.TryGetRealPathName())
}

// NormalizePath applies the same path-separator and Unicode normalization
// to an arbitrary path that File.Name applies to a libclang-reported one,
// so callers building the Headers set a decl.Walk scopes against compare
// equal to what a parsed cursor's location resolves to.
func NormalizePath(path string) string {
	return norm.NFC.String(filepath.ToSlash(path))
}

// Stem returns the file's base name with its extension stripped, used
// throughout output/ as the key grouping declarations by header (spec
// GLOSSARY "Header stem").
func (f File) Stem() string {
	base := filepath.Base(f.Name())
	return strings.TrimSuffix(base, filepath.Ext(base))
}
