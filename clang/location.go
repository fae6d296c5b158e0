package clang

import (
	"fmt"
	"path/filepath"

	libclang "github.com/go-clang/clang-v14/clang"
)

// SourceLocation resolves to a (file, line, column, offset) tuple under
// either of two semantics: instantiation (follows macro expansion to the
// call site) or file (the physical spelling). See GLOSSARY.
type SourceLocation struct {
	tu     *TranslationUnit
	native libclang.SourceLocation
}

func newSourceLocation(tu *TranslationUnit, native libclang.SourceLocation) SourceLocation {
	return SourceLocation{tu: tu, native: native}
}

// Resolved is the decoded form of a SourceLocation under one of the two
// resolution semantics.
type Resolved struct {
	File   *File
	Line   uint32
	Column uint32
	Offset uint32
}

// InstantiationLocation resolves through macro expansion to the call
// site.
func (l SourceLocation) InstantiationLocation() Resolved {
	file, line, col, offset := l.native.InstantiationLocation()
	return l.resolved(file, line, col, offset)
}

// FileLocation resolves to the physical spelling location, ignoring
// macro expansion.
func (l SourceLocation) FileLocation() Resolved {
	file, line, col, offset := l.native.FileLocation()
	return l.resolved(file, line, col, offset)
}

func (l SourceLocation) resolved(file libclang.File, line, col, offset uint32) Resolved {
	r := Resolved{Line: line, Column: col, Offset: offset}
	if !file.IsNull() {
		f := newFile(l.tu, file)
		r.File = &f
	}
	return r
}

// IsInSystemHeader reports whether this location lies in a header
// reached only through an angle-bracket include of a system path.
func (l SourceLocation) IsInSystemHeader() bool {
	return l.native.IsInSystemHeader()
}

// IsFromMainFile reports whether this location lies directly in the
// file passed to Index.Parse, as opposed to one of its includes.
func (l SourceLocation) IsFromMainFile() bool {
	return l.native.IsFromMainFile()
}

// DisplayShort renders "basename.h:line:col", following the
// instantiation location and using just the file's base name — this is
// exactly the annotation text spec §6 calls for
// ("/* <file>:<line>:<col> */").
func (l SourceLocation) DisplayShort() string {
	r := l.InstantiationLocation()
	if r.File == nil {
		return fmt.Sprintf("(unknown):%d:%d", r.Line, r.Column)
	}
	return fmt.Sprintf("%s:%d:%d", filepath.Base(r.File.Name()), r.Line, r.Column)
}

// SourceRange is a half-open range between two source locations.
type SourceRange struct {
	tu     *TranslationUnit
	native libclang.SourceRange
}

func newSourceRange(tu *TranslationUnit, native libclang.SourceRange) SourceRange {
	return SourceRange{tu: tu, native: native}
}

// Start returns the range's start location.
func (r SourceRange) Start() SourceLocation {
	return newSourceLocation(r.tu, r.native.RangeStart())
}

// End returns the range's end location.
func (r SourceRange) End() SourceLocation {
	return newSourceLocation(r.tu, r.native.RangeEnd())
}
