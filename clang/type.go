package clang

import (
	libclang "github.com/go-clang/clang-v14/clang"

	"github.com/daedaleanai/cbindgen/internal/conv"
)

// TypeKind is the subset of CXTypeKind the declaration processor and
// macro translator need to distinguish.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypeVoid
	TypeBool
	TypeIntegerFamily
	TypeFloatFamily
	TypePointer
	TypeConstantArray
	TypeIncompleteArray
	TypeVariableArray
	TypeFunctionProto
	TypeFunctionNoProto
	TypeRecord
	TypeEnum
	TypeTypedef
	TypeObjCInterface
	TypeObjCObjectPointer
)

var typeKindTable = map[libclang.TypeKind]TypeKind{
	libclang.Type_Void:             TypeVoid,
	libclang.Type_Bool:             TypeBool,
	libclang.Type_Char_U:           TypeIntegerFamily,
	libclang.Type_UChar:            TypeIntegerFamily,
	libclang.Type_Char16:           TypeIntegerFamily,
	libclang.Type_Char32:           TypeIntegerFamily,
	libclang.Type_UShort:           TypeIntegerFamily,
	libclang.Type_UInt:             TypeIntegerFamily,
	libclang.Type_ULong:            TypeIntegerFamily,
	libclang.Type_ULongLong:        TypeIntegerFamily,
	libclang.Type_UInt128:          TypeIntegerFamily,
	libclang.Type_Char_S:           TypeIntegerFamily,
	libclang.Type_SChar:            TypeIntegerFamily,
	libclang.Type_WChar:            TypeIntegerFamily,
	libclang.Type_Short:            TypeIntegerFamily,
	libclang.Type_Int:              TypeIntegerFamily,
	libclang.Type_Long:             TypeIntegerFamily,
	libclang.Type_LongLong:         TypeIntegerFamily,
	libclang.Type_Int128:           TypeIntegerFamily,
	libclang.Type_Float:            TypeFloatFamily,
	libclang.Type_Double:           TypeFloatFamily,
	libclang.Type_LongDouble:       TypeFloatFamily,
	libclang.Type_Pointer:          TypePointer,
	libclang.Type_ConstantArray:    TypeConstantArray,
	libclang.Type_IncompleteArray:  TypeIncompleteArray,
	libclang.Type_VariableArray:    TypeVariableArray,
	libclang.Type_FunctionProto:    TypeFunctionProto,
	libclang.Type_FunctionNoProto:  TypeFunctionNoProto,
	libclang.Type_Record:           TypeRecord,
	libclang.Type_Enum:             TypeEnum,
	libclang.Type_Typedef:          TypeTypedef,
	libclang.Type_ObjCInterface:    TypeObjCInterface,
	libclang.Type_ObjCObjectPointer: TypeObjCObjectPointer,
}

var typeKindDecoder = conv.NewDecoder("CXTypeKind", typeKindTable)

// CallingConv is the subset of CXCallingConv this codebase surfaces on
// function types.
type CallingConv int

const (
	CallingConvInvalid CallingConv = iota
	CallingConvDefault
	CallingConvC
	CallingConvX86StdCall
	CallingConvX86FastCall
	CallingConvX86ThisCall
	CallingConvAAPCS
	CallingConvAAPCS_VFP
	CallingConvX86_64Win64
	CallingConvX86_64SysV
)

var callingConvTable = map[libclang.CallingConv]CallingConv{
	libclang.CallingConv_Default:     CallingConvDefault,
	libclang.CallingConv_C:           CallingConvC,
	libclang.CallingConv_X86StdCall:  CallingConvX86StdCall,
	libclang.CallingConv_X86FastCall: CallingConvX86FastCall,
	libclang.CallingConv_X86ThisCall: CallingConvX86ThisCall,
	libclang.CallingConv_AAPCS:       CallingConvAAPCS,
	libclang.CallingConv_AAPCS_VFP:   CallingConvAAPCS_VFP,
	libclang.CallingConv_X86_64Win64: CallingConvX86_64Win64,
	libclang.CallingConv_X86_64SysV:  CallingConvX86_64SysV,
}

var callingConvDecoder = conv.NewDecoder("CXCallingConv", callingConvTable)

// Type is a (TranslationUnit, native type) pair, always borrowed from a
// Cursor.
type Type struct {
	tu     *TranslationUnit
	native libclang.Type
}

func newType(tu *TranslationUnit, native libclang.Type) Type {
	return Type{tu: tu, native: native}
}

// Kind returns the type's TypeKind. A libclang type kind this codebase
// doesn't list is an invariant violation, not a graceful Unexposed: it
// means the dispatch tables above need extending, not that the input is
// malformed. This mirrors the Rust original's `.expect("valid type kind
// for type")` — unlike CursorKind, which deliberately tolerates unknown
// kinds (spec §3: traversal must keep working across clang versions that
// add new declaration kinds we simply skip), a type kind we can't decode
// means a type we don't know how to translate at all, which decl/ has no
// safe default for.
func (t Type) Kind() TypeKind {
	k, err := typeKindDecoder.Decode(t.native.Kind())
	if err != nil {
		panicInvariant("%s", err)
	}
	return k
}

// Spelling is the type's textual rendering, as libclang would print it
// in a diagnostic.
func (t Type) Spelling() string {
	return t.native.Spelling()
}

// Canonical resolves through typedefs to the underlying type.
func (t Type) Canonical() Type {
	return newType(t.tu, t.native.CanonicalType())
}

// Pointee returns the type pointed to, valid only when Kind() ==
// TypePointer.
func (t Type) Pointee() Type {
	return newType(t.tu, t.native.PointeeType())
}

// ArrayElementType returns the element type of an array type.
func (t Type) ArrayElementType() Type {
	return newType(t.tu, t.native.ArrayElementType())
}

// ArraySize returns the declared element count of a constant array type.
func (t Type) ArraySize() int64 {
	return t.native.ArraySize()
}

// Args returns a function type's parameter types, in declaration order.
func (t Type) Args() []Type {
	n := t.native.NumArgTypes()
	out := make([]Type, 0, n)
	for i := int32(0); i < n; i++ {
		out = append(out, newType(t.tu, t.native.ArgType(uint32(i))))
	}
	return out
}

// Result returns a function type's return type.
func (t Type) Result() Type {
	return newType(t.tu, t.native.ResultType())
}

// IsConstQualified reports whether the type carries a top-level const
// qualifier.
func (t Type) IsConstQualified() bool {
	return t.native.IsConstQualifiedType()
}

// IsVariadicFunction reports whether a function type ends in `...`.
func (t Type) IsVariadicFunction() bool {
	return t.native.IsFunctionTypeVariadic()
}

// CallingConv returns the calling convention of a function type.
func (t Type) CallingConv() (CallingConv, error) {
	return callingConvDecoder.Decode(t.native.FunctionTypeCallingConv())
}

// SizeOf returns the type's size in bytes. libclang encodes certain
// failure modes (incomplete type, dependent type, ...) as negative
// sentinel values rather than a side channel; per spec Open Question
// (a), this codebase always surfaces those as an error instead of a raw
// negative number.
func (t Type) SizeOf() (uint64, error) {
	return sizeOrAlign(t.native.SizeOf())
}

// AlignOf returns the type's alignment in bytes, with the same negative
// -> error treatment as SizeOf.
func (t Type) AlignOf() (uint64, error) {
	return sizeOrAlign(t.native.AlignOf())
}

func sizeOrAlign(v int64) (uint64, error) {
	return conv.CheckedUint[uint64](v)
}

// Declaration returns the cursor that declares this type (e.g. the
// StructDecl for a record type).
func (t Type) Declaration() (Cursor, bool) {
	return wrapCursor(t.tu, t.native.Declaration())
}
