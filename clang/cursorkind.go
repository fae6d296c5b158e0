package clang

import libclang "github.com/go-clang/clang-v14/clang"

// CursorKind is the subset of libclang's CXCursorKind this codebase
// dispatches on (see decl.Walk). Kinds outside this set collapse to
// CursorOther — spec §4.2 says they are "ignored with a trace log", not
// treated as an error, so there is no fallible decode here the way there
// is for TypeKind or CallingConv.
type CursorKind int

const (
	CursorOther CursorKind = iota
	CursorStructDecl
	CursorUnionDecl
	CursorClassDecl
	CursorEnumDecl
	CursorFieldDecl
	CursorEnumConstantDecl
	CursorFunctionDecl
	CursorVarDecl
	CursorParmDecl
	CursorTypedefDecl
	CursorMacroDefinition
	CursorTranslationUnit
	CursorObjCInterfaceDecl
	CursorObjCCategoryDecl
	CursorObjCProtocolDecl
	CursorObjCPropertyDecl
	CursorObjCIvarDecl
	CursorNamespace
	CursorPackedAttr
)

func (k CursorKind) String() string {
	switch k {
	case CursorStructDecl:
		return "StructDecl"
	case CursorUnionDecl:
		return "UnionDecl"
	case CursorClassDecl:
		return "ClassDecl"
	case CursorEnumDecl:
		return "EnumDecl"
	case CursorFieldDecl:
		return "FieldDecl"
	case CursorEnumConstantDecl:
		return "EnumConstantDecl"
	case CursorFunctionDecl:
		return "FunctionDecl"
	case CursorVarDecl:
		return "VarDecl"
	case CursorParmDecl:
		return "ParmDecl"
	case CursorTypedefDecl:
		return "TypedefDecl"
	case CursorMacroDefinition:
		return "MacroDefinition"
	case CursorTranslationUnit:
		return "TranslationUnit"
	case CursorObjCInterfaceDecl:
		return "ObjCInterfaceDecl"
	case CursorObjCCategoryDecl:
		return "ObjCCategoryDecl"
	case CursorObjCProtocolDecl:
		return "ObjCProtocolDecl"
	case CursorObjCPropertyDecl:
		return "ObjCPropertyDecl"
	case CursorObjCIvarDecl:
		return "ObjCIvarDecl"
	case CursorNamespace:
		return "Namespace"
	case CursorPackedAttr:
		return "PackedAttr"
	default:
		return "Other"
	}
}

var cursorKindTable = map[libclang.CursorKind]CursorKind{
	libclang.Cursor_StructDecl:         CursorStructDecl,
	libclang.Cursor_UnionDecl:          CursorUnionDecl,
	libclang.Cursor_ClassDecl:          CursorClassDecl,
	libclang.Cursor_EnumDecl:           CursorEnumDecl,
	libclang.Cursor_FieldDecl:          CursorFieldDecl,
	libclang.Cursor_EnumConstantDecl:   CursorEnumConstantDecl,
	libclang.Cursor_FunctionDecl:       CursorFunctionDecl,
	libclang.Cursor_VarDecl:            CursorVarDecl,
	libclang.Cursor_ParmDecl:           CursorParmDecl,
	libclang.Cursor_TypedefDecl:        CursorTypedefDecl,
	libclang.Cursor_MacroDefinition:    CursorMacroDefinition,
	libclang.Cursor_TranslationUnit:    CursorTranslationUnit,
	libclang.Cursor_ObjCInterfaceDecl:  CursorObjCInterfaceDecl,
	libclang.Cursor_ObjCCategoryDecl:   CursorObjCCategoryDecl,
	libclang.Cursor_ObjCProtocolDecl:   CursorObjCProtocolDecl,
	libclang.Cursor_ObjCPropertyDecl:   CursorObjCPropertyDecl,
	libclang.Cursor_ObjCIvarDecl:       CursorObjCIvarDecl,
	libclang.Cursor_Namespace:          CursorNamespace,
	libclang.Cursor_PackedAttr:         CursorPackedAttr,
}

func cursorKindFromNative(v libclang.CursorKind) CursorKind {
	if k, ok := cursorKindTable[v]; ok {
		return k
	}
	return CursorOther
}
