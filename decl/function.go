package decl

import (
	"fmt"
	"strings"

	"github.com/daedaleanai/cbindgen/clang"
)

// emitFunction renders a FunctionDecl as an `extern "C"` prototype: its
// ordered parameter types (with names, if present), variadic flag,
// calling convention, and result type — spec §4.2 "Function: ordered
// parameter types, variadic flag, calling convention, result type".
func emitFunction(c *ctx, cursor clang.Cursor, header string) {
	name := cursor.Spelling()
	if name == "" {
		return
	}
	fnType := cursor.Type()

	paramNames := make([]string, 0, 4)
	for _, child := range cursor.Children() {
		if child.Kind() == clang.CursorParmDecl {
			paramNames = append(paramNames, child.Spelling())
		}
	}

	argTypes := fnType.Args()
	params := make([]string, 0, len(argTypes))
	for i, argType := range argTypes {
		paramName := fmt.Sprintf("arg%d", i)
		if i < len(paramNames) && paramNames[i] != "" {
			paramName = paramNames[i]
		}
		params = append(params, fmt.Sprintf("%s: %s", paramName, renderType(argType)))
	}
	if fnType.IsVariadicFunction() {
		params = append(params, "...")
	}

	abi := "C"
	if cc, err := fnType.CallingConv(); err == nil {
		abi = callingConvABI(cc)
	}

	result := renderType(fnType.Result())
	var ret string
	if result != "()" && result != "void" {
		ret = " -> " + result
	}

	decl := fmt.Sprintf(`extern "%s" {
    pub fn %s(%s)%s;
}`, abi, name, strings.Join(params, ", "), ret)

	c.addItem(name, header, decl, cursor.Location().DisplayShort())
}

// callingConvABI maps a clang.CallingConv to the ABI string Rust's
// extern block syntax expects.
func callingConvABI(cc clang.CallingConv) string {
	switch cc {
	case clang.CallingConvX86StdCall:
		return "stdcall"
	case clang.CallingConvX86FastCall:
		return "fastcall"
	case clang.CallingConvX86ThisCall:
		return "thiscall"
	case clang.CallingConvAAPCS, clang.CallingConvAAPCS_VFP:
		return "aapcs"
	case clang.CallingConvX86_64Win64:
		return "win64"
	case clang.CallingConvX86_64SysV:
		return "sysv64"
	default:
		return "C"
	}
}
