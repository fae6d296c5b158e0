package clang

import libclang "github.com/go-clang/clang-v14/clang"

// Version returns the linked libclang's version string, e.g.
// "clang version 14.0.0". Grounded on abduld-clang-server's own
// ClangVersion helper, which forwards the same native call.
func Version() string {
	return libclang.GetClangVersion()
}
