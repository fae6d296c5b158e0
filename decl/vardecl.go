package decl

import (
	"fmt"

	"github.com/daedaleanai/cbindgen/clang"
)

// emitVar renders a top-level VarDecl as an extern static — spec §4.2
// "Variable: name, type, const-ness".
func emitVar(c *ctx, cursor clang.Cursor, header string) {
	name := cursor.Spelling()
	if name == "" {
		return
	}
	typ := cursor.Type()
	mutability := "mut "
	if typ.IsConstQualified() {
		mutability = ""
	}
	decl := fmt.Sprintf(`extern "C" {
    pub static %s%s: %s;
}`, mutability, name, renderType(typ))
	c.addItem(name, header, decl, cursor.Location().DisplayShort())
}
