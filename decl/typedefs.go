package decl

import (
	"fmt"

	"github.com/daedaleanai/cbindgen/clang"
)

// emitTypedef renders a TypedefDecl as a type alias to its canonical
// underlying type, preserving pointer levels and pointee const
// qualifiers; a top-level const on the underlying type is dropped (see
// renderType).
func emitTypedef(c *ctx, cursor clang.Cursor, header string) {
	name := cursor.Spelling()
	if name == "" {
		return
	}
	underlying := cursor.TypedefUnderlyingType().Canonical()
	decl := fmt.Sprintf("pub type %s = %s;", name, renderType(underlying))
	c.addItem(name, header, decl, cursor.Location().DisplayShort())
}
