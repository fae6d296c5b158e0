package decl

import (
	"fmt"

	"github.com/daedaleanai/cbindgen/clang"
)

// emitEnum renders an EnumDecl as its backing integer typedef plus one
// constant per EnumConstantDecl child — spec §4.2 "Enum: integer type is
// taken from enum_decl_integer_type(); each constant records its
// evaluated integer value via enum_constant_decl_value()". Nested
// EnumConstantDecl cursors are handled here rather than through Walk's
// top-level dispatch, matching spec §4.2's "EnumConstantDecl (nested)"
// note.
func emitEnum(c *ctx, cursor clang.Cursor, header string) {
	name := cursor.Spelling()
	if name == "" {
		return
	}

	backing := renderType(cursor.EnumIntegerType())
	loc := cursor.Location().DisplayShort()

	c.addItem(name, header, fmt.Sprintf("pub type %s = %s;", name, backing), loc)

	for _, constant := range cursor.Children() {
		if constant.Kind() != clang.CursorEnumConstantDecl {
			continue
		}
		constName := constant.Spelling()
		value := constant.EnumConstantValue()
		decl := fmt.Sprintf("pub const %s: %s = %d;", constName, backing, value)
		c.addItem(constName, header, decl, constant.Location().DisplayShort())
	}
}
