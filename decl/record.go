package decl

import (
	"fmt"
	"strings"

	"github.com/daedaleanai/cbindgen/clang"
)

// field is one rendered struct/union field.
type field struct {
	name string
	text string
}

// emitRecord renders a StructDecl/UnionDecl/ClassDecl cursor as a
// `#[repr(C)]` record declaration under name, recursing into anonymous
// nested records first so they exist under their synthesized name
// before the parent field list references them — spec §4.2 "anonymous
// nested records are emitted as synthesised siblings named
// `<Parent>_Child_<N>`".
func emitRecord(c *ctx, cursor clang.Cursor, header string, isUnion bool) {
	emitRecordNamed(c, cursor, cursor.Spelling(), header, isUnion)
}

// emitRecordNamed is emitRecord with an explicit name, used for
// anonymous nested records whose cursor carries no spelling of its own
// — the synthesized `<Parent>_Child_<N>` name has to come from the
// caller, since a clang.Cursor has no way to rename itself.
func emitRecordNamed(c *ctx, cursor clang.Cursor, name, header string, isUnion bool) {
	if name == "" {
		// Anonymous at top level (not nested in a parent field): no
		// synthesized name is available and nothing refers to it by
		// name, so there is nothing useful to emit.
		return
	}

	fields := renderFields(c, cursor, name, header)

	var b strings.Builder
	b.WriteString("#[repr(C")
	if cursor.HasPackedAttr() {
		b.WriteString(", packed")
	}
	b.WriteString(")]\n")
	if isUnion {
		b.WriteString("pub union ")
	} else {
		b.WriteString("pub struct ")
	}
	b.WriteString(name)
	b.WriteString(" {\n")
	for _, f := range fields {
		b.WriteString("    ")
		b.WriteString(f.text)
		b.WriteString("\n")
	}
	b.WriteString("}")

	c.addItem(name, header, b.String(), cursor.Location().DisplayShort())
}

// renderFields walks cursor's direct FieldDecl children in declaration
// order (spec §4.2 "emit field list preserving declaration order"),
// synthesizing and emitting anonymous nested records as siblings along
// the way.
func renderFields(c *ctx, cursor clang.Cursor, parentName, header string) []field {
	var fields []field
	childIndex := 0

	for _, member := range cursor.Children() {
		if member.Kind() != clang.CursorFieldDecl {
			continue
		}

		fieldName := member.Spelling()
		fieldType := member.Type()
		typeText := renderType(fieldType)

		if fieldType.Kind() == clang.TypeRecord {
			if fieldDecl, ok := fieldType.Declaration(); ok && fieldDecl.Spelling() == "" {
				syntheticName := fmt.Sprintf("%s_Child_%d", parentName, childIndex)
				childIndex++
				emitRecordNamed(c, fieldDecl, syntheticName, header, fieldDecl.Kind() == clang.CursorUnionDecl)
				typeText = syntheticName
			}
		}

		text := fmt.Sprintf("pub %s: %s,", fieldName, typeText)
		if member.IsBitField() {
			text = fmt.Sprintf("pub %s: %s, // bitfield width %d", fieldName, typeText, member.BitWidth())
		}
		fields = append(fields, field{name: fieldName, text: text})
	}

	return fields
}
