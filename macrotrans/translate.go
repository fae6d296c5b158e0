// Package macrotrans implements the constant-subset translation rules
// from spec §4.3, ported line-for-line from the original prototype's
// `try_trans_inty_macro` in src/process/trans_macros.rs.
package macrotrans

import (
	"fmt"

	"github.com/daedaleanai/cbindgen/ppmac"
)

// Translated is a successfully translated constant: its rendered value
// expression and its target-language type.
type Translated struct {
	Value string
	Type  string
}

// Translate recognises the constant subset of spec §4.3's grammar and
// renders it to a (value, type) pair. ok is false for any node outside
// that subset — spec: "Any other node produces 'unsupported macro' and
// no output (unless stubbing is enabled)".
func Translate(node ppmac.Node) (Translated, bool) {
	switch n := node.(type) {
	case ppmac.CallNode:
		ident, ok := n.Subject.(ppmac.IdentNode)
		if !ok || ident.Name != "TEXT" || len(n.Args) != 1 {
			return Translated{}, false
		}
		return Translate(n.Args[0])

	case ppmac.CastNode:
		ty, ok := n.Type.(ppmac.TypeNode)
		if !ok {
			return Translated{}, false
		}
		value, ok := Translate(n.Value)
		if !ok {
			return Translated{}, false
		}
		ptr := ""
		if ty.Pointer {
			ptr = "*mut "
		}
		targetType := ptr + ty.Name
		return Translated{
			Value: fmt.Sprintf("%s as %s", value.Value, targetType),
			Type:  targetType,
		}, true

	case ppmac.IntegerNode:
		switch {
		case n.Signed == ppmac.SignedNo && n.Size == ppmac.SizeUnknown:
			return Translated{Value: fmt.Sprintf("%xu32", n.Value), Type: "u32"}, true
		case n.Signed == ppmac.SignedNo && n.Size == ppmac.SizeLong:
			return Translated{Value: fmt.Sprintf("%xu64", n.Value), Type: "u64"}, true
		case n.Signed == ppmac.SignedYes && n.Size == ppmac.SizeUnknown:
			return Translated{Value: fmt.Sprintf("%xi32", int32(n.Value)), Type: "i32"}, true
		default: // Yes, Long
			return Translated{Value: fmt.Sprintf("%xi64", int64(n.Value)), Type: "i64"}, true
		}

	case ppmac.StringNode:
		return Translated{Value: fmt.Sprintf("%q", n.Value), Type: "&'static str"}, true

	case ppmac.UnaryNode:
		inner, ok := Translate(n.Expr)
		if !ok {
			return Translated{}, false
		}
		switch n.Op {
		case ppmac.UnaryCom:
			return Translated{Value: "!" + inner.Value, Type: inner.Type}, true
		case ppmac.UnaryNeg:
			return Translated{Value: "-" + inner.Value, Type: inner.Type}, true
		}
		return Translated{}, false

	default:
		return Translated{}, false
	}
}
