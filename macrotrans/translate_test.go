package macrotrans

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daedaleanai/cbindgen/ppmac"
)

func TestTranslateUnsignedInteger(t *testing.T) {
	got, ok := Translate(ppmac.IntegerNode{Value: 10, Signed: ppmac.SignedNo, Size: ppmac.SizeUnknown})
	assert.True(t, ok)
	assert.Equal(t, Translated{Value: "au32", Type: "u32"}, got)
}

func TestTranslateSignedLongInteger(t *testing.T) {
	got, ok := Translate(ppmac.IntegerNode{Value: 255, Signed: ppmac.SignedYes, Size: ppmac.SizeLong})
	assert.True(t, ok)
	assert.Equal(t, "i64", got.Type)
}

func TestTranslateString(t *testing.T) {
	got, ok := Translate(ppmac.StringNode{Value: "hi"})
	assert.True(t, ok)
	assert.Equal(t, Translated{Value: `"hi"`, Type: "&'static str"}, got)
}

func TestTranslateCastPointer(t *testing.T) {
	got, ok := Translate(ppmac.CastNode{
		Type:  ppmac.TypeNode{Name: "void", Pointer: true},
		Value: ppmac.IntegerNode{Value: 0, Signed: ppmac.SignedYes, Size: ppmac.SizeUnknown},
	})
	assert.True(t, ok)
	assert.Equal(t, "*mut void", got.Type)
	assert.Equal(t, "0i32 as *mut void", got.Value)
}

func TestTranslateUnaryComplement(t *testing.T) {
	got, ok := Translate(ppmac.UnaryNode{
		Op:   ppmac.UnaryCom,
		Expr: ppmac.IntegerNode{Value: 1, Signed: ppmac.SignedNo, Size: ppmac.SizeUnknown},
	})
	assert.True(t, ok)
	assert.Equal(t, "!1u32", got.Value)
}

func TestTranslateTextCallUnwraps(t *testing.T) {
	got, ok := Translate(ppmac.CallNode{
		Subject: ppmac.IdentNode{Name: "TEXT"},
		Args:    []ppmac.Node{ppmac.StringNode{Value: "x"}},
	})
	assert.True(t, ok)
	assert.Equal(t, `"x"`, got.Value)
}

func TestTranslateUnsupportedCallIsRejected(t *testing.T) {
	_, ok := Translate(ppmac.CallNode{
		Subject: ppmac.IdentNode{Name: "OTHER"},
		Args:    []ppmac.Node{ppmac.IntegerNode{Value: 1}},
	})
	assert.False(t, ok)
}

func TestTranslateBareIdentUnsupported(t *testing.T) {
	_, ok := Translate(ppmac.IdentNode{Name: "FOO"})
	assert.False(t, ok)
}
