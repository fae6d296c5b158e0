package ppmac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpressionInteger(t *testing.T) {
	node, err := Expression([]string{"10U"})
	require.NoError(t, err)
	assert.Equal(t, IntegerNode{Value: 10, Signed: SignedNo, Size: SizeUnknown}, node)
}

func TestExpressionIntegerHexLong(t *testing.T) {
	node, err := Expression([]string{"0xFFUL"})
	require.NoError(t, err)
	assert.Equal(t, IntegerNode{Value: 0xff, Signed: SignedNo, Size: SizeLong}, node)
}

func TestExpressionSignedDefault(t *testing.T) {
	node, err := Expression([]string{"42"})
	require.NoError(t, err)
	assert.Equal(t, IntegerNode{Value: 42, Signed: SignedYes, Size: SizeUnknown}, node)
}

func TestExpressionString(t *testing.T) {
	node, err := Expression([]string{`"hello"`})
	require.NoError(t, err)
	assert.Equal(t, StringNode{Value: "hello", Wide: false}, node)
}

func TestExpressionUnaryNeg(t *testing.T) {
	node, err := Expression([]string{"-", "1"})
	require.NoError(t, err)
	assert.Equal(t, UnaryNode{Op: UnaryNeg, Expr: IntegerNode{Value: 1, Signed: SignedYes, Size: SizeUnknown}}, node)
}

func TestExpressionCast(t *testing.T) {
	node, err := Expression([]string{"(", "uint32_t", ")", "1"})
	require.NoError(t, err)
	want := CastNode{
		Type:  TypeNode{Name: "uint32_t"},
		Value: IntegerNode{Value: 1, Signed: SignedYes, Size: SizeUnknown},
	}
	assert.Equal(t, want, node)
}

func TestExpressionCastPointer(t *testing.T) {
	node, err := Expression([]string{"(", "void", "*", ")", "0"})
	require.NoError(t, err)
	want := CastNode{
		Type:  TypeNode{Name: "void", Pointer: true},
		Value: IntegerNode{Value: 0, Signed: SignedYes, Size: SizeUnknown},
	}
	assert.Equal(t, want, node)
}

func TestExpressionParenthesized(t *testing.T) {
	node, err := Expression([]string{"(", "FOO", ")"})
	require.NoError(t, err)
	assert.Equal(t, IdentNode{Name: "FOO"}, node)
}

func TestExpressionCallTEXT(t *testing.T) {
	node, err := Expression([]string{"TEXT", "(", "1", ")"})
	require.NoError(t, err)
	want := CallNode{
		Subject: IdentNode{Name: "TEXT"},
		Args:    []Node{IntegerNode{Value: 1, Signed: SignedYes, Size: SizeUnknown}},
	}
	assert.Equal(t, want, node)
}

func TestExpressionIncompleteParseErrors(t *testing.T) {
	_, err := Expression([]string{"1", "2"})
	assert.Error(t, err)
}

func TestExpressionMismatchErrors(t *testing.T) {
	_, err := Expression([]string{")"})
	assert.Error(t, err)
}
