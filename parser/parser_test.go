package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mito/ast"
	"mito/lexer"
)

func parse(t *testing.T, src string) []ast.Expr {
	t.Helper()
	toks := lexer.New(src).Scan()
	exprs, err := New(toks).Parse()
	require.NoError(t, err)
	return exprs
}

func TestPrecedenceAdditionOverMultiplication(t *testing.T) {
	exprs := parse(t, "a + b * c;")
	require.Len(t, exprs, 1)
	add, ok := exprs[0].(ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, add.Op)
	_, rhsIsMul := add.Right.(ast.Binary)
	assert.True(t, rhsIsMul)
}

func TestLeftAssociativeSubtraction(t *testing.T) {
	exprs := parse(t, "a - b - c;")
	top, ok := exprs[0].(ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.OpSub, top.Op)
	_, lhsIsBinary := top.Left.(ast.Binary)
	assert.True(t, lhsIsBinary)
	_, rhsIsIdent := top.Right.(ast.Ident)
	assert.True(t, rhsIsIdent)
}

func TestRightAssociativePower(t *testing.T) {
	exprs := parse(t, "a ^ b ^ c;")
	top, ok := exprs[0].(ast.Power)
	require.True(t, ok)
	_, baseIsIdent := top.Base.(ast.Ident)
	assert.True(t, baseIsIdent)
	_, expIsPower := top.Exp.(ast.Power)
	assert.True(t, expIsPower)
}

func TestUnaryBindsWeakerThanPower(t *testing.T) {
	exprs := parse(t, "-a ^ b;")
	neg, ok := exprs[0].(ast.Negate)
	require.True(t, ok)
	_, operandIsPower := neg.Operand.(ast.Power)
	assert.True(t, operandIsPower)
}

func TestChainedComparisonProducesSingleRelationNode(t *testing.T) {
	exprs := parse(t, "a < b < c;")
	rel, ok := exprs[0].(ast.Relation)
	require.True(t, ok)
	require.Len(t, rel.Rels, 2)
	assert.Equal(t, ast.RelLt, rel.Rels[0].Op)
	assert.Equal(t, ast.RelLt, rel.Rels[1].Op)
}

func TestMultiArgumentCall(t *testing.T) {
	exprs := parse(t, "f(a, b, c);")
	call, ok := exprs[0].(ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 3)
}

func TestZeroArgumentCall(t *testing.T) {
	exprs := parse(t, "f();")
	call, ok := exprs[0].(ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 0)
}

func TestEmptyProgram(t *testing.T) {
	exprs := parse(t, "")
	assert.Empty(t, exprs)
}

func TestTrailingSemicolonPermitted(t *testing.T) {
	exprs := parse(t, "1 + 1;")
	require.Len(t, exprs, 1)
}

func TestMissingOperandIsCompileError(t *testing.T) {
	toks := lexer.New("1 +;").Scan()
	_, err := New(toks).Parse()
	assert.Error(t, err)
}
