package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mito/ast"
	"mito/lexer"
	"mito/parser"
)

func compileSource(t *testing.T, src string) Bytecode {
	t.Helper()
	toks := lexer.New(src).Scan()
	exprs, err := parser.New(toks).Parse()
	require.NoError(t, err)
	bc, err := CompileProgram(exprs)
	require.NoError(t, err)
	return bc
}

func TestCompileAddition(t *testing.T) {
	bc := compileSource(t, "2 + 3;")
	assert.Equal(t, Instructions{
		byte(OpConst), 0,
		byte(OpConst), 1,
		byte(OpAdd),
	}, bc.Instructions)
}

func TestCompileIdentInternsStringOnce(t *testing.T) {
	c := New()
	err := c.compile(ast.Binary{
		Op:    ast.OpAdd,
		Left:  ast.Ident{Name: "x"},
		Right: ast.Ident{Name: "x"},
	})
	require.NoError(t, err)
	assert.Len(t, c.constants, 1)
}

func TestCompileCallEmitsArgCount(t *testing.T) {
	bc := compileSource(t, "println(1, 2);")
	last := bc.Instructions[len(bc.Instructions)-1]
	assert.Equal(t, byte(2), last)
}

func TestCompileSingleRelationPair(t *testing.T) {
	bc := compileSource(t, "1 < 2;")
	assert.Contains(t, string(bc.Instructions), string([]byte{byte(OpLt)}))
}

func TestCompileChainedRelationRejected(t *testing.T) {
	toks := lexer.New("1 < 2 < 3;").Scan()
	exprs, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = CompileProgram(exprs)
	assert.Error(t, err)
}

func TestNumericConstantsNotDeduplicated(t *testing.T) {
	bc := compileSource(t, "1 + 1;")
	assert.Len(t, bc.Constants, 2)
}
