package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mito/compiler"
	"mito/env"
	"mito/lexer"
	"mito/parser"
	"mito/value"
)

func run(t *testing.T, src string) (value.Value, *env.Environment) {
	t.Helper()
	toks := lexer.New(src).Scan()
	exprs, err := parser.New(toks).Parse()
	require.NoError(t, err)
	bc, err := compiler.CompileProgram(exprs)
	require.NoError(t, err)
	e := env.NewWithBuiltins()
	result, err := New().Run(bc, e)
	require.NoError(t, err)
	return result, e
}

func TestArithmeticPrecedence(t *testing.T) {
	v, _ := run(t, "2 + 3 * 4;")
	assert.Equal(t, float64(14), v.Real)
}

func TestRightAssociativePower(t *testing.T) {
	v, _ := run(t, "2 ^ 3 ^ 2;")
	assert.Equal(t, float64(512), v.Real)
}

func TestUnaryBindsWeakerThanPower(t *testing.T) {
	v, _ := run(t, "-2 ^ 2;")
	assert.Equal(t, float64(-4), v.Real)
}

func TestRadixLiteralsAgree(t *testing.T) {
	v, _ := run(t, "0b1101 + 0x0A;")
	assert.Equal(t, float64(23), v.Real)
}

func TestUnderscoreSeparatorsInvariant(t *testing.T) {
	v, _ := run(t, "1_000_000 / 1000;")
	assert.Equal(t, float64(1000), v.Real)
}

func TestIntEqualsRealCrossKind(t *testing.T) {
	v, _ := run(t, "1 == 1.0;")
	assert.Equal(t, true, v.Bool)
}

func TestResultSlotPersistsAcrossRuns(t *testing.T) {
	toks := lexer.New("7 * 6;").Scan()
	exprs, err := parser.New(toks).Parse()
	require.NoError(t, err)
	bc, err := compiler.CompileProgram(exprs)
	require.NoError(t, err)
	e := env.NewWithBuiltins()
	machine := New()
	first, err := machine.Run(bc, e)
	require.NoError(t, err)
	e.Set(env.ResultSlot, first)

	toks2 := lexer.New("_ + 1;").Scan()
	exprs2, err := parser.New(toks2).Parse()
	require.NoError(t, err)
	bc2, err := compiler.CompileProgram(exprs2)
	require.NoError(t, err)
	second, err := machine.Run(bc2, e)
	require.NoError(t, err)
	assert.Equal(t, float64(43), second.Real)
}

func TestUnknownIdentifierIsRuntimeError(t *testing.T) {
	toks := lexer.New("missing_name;").Scan()
	exprs, err := parser.New(toks).Parse()
	require.NoError(t, err)
	bc, err := compiler.CompileProgram(exprs)
	require.NoError(t, err)
	_, err = New().Run(bc, env.NewWithBuiltins())
	assert.Error(t, err)
}

func TestCallArityMismatchIsRuntimeError(t *testing.T) {
	toks := lexer.New("println();").Scan()
	exprs, err := parser.New(toks).Parse()
	require.NoError(t, err)
	bc, err := compiler.CompileProgram(exprs)
	require.NoError(t, err)
	_, err = New().Run(bc, env.NewWithBuiltins())
	assert.Error(t, err)
}

func TestCallStackOverflowGuardFires(t *testing.T) {
	// depth only advances when a native's Fn recurses back into the VM
	// (see vm.go's dispatchCall doc); no registered native does that
	// today, so the guard is driven directly here the same way OpSet
	// is exercised below.
	machine := NewWithMaxDepth(2)
	machine.depth = 2
	err := machine.dispatchCall(0)
	require.Error(t, err)
}

func TestSetOpcodeExercisedDirectly(t *testing.T) {
	// OpSet has no surface syntax (SPEC_FULL.md open-question decision);
	// this hand-assembles bytecode the way compiler/var_test.go in the
	// teacher repo exercises opcodes directly.
	var instructions compiler.Instructions
	instructions = append(instructions, compiler.MakeInstruction(compiler.OpConst, 0)...)
	instructions = append(instructions, compiler.MakeInstruction(compiler.OpSet, 1)...)
	bc := compiler.Bytecode{
		Instructions: instructions,
		Constants:    []value.Value{value.FromInt(5), value.FromStr("x")},
	}
	e := env.NewWithBuiltins()
	_, err := New().Run(bc, e)
	require.NoError(t, err)
	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, int32(5), v.Int)
}
