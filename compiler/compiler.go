// Package compiler lowers the expression tree into a flat byte-code
// Chunk: a single recursive descent over ast.Expr, emitting
// instructions and interning constants as it goes.
package compiler

import (
	"mito/ast"
	"mito/value"
)

// Compiler walks one or more expressions and accumulates a single
// Bytecode chunk. Each top-level expression is compiled in sequence;
// callers that want each REPL line's result kept on the stack are
// responsible for not emitting Pop after the final expression (see
// CompileProgram).
type Compiler struct {
	instructions Instructions
	constants    []value.Value
	strIndex     map[string]int
}

func New() *Compiler {
	return &Compiler{strIndex: make(map[string]int)}
}

// CompileProgram compiles a semicolon-separated list of top-level
// expressions. Every expression but the last is followed by Pop, so
// only the final expression's value remains on the stack — the
// result the driver prints.
func CompileProgram(exprs []ast.Expr) (Bytecode, error) {
	c := New()
	for i, e := range exprs {
		if err := c.compile(e); err != nil {
			return Bytecode{}, err
		}
		if i != len(exprs)-1 {
			c.emit(OpPop)
		}
	}
	if len(exprs) == 0 {
		c.emit(OpUnit)
	}
	return Bytecode{Instructions: c.instructions, Constants: c.constants}, nil
}

func (c *Compiler) emit(op Opcode, operands ...int) {
	c.instructions = append(c.instructions, MakeInstruction(op, operands...)...)
}

// addConstant appends a numeric (non-deduplicated) constant.
func (c *Compiler) addConstant(v value.Value) (int, error) {
	if len(c.constants) >= 256 {
		return 0, CompileError{Message: "constant pool exceeds 256 entries"}
	}
	c.constants = append(c.constants, v)
	return len(c.constants) - 1, nil
}

// addStringConstant interns a string constant, de-duplicating
// first-wins.
func (c *Compiler) addStringConstant(s string) (int, error) {
	if idx, ok := c.strIndex[s]; ok {
		return idx, nil
	}
	idx, err := c.addConstant(value.FromStr(s))
	if err != nil {
		return 0, err
	}
	c.strIndex[s] = idx
	return idx, nil
}

func (c *Compiler) compile(e ast.Expr) error {
	switch n := e.(type) {
	case ast.Int:
		idx, err := c.addConstant(value.FromInt(n.Value))
		if err != nil {
			return err
		}
		c.emit(OpConst, idx)
		return nil

	case ast.Real:
		idx, err := c.addConstant(value.FromReal(n.Value))
		if err != nil {
			return err
		}
		c.emit(OpConst, idx)
		return nil

	case ast.Bool:
		if n.Value {
			c.emit(OpTrue)
		} else {
			c.emit(OpFalse)
		}
		return nil

	case ast.Ident:
		idx, err := c.addStringConstant(n.Name)
		if err != nil {
			return err
		}
		c.emit(OpGet, idx)
		return nil

	case ast.Negate:
		if err := c.compile(n.Operand); err != nil {
			return err
		}
		c.emit(OpNeg)
		return nil

	case ast.Binary:
		if err := c.compile(n.Left); err != nil {
			return err
		}
		if err := c.compile(n.Right); err != nil {
			return err
		}
		c.emit(binaryOpcode(n.Op))
		return nil

	case ast.Power:
		if err := c.compile(n.Base); err != nil {
			return err
		}
		if err := c.compile(n.Exp); err != nil {
			return err
		}
		c.emit(OpPow)
		return nil

	case ast.Relation:
		return c.compileRelation(n)

	case ast.Call:
		return c.compileCall(n)

	default:
		return CompileError{Message: "unsupported expression node"}
	}
}

func binaryOpcode(op ast.BinOp) Opcode {
	switch op {
	case ast.OpAdd:
		return OpAdd
	case ast.OpSub:
		return OpSub
	case ast.OpMul:
		return OpMul
	case ast.OpDiv:
		return OpDiv
	default:
		return OpRem
	}
}

func relOpcode(op ast.RelOp) Opcode {
	switch op {
	case ast.RelLt:
		return OpLt
	case ast.RelGt:
		return OpGt
	case ast.RelLtEq:
		return OpLtEq
	case ast.RelGtEq:
		return OpGtEq
	case ast.RelEq:
		return OpEqual
	default:
		return OpNotEq
	}
}

// compileRelation lowers a chained comparison. Only a chain of exactly
// one pair is lowered to bytecode: see SPEC_FULL.md's open-question
// decision. Such a chain — the common case — compiles to the
// natural `first, next, op` sequence. Longer chains are rejected at
// compile time rather than silently evaluated wrong, since lowering
// a short-circuiting chain would need Jump, which stays reserved.
func (c *Compiler) compileRelation(rel ast.Relation) error {
	if len(rel.Rels) > 1 {
		return CompileError{Message: "chained comparisons beyond one operator are not yet lowered"}
	}
	if err := c.compile(rel.First); err != nil {
		return err
	}
	pair := rel.Rels[0]
	if err := c.compile(pair.Next); err != nil {
		return err
	}
	c.emit(relOpcode(pair.Op))
	return nil
}

func (c *Compiler) compileCall(call ast.Call) error {
	name, ok := call.Callee.(ast.Ident)
	if !ok {
		return CompileError{Message: "can only call functions"}
	}
	idx, err := c.addStringConstant(name.Name)
	if err != nil {
		return err
	}
	c.emit(OpGet, idx)
	for _, arg := range call.Args {
		if err := c.compile(arg); err != nil {
			return err
		}
	}
	c.emit(OpCall, len(call.Args))
	return nil
}
