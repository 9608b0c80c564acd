package compiler

import (
	"fmt"

	"mito/value"
)

// Bytecode is the pair (code bytes, constant pool) produced by the
// compiler and executed by the VM.
type Bytecode struct {
	Instructions Instructions
	Constants    []value.Value
}

type Opcode byte

type Instructions []byte

// Opcode set. Every operand, where present, is a single byte: either
// a constant-pool index or (for Call) an argument count. Loop, Jump
// and Branch are reserved placeholders for a future control-flow
// extension and must never be emitted; the VM fails fast if it ever
// dispatches one.
const (
	OpNop Opcode = iota
	OpUnit
	OpTrue
	OpFalse
	OpConst
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpPow
	OpNeg
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpEqual
	OpNotEq
	OpGet
	OpSet
	OpCall
	OpPop
	OpLoop
	OpJump
	OpBranch
)

// OpCodeDefinition documents an opcode's mnemonic and operand widths
// for disassembly and instruction assembly.
type OpCodeDefinition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*OpCodeDefinition{
	OpNop:    {Name: "OP_NOP"},
	OpUnit:   {Name: "OP_UNIT"},
	OpTrue:   {Name: "OP_TRUE"},
	OpFalse:  {Name: "OP_FALSE"},
	OpConst:  {Name: "OP_CONST", OperandWidths: []int{1}},
	OpAdd:    {Name: "OP_ADD"},
	OpSub:    {Name: "OP_SUB"},
	OpMul:    {Name: "OP_MUL"},
	OpDiv:    {Name: "OP_DIV"},
	OpRem:    {Name: "OP_REM"},
	OpPow:    {Name: "OP_POW"},
	OpNeg:    {Name: "OP_NEG"},
	OpLt:     {Name: "OP_LT"},
	OpGt:     {Name: "OP_GT"},
	OpLtEq:   {Name: "OP_LT_EQ"},
	OpGtEq:   {Name: "OP_GT_EQ"},
	OpEqual:  {Name: "OP_EQUAL"},
	OpNotEq:  {Name: "OP_NOT_EQ"},
	OpGet:    {Name: "OP_GET", OperandWidths: []int{1}},
	OpSet:    {Name: "OP_SET", OperandWidths: []int{1}},
	OpCall:   {Name: "OP_CALL", OperandWidths: []int{1}},
	OpPop:    {Name: "OP_POP"},
	OpLoop:   {Name: "OP_LOOP"},
	OpJump:   {Name: "OP_JUMP"},
	OpBranch: {Name: "OP_BRANCH"},
}

func Get(op Opcode) (*OpCodeDefinition, error) {
	def, ok := definitions[op]
	if !ok {
		return nil, fmt.Errorf("opcode %d undefined", op)
	}
	return def, nil
}

// MakeInstruction assembles an opcode and its operands (each encoded
// as a single byte) into an instruction.
func MakeInstruction(op Opcode, operands ...int) []byte {
	def, err := Get(op)
	if err != nil {
		return []byte{}
	}

	instruction := make([]byte, 1+len(def.OperandWidths))
	instruction[0] = byte(op)
	for i, o := range operands {
		instruction[1+i] = byte(o)
	}
	return instruction
}

// Disassemble renders a Bytecode's instructions in a human-readable
// form, one instruction per line, for the `build` subcommand and
// debug logging.
func (b Bytecode) Disassemble() string {
	out := ""
	ip := 0
	for ip < len(b.Instructions) {
		op := Opcode(b.Instructions[ip])
		def, err := Get(op)
		if err != nil {
			out += fmt.Sprintf("%04d ???\n", ip)
			ip++
			continue
		}
		if len(def.OperandWidths) == 0 {
			out += fmt.Sprintf("%04d %s\n", ip, def.Name)
			ip++
			continue
		}
		operand := int(b.Instructions[ip+1])
		switch op {
		case OpConst, OpGet, OpSet:
			out += fmt.Sprintf("%04d %-12s %4d (%v)\n", ip, def.Name, operand, b.Constants[operand])
		default:
			out += fmt.Sprintf("%04d %-12s %4d\n", ip, def.Name, operand)
		}
		ip += 2
	}
	return out
}
