// Package vm implements the stack-based virtual machine: a dispatch
// loop over call frames, numeric promotion on arithmetic, and Call
// dispatch to native functions.
package vm

import (
	"github.com/sirupsen/logrus"

	"mito/compiler"
	"mito/env"
	"mito/value"
)

// frame is a call frame: (chunk, ip). The top-level run wraps the
// compiled chunk in a single anonymous frame; nested frames would be
// pushed by Call if user-defined functions existed, which they do not
// (see SPEC_FULL.md Non-goals).
type frame struct {
	chunk compiler.Bytecode
	ip    int
}

// VM executes one Bytecode chunk at a time against a caller-owned
// Environment. The operand stack is drained per run; the environment
// persists across runs.
type VM struct {
	stack    Stack
	frames   []frame
	depth    int
	maxDepth int
	Log      *logrus.Logger
}

// DefaultMaxCallDepth bounds nested native-call depth (vm.depth, see
// dispatchCall); exceeding it is a RuntimeError rather than a native
// stack overflow.
const DefaultMaxCallDepth = 256

func New() *VM {
	return &VM{maxDepth: DefaultMaxCallDepth, Log: logrus.New()}
}

func NewWithMaxDepth(maxDepth int) *VM {
	vm := New()
	vm.maxDepth = maxDepth
	return vm
}

// Run executes bytecode against env and returns the top of the
// operand stack as the result, or Unit if the stack is empty when the
// outer frame pops.
func (vm *VM) Run(bytecode compiler.Bytecode, e *env.Environment) (value.Value, error) {
	vm.stack = vm.stack[:0]
	vm.frames = []frame{{chunk: bytecode}}

	for len(vm.frames) > 0 {
		top := &vm.frames[len(vm.frames)-1]
		if top.ip >= len(top.chunk.Instructions) {
			vm.frames = vm.frames[:len(vm.frames)-1]
			continue
		}
		if err := vm.step(top, e); err != nil {
			return value.Value{}, err
		}
	}

	if v, ok := vm.stack.Peek(); ok {
		return v, nil
	}
	return value.Unit(), nil
}

func (vm *VM) step(f *frame, e *env.Environment) error {
	op := compiler.Opcode(f.chunk.Instructions[f.ip])
	f.ip++

	switch op {
	case compiler.OpNop:
		return nil
	case compiler.OpUnit:
		vm.stack.Push(value.Unit())
		return nil
	case compiler.OpTrue:
		vm.stack.Push(value.FromBool(true))
		return nil
	case compiler.OpFalse:
		vm.stack.Push(value.FromBool(false))
		return nil
	case compiler.OpConst:
		idx := vm.readOperand(f)
		vm.stack.Push(f.chunk.Constants[idx])
		return nil
	case compiler.OpAdd:
		return vm.binaryArith(func(l, r float64) float64 { return l + r })
	case compiler.OpSub:
		return vm.binaryArith(func(l, r float64) float64 { return l - r })
	case compiler.OpMul:
		return vm.binaryArith(func(l, r float64) float64 { return l * r })
	case compiler.OpDiv:
		return vm.binaryArith(func(l, r float64) float64 { return l / r })
	case compiler.OpRem:
		return vm.binaryArith(func(l, r float64) float64 { return mathMod(l, r) })
	case compiler.OpPow:
		return vm.binaryArith(mathPow)
	case compiler.OpNeg:
		v, ok := vm.stack.Pop()
		if !ok {
			return RuntimeError{Message: "stack underflow in Neg"}
		}
		f64, ok := v.AsFloat()
		if !ok {
			return RuntimeError{Message: "cannot negate a non-numeric value"}
		}
		vm.stack.Push(value.FromReal(-f64))
		return nil
	case compiler.OpLt:
		return vm.compare(func(l, r float64) bool { return l < r })
	case compiler.OpGt:
		return vm.compare(func(l, r float64) bool { return l > r })
	case compiler.OpLtEq:
		return vm.compare(func(l, r float64) bool { return l <= r })
	case compiler.OpGtEq:
		return vm.compare(func(l, r float64) bool { return l >= r })
	case compiler.OpEqual:
		rhs, _ := vm.stack.Pop()
		lhs, _ := vm.stack.Pop()
		vm.stack.Push(value.FromBool(lhs.Eq(rhs)))
		return nil
	case compiler.OpNotEq:
		rhs, _ := vm.stack.Pop()
		lhs, _ := vm.stack.Pop()
		vm.stack.Push(value.FromBool(!lhs.Eq(rhs)))
		return nil
	case compiler.OpGet:
		idx := vm.readOperand(f)
		name := f.chunk.Constants[idx].Str
		v, ok := e.Get(name)
		if !ok {
			return RuntimeError{Message: "unknown identifier '" + name + "'"}
		}
		vm.stack.Push(v)
		return nil
	case compiler.OpSet:
		idx := vm.readOperand(f)
		name := f.chunk.Constants[idx].Str
		v, ok := vm.stack.Pop()
		if !ok {
			return RuntimeError{Message: "stack underflow in Set"}
		}
		e.Set(name, v)
		vm.stack.Push(value.Unit())
		return nil
	case compiler.OpCall:
		n := vm.readOperand(f)
		return vm.dispatchCall(n)
	case compiler.OpPop:
		vm.stack.Pop()
		return nil
	case compiler.OpLoop, compiler.OpJump, compiler.OpBranch:
		return RuntimeError{Message: "reserved opcode encountered at run time"}
	default:
		return RuntimeError{Message: "unknown opcode"}
	}
}

func (vm *VM) readOperand(f *frame) int {
	operand := int(f.chunk.Instructions[f.ip])
	f.ip++
	return operand
}

// popAsFloat promotes Int to float64 and passes Real through; any
// other kind fails the pop.
func (vm *VM) popAsFloat() (float64, error) {
	v, ok := vm.stack.Pop()
	if !ok {
		return 0, RuntimeError{Message: "stack underflow"}
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, RuntimeError{Message: "expected a numeric value, got " + v.String()}
	}
	return f, nil
}

func (vm *VM) binaryArith(apply func(l, r float64) float64) error {
	rhs, err := vm.popAsFloat()
	if err != nil {
		return err
	}
	lhs, err := vm.popAsFloat()
	if err != nil {
		return err
	}
	vm.stack.Push(value.FromReal(apply(lhs, rhs)))
	return nil
}

func (vm *VM) compare(apply func(l, r float64) bool) error {
	rhs, err := vm.popAsFloat()
	if err != nil {
		return err
	}
	lhs, err := vm.popAsFloat()
	if err != nil {
		return err
	}
	vm.stack.Push(value.FromBool(apply(lhs, rhs)))
	return nil
}

// dispatchCall reads the callee at stack depth n below the top and
// invokes it. Only Native callees are supported: no user-defined
// function value exists in this language (see SPEC_FULL.md
// Non-goals), so any other kind at the callee position is a runtime
// error.
//
// vm.depth, not len(vm.frames), is the call-stack depth this guards:
// frames stay flat at one entry for the whole run since natives never
// push a frame, but a native's Fn could call back into the VM (invoke
// Run again on nested bytecode) before returning, and depth tracks
// that nesting across such calls. Run resets the operand stack and
// frames on entry, so a nested Run on the same VM does not preserve
// the outer run's state. No native registered today
// recurses, so the guard does not fire in ordinary programs; it exists
// so a future native that does recurse is bounded rather than left to
// overflow the host stack.
func (vm *VM) dispatchCall(n int) error {
	if vm.depth >= vm.maxDepth {
		return RuntimeError{Message: "call stack overflow"}
	}
	if len(vm.stack) < n+1 {
		return RuntimeError{Message: "stack underflow in Call"}
	}
	calleeIdx := len(vm.stack) - n - 1
	callee := vm.stack[calleeIdx]

	if !callee.IsNative() {
		return RuntimeError{Message: "can only call native functions"}
	}
	native := callee.Native
	if native.Arity != n {
		return RuntimeError{Message: "arity mismatch calling '" + native.Name + "'"}
	}

	args := make([]value.Value, n)
	copy(args, vm.stack[calleeIdx+1:])
	vm.stack = vm.stack[:calleeIdx]

	vm.depth++
	result, err := native.Fn(args)
	vm.depth--
	if err != nil {
		return err
	}
	vm.stack.Push(result)
	return nil
}
