// Package env implements the persistent name-to-value environment the
// VM reads and writes through the Get/Set opcodes, and that the
// driver reuses across REPL inputs.
package env

import (
	"fmt"

	"mito/value"
)

// ResultSlot is the reserved identifier the driver binds the last
// printed value to after each successful evaluation.
const ResultSlot = "_"

// Environment is a mapping from name to value. Mutation is
// unconditional overwrite; reads return an optional (ok bool).
type Environment struct {
	values map[string]value.Value
}

func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewWithBuiltins returns an Environment pre-populated with the
// host-provided native bindings (println) and the reserved result
// slot, seeded to Unit.
func NewWithBuiltins() *Environment {
	e := New()
	e.Set(ResultSlot, value.Unit())
	e.Set("println", value.FromNative(&value.Native{
		Name:  "println",
		Arity: 1,
		Fn: func(args []value.Value) (value.Value, error) {
			fmt.Println(args[0].String())
			return value.Unit(), nil
		},
	}))
	return e
}

func (e *Environment) Set(name string, v value.Value) {
	e.values[name] = v
}

func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.values[name]
	return v, ok
}
