// Package driver composes the tokenizer, parser, compiler and VM into
// the two external surfaces spec.md describes: the interactive REPL
// and the one-shot file runner, plus a disassembly-only "build" mode.
package driver

import (
	"github.com/sirupsen/logrus"

	"mito/compiler"
	"mito/env"
	"mito/lexer"
	"mito/parser"
	"mito/value"
	"mito/vm"
)

// Pipeline wires one VM and Environment across repeated Eval calls,
// so state (the environment, the result slot) persists the way spec
// §5 requires.
type Pipeline struct {
	Env  *env.Environment
	VM   *vm.VM
	Log  *logrus.Logger
	opts Options
}

func NewPipeline(opts Options) *Pipeline {
	log := logrus.New()
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &Pipeline{
		Env:  env.NewWithBuiltins(),
		VM:   vm.NewWithMaxDepth(opts.MaxCallDepth),
		Log:  log,
		opts: opts,
	}
}

// Compile runs the tokenizer, parser and compiler over src and
// returns the resulting chunk. It does not execute it.
func (p *Pipeline) Compile(src string) (compiler.Bytecode, error) {
	tokens := lexer.New(src).Scan()
	exprs, err := parser.New(tokens).Parse()
	if err != nil {
		return compiler.Bytecode{}, err
	}
	return compiler.CompileProgram(exprs)
}

// Eval compiles and executes src, binding the result to the reserved
// result slot on success.
func (p *Pipeline) Eval(src string) (value.Value, error) {
	bc, err := p.Compile(src)
	if err != nil {
		return value.Value{}, err
	}
	if p.opts.Debug {
		p.Log.Debugf("disassembly:\n%s", bc.Disassemble())
	}
	result, err := p.VM.Run(bc, p.Env)
	if err != nil {
		return value.Value{}, err
	}
	p.Env.Set(env.ResultSlot, result)
	return result, nil
}
