package driver

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"mito/ast"
	"mito/compiler"
	"mito/lexer"
	"mito/parser"
)

// RunFile reads path as a single program and executes each top-level
// expression in order, printing each result as it completes.
func (p *Pipeline) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return DriverError{Message: "reading '" + path + "': " + err.Error()}
	}

	tokens := lexer.New(string(data)).Scan()
	exprs, err := parser.New(tokens).Parse()
	if err != nil {
		return err
	}

	var errs error
	for _, e := range exprs {
		bc, err := compiler.CompileProgram([]ast.Expr{e})
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		result, err := p.VM.Run(bc, p.Env)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		fmt.Println(result.String())
	}
	return errs
}
