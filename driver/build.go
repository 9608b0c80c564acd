package driver

import (
	"fmt"
	"os"
)

// BuildFile compiles path and prints its disassembly without
// executing it. spec.md calls `build` "reserved"/work-in-progress;
// this is the WIP behavior (compile-and-show, never run), restoring
// the disassembly tooling the teacher repo already carried.
func (p *Pipeline) BuildFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return DriverError{Message: "reading '" + path + "': " + err.Error()}
	}
	bc, err := p.Compile(string(data))
	if err != nil {
		return err
	}
	fmt.Print(bc.Disassemble())
	return nil
}
