package driver

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures the driver. It is deliberately small: the
// language itself has no module or config surface, only the binary
// wrapping it does.
type Options struct {
	// Debug enables bytecode disassembly logging before each REPL
	// evaluation (Pipeline.Eval); RunFile does not log disassembly.
	Debug bool `yaml:"debug"`
	// MaxCallDepth bounds the VM's nested native-call depth.
	MaxCallDepth int `yaml:"max_call_depth"`
}

func DefaultOptions() Options {
	return Options{Debug: false, MaxCallDepth: 256}
}

// LoadOptions reads the YAML file at path (the commands pass
// "mito.yaml", relative to the working directory) if present,
// overlaying it onto the defaults. A missing file is not an error.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, DriverError{Message: "reading config: " + err.Error()}
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, DriverError{Message: "parsing config: " + err.Error()}
	}
	return opts, nil
}
