package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

const (
	promptLine = ">> "
	promptCont = "·· "
	multiStart = `\;`
	multiEnd   = ";;"
)

// REPL is the interactive read-eval-print driver: a primary prompt
// that reads one line, entering continuation mode when that line ends
// with the multi-line-start sentinel, until a line ends with the
// multi-line-end sentinel.
type REPL struct {
	pipeline *Pipeline
	editor   *readline.Instance
}

func NewREPL(p *Pipeline) (*REPL, error) {
	editor, err := readline.New(promptLine)
	if err != nil {
		return nil, DriverError{Message: "starting line editor: " + err.Error()}
	}
	return &REPL{pipeline: p, editor: editor}, nil
}

func (r *REPL) Close() {
	r.editor.Close()
}

// Run drives the session until EOF or interrupt, returning nil for a
// clean exit.
func (r *REPL) Run() error {
	defer r.Close()
	for {
		src, err := r.readProgram()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return DriverError{Message: err.Error()}
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		result, err := r.pipeline.Eval(src)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		fmt.Println(result.String())
	}
}

func (r *REPL) readProgram() (string, error) {
	r.editor.SetPrompt(promptLine)
	line, err := r.editor.Readline()
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(strings.TrimRight(line, " \t"), multiStart) {
		return line, nil
	}

	trimmed := strings.TrimSuffix(strings.TrimRight(line, " \t"), multiStart)
	lines := []string{trimmed}
	r.editor.SetPrompt(promptCont)
	for {
		next, err := r.editor.Readline()
		if err != nil {
			return "", err
		}
		if strings.HasSuffix(strings.TrimRight(next, " \t"), multiEnd) {
			lines = append(lines, strings.TrimSuffix(strings.TrimRight(next, " \t"), multiEnd))
			break
		}
		lines = append(lines, next)
	}
	return strings.Join(lines, "\n"), nil
}
