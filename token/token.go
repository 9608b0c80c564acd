// Package token defines the lexical token kinds produced by the lexer
// and consumed by the parser.
package token

import "fmt"

// Kind classifies a Token. The set below is the complete set the
// language defines; Err and Eof are sentinels rather than real
// program syntax.
type Kind int

const (
	Err Kind = iota
	Eof
	Semi
	Newline
	Lparen
	Rparen
	Comma
	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	Lt
	Gt
	LtEq
	GtEq
	EqEq
	NotEq
	Eq // reserved: assignment syntax is not defined at the parser
	True
	False
	Int
	Bin
	Hex
	Real
	Ident
)

var names = map[Kind]string{
	Err:     "Err",
	Eof:     "Eof",
	Semi:    "Semi",
	Newline: "Newline",
	Lparen:  "Lparen",
	Rparen:  "Rparen",
	Comma:   "Comma",
	Plus:    "Plus",
	Minus:   "Minus",
	Star:    "Star",
	Slash:   "Slash",
	Percent: "Percent",
	Caret:   "Caret",
	Lt:      "Lt",
	Gt:      "Gt",
	LtEq:    "LtEq",
	GtEq:    "GtEq",
	EqEq:    "EqEq",
	NotEq:   "NotEq",
	Eq:      "Eq",
	True:    "True",
	False:   "False",
	Int:     "Int",
	Bin:     "Bin",
	Hex:     "Hex",
	Real:    "Real",
	Ident:   "Ident",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is an immutable lexical unit: a kind, its source lexeme, and
// the line/column it started on. Tokens are produced by the lexer,
// consumed by the parser, and otherwise discarded.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int32
	Column int
}

func New(kind Kind, lexeme string, line int32, column int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
}

func (t Token) String() string {
	return fmt.Sprintf("Token {Kind: %s, Lexeme: %q}", t.Kind, t.Lexeme)
}

// Keywords maps reserved identifier spellings to their token kind.
var Keywords = map[string]Kind{
	"true":  True,
	"false": False,
}
