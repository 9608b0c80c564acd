// Package parser implements the Pratt (precedence-climbing) expression
// parser: a two-token window (curr, next), a single precedence
// climbing function, and prefix/infix dispatch tables keyed by token
// kind.
package parser

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"mito/ast"
	"mito/token"
)

// prec is the precedence ladder from weakest to strongest. higher()
// is the mechanism the whole parser rests on: a binary operator at
// level L parses its right-hand side at higher(L), so left-associative
// operators consume their rhs one level up, while Power parses its own
// rhs at Power itself, producing right-associativity.
type prec int

const (
	precNone prec = iota
	precRelation
	precTerm
	precFactor
	precUnary
	precPower
	precCall
	precPrimary
)

func precOf(k token.Kind) prec {
	switch k {
	case token.Lparen:
		return precCall
	case token.Caret:
		return precPower
	case token.Plus, token.Minus:
		return precTerm
	case token.Star, token.Slash, token.Percent:
		return precFactor
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.EqEq, token.NotEq:
		return precRelation
	default:
		return precNone
	}
}

func (p prec) higher() prec {
	switch p {
	case precNone:
		return precRelation
	case precRelation:
		return precTerm
	case precTerm:
		return precFactor
	case precFactor:
		return precUnary
	case precUnary:
		return precPower
	case precPower:
		return precCall
	default:
		return precPrimary
	}
}

// Parser consumes a token sequence and produces a program: a list of
// semicolon-separated expressions.
type Parser struct {
	tokens []token.Token
	pos    int
	curr   token.Token
	next   token.Token
	stack  []ast.Expr
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse returns every top-level expression it could parse, plus an
// aggregated error (via multierror) describing every expression that
// failed. A failing expression does not stop the remaining ones from
// being attempted: the parser resynchronizes at the next Semi.
func (p *Parser) Parse() ([]ast.Expr, error) {
	p.advanceRaw()
	p.advanceRaw()

	var exprs []ast.Expr
	var errs error

	if p.curr.Kind == token.Eof {
		return exprs, nil
	}

	for {
		if err := p.expression(); err != nil {
			errs = multierror.Append(errs, err)
			p.synchronize()
			if p.curr.Kind == token.Eof {
				break
			}
			continue
		}
		exprs = append(exprs, p.popExpr())

		if p.next.Kind == token.Eof {
			break
		}
		if err := p.consumeNext(token.Semi, "expected ';' after expression"); err != nil {
			errs = multierror.Append(errs, err)
			p.synchronize()
			if p.curr.Kind == token.Eof {
				break
			}
			continue
		}
		if p.next.Kind == token.Eof {
			break
		}
		if err := p.advance(); err != nil {
			errs = multierror.Append(errs, err)
			p.synchronize()
			if p.curr.Kind == token.Eof {
				break
			}
		}
	}

	return exprs, errs
}

// synchronize discards tokens up to and including the next Semi (or
// Eof), leaving curr positioned at the first token of the next
// expression (or at Eof if none remain).
func (p *Parser) synchronize() {
	for p.curr.Kind != token.Eof && p.curr.Kind != token.Semi {
		p.advanceRaw()
	}
	if p.curr.Kind == token.Semi {
		p.advanceRaw()
	}
}

// advanceRaw slides the two-token window forward without error
// checking; used during recovery and at startup.
func (p *Parser) advanceRaw() {
	p.curr = p.next
	if p.pos < len(p.tokens) {
		p.next = p.tokens[p.pos]
		p.pos++
	} else {
		p.next = token.New(token.Eof, "", p.curr.Line, p.curr.Column)
	}
}

func (p *Parser) advance() error {
	p.advanceRaw()
	if p.curr.Kind == token.Err {
		return p.errAt(p.curr, p.curr.Lexeme)
	}
	return nil
}

func (p *Parser) consumeNext(kind token.Kind, message string) error {
	if p.next.Kind == kind {
		return p.advance()
	}
	return p.errHere(message)
}

func (p *Parser) errHere(message string) error {
	return p.errAt(p.next, message)
}

func (p *Parser) errAt(t token.Token, message string) error {
	return newSyntaxError(t.Line, t.Column, message)
}

func (p *Parser) pushExpr(e ast.Expr) {
	p.stack = append(p.stack, e)
}

func (p *Parser) popExpr() ast.Expr {
	e := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return e
}

func (p *Parser) expression() error {
	return p.climb(precRelation)
}

func (p *Parser) climb(level prec) error {
	if err := p.dispatchPrefix(); err != nil {
		return err
	}
	for level <= precOf(p.next.Kind) {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.dispatchInfix(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) dispatchPrefix() error {
	switch p.curr.Kind {
	case token.Int, token.Bin, token.Hex:
		return p.exprInt()
	case token.Real:
		return p.exprReal()
	case token.True, token.False:
		return p.exprBoolLiteral()
	case token.Ident:
		return p.exprIdent()
	case token.Lparen:
		return p.exprGroup()
	case token.Minus:
		return p.exprUnary()
	default:
		return p.errAt(p.curr, "expected an expression")
	}
}

func (p *Parser) dispatchInfix() error {
	switch p.curr.Kind {
	case token.Lparen:
		return p.exprCall()
	case token.Caret:
		return p.exprPower()
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent:
		return p.exprBinary()
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.EqEq, token.NotEq:
		return p.exprRelation()
	default:
		return p.errAt(p.curr, "unexpected token in expression")
	}
}

func (p *Parser) exprGroup() error {
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	return p.consumeNext(token.Rparen, "expected ')' after expression")
}

func (p *Parser) exprBoolLiteral() error {
	p.pushExpr(ast.Bool{Value: p.curr.Kind == token.True})
	return nil
}

func (p *Parser) exprIdent() error {
	p.pushExpr(ast.Ident{Name: p.curr.Lexeme})
	return nil
}

func (p *Parser) exprInt() error {
	lexeme := p.curr.Lexeme
	radix := 10
	switch p.curr.Kind {
	case token.Bin:
		lexeme = strings.TrimPrefix(strings.TrimPrefix(lexeme, "0b"), "0B")
		radix = 2
	case token.Hex:
		lexeme = strings.TrimPrefix(strings.TrimPrefix(lexeme, "0x"), "0X")
		radix = 16
	}
	lexeme = strings.ReplaceAll(lexeme, "_", "")
	n, err := strconv.ParseInt(lexeme, radix, 32)
	if err != nil {
		return p.errAt(p.curr, "invalid integer literal '"+p.curr.Lexeme+"'")
	}
	p.pushExpr(ast.Int{Value: int32(n)})
	return nil
}

func (p *Parser) exprReal() error {
	lexeme := strings.ReplaceAll(p.curr.Lexeme, "_", "")
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return p.errAt(p.curr, "invalid real literal '"+p.curr.Lexeme+"'")
	}
	p.pushExpr(ast.Real{Value: n})
	return nil
}

func (p *Parser) exprUnary() error {
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.climb(precUnary); err != nil {
		return err
	}
	operand := p.popExpr()
	p.pushExpr(ast.Negate{Operand: operand})
	return nil
}

func (p *Parser) exprPower() error {
	if err := p.advance(); err != nil {
		return err
	}
	if err := p.climb(precPower); err != nil {
		return err
	}
	rhs := p.popExpr()
	lhs := p.popExpr()
	p.pushExpr(ast.Power{Base: lhs, Exp: rhs})
	return nil
}

func binOpFor(k token.Kind) ast.BinOp {
	switch k {
	case token.Plus:
		return ast.OpAdd
	case token.Minus:
		return ast.OpSub
	case token.Star:
		return ast.OpMul
	case token.Slash:
		return ast.OpDiv
	default:
		return ast.OpRem
	}
}

func (p *Parser) exprBinary() error {
	operator := p.curr.Kind
	level := precOf(operator)

	if err := p.advance(); err != nil {
		return err
	}
	if err := p.climb(level.higher()); err != nil {
		return err
	}

	rhs := p.popExpr()
	lhs := p.popExpr()
	p.pushExpr(ast.Binary{Op: binOpFor(operator), Left: lhs, Right: rhs})
	return nil
}

func relOpFor(k token.Kind) ast.RelOp {
	switch k {
	case token.Lt:
		return ast.RelLt
	case token.Gt:
		return ast.RelGt
	case token.LtEq:
		return ast.RelLtEq
	case token.GtEq:
		return ast.RelGtEq
	case token.EqEq:
		return ast.RelEq
	default:
		return ast.RelNotEq
	}
}

func (p *Parser) exprRelation() error {
	init := p.popExpr()

	var rels []ast.RelPair
	operator := p.curr.Kind
	level := precOf(operator)

	for {
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.climb(level.higher()); err != nil {
			return err
		}
		next := p.popExpr()
		rels = append(rels, ast.RelPair{Op: relOpFor(operator), Next: next})

		operator = p.next.Kind
		level = precOf(operator)
		if level == precRelation {
			if err := p.advance(); err != nil {
				return err
			}
			continue
		}
		break
	}

	p.pushExpr(ast.Relation{First: init, Rels: rels})
	return nil
}

func (p *Parser) exprCall() error {
	if err := p.advance(); err != nil {
		return err
	}
	args, err := p.parseArguments()
	if err != nil {
		return err
	}
	callee := p.popExpr()
	p.pushExpr(ast.Call{Callee: callee, Args: args})
	return nil
}

// parseArguments accepts zero or more comma-separated argument
// expressions terminated by ')'.
func (p *Parser) parseArguments() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.curr.Kind == token.Rparen {
		return args, nil
	}
	if err := p.expression(); err != nil {
		return nil, err
	}
	args = append(args, p.popExpr())
	for p.next.Kind == token.Comma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expression(); err != nil {
			return nil, err
		}
		args = append(args, p.popExpr())
	}
	if err := p.consumeNext(token.Rparen, "expected ')' after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}
