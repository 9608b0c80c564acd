// Package ast defines the expression tree produced by the parser and
// consumed by the compiler. Expr is a closed tagged variant: every
// concrete node type below is the complete set, and adding a new one
// means touching every switch that matches on Expr.
package ast

// Expr is the marker interface implemented by every expression node.
// It carries no behavior; dispatch happens by type switch in the
// compiler, not by a visitor method on the node itself.
type Expr interface {
	exprNode()
}

// Int is an integer literal, already parsed from decimal, binary or
// hex lexeme form.
type Int struct {
	Value int32
}

// Real is a floating point literal.
type Real struct {
	Value float64
}

// Bool is a boolean literal (`true` / `false`).
type Bool struct {
	Value bool
}

// Ident is a bare identifier reference, resolved against the
// environment at run time.
type Ident struct {
	Name string
}

// Negate is unary minus.
type Negate struct {
	Operand Expr
}

// BinOp identifies which arithmetic opcode a Binary node lowers to.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
)

// Binary is left-associative arithmetic: + - * / %.
type Binary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// Power is right-associative exponentiation (`^`).
type Power struct {
	Base Expr
	Exp  Expr
}

// RelOp identifies a single relational operator.
type RelOp int

const (
	RelLt RelOp = iota
	RelGt
	RelLtEq
	RelGtEq
	RelEq
	RelNotEq
)

// RelPair is one (operator, right-hand operand) link in a chained
// comparison.
type RelPair struct {
	Op   RelOp
	Next Expr
}

// Relation is a chained comparison `a op1 b op2 c …`. Rels always has
// at least one element.
type Relation struct {
	First Expr
	Rels  []RelPair
}

// Call is a function application; Callee must be an Ident by the time
// it reaches the compiler (enforced there, not here, so the parser can
// stay general).
type Call struct {
	Callee Expr
	Args   []Expr
}

func (Int) exprNode()      {}
func (Real) exprNode()     {}
func (Bool) exprNode()     {}
func (Ident) exprNode()    {}
func (Negate) exprNode()   {}
func (Binary) exprNode()   {}
func (Power) exprNode()    {}
func (Relation) exprNode() {}
func (Call) exprNode()     {}
