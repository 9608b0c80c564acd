package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mito/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := New("(1 + 2) * 3 <= 4 != 5").Scan()
	assert.Equal(t, []token.Kind{
		token.Lparen, token.Int, token.Plus, token.Int, token.Rparen,
		token.Star, token.Int, token.LtEq, token.Int, token.NotEq, token.Int, token.Eof,
	}, kinds(toks))
}

func TestCommentTransparency(t *testing.T) {
	withComment := kinds(New("1 + 2 # trailing comment\n * 3").Scan())
	without := kinds(New("1 + 2 \n * 3").Scan())
	assert.Equal(t, without, withComment)
}

func TestBinaryLiteral(t *testing.T) {
	toks := New("0b1101").Scan()
	assert.Equal(t, token.Bin, toks[0].Kind)
	assert.Equal(t, "0b1101", toks[0].Lexeme)
}

func TestBinaryLiteralUnderscore(t *testing.T) {
	toks := New("0b11_01").Scan()
	assert.Equal(t, token.Bin, toks[0].Kind)
}

func TestBinaryLiteralInvalidDigits(t *testing.T) {
	toks := New("0b0123").Scan()
	assert.Equal(t, token.Err, toks[0].Kind)
}

func TestHexLiteralInvalidDigits(t *testing.T) {
	toks := New("0xabcdefghi").Scan()
	assert.Equal(t, token.Err, toks[0].Kind)
}

func TestIntLiteralSeparators(t *testing.T) {
	toks := New("1_000_000").Scan()
	assert.Equal(t, token.Int, toks[0].Kind)
	assert.Equal(t, "1_000_000", toks[0].Lexeme)
}

func TestIntLiteralTrailingUnderscore(t *testing.T) {
	toks := New("0_1_2_3_").Scan()
	assert.Equal(t, token.Int, toks[0].Kind)
}

func TestRealLiteral(t *testing.T) {
	toks := New("1.0").Scan()
	assert.Equal(t, token.Real, toks[0].Kind)
}

func TestKeywordsTrueFalse(t *testing.T) {
	toks := New("true false").Scan()
	assert.Equal(t, []token.Kind{token.True, token.False, token.Eof}, kinds(toks))
}

func TestUnderscoreIdentifier(t *testing.T) {
	toks := New("_").Scan()
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, "_", toks[0].Lexeme)
}

func TestUnknownCharacterIsErr(t *testing.T) {
	toks := New("@").Scan()
	assert.Equal(t, token.Err, toks[0].Kind)
}
