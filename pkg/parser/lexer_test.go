package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/timelang/pkg/parser"
	"github.com/leapstack-labs/timelang/pkg/token"
)

func TestTokenize(t *testing.T) {
	tokens := parser.Tokenize("15/6/2022 at 14:00")

	want := []struct {
		typ     token.TokenType
		literal string
		column  int
	}{
		{token.NUMBER, "15", 1},
		{token.SLASH, "/", 3},
		{token.NUMBER, "6", 4},
		{token.SLASH, "/", 5},
		{token.NUMBER, "2022", 6},
		{token.IDENT, "at", 11},
		{token.NUMBER, "14", 14},
		{token.COLON, ":", 16},
		{token.NUMBER, "00", 17},
		{token.EOF, "", 19},
	}

	require.Len(t, tokens, len(want))
	for i, w := range want {
		assert.Equal(t, w.typ, tokens[i].Type, "token %d", i)
		assert.Equal(t, w.literal, tokens[i].Literal, "token %d", i)
		assert.Equal(t, 1, tokens[i].Pos.Line, "token %d", i)
		assert.Equal(t, w.column, tokens[i].Pos.Column, "token %d", i)
	}
	assert.Equal(t, 18, tokens[len(tokens)-1].Pos.Offset)
}

func TestTokenizeShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []token.TokenType
		lits  []string
	}{
		{
			name:  "number glued to word",
			input: "3pm",
			types: []token.TokenType{token.NUMBER, token.IDENT, token.EOF},
			lits:  []string{"3", "pm", ""},
		},
		{
			name:  "identifier with digits and underscore",
			input: "_a1 b_2",
			types: []token.TokenType{token.IDENT, token.IDENT, token.EOF},
			lits:  []string{"_a1", "b_2", ""},
		},
		{
			name:  "comma separated duration",
			input: "2 hours,30 minutes",
			types: []token.TokenType{token.NUMBER, token.IDENT, token.COMMA, token.NUMBER, token.IDENT, token.EOF},
			lits:  []string{"2", "hours", ",", "30", "minutes", ""},
		},
		{
			name:  "minus sign is illegal",
			input: "-1",
			types: []token.TokenType{token.ILLEGAL, token.NUMBER, token.EOF},
			lits:  []string{"-", "1", ""},
		},
		{
			name:  "multi-byte character is one illegal token",
			input: "días",
			types: []token.TokenType{token.IDENT, token.ILLEGAL, token.IDENT, token.EOF},
			lits:  []string{"d", "í", "as", ""},
		},
		{
			name:  "empty input",
			input: "   ",
			types: []token.TokenType{token.EOF},
			lits:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := parser.Tokenize(tt.input)
			require.Len(t, tokens, len(tt.types))
			for i := range tokens {
				assert.Equal(t, tt.types[i], tokens[i].Type, "token %d", i)
				assert.Equal(t, tt.lits[i], tokens[i].Literal, "token %d", i)
			}
		})
	}
}

func TestTokenizeLines(t *testing.T) {
	tokens := parser.Tokenize("now\n  tomorrow")
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 6}, tokens[1].Pos)
}

func TestLexerKeepsReturningEOF(t *testing.T) {
	l := parser.NewLexer("x")
	assert.Equal(t, token.IDENT, l.NextToken().Type)
	assert.Equal(t, token.EOF, l.NextToken().Type)
	assert.Equal(t, token.EOF, l.NextToken().Type)
}
