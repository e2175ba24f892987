package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "IDENT", IDENT.String())
	assert.Equal(t, "/", SLASH.String())
	assert.Equal(t, "TOKEN(99)", TokenType(99).String())
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, IsPunctuation(SLASH))
	assert.True(t, IsPunctuation(COLON))
	assert.True(t, IsPunctuation(COMMA))
	assert.False(t, IsPunctuation(IDENT))
	assert.False(t, IsPunctuation(EOF))
}

func TestTokenDescribe(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: EOF}, "end of input"},
		{Token{Type: IDENT, Literal: "tomorow"}, `"tomorow"`},
		{Token{Type: NUMBER, Literal: "32"}, `"32"`},
		{Token{Type: COLON, Literal: ":"}, "`:`"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tok.Describe())
	}
}

func TestTokenSpan(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "days", Pos: Position{Line: 1, Column: 3, Offset: 2}}
	s := tok.Span()
	assert.Equal(t, tok.Pos, s.Start)
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(6))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "1:7", s.End.String())

	eof := Token{Type: EOF, Pos: Position{Line: 1, Column: 7, Offset: 6}}.Span()
	assert.Equal(t, 0, eof.Len())
	assert.False(t, eof.Contains(6))
}
