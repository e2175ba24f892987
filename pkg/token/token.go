// Package token defines the lexical tokens of the timelang DSL.
//
// Keywords are not separate token types: every word is an IDENT and the
// parser matches keywords case-insensitively against its own tables. This
// keeps words like "day" usable both as a unit and as part of
// "the day after tomorrow".
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // token.TokenType mirrors the naming used across the parser
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // tomorrow, PM, mins
	NUMBER // 2021

	// Punctuation
	SLASH // /
	COLON // :
	COMMA // ,
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",

	SLASH: "/",
	COLON: ":",
	COMMA: ",",
}

// IsPunctuation returns true if the token type is a punctuation mark.
func IsPunctuation(t TokenType) bool {
	return t >= SLASH && t <= COMMA
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Describe renders the token for diagnostics: punctuation and EOF by type,
// words and numbers by their literal text.
func (t Token) Describe() string {
	switch {
	case t.Type == EOF:
		return "end of input"
	case IsPunctuation(t.Type):
		return fmt.Sprintf("`%s`", t.Type)
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}

// Span returns the source range the token's literal covers. EOF has an
// empty span.
func (t Token) Span() Span {
	n := len(t.Literal)
	return Span{
		Start: t.Pos,
		End: Position{
			Line:   t.Pos.Line,
			Column: t.Pos.Column + n,
			Offset: t.Pos.Offset + n,
		},
	}
}
