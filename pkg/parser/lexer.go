package parser

import (
	"unicode/utf8"

	"github.com/leapstack-labs/timelang/pkg/token"
)

// Lexer tokenizes timelang input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token. At end of input it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	tok := token.Token{Pos: l.currentPos()}

	switch {
	case l.pos >= len(l.input):
		tok.Type = token.EOF
		return tok
	case l.ch == '/':
		tok.Type, tok.Literal = token.SLASH, "/"
	case l.ch == ':':
		tok.Type, tok.Literal = token.COLON, ":"
	case l.ch == ',':
		tok.Type, tok.Literal = token.COMMA, ","
	case isLetter(l.ch) || l.ch == '_':
		tok.Type = token.IDENT
		tok.Literal = l.readIdentifier()
		return tok
	case isDigit(l.ch):
		tok.Type = token.NUMBER
		tok.Literal = l.readNumber()
		return tok
	default:
		tok.Type = token.ILLEGAL
		tok.Literal = l.readRune()
		return tok
	}

	l.readChar()
	return tok
}

// Tokenize returns every token of input, ending with EOF.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readRune consumes one whole UTF-8 sequence so that an ILLEGAL token never
// splits a multi-byte character.
func (l *Lexer) readRune() string {
	start := l.pos
	_, size := utf8.DecodeRuneInString(l.input[start:])
	for range size {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
