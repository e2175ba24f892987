package parser

import "github.com/leapstack-labs/timelang/pkg/token"

// token returns the current token.
func (p *Parser) token() token.Token {
	return p.peekAt(0)
}

// peekAt returns the token n positions ahead without consuming anything.
// Past the end it returns the trailing EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// next consumes and returns the current token. EOF is never consumed.
func (p *Parser) next() token.Token {
	tok := p.token()
	if tok.Type != token.EOF {
		p.pos++
	}
	return tok
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.peekAt(0).Type == t
}

// checkPeek returns true if the next token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peekAt(1).Type == t
}

// checkPeek2 returns true if the token after next is of the given type.
func (p *Parser) checkPeek2(t token.TokenType) bool {
	return p.peekAt(2).Type == t
}

// match consumes the current token if it is of the given type.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	return false
}

// checkWord reports whether the current token is the identifier kw.
func (p *Parser) checkWord(kw string) bool {
	return isWord(p.token(), kw)
}

// expect consumes a token of type t or fails naming want.
func (p *Parser) expect(t token.TokenType, want string) (token.Token, error) {
	tok := p.token()
	if tok.Type != t {
		return tok, mismatch(tok, want)
	}
	return p.next(), nil
}

// expectWord consumes the identifier kw or fails.
func (p *Parser) expectWord(kw string) (token.Token, error) {
	tok := p.token()
	if !isWord(tok, kw) {
		return tok, mismatch(tok, "`"+kw+"`")
	}
	return p.next(), nil
}

// fork returns an independent copy of the cursor. Consuming from the fork
// leaves p untouched.
func (p *Parser) fork() *Parser {
	f := *p
	return &f
}

// commit moves p to where f stopped.
func (p *Parser) commit(f *Parser) {
	p.pos = f.pos
}
