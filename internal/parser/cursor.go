package parser

import (
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// nextToken advances the cursor by one token, with the synthetic '>'
// carve-out the type parser relies on to close one generic-argument
// level at a time out of a lexed '>>' (spec §4.3). peek past Eof is a
// logic bug the lexer's trailing Eof token makes unreachable (spec §4.1).
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	if p.splitRshift {
		p.splitRshift = false
		p.curToken = token.Token{
			Kind:    token.GT,
			Literal: ">",
			Start:   p.prevToken.Start + 1,
			End:     p.prevToken.Start + 2,
			Line:    p.prevToken.Line,
		}
		p.curPos = -1 // synthetic: no real index
		return
	}
	p.curToken = p.peekToken
	if p.curPos >= 0 {
		p.curPos++
	} else {
		// curToken was synthetic; resume from the token after the '>>'
		// that produced it, which peekToken already names.
		p.curPos = p.indexOf(p.peekToken)
	}
	peekIdx := p.curPos + 1
	if peekIdx < len(p.tokens) {
		p.peekToken = p.tokens[peekIdx]
	} else {
		p.peekToken = p.tokens[len(p.tokens)-1]
	}
}

// indexOf recovers a real token's slice index after a synthetic-token
// detour (only the type parser's >> split produces one); it scans the
// token slice from the start for the first token with the same start
// offset and kind.
func (p *Parser) indexOf(tok token.Token) int {
	for i := range p.tokens {
		if p.tokens[i].Start == tok.Start && p.tokens[i].Kind == tok.Kind {
			return i
		}
	}
	return len(p.tokens) - 1
}

// peek returns the current token without consuming it.
func (p *Parser) peek() token.Token { return p.curToken }

// peekAt returns the token k positions ahead of curToken (k=0 is
// curToken itself).
func (p *Parser) peekAt(k int) token.Token {
	if k == 0 {
		return p.curToken
	}
	if k == 1 {
		return p.peekToken
	}
	idx := p.curPos + k
	if p.curPos < 0 || idx < 0 || idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

// advance consumes and returns curToken.
func (p *Parser) advance() token.Token {
	tok := p.curToken
	p.nextToken()
	return tok
}

// prev returns the last consumed token.
func (p *Parser) prev() token.Token { return p.prevToken }

// curTokenIs reports whether curToken has the given kind.
func (p *Parser) curTokenIs(kind token.Kind) bool { return p.curToken.Kind == kind }

// peekTokenIs reports whether peekToken has the given kind.
func (p *Parser) peekTokenIs(kind token.Kind) bool { return p.peekToken.Kind == kind }

// is is the spec-named alias for curTokenIs.
func (p *Parser) is(kind token.Kind) bool { return p.curTokenIs(kind) }

// consume advances past curToken iff it has the given kind, reporting
// whether it did.
func (p *Parser) consume(kind token.Kind) bool {
	if p.curTokenIs(kind) {
		p.advance()
		return true
	}
	return false
}

// must advances past curToken iff it has the given kind; otherwise it
// raises "expected '<kind>'" at curToken's span and returns curToken
// unconsumed (spec §4.1, §7).
func (p *Parser) must(kind token.Kind) (token.Token, bool) {
	if p.curTokenIs(kind) {
		return p.advance(), true
	}
	tok := p.curToken
	p.diagf(diagnostics.ErrExpectedKind, tok.Start, tok.End, string(kind))
	return tok, false
}

// nextIs reports whether the token k positions ahead has the given kind.
func (p *Parser) nextIs(k int, kind token.Kind) bool { return p.peekAt(k).Kind == kind }

// mustStmtEnd requires StmtEof, a following '}' (lookahead only, not
// consumed), or Eof at the end of a statement (spec §4.7, §7).
func (p *Parser) mustStmtEnd() {
	if p.curTokenIs(token.STMT_EOF) {
		p.advance()
		return
	}
	if p.curTokenIs(token.RBRACE) || p.curTokenIs(token.EOF) {
		return
	}
	p.diagf(diagnostics.ErrExpectedStmtEnd, p.curToken.Start, p.curToken.End)
	p.synchronise(0)
}
