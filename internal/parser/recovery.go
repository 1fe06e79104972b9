package parser

import (
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/token"
)

// synchronise implements the recovery procedure of spec §4.9. braceDelta
// is 0 at top level, 1 inside a block the caller is scanning within. It
// advances tokens until:
//
//  1. Eof is reached — returns false (not found).
//  2. A StmtEof is seen at the caller's brace level — consumes it,
//     returns true.
//  3. A fresh-statement keyword or basic-type token appears at the
//     caller's brace level — returns true (does not consume it).
//  4. '}' drops the level below the caller's — returns false, without
//     consuming the '}' (the caller's own block-closing logic owns it).
func (p *Parser) synchronise(braceDelta int) bool {
	level := braceDelta
	for {
		if p.curTokenIs(token.EOF) {
			return false
		}
		if p.curTokenIs(token.LBRACE) {
			level++
			p.advance()
			continue
		}
		if p.curTokenIs(token.RBRACE) {
			if level <= braceDelta {
				return false
			}
			level--
			p.advance()
			continue
		}
		if level == braceDelta {
			if p.curTokenIs(token.STMT_EOF) {
				p.advance()
				return true
			}
			if config.RecoveryKeywords[p.curToken.Kind] || token.BasicTypeKinds[p.curToken.Kind] {
				return true
			}
		}
		p.advance()
	}
}
