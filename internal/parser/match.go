package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/token"
)

// parseMatchExpr parses `match [subject] { arm (',' arm)* }` (spec §4.6).
// A subject is present unless '{' follows 'match' directly; its presence
// gates whether an arm's condition list may use a bare `is T` form.
func (p *Parser) parseMatchExpr() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume 'match'
	var subject *ast.Expr
	if !p.curTokenIs(token.LBRACE) {
		subject = p.parseCondExpr()
	}
	p.must(token.LBRACE)

	prevSubj := p.hasSubject
	p.hasSubject = subject != nil

	var arms []ast.MatchArm
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.STMT_EOF) {
			p.advance()
			continue
		}
		arms = append(arms, p.parseMatchArm())
		if p.curTokenIs(token.COMMA) {
			p.advance()
		}
	}

	p.hasSubject = prevSubj
	p.must(token.RBRACE)
	return p.newExpr(start, &ast.MatchExpr{Subject: subject, Arms: arms})
}

// parseMatchArm parses a condition list, then `'=>' (expr | '{' body
// '}')`. With a subject present, the list is `cond ('|' cond)*` — each
// condition excludes PIPE from its own infix loop so that `1 | 2` splits
// into two arm conditions instead of being swallowed as one bitwise-or
// expression. Without a subject (spec §4.6), `|`-splitting never applies:
// the arm's condition is one ordinary boolean expression, free to use `|`
// as bitwise-or if it wants to.
//
// matchCond is true only while the condition list itself is being parsed,
// never across the '=>' body/expr: a bare `is T` is legal in a condition
// but not in an arm's result (spec §3).
func (p *Parser) parseMatchArm() ast.MatchArm {
	prevCond := p.matchCond
	p.matchCond = true
	var conds []*ast.Expr
	if p.hasSubject {
		for {
			c := p.parseExpr(config.PrecAssign, token.PIPE)
			if c != nil {
				conds = append(conds, c)
			}
			if p.curTokenIs(token.PIPE) {
				p.advance()
				continue
			}
			break
		}
	} else {
		if c := p.parseExpression(); c != nil {
			conds = append(conds, c)
		}
	}
	p.matchCond = prevCond
	p.must(token.FAT_ARROW)
	arm := ast.MatchArm{Conds: conds}
	if p.curTokenIs(token.LBRACE) {
		arm.Body = p.parseBlock()
	} else {
		arm.Expr = p.parseExpr(config.PrecCatch, token.ILLEGAL)
	}
	return arm
}
