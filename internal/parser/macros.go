package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// parseMacroCall dispatches a `@name(...)` form by its literal name
// (config.MacroNames is the single source of truth for what's defined —
// spec §4.8). An unrecognised name still parses its argument list on a
// best-effort basis so one bad macro call doesn't desynchronise the rest
// of the expression.
func (p *Parser) parseMacroCall() *ast.Expr {
	start := p.curToken.Start
	name, _ := p.curToken.Literal.(string)
	p.advance() // consume '@name'
	if !config.MacroNames[name] {
		p.diagf(diagnostics.ErrMacroNotDefined, start, p.prevToken.End, name)
	}
	switch name {
	case "sizeof":
		return p.parseMacroTypeArg(start, func(t ast.Type) ast.ExprNode { return &ast.MacroSizeof{Arg: t} })
	case "reflect_hash":
		return p.parseMacroTypeArg(start, func(t ast.Type) ast.ExprNode { return &ast.MacroReflectHash{Arg: t} })
	case "default":
		return p.parseMacroTypeArg(start, func(t ast.Type) ast.ExprNode { return &ast.MacroDefault{Arg: t} })
	case "co_async":
		p.must(token.LPAREN)
		call := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		var flag *ast.Expr
		if p.curTokenIs(token.COMMA) {
			p.advance()
			flag = p.parseExpr(config.PrecCatch, token.ILLEGAL)
		}
		p.must(token.RPAREN)
		return p.newExpr(start, p.buildCoAsync(call, flag))
	default: // "ula" and any unrecognised name
		p.must(token.LPAREN)
		var arg *ast.Expr
		if !p.curTokenIs(token.RPAREN) {
			arg = p.parseExpr(config.PrecCatch, token.ILLEGAL)
		}
		p.must(token.RPAREN)
		return p.newExpr(start, &ast.MacroUla{Arg: arg})
	}
}

func (p *Parser) parseMacroTypeArg(start int, build func(ast.Type) ast.ExprNode) *ast.Expr {
	p.must(token.LPAREN)
	t := p.parseType()
	p.must(token.RPAREN)
	return p.newExpr(start, build(t))
}
