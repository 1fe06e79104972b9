package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/token"
)

// parseGoExpr parses `go expr`, lowering it to the same MacroCoAsync form
// as a bare `@co_async(expr)` call (spec §4.8). `go` binds to the single
// call expression that follows it, not a whole looser expression.
func (p *Parser) parseGoExpr() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume 'go'
	call := p.parseExpr(config.PrecUnary, token.ILLEGAL)
	return p.newExpr(start, p.buildCoAsync(call, nil))
}

// buildCoAsync synthesises the two closure shapes spec §4.8 describes:
// ClosureFn captures the call's result into a local before handing it to
// co_return; ClosureFnVoid just re-issues the call and drops the result.
// Downstream lowering picks whichever shape its result-handling needs.
func (p *Parser) buildCoAsync(call *ast.Expr, flag *ast.Expr) *ast.MacroCoAsync {
	return &ast.MacroCoAsync{
		OriginCall:    call,
		ClosureFn:     p.synthesizeCoClosure(call, true),
		ClosureFnVoid: p.synthesizeCoClosure(call, false),
		FlagExpr:      flag,
	}
}

func (p *Parser) synthesizeCoClosure(call *ast.Expr, withResult bool) *ast.FnDef {
	if call == nil {
		return &ast.FnDef{}
	}
	if !withResult {
		callStmt := &ast.Stmt{Start: call.Start, End: call.End, Node: &ast.CallStmt{Value: call}}
		return &ast.FnDef{Start: call.Start, End: call.End, Body: []*ast.Stmt{callStmt}}
	}
	resultDecl := &ast.VarDecl{Start: call.Start, End: call.End, Name: "result", Value: call}
	varStmt := &ast.Stmt{Start: call.Start, End: call.End, Node: &ast.VarDef{Decl: resultDecl}}

	resultIdent := p.newExpr(call.Start, &ast.Ident{Name: "result"})
	addr := p.newExpr(call.Start, &ast.Unary{Op: ast.UnaryAddr, Operand: resultIdent})
	coReturnCallee := p.newExpr(call.Start, &ast.Ident{Name: "co_return"})
	coReturnCall := p.newExpr(call.Start, &ast.Call{Callee: coReturnCallee, Args: []*ast.Expr{addr}})
	coReturnStmt := &ast.Stmt{Start: call.Start, End: call.End, Node: &ast.CallStmt{Value: coReturnCall}}

	return &ast.FnDef{Start: call.Start, End: call.End, Body: []*ast.Stmt{varStmt, coReturnStmt}}
}
