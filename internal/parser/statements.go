package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// parseBlock parses a brace-delimited statement list, recovering from a
// bad statement at the granularity spec §4.9 describes: one mis-parsed
// statement never drags down the rest of the block.
func (p *Parser) parseBlock() []*ast.Stmt {
	p.must(token.LBRACE)
	var stmts []*ast.Stmt
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.STMT_EOF) {
			p.advance()
			continue
		}
		startPos := p.curPos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
			p.mustStmtEnd()
			continue
		}
		if p.curPos == startPos && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
			p.advance()
		}
	}
	p.must(token.RBRACE)
	return stmts
}

// parseStatement dispatches one statement by its leading token (spec
// §4.7). The type-prefixed and impl-fn forms share an uppercase/type-
// keyword lead with ordinary type expressions, so they're tried as a
// speculative lookahead only after the keyword-led forms are ruled out.
func (p *Parser) parseStatement() *ast.Stmt {
	start := p.curToken.Start
	switch {
	case p.curTokenIs(token.VAR):
		return p.parseVarBegin(start)
	case p.curTokenIs(token.LET):
		return p.parseLetStmt(start)
	case p.curTokenIs(token.IF):
		return p.parseIfStmt(start)
	case p.curTokenIs(token.FOR):
		return p.parseForStmt(start)
	case p.curTokenIs(token.RETURN):
		return p.parseReturnStmt(start)
	case p.curTokenIs(token.BREAK):
		return p.parseBreakStmt(start)
	case p.curTokenIs(token.CONTINUE):
		p.advance()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Continue{}}
	case p.curTokenIs(token.IMPORT):
		return p.parseImportStmt(start)
	case p.curTokenIs(token.TYPE):
		return p.parseTypeAliasStmt(start)
	case p.curTokenIs(token.THROW):
		return p.parseThrowStmt(start)
	case p.curTokenIs(token.FN):
		return p.parseFnStmt(start, nil, nil)
	case p.curTokenIs(token.FN_LABEL):
		return p.parseLabeledFnStmt(start)
	case p.curTokenIs(token.LPAREN):
		return p.parseParenBegin(start)
	case p.curTokenIs(token.GO):
		expr := p.parseGoExpr()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Fake{Value: expr}}
	case p.curTokenIs(token.MATCH):
		expr := p.parseMatchExpr()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Fake{Value: expr}}
	case p.curTokenIs(token.MACRO_IDENT):
		expr := p.parseExpression()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Fake{Value: expr}}
	default:
		if stmt := p.tryTypedBegin(start); stmt != nil {
			return stmt
		}
		return p.parseExprBegin(start)
	}
}

func tokenDisplay(tok token.Token) string {
	if s, ok := tok.Literal.(string); ok && s != "" {
		return s
	}
	return string(tok.Kind)
}

// parseExprBegin parses the expr-begin statement forms: assignment,
// desugared compound assignment, a bare call/catch used as a statement,
// or (on failure to fit any of those) a Fake recovery wrapper.
func (p *Parser) parseExprBegin(start int) *ast.Stmt {
	left := p.parseExpression()
	if left == nil {
		tok := p.curToken
		p.diagf(diagnostics.ErrStmtCannotStart, tok.Start, tok.End, tokenDisplay(tok))
		p.synchronise(0)
		return nil
	}
	if p.curTokenIs(token.ASSIGN) {
		if _, isCall := left.Node.(*ast.Call); isCall {
			p.diagf(diagnostics.ErrCallExprCannotAssign, left.Start, left.End)
		}
		p.advance()
		right := p.parseExpression()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Assign{Left: left, Right: right}}
	}
	if opKind, ok := config.CompoundAssignOps[p.curToken.Kind]; ok {
		p.advance()
		right := p.parseExpression()
		rhs := p.newExpr(left.Start, &ast.Binary{Op: binaryOpByToken[opKind], Left: left, Right: right})
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Assign{Left: left, Right: rhs}}
	}
	switch left.Node.(type) {
	case *ast.Call, *ast.CatchExpr:
		return &ast.Stmt{Start: start, End: left.End, Node: &ast.CallStmt{Value: left}}
	default:
		p.diagf(diagnostics.ErrExpressionExpected, left.Start, left.End)
		return &ast.Stmt{Start: start, End: left.End, Node: &ast.Fake{Value: left}}
	}
}

// parseVarBegin parses `var Type (a, b, ...) = expr` (tuple destructuring,
// spec §4.7) or `var Type ident = expr` (VarDef) — the type always comes
// first, mirroring type-begin's shape rather than an ident-then-type
// order. The destructured type is parsed but (as in the original) not
// distributed across individual targets, which are declared Unknown and
// left for a downstream semantic phase to resolve element-wise.
func (p *Parser) parseVarBegin(start int) *ast.Stmt {
	p.advance() // consume 'var'
	declType := p.parseType()
	if p.curTokenIs(token.LPAREN) {
		targets := p.parseVarTupleDestrTargets()
		p.must(token.ASSIGN)
		val := p.parseExpression()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.VarTupleDestr{Targets: targets, Value: val}}
	}
	name := ""
	if p.curTokenIs(token.IDENT_LOWER) {
		name = p.curToken.Literal.(string)
		p.advance()
	} else {
		p.diagf(diagnostics.ErrExpectedKind, p.curToken.Start, p.curToken.End, "identifier")
	}
	p.must(token.ASSIGN)
	val := p.parseExpression()
	decl := &ast.VarDecl{Start: start, End: p.prevToken.End, Name: name, Type: declType, Value: val}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.VarDef{Decl: decl}}
}

// parseVarTupleDestrTargets parses `(ident, ident, ...)`, each target an
// undeclared-type VarDeclExpr (spec §4.7's `var Type (a, b) = expr` form).
func (p *Parser) parseVarTupleDestrTargets() []*ast.Expr {
	p.advance() // consume '('
	var targets []*ast.Expr
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		declStart := p.curToken.Start
		name := ""
		if p.curTokenIs(token.IDENT_LOWER) {
			name = p.curToken.Literal.(string)
			p.advance()
		} else {
			p.diagf(diagnostics.ErrExpectedKind, p.curToken.Start, p.curToken.End, "identifier")
		}
		decl := &ast.VarDecl{Start: declStart, End: p.prevToken.End, Name: name, Type: ast.Unknown()}
		targets = append(targets, p.newExpr(declStart, &ast.VarDeclExpr{Decl: decl}))
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.must(token.RPAREN)
	return targets
}

// parseLetStmt enforces the invariant that `let` only ever wraps an `as`
// expression (spec §3) — any other shape is still parsed, but flagged.
func (p *Parser) parseLetStmt(start int) *ast.Stmt {
	p.advance() // consume 'let'
	val := p.parseExpression()
	if val != nil {
		if _, ok := val.Node.(*ast.AsExpr); !ok {
			p.diagf(diagnostics.ErrLetMustBeAs, val.Start, val.End)
		}
	}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Let{Value: val}}
}

// parenDestrAhead reports whether curToken=='(' begins a tuple-
// destructuring assignment rather than a grouped/tuple expression: it
// tentatively consumes '(' and parses one expression, then checks
// whether a ',' follows (spec §4.7's "tentatively parses one expression;
// if a ',' follows"), restoring the cursor and any diagnostics the
// tentative parse raised either way (mirrors original_source's
// parser_left_paren_begin_stmt, which re-parses for real from the saved
// position afterward rather than checking the closing ')' directly).
func (p *Parser) parenDestrAhead() bool {
	snap := p.snapshot()
	p.advance() // consume '('
	p.parseExpression()
	isComma := p.curTokenIs(token.COMMA)
	p.restore(snap)
	return isComma
}

func (p *Parser) parseParenBegin(start int) *ast.Stmt {
	if !p.parenDestrAhead() {
		return p.parseExprBegin(start)
	}
	p.advance() // consume '('
	var targets []*ast.Expr
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.VAR) {
			declStart := p.curToken.Start
			p.advance()
			name := ""
			if p.curTokenIs(token.IDENT_LOWER) {
				name = p.curToken.Literal.(string)
				p.advance()
			}
			var declType ast.Type
			if p.curTokenIs(token.COLON) {
				p.advance()
				declType = p.parseType()
			}
			decl := &ast.VarDecl{Start: declStart, End: p.prevToken.End, Name: name, Type: declType}
			targets = append(targets, p.newExpr(declStart, &ast.VarDeclExpr{Decl: decl}))
		} else {
			e := p.parseExpr(config.PrecCall, token.ILLEGAL)
			if e == nil {
				break
			}
			if _, isCall := e.Node.(*ast.Call); isCall {
				p.diagf(diagnostics.ErrTupleDestrAssign, e.Start, e.End)
			}
			targets = append(targets, e)
		}
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.must(token.RPAREN)
	p.must(token.ASSIGN)
	val := p.parseExpression()
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.VarTupleDestr{Targets: targets, Value: val}}
}

func (p *Parser) parseIfStmt(start int) *ast.Stmt {
	p.advance() // consume 'if'
	cond := p.parseCondExpr()
	then := p.parseBlock()
	var elseBody []*ast.Stmt
	if p.curTokenIs(token.ELSE) {
		p.advance()
		if p.curTokenIs(token.IF) {
			elseBody = []*ast.Stmt{p.parseIfStmt(p.curToken.Start)}
		} else {
			elseBody = p.parseBlock()
		}
	}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.If{Cond: cond, Then: then, Else: elseBody}}
}

// forIteratorAhead recognises `k[, v] in` without consuming anything.
func (p *Parser) forIteratorAhead() bool {
	if !p.curTokenIs(token.IDENT_LOWER) {
		return false
	}
	k := 1
	if p.peekAt(1).Kind == token.COMMA && p.peekAt(2).Kind == token.IDENT_LOWER {
		k = 3
	}
	return p.peekAt(k).Kind == token.IN
}

// forTraditionAhead reports whether a statement-terminator appears before
// the loop body's opening '{' at bracket depth 0 — the marker for the
// C-style `init; cond; update` form (spec §4.7's two-semicolon shape; the
// exact count is checked while actually parsing it).
func (p *Parser) forTraditionAhead() bool {
	depth := 0
	k := 0
	seenSep := false
	for {
		tok := p.peekAt(k)
		switch tok.Kind {
		case token.EOF:
			return false
		case token.LPAREN, token.LBRACKET:
			depth++
		case token.RPAREN, token.RBRACKET:
			depth--
		case token.LBRACE:
			if depth == 0 {
				return seenSep
			}
		case token.STMT_EOF:
			if depth == 0 {
				seenSep = true
			}
		}
		k++
	}
}

func (p *Parser) parseForStmt(start int) *ast.Stmt {
	p.advance() // consume 'for'
	if p.curTokenIs(token.LBRACE) {
		body := p.parseBlock()
		return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.ForCond{Body: body}}
	}
	if p.forIteratorAhead() {
		return p.parseForIteratorStmt(start)
	}
	if p.forTraditionAhead() {
		return p.parseForTraditionStmt(start)
	}
	cond := p.parseCondExpr()
	body := p.parseBlock()
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.ForCond{Cond: cond, Body: body}}
}

func (p *Parser) parseForIteratorStmt(start int) *ast.Stmt {
	keyName := p.curToken.Literal.(string)
	p.advance()
	valName := ""
	if p.curTokenIs(token.COMMA) {
		p.advance()
		valName = p.curToken.Literal.(string)
		p.advance()
	}
	p.must(token.IN)
	iterable := p.parseCondExpr()
	body := p.parseBlock()
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.ForIterator{
		KeyName: keyName, ValName: valName, Iterable: iterable, Body: body,
	}}
}

func (p *Parser) parseForTraditionStmt(start int) *ast.Stmt {
	var initStmt *ast.Stmt
	if !p.curTokenIs(token.STMT_EOF) {
		initStmt = p.parseStatement()
	}
	if p.curTokenIs(token.STMT_EOF) {
		p.advance()
	} else {
		p.diagf(diagnostics.ErrForNeedsTwoSemis, p.curToken.Start, p.curToken.End)
	}

	var cond *ast.Expr
	if !p.curTokenIs(token.STMT_EOF) {
		cond = p.parseCondExpr()
	}
	if p.curTokenIs(token.STMT_EOF) {
		p.advance()
	} else {
		p.diagf(diagnostics.ErrForNeedsTwoSemis, p.curToken.Start, p.curToken.End)
	}

	var updateStmt *ast.Stmt
	if !p.curTokenIs(token.LBRACE) {
		updateStmt = p.parseStatement()
	}
	body := p.parseBlock()
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.ForTradition{
		Init: initStmt, Cond: cond, Update: updateStmt, Body: body,
	}}
}

func (p *Parser) parseReturnStmt(start int) *ast.Stmt {
	p.advance()
	var val *ast.Expr
	if !p.curTokenIs(token.STMT_EOF) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		val = p.parseExpression()
	}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Return{Value: val}}
}

func (p *Parser) parseBreakStmt(start int) *ast.Stmt {
	p.advance()
	var val *ast.Expr
	if !p.curTokenIs(token.STMT_EOF) && !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		val = p.parseExpression()
	}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Break{Value: val}}
}

func (p *Parser) parseThrowStmt(start int) *ast.Stmt {
	p.advance()
	val := p.parseExpression()
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.Throw{Value: val}}
}

// parseImportStmt parses `import "path" [as ident|*]` or `import a.b.c
// [as ident|*]` (spec §4.7). Everything past the path/segments and alias
// is left zero-valued for the semantic phase to resolve (spec §6).
func (p *Parser) parseImportStmt(start int) *ast.Stmt {
	p.advance() // consume 'import'
	imp := &ast.Import{}
	switch {
	case p.curTokenIs(token.STRING):
		imp.Path = p.curToken.Literal.(string)
		p.advance()
	case p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER):
		imp.Segments = append(imp.Segments, p.curToken.Literal.(string))
		p.advance()
		for p.curTokenIs(token.DOT) {
			p.advance()
			if p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
				imp.Segments = append(imp.Segments, p.curToken.Literal.(string))
				p.advance()
			}
		}
	default:
		p.diagf(diagnostics.ErrInvalidImportSyntax, p.curToken.Start, p.curToken.End, "invalid import syntax")
	}
	if p.curTokenIs(token.AS) {
		p.advance()
		switch {
		case p.curTokenIs(token.ASTERISK):
			imp.AsStar = true
			p.advance()
		case p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER):
			imp.As = p.curToken.Literal.(string)
			p.advance()
		}
	}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: imp}
}

// parseTypeAliasStmt parses `type Name ['<' generics '>'] = Type`.
func (p *Parser) parseTypeAliasStmt(start int) *ast.Stmt {
	p.advance() // consume 'type'
	name := ""
	if p.curTokenIs(token.IDENT_UPPER) {
		name = p.curToken.Literal.(string)
		p.advance()
	} else {
		p.diagf(diagnostics.ErrExpectedKind, p.curToken.Start, p.curToken.End, "identifier")
	}
	var generics []ast.GenericParam
	if p.curTokenIs(token.LT) {
		generics = p.parseGenericParamList()
	}
	p.setGenericScope(generics)
	defer p.clearGenericScope()

	p.must(token.ASSIGN)
	ty := p.parseType()
	alias := &ast.TypeAliasStmt{Start: start, End: p.prevToken.End, Name: name, GenericParams: generics, Type: ty}
	return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.TypeAliasStmtNode{Alias: alias}}
}
