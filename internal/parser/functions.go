package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// setGenericScope and clearGenericScope manage the single, non-nested
// generic-parameter scope in force during one fn or type-alias
// declaration (spec §9's "small set of names").
func (p *Parser) setGenericScope(params []ast.GenericParam) {
	for _, gp := range params {
		p.genericParams[gp.Name] = true
	}
}

func (p *Parser) clearGenericScope() {
	p.genericParams = map[string]bool{}
}

// parseGenericParamList parses `< T [: Bound ('|' Bound)*] (',' ...)* >`.
// curToken must be '<' on entry.
func (p *Parser) parseGenericParamList() []ast.GenericParam {
	p.advance() // consume '<'
	var params []ast.GenericParam
	if p.curTokenIs(token.GT) || p.curTokenIs(token.RSHIFT) {
		p.closeAngle()
		return params
	}
	for {
		name := ""
		if p.curTokenIs(token.IDENT_UPPER) {
			name = p.curToken.Literal.(string)
			p.advance()
		} else {
			p.diagf(diagnostics.ErrExpectedKind, p.curToken.Start, p.curToken.End, "identifier")
		}
		var bounds []string
		if p.curTokenIs(token.COLON) {
			p.advance()
			for {
				if p.curTokenIs(token.IDENT_UPPER) {
					bounds = append(bounds, p.curToken.Literal.(string))
					p.advance()
				}
				if p.curTokenIs(token.PIPE) {
					p.advance()
					continue
				}
				break
			}
		}
		params = append(params, ast.GenericParam{Name: name, Bounds: bounds})
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.closeAngle()
	return params
}

// parseParamList parses `( [Type ident] (',' ...)* [',' '...' Type ident] )`
// (spec §4.7's `T a, T b` form — type precedes name, the reverse of the
// var-decl-with-inferred-position ordering elsewhere in the grammar).
func (p *Parser) parseParamList() ([]*ast.Param, *ast.Param) {
	p.must(token.LPAREN)
	var params []*ast.Param
	var rest *ast.Param
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.DOTDOTDOT) {
			p.advance()
			rest = p.parseOneParam()
			break
		}
		params = append(params, p.parseOneParam())
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.must(token.RPAREN)
	return params, rest
}

func (p *Parser) parseOneParam() *ast.Param {
	ty := p.parseType()
	name := ""
	if p.curTokenIs(token.IDENT_LOWER) {
		name = p.curToken.Literal.(string)
		p.advance()
	} else {
		p.diagf(diagnostics.ErrExpectedKind, p.curToken.Start, p.curToken.End, "identifier")
	}
	return &ast.Param{Name: name, Type: ty}
}

// parseFnStmt parses a top-level fn declaration, already past any leading
// #label or impl-type prefix (spec §9): `fn name[<generics>](params)
// [: Type] (block | — a template with no body)`.
func (p *Parser) parseFnStmt(start int, implType ast.Type, label *ast.FnLabel) *ast.Stmt {
	p.must(token.FN)
	name := ""
	if p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
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

	params, rest := p.parseParamList()
	retType := ast.Type(&ast.BasicType{Kind: ast.KindVoid})
	if p.curTokenIs(token.COLON) {
		p.advance()
		retType = p.parseType()
	}

	def := &ast.FnDef{
		Start: start, Label: label, ImplType: implType, Name: name,
		GenericParams: generics, Params: params, RestParam: rest, ReturnType: retType,
	}
	if p.curTokenIs(token.LBRACE) {
		def.Body = p.parseBlock()
	} else {
		def.IsTpl = true
	}
	def.End = p.prevToken.End
	return &ast.Stmt{Start: start, End: def.End, Node: &ast.FnDefStmtNode{Def: def}}
}

// parseLabeledFnStmt parses a `#linkid name|string` or `#local` attribute
// preceding a fn declaration.
func (p *Parser) parseLabeledFnStmt(start int) *ast.Stmt {
	kindTok := p.curToken
	p.advance() // consume the '#...' token
	kind, _ := kindTok.Literal.(string)
	label := &ast.FnLabel{Kind: kind}
	if kind == "linkid" {
		if p.curTokenIs(token.STRING) || p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
			label.Value, _ = p.curToken.Literal.(string)
			p.advance()
		}
	}
	return p.parseFnStmt(start, nil, label)
}

// tryTypedBegin speculatively parses a type-prefixed statement: either an
// impl-fn declaration (`ImplType fn name(...)`) or a type-prefixed var
// declaration (`Type ident = expr`). Only identifiers beginning with an
// uppercase letter or a type keyword can start a type (spec's lower/upper
// identifier-case convention doubles as the cheap guard here), so a plain
// lowercase-ident statement never pays for this lookahead. On mismatch the
// cursor (and any diagnostics the attempt raised) is rolled back and nil
// is returned so the caller falls through to ordinary expr-begin parsing.
func (p *Parser) tryTypedBegin(start int) *ast.Stmt {
	_, permitted := config.PermittedImplTypeTokens[p.curToken.Kind]
	if !p.curTokenIs(token.IDENT_UPPER) && !p.curTokenIs(token.PTR) && !permitted {
		return nil
	}
	snap := p.snapshot()
	ty := p.parseType()
	if p.curTokenIs(token.FN) {
		switch ty.TypeKind() {
		case ast.KindStruct, ast.KindFn, ast.KindUnion, ast.KindPtr:
			s, e := ty.Span()
			p.diagf(diagnostics.ErrTypeCannotImplFn, s, e, string(ty.TypeKind()))
		}
		return p.parseFnStmt(start, ty, nil)
	}
	if p.curTokenIs(token.IDENT_LOWER) {
		name := p.curToken.Literal.(string)
		p.advance()
		if p.curTokenIs(token.ASSIGN) {
			p.advance()
			val := p.parseExpression()
			decl := &ast.VarDecl{Start: start, End: p.prevToken.End, Name: name, Type: ty, Value: val}
			return &ast.Stmt{Start: start, End: p.prevToken.End, Node: &ast.VarDef{Decl: decl}}
		}
	}
	p.restore(snap)
	return nil
}

// parseFnDefExpr parses an anonymous fn literal in expression position. A
// call immediately following its closing '}' is picked up for free by the
// ordinary Pratt infix loop, since '(' is a registered infix operator —
// no separate immediate-call transform is needed.
func (p *Parser) parseFnDefExpr() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume 'fn'
	var generics []ast.GenericParam
	if p.curTokenIs(token.LT) {
		generics = p.parseGenericParamList()
	}
	p.setGenericScope(generics)
	defer p.clearGenericScope()

	params, rest := p.parseParamList()
	retType := ast.Type(&ast.BasicType{Kind: ast.KindVoid})
	if p.curTokenIs(token.COLON) {
		p.advance()
		retType = p.parseType()
	}
	body := p.parseBlock()
	def := &ast.FnDef{
		Start: start, GenericParams: generics, Params: params, RestParam: rest,
		ReturnType: retType, Body: body, End: p.prevToken.End,
	}
	return p.newExpr(start, &ast.FnDefExpr{Def: def})
}
