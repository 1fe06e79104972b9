package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// newExpr builds an Expr node spanning from start to the last consumed
// token, with its semantic Type/TargetType left Unknown for a later phase.
func (p *Parser) newExpr(start int, node ast.ExprNode) *ast.Expr {
	return &ast.Expr{Start: start, End: p.prevToken.End, Type: ast.Unknown(), TargetType: ast.Unknown(), Node: node}
}

// parseExpression parses one full expression, including a trailing
// `catch` clause (spec §4.2's loosest-binding infix form).
func (p *Parser) parseExpression() *ast.Expr {
	return p.parseExpr(config.PrecCatch, token.ILLEGAL)
}

// parseCondExpr parses an if/for/match-subject condition with the
// struct-literal lookahead suppressed for its duration.
func (p *Parser) parseCondExpr() *ast.Expr {
	prev := p.noStructLit
	p.noStructLit = true
	e := p.parseExpr(config.PrecCatch, token.LBRACE)
	p.noStructLit = prev
	return e
}

// parseExpr is the Pratt loop of spec §4.2: dispatch curToken to its
// prefix parser, then repeatedly fold in infix operators whose
// precedence is at least minPrec, stopping early at excludeKind (PIPE
// while splitting a match arm's `|`-separated conditions). The
// struct-literal lookahead in conditions is suppressed separately, by
// noStructLit.
func (p *Parser) parseExpr(minPrec config.Precedence, excludeKind token.Kind) *ast.Expr {
	prefix := prefixFns[p.curToken.Kind]
	if prefix == nil {
		tok := p.curToken
		p.diagf(diagnostics.ErrExpressionExpected, tok.Start, tok.End)
		return nil
	}
	left := prefix(p)
	if left == nil {
		return nil
	}
	for {
		kind := p.curToken.Kind
		if kind == excludeKind {
			break
		}
		prec, ok := infixPrecedence[kind]
		if !ok || prec < minPrec {
			break
		}
		infix := infixFns[kind]
		if infix == nil {
			break
		}
		next := infix(p, left)
		if next == nil {
			break
		}
		left = next
	}
	return left
}

var unaryOpByToken = map[token.Kind]ast.UnaryOp{
	token.MINUS:    ast.UnaryNeg,
	token.BANG:     ast.UnaryNot,
	token.TILDE:    ast.UnaryBitNot,
	token.AMP:      ast.UnaryAddr,
	token.ASTERISK: ast.UnaryDeref,
}

// --- prefix parsers ---

func (p *Parser) parseIntLiteral() *ast.Expr {
	tok := p.advance()
	return p.newExpr(tok.Start, &ast.Literal{Kind: ast.LitInt, Value: tok.Literal})
}

func (p *Parser) parseFloatLiteral() *ast.Expr {
	tok := p.advance()
	return p.newExpr(tok.Start, &ast.Literal{Kind: ast.LitFloat, Value: tok.Literal})
}

func (p *Parser) parseStringLiteral() *ast.Expr {
	tok := p.advance()
	return p.newExpr(tok.Start, &ast.Literal{Kind: ast.LitString, Value: tok.Literal})
}

func (p *Parser) parseBoolLiteral() *ast.Expr {
	tok := p.advance()
	return p.newExpr(tok.Start, &ast.Literal{Kind: ast.LitBool, Value: tok.Literal})
}

func (p *Parser) parseNullLiteral() *ast.Expr {
	tok := p.advance()
	return p.newExpr(tok.Start, &ast.Literal{Kind: ast.LitNull, Value: nil})
}

// parseUnary handles the prefix operators. A leading '-' directly in
// front of an int or float literal fuses into a negative literal instead
// of wrapping Unary(Neg, Literal). The magnitude has already been parsed
// by the lexer as an int64, so the fused literal covers the same range as
// the negated positive one: the most negative int64 cannot be written,
// since its magnitude does not fit an int64 and lexes as ILLEGAL.
func (p *Parser) parseUnary() *ast.Expr {
	opTok := p.advance()
	if opTok.Kind == token.MINUS {
		if p.curTokenIs(token.INT) {
			lit := p.advance()
			v, _ := lit.Literal.(int64)
			return p.newExpr(opTok.Start, &ast.Literal{Kind: ast.LitInt, Value: -v})
		}
		if p.curTokenIs(token.FLOAT) {
			lit := p.advance()
			v, _ := lit.Literal.(float64)
			return p.newExpr(opTok.Start, &ast.Literal{Kind: ast.LitFloat, Value: -v})
		}
	}
	operand := p.parseExpr(config.PrecUnary, token.ILLEGAL)
	if operand == nil {
		return nil
	}
	return p.newExpr(opTok.Start, &ast.Unary{Op: unaryOpByToken[opTok.Kind], Operand: operand})
}

// structLiteralAhead implements the §4.3 lookahead for `Ident [.Ident]
// [<TypeArgs>] {`, tried only when the prefix position holds a plain or
// qualified identifier. It never consumes a token.
func (p *Parser) structLiteralAhead() bool {
	if p.noStructLit {
		return false
	}
	k := 0
	if p.peekAt(1).Kind == token.DOT {
		nameKind := p.peekAt(2).Kind
		if nameKind == token.IDENT_UPPER || nameKind == token.IDENT_LOWER {
			k = 2
		}
	}
	if p.peekAt(k + 1).Kind == token.LBRACE {
		return true
	}
	if p.peekAt(k + 1).Kind == token.LT {
		_, ok := p.scanBalancedAngle(k + 1)
		return ok
	}
	return false
}

// scanBalancedAngle walks forward from the '<' at offset startK, tracking
// nested-angle depth (an RSHIFT token closes two levels at once, mirroring
// closeAngle's token-splitting rule) and reports whether the matching '>'
// is immediately followed by '{'. It never consumes a token.
func (p *Parser) scanBalancedAngle(startK int) (int, bool) {
	depth := 0
	k := startK
	for {
		tok := p.peekAt(k)
		switch tok.Kind {
		case token.EOF, token.STMT_EOF:
			return k, false
		case token.LT:
			depth++
		case token.GT:
			depth--
			if depth <= 0 {
				return k, p.peekAt(k+1).Kind == token.LBRACE
			}
		case token.RSHIFT:
			depth -= 2
			if depth <= 0 {
				return k, p.peekAt(k+1).Kind == token.LBRACE
			}
		}
		k++
	}
}

func (p *Parser) parseIdentOrStructNew() *ast.Expr {
	if p.structLiteralAhead() {
		return p.parseStructNewExpr()
	}
	tok := p.advance()
	return p.newExpr(tok.Start, &ast.Ident{Name: tok.Literal.(string)})
}

func (p *Parser) parseStructNewExpr() *ast.Expr {
	start := p.curToken.Start
	name := p.curToken.Literal.(string)
	p.advance()
	if p.curTokenIs(token.DOT) {
		p.advance()
		name = name + "." + p.curToken.Literal.(string)
		p.advance()
	}
	var typeArgs []ast.Type
	if p.curTokenIs(token.LT) {
		typeArgs = p.parseTypeArgList()
	}
	p.must(token.LBRACE)
	var props []ast.StructProp
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.STMT_EOF) {
			p.advance()
			continue
		}
		fieldName := ""
		if p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
			fieldName = p.curToken.Literal.(string)
			p.advance()
		}
		p.must(token.COLON)
		val := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		props = append(props, ast.StructProp{Name: fieldName, Value: val})
		if p.curTokenIs(token.COMMA) {
			p.advance()
		}
	}
	p.must(token.RBRACE)
	return p.newExpr(start, &ast.StructNew{Name: name, TypeArgs: typeArgs, Properties: props})
}

// parseParenOrTuple disambiguates a grouped expression from a tuple
// literal by the presence of a comma before the closing ')' (spec §4.3).
func (p *Parser) parseParenOrTuple() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume '('
	if p.curTokenIs(token.RPAREN) {
		p.advance()
		return p.newExpr(start, &ast.TupleNew{})
	}
	first := p.parseExpr(config.PrecCatch, token.ILLEGAL)
	if first == nil {
		p.must(token.RPAREN)
		return nil
	}
	if p.curTokenIs(token.COMMA) {
		elems := []*ast.Expr{first}
		for p.curTokenIs(token.COMMA) {
			p.advance()
			if p.curTokenIs(token.RPAREN) {
				break
			}
			e := p.parseExpr(config.PrecCatch, token.ILLEGAL)
			if e == nil {
				break
			}
			elems = append(elems, e)
		}
		p.must(token.RPAREN)
		return p.newExpr(start, &ast.TupleNew{Elems: elems})
	}
	p.must(token.RPAREN)
	first.Start = start
	first.End = p.prevToken.End
	return first
}

func (p *Parser) parseVecNew() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume '['
	var elems []*ast.Expr
	for !p.curTokenIs(token.RBRACKET) && !p.curTokenIs(token.EOF) {
		e := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		if e == nil {
			break
		}
		elems = append(elems, e)
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.must(token.RBRACKET)
	return p.newExpr(start, &ast.VecNew{Elems: elems})
}

// parseBraceLiteral distinguishes an empty/map/set brace literal (spec
// §4.3): an empty `{}` is a map, a first entry followed by ':' makes the
// whole literal a map, otherwise it's a set.
func (p *Parser) parseBraceLiteral() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume '{'
	if p.curTokenIs(token.RBRACE) {
		p.advance()
		return p.newExpr(start, &ast.MapNew{})
	}
	first := p.parseExpr(config.PrecCatch, token.ILLEGAL)
	if first == nil {
		p.must(token.RBRACE)
		return nil
	}
	if p.curTokenIs(token.COLON) {
		p.advance()
		firstVal := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		keys := []*ast.Expr{first}
		vals := []*ast.Expr{firstVal}
		for p.curTokenIs(token.COMMA) {
			p.advance()
			if p.curTokenIs(token.RBRACE) {
				break
			}
			k := p.parseExpr(config.PrecCatch, token.ILLEGAL)
			p.must(token.COLON)
			v := p.parseExpr(config.PrecCatch, token.ILLEGAL)
			keys = append(keys, k)
			vals = append(vals, v)
		}
		p.must(token.RBRACE)
		return p.newExpr(start, &ast.MapNew{Keys: keys, Vals: vals})
	}
	elems := []*ast.Expr{first}
	for p.curTokenIs(token.COMMA) {
		p.advance()
		if p.curTokenIs(token.RBRACE) {
			break
		}
		e := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		if e == nil {
			break
		}
		elems = append(elems, e)
	}
	p.must(token.RBRACE)
	return p.newExpr(start, &ast.SetNew{Elems: elems})
}

func (p *Parser) parseNewExpr() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume 'new'
	ty := p.parseType()
	var args []*ast.Expr
	if p.curTokenIs(token.LPAREN) {
		p.advance()
		for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
			e := p.parseExpr(config.PrecCatch, token.ILLEGAL)
			if e == nil {
				break
			}
			args = append(args, e)
			if p.curTokenIs(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.must(token.RPAREN)
	}
	return p.newExpr(start, &ast.New{Type: ty, Args: args})
}

// --- infix parsers ---

func (p *Parser) parseBinaryInfix(left *ast.Expr) *ast.Expr {
	opTok := p.advance()
	prec := infixPrecedence[opTok.Kind]
	right := p.parseExpr(prec+1, token.ILLEGAL) // strictly greater: left-associative
	if right == nil {
		return nil
	}
	return p.newExpr(left.Start, &ast.Binary{Op: binaryOpByToken[opTok.Kind], Left: left, Right: right})
}

// cursorSnapshot captures the cursor state needed to undo a tentative
// parse that turned out not to match (spec §4.3's generic-args-vs-
// relational-operator disambiguation).
type cursorSnapshot struct {
	curToken, peekToken, prevToken token.Token
	curPos                         int
	splitRshift                    bool
	diagLen                        int
}

func (p *Parser) snapshot() cursorSnapshot {
	return cursorSnapshot{p.curToken, p.peekToken, p.prevToken, p.curPos, p.splitRshift, len(p.diags.List)}
}

func (p *Parser) restore(s cursorSnapshot) {
	p.curToken, p.peekToken, p.prevToken = s.curToken, s.peekToken, s.prevToken
	p.curPos, p.splitRshift = s.curPos, s.splitRshift
	p.diags.List = p.diags.List[:s.diagLen]
}

// parseLtInfix resolves the ambiguity between `a < b` (relational) and
// `f<T>(...)` / `T<U> {...}` (generic instantiation), per spec §4.3. Only
// an Ident or Select left operand is eligible; the tentative parse is
// rolled back on any mismatch, including any diagnostics it raised.
func (p *Parser) parseLtInfix(left *ast.Expr) *ast.Expr {
	eligible := false
	switch left.Node.(type) {
	case *ast.Ident, *ast.Select:
		eligible = true
	}
	if eligible {
		snap := p.snapshot()
		if args, ok := p.tryGenericArgs(); ok {
			if p.curTokenIs(token.LPAREN) {
				return p.finishGenericCall(left, args)
			}
			if p.curTokenIs(token.LBRACE) {
				return p.finishGenericStructNew(left, args)
			}
		}
		p.restore(snap)
	}
	return p.parseBinaryInfix(left)
}

// tryGenericArgs tentatively parses a `<T, T, ...>` list starting at
// curToken=='<', reporting ok=false (with the cursor left wherever the
// failure occurred — the caller restores) if it cannot be closed.
func (p *Parser) tryGenericArgs() ([]ast.Type, bool) {
	before := len(p.diags.List)
	args := p.parseTypeArgList()
	return args, len(p.diags.List) == before
}

func (p *Parser) finishGenericCall(left *ast.Expr, typeArgs []ast.Type) *ast.Expr {
	p.advance() // consume '('
	args, spreadLast := p.parseCallArgs()
	return p.newExpr(left.Start, &ast.Call{Callee: left, TypeArgs: typeArgs, Args: args, SpreadLast: spreadLast})
}

func (p *Parser) finishGenericStructNew(left *ast.Expr, typeArgs []ast.Type) *ast.Expr {
	name := ""
	switch n := left.Node.(type) {
	case *ast.Ident:
		name = n.Name
	case *ast.Select:
		if base, ok := n.Target.Node.(*ast.Ident); ok {
			name = base.Name + "." + n.Field
		}
	}
	p.advance() // consume '{'
	var props []ast.StructProp
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.STMT_EOF) {
			p.advance()
			continue
		}
		fieldName := ""
		if p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
			fieldName = p.curToken.Literal.(string)
			p.advance()
		}
		p.must(token.COLON)
		val := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		props = append(props, ast.StructProp{Name: fieldName, Value: val})
		if p.curTokenIs(token.COMMA) {
			p.advance()
		}
	}
	p.must(token.RBRACE)
	return p.newExpr(left.Start, &ast.StructNew{Name: name, TypeArgs: typeArgs, Properties: props})
}

// parseCallArgs parses a call's argument list assuming the opening '('
// has already been consumed. A trailing `...` on the final argument marks
// SpreadLast (invariant: at most one, and it must be last — spec §3).
func (p *Parser) parseCallArgs() ([]*ast.Expr, bool) {
	var args []*ast.Expr
	spreadLast := false
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		e := p.parseExpr(config.PrecCatch, token.ILLEGAL)
		if e == nil {
			break
		}
		args = append(args, e)
		if p.curTokenIs(token.DOTDOTDOT) {
			tok := p.curToken
			p.advance()
			if !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.COMMA) {
				p.diagf(diagnostics.ErrSpreadMustBeLast, tok.Start, tok.End)
			}
			spreadLast = true
		}
		if p.curTokenIs(token.COMMA) {
			if spreadLast {
				p.diagf(diagnostics.ErrSpreadMustBeLast, p.curToken.Start, p.curToken.End)
			}
			p.advance()
			continue
		}
		break
	}
	p.must(token.RPAREN)
	return args, spreadLast
}

func (p *Parser) parseCallInfix(left *ast.Expr) *ast.Expr {
	p.advance() // consume '('
	args, spreadLast := p.parseCallArgs()
	return p.newExpr(left.Start, &ast.Call{Callee: left, Args: args, SpreadLast: spreadLast})
}

func (p *Parser) parseAccessInfix(left *ast.Expr) *ast.Expr {
	p.advance() // consume '['
	idx := p.parseExpr(config.PrecCatch, token.ILLEGAL)
	p.must(token.RBRACKET)
	return p.newExpr(left.Start, &ast.Access{Target: left, Index: idx})
}

func (p *Parser) parseSelectInfix(left *ast.Expr) *ast.Expr {
	p.advance() // consume '.'
	field := ""
	if p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
		field = p.curToken.Literal.(string)
		p.advance()
	} else {
		tok := p.curToken
		p.diagf(diagnostics.ErrExpectedKind, tok.Start, tok.End, "identifier")
	}
	return p.newExpr(left.Start, &ast.Select{Target: left, Field: field})
}

func (p *Parser) parseAsInfix(left *ast.Expr) *ast.Expr {
	p.advance() // consume 'as'
	target := p.parseType()
	return p.newExpr(left.Start, &ast.AsExpr{Operand: left, Target: target})
}

func (p *Parser) parseIsInfix(left *ast.Expr) *ast.Expr {
	p.advance() // consume 'is'
	target := p.parseType()
	return p.newExpr(left.Start, &ast.IsExpr{Operand: left, Target: target})
}

func (p *Parser) parseCatchInfix(left *ast.Expr) *ast.Expr {
	p.advance() // consume 'catch'
	ident := ""
	if p.curTokenIs(token.IDENT_LOWER) {
		ident = p.curToken.Literal.(string)
		p.advance()
	}
	body := p.parseBlock()
	return p.newExpr(left.Start, &ast.CatchExpr{Operand: left, Ident: ident, Body: body})
}

// parseBareMatchIs parses a bare `is T` condition — legal only inside a
// match arm's condition list when the match has a subject (spec §4.6).
func (p *Parser) parseBareMatchIs() *ast.Expr {
	start := p.curToken.Start
	p.advance() // consume 'is'
	if !p.matchCond || !p.hasSubject {
		p.diagf(diagnostics.ErrIsTypeRequired, start, start)
	}
	target := p.parseType()
	return p.newExpr(start, &ast.MatchIs{Target: target})
}
