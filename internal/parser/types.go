package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// basicTypeKindMap is the single source of truth tying a basic-type
// keyword token to the ast.TypeKind it denotes.
var basicTypeKindMap = map[token.Kind]ast.TypeKind{
	token.VOID: ast.KindVoid, token.BOOL: ast.KindBool,
	token.INT_T: ast.KindInt, token.INT8: ast.KindInt8, token.INT16: ast.KindInt16,
	token.INT32: ast.KindInt32, token.INT64: ast.KindInt64,
	token.UINT: ast.KindUint, token.UINT8: ast.KindUint8, token.UINT16: ast.KindUint16,
	token.UINT32: ast.KindUint32, token.UINT64: ast.KindUint64,
	token.FLOAT_T: ast.KindFloat, token.FLOAT32: ast.KindFloat32, token.FLOAT64: ast.KindFloat64,
	token.STRING_T: ast.KindString,
}

// closeAngle consumes the closing '>' of a generic-argument or
// wrapped-type bracket. When curToken is a lexed '>>' it instead performs
// the split described in spec §4.3: it marks splitRshift and advances,
// which yields a synthetic '>' as the new curToken without consuming past
// it — the caller one level up, which itself calls closeAngle again,
// observes that synthetic '>' as its own closing bracket and consumes it
// for real. One lexed '>>' closes exactly two nested levels this way,
// with no token-splitting state threaded between the two call sites.
func (p *Parser) closeAngle() bool {
	if p.curTokenIs(token.GT) {
		p.nextToken()
		return true
	}
	if p.curTokenIs(token.RSHIFT) {
		p.splitRshift = true
		p.nextToken()
		return true
	}
	tok := p.curToken
	p.diagf(diagnostics.ErrExpectedKind, tok.Start, tok.End, ">")
	return false
}

// parseTypeArgList parses a comma-separated Type list bracketed by '<' and
// '>' (or a split '>>'). curToken must be '<' on entry.
func (p *Parser) parseTypeArgList() []ast.Type {
	p.advance() // consume '<'
	var args []ast.Type
	if p.curTokenIs(token.GT) || p.curTokenIs(token.RSHIFT) {
		p.closeAngle()
		return args
	}
	for {
		args = append(args, p.parseType())
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.closeAngle()
	return args
}

// parseType parses a full type, including the '|'-separated union form
// (spec §3's Union variant; IsAny for the bare `any` keyword).
func (p *Parser) parseType() ast.Type {
	start := p.curToken.Start
	left := p.parseTypeUnionMember()
	if !p.curTokenIs(token.PIPE) {
		return left
	}
	types := []ast.Type{left}
	for p.curTokenIs(token.PIPE) {
		p.advance()
		types = append(types, p.parseTypeUnionMember())
	}
	end := p.prevToken.End
	return &ast.UnionType{TypeMeta: ast.TypeMeta{Start: start, End: end}, Types: types}
}

// parseTypeUnionMember parses one member of a union, applying the `T?`
// nullable suffix as sugar for `T | null`.
func (p *Parser) parseTypeUnionMember() ast.Type {
	start := p.curToken.Start
	t := p.parsePrimaryType()
	if !p.curTokenIs(token.QUESTION) {
		return t
	}
	p.advance()
	end := p.prevToken.End
	null := &ast.BasicType{TypeMeta: ast.TypeMeta{Start: start, End: end}, Kind: ast.KindNull}
	return &ast.UnionType{TypeMeta: ast.TypeMeta{Start: start, End: end}, Types: []ast.Type{t, null}}
}

func (p *Parser) parsePrimaryType() ast.Type {
	tok := p.curToken
	switch {
	case tok.Kind == token.ANY:
		p.advance()
		return &ast.UnionType{TypeMeta: ast.TypeMeta{Start: tok.Start, End: p.prevToken.End}, IsAny: true}
	case basicTypeKindMap[tok.Kind] != "":
		p.advance()
		kind := basicTypeKindMap[tok.Kind]
		meta := ast.TypeMeta{Start: tok.Start, End: p.prevToken.End, ImplIdent: string(kind)}
		if tok.Kind == token.INT_T || tok.Kind == token.UINT || tok.Kind == token.FLOAT_T {
			meta.OriginIdent, _ = tok.Literal.(string)
			meta.OriginTypeKind = string(kind)
		}
		return &ast.BasicType{TypeMeta: meta, Kind: kind}
	case tok.Kind == token.PTR:
		return p.parseWrappedType(ast.KindPtr)
	case tok.Kind == token.VEC:
		return p.parseWrappedType(ast.KindVec)
	case tok.Kind == token.SET:
		return p.parseWrappedType(ast.KindSet)
	case tok.Kind == token.CHAN:
		return p.parseWrappedType(ast.KindChan)
	case tok.Kind == token.MAP:
		return p.parseMapType()
	case tok.Kind == token.ARR:
		return p.parseArrType()
	case tok.Kind == token.TUP:
		return p.parseTupKeywordType()
	case tok.Kind == token.STRUCT:
		return p.parseStructType()
	case tok.Kind == token.FN:
		return p.parseFnType()
	case tok.Kind == token.LPAREN:
		return p.parseTupleTypeParen()
	case tok.Kind == token.LBRACE:
		return p.parseBraceType()
	case tok.Kind == token.IDENT_UPPER || tok.Kind == token.IDENT_LOWER:
		return p.parseAliasOrParamType()
	default:
		p.diagf(diagnostics.ErrTypeExpected, tok.Start, tok.End)
		return &ast.UnknownType{TypeMeta: ast.TypeMeta{Start: tok.Start, End: tok.End}}
	}
}

// parseWrappedType parses the `kw<T>` shape shared by ptr, vec, set, chan.
func (p *Parser) parseWrappedType(kind ast.TypeKind) ast.Type {
	start := p.curToken.Start
	p.advance() // consume keyword
	p.must(token.LT)
	elem := p.parseType()
	p.closeAngle()
	meta := ast.TypeMeta{Start: start, End: p.prevToken.End}
	switch kind {
	case ast.KindPtr:
		return &ast.PtrType{TypeMeta: meta, Elem: elem}
	case ast.KindVec:
		return &ast.VecType{TypeMeta: meta, Elem: elem}
	case ast.KindSet:
		return &ast.SetType{TypeMeta: meta, Elem: elem}
	default:
		return &ast.ChanType{TypeMeta: meta, Elem: elem}
	}
}

func (p *Parser) parseMapType() ast.Type {
	start := p.curToken.Start
	p.advance() // consume 'map'
	p.must(token.LT)
	key := p.parseType()
	p.must(token.COMMA)
	val := p.parseType()
	p.closeAngle()
	return &ast.MapType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Key: key, Val: val}
}

func (p *Parser) parseArrType() ast.Type {
	start := p.curToken.Start
	p.advance() // consume 'arr'
	p.must(token.LT)
	elem := p.parseType()
	p.must(token.COMMA)
	length := uint64(1)
	if p.curTokenIs(token.INT) {
		tok := p.curToken
		if v, ok := tok.Literal.(int64); ok {
			if v <= 0 {
				p.diagf(diagnostics.ErrArrayLenPositive, tok.Start, tok.End)
			} else {
				length = uint64(v)
			}
		} else {
			p.diagf(diagnostics.ErrArrayLenInvalid, tok.Start, tok.End)
		}
		p.advance()
	} else {
		p.diagf(diagnostics.ErrArrayLenInvalid, p.curToken.Start, p.curToken.End)
	}
	p.closeAngle()
	return &ast.ArrType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Len: length, Elem: elem}
}

func (p *Parser) parseTupleTypeParen() ast.Type {
	start := p.curToken.Start
	p.advance() // consume '('
	var elems []ast.Type
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		elems = append(elems, p.parseType())
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.must(token.RPAREN)
	return &ast.TupleType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Elems: elems}
}

func (p *Parser) parseTupKeywordType() ast.Type {
	start := p.curToken.Start
	p.advance() // consume 'tup'
	t := p.parseTupleTypeParen().(*ast.TupleType)
	t.Start = start
	return t
}

func (p *Parser) parseStructType() ast.Type {
	start := p.curToken.Start
	p.advance() // consume 'struct'
	p.must(token.LBRACE)
	var props []ast.Property
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.STMT_EOF) {
			p.advance()
			continue
		}
		name := ""
		if p.curTokenIs(token.IDENT_LOWER) || p.curTokenIs(token.IDENT_UPPER) {
			name = p.curToken.Literal.(string)
			p.advance()
		}
		p.must(token.COLON)
		fieldType := p.parseType()
		var def *ast.Expr
		if p.curTokenIs(token.ASSIGN) {
			p.advance()
			def = p.parseExpr(config.PrecCatch, token.ILLEGAL)
			if def != nil {
				if _, isFn := def.Node.(*ast.FnDefExpr); isFn {
					p.diagf(diagnostics.ErrStructDefaultIsFn, def.Start, def.End)
				}
			}
		}
		props = append(props, ast.Property{Name: name, Type: fieldType, Default: def})
		if p.curTokenIs(token.COMMA) {
			p.advance()
		}
	}
	p.must(token.RBRACE)
	return &ast.StructType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Properties: props}
}

func (p *Parser) parseFnType() ast.Type {
	start := p.curToken.Start
	p.advance() // consume 'fn'
	p.must(token.LPAREN)
	var params []ast.Type
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) {
		params = append(params, p.parseType())
		if p.curTokenIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.must(token.RPAREN)
	ret := ast.Type(&ast.BasicType{Kind: ast.KindVoid})
	if p.curTokenIs(token.COLON) {
		p.advance()
		ret = p.parseType()
	}
	return &ast.FnType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Sig: ast.FnTypeSig{Params: params, ReturnType: ret}}
}

// parseBraceType parses the `{K:V}` map / `{T}` set type shorthand (spec
// §4.4), the brace-literal counterpart to the `map<K,V>`/`set<T>` keyword
// forms parsed by parseMapType/parseWrappedType.
func (p *Parser) parseBraceType() ast.Type {
	start := p.curToken.Start
	p.advance() // consume '{'
	first := p.parseType()
	if p.curTokenIs(token.COLON) {
		p.advance()
		val := p.parseType()
		p.must(token.RBRACE)
		return &ast.MapType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Key: first, Val: val}
	}
	p.must(token.RBRACE)
	return &ast.SetType{TypeMeta: ast.TypeMeta{Start: start, End: p.prevToken.End}, Elem: first}
}

// parseAliasOrParamType parses `Ident`, `pkg.Ident`, or either with a
// trailing generic-argument list. An unqualified, argument-less name
// found in the current generic-parameter scope (spec §9) resolves
// directly to a ParamType rather than an unresolved AliasType.
func (p *Parser) parseAliasOrParamType() ast.Type {
	start := p.curToken.Start
	name := p.curToken.Literal.(string)
	p.advance()
	importAs := ""
	if p.curTokenIs(token.DOT) && (p.nextIs(1, token.IDENT_UPPER) || p.nextIs(1, token.IDENT_LOWER)) {
		p.advance()
		importAs = name
		name = p.curToken.Literal.(string)
		p.advance()
	}
	var args []ast.Type
	if p.curTokenIs(token.LT) {
		args = p.parseTypeArgList()
	}
	meta := ast.TypeMeta{Start: start, End: p.prevToken.End, OriginIdent: name}
	if importAs != "" {
		meta.OriginIdent = importAs + "." + name
	}
	if importAs == "" && len(args) == 0 && p.genericParams[name] {
		meta.OriginTypeKind = string(ast.KindParam)
		return &ast.ParamType{TypeMeta: meta, Name: name}
	}
	return &ast.AliasType{TypeMeta: meta, Alias: &ast.TypeAlias{Ident: name, ImportAs: importAs, Args: args}}
}
