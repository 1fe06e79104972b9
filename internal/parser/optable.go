package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/config"
	"github.com/glyphlang/syntax/internal/token"
)

type prefixParseFn func(p *Parser) *ast.Expr
type infixParseFn func(p *Parser, left *ast.Expr) *ast.Expr

// infixPrecedence maps each infix-capable token kind to its binding
// power (spec §4.2). Entries absent here have no infix meaning and stop
// the Pratt loop.
var infixPrecedence = map[token.Kind]config.Precedence{
	token.OR_OR:   config.PrecOrOr,
	token.AND_AND: config.PrecAndAnd,
	token.PIPE:    config.PrecOr,
	token.CARET:   config.PrecXor,
	token.AMP:     config.PrecAnd,
	token.EQ:      config.PrecCmpEqual,
	token.NOT_EQ:  config.PrecCmpEqual,
	token.LT:      config.PrecCompare,
	token.LE:      config.PrecCompare,
	token.GT:      config.PrecCompare,
	token.GE:      config.PrecCompare,
	token.LSHIFT:  config.PrecShift,
	token.RSHIFT:  config.PrecShift,
	token.PLUS:    config.PrecTerm,
	token.MINUS:   config.PrecTerm,
	token.ASTERISK: config.PrecFactor,
	token.SLASH:    config.PrecFactor,
	token.PERCENT:  config.PrecFactor,
	token.AS:      config.PrecTypeCast,
	token.IS:      config.PrecTypeCast,
	token.LPAREN:   config.PrecCall,
	token.LBRACKET: config.PrecCall,
	token.DOT:      config.PrecCall,
	token.CATCH:    config.PrecCatch,
}

// prefixFns and infixFns are populated once in the package init below,
// mirroring the teacher's registerPrefix/registerInfix
// map-building constructor, collapsed into one table build since L's
// operator set is fixed by the grammar rather than user-extensible.
var prefixFns map[token.Kind]prefixParseFn
var infixFns map[token.Kind]infixParseFn

func init() {
	prefixFns = map[token.Kind]prefixParseFn{
		token.INT:         (*Parser).parseIntLiteral,
		token.FLOAT:       (*Parser).parseFloatLiteral,
		token.STRING:      (*Parser).parseStringLiteral,
		token.TRUE:        (*Parser).parseBoolLiteral,
		token.FALSE:       (*Parser).parseBoolLiteral,
		token.NULL:        (*Parser).parseNullLiteral,
		token.IDENT_LOWER: (*Parser).parseIdentOrStructNew,
		token.IDENT_UPPER: (*Parser).parseIdentOrStructNew,
		token.LPAREN:      (*Parser).parseParenOrTuple,
		token.LBRACKET:    (*Parser).parseVecNew,
		token.LBRACE:      (*Parser).parseBraceLiteral,
		token.MINUS:       (*Parser).parseUnary,
		token.BANG:        (*Parser).parseUnary,
		token.TILDE:       (*Parser).parseUnary,
		token.AMP:         (*Parser).parseUnary,
		token.ASTERISK:    (*Parser).parseUnary,
		token.FN:          (*Parser).parseFnDefExpr,
		token.NEW:         (*Parser).parseNewExpr,
		token.MATCH:       (*Parser).parseMatchExpr,
		token.GO:          (*Parser).parseGoExpr,
		token.MACRO_IDENT:  (*Parser).parseMacroCall,
		token.IS:          (*Parser).parseBareMatchIs,
	}

	infixFns = map[token.Kind]infixParseFn{
		token.PLUS:     (*Parser).parseBinaryInfix,
		token.MINUS:    (*Parser).parseBinaryInfix,
		token.ASTERISK: (*Parser).parseBinaryInfix,
		token.SLASH:    (*Parser).parseBinaryInfix,
		token.PERCENT:  (*Parser).parseBinaryInfix,
		token.AMP:      (*Parser).parseBinaryInfix,
		token.PIPE:     (*Parser).parseBinaryInfix,
		token.CARET:    (*Parser).parseBinaryInfix,
		token.LSHIFT:   (*Parser).parseBinaryInfix,
		token.RSHIFT:   (*Parser).parseBinaryInfix,
		token.EQ:       (*Parser).parseBinaryInfix,
		token.NOT_EQ:   (*Parser).parseBinaryInfix,
		token.LT:       (*Parser).parseLtInfix,
		token.LE:       (*Parser).parseBinaryInfix,
		token.GT:       (*Parser).parseBinaryInfix,
		token.GE:       (*Parser).parseBinaryInfix,
		token.AND_AND:  (*Parser).parseBinaryInfix,
		token.OR_OR:    (*Parser).parseBinaryInfix,
		token.LPAREN:   (*Parser).parseCallInfix,
		token.LBRACKET: (*Parser).parseAccessInfix,
		token.DOT:      (*Parser).parseSelectInfix,
		token.AS:       (*Parser).parseAsInfix,
		token.IS:       (*Parser).parseIsInfix,
		token.CATCH:    (*Parser).parseCatchInfix,
	}
}

var binaryOpByToken = map[token.Kind]ast.BinaryOp{
	token.PLUS: ast.OpAdd, token.MINUS: ast.OpSub,
	token.ASTERISK: ast.OpMul, token.SLASH: ast.OpDiv, token.PERCENT: ast.OpMod,
	token.AMP: ast.OpBitAnd, token.PIPE: ast.OpBitOr, token.CARET: ast.OpBitXor,
	token.LSHIFT: ast.OpLShift, token.RSHIFT: ast.OpRShift,
	token.EQ: ast.OpEq, token.NOT_EQ: ast.OpNotEq,
	token.LT: ast.OpLt, token.LE: ast.OpLe, token.GT: ast.OpGt, token.GE: ast.OpGe,
	token.AND_AND: ast.OpAndAnd, token.OR_OR: ast.OpOrOr,
}
