// Package parser implements the syntactic analyzer: a Pratt-style
// expression parser, a recursive-descent type grammar, and a
// statement-level error-recovery loop, operating over a token vector the
// parser owns by value (spec §3 Ownership).
package parser

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// Parser holds the single-threaded, synchronous parsing state described
// in spec §5: the owned token vector, the diagnostic list, the one-slot
// match_cond/match_subject flags, and the current generic-parameter
// scope.
type Parser struct {
	tokens []token.Token
	curPos int // index of curToken within tokens; -1 for a synthetic token

	curToken  token.Token
	peekToken token.Token
	prevToken token.Token

	// splitRshift is set when the type parser has consumed one real '>>'
	// token and needs the next nextToken() call to yield a synthetic '>'
	// without advancing past the second half (spec §4.3).
	splitRshift bool

	diags *diagnostics.Diagnostics

	// genericParams is the small set-of-names scope in force during a
	// single function or type-alias declaration (spec §9).
	genericParams map[string]bool

	// matchCond is set while parsing a match arm's condition list, the
	// only context in which a bare `is T` is legal (spec §4.6).
	matchCond bool
	// hasSubject records whether the match expression currently being
	// parsed has a subject (spec §4.6's multi-condition / bare-is gating).
	hasSubject bool

	// noStructLit suppresses the §4.3 struct-literal lookahead while
	// parsing an if/for/match-subject condition, mirroring Go's own rule
	// against a bare composite literal in that position — otherwise
	// `if Foo { ... }` would swallow the then-block as Foo's properties.
	noStructLit bool
}

// New constructs a Parser over tokens, which must be terminated by
// exactly one token.EOF (spec §6's input contract).
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{{Kind: token.EOF}}
	}
	p := &Parser{
		tokens:        tokens,
		diags:         diagnostics.NewDiagnostics(),
		genericParams: map[string]bool{},
	}
	p.curToken = tokens[0]
	p.curPos = 0
	if len(tokens) > 1 {
		p.peekToken = tokens[1]
	} else {
		p.peekToken = tokens[0]
	}
	return p
}

// Parse runs the full statement loop (spec §4.9's driver), returning the
// program and the accumulated diagnostics. It never returns a Go error:
// syntactic failures are diagnostics, not panics or error returns.
func Parse(tokens []token.Token) (*ast.Program, *diagnostics.Diagnostics) {
	p := New(tokens)
	return p.ParseProgram(), p.diags
}

// ParseProgram parses the full top-level statement list, recovering from
// errors at statement granularity (spec §4.9) so that one bad statement
// never aborts the whole parse.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.STMT_EOF) {
			p.advance()
			continue
		}
		startPos := p.curPos
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
			p.mustStmtEnd()
			continue
		}
		// parseStatement already invoked synchronise on failure; if that
		// left the cursor exactly where it started (not-found, top
		// level), force one token of progress (spec §4.9).
		if p.curPos == startPos && !p.curTokenIs(token.EOF) {
			p.advance()
		}
	}
	return prog
}

func (p *Parser) diagf(code diagnostics.ErrorCode, start, end int, args ...interface{}) {
	p.diags.Add(diagnostics.New(code, start, end, args...))
}
