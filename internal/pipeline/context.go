package pipeline

import (
	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/diagnostics"
	"github.com/glyphlang/syntax/internal/token"
)

// Context holds the data passed between pipeline stages: source text in,
// a token stream, and eventually a parsed Program plus whatever
// diagnostics the lex/parse stages accumulated along the way. A host
// embedding this package ahead of a semantic analyzer appends its own
// stage after ParserProcessor and reads AstRoot/Diagnostics from here
// rather than threading its own context type back through the parser.
type Context struct {
	SourceCode string
	FilePath   string

	Tokens  []token.Token
	AstRoot *ast.Program

	Diagnostics *diagnostics.Diagnostics
}

// NewContext creates and initializes a Context for one source string.
func NewContext(source string) *Context {
	return &Context{
		SourceCode:  source,
		Diagnostics: diagnostics.NewDiagnostics(),
	}
}
