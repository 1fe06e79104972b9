package parser

import (
	"github.com/glyphlang/syntax/internal/pipeline"
)

// ParserProcessor is the second pipeline stage: it consumes ctx.Tokens
// (left by LexerProcessor) and produces ctx.AstRoot plus whatever
// diagnostics the parse accumulated, merged into ctx.Diagnostics.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	p := New(ctx.Tokens)
	ctx.AstRoot = p.ParseProgram()
	ctx.Diagnostics.List = append(ctx.Diagnostics.List, p.diags.List...)
	return ctx
}
