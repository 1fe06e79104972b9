package lexer

import (
	"github.com/glyphlang/syntax/internal/pipeline"
)

// LexerProcessor is the first pipeline stage: it scans ctx.SourceCode
// into a token vector and hands it to whatever stage runs next.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Tokens = All(ctx.SourceCode)
	return ctx
}
