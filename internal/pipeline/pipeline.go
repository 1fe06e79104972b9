package pipeline

// Pipeline represents a sequence of processing stages, run in order over
// one Context. Diagnostics from an earlier stage don't halt a later one —
// a host wanting fail-fast behavior checks ctx.Diagnostics between Run
// calls of its own composed stages instead.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
	}
	return ctx
}
