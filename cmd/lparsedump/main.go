// Command lparsedump lexes and parses a single L source file, printing
// its diagnostics to stderr and a one-line-per-statement AST dump to
// stdout. It
// exists to give the parser library an exercised entrypoint, not as a
// product surface — there is no analyzer, evaluator, or VM behind it.
package main

import (
	"fmt"
	"os"

	"github.com/glyphlang/syntax/internal/lexer"
	"github.com/glyphlang/syntax/internal/parser"
	"github.com/glyphlang/syntax/internal/pipeline"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <file>\n", os.Args[0])
		os.Exit(1)
	}

	sourcePath := os.Args[1]
	sourceCode, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %s\n", err)
		os.Exit(1)
	}

	initialContext := pipeline.NewContext(string(sourceCode))
	initialContext.FilePath = sourcePath

	processingPipeline := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	)
	finalContext := processingPipeline.Run(initialContext)

	if !finalContext.Diagnostics.Empty() {
		fmt.Fprintln(os.Stderr, "Parse failed with diagnostics:")
		for _, d := range finalContext.Diagnostics.List {
			fmt.Fprintf(os.Stderr, "- %d:%d: %s\n", d.Start, d.End, d.Message)
		}
	}

	for i, stmt := range finalContext.AstRoot.Statements {
		fmt.Printf("%4d: %T [%d:%d]\n", i, stmt.Node, stmt.Start, stmt.End)
	}

	if !finalContext.Diagnostics.Empty() {
		os.Exit(1)
	}
}
