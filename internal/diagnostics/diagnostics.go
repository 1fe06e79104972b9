// Package diagnostics defines the syntactic-error representation the
// parser accumulates instead of aborting: a single kind, SyntaxError,
// carried internally as a coded, templated DiagnosticError and exposed to
// callers as the plain {start, end, message} tuple.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"
)

// Phase records which processing phase raised a diagnostic. The parser
// only ever produces PhaseParser; the other phases are named so a host
// embedding this package alongside a semantic analyzer can share one
// error-code space.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
)

// ErrorCode identifies a diagnostic's message template.
type ErrorCode string

const (
	ErrExpectedKind       ErrorCode = "P001" // expected '<kind>'
	ErrStmtCannotStart    ErrorCode = "P002" // statement cannot start with '<literal>'
	ErrExpectedStmtEnd    ErrorCode = "P003" // expected ';' or '}' at end of statement
	ErrTypeCannotImplFn   ErrorCode = "P004" // type '<kind>' cannot impl fn
	ErrSpreadMustBeLast   ErrorCode = "P005" // can only use '...' as the final argument
	ErrForNeedsTwoSemis   ErrorCode = "P006" // for statement must have two semicolons
	ErrIsTypeRequired     ErrorCode = "P007" // is type must be specified in the match expression
	ErrArrayLenPositive   ErrorCode = "P008" // array length must be greater than 0
	ErrArrayLenInvalid    ErrorCode = "P009" // must be a valid integer
	ErrMacroNotDefined    ErrorCode = "P010" // macro '<name>' not defined
	ErrStructDefaultIsFn  ErrorCode = "P011" // struct field default value cannot be a function definition
	ErrCallExprCannotAssign ErrorCode = "P012" // call expr cannot assign
	ErrTupleDestrAssign   ErrorCode = "P013" // tuple destr src operand assign failed
	ErrLetMustBeAs        ErrorCode = "P014" // must be 'as' expr
	ErrExpressionExpected ErrorCode = "P015" // expression expected
	ErrInvalidImportSyntax ErrorCode = "P016"
	ErrTypeExpected       ErrorCode = "P017" // type expected
)

var errorTemplates = map[ErrorCode]string{
	ErrExpectedKind:         "expected '%s'",
	ErrStmtCannotStart:      "statement cannot start with '%s'",
	ErrExpectedStmtEnd:      "expected ';' or '}' at end of statement",
	ErrTypeCannotImplFn:     "type '%s' cannot impl fn",
	ErrSpreadMustBeLast:     "can only use '...' as the final argument in the list",
	ErrForNeedsTwoSemis:     "for statement must have two semicolons",
	ErrIsTypeRequired:       "is type must be specified in the match expression",
	ErrArrayLenPositive:     "array length must be greater than 0",
	ErrArrayLenInvalid:      "must be a valid integer",
	ErrMacroNotDefined:      "macro '%s' not defined",
	ErrStructDefaultIsFn:    "struct field default value cannot be a function definition",
	ErrCallExprCannotAssign: "call expr cannot assign",
	ErrTupleDestrAssign:     "tuple destr src operand assign failed",
	ErrLetMustBeAs:          "must be 'as' expr",
	ErrExpressionExpected:   "expression expected",
	ErrInvalidImportSyntax:  "%s",
	ErrTypeExpected:         "type expected",
}

// DiagnosticError is the internal, coded representation of a syntax error.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Start int
	End   int
	Args  []interface{}
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)
	return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Start, e.End, message)
}

// New constructs a parser-phase syntax error at the given span.
func New(code ErrorCode, start, end int, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: PhaseParser, Start: start, End: end, Args: args}
}

// Diagnostic is the plain external contract handed to the semantic phase
// (spec §6): {start, end, message}.
type Diagnostic struct {
	Start   int
	End     int
	Message string
}

// Diagnostics is an ordered batch of diagnostics produced by one parse,
// tagged with a session id so a host running multiple concurrent parses
// can correlate a batch back to the call that produced it without a
// logging dependency.
type Diagnostics struct {
	SessionID uuid.UUID
	List      []Diagnostic
}

// NewDiagnostics starts an empty, session-tagged diagnostic batch.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{SessionID: uuid.New()}
}

// Add appends a DiagnosticError to the batch, projecting it to the plain
// external shape. The message text matches the representative wording
// spec'd for each error code, with no internal code/phase prefix.
func (d *Diagnostics) Add(err *DiagnosticError) {
	template := errorTemplates[err.Code]
	d.List = append(d.List, Diagnostic{
		Start:   err.Start,
		End:     err.End,
		Message: fmt.Sprintf(template, err.Args...),
	})
}

// Empty reports whether the batch has no diagnostics — syntactic success.
func (d *Diagnostics) Empty() bool {
	return len(d.List) == 0
}
