// Package config holds the single-source-of-truth tables the parser
// consults: macro names, permitted impl-types, and recovery keywords.
// When adding a new statement-recovery keyword, update this file only; the
// parser reads recovery keywords from this table. A new macro also needs
// its own case in parser/macros.go, which switches on the macro name.
package config

import "github.com/glyphlang/syntax/internal/token"

// MacroNames is the set of recognised @-prefixed macro call forms. Any
// other macro identifier is a "macro '<name>' not defined" error.
var MacroNames = map[string]bool{
	"sizeof":       true,
	"reflect_hash": true,
	"default":      true,
	"co_async":     true,
	"ula":          true,
}

// ImplTypeKind classifies what an impl-fn's leading type looks like.
type ImplTypeKind int

const (
	ImplTypeBasic ImplTypeKind = iota
	ImplTypeVec
	ImplTypeMap
	ImplTypeSet
	ImplTypeTuple
	ImplTypeChan
	ImplTypeAlias
)

// PermittedImplTypeTokens is the set of leading tokens a method definition
// ("impl fn") may be prefixed with, besides a qualified/generic alias
// identifier (which is detected structurally, not by this table).
var PermittedImplTypeTokens = map[token.Kind]ImplTypeKind{
	token.VOID: ImplTypeBasic, token.BOOL: ImplTypeBasic,
	token.INT_T: ImplTypeBasic, token.INT8: ImplTypeBasic, token.INT16: ImplTypeBasic,
	token.INT32: ImplTypeBasic, token.INT64: ImplTypeBasic,
	token.UINT: ImplTypeBasic, token.UINT8: ImplTypeBasic, token.UINT16: ImplTypeBasic,
	token.UINT32: ImplTypeBasic, token.UINT64: ImplTypeBasic,
	token.FLOAT_T: ImplTypeBasic, token.FLOAT32: ImplTypeBasic, token.FLOAT64: ImplTypeBasic,
	token.STRING_T: ImplTypeBasic,
	token.VEC:      ImplTypeVec,
	token.MAP:      ImplTypeMap,
	token.SET:      ImplTypeSet,
	token.TUP:      ImplTypeTuple,
	token.CHAN:     ImplTypeChan,
}

// RecoveryKeywords is the set of tokens that start a fresh statement and
// therefore count as a synchronisation point for error recovery, in
// addition to any basic-type token (token.BasicTypeKinds).
var RecoveryKeywords = map[token.Kind]bool{
	token.FN:       true,
	token.VAR:      true,
	token.RETURN:   true,
	token.IF:       true,
	token.FOR:      true,
	token.MATCH:    true,
	token.TRY:      true,
	token.CATCH:    true,
	token.CONTINUE: true,
	token.BREAK:    true,
	token.IMPORT:   true,
	token.TYPE:     true,
}

// CompoundAssignOps maps a compound-assignment token to the binary
// operator token it desugars to: `a += b` synthesises Assign(a, Binary(+, a, b)).
var CompoundAssignOps = map[token.Kind]token.Kind{
	token.PLUS_ASSIGN:    token.PLUS,
	token.MINUS_ASSIGN:   token.MINUS,
	token.STAR_ASSIGN:    token.ASTERISK,
	token.SLASH_ASSIGN:   token.SLASH,
	token.PERCENT_ASSIGN: token.PERCENT,
	token.AMP_ASSIGN:     token.AMP,
	token.PIPE_ASSIGN:    token.PIPE,
	token.CARET_ASSIGN:   token.CARET,
	token.LSHIFT_ASSIGN:  token.LSHIFT,
	token.RSHIFT_ASSIGN:  token.RSHIFT,
}
