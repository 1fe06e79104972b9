package config

// Precedence levels, lowest to highest. Higher binds tighter. This is the
// single source of truth for the operator table in parser/optable.go.
const (
	PrecNull Precedence = iota
	PrecAssign
	PrecCatch
	PrecOrOr
	PrecAndAnd
	PrecOr
	PrecXor
	PrecAnd
	PrecCmpEqual
	PrecCompare
	PrecShift
	PrecTerm
	PrecFactor
	PrecTypeCast
	PrecUnary
	PrecCall
	PrecPrimary
)

// Precedence orders infix binding power for the Pratt expression loop.
type Precedence int
