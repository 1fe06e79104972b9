package ast

// FnDef, VarDecl, and TypeAliasStmt are shared, mutable handles (spec
// §3/§9): a plain Go pointer is the handle itself, not a copy, so every
// node that holds one of them (an FnDefExpr or FnDefStmtNode, a VarDef or
// VarDeclExpr, a TypeAliasStmtNode) sees the same value when a later phase
// mutates it in place. Parsing is single-threaded (spec §5), so no
// sync.Mutex guards these — the shared identity is what matters, not
// concurrent mutation.

// GenericParam is one entry of a function or type alias's generic
// parameter list: `T`, `T: Bound`, or `T: Bound1 | Bound2`.
type GenericParam struct {
	Name    string
	Bounds  []string
}

// FnLabel is a `#linkid name|string` or `#local` attribute preceding a
// top-level fn statement.
type FnLabel struct {
	Kind  string // "linkid" or "local"
	Value string // verbatim identifier or string literal text; empty for "local"
}

// Param is one function parameter.
type Param struct {
	Name string
	Type Type
}

// FnDef is the shared handle for a function definition, used both as an
// expression node (anonymous fn, fn-def as a call target) and, wrapped in
// a Stmt, as a top-level function declaration.
type FnDef struct {
	Start, End    int
	Label         *FnLabel
	ImplType      Type // nil for a free function
	Name          string
	GenericParams []GenericParam
	Params        []*Param
	RestParam     *Param
	ReturnType    Type
	Body          []*Stmt // nil when IsTpl is true
	IsTpl         bool    // template declaration: no body supplied
}

// VarDecl is the shared handle for a variable binding (var/let target, or
// one element of a tuple-destructuring target list).
type VarDecl struct {
	Start, End int
	Name       string
	Type       Type // nil when no type was written; Unknown for a `var Type (a, b)` target
	Value      *Expr
}

// TypeAliasStmt is the shared handle for a `type Name<...> = T` statement.
type TypeAliasStmt struct {
	Start, End    int
	Name          string
	GenericParams []GenericParam
	Type          Type
}
