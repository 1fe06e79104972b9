package ast

// VarDef is `[Type] ident = expr` (the var-begin and type-begin forms).
type VarDef struct {
	Decl *VarDecl
}

func (*VarDef) stmtNode() {}

// Assign is `left = right` or a desugared compound assignment
// `left = Binary(op, left, right)` (spec §4.7).
type Assign struct {
	Left  *Expr
	Right *Expr
}

func (*Assign) stmtNode() {}

// VarTupleDestr is `(a, b, ...) = expr`, where each target is either an
// existing assignable expression such as an *Ident, *Select or *Access
// (assign to it) or a *VarDeclExpr (declare a fresh one).
type VarTupleDestr struct {
	Targets []*Expr
	Value   *Expr
}

func (*VarTupleDestr) stmtNode() {}

// If is `if cond { then } [else (if ... | { body })]`. Else holds the
// else-branch's statement list; an `else if` chain is represented as a
// single-element Else list whose Stmt wraps a nested If.
type If struct {
	Cond *Expr
	Then []*Stmt
	Else []*Stmt
}

func (*If) stmtNode() {}

// ForTradition is the C-style `for init; cond; update { body }` form.
type ForTradition struct {
	Init   *Stmt
	Cond   *Expr
	Update *Stmt
	Body   []*Stmt
}

func (*ForTradition) stmtNode() {}

// ForIterator is `for k[, v] in expr { body }`. ValName is empty when no
// value binding was written.
type ForIterator struct {
	KeyName  string
	ValName  string
	Iterable *Expr
	Body     []*Stmt
}

func (*ForIterator) stmtNode() {}

// ForCond is `for cond { body }`.
type ForCond struct {
	Cond *Expr
	Body []*Stmt
}

func (*ForCond) stmtNode() {}

// Return is `return [expr]`.
type Return struct {
	Value *Expr
}

func (*Return) stmtNode() {}

// Break is `break [expr]`.
type Break struct {
	Value *Expr
}

func (*Break) stmtNode() {}

// Continue is `continue`.
type Continue struct{}

func (*Continue) stmtNode() {}

// Import is `import "path" [as name]` or `import a.b.c [as name]`. Path
// is set for the string form; Segments is set for the dotted-ident form.
// AsStar marks `as *`. ModuleType, FullPath, PackageConf, PackageDir,
// UseLinks, and ModuleIdent are left at their zero values for the
// semantic phase to fill in (spec §6).
type Import struct {
	Path     string
	Segments []string
	As       string
	AsStar   bool

	ModuleType  string
	FullPath    string
	PackageConf string
	PackageDir  string
	UseLinks    []string
	ModuleIdent string
}

func (*Import) stmtNode() {}

// TypeAliasStmtNode wraps the shared *TypeAliasStmt handle for statement
// position.
type TypeAliasStmtNode struct {
	Alias *TypeAliasStmt
}

func (*TypeAliasStmtNode) stmtNode() {}

// FnDefStmtNode wraps the shared *FnDef handle for top-level statement
// position.
type FnDefStmtNode struct {
	Def *FnDef
}

func (*FnDefStmtNode) stmtNode() {}

// Throw is `throw expr`.
type Throw struct {
	Value *Expr
}

func (*Throw) stmtNode() {}

// Let wraps only an As expression (invariant, spec §3).
type Let struct {
	Value *Expr
}

func (*Let) stmtNode() {}

// CallStmt lifts a bare call or catch expression used directly in
// statement position (spec §4.7 expr-begin).
type CallStmt struct {
	Value *Expr
}

func (*CallStmt) stmtNode() {}

// Fake wraps an expression used in statement position. A statement led by
// `go`, `match` or a macro call is always wrapped in Fake, without a
// diagnostic; any other expression that could not be completed into a
// statement form is wrapped in Fake as a recovery placeholder.
// When parsing succeeds with no diagnostics, no Fake node wraps an
// incomplete expression (invariant, spec §8).
type Fake struct {
	Value *Expr
}

func (*Fake) stmtNode() {}
