// Package ast defines the syntax tree the parser produces: tagged
// variants dispatched by type switch, not a Visitor/Accept hierarchy.
// Downstream phases traverse by switching on the concrete Node/ExprNode/
// StmtNode type.
package ast

// Program is the top-level parse result: a statement list in source order.
type Program struct {
	Statements []*Stmt
}

// Expr is an expression node. Node holds the tagged-variant payload; Type
// and TargetType are semantic placeholders left Unknown for the parser's
// caller to fill in.
type Expr struct {
	Start, End int
	Type       Type
	TargetType Type
	Node       ExprNode
}

// Stmt is a statement node. Node holds the tagged-variant payload.
type Stmt struct {
	Start, End int
	Node       StmtNode
}

// ExprNode is the marker interface for Expr's tagged-variant payload.
type ExprNode interface{ exprNode() }

// StmtNode is the marker interface for Stmt's tagged-variant payload.
type StmtNode interface{ stmtNode() }

// Span reports start and end together, useful for building parent spans
// from a mix of child expressions and statements.
func (e *Expr) Span() (int, int) { return e.Start, e.End }

// Span reports start and end together.
func (s *Stmt) Span() (int, int) { return s.Start, s.End }
