package parser

import (
	"testing"

	"github.com/glyphlang/syntax/internal/ast"
	"github.com/glyphlang/syntax/internal/lexer"
	"github.com/glyphlang/syntax/internal/token"
)

// parseSrc lexes and parses src, returning the program and any diagnostics.
func parseSrc(src string) (*ast.Program, *Parser) {
	toks := lexer.All(src)
	p := New(toks)
	prog := p.ParseProgram()
	return prog, p
}

func requireNoDiags(t *testing.T, p *Parser) {
	t.Helper()
	if !p.diags.Empty() {
		t.Fatalf("unexpected diagnostics: %+v", p.diags.List)
	}
}

func singleStmt(t *testing.T, prog *ast.Program) *ast.Stmt {
	t.Helper()
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	return prog.Statements[0]
}

// --- var-begin: tuple destructuring and a plain named declaration ---

func TestVarBeginTupleDestructure(t *testing.T) {
	prog, p := parseSrc(`var Int (a, b) = pair`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	destr, ok := stmt.Node.(*ast.VarTupleDestr)
	if !ok {
		t.Fatalf("expected *ast.VarTupleDestr, got %T", stmt.Node)
	}
	if len(destr.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(destr.Targets))
	}
	for i, want := range []string{"a", "b"} {
		ve, ok := destr.Targets[i].Node.(*ast.VarDeclExpr)
		if !ok {
			t.Fatalf("target %d: expected *ast.VarDeclExpr, got %T", i, destr.Targets[i].Node)
		}
		if ve.Decl.Name != want {
			t.Errorf("target %d: got name %q, want %q", i, ve.Decl.Name, want)
		}
	}
}

func TestVarBeginPlainIdent(t *testing.T) {
	prog, p := parseSrc(`var string name = "ok"`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	def, ok := stmt.Node.(*ast.VarDef)
	if !ok {
		t.Fatalf("expected *ast.VarDef, got %T", stmt.Node)
	}
	if def.Decl.Name != "name" {
		t.Errorf("got name %q, want %q", def.Decl.Name, "name")
	}
	if def.Decl.Type.TypeKind() != ast.KindString {
		t.Errorf("got type kind %s, want %s", def.Decl.Type.TypeKind(), ast.KindString)
	}
}

// --- scenario 4: anonymous generic fn expr, Type-then-ident params, ':' return ---

func TestGenericFnExprParamsAndReturnType(t *testing.T) {
	prog, p := parseSrc(`x = fn<T>(T a, T b): T { return a }`)
	requireNoDiags(t, p)
	def := exprOf(t, prog).Node.(*ast.FnDefExpr).Def
	if len(def.GenericParams) != 1 || def.GenericParams[0].Name != "T" {
		t.Fatalf("expected one generic param T, got %+v", def.GenericParams)
	}
	if len(def.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(def.Params))
	}
	for i, want := range []string{"a", "b"} {
		if def.Params[i].Name != want {
			t.Errorf("param %d: got name %q, want %q", i, def.Params[i].Name, want)
		}
		if def.Params[i].Type.TypeKind() != ast.KindParam {
			t.Errorf("param %d: got type kind %s, want %s (generic T)", i, def.Params[i].Type.TypeKind(), ast.KindParam)
		}
	}
	if def.ReturnType.TypeKind() != ast.KindParam {
		t.Errorf("got return type kind %s, want %s", def.ReturnType.TypeKind(), ast.KindParam)
	}
}

// --- scenario 1: a type-begin VarDef with an explicit basic type ---

func TestTypeBeginVarDef(t *testing.T) {
	prog, p := parseSrc(`int i = 0`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	def, ok := stmt.Node.(*ast.VarDef)
	if !ok {
		t.Fatalf("expected *ast.VarDef, got %T", stmt.Node)
	}
	if def.Decl.Name != "i" {
		t.Errorf("got name %q, want %q", def.Decl.Name, "i")
	}
	if def.Decl.Type.TypeKind() != ast.KindInt {
		t.Errorf("got type kind %s, want Int", def.Decl.Type.TypeKind())
	}
	lit, ok := def.Decl.Value.Node.(*ast.Literal)
	if !ok || lit.Value.(int64) != 0 {
		t.Errorf("got value %#v, want int literal 0", def.Decl.Value.Node)
	}
}

// --- scenario 2: a condition-only for-loop with a Gt condition ---

func TestForCondWithGtCondition(t *testing.T) {
	prog, p := parseSrc(`for 20 > i { i = i + 1 }`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	fc, ok := stmt.Node.(*ast.ForCond)
	if !ok {
		t.Fatalf("expected *ast.ForCond, got %T", stmt.Node)
	}
	bin, ok := fc.Cond.Node.(*ast.Binary)
	if !ok || bin.Op != ast.OpGt {
		t.Fatalf("expected Binary(Gt, ...), got %#v", fc.Cond.Node)
	}
	if len(fc.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fc.Body))
	}
	assign, ok := fc.Body[0].Node.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign in the body, got %T", fc.Body[0].Node)
	}
	if rb, ok := assign.Right.Node.(*ast.Binary); !ok || rb.Op != ast.OpAdd {
		t.Fatalf("expected Binary(Add, ...) on the right of the assignment, got %#v", assign.Right.Node)
	}
}

func TestParamOrderIsTypeThenIdent(t *testing.T) {
	// A bare, non-generic param list still reads Type before ident — reversing
	// the two would misparse 'int a' as an expr-begin statement instead.
	prog, p := parseSrc(`fn add(int a, int b): int { return a }`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	def := stmt.Node.(*ast.FnDefStmtNode).Def
	if len(def.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(def.Params))
	}
	if def.Params[0].Name != "a" || def.Params[0].Type.TypeKind() != ast.KindInt {
		t.Errorf("param 0: got %q/%s, want a/Int", def.Params[0].Name, def.Params[0].Type.TypeKind())
	}
	if def.ReturnType.TypeKind() != ast.KindInt {
		t.Errorf("got return kind %s, want Int", def.ReturnType.TypeKind())
	}
}

// --- scenario 5: 'go f(1, 2)' parses clean, wrapped in a Fake, not an error ---

func TestGoStatementParsesCleanNoDiagnostics(t *testing.T) {
	prog, p := parseSrc(`go f(1, 2)`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	fake, ok := stmt.Node.(*ast.Fake)
	if !ok {
		t.Fatalf("expected *ast.Fake wrapping the lowered go-expr, got %T", stmt.Node)
	}
	if _, ok := fake.Value.Node.(*ast.MacroCoAsync); !ok {
		t.Fatalf("expected *ast.MacroCoAsync inside the Fake, got %T", fake.Value.Node)
	}
}

func TestBareMacroIdentStatementParsesClean(t *testing.T) {
	prog, p := parseSrc(`@sizeof(int)`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	if _, ok := stmt.Node.(*ast.Fake); !ok {
		t.Fatalf("expected *ast.Fake, got %T", stmt.Node)
	}
}

// --- scenario 6: match with a subject, '|'-separated conditions, bare 'is T' ---

func TestMatchWithSubjectPipeConditionsAndBareIs(t *testing.T) {
	prog, p := parseSrc(`match x { 1 | 2 => "low", is string => "s" }`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	fake, ok := stmt.Node.(*ast.Fake)
	if !ok {
		t.Fatalf("expected *ast.Fake, got %T", stmt.Node)
	}
	me, ok := fake.Value.Node.(*ast.MatchExpr)
	if !ok {
		t.Fatalf("expected *ast.MatchExpr, got %T", fake.Value.Node)
	}
	if me.Subject == nil {
		t.Fatalf("expected a subject")
	}
	if len(me.Arms) != 2 {
		t.Fatalf("expected 2 arms, got %d", len(me.Arms))
	}
	if len(me.Arms[0].Conds) != 2 {
		t.Fatalf("expected arm 0 to have 2 pipe-separated conditions, got %d", len(me.Arms[0].Conds))
	}
	for i, want := range []int64{1, 2} {
		lit, ok := me.Arms[0].Conds[i].Node.(*ast.Literal)
		if !ok || lit.Value.(int64) != want {
			t.Errorf("arm 0 cond %d: got %#v, want int literal %d", i, me.Arms[0].Conds[i].Node, want)
		}
	}
	if len(me.Arms[1].Conds) != 1 {
		t.Fatalf("expected arm 1 to have exactly 1 condition, got %d", len(me.Arms[1].Conds))
	}
	if _, ok := me.Arms[1].Conds[0].Node.(*ast.MatchIs); !ok {
		t.Fatalf("expected a bare MatchIs, got %T", me.Arms[1].Conds[0].Node)
	}
}

// --- §4.6: without a subject, a stray '|' is bitwise-or, not a condition split ---

func TestMatchWithoutSubjectPipeIsBitwiseOr(t *testing.T) {
	prog, p := parseSrc(`match { 1 | 2 => "low", default => "hi" }`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	me := stmt.Node.(*ast.Fake).Value.Node.(*ast.MatchExpr)
	if me.Subject != nil {
		t.Fatalf("expected no subject")
	}
	if len(me.Arms[0].Conds) != 1 {
		t.Fatalf("expected arm 0 to fold '1 | 2' into a single condition, got %d conds", len(me.Arms[0].Conds))
	}
	bin, ok := me.Arms[0].Conds[0].Node.(*ast.Binary)
	if !ok || bin.Op != ast.OpBitOr {
		t.Fatalf("expected a bitwise-or Binary, got %#v", me.Arms[0].Conds[0].Node)
	}
}

func TestBareIsWithoutSubjectIsDiagnosed(t *testing.T) {
	_, p := parseSrc(`match { is string => "s" }`)
	if p.diags.Empty() {
		t.Fatalf("expected a diagnostic for a bare 'is T' with no match subject")
	}
}

func TestBareIsInArmResultIsDiagnosed(t *testing.T) {
	_, p := parseSrc(`match x { 1 => is string }`)
	if p.diags.Empty() {
		t.Fatalf("expected a diagnostic for a bare 'is T' used as an arm's result expression")
	}
}

// --- §4.7: '(' stmt-begin disambiguation between tuple-destructure and a
// grouped expression ---

func TestParenBeginTupleDestructure(t *testing.T) {
	prog, p := parseSrc(`(a, b) = pair`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	destr, ok := stmt.Node.(*ast.VarTupleDestr)
	if !ok {
		t.Fatalf("expected *ast.VarTupleDestr, got %T", stmt.Node)
	}
	if len(destr.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(destr.Targets))
	}
}

func TestParenBeginGroupedAssignTargetParsesClean(t *testing.T) {
	prog, p := parseSrc(`(a + b) = c`)
	requireNoDiags(t, p)
	stmt := singleStmt(t, prog)
	if _, ok := stmt.Node.(*ast.Assign); !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt.Node)
	}
}

// --- operator-table laws (spec §8) ---

func exprOf(t *testing.T, prog *ast.Program) *ast.Expr {
	t.Helper()
	stmt := singleStmt(t, prog)
	assign, ok := stmt.Node.(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", stmt.Node)
	}
	return assign.Right
}

func TestBinaryOperatorsAreLeftAssociative(t *testing.T) {
	prog, p := parseSrc(`x = a - b - c`)
	requireNoDiags(t, p)
	top := exprOf(t, prog).Node.(*ast.Binary)
	if top.Op != ast.OpSub {
		t.Fatalf("got top op %s, want -", top.Op)
	}
	left, ok := top.Left.Node.(*ast.Binary)
	if !ok || left.Op != ast.OpSub {
		t.Fatalf("expected (a - b) - c, left child is %#v", top.Left.Node)
	}
	if _, ok := top.Right.Node.(*ast.Ident); !ok {
		t.Fatalf("expected bare ident on the right of the top node, got %#v", top.Right.Node)
	}
}

func TestFactorBindsTighterThanTerm(t *testing.T) {
	prog, p := parseSrc(`x = a + b * c`)
	requireNoDiags(t, p)
	top := exprOf(t, prog).Node.(*ast.Binary)
	if top.Op != ast.OpAdd {
		t.Fatalf("got top op %s, want +", top.Op)
	}
	right, ok := top.Right.Node.(*ast.Binary)
	if !ok || right.Op != ast.OpMul {
		t.Fatalf("expected b * c nested on the right, got %#v", top.Right.Node)
	}
}

func TestCmpEqualBindsTighterThanAndAnd(t *testing.T) {
	prog, p := parseSrc(`x = a == b && c`)
	requireNoDiags(t, p)
	top := exprOf(t, prog).Node.(*ast.Binary)
	if top.Op != ast.OpAndAnd {
		t.Fatalf("got top op %s, want &&", top.Op)
	}
	left, ok := top.Left.Node.(*ast.Binary)
	if !ok || left.Op != ast.OpEq {
		t.Fatalf("expected (a == b) nested on the left, got %#v", top.Left.Node)
	}
}

// parseTypeSrc parses src as a standalone type, for tests that don't need a
// full statement around it.
func parseTypeSrc(src string) (ast.Type, *Parser) {
	toks := lexer.All(src)
	p := New(toks)
	return p.parseType(), p
}

func TestRshiftSplitsTwoNestedGenericLevels(t *testing.T) {
	ty, p := parseTypeSrc(`vec<vec<int>>`)
	requireNoDiags(t, p)
	outer, ok := ty.(*ast.VecType)
	if !ok {
		t.Fatalf("expected *ast.VecType, got %T", ty)
	}
	inner, ok := outer.Elem.(*ast.VecType)
	if !ok {
		t.Fatalf("expected a nested *ast.VecType from the split '>>', got %T", outer.Elem)
	}
	if inner.Elem.TypeKind() != ast.KindInt {
		t.Fatalf("got innermost kind %s, want Int", inner.Elem.TypeKind())
	}
}

func TestRshiftIsOrdinaryShiftOutsideTypeContext(t *testing.T) {
	prog, p := parseSrc(`x = a >> b`)
	requireNoDiags(t, p)
	bin := exprOf(t, prog).Node.(*ast.Binary)
	if bin.Op != ast.OpRShift {
		t.Fatalf("got op %s, want >>", bin.Op)
	}
}

func TestLtDisambiguatesGenericCallFromRelational(t *testing.T) {
	prog, p := parseSrc(`x = f<int>(1)`)
	requireNoDiags(t, p)
	call, ok := exprOf(t, prog).Node.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call from generic instantiation, got %T", exprOf(t, prog).Node)
	}
	if len(call.TypeArgs) != 1 || call.TypeArgs[0].TypeKind() != ast.KindInt {
		t.Fatalf("expected one Int type arg, got %+v", call.TypeArgs)
	}
}

func TestLtFallsBackToRelationalOperator(t *testing.T) {
	prog, p := parseSrc(`x = a < b`)
	requireNoDiags(t, p)
	bin, ok := exprOf(t, prog).Node.(*ast.Binary)
	if !ok || bin.Op != ast.OpLt {
		t.Fatalf("expected a relational <, got %#v", exprOf(t, prog).Node)
	}
}

// --- scenario 3: one incomplete declaration doesn't sink the statements after it ---

func TestRecoveryFromIncompleteDeclarationInsideBlock(t *testing.T) {
	prog, p := parseSrc("if b == 24 { int a = }\nint foo = 3")
	if len(p.diags.List) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %+v", len(p.diags.List), p.diags.List)
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(prog.Statements))
	}
	last := prog.Statements[len(prog.Statements)-1]
	def, ok := last.Node.(*ast.VarDef)
	if !ok {
		t.Fatalf("expected the trailing statement to be *ast.VarDef, got %T", last.Node)
	}
	if def.Decl.Name != "foo" {
		t.Errorf("got name %q, want %q", def.Decl.Name, "foo")
	}
}

// --- error recovery (spec §4.9): one bad statement doesn't sink the block ---

func TestRecoveryIsolatesOneBadStatement(t *testing.T) {
	src := "fn f() {\n  1 +\n  var int y = 2\n}"
	prog, p := parseSrc(src)
	if p.diags.Empty() {
		t.Fatalf("expected at least one diagnostic from the truncated '1 +' expression")
	}
	stmt := singleStmt(t, prog)
	def := stmt.Node.(*ast.FnDefStmtNode).Def
	var sawVarDef bool
	for _, s := range def.Body {
		if _, ok := s.Node.(*ast.VarDef); ok {
			sawVarDef = true
		}
	}
	if !sawVarDef {
		t.Fatalf("expected the well-formed 'var int y = 2' to still parse after the bad statement, body=%+v", def.Body)
	}
}

func TestRecoveryMakesProgressOnGarbageTokens(t *testing.T) {
	toks := lexer.All("} } } 1 2 3")
	p := New(toks)
	_ = p.ParseProgram()
	if !p.curTokenIs(token.EOF) {
		t.Fatalf("expected the driver to reach Eof instead of looping, stuck at %v", p.curToken)
	}
}

// --- §4.4: brace-literal map/set type shorthand, alongside the map<K,V>/set<T> keyword forms ---

func TestBraceMapTypeShorthand(t *testing.T) {
	ty, p := parseTypeSrc(`{string:int}`)
	requireNoDiags(t, p)
	m, ok := ty.(*ast.MapType)
	if !ok {
		t.Fatalf("expected *ast.MapType, got %T", ty)
	}
	if m.Key.TypeKind() != ast.KindString || m.Val.TypeKind() != ast.KindInt {
		t.Fatalf("expected {String:Int}, got {%s:%s}", m.Key.TypeKind(), m.Val.TypeKind())
	}
}

func TestBraceSetTypeShorthand(t *testing.T) {
	ty, p := parseTypeSrc(`{int}`)
	requireNoDiags(t, p)
	s, ok := ty.(*ast.SetType)
	if !ok {
		t.Fatalf("expected *ast.SetType, got %T", ty)
	}
	if s.Elem.TypeKind() != ast.KindInt {
		t.Fatalf("expected Set(Int), got Set(%s)", s.Elem.TypeKind())
	}
}

// --- spec §3: basic-type origin_ident/origin_type_kind annotation slots ---

func TestBasicIntTypeCarriesOriginIdent(t *testing.T) {
	ty, p := parseTypeSrc(`int`)
	requireNoDiags(t, p)
	bt := ty.(*ast.BasicType)
	if bt.ImplIdent != string(ast.KindInt) {
		t.Errorf("got ImplIdent %q, want %q", bt.ImplIdent, ast.KindInt)
	}
	if bt.OriginIdent != "int" {
		t.Errorf("got OriginIdent %q, want %q", bt.OriginIdent, "int")
	}
	if bt.OriginTypeKind != string(ast.KindInt) {
		t.Errorf("got OriginTypeKind %q, want %q", bt.OriginTypeKind, ast.KindInt)
	}
}

func TestBasicInt8TypeDoesNotCarryOriginIdent(t *testing.T) {
	ty, p := parseTypeSrc(`int8`)
	requireNoDiags(t, p)
	bt := ty.(*ast.BasicType)
	if bt.ImplIdent != string(ast.KindInt8) {
		t.Errorf("got ImplIdent %q, want %q", bt.ImplIdent, ast.KindInt8)
	}
	if bt.OriginIdent != "" {
		t.Errorf("got OriginIdent %q, want empty (only bare int/uint/float carry it)", bt.OriginIdent)
	}
}

func TestDeterminismOfRepeatedParse(t *testing.T) {
	src := `fn add(int a, int b): int { return a + b }`
	toks := lexer.All(src)
	prog1, diags1 := Parse(append([]token.Token(nil), toks...))
	prog2, diags2 := Parse(append([]token.Token(nil), toks...))
	if len(prog1.Statements) != len(prog2.Statements) {
		t.Fatalf("two parses of identical input produced different statement counts: %d vs %d",
			len(prog1.Statements), len(prog2.Statements))
	}
	if len(diags1.List) != len(diags2.List) {
		t.Fatalf("two parses of identical input produced different diagnostic counts: %d vs %d",
			len(diags1.List), len(diags2.List))
	}
}
