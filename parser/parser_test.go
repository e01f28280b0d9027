package parser

import (
	"testing"

	"github.com/veureka-lang/veureka-go/ast"
	"github.com/veureka-lang/veureka-go/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return prog
}

func TestParseLetAndCompoundAssign(t *testing.T) {
	prog := parseProgram(t, "let x = 10\nx += 5\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	let, ok := prog.Statements[0].(*ast.Let)
	if !ok || let.Name != "x" {
		t.Fatalf("statement[0]: expected Let(x), got %#v", prog.Statements[0])
	}
	ca, ok := prog.Statements[1].(*ast.CompoundAssign)
	if !ok || ca.Name != "x" {
		t.Fatalf("statement[1]: expected CompoundAssign(x), got %#v", prog.Statements[1])
	}
}

func TestParseFnDefBothForms(t *testing.T) {
	prog := parseProgram(t, "fn add(a, b)\n  return a + b\nend\nfn double(x) => x * 2\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}
	add, ok := prog.Statements[0].(*ast.FnDef)
	if !ok || add.Name != "add" || len(add.Params) != 2 {
		t.Fatalf("statement[0]: expected FnDef(add, 2 params), got %#v", prog.Statements[0])
	}
	double, ok := prog.Statements[1].(*ast.FnDef)
	if !ok || double.Name != "double" {
		t.Fatalf("statement[1]: expected FnDef(double), got %#v", prog.Statements[1])
	}
	if len(double.Body) != 1 {
		t.Fatalf("arrow form should desugar to a single-statement body, got %d", len(double.Body))
	}
	if _, ok := double.Body[0].(*ast.Return); !ok {
		t.Fatalf("arrow form body should be a Return, got %#v", double.Body[0])
	}
}

func TestParseIfElifElse(t *testing.T) {
	prog := parseProgram(t, "if a\n  1\nelif b\n  2\nelse\n  3\nend\n")
	ifNode, ok := prog.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected If, got %#v", prog.Statements[0])
	}
	if len(ifNode.Elifs) != 1 {
		t.Fatalf("expected 1 elif, got %d", len(ifNode.Elifs))
	}
	if ifNode.Else == nil {
		t.Fatal("expected an else body")
	}
}

func TestParseClassDefCollectsNamedMethods(t *testing.T) {
	prog := parseProgram(t, "class P\n  fn __init__(a)\n    self.a = a\n  end\n  fn get() return self.a end\nend\n")
	class, ok := prog.Statements[0].(*ast.ClassDef)
	if !ok {
		t.Fatalf("expected ClassDef, got %#v", prog.Statements[0])
	}
	if len(class.Methods) != 2 {
		t.Fatalf("expected 2 methods, got %d", len(class.Methods))
	}
}

func TestParseClassDefDropsAnonymousMethods(t *testing.T) {
	l := lexer.New("class P\n  fn(a)\n    self.a = a\n  end\n  fn get() return self.a end\nend\n")
	p := New(l)
	prog := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	class, ok := prog.Statements[0].(*ast.ClassDef)
	if !ok {
		t.Fatalf("expected ClassDef, got %#v", prog.Statements[0])
	}
	if len(class.Methods) != 1 {
		t.Fatalf("expected the anonymous method to be dropped, leaving 1, got %d", len(class.Methods))
	}
	if class.Methods[0].Name != "get" {
		t.Fatalf("expected surviving method to be 'get', got %q", class.Methods[0].Name)
	}
}

func TestParseNewInstance(t *testing.T) {
	prog := parseProgram(t, "let p = new Point(1, 2)\n")
	let := prog.Statements[0].(*ast.Let)
	ni, ok := let.Value.(*ast.NewInstance)
	if !ok || ni.ClassName != "Point" || len(ni.Args) != 2 {
		t.Fatalf("expected NewInstance(Point, 2 args), got %#v", let.Value)
	}
}

func TestParseExponentIsRightAssociative(t *testing.T) {
	prog := parseProgram(t, "2 ** 3 ** 2\n")
	bin, ok := prog.Statements[0].(*ast.BinaryOp)
	if !ok {
		t.Fatalf("expected BinaryOp, got %#v", prog.Statements[0])
	}
	// 2 ** (3 ** 2): the right side should itself be a BinaryOp.
	if _, ok := bin.Right.(*ast.BinaryOp); !ok {
		t.Fatalf("expected right-associative nesting, got %#v", bin.Right)
	}
	if _, ok := bin.Left.(*ast.Literal); !ok {
		t.Fatalf("expected left to be the literal 2, got %#v", bin.Left)
	}
}

func TestParseAttrAssignAndCompound(t *testing.T) {
	prog := parseProgram(t, "p.x = 1\np.x += 2\n")
	if _, ok := prog.Statements[0].(*ast.AttrAssign); !ok {
		t.Fatalf("expected AttrAssign, got %#v", prog.Statements[0])
	}
	compound, ok := prog.Statements[1].(*ast.AttrAssign)
	if !ok {
		t.Fatalf("expected desugared AttrAssign, got %#v", prog.Statements[1])
	}
	if _, ok := compound.Value.(*ast.BinaryOp); !ok {
		t.Fatalf("expected desugared value to be a BinaryOp, got %#v", compound.Value)
	}
}

func TestParseIncDecPrefixAndPostfix(t *testing.T) {
	prog := parseProgram(t, "++x\ny--\n")
	prefix, ok := prog.Statements[0].(*ast.IncDec)
	if !ok || !prefix.Prefix {
		t.Fatalf("expected prefix IncDec, got %#v", prog.Statements[0])
	}
	postfix, ok := prog.Statements[1].(*ast.IncDec)
	if !ok || postfix.Prefix {
		t.Fatalf("expected postfix IncDec, got %#v", prog.Statements[1])
	}
}

func TestParseMissingEndProducesHintingError(t *testing.T) {
	l := lexer.New("if a\n  1\n")
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a missing-'end' error")
	}
}

func TestParseMapLitStringAndIdentKeys(t *testing.T) {
	prog := parseProgram(t, `{a: 1, "b": 2}` + "\n")
	m, ok := prog.Statements[0].(*ast.MapLit)
	if !ok || len(m.Entries) != 2 {
		t.Fatalf("expected MapLit with 2 entries, got %#v", prog.Statements[0])
	}
	if m.Entries[0].Key != "a" || m.Entries[1].Key != "b" {
		t.Fatalf("expected keys a, b; got %q, %q", m.Entries[0].Key, m.Entries[1].Key)
	}
}

func TestParseIndexAssignmentIsRejected(t *testing.T) {
	l := lexer.New("xs[0] = 1\n")
	p := New(l)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected an error: index expressions are not assignable targets")
	}
}
