package optimize_test

import (
	"testing"

	"latc/src/ast"
	"latc/src/frontend"
	"latc/src/optimize"
)

func parseOrFatal(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := frontend.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func mainBody(t *testing.T, prog *ast.Program) []ast.Stmt {
	t.Helper()
	for _, f := range prog.Functions {
		if f.Name == "main" {
			return f.Body
		}
	}
	t.Fatal("program has no main function")
	return nil
}

func TestProgramFoldsConstantArithmetic(t *testing.T) {
	src := `int main() { int x = 2 + 3 * 4; return x; }`
	prog := parseOrFatal(t, src)
	out := optimize.Program(prog)
	body := mainBody(t, out)
	decl, ok := body[0].(ast.Declare)
	if !ok {
		t.Fatalf("expected a Declare statement, got %T", body[0])
	}
	lit, ok := decl.Items[0].Init.(ast.IntLit)
	if !ok || lit.Value != 14 {
		t.Fatalf("expected constant-folded 14, got %#v", decl.Items[0].Init)
	}
}

func TestProgramCollapsesIfTrue(t *testing.T) {
	src := `
int main() {
	if (true) return 1;
	else return 2;
}
`
	prog := parseOrFatal(t, src)
	out := optimize.Program(prog)
	body := mainBody(t, out)
	if len(body) != 1 {
		t.Fatalf("expected the if to collapse to its then-branch, got %d statements", len(body))
	}
	ret, ok := body[0].(ast.Return)
	if !ok {
		t.Fatalf("expected a Return, got %T", body[0])
	}
	lit, ok := ret.Value.(ast.IntLit)
	if !ok || lit.Value != 1 {
		t.Fatalf("expected return 1, got %#v", ret.Value)
	}
}

func TestProgramDropsWhileFalse(t *testing.T) {
	src := `
int main() {
	while (false) { printInt(1); }
	return 0;
}
`
	prog := parseOrFatal(t, src)
	out := optimize.Program(prog)
	body := mainBody(t, out)
	if len(body) != 1 {
		t.Fatalf("expected while(false) to be dropped, got %d statements", len(body))
	}
	if _, ok := body[0].(ast.Return); !ok {
		t.Fatalf("expected only the Return to remain, got %T", body[0])
	}
}

func TestProgramDropsTrailingStatementsAfterReturn(t *testing.T) {
	src := `
int main() {
	return 1;
	printInt(2);
}
`
	prog := parseOrFatal(t, src)
	out := optimize.Program(prog)
	body := mainBody(t, out)
	if len(body) != 1 {
		t.Fatalf("expected the unreachable printInt to be dropped, got %d statements", len(body))
	}
}

func TestProgramDoesNotFoldDivisionByZero(t *testing.T) {
	src := `int main() { int x = 1 / 0; return x; }`
	prog := parseOrFatal(t, src)
	out := optimize.Program(prog)
	body := mainBody(t, out)
	decl := body[0].(ast.Declare)
	if _, ok := decl.Items[0].Init.(ast.IntLit); ok {
		t.Fatal("a division by zero must not be folded into a constant")
	}
}

func TestProgramIsPure(t *testing.T) {
	src := `int main() { int x = 1 + 1; return x; }`
	prog := parseOrFatal(t, src)
	_ = optimize.Program(prog)
	body := mainBody(t, prog)
	decl := body[0].(ast.Declare)
	if _, ok := decl.Items[0].Init.(ast.Binary); !ok {
		t.Fatal("optimize.Program must not mutate its input AST")
	}
}

func TestBooleanEqualityFolding(t *testing.T) {
	src := `
boolean check(boolean b) {
	return b == true;
}
int main() { return 0; }
`
	prog := parseOrFatal(t, src)
	out := optimize.Program(prog)
	var checkFn *ast.Function
	for _, f := range out.Functions {
		if f.Name == "check" {
			checkFn = f
		}
	}
	ret := checkFn.Body[0].(ast.Return)
	if _, ok := ret.Value.(ast.Read); !ok {
		t.Fatalf("b == true should fold to a bare read of b, got %#v", ret.Value)
	}
}
