package frontend

import (
	"testing"

	"latc/src/ast"
)

func TestLexKeywordsAndOperators(t *testing.T) {
	items, err := lex(`class A extends B { int x; } int main() { return 1 + 2 * 3; }`)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	if items[len(items)-1].typ != itemEOF {
		t.Fatalf("expected final item to be EOF, got %v", items[len(items)-1])
	}
	var sawClass, sawExtends, sawStar bool
	for _, it := range items {
		switch it.typ {
		case itemClass:
			sawClass = true
		case itemExtends:
			sawExtends = true
		case itemStar:
			sawStar = true
		}
	}
	if !sawClass || !sawExtends || !sawStar {
		t.Fatalf("missing expected tokens in %v", items)
	}
}

func TestLexStringEscapes(t *testing.T) {
	items, err := lex(`"hi\nthere"`)
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	if items[0].typ != itemStringLit || items[0].val != "hi\nthere" {
		t.Fatalf("got %v", items[0])
	}
}

func TestParseFreeFunction(t *testing.T) {
	prog, err := Parse(`int main() { int x = 1 + 2; printInt(x); return 0; }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Functions) != 1 || prog.Functions[0].Name != "main" {
		t.Fatalf("unexpected program: %+v", prog)
	}
	if len(prog.Functions[0].Body) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Functions[0].Body))
	}
}

func TestParseClassHierarchy(t *testing.T) {
	src := `
class A {
	int x;
	int get() { return x; }
}
class B extends A {
	int get() { return x + 1; }
}
int main() {
	A a = new B;
	printInt(a.get());
	return 0;
}
`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(prog.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(prog.Classes))
	}
	if prog.Classes[1].Super != "A" {
		t.Fatalf("expected B to extend A, got %q", prog.Classes[1].Super)
	}
}

func TestParseForEachAndArrays(t *testing.T) {
	src := `int main() { int[] xs = new int[3]; int s = 0; for (int v : xs) s = s + v; return s; }`
	prog, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	body := prog.Functions[0].Body
	decl, ok := body[0].(ast.Declare)
	if !ok || !decl.Type.IsArray() {
		t.Fatalf("expected first statement to declare an array, got %#v", body[0])
	}
	if _, ok := body[2].(ast.ForEach); !ok {
		t.Fatalf("expected third statement to be a ForEach, got %#v", body[2])
	}
}

func TestParseNullCast(t *testing.T) {
	prog, err := Parse(`class A {} int main() { A a = (A) null; return 0; }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	decl := prog.Functions[0].Body[0].(ast.Declare)
	lit, ok := decl.Items[0].Init.(ast.NullLit)
	if !ok || lit.Hint == nil || lit.Hint.Class != "A" {
		t.Fatalf("expected hinted null literal, got %#v", decl.Items[0].Init)
	}
}

func TestParseRejectsBadSyntax(t *testing.T) {
	if _, err := Parse(`int main() { return }`); err == nil {
		t.Fatal("expected a syntax error")
	}
}
