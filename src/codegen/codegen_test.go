package codegen_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"latc/internal/targetdesc"
	"latc/src/compiler"
)

func compileOrFatal(t *testing.T, src string) string {
	t.Helper()
	ir, err := compiler.Compile(src, targetdesc.Reference())
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	return ir
}

// TestGenerateSimpleFunction covers the baseline scenario: arithmetic,
// calls to builtins, and a single return.
func TestGenerateSimpleFunction(t *testing.T) {
	ir := compileOrFatal(t, `
int add(int a, int b) {
	return a + b;
}
int main() {
	printInt(add(2, 3));
	return 0;
}
`)
	snaps.MatchSnapshot(t, "simple_function", ir)
}

// TestGenerateClassDispatch covers virtual dispatch: a field inherited into
// the subclass's layout and an overridden method called polymorphically.
func TestGenerateClassDispatch(t *testing.T) {
	ir := compileOrFatal(t, `
class Animal {
	string name;
	string speak() { return "..."; }
}
class Dog extends Animal {
	string speak() { return "Woof"; }
}
int main() {
	Animal a = new Dog;
	printString(a.speak());
	return 0;
}
`)
	snaps.MatchSnapshot(t, "class_dispatch", ir)
}

// TestGenerateArraysAndForEach covers array allocation, iteration and
// element access.
func TestGenerateArraysAndForEach(t *testing.T) {
	ir := compileOrFatal(t, `
int main() {
	int[] xs = new int[5];
	int total = 0;
	for (int x : xs) {
		total = total + x;
	}
	printInt(total);
	return 0;
}
`)
	snaps.MatchSnapshot(t, "arrays_foreach", ir)
}

// TestGenerateStringConcatAndEquality covers string ARC, `+` on strings (a
// runtime `._concatenate` call) and `==` on strings (a pointer comparison).
func TestGenerateStringConcatAndEquality(t *testing.T) {
	ir := compileOrFatal(t, `
int main() {
	string a = "hello";
	string b = "world";
	string c = a + " " + b;
	if (c == "hello world") {
		printString(c);
	}
	return 0;
}
`)
	snaps.MatchSnapshot(t, "string_concat_equality", ir)
}

// TestGenerateShortCircuit covers && / || lowering to labels and a phi.
func TestGenerateShortCircuit(t *testing.T) {
	ir := compileOrFatal(t, `
boolean check(int x) {
	return x > 0 && x < 10 || x == -1;
}
int main() {
	if (check(5)) {
		printInt(1);
	}
	return 0;
}
`)
	snaps.MatchSnapshot(t, "short_circuit", ir)
}

// TestGenerateCustomTargetChangesIntWidth proves --target is not decorative:
// a 64-bit-int descriptor must change every int-typed slot's LLVM type and
// the module's target datalayout, while leaving the runtime-ABI-fixed array
// header/malloc plumbing at i32.
func TestGenerateCustomTargetChangesIntWidth(t *testing.T) {
	src := `
int main() {
	int x = 5;
	int[] xs = new int[3];
	printInt(x + xs.length);
	return 0;
}
`
	wide := targetdesc.Descriptor{PointerBits: 64, IntBits: 64, Endianness: "little"}
	ir, err := compiler.Compile(src, wide)
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if !strings.Contains(ir, `target datalayout = "e-p:64:64"`) {
		t.Fatalf("expected a 64-bit datalayout line, got:\n%s", ir)
	}
	if !strings.Contains(ir, "declare void @printInt(i64)") {
		t.Fatalf("expected printInt to take i64, got:\n%s", ir)
	}
	if !strings.Contains(ir, "i64 5") {
		t.Fatalf("expected the int literal to be stored as i64, got:\n%s", ir)
	}
	if !strings.Contains(ir, `%array.int = type { i32,`) {
		t.Fatalf("expected the array header's length field to stay i32, got:\n%s", ir)
	}

	reference, err := compiler.Compile(src, targetdesc.Reference())
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if ir == reference {
		t.Fatal("custom target produced byte-identical IR to the reference target")
	}
}

func TestGenerateRejectsUndefinedSymbol(t *testing.T) {
	_, err := compiler.Compile(`int main() { return undefinedThing(); }`, targetdesc.Reference())
	if err == nil || !strings.Contains(err.Error(), "type error") {
		t.Fatalf("expected a wrapped type error, got %v", err)
	}
}

func TestGenerateRejectsMissingReturn(t *testing.T) {
	_, err := compiler.Compile(`
int pick(boolean b) {
	if (b) return 1;
}
int main() { return pick(true); }
`, targetdesc.Reference())
	if err == nil || !strings.Contains(err.Error(), "return error") {
		t.Fatalf("expected a wrapped return error, got %v", err)
	}
}
