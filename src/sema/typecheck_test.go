package sema_test

import (
	"strings"
	"testing"

	"latc/src/ast"
	"latc/src/frontend"
	"latc/src/sema"
)

func parseOrFatal(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := frontend.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestCheckAcceptsValidProgram(t *testing.T) {
	src := `
int fib(int n) {
	if (n < 2) return n;
	return fib(n - 1) + fib(n - 2);
}
int main() {
	printInt(fib(10));
	return 0;
}
`
	prog := parseOrFatal(t, src)
	res, err := sema.Check(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Functions["fib"].String() == "" {
		t.Fatal("fib should be registered in the function table")
	}
}

func TestCheckRejectsMissingMain(t *testing.T) {
	src := `int notMain() { return 0; }`
	prog := parseOrFatal(t, src)
	_, err := sema.Check(prog)
	if err == nil || !strings.Contains(err.Error(), "NoMain") {
		t.Fatalf("expected NoMain error, got %v", err)
	}
}

func TestCheckRejectsWrongMainType(t *testing.T) {
	src := `void main() { }`
	prog := parseOrFatal(t, src)
	_, err := sema.Check(prog)
	if err == nil || !strings.Contains(err.Error(), "InvalidMainType") {
		t.Fatalf("expected InvalidMainType error, got %v", err)
	}
}

func TestCheckRejectsUndefinedVariable(t *testing.T) {
	src := `
int main() {
	return y;
}
`
	prog := parseOrFatal(t, src)
	_, err := sema.Check(prog)
	if err == nil || !strings.Contains(err.Error(), "Undefined") {
		t.Fatalf("expected Undefined error, got %v", err)
	}
}

func TestCheckRejectsArithmeticOnStrings(t *testing.T) {
	src := `
int main() {
	string s = "a" - "b";
	return 0;
}
`
	prog := parseOrFatal(t, src)
	_, err := sema.Check(prog)
	if err == nil {
		t.Fatal("expected an error subtracting two strings")
	}
}

func TestCheckAcceptsStringConcatenation(t *testing.T) {
	src := `
int main() {
	string s = "a" + "b";
	printString(s);
	return 0;
}
`
	prog := parseOrFatal(t, src)
	if _, err := sema.Check(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckClassHierarchyAndOverride(t *testing.T) {
	src := `
class Animal {
	string name;
	string speak() { return "..."; }
}
class Dog extends Animal {
	string speak() { return "Woof"; }
}
int main() {
	Dog d = new Dog;
	printString(d.speak());
	return 0;
}
`
	prog := parseOrFatal(t, src)
	res, err := sema.Check(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Classes["Dog"]; !ok {
		t.Fatal("Dog should be a resolved class")
	}
}

func TestCheckRejectsIncompatibleOverride(t *testing.T) {
	src := `
class Animal {
	string speak() { return "..."; }
}
class Dog extends Animal {
	int speak() { return 1; }
}
int main() { return 0; }
`
	prog := parseOrFatal(t, src)
	_, err := sema.Check(prog)
	if err == nil || !strings.Contains(err.Error(), "InvalidOverride") {
		t.Fatalf("expected InvalidOverride, got %v", err)
	}
}

func TestCheckSubtypingAcceptsDerivedArgument(t *testing.T) {
	src := `
class Animal { }
class Dog extends Animal { }
void feed(Animal a) { }
int main() {
	Dog d = new Dog;
	feed(d);
	return 0;
}
`
	prog := parseOrFatal(t, src)
	if _, err := sema.Check(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
