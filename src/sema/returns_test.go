package sema_test

import (
	"testing"

	"latc/src/optimize"
	"latc/src/sema"
)

func TestCheckReturnsAcceptsIfElseBothReturning(t *testing.T) {
	src := `
int pick(boolean b) {
	if (b) return 1;
	else return 2;
}
int main() { return pick(true); }
`
	prog := parseOrFatal(t, src)
	if _, err := sema.Check(prog); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	if err := sema.CheckReturns(prog); err != nil {
		t.Fatalf("unexpected return error: %v", err)
	}
}

func TestCheckReturnsRejectsMissingElse(t *testing.T) {
	src := `
int pick(boolean b) {
	if (b) return 1;
}
int main() { return 0; }
`
	prog := parseOrFatal(t, src)
	if _, err := sema.Check(prog); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	if err := sema.CheckReturns(prog); err == nil {
		t.Fatal("expected a missing-return error")
	}
}

func TestCheckReturnsRejectsLoopOnlyReturn(t *testing.T) {
	src := `
int pick(boolean b) {
	while (b) {
		return 1;
	}
}
int main() { return 0; }
`
	prog := parseOrFatal(t, src)
	if _, err := sema.Check(prog); err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	if err := sema.CheckReturns(prog); err == nil {
		t.Fatal("a while body is not guaranteed to execute, so this must fail")
	}
}

// TestCheckReturnsSeesFoldedBranch reproduces the scenario that pins
// CheckReturns to run after the optimizer: a constant condition folds away
// one arm entirely, and only the surviving arm needs to return.
func TestCheckReturnsSeesFoldedBranch(t *testing.T) {
	src := `
int pick() {
	if (true) return 1;
	else { }
}
int main() { return pick(); }
`
	prog := parseOrFatal(t, src)
	res, err := sema.Check(prog)
	if err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}
	folded := optimize.Program(res.Program)
	if err := sema.CheckReturns(folded); err != nil {
		t.Fatalf("folded program should provably return: %v", err)
	}
}
