package irw

import (
	"strings"
	"testing"
)

func TestFreshRegAndLabelAreUnique(t *testing.T) {
	w := New()
	r1, r2 := w.FreshReg(), w.FreshReg()
	if r1 == r2 {
		t.Fatalf("FreshReg returned the same name twice: %s", r1)
	}
	l1 := w.FreshLabel("if.then")
	l2 := w.FreshLabel("if.then")
	if l1 == l2 {
		t.Fatalf("FreshLabel returned the same name twice: %s", l1)
	}
}

func TestLabelTracksCurrentAndResetsTerminated(t *testing.T) {
	w := New()
	w.Label("entry")
	if w.CurrentLabel() != "entry" {
		t.Fatalf("CurrentLabel() = %q, want entry", w.CurrentLabel())
	}
	if w.Terminated() {
		t.Fatal("a freshly opened block must not be terminated")
	}
	w.Br("next")
	if !w.Terminated() {
		t.Fatal("Br must mark the block terminated")
	}
	w.Label("next")
	if w.Terminated() {
		t.Fatal("opening a new Label must reset terminated")
	}
}

func TestIntOpArithmeticAndComparison(t *testing.T) {
	w := New()
	sum := w.IntOp("i32", "%a", "+", "%b")
	if !strings.Contains(w.Lines()[len(w.Lines())-1], "add i32 %a, %b") {
		t.Fatalf("unexpected IR for +: %s", w.Lines()[len(w.Lines())-1])
	}
	_ = sum
	lt := w.IntOp("i32", "%a", "<", "%b")
	last := w.Lines()[len(w.Lines())-1]
	if !strings.Contains(last, "icmp slt i32 %a, %b") {
		t.Fatalf("unexpected IR for <: %s", last)
	}
	_ = lt
}

func TestCallVoidReturnsEmptyRegister(t *testing.T) {
	w := New()
	reg := w.Call("void", "@printInt", []Arg{{Ty: "i32", Val: "5"}})
	if reg != "" {
		t.Fatalf("a void call must return an empty register, got %q", reg)
	}
	last := w.Lines()[len(w.Lines())-1]
	if !strings.Contains(last, "call void @printInt(i32 5)") {
		t.Fatalf("unexpected IR: %s", last)
	}
}

func TestCallNonVoidReturnsRegister(t *testing.T) {
	w := New()
	reg := w.Call("i32", "@readInt", nil)
	if reg == "" {
		t.Fatal("a non-void call must return a register")
	}
}

func TestPhiRendersIncomingPairs(t *testing.T) {
	w := New()
	r := w.Phi("i32", PhiIncoming{Val: "0", Label: "a"}, PhiIncoming{Val: "%x", Label: "b"})
	if r == "" {
		t.Fatal("Phi must return a register")
	}
	last := w.Lines()[len(w.Lines())-1]
	if !strings.Contains(last, "[ 0, %a ]") || !strings.Contains(last, "[ %x, %b ]") {
		t.Fatalf("unexpected phi IR: %s", last)
	}
}

func TestSizeofTrickEmitsGepAndPtrtoint(t *testing.T) {
	w := New()
	w.SizeofTrick("%class.Dog")
	lines := w.Lines()
	if len(lines) != 2 {
		t.Fatalf("SizeofTrick should emit exactly two instructions, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "getelementptr") || !strings.Contains(lines[1], "ptrtoint") {
		t.Fatalf("unexpected SizeofTrick IR: %v", lines)
	}
}
