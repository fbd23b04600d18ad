package sema

import (
	"testing"

	"latc/src/ast"
)

func classProgram(classes ...*ast.Class) *ast.Program {
	return &ast.Program{Classes: classes}
}

func TestCheckHierarchyAccepts(t *testing.T) {
	prog := classProgram(
		&ast.Class{Name: "Animal"},
		&ast.Class{Name: "Dog", Super: "Animal"},
	)
	h, err := CheckHierarchy(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.IsSubclass("Dog", "Animal") {
		t.Fatal("Dog should be a subclass of Animal")
	}
	if !h.IsSubclass("Dog", "Dog") {
		t.Fatal("a class is its own subclass")
	}
	if h.IsSubclass("Animal", "Dog") {
		t.Fatal("Animal must not be a subclass of Dog")
	}
}

func TestCheckHierarchyDuplicateClass(t *testing.T) {
	prog := classProgram(&ast.Class{Name: "A"}, &ast.Class{Name: "A"})
	_, err := CheckHierarchy(prog)
	herr, ok := err.(*HierarchyError)
	if !ok || herr.Kind != DuplicateClass {
		t.Fatalf("expected DuplicateClass, got %v", err)
	}
}

func TestCheckHierarchyUndefinedSuperclass(t *testing.T) {
	prog := classProgram(&ast.Class{Name: "Dog", Super: "Animal"})
	_, err := CheckHierarchy(prog)
	herr, ok := err.(*HierarchyError)
	if !ok || herr.Kind != UndefinedSuperclass {
		t.Fatalf("expected UndefinedSuperclass, got %v", err)
	}
}

func TestCheckHierarchyCycle(t *testing.T) {
	prog := classProgram(
		&ast.Class{Name: "A", Super: "B"},
		&ast.Class{Name: "B", Super: "A"},
	)
	_, err := CheckHierarchy(prog)
	herr, ok := err.(*HierarchyError)
	if !ok || herr.Kind != InheritanceCycle {
		t.Fatalf("expected InheritanceCycle, got %v", err)
	}
}

func TestAncestors(t *testing.T) {
	prog := classProgram(
		&ast.Class{Name: "A"},
		&ast.Class{Name: "B", Super: "A"},
		&ast.Class{Name: "C", Super: "B"},
	)
	h, err := CheckHierarchy(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := h.Ancestors("C")
	want := []string{"C", "B", "A"}
	if len(got) != len(want) {
		t.Fatalf("Ancestors(C) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ancestors(C) = %v, want %v", got, want)
		}
	}
}
