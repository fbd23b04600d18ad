package sema

import "latc/src/ast"

// color tracks the cycle-detection state of a class while walking the
// `extends` relation upward from it, per spec.md §4.1: "detected by
// coloring each class with a sequence number and walking upward from every
// class, revisiting a node with the same color signals a cycle."
type color int

const (
	unvisited color = iota
	visiting
	done
)

// ClassHierarchy is the checked, resolved form of a program's classes: a
// name-indexed registry with super-class links validated to be acyclic.
type ClassHierarchy struct {
	byName map[string]*ast.Class
	order  []string // declaration order, preserved for deterministic ClassId assignment downstream
}

// CheckHierarchy validates the class list of prog per spec.md §4.1 and
// returns the resolved registry on success.
func CheckHierarchy(prog *ast.Program) (*ClassHierarchy, error) {
	h := &ClassHierarchy{byName: make(map[string]*ast.Class, len(prog.Classes))}
	for _, c := range prog.Classes {
		if _, dup := h.byName[c.Name]; dup {
			return nil, &HierarchyError{Kind: DuplicateClass, Class: c.Name}
		}
		h.byName[c.Name] = c
		h.order = append(h.order, c.Name)
	}
	for _, c := range prog.Classes {
		if c.Super == "" {
			continue
		}
		if _, ok := h.byName[c.Super]; !ok {
			return nil, &HierarchyError{Kind: UndefinedSuperclass, Class: c.Name}
		}
	}

	colors := make(map[string]color, len(h.order))
	for _, name := range h.order {
		if colors[name] == done {
			continue
		}
		if err := h.walkUp(name, colors); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// walkUp follows the `extends` chain from name toward its roots, marking
// every class visited in this walk as `visiting`. Reaching a class already
// marked `visiting` in the same walk means the chain loops back on itself.
func (h *ClassHierarchy) walkUp(name string, colors map[string]color) error {
	var chain []string
	for name != "" {
		switch colors[name] {
		case visiting:
			return &HierarchyError{Kind: InheritanceCycle, Class: name}
		case done:
			name = ""
			continue
		}
		colors[name] = visiting
		chain = append(chain, name)
		name = h.byName[name].Super
	}
	for _, n := range chain {
		colors[n] = done
	}
	return nil
}

// Class returns the resolved class named name, or nil if undeclared.
func (h *ClassHierarchy) Class(name string) *ast.Class { return h.byName[name] }

// Order returns class names in declaration order.
func (h *ClassHierarchy) Order() []string { return h.order }

// IsSubclass reports whether sub transitively extends super (or sub ==
// super). Both names must be resolved classes.
func (h *ClassHierarchy) IsSubclass(sub, super string) bool {
	for sub != "" {
		if sub == super {
			return true
		}
		c := h.byName[sub]
		if c == nil {
			return false
		}
		sub = c.Super
	}
	return false
}

// Ancestors returns the chain of class names from name up to (and
// including) the ultimate root, name first.
func (h *ClassHierarchy) Ancestors(name string) []string {
	var out []string
	for name != "" {
		out = append(out, name)
		c := h.byName[name]
		if c == nil {
			break
		}
		name = c.Super
	}
	return out
}
