// Package optimize implements the pure AST-to-AST constant-folding and
// dead-code optimizer of spec.md §4.4. It runs after the type checker and
// before the return checker (the return checker must see the reduced
// program, e.g. spec.md S5's `if(true) return 1; else return 2;` collapsing
// to a single `return 1;`).
package optimize

import "latc/src/ast"

// Program folds and prunes every function and method body of prog
// bottom-up and returns a new *ast.Program; prog itself is left untouched
// (spec.md §9: "the optimizer takes an AST by value and returns a new
// one; no shared mutability").
func Program(prog *ast.Program) *ast.Program {
	out := &ast.Program{
		Classes:   make([]*ast.Class, len(prog.Classes)),
		Functions: make([]*ast.Function, len(prog.Functions)),
	}
	for i, f := range prog.Functions {
		out.Functions[i] = function(f)
	}
	for i, c := range prog.Classes {
		nc := &ast.Class{Name: c.Name, Super: c.Super, Fields: c.Fields}
		nc.Methods = make([]*ast.Function, len(c.Methods))
		for j, m := range c.Methods {
			nc.Methods[j] = function(m)
		}
		out.Classes[i] = nc
	}
	return out
}

func function(f *ast.Function) *ast.Function {
	return &ast.Function{
		Name:     f.Name,
		Receiver: f.Receiver,
		Params:   f.Params,
		Ret:      f.Ret,
		Body:     block(f.Body),
	}
}

// block optimizes a statement sequence: each statement is folded, empty
// statements are pruned, a statement following a proven-returning
// statement is dropped (spec.md §4.4: "trailing statements after a
// returning statement are dropped").
func block(stmts []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		ns := stmt(s)
		if _, empty := ns.(ast.Empty); empty {
			continue
		}
		out = append(out, ns)
		if returns(ns) {
			break
		}
	}
	return out
}

// returns conservatively detects statements the optimizer itself just
// proved unconditional (return, or an if-else whose branches both do), so
// it can drop dead trailing code. This mirrors, but is independent of,
// sema.CheckReturns: the optimizer runs before the return checker.
func returns(s ast.Stmt) bool {
	switch n := s.(type) {
	case ast.Return:
		return true
	case ast.Block:
		for _, sub := range n.Stmts {
			if returns(sub) {
				return true
			}
		}
		return false
	case ast.If:
		return n.Else != nil && returns(n.Then) && returns(n.Else)
	default:
		return false
	}
}
