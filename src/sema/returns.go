package sema

import "latc/src/ast"

// CheckReturns proves every non-void function/method body in prog returns on
// every control path, per spec.md §4.3. It must run after the optimizer
// (spec.md §4.4): constant-folded `if(true)`/`if(false)` branches change
// whether a function provably returns.
func CheckReturns(prog *ast.Program) error {
	for _, f := range prog.Functions {
		if err := checkFunctionReturns(f, f.Name); err != nil {
			return err
		}
	}
	for _, class := range prog.Classes {
		for _, m := range class.Methods {
			if err := checkFunctionReturns(m, class.Name+"."+m.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFunctionReturns(f *ast.Function, where string) error {
	if f.Ret.Kind == ast.KVoid {
		return nil
	}
	if !bodyReturns(f.Body) {
		return &ReturnError{Where: where}
	}
	return nil
}

// bodyReturns reports whether some statement in the sequence stmts
// guarantees a return before control falls off the end of the sequence.
func bodyReturns(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		if stmtReturns(s) {
			return true
		}
	}
	return false
}

// stmtReturns reports whether s by itself guarantees a return on every path
// through it, per spec.md §4.3: return/return-e always return; a block
// returns iff a contained statement returns; if-else returns iff both
// branches return; every other statement (including while/for-each, whose
// bodies may not execute) does not guarantee a return.
func stmtReturns(s ast.Stmt) bool {
	switch n := s.(type) {
	case ast.Return:
		return true
	case ast.Block:
		return bodyReturns(n.Stmts)
	case ast.If:
		if n.Else == nil {
			return false
		}
		return stmtReturns(n.Then) && stmtReturns(n.Else)
	default:
		return false
	}
}
