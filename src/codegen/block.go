package codegen

import (
	"latc/src/ast"
	"latc/src/codegen/context"
)

// genBlock generates a statement sequence as its own lexical scope:
// entering pushes a fresh Scope/ARC frame, leaving releases that frame's
// string temporaries/variables — unless the block ended in a `return`,
// whose own release already discharged every live scope (spec.md §4.7,
// "Block entry/exit").
func genBlock(fc *context.FuncCtx, stmts []ast.Stmt) error {
	fc.PushBlock()
	for _, s := range stmts {
		if fc.W.Terminated() {
			break
		}
		if err := genStmt(fc, s); err != nil {
			fc.PopBlock()
			return err
		}
	}
	temps, vars := fc.PopBlock()
	if !fc.W.Terminated() {
		releaseAll(fc, temps, vars)
	}
	return nil
}

// genScopedStmt wraps a single statement (an `if`/`while`/`for` body that
// may or may not itself be an explicit `{ ... }` block) in its own
// lexical scope, per spec.md §4.7's "per-branch scope" requirement.
func genScopedStmt(fc *context.FuncCtx, s ast.Stmt) error {
	fc.PushBlock()
	err := genStmt(fc, s)
	temps, vars := fc.PopBlock()
	if err != nil {
		return err
	}
	if !fc.W.Terminated() {
		releaseAll(fc, temps, vars)
	}
	return nil
}
