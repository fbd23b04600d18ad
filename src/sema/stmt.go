package sema

import "latc/src/ast"

// checkStmt type-checks a single statement against spec.md §4.2.3.
func (c *checker) checkStmt(s ast.Stmt, env *scope) error {
	switch n := s.(type) {
	case ast.Empty:
		return nil

	case ast.Block:
		env.push()
		defer env.pop()
		for _, sub := range n.Stmts {
			if err := c.checkStmt(sub, env); err != nil {
				return err
			}
		}
		return nil

	case ast.Declare:
		if !declarable(n.Type) {
			return newTypeError(NonDeclarableType, "declaration has non-declarable type %s", n.Type)
		}
		for _, item := range n.Items {
			if item.Init != nil {
				t, err := c.checkExpr(item.Init, env)
				if err != nil {
					return err
				}
				if !c.assignable(t, n.Type) {
					return newTypeError(InvalidType, "cannot initialize %q of type %s with value of type %s", item.Name, n.Type, t)
				}
			}
			if !env.declare(item.Name, n.Type) {
				return newTypeError(AlreadyDefined, "variable %q is already defined in this scope", item.Name)
			}
		}
		return nil

	case ast.Assign:
		lvT, err := c.checkLvalue(n.LV, env)
		if err != nil {
			return err
		}
		rT, err := c.checkExpr(n.RHS, env)
		if err != nil {
			return err
		}
		if !c.assignable(rT, lvT) {
			return newTypeError(InvalidType, "cannot assign value of type %s to lvalue of type %s", rT, lvT)
		}
		return nil

	case ast.IncDec:
		lvT, err := c.checkLvalue(n.LV, env)
		if err != nil {
			return err
		}
		if lvT.Kind != ast.KInt {
			return newTypeError(InvalidType, "increment/decrement target must be int, got %s", lvT)
		}
		return nil

	case ast.Return:
		if n.Value == nil {
			if c.retType.Kind != ast.KVoid {
				return newTypeError(InvalidType, "missing return value, expected %s", c.retType)
			}
			return nil
		}
		t, err := c.checkExpr(n.Value, env)
		if err != nil {
			return err
		}
		if !c.assignable(t, c.retType) {
			return newTypeError(InvalidType, "return value of type %s is not assignable to %s", t, c.retType)
		}
		return nil

	case ast.ExprStmt:
		_, err := c.checkExpr(n.X, env)
		return err

	case ast.If:
		t, err := c.checkExpr(n.Cond, env)
		if err != nil {
			return err
		}
		if t.Kind != ast.KBool {
			return newTypeError(InvalidType, "if condition must be boolean, got %s", t)
		}
		env.push()
		err = c.checkStmt(n.Then, env)
		env.pop()
		if err != nil {
			return err
		}
		if n.Else != nil {
			env.push()
			err = c.checkStmt(n.Else, env)
			env.pop()
			if err != nil {
				return err
			}
		}
		return nil

	case ast.While:
		t, err := c.checkExpr(n.Cond, env)
		if err != nil {
			return err
		}
		if t.Kind != ast.KBool {
			return newTypeError(InvalidType, "while condition must be boolean, got %s", t)
		}
		env.push()
		err = c.checkStmt(n.Body, env)
		env.pop()
		return err

	case ast.ForEach:
		arrT, err := c.checkExpr(n.Array, env)
		if err != nil {
			return err
		}
		if !arrT.IsArray() {
			return newTypeError(NotAnObject, "for-each source must be an array, got %s", arrT)
		}
		if !arrT.Elem.Equal(n.ElemType) {
			return newTypeError(InvalidType, "for-each element type %s does not match array element type %s", n.ElemType, *arrT.Elem)
		}
		env.push()
		defer env.pop()
		if !env.declare(n.Var, n.ElemType) {
			return newTypeError(AlreadyDefined, "loop variable %q is already defined", n.Var)
		}
		return c.checkStmt(n.Body, env)

	default:
		return newTypeError(InvalidType, "unsupported statement node %T", n)
	}
}
