package optimize

import "latc/src/ast"

// stmt folds a single statement bottom-up, applying spec.md §4.4's
// statement rules: `if(true) S -> S`, `if(false) S -> empty`, if-else
// collapses to the live branch, `while(false) S -> empty`, a block of one
// block collapses.
func stmt(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case ast.Empty:
		return n

	case ast.Block:
		inner := block(n.Stmts)
		if len(inner) == 1 {
			if nb, ok := inner[0].(ast.Block); ok {
				return nb
			}
		}
		return ast.Block{Stmts: inner}

	case ast.Declare:
		items := make([]ast.DeclItem, len(n.Items))
		for i, it := range n.Items {
			ni := it
			if it.Init != nil {
				ni.Init = expr(it.Init)
			}
			items[i] = ni
		}
		return ast.Declare{Type: n.Type, Items: items}

	case ast.Assign:
		return ast.Assign{LV: lvalue(n.LV), RHS: expr(n.RHS)}

	case ast.IncDec:
		return ast.IncDec{LV: lvalue(n.LV), Inc: n.Inc}

	case ast.Return:
		if n.Value == nil {
			return n
		}
		return ast.Return{Value: expr(n.Value)}

	case ast.ExprStmt:
		return ast.ExprStmt{X: expr(n.X)}

	case ast.If:
		cond := expr(n.Cond)
		then := stmt(n.Then)
		var els ast.Stmt
		if n.Else != nil {
			els = stmt(n.Else)
		}
		if b, ok := cond.(ast.BoolLit); ok {
			if b.Value {
				return then
			}
			if els != nil {
				return els
			}
			return ast.Empty{}
		}
		return ast.If{Cond: cond, Then: then, Else: els}

	case ast.While:
		cond := expr(n.Cond)
		if b, ok := cond.(ast.BoolLit); ok && !b.Value {
			return ast.Empty{}
		}
		return ast.While{Cond: cond, Body: stmt(n.Body)}

	case ast.ForEach:
		return ast.ForEach{ElemType: n.ElemType, Var: n.Var, Array: expr(n.Array), Body: stmt(n.Body)}

	default:
		return s
	}
}

func lvalue(lv ast.Lvalue) ast.Lvalue {
	switch n := lv.(type) {
	case ast.Direct:
		return n
	case ast.Indirect:
		return ast.Indirect{Expr: expr(n.Expr), Field: n.Field}
	case ast.Index:
		return ast.Index{Expr: expr(n.Expr), At: expr(n.At)}
	default:
		return lv
	}
}
