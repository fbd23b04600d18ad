package optimize

import "latc/src/ast"

// expr folds an expression bottom-up per spec.md §4.4.
func expr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case ast.Read:
		return ast.Read{LV: lvalue(n.LV)}

	case ast.IntLit, ast.BoolLit, ast.StringLit, ast.NullLit:
		return n

	case ast.Call:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = expr(a)
		}
		return ast.Call{Callee: lvalue(n.Callee), Args: args}

	case ast.Neg:
		x := expr(n.X)
		if lit, ok := x.(ast.IntLit); ok {
			return ast.IntLit{Value: -lit.Value}
		}
		return ast.Neg{X: x}

	case ast.Not:
		x := expr(n.X)
		if lit, ok := x.(ast.BoolLit); ok {
			return ast.BoolLit{Value: !lit.Value}
		}
		return ast.Not{X: x}

	case ast.Binary:
		return binary(n.Op, expr(n.LHS), expr(n.RHS))

	case ast.NewObject:
		return n

	case ast.NewArray:
		return ast.NewArray{Elem: n.Elem, Size: expr(n.Size)}

	default:
		return e
	}
}

// binary applies spec.md §4.4's binary-expression folding rules to an
// already-folded lhs/rhs pair.
func binary(op ast.Op, l, r ast.Expr) ast.Expr {
	if li, ok := l.(ast.IntLit); ok {
		if ri, ok := r.(ast.IntLit); ok {
			if v, ok := foldIntInt(op, li.Value, ri.Value); ok {
				return v
			}
		}
	}
	if lb, ok := l.(ast.BoolLit); ok {
		if rb, ok := r.(ast.BoolLit); ok {
			if v, ok := foldBoolBool(op, lb.Value, rb.Value); ok {
				return v
			}
		}
	}
	// String `+` is deliberately never folded here (spec.md §4.4); string
	// `==`/`!=` may be.
	if ls, ok := l.(ast.StringLit); ok && op.IsEquality() {
		if rs, ok := r.(ast.StringLit); ok {
			eq := ls.Value == rs.Value
			if op == ast.OpNe {
				eq = !eq
			}
			return ast.BoolLit{Value: eq}
		}
	}

	// `&&`/`||` shortcut rules apply only with the literal on the left: the
	// left operand is the one always evaluated, so folding away the right
	// operand when it is on the right would drop its side effects.
	if lb, ok := l.(ast.BoolLit); ok {
		switch op {
		case ast.OpAnd:
			if lb.Value {
				return r // true && x -> x
			}
			return ast.BoolLit{Value: false} // false && x -> false
		case ast.OpOr:
			if lb.Value {
				return ast.BoolLit{Value: true} // true || x -> true
			}
			return r // false || x -> x
		}
	}

	// `==`/`!=` against a boolean literal have no evaluation-order
	// dependence, so the simplification is symmetric.
	if op.IsEquality() {
		if lb, ok := l.(ast.BoolLit); ok {
			return boolEq(op, lb.Value, r)
		}
		if rb, ok := r.(ast.BoolLit); ok {
			return boolEq(op, rb.Value, l)
		}
	}

	return ast.Binary{Op: op, LHS: l, RHS: r}
}

// boolEq implements `true == x -> x`, `false == x -> !x`, and the
// corresponding `!=` forms.
func boolEq(op ast.Op, lit bool, other ast.Expr) ast.Expr {
	want := lit
	if op == ast.OpNe {
		want = !lit
	}
	if want {
		return other
	}
	if notLit, ok := other.(ast.Not); ok {
		return notLit.X // avoid double negation !!x
	}
	return ast.Not{X: other}
}

func foldIntInt(op ast.Op, a, b int32) (ast.Expr, bool) {
	switch op {
	case ast.OpAdd:
		return ast.IntLit{Value: a + b}, true
	case ast.OpSub:
		return ast.IntLit{Value: a - b}, true
	case ast.OpMul:
		return ast.IntLit{Value: a * b}, true
	case ast.OpDiv:
		if b == 0 {
			return nil, false
		}
		return ast.IntLit{Value: a / b}, true
	case ast.OpMod:
		if b == 0 {
			return nil, false
		}
		return ast.IntLit{Value: a % b}, true
	case ast.OpLt:
		return ast.BoolLit{Value: a < b}, true
	case ast.OpLe:
		return ast.BoolLit{Value: a <= b}, true
	case ast.OpGt:
		return ast.BoolLit{Value: a > b}, true
	case ast.OpGe:
		return ast.BoolLit{Value: a >= b}, true
	case ast.OpEq:
		return ast.BoolLit{Value: a == b}, true
	case ast.OpNe:
		return ast.BoolLit{Value: a != b}, true
	default:
		return nil, false
	}
}

func foldBoolBool(op ast.Op, a, b bool) (ast.Expr, bool) {
	switch op {
	case ast.OpAnd:
		return ast.BoolLit{Value: a && b}, true
	case ast.OpOr:
		return ast.BoolLit{Value: a || b}, true
	case ast.OpEq:
		return ast.BoolLit{Value: a == b}, true
	case ast.OpNe:
		return ast.BoolLit{Value: a != b}, true
	default:
		return nil, false
	}
}
