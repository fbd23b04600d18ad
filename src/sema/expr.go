package sema

import "latc/src/ast"

// checkExpr type-checks an expression against spec.md §4.2.4 and returns
// its static type.
func (c *checker) checkExpr(e ast.Expr, env *scope) (ast.Type, error) {
	switch n := e.(type) {
	case ast.Read:
		return c.checkLvalue(n.LV, env)

	case ast.IntLit:
		return ast.Int(), nil
	case ast.BoolLit:
		return ast.Bool(), nil
	case ast.StringLit:
		return ast.Str(), nil

	case ast.NullLit:
		if n.Hint != nil {
			return *n.Hint, nil
		}
		return ast.NullT(), nil

	case ast.Call:
		return c.checkCall(n, env)

	case ast.Neg:
		t, err := c.checkExpr(n.X, env)
		if err != nil {
			return ast.Type{}, err
		}
		if t.Kind != ast.KInt {
			return ast.Type{}, newTypeError(InvalidType, "unary - requires int, got %s", t)
		}
		return ast.Int(), nil

	case ast.Not:
		t, err := c.checkExpr(n.X, env)
		if err != nil {
			return ast.Type{}, err
		}
		if t.Kind != ast.KBool {
			return ast.Type{}, newTypeError(InvalidType, "unary ! requires boolean, got %s", t)
		}
		return ast.Bool(), nil

	case ast.Binary:
		return c.checkBinary(n, env)

	case ast.NewObject:
		if c.classes[n.Class] == nil {
			return ast.Type{}, newTypeError(InexistentType, "undefined class %q in new expression", n.Class)
		}
		return ast.Object(n.Class), nil

	case ast.NewArray:
		sizeT, err := c.checkExpr(n.Size, env)
		if err != nil {
			return ast.Type{}, err
		}
		if sizeT.Kind != ast.KInt {
			return ast.Type{}, newTypeError(InvalidType, "array size must be int, got %s", sizeT)
		}
		if n.Elem.Kind == ast.KArray {
			return ast.Type{}, newTypeError(NonDeclarableType, "arrays are one-dimensional: element type %s is itself an array", n.Elem)
		}
		if !declarable(n.Elem) {
			return ast.Type{}, newTypeError(NonDeclarableType, "array element type %s is not declarable", n.Elem)
		}
		if n.Elem.IsObject() && c.classes[n.Elem.Class] == nil {
			return ast.Type{}, newTypeError(InexistentType, "undefined class %q in array element type", n.Elem.Class)
		}
		return ast.Array(n.Elem), nil

	default:
		return ast.Type{}, newTypeError(InvalidType, "unsupported expression node %T", n)
	}
}

func (c *checker) checkBinary(n ast.Binary, env *scope) (ast.Type, error) {
	lt, err := c.checkExpr(n.LHS, env)
	if err != nil {
		return ast.Type{}, err
	}
	rt, err := c.checkExpr(n.RHS, env)
	if err != nil {
		return ast.Type{}, err
	}

	switch {
	case n.Op == ast.OpAdd:
		if lt.Kind == ast.KInt && rt.Kind == ast.KInt {
			return ast.Int(), nil
		}
		if lt.Kind == ast.KString && rt.Kind == ast.KString {
			return ast.Str(), nil
		}
		return ast.Type{}, newTypeError(NoOperator, "no operator %s for operand types %s and %s", n.Op, lt, rt)

	case n.Op.IsArithmeticOnly():
		if lt.Kind == ast.KInt && rt.Kind == ast.KInt {
			return ast.Int(), nil
		}
		return ast.Type{}, newTypeError(NoOperator, "no operator %s for operand types %s and %s", n.Op, lt, rt)

	case n.Op.IsRelational():
		if lt.Kind == ast.KInt && rt.Kind == ast.KInt {
			return ast.Bool(), nil
		}
		return ast.Type{}, newTypeError(NoOperator, "no operator %s for operand types %s and %s", n.Op, lt, rt)

	case n.Op.IsEquality():
		if !c.comparable(lt, rt) {
			return ast.Type{}, newTypeError(NoOperator, "no operator %s for operand types %s and %s", n.Op, lt, rt)
		}
		return ast.Bool(), nil

	case n.Op.IsLogical():
		if lt.Kind == ast.KBool && rt.Kind == ast.KBool {
			return ast.Bool(), nil
		}
		return ast.Type{}, newTypeError(NoOperator, "no operator %s for operand types %s and %s", n.Op, lt, rt)

	default:
		return ast.Type{}, newTypeError(NoOperator, "unknown operator %s", n.Op)
	}
}

// comparable implements the `==`/`!=` operand-compatibility rule of
// spec.md §4.2.4.
func (c *checker) comparable(a, b ast.Type) bool {
	switch {
	case a.Kind == ast.KInt && b.Kind == ast.KInt:
		return true
	case a.Kind == ast.KBool && b.Kind == ast.KBool:
		return true
	case a.Kind == ast.KString && b.Kind == ast.KString:
		return true
	case a.Kind == ast.KNull && b.Kind == ast.KNull:
		return true
	case a.IsObject() && b.IsObject():
		return c.hierarchy.IsSubclass(a.Class, b.Class) || c.hierarchy.IsSubclass(b.Class, a.Class)
	case a.Kind == ast.KNull && (b.IsObject() || b.IsArray()):
		return true
	case b.Kind == ast.KNull && (a.IsObject() || a.IsArray()):
		return true
	default:
		return false
	}
}

// checkCall resolves the callee of n to a function type and validates
// argument count/types against it, per spec.md §4.2.4.
func (c *checker) checkCall(n ast.Call, env *scope) (ast.Type, error) {
	var ft ast.Type
	switch callee := n.Callee.(type) {
	case ast.Direct:
		if t, ok := c.functions[callee.Name]; ok {
			ft = t
			break
		}
		if c.selfClass != "" {
			if ci := c.classes[c.selfClass]; ci != nil {
				if m, ok := ci.methods[callee.Name]; ok {
					ft = m.Declared()
					break
				}
			}
		}
		return ast.Type{}, newTypeError(NotAFunction, "%q is not a function", callee.Name)

	case ast.Indirect:
		recvT, err := c.checkExpr(callee.Expr, env)
		if err != nil {
			return ast.Type{}, err
		}
		if !recvT.IsObject() {
			return ast.Type{}, newTypeError(NotAnObject, "method call on non-object type %s", recvT)
		}
		ci := c.classes[recvT.Class]
		if ci == nil {
			return ast.Type{}, newTypeError(InexistentType, "undefined class %q", recvT.Class)
		}
		m, ok := ci.methods[callee.Field]
		if !ok {
			return ast.Type{}, newTypeError(NotAFunction, "class %q has no method %q", recvT.Class, callee.Field)
		}
		ft = m.Declared()

	default:
		return ast.Type{}, newTypeError(NotAFunction, "expression is not callable")
	}

	if len(n.Args) != len(ft.Params) {
		return ast.Type{}, newTypeError(InvalidCallArity, "expected %d argument(s), got %d", len(ft.Params), len(n.Args))
	}
	for i, arg := range n.Args {
		at, err := c.checkExpr(arg, env)
		if err != nil {
			return ast.Type{}, err
		}
		if !c.assignable(at, ft.Params[i]) {
			return ast.Type{}, newTypeError(InvalidCallArgType, "argument %d: expected %s, got %s", i+1, ft.Params[i], at)
		}
	}
	return *ft.Ret, nil
}

// checkLvalue resolves an Lvalue to its static type, applying the
// implicit-self resolution rule of spec.md §3: a Direct identifier that is
// not a visible local/parameter but is a field of the enclosing class
// behaves as `self.ident`.
func (c *checker) checkLvalue(lv ast.Lvalue, env *scope) (ast.Type, error) {
	switch n := lv.(type) {
	case ast.Direct:
		if t, ok := env.lookup(n.Name); ok {
			return t, nil
		}
		if c.selfClass != "" {
			if ci := c.classes[c.selfClass]; ci != nil {
				if t, ok := ci.fields[n.Name]; ok {
					return t, nil
				}
			}
		}
		return ast.Type{}, newTypeError(Undefined, "undefined identifier %q", n.Name)

	case ast.Indirect:
		recvT, err := c.checkExpr(n.Expr, env)
		if err != nil {
			return ast.Type{}, err
		}
		if recvT.IsArray() {
			if n.Field == "length" {
				return ast.Int(), nil
			}
			return ast.Type{}, newTypeError(Undefined, "array has no field %q", n.Field)
		}
		if !recvT.IsObject() {
			return ast.Type{}, newTypeError(NotAnObject, "field access on non-object type %s", recvT)
		}
		ci := c.classes[recvT.Class]
		if ci == nil {
			return ast.Type{}, newTypeError(InexistentType, "undefined class %q", recvT.Class)
		}
		if t, ok := ci.fields[n.Field]; ok {
			return t, nil
		}
		if _, ok := ci.methods[n.Field]; ok {
			return ast.Type{}, newTypeError(NotAFunction, "%q is a method; call it with ()", n.Field)
		}
		return ast.Type{}, newTypeError(Undefined, "class %q has no field %q", recvT.Class, n.Field)

	case ast.Index:
		arrT, err := c.checkExpr(n.Expr, env)
		if err != nil {
			return ast.Type{}, err
		}
		if !arrT.IsArray() {
			return ast.Type{}, newTypeError(NotAnObject, "index access on non-array type %s", arrT)
		}
		idxT, err := c.checkExpr(n.At, env)
		if err != nil {
			return ast.Type{}, err
		}
		if idxT.Kind != ast.KInt {
			return ast.Type{}, newTypeError(InvalidType, "array index must be int, got %s", idxT)
		}
		return *arrT.Elem, nil

	default:
		return ast.Type{}, newTypeError(InvalidType, "unsupported lvalue node %T", n)
	}
}

// assignable implements spec.md §4.2's assignability relation: identical
// types, Null to any object/array type, or Object(Sub) to Object(Super)
// when Sub transitively extends Super.
func (c *checker) assignable(from, to ast.Type) bool {
	if from.Equal(to) {
		return true
	}
	if from.Kind == ast.KNull && (to.IsObject() || to.IsArray()) {
		return true
	}
	if from.IsObject() && to.IsObject() {
		return c.hierarchy.IsSubclass(from.Class, to.Class)
	}
	return false
}
