package ast

// Lvalue is the tagged variant of assignable/readable field-paths described
// in spec.md §3. Exactly one of the concrete types below satisfies this
// interface; type-switch on the concrete type to dispatch.
type Lvalue interface {
	lvalueNode()
}

// Direct is a bare identifier reference. A Direct that does not name a
// visible local/parameter, but does name a field or method of the
// enclosing class, stays a Direct in the tree: the type checker (sema's
// checkLvalue/checkCall) and the code generator (selfFieldAddr, genCall)
// each resolve it against the implicit "self" receiver.
type Direct struct {
	Name string
}

// Indirect is `Expr.Field`: a field access (or, when Field == "length" and
// Expr has array type, the synthetic array-length field) on the value
// produced by Expr.
type Indirect struct {
	Expr  Expr
	Field string
}

// Index is `Expr[At]`: an array element access.
type Index struct {
	Expr Expr
	At   Expr
}

func (Direct) lvalueNode()   {}
func (Indirect) lvalueNode() {}
func (Index) lvalueNode()    {}
