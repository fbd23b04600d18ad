package ast

// Expr is the tagged variant of expressions described in spec.md §3.
type Expr interface {
	exprNode()
}

// Read evaluates an Lvalue as an expression (a "read" per spec.md §3).
type Read struct {
	LV Lvalue
}

// IntLit is a literal `int` constant.
type IntLit struct {
	Value int32
}

// BoolLit is a literal `true`/`false` constant.
type BoolLit struct {
	Value bool
}

// StringLit is a literal `"..."` constant.
type StringLit struct {
	Value string
}

// NullLit is the `null` literal. Hint carries the optional `(ClassName)
// null` cast syntax noted in spec.md §6's grammar sketch (SPEC_FULL.md §C);
// it is nil when the source omitted the cast, in which case the type
// checker infers plain Null and relies on the assignability rule.
type NullLit struct {
	Hint *Type
}

// Call invokes the function or method resolved by Callee with Args. Free
// functions are named directly; method calls use an Indirect lvalue whose
// Expr is the receiver (e.g. `recv.m(args)` parses as Call{Callee:
// Indirect{recv, "m"}}).
type Call struct {
	Callee Lvalue
	Args   []Expr
}

// Neg is unary `-e`.
type Neg struct {
	X Expr
}

// Not is unary `!e`.
type Not struct {
	X Expr
}

// Binary is `lhs op rhs` for any Op.
type Binary struct {
	Op  Op
	LHS Expr
	RHS Expr
}

// NewObject is `new ClassName`.
type NewObject struct {
	Class string
}

// NewArray is `new ElemType[Size]`.
type NewArray struct {
	Elem Type
	Size Expr
}

func (Read) exprNode()      {}
func (IntLit) exprNode()    {}
func (BoolLit) exprNode()   {}
func (StringLit) exprNode() {}
func (NullLit) exprNode()   {}
func (Call) exprNode()      {}
func (Neg) exprNode()       {}
func (Not) exprNode()       {}
func (Binary) exprNode()    {}
func (NewObject) exprNode() {}
func (NewArray) exprNode()  {}
