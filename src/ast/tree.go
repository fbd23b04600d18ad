package ast

// Program is the ordered sequence of top-level definitions of a Latte
// source file.
type Program struct {
	Classes   []*Class
	Functions []*Function
}

// Field is a single typed class member.
type Field struct {
	Name string
	Type Type
}

// Param is a single typed function/method parameter.
type Param struct {
	Name string
	Type Type
}

// Class describes a single `class Name [extends Base] { ... }` definition.
type Class struct {
	Name       string
	Super      string // empty when the class has no explicit superclass
	Fields     []Field
	Methods    []*Function
}

// Function is shared between free functions and class methods. Methods
// additionally carry the name of their enclosing class in Receiver; free
// functions leave Receiver empty. The implicit receiver parameter named
// "self" of type Object(Receiver) is not stored in Params — it is
// synthesized by the type checker and code generator when Receiver != "".
type Function struct {
	Name     string
	Receiver string
	Params   []Param
	Ret      Type
	Body     []Stmt
}

// FunctionType returns the static function type of f, including the
// synthesized receiver parameter for methods. This is the type of the
// emitted LLVM function (and of a vtable entry); it is never used for
// override-compatibility checks, since the receiver legitimately differs
// between a class and its subclasses.
func (f *Function) FunctionType() Type {
	params := make([]Type, 0, len(f.Params)+1)
	if f.Receiver != "" {
		params = append(params, Object(f.Receiver))
	}
	for _, p := range f.Params {
		params = append(params, p.Type)
	}
	return Func(params, f.Ret)
}

// Declared returns f's source-level type: its declared parameters and
// return type, excluding any implicit receiver. Two methods override
// compatibly iff their Declared types are Equal (spec.md §4.2 invariant 2).
func (f *Function) Declared() Type {
	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return Func(params, f.Ret)
}

// ---------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------

type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?op?"
	}
}

// IsRelational reports whether o produces a Bool from two Int operands.
func (o Op) IsRelational() bool {
	switch o {
	case OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// IsEquality reports whether o is == or !=.
func (o Op) IsEquality() bool { return o == OpEq || o == OpNe }

// IsLogical reports whether o is && or ||.
func (o Op) IsLogical() bool { return o == OpAnd || o == OpOr }

// IsArithmeticOnly reports whether o requires two Ints and is not usable on
// strings (i.e. everything except OpAdd, which is polymorphic).
func (o Op) IsArithmeticOnly() bool {
	switch o {
	case OpSub, OpMul, OpDiv, OpMod:
		return true
	default:
		return false
	}
}
