// Package sema implements the static-analysis passes the Latte backend
// relies on: class-hierarchy well-formedness (spec.md §4.1), type checking
// with LSP-style subtyping (§4.2), and return-path analysis (§4.3).
package sema

import (
	"fmt"
	"strings"

	"latc/src/util"
)

// HierarchyErrorKind enumerates the class-hierarchy failure categories of
// spec.md §7.
type HierarchyErrorKind int

const (
	DuplicateClass HierarchyErrorKind = iota
	UndefinedSuperclass
	InheritanceCycle
)

// HierarchyError reports a class-hierarchy well-formedness failure naming
// the offending class.
type HierarchyError struct {
	Kind  HierarchyErrorKind
	Class string
}

func (e *HierarchyError) Error() string {
	switch e.Kind {
	case DuplicateClass:
		return fmt.Sprintf("DuplicateClass: class %q is declared more than once", e.Class)
	case UndefinedSuperclass:
		return fmt.Sprintf("UndefinedSuperclass: class %q extends an undeclared class", e.Class)
	case InheritanceCycle:
		return fmt.Sprintf("InheritanceCycle: class %q participates in an inheritance cycle", e.Class)
	default:
		return fmt.Sprintf("HierarchyError(%d): %s", e.Kind, e.Class)
	}
}

// TypeErrorKind enumerates the type-checker failure categories of
// spec.md §7.
type TypeErrorKind int

const (
	Undefined TypeErrorKind = iota
	AlreadyDefined
	InvalidType
	InvalidMainType
	NoMain
	NotAFunction
	InvalidCallArity
	InvalidCallArgType
	NoOperator
	NonDeclarableType
	InexistentType
	NotAnObject
	VarOverride
	InvalidOverride
	FieldAlreadyDefined
	NameAlreadyDefined
)

// TypeError is a structured diagnostic carrying its category plus a stack
// of enclosing-construct descriptions (class, function signature, specific
// statement/expression) recorded as the error bubbles out of the checker's
// recursion, per spec.md §7. It never carries a source position: spec.md §1
// lists source-location-preserving messages as a Non-goal.
type TypeError struct {
	Kind    TypeErrorKind
	Message string
	ctx     util.Stack[string]
}

// newTypeError constructs a fresh TypeError with no context frames yet.
func newTypeError(kind TypeErrorKind, format string, args ...any) *TypeError {
	return &TypeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap appends an enclosing-construct description to err's context stack
// and returns err so call sites can write `return nil, err.Wrap("...")`.
func (e *TypeError) Wrap(desc string) *TypeError {
	e.ctx.Push(desc)
	return e
}

func (e *TypeError) Error() string {
	var sb strings.Builder
	sb.WriteString(kindName(e.Kind))
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	frames := e.ctx.Slice()
	for i := len(frames) - 1; i >= 0; i-- {
		sb.WriteString("\n  in ")
		sb.WriteString(frames[i])
	}
	return sb.String()
}

func kindName(k TypeErrorKind) string {
	switch k {
	case Undefined:
		return "Undefined"
	case AlreadyDefined:
		return "AlreadyDefined"
	case InvalidType:
		return "InvalidType"
	case InvalidMainType:
		return "InvalidMainType"
	case NoMain:
		return "NoMain"
	case NotAFunction:
		return "NotAFunction"
	case InvalidCallArity:
		return "InvalidCallArity"
	case InvalidCallArgType:
		return "InvalidCallArgType"
	case NoOperator:
		return "NoOperator"
	case NonDeclarableType:
		return "NonDeclarableType"
	case InexistentType:
		return "InexistentType"
	case NotAnObject:
		return "NotAnObject"
	case VarOverride:
		return "VarOverride"
	case InvalidOverride:
		return "InvalidOverride"
	case FieldAlreadyDefined:
		return "FieldAlreadyDefined"
	case NameAlreadyDefined:
		return "NameAlreadyDefined"
	default:
		return "TypeError"
	}
}

// ReturnError reports that a function or method body does not return on
// every control path (spec.md §4.3).
type ReturnError struct {
	Where string // function name, or "Class.method"
}

func (e *ReturnError) Error() string {
	return fmt.Sprintf("MissingReturn: %s does not return on every path", e.Where)
}
