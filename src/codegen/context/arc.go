package context

import "latc/src/util"

// arcFrame tracks the string-valued temporaries and variables introduced
// within one lexical scope, per spec.md §4.5's ARC design: "temporaries"
// are expression results awaiting release once consumed, "variables" are
// stack slots whose current value is a string and must be released when
// reassigned or when the scope holding them exits.
type arcFrame struct {
	Temps []string // registers holding string_t* values produced by expression evaluation
	Vars  []string // alloca addresses of string-typed locals declared in this scope
}

// ARC is the per-function reference-count bookkeeping stack, one frame per
// lexical scope, mirroring Scope's push/pop so a block's ARC obligations
// are discharged exactly when its bindings go out of scope.
type ARC struct {
	frames util.Stack[*arcFrame]
}

// NewARC returns an ARC with its outermost frame already pushed.
func NewARC() *ARC {
	a := &ARC{}
	a.Push()
	return a
}

// Push opens a new scope's ARC frame.
func (a *ARC) Push() { a.frames.Push(&arcFrame{}) }

// Pop closes the innermost scope's ARC frame and returns it so the caller
// can emit release calls for everything it tracked.
func (a *ARC) Pop() (temps, vars []string) {
	f, _ := a.frames.Pop()
	return f.Temps, f.Vars
}

// Temp records reg as a not-yet-released string_t* temporary of the
// innermost scope.
func (a *ARC) Temp(reg string) {
	top, _ := a.frames.Peek()
	top.Temps = append(top.Temps, reg)
}

// Var records addr as a string-typed local of the innermost scope.
func (a *ARC) Var(addr string) {
	top, _ := a.frames.Peek()
	top.Vars = append(top.Vars, addr)
}

// AllVars returns every tracked string-variable address across every live
// scope, outermost first: used when emitting the releases a `return`
// statement must perform for the whole function, not just its own block
// (spec.md §4.5: "on return the full lists are released").
func (a *ARC) AllVars() []string {
	var out []string
	for _, f := range a.frames.Slice() {
		out = append(out, f.Vars...)
	}
	return out
}

// AllTemps returns every still-pending temporary across every live scope,
// outermost first, for the same whole-function release a `return` needs.
func (a *ARC) AllTemps() []string {
	var out []string
	for _, f := range a.frames.Slice() {
		out = append(out, f.Temps...)
	}
	return out
}
