package context

import (
	"latc/src/ast"
	"latc/src/util"
)

// VarSlot is the codegen-time binding of a source identifier: the alloca
// address holding its value and its static type.
type VarSlot struct {
	Addr string
	Type ast.Type
}

// Scope is the per-function lexical stack of spec.md §4.5: a stack of
// identifier->(stack-slot, type) frames. Entering a block pushes a frame;
// leaving it pops back to the enclosing frame, exactly mirroring the type
// checker's own scope stack (src/sema/typecheck.go) but carrying emitted
// addresses instead of bare types.
type Scope struct {
	frames util.Stack[map[string]VarSlot]
}

// NewScope returns a scope with its outermost (function parameter) frame
// already pushed.
func NewScope() *Scope {
	s := &Scope{}
	s.Push()
	return s
}

// Push opens a new lexical block.
func (s *Scope) Push() { s.frames.Push(map[string]VarSlot{}) }

// Pop closes the innermost lexical block, discarding its bindings.
func (s *Scope) Pop() { s.frames.Pop() }

// Declare binds name in the innermost frame. Shadowing an outer frame's
// binding of the same name is allowed (each source block has its own
// namespace); the type checker already rejects redeclaration within one
// frame, so Declare does not repeat that check.
func (s *Scope) Declare(name string, slot VarSlot) {
	top, _ := s.frames.Peek()
	top[name] = slot
}

// Lookup searches frames innermost-first.
func (s *Scope) Lookup(name string) (VarSlot, bool) {
	frames := s.frames.Slice()
	for i := len(frames) - 1; i >= 0; i-- {
		if v, ok := frames[i][name]; ok {
			return v, true
		}
	}
	return VarSlot{}, false
}
