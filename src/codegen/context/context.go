// Package context implements the emitter context of spec.md §4.5: the
// string-literal pool, class registry (IDs, field slots, vtables),
// function signature table, and the per-function scope/ARC bookkeeping the
// code generator consults while walking a checked, optimized AST.
package context

import (
	"fmt"

	"latc/internal/targetdesc"
	"latc/src/ast"
	"latc/src/codegen/irw"
	"latc/src/sema"
)

// Context is built once per compilation and shared across every
// function's code generation; its string pool and array-shape table grow as
// literals and array types are encountered.
type Context struct {
	Hierarchy *sema.ClassHierarchy
	Classes   *Registry
	Strings   *StringPool
	Functions map[string]ast.Type // free functions, builtins included (spec.md §C)

	Target targetdesc.Descriptor // the resolved --target, Reference() if none was given
	IntTy  string                // LLType's rendering of Latte's `int`, e.g. "i32" or "i64"

	arrayShapes map[string]ast.Type // populated lazily by ArrayStruct as array types are encountered
}

// New builds the emitter context from a fully checked program, laying out
// int-typed storage according to target (SPEC_FULL.md §A): every Latte
// `int` this Context's LLType renders uses target.IntBits, so a
// non-reference --target changes the width of every int field, parameter,
// and return value the emitter produces. The array struct's length slot
// stays i32 whatever the target.
func New(res *sema.Result, target targetdesc.Descriptor) *Context {
	return &Context{
		Hierarchy: res.Hierarchy,
		Classes:   BuildRegistry(res.Hierarchy),
		Strings:   NewStringPool(),
		Functions: res.Functions,
		Target:    target,
		IntTy:     fmt.Sprintf("i%d", target.IntBits),
	}
}

// DataLayout renders the module-level `target datalayout` string implied
// by c.Target: its endianness code and pointer width, so --target's
// PointerBits actually reaches the emitted IR (LLVM's textual pointer
// syntax "T*" carries no width of its own — datalayout is what fixes it).
func (c *Context) DataLayout() string {
	endian := "e"
	if c.Target.Endianness == "big" {
		endian = "E"
	}
	return fmt.Sprintf("target datalayout = \"%s-p:%d:%d\"\n", endian, c.Target.PointerBits, c.Target.PointerBits)
}

// FuncCtx is the state threaded through one function or method body's code
// generation: its instruction writer, lexical scope, and ARC bookkeeping.
// A FuncCtx is never shared across functions, matching spec.md §5's
// strictly sequential, single-function-at-a-time generation model.
type FuncCtx struct {
	Ctx       *Context
	W         *irw.Writer
	Scope     *Scope
	Arc       *ARC
	SelfClass string   // "" for a free function
	RetType   ast.Type
}

// NewFuncCtx starts code generation for one function.
func NewFuncCtx(ctx *Context, selfClass string, ret ast.Type) *FuncCtx {
	return &FuncCtx{
		Ctx:       ctx,
		W:         irw.New(),
		Scope:     NewScope(),
		Arc:       NewARC(),
		SelfClass: selfClass,
		RetType:   ret,
	}
}

// PushBlock opens a new lexical block: a fresh Scope frame and a fresh ARC
// frame, entered and exited together per spec.md §4.5.
func (fc *FuncCtx) PushBlock() {
	fc.Scope.Push()
	fc.Arc.Push()
}

// PopBlock closes the innermost lexical block and returns the string
// temporaries/variables it tracked, so the caller can emit their releases
// before control leaves the block.
func (fc *FuncCtx) PopBlock() (temps, vars []string) {
	fc.Scope.Pop()
	return fc.Arc.Pop()
}
