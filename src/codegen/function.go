package codegen

import (
	"fmt"
	"strings"

	"latc/src/ast"
	"latc/src/codegen/context"
)

// genFunction emits the full `define ...` block for one free function or
// method, per spec.md §5's one-function-at-a-time generation model.
func genFunction(ctx *context.Context, f *ast.Function) (string, error) {
	fc := context.NewFuncCtx(ctx, f.Receiver, f.Ret)
	fc.W.Label(fc.W.FreshLabel("entry"))

	paramDecls := make([]string, 0, len(f.Params)+1)
	if f.Receiver != "" {
		cd := ctx.Classes.Class(f.Receiver)
		reg := fc.W.FreshReg()
		paramDecls = append(paramDecls, cd.StructType()+"* "+reg)
		addr := fc.W.Alloca(cd.StructType() + "*")
		fc.W.Store(cd.StructType()+"*", reg, addr)
		fc.Scope.Declare("self", context.VarSlot{Addr: addr, Type: ast.Object(f.Receiver)})
	}
	for _, p := range f.Params {
		llty := ctx.LLType(p.Type)
		reg := fc.W.FreshReg()
		paramDecls = append(paramDecls, llty+" "+reg)
		addr := fc.W.Alloca(llty)
		fc.W.Store(llty, reg, addr)
		fc.Scope.Declare(p.Name, context.VarSlot{Addr: addr, Type: p.Type})
		if p.Type.Kind == ast.KString {
			// Parameters arrive already retained by the caller's argument
			// evaluation; this function's scope now co-owns that reference
			// and must release it on every exit, like any other local.
			fc.Arc.Var(addr)
		}
	}

	for _, s := range f.Body {
		if fc.W.Terminated() {
			break
		}
		if err := genStmt(fc, s); err != nil {
			name := f.Name
			if f.Receiver != "" {
				name = f.Receiver + "." + f.Name
			}
			return "", fmt.Errorf("generating %s: %w", name, err)
		}
	}
	if !fc.W.Terminated() {
		if f.Ret.Kind != ast.KVoid {
			return "", fmt.Errorf("internal: function %q falls off its end without returning", f.Name)
		}
		releaseAll(fc, fc.Arc.AllTemps(), fc.Arc.AllVars())
		fc.W.RetVoid()
	}

	name := "@" + f.Name
	if f.Receiver != "" {
		name = context.MangleMethod(f.Receiver, f.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "define %s %s(%s) {\n", ctx.LLType(f.Ret), name, strings.Join(paramDecls, ", "))
	for _, line := range fc.W.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String(), nil
}
