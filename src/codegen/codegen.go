// Package codegen is the final pass of the pipeline: it walks a checked,
// optimized *ast.Program and emits one textual LLVM IR module targeting
// the shipped runtime.bc, per spec.md §4.7 and §6.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"latc/internal/targetdesc"
	"latc/src/ast"
	"latc/src/codegen/context"
	"latc/src/sema"
)

const stringTPreamble = "%string_t = type { i32, i8*, i1 }\n\n"

// externDecls renders the runtime.bc function declarations the emitted
// module relies on. malloc's size parameter stays a fixed i32: it is
// runtime-internal byte-count arithmetic (fed by irw.SizeofTrick/Malloc,
// which compute in i32 regardless of target), not a Latte-visible value.
// printInt/readInt's int parameter/return do vary with ctx.IntTy, since
// those pass a user's actual `int` value across the runtime boundary.
func externDecls(ctx *context.Context) string {
	return fmt.Sprintf(`declare i8* @malloc(i32)
declare %%string_t* @._alloc_str()
declare void @._retain_str(%%string_t*)
declare void @._release_str(%%string_t*)
declare %%string_t* @._concatenate(%%string_t*, %%string_t*)
declare void @._init_str_arr({ i32, %%string_t** }*)
declare void @printInt(%s)
declare void @printString(%%string_t*)
declare void @error()
declare %s @readInt()
declare %%string_t* @readString()

`, ctx.IntTy, ctx.IntTy)
}

// Generate emits the complete IR module for prog (the optimized tree) using
// res (the checked program's hierarchy and signature tables — structurally
// unaffected by optimization, since only statement bodies are rewritten)
// and target (SPEC_FULL.md §A's optional --target descriptor, Reference()
// when none was given).
func Generate(res *sema.Result, prog *ast.Program, target targetdesc.Descriptor) (string, error) {
	ctx := context.New(res, target)

	var ctors []string
	for _, name := range ctx.Classes.Order() {
		ctors = append(ctors, genConstructor(ctx, ctx.Classes.Class(name)))
	}

	var funcBodies []string
	for _, f := range prog.Functions {
		body, err := genFunction(ctx, f)
		if err != nil {
			return "", err
		}
		funcBodies = append(funcBodies, body)
	}

	var methodBodies []string
	for _, c := range prog.Classes {
		for _, m := range c.Methods {
			body, err := genFunction(ctx, m)
			if err != nil {
				return "", err
			}
			methodBodies = append(methodBodies, body)
		}
	}

	var b strings.Builder
	b.WriteString(ctx.DataLayout())
	b.WriteString(stringTPreamble)

	for _, name := range sortedArrayShapeNames(ctx) {
		b.WriteString(genArrayStruct(name, ctx.ArrayShapes()[name], ctx))
	}
	for _, name := range ctx.Classes.Order() {
		b.WriteString(genClassStruct(ctx, ctx.Classes.Class(name)))
	}
	b.WriteByte('\n')
	b.WriteString(externDecls(ctx))

	for id, s := range ctx.Strings.Entries() {
		b.WriteString(genStringConst(id, s))
	}
	if len(ctx.Strings.Entries()) > 0 {
		b.WriteByte('\n')
	}

	for _, name := range ctx.Classes.Order() {
		if v := genVTableConst(ctx, ctx.Classes.Class(name)); v != "" {
			b.WriteString(v)
		}
	}
	b.WriteByte('\n')

	for _, c := range ctors {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	for _, f := range funcBodies {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	for _, m := range methodBodies {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func sortedArrayShapeNames(ctx *context.Context) []string {
	shapes := ctx.ArrayShapes()
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func genArrayStruct(name string, elem ast.Type, ctx *context.Context) string {
	return fmt.Sprintf("%s = type { i32, %s* }\n", name, ctx.ElemLLType(elem))
}

func genStringConst(id int, s string) string {
	escaped, size := context.HexEscape(s)
	raw := context.ConstName(id)
	obj := context.ObjConstName(id)
	return fmt.Sprintf(
		"%s = private unnamed_addr constant [%d x i8] c\"%s\"\n"+
			"%s = private unnamed_addr constant %%string_t { i32 0, i8* getelementptr inbounds ([%d x i8], [%d x i8]* %s, i32 0, i32 0), i1 1 }\n",
		raw, size, escaped, obj, size, size, raw)
}
