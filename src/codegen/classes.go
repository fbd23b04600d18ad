package codegen

import (
	"fmt"
	"strings"

	"latc/src/ast"
	"latc/src/codegen/context"
	"latc/src/codegen/irw"
)

// genClassStruct emits the `%class.C = type { ... }` declaration. Field
// slot 0 is always the vtable pointer; BuildRegistry already flattened
// every inherited field into cd.Fields in slot order, so one struct lists
// a class's complete layout without nesting.
func genClassStruct(ctx *context.Context, cd *context.ClassData) string {
	fieldTys := make([]string, 0, len(cd.Fields)+1)
	fieldTys = append(fieldTys, "i8*") // vtable pointer, slot 0
	for _, f := range cd.Fields {
		fieldTys = append(fieldTys, ctx.LLType(f.Type))
	}
	return fmt.Sprintf("%s = type { %s }\n", cd.StructType(), strings.Join(fieldTys, ", "))
}

// genVTableConst emits the class's vtable as a private constant array of
// i8*-bitcast function pointers, in stable slot order (spec.md §4.5/§6).
// A class with no methods at all has no vtable constant; its slot-0 field
// is simply stored as `null` by its constructor.
func genVTableConst(ctx *context.Context, cd *context.ClassData) string {
	if len(cd.VTable.Entries) == 0 {
		return ""
	}
	parts := make([]string, len(cd.VTable.Entries))
	for i, e := range cd.VTable.Entries {
		_, ptrTy := ctx.FuncSigType(e)
		parts[i] = fmt.Sprintf("i8* bitcast (%s %s to i8*)", ptrTy, e.Fn)
	}
	return fmt.Sprintf("%s = private unnamed_addr constant [%d x i8*] [%s]\n",
		vtableConstName(cd.Name), len(parts), strings.Join(parts, ", "))
}

func vtableConstName(class string) string { return "@vtable." + class }

// genConstructor emits the `@._new_C` helper spec.md §4.7 describes: malloc
// the struct, install the vtable pointer, then default-initialize every
// field (inherited fields included, since this layout flattens them rather
// than nesting a superclass sub-struct — see DESIGN.md).
func genConstructor(ctx *context.Context, cd *context.ClassData) string {
	w := irw.New()
	w.Label(w.FreshLabel("entry"))

	size := w.SizeofTrick(cd.StructType())
	obj := w.Malloc(size, cd.StructType())

	vtAddr := w.GetFieldAddr(obj, cd.StructType(), 0)
	if len(cd.VTable.Entries) == 0 {
		w.Store("i8*", "null", vtAddr)
	} else {
		raw := w.Bitcast(vtableConstName(cd.Name), "["+itoaLocal(len(cd.VTable.Entries))+" x i8*]*", "i8*")
		w.Store("i8*", raw, vtAddr)
	}

	for _, f := range cd.Fields {
		addr := w.GetFieldAddr(obj, cd.StructType(), f.Slot)
		switch f.Type.Kind {
		case ast.KInt:
			w.Store(ctx.IntTy, "0", addr)
		case ast.KBool:
			w.Store("i1", "0", addr)
		case ast.KString:
			v := w.Call("%string_t*", "@._alloc_str", nil)
			w.Store("%string_t*", v, addr)
		default:
			w.Store(ctx.LLType(f.Type), "null", addr)
		}
	}
	w.Ret(cd.StructType()+"*", obj)

	var b strings.Builder
	fmt.Fprintf(&b, "define %s* @._new_%s() {\n", cd.StructType(), cd.Name)
	for _, line := range w.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

func itoaLocal(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
