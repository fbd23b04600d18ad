package codegen

import (
	"fmt"

	"latc/src/ast"
	"latc/src/codegen/context"
)

// lvalueAddr resolves lv to its storage address and static type, per
// spec.md §4.7's lvalue-resolution algorithm.
func lvalueAddr(fc *context.FuncCtx, lv ast.Lvalue) (addr string, t ast.Type, err error) {
	switch n := lv.(type) {
	case ast.Direct:
		if slot, ok := fc.Scope.Lookup(n.Name); ok {
			return slot.Addr, slot.Type, nil
		}
		return selfFieldAddr(fc, n.Name)

	case ast.Indirect:
		recv, recvType, err := genExpr(fc, n.Expr)
		if err != nil {
			return "", ast.Type{}, err
		}
		if recvType.IsArray() && n.Field == "length" {
			// The struct field itself is a fixed i32 (genArrayStruct/
			// runtime.bc's shared array header layout), independent of
			// ctx.IntTy. .length is read-only in Latte, so the only
			// consumer of this address is a Load; stash the
			// width-reconciled value behind a scratch alloca of the right
			// type so every generic caller (genExpr's Read case) gets an
			// address it can load at ctx.IntTy width with no special
			// casing of its own.
			arrStruct := fc.Ctx.ArrayStruct(*recvType.Elem)
			raw := fc.W.Load("i32", fc.W.GetFieldAddr(recv, arrStruct, 0))
			widened := fc.W.IntCast(raw, "i32", fc.Ctx.IntTy)
			scratch := fc.W.Alloca(fc.Ctx.IntTy)
			fc.W.Store(fc.Ctx.IntTy, widened, scratch)
			return scratch, ast.Int(), nil
		}
		if !recvType.IsObject() {
			return "", ast.Type{}, fmt.Errorf("internal: field access %q on non-object type %s", n.Field, recvType)
		}
		cd := fc.Ctx.Classes.Class(recvType.Class)
		fs, ok := cd.Field(n.Field)
		if !ok {
			return "", ast.Type{}, fmt.Errorf("internal: class %q has no field %q", recvType.Class, n.Field)
		}
		// Field slots are stable across the whole hierarchy (BuildRegistry
		// copies inherited slots down rather than nesting structs), so no
		// bitcast to the declaring ancestor's pointer type is needed here:
		// cd's own struct already places the field at the same slot.
		return fc.W.GetFieldAddr(recv, cd.StructType(), fs.Slot), fs.Type, nil

	case ast.Index:
		arr, arrType, err := genExpr(fc, n.Expr)
		if err != nil {
			return "", ast.Type{}, err
		}
		elemTy := *arrType.Elem
		arrStruct := fc.Ctx.ArrayStruct(elemTy)
		elemLL := fc.Ctx.ElemLLType(elemTy)
		dataFieldAddr := fc.W.GetFieldAddr(arr, arrStruct, 1)
		dataPtr := fc.W.Load(elemLL+"*", dataFieldAddr)
		idx, _, err := genExpr(fc, n.At)
		if err != nil {
			return "", ast.Type{}, err
		}
		return fc.W.GetElementAddr(dataPtr, elemLL, idx), elemTy, nil

	default:
		return "", ast.Type{}, fmt.Errorf("internal: unhandled lvalue %T", lv)
	}
}

// selfFieldAddr resolves a bare identifier that named no visible local to
// an implicit `self.name` field access.
func selfFieldAddr(fc *context.FuncCtx, name string) (string, ast.Type, error) {
	if fc.SelfClass == "" {
		return "", ast.Type{}, fmt.Errorf("internal: undeclared identifier %q outside a method", name)
	}
	cd := fc.Ctx.Classes.Class(fc.SelfClass)
	fs, ok := cd.Field(name)
	if !ok {
		return "", ast.Type{}, fmt.Errorf("internal: class %q has no field %q", fc.SelfClass, name)
	}
	selfSlot, ok := fc.Scope.Lookup("self")
	if !ok {
		return "", ast.Type{}, fmt.Errorf("internal: method body has no self binding")
	}
	selfVal := fc.W.Load(cd.StructType()+"*", selfSlot.Addr)
	return fc.W.GetFieldAddr(selfVal, cd.StructType(), fs.Slot), fs.Type, nil
}
