package codegen

import (
	"fmt"
	"strconv"

	"latc/src/ast"
	"latc/src/codegen/context"
	"latc/src/codegen/irw"
)

// genCall dispatches a Call to either a direct free-function call, an
// implicit-self method call, or an explicit-receiver method call, per
// spec.md §4.7.
func genCall(fc *context.FuncCtx, n ast.Call) (string, ast.Type, error) {
	switch callee := n.Callee.(type) {
	case ast.Direct:
		if fnType, ok := fc.Ctx.Functions[callee.Name]; ok {
			return genFreeCall(fc, callee.Name, fnType, n.Args)
		}
		selfSlot, ok := fc.Scope.Lookup("self")
		if !ok {
			return "", ast.Type{}, fmt.Errorf("internal: call to undeclared function %q", callee.Name)
		}
		cd := fc.Ctx.Classes.Class(fc.SelfClass)
		selfVal := fc.W.Load(cd.StructType()+"*", selfSlot.Addr)
		return genMethodCallOn(fc, fc.SelfClass, selfVal, callee.Name, n.Args)

	case ast.Indirect:
		recv, recvType, err := genExpr(fc, callee.Expr)
		if err != nil {
			return "", ast.Type{}, err
		}
		return genMethodCallOn(fc, recvType.Class, recv, callee.Field, n.Args)

	default:
		return "", ast.Type{}, fmt.Errorf("internal: unhandled call target %T", n.Callee)
	}
}

func genFreeCall(fc *context.FuncCtx, name string, fnType ast.Type, argExprs []ast.Expr) (string, ast.Type, error) {
	args := make([]irw.Arg, len(argExprs))
	for i, a := range argExprs {
		val, t, err := genExpr(fc, a)
		if err != nil {
			return "", ast.Type{}, err
		}
		declared := fnType.Params[i]
		val = coerce(fc, val, t, declared)
		if declared.Kind == ast.KString {
			retainStr(fc, val)
		}
		args[i] = irw.Arg{Ty: fc.Ctx.LLType(declared), Val: val}
	}
	retTy := fc.Ctx.LLType(*fnType.Ret)
	res := fc.W.Call(retTy, "@"+name, args)
	if fnType.Ret.Kind == ast.KString {
		fc.Arc.Temp(res)
	}
	return res, *fnType.Ret, nil
}

// genMethodCallOn emits the vtable load, function-pointer bitcast, and
// indirect call of spec.md §4.7's dispatch algorithm: the vtable consulted
// is staticClass's (the call-site's static receiver type), but the
// concrete implementation's receiver parameter is typed as whichever
// ancestor actually owns the slot, so recv is bitcast up to that type
// before the call when the two differ.
func genMethodCallOn(fc *context.FuncCtx, staticClass, recv, method string, argExprs []ast.Expr) (string, ast.Type, error) {
	cd := fc.Ctx.Classes.Class(staticClass)
	entry, slot, ok := cd.VTable.SlotOf(method)
	if !ok {
		return "", ast.Type{}, fmt.Errorf("internal: class %q has no method %q", staticClass, method)
	}

	vtablePtrAddr := fc.W.GetFieldAddr(recv, cd.StructType(), 0)
	vtablePtr := fc.W.Load("i8*", vtablePtrAddr)
	vtableArr := fc.W.Bitcast(vtablePtr, "i8*", "i8**")
	entryAddr := fc.W.GetElementAddr(vtableArr, "i8*", strconv.Itoa(slot))
	rawFn := fc.W.Load("i8*", entryAddr)

	sigTy, ptrTy := fc.Ctx.FuncSigType(entry)
	fnPtr := fc.W.Bitcast(rawFn, "i8*", ptrTy)

	ownerCd := fc.Ctx.Classes.Class(entry.Owner)
	recvForCall := recv
	if entry.Owner != staticClass {
		recvForCall = fc.W.BitcastObject(recv, cd.StructType(), ownerCd.StructType())
	}

	args := make([]irw.Arg, 0, len(argExprs)+1)
	args = append(args, irw.Arg{Ty: ownerCd.StructType() + "*", Val: recvForCall})
	for i, a := range argExprs {
		val, t, err := genExpr(fc, a)
		if err != nil {
			return "", ast.Type{}, err
		}
		declared := entry.Declared.Params[i]
		val = coerce(fc, val, t, declared)
		if declared.Kind == ast.KString {
			retainStr(fc, val)
		}
		args = append(args, irw.Arg{Ty: fc.Ctx.LLType(declared), Val: val})
	}

	retTy := fc.Ctx.LLType(*entry.Declared.Ret)
	res := fc.W.CallIndirect(retTy, sigTy, fnPtr, args)
	if entry.Declared.Ret.Kind == ast.KString {
		fc.Arc.Temp(res)
	}
	return res, *entry.Declared.Ret, nil
}
