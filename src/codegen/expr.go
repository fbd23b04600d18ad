package codegen

import (
	"fmt"
	"strconv"

	"latc/src/ast"
	"latc/src/codegen/context"
	"latc/src/codegen/irw"
)

// genExpr emits the instructions computing e and returns its runtime value
// together with its static type, per spec.md §4.7's expression-emission
// algorithm.
func genExpr(fc *context.FuncCtx, e ast.Expr) (string, ast.Type, error) {
	switch n := e.(type) {
	case ast.Read:
		addr, t, err := lvalueAddr(fc, n.LV)
		if err != nil {
			return "", ast.Type{}, err
		}
		v := fc.W.Load(fc.Ctx.LLType(t), addr)
		if t.Kind == ast.KString {
			retainStr(fc, v)
			fc.Arc.Temp(v)
		}
		return v, t, nil

	case ast.IntLit:
		return strconv.Itoa(int(n.Value)), ast.Int(), nil

	case ast.BoolLit:
		if n.Value {
			return "1", ast.Bool(), nil
		}
		return "0", ast.Bool(), nil

	case ast.StringLit:
		name := fc.Ctx.Strings.InternConst(n.Value)
		return name, ast.Str(), nil

	case ast.NullLit:
		if n.Hint != nil {
			return "null", *n.Hint, nil
		}
		return "null", ast.NullT(), nil

	case ast.Call:
		return genCall(fc, n)

	case ast.Neg:
		x, _, err := genExpr(fc, n.X)
		if err != nil {
			return "", ast.Type{}, err
		}
		return fc.W.Neg(fc.Ctx.IntTy, x), ast.Int(), nil

	case ast.Not:
		x, _, err := genExpr(fc, n.X)
		if err != nil {
			return "", ast.Type{}, err
		}
		return fc.W.Not(x), ast.Bool(), nil

	case ast.Binary:
		return genBinary(fc, n)

	case ast.NewObject:
		cd := fc.Ctx.Classes.Class(n.Class)
		v := fc.W.Call(cd.StructType()+"*", "@._new_"+n.Class, nil)
		return v, ast.Object(n.Class), nil

	case ast.NewArray:
		return genNewArray(fc, n)

	default:
		return "", ast.Type{}, fmt.Errorf("internal: unhandled expression %T", e)
	}
}

// genBinary handles every Binary operator except the short-circuit forms,
// which genShortCircuit owns.
func genBinary(fc *context.FuncCtx, n ast.Binary) (string, ast.Type, error) {
	if n.Op == ast.OpAnd || n.Op == ast.OpOr {
		return genShortCircuit(fc, n)
	}

	l, lt, err := genExpr(fc, n.LHS)
	if err != nil {
		return "", ast.Type{}, err
	}
	r, rt, err := genExpr(fc, n.RHS)
	if err != nil {
		return "", ast.Type{}, err
	}

	if n.Op.IsEquality() {
		return genEquality(fc, n.Op, l, lt, r, rt)
	}
	if n.Op == ast.OpAdd && lt.Kind == ast.KString {
		v := fc.W.Call("%string_t*", "@._concatenate", []irw.Arg{
			{Ty: "%string_t*", Val: l},
			{Ty: "%string_t*", Val: r},
		})
		fc.Arc.Temp(v)
		return v, ast.Str(), nil
	}

	v := fc.W.IntOp(fc.Ctx.IntTy, l, n.Op.String(), r)
	if n.Op.IsRelational() {
		return v, ast.Bool(), nil
	}
	return v, ast.Int(), nil
}

// genEquality implements spec.md §4.7's equality rules: Null-Null is a
// trivial constant, a Null compared against a typed operand drives the
// comparison off the typed side, and two related Object types compare
// after bitcasting the narrower side up to the wider.
func genEquality(fc *context.FuncCtx, op ast.Op, l string, lt ast.Type, r string, rt ast.Type) (string, ast.Type, error) {
	if lt.Kind == ast.KNull && rt.Kind == ast.KNull {
		if op == ast.OpEq {
			return "1", ast.Bool(), nil
		}
		return "0", ast.Bool(), nil
	}
	if lt.Kind == ast.KNull {
		v := fc.W.IntOp(fc.Ctx.LLType(rt), "null", op.String(), r)
		return v, ast.Bool(), nil
	}
	if rt.Kind == ast.KNull {
		v := fc.W.IntOp(fc.Ctx.LLType(lt), l, op.String(), "null")
		return v, ast.Bool(), nil
	}

	commonLL := fc.Ctx.LLType(lt)
	if lt.IsObject() && rt.IsObject() && lt.Class != rt.Class {
		switch {
		case fc.Ctx.Hierarchy.IsSubclass(lt.Class, rt.Class):
			l = coerce(fc, l, lt, rt)
			commonLL = fc.Ctx.LLType(rt)
		case fc.Ctx.Hierarchy.IsSubclass(rt.Class, lt.Class):
			r = coerce(fc, r, rt, lt)
		}
	}
	v := fc.W.IntOp(commonLL, l, op.String(), r)
	return v, ast.Bool(), nil
}

// genShortCircuit lowers `&&`/`||` to three labels and a phi, per spec.md
// §4.7 and §8 property 3: the phi's predecessor labels must be the actual
// current label at the point of each branch, not the label under which
// evaluation of that side began, since a side's own code may have opened
// further nested blocks.
func genShortCircuit(fc *context.FuncCtx, n ast.Binary) (string, ast.Type, error) {
	isAnd := n.Op == ast.OpAnd

	fc.PushBlock()
	lhsVal, _, err := genExpr(fc, n.LHS)
	lt, lv := fc.PopBlock()
	releaseAll(fc, lt, lv)
	if err != nil {
		return "", ast.Type{}, err
	}
	lhsDoneLabel := fc.W.CurrentLabel()

	rhsL := fc.W.FreshLabel("sc.rhs")
	endL := fc.W.FreshLabel("sc.end")
	if isAnd {
		fc.W.CondBr(lhsVal, rhsL, endL)
	} else {
		fc.W.CondBr(lhsVal, endL, rhsL)
	}

	fc.W.Label(rhsL)
	fc.PushBlock()
	rhsVal, _, err := genExpr(fc, n.RHS)
	rt, rv := fc.PopBlock()
	releaseAll(fc, rt, rv)
	if err != nil {
		return "", ast.Type{}, err
	}
	rhsDoneLabel := fc.W.CurrentLabel()
	fc.W.Br(endL)

	fc.W.Label(endL)
	shortcut := "0"
	if !isAnd {
		shortcut = "1"
	}
	result := fc.W.Phi("i1",
		irw.PhiIncoming{Val: shortcut, Label: lhsDoneLabel},
		irw.PhiIncoming{Val: rhsVal, Label: rhsDoneLabel},
	)
	return result, ast.Bool(), nil
}

func genNewArray(fc *context.FuncCtx, n ast.NewArray) (string, ast.Type, error) {
	size, _, err := genExpr(fc, n.Size)
	if err != nil {
		return "", ast.Type{}, err
	}
	arrStruct := fc.Ctx.ArrayStruct(n.Elem)
	elemLL := fc.Ctx.ElemLLType(n.Elem)

	headerSize := fc.W.SizeofTrick(arrStruct)
	arrPtr := fc.W.Malloc(headerSize, arrStruct)

	// The length field and the byte-count multiply below stay i32
	// regardless of ctx.IntTy: the array struct's length slot is part of
	// the fixed layout genArrayStruct/runtime.bc agree on, and elemSize
	// comes from SizeofTrick, which always computes in i32. size itself
	// is a Latte int (ctx.IntTy width) so it's cast to i32 before either
	// use.
	size32 := fc.W.IntCast(size, fc.Ctx.IntTy, "i32")
	lenAddr := fc.W.GetFieldAddr(arrPtr, arrStruct, 0)
	fc.W.Store("i32", size32, lenAddr)

	elemSize := fc.W.SizeofTrick(elemLL)
	totalBytes := fc.W.IntOp("i32", elemSize, "*", size32)
	dataPtr := fc.W.Malloc(totalBytes, elemLL)
	dataFieldAddr := fc.W.GetFieldAddr(arrPtr, arrStruct, 1)
	fc.W.Store(elemLL+"*", dataPtr, dataFieldAddr)

	if n.Elem.Kind == ast.KString {
		generic := fc.W.Bitcast(arrPtr, arrStruct+"*", "{ i32, %string_t** }*")
		fc.W.Call("void", "@._init_str_arr", []irw.Arg{{Ty: "{ i32, %string_t** }*", Val: generic}})
	}

	return arrPtr, ast.Array(n.Elem), nil
}
