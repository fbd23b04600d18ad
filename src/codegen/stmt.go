package codegen

import (
	"fmt"

	"latc/src/ast"
	"latc/src/codegen/context"
	"latc/src/codegen/irw"
)

// genStmt emits one statement, per spec.md §4.7's per-statement algorithms.
func genStmt(fc *context.FuncCtx, s ast.Stmt) error {
	switch n := s.(type) {
	case ast.Empty:
		return nil

	case ast.Block:
		return genBlock(fc, n.Stmts)

	case ast.Declare:
		return genDeclare(fc, n)

	case ast.Assign:
		return genAssign(fc, n)

	case ast.IncDec:
		addr, t, err := lvalueAddr(fc, n.LV)
		if err != nil {
			return err
		}
		v := fc.W.Load(fc.Ctx.LLType(t), addr)
		op := "+"
		if !n.Inc {
			op = "-"
		}
		v = fc.W.IntOp(fc.Ctx.IntTy, v, op, "1")
		fc.W.Store(fc.Ctx.LLType(t), v, addr)
		return nil

	case ast.Return:
		return genReturn(fc, n)

	case ast.ExprStmt:
		_, _, err := genExpr(fc, n.X)
		return err

	case ast.If:
		return genIf(fc, n)

	case ast.While:
		return genWhile(fc, n)

	case ast.ForEach:
		return genForEach(fc, n)

	default:
		return fmt.Errorf("internal: unhandled statement %T", s)
	}
}

func genDeclare(fc *context.FuncCtx, n ast.Declare) error {
	llty := fc.Ctx.LLType(n.Type)
	for _, item := range n.Items {
		addr := fc.W.Alloca(llty)
		var val string
		if item.Init != nil {
			v, t, err := genExpr(fc, item.Init)
			if err != nil {
				return err
			}
			val = coerce(fc, v, t, n.Type)
			if n.Type.Kind == ast.KString {
				retainStr(fc, val)
			}
		} else {
			val = zeroValue(fc, n.Type)
		}
		fc.W.Store(llty, val, addr)
		fc.Scope.Declare(item.Name, context.VarSlot{Addr: addr, Type: n.Type})
		if n.Type.Kind == ast.KString {
			fc.Arc.Var(addr)
		}
	}
	return nil
}

// zeroValue emits the default value of a declaration with no initializer:
// 0 for int, false for bool, a fresh empty retained string for string,
// null for object/array.
func zeroValue(fc *context.FuncCtx, t ast.Type) string {
	switch t.Kind {
	case ast.KInt:
		return "0"
	case ast.KBool:
		return "0"
	case ast.KString:
		return fc.W.Call("%string_t*", "@._alloc_str", nil)
	default:
		return "null"
	}
}

func genAssign(fc *context.FuncCtx, n ast.Assign) error {
	addr, declType, err := lvalueAddr(fc, n.LV)
	if err != nil {
		return err
	}
	val, valType, err := genExpr(fc, n.RHS)
	if err != nil {
		return err
	}
	val = coerce(fc, val, valType, declType)
	if declType.Kind == ast.KString {
		retainStr(fc, val)
		old := fc.W.Load("%string_t*", addr)
		releaseStr(fc, old)
	}
	fc.W.Store(fc.Ctx.LLType(declType), val, addr)
	return nil
}

func genReturn(fc *context.FuncCtx, n ast.Return) error {
	if n.Value == nil {
		releaseAll(fc, fc.Arc.AllTemps(), fc.Arc.AllVars())
		fc.W.RetVoid()
		return nil
	}
	val, valType, err := genExpr(fc, n.Value)
	if err != nil {
		return err
	}
	val = coerce(fc, val, valType, fc.RetType)
	if fc.RetType.Kind == ast.KString {
		retainStr(fc, val)
	}
	releaseAll(fc, fc.Arc.AllTemps(), fc.Arc.AllVars())
	fc.W.Ret(fc.Ctx.LLType(fc.RetType), val)
	return nil
}

func genIf(fc *context.FuncCtx, n ast.If) error {
	cond, _, err := genExpr(fc, n.Cond)
	if err != nil {
		return err
	}
	thenL := fc.W.FreshLabel("if.then")
	endL := fc.W.FreshLabel("if.end")
	elseL := endL
	if n.Else != nil {
		elseL = fc.W.FreshLabel("if.else")
	}
	fc.W.CondBr(cond, thenL, elseL)

	fc.W.Label(thenL)
	if err := genScopedStmt(fc, n.Then); err != nil {
		return err
	}
	thenTerminated := fc.W.Terminated()
	if !thenTerminated {
		fc.W.Br(endL)
	}

	elseTerminated := false
	if n.Else != nil {
		fc.W.Label(elseL)
		if err := genScopedStmt(fc, n.Else); err != nil {
			return err
		}
		elseTerminated = fc.W.Terminated()
		if !elseTerminated {
			fc.W.Br(endL)
		}
	}

	if n.Else != nil && thenTerminated && elseTerminated {
		// Both branches return: the join label has no predecessors, so
		// spec.md §4.7 says to omit it entirely.
		return nil
	}
	fc.W.Label(endL)
	return nil
}

func genWhile(fc *context.FuncCtx, n ast.While) error {
	condL := fc.W.FreshLabel("while.cond")
	bodyL := fc.W.FreshLabel("while.body")
	endL := fc.W.FreshLabel("while.end")

	fc.W.Br(condL)
	fc.W.Label(condL)
	cond, _, err := genExpr(fc, n.Cond)
	if err != nil {
		return err
	}
	fc.W.CondBr(cond, bodyL, endL)

	fc.W.Label(bodyL)
	if err := genScopedStmt(fc, n.Body); err != nil {
		return err
	}
	if !fc.W.Terminated() {
		fc.W.Br(condL)
	}

	fc.W.Label(endL)
	return nil
}

// genForEach implements spec.md §4.7's five-label `for` lowering: the
// index phi at loop_begin takes 0 from before_loop and next_index from
// loop_end, so next_index's register name must be reserved before the phi
// referencing it is emitted.
//
// The loop index and the array's length slot are i32 regardless of
// ctx.IntTy: the array struct's length field is part of the fixed layout
// genArrayStruct/runtime.bc agree on, and the index counting over it is
// never a Latte-visible value (n.Var is the element, not the index), so
// neither tracks the target's int width.
func genForEach(fc *context.FuncCtx, n ast.ForEach) error {
	arr, arrType, err := genExpr(fc, n.Array)
	if err != nil {
		return err
	}
	elemTy := *arrType.Elem
	arrStruct := fc.Ctx.ArrayStruct(elemTy)
	elemLL := fc.Ctx.ElemLLType(elemTy)

	lenAddr := fc.W.GetFieldAddr(arr, arrStruct, 0)
	lenVal := fc.W.Load("i32", lenAddr)
	dataFieldAddr := fc.W.GetFieldAddr(arr, arrStruct, 1)
	dataPtr := fc.W.Load(elemLL+"*", dataFieldAddr)

	beforeL := fc.W.FreshLabel("foreach.before")
	beginL := fc.W.FreshLabel("foreach.begin")
	bodyL := fc.W.FreshLabel("foreach.body")
	contL := fc.W.FreshLabel("foreach.end")
	afterL := fc.W.FreshLabel("foreach.after")

	fc.W.Br(beforeL)
	fc.W.Label(beforeL)
	fc.W.Br(beginL)

	fc.W.Label(beginL)
	nextIdx := fc.W.FreshReg()
	idx := fc.W.Phi("i32",
		irw.PhiIncoming{Val: "0", Label: beforeL},
		irw.PhiIncoming{Val: nextIdx, Label: contL},
	)
	cond := fc.W.IntOp("i32", idx, "<", lenVal)
	fc.W.CondBr(cond, bodyL, afterL)

	fc.W.Label(bodyL)
	fc.PushBlock()
	elemAddr := fc.W.GetElementAddr(dataPtr, elemLL, idx)
	elemVal := fc.W.Load(elemLL, elemAddr)
	varAddr := fc.W.Alloca(fc.Ctx.LLType(elemTy))
	if elemTy.Kind == ast.KString {
		retainStr(fc, elemVal)
	}
	fc.W.Store(fc.Ctx.LLType(elemTy), elemVal, varAddr)
	fc.Scope.Declare(n.Var, context.VarSlot{Addr: varAddr, Type: elemTy})
	if elemTy.Kind == ast.KString {
		fc.Arc.Var(varAddr)
	}
	bodyErr := genStmt(fc, n.Body)
	bodyTemps, bodyVars := fc.PopBlock()
	if bodyErr != nil {
		return bodyErr
	}
	if !fc.W.Terminated() {
		releaseAll(fc, bodyTemps, bodyVars)
		fc.W.Br(contL)
	}

	fc.W.Label(contL)
	fc.W.IntOpNamed(nextIdx, "i32", idx, "+", "1")
	fc.W.Br(beginL)

	fc.W.Label(afterL)
	return nil
}
