package codegen

import (
	"latc/src/ast"
	"latc/src/codegen/context"
)

// coerce bitcasts val from its actual object type to the wider declared
// type it is being stored/passed/returned as, when the two differ. Every
// other case (matching types, Null into an object/array slot, scalars)
// needs no instruction: LLVM's untyped `null` literal already adapts to
// whatever pointer type it is used at.
func coerce(fc *context.FuncCtx, val string, from, to ast.Type) string {
	if !from.IsObject() || !to.IsObject() || from.Class == to.Class {
		return val
	}
	fromStruct := fc.Ctx.Classes.Class(from.Class).StructType()
	toStruct := fc.Ctx.Classes.Class(to.Class).StructType()
	return fc.W.BitcastObject(val, fromStruct, toStruct)
}
