package codegen

import (
	"latc/src/codegen/context"
	"latc/src/codegen/irw"
)

// releaseAll emits a `._release_str` for every still-pending temporary and
// for the current value held in every tracked string variable slot,
// implementing the ARC discharge spec.md §4.5/§8 requires at every
// control-flow exit from a scope: normal fall-through, return, or an
// `if`/`while`/`for` branch that does not itself return.
func releaseAll(fc *context.FuncCtx, temps, vars []string) {
	for _, t := range temps {
		releaseStr(fc, t)
	}
	for _, addr := range vars {
		v := fc.W.Load("%string_t*", addr)
		releaseStr(fc, v)
	}
}

func releaseStr(fc *context.FuncCtx, val string) {
	fc.W.Call("void", "@._release_str", []irw.Arg{{Ty: "%string_t*", Val: val}})
}

func retainStr(fc *context.FuncCtx, val string) {
	fc.W.Call("void", "@._retain_str", []irw.Arg{{Ty: "%string_t*", Val: val}})
}
