package context

import "strings"

// FuncSigType renders the LLVM function-type spelling of a vtable entry's
// concrete implementation: its receiver (typed as entry.Owner, the class
// that actually defines the slot) followed by its declared parameters, per
// spec.md §4.7's method-dispatch algorithm. sigTy has no trailing "*"
// (usable as CallIndirect's fnTy); ptrTy is sigTy with one appended (usable
// as the bitcast target for the raw i8* loaded out of the vtable array).
func (c *Context) FuncSigType(entry VEntry) (sigTy, ptrTy string) {
	owner := c.Classes.Class(entry.Owner)
	params := make([]string, 0, len(entry.Declared.Params)+1)
	params = append(params, owner.StructType()+"*")
	for _, p := range entry.Declared.Params {
		params = append(params, c.LLType(p))
	}
	retTy := c.LLType(*entry.Declared.Ret)
	sigTy = retTy + " (" + strings.Join(params, ", ") + ")"
	return sigTy, sigTy + "*"
}
