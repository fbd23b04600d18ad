package context

import "latc/src/ast"

// LLType renders the LLVM IR spelling of a Latte type, per spec.md §4.6:
// Int and Bool are first-class scalars, String/Object/Array are all
// pointers to an opaque or named struct type, and Void only ever appears
// as a return type. Mapping an Array type also registers its backing
// struct shape (see ArrayStruct) so the emitter knows to define it. Int's
// width comes from the target descriptor (c.IntTy) rather than a hardcoded
// "i32", so a non-reference --target actually changes every int-typed
// value and field this compiler emits; the array struct's length slot is
// not rendered through LLType and stays i32.
func (c *Context) LLType(t ast.Type) string {
	switch t.Kind {
	case ast.KInt:
		return c.IntTy
	case ast.KBool:
		return "i1"
	case ast.KVoid:
		return "void"
	case ast.KString:
		return "%string_t*"
	case ast.KNull:
		return "i8*"
	case ast.KObject:
		return c.Classes.Class(t.Class).StructType() + "*"
	case ast.KArray:
		return c.ArrayStruct(*t.Elem) + "*"
	default:
		return "i8*"
	}
}

// ArrayStruct returns the LLVM struct type name backing an array of elem,
// registering that shape (one struct per distinct element type, e.g.
// "%array.int" or "%array.Dog") so the top-level emitter defines it even
// though no single class declaration introduces array types the way a
// Class introduces its own struct.
func (c *Context) ArrayStruct(elem ast.Type) string {
	name := "%array." + elemTag(elem)
	if c.arrayShapes == nil {
		c.arrayShapes = map[string]ast.Type{}
	}
	if _, ok := c.arrayShapes[name]; !ok {
		c.arrayShapes[name] = elem
	}
	return name
}

// ArrayShapes returns every array struct shape registered so far, keyed by
// struct name. Call after code generation completes so every Declare,
// parameter, field, and `new` expression has had a chance to register its
// shape.
func (c *Context) ArrayShapes() map[string]ast.Type { return c.arrayShapes }

func elemTag(t ast.Type) string {
	switch t.Kind {
	case ast.KInt:
		return "int"
	case ast.KBool:
		return "bool"
	case ast.KString:
		return "string"
	case ast.KObject:
		return t.Class
	case ast.KArray:
		return "arr." + elemTag(*t.Elem)
	default:
		return "ptr"
	}
}

// ElemLLType renders the LLVM spelling of an array's raw element storage
// type (as opposed to LLType, which adds the pointer-to-struct wrapper
// objects and arrays always have at the Latte-value level).
func (c *Context) ElemLLType(elem ast.Type) string {
	switch elem.Kind {
	case ast.KInt:
		return c.IntTy
	case ast.KBool:
		return "i1"
	default:
		return c.LLType(elem)
	}
}
