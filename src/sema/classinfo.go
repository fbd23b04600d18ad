package sema

import "latc/src/ast"

// ClassInfo is the type checker's resolved view of a single class: its
// full (inherited + own) field/method namespace plus the pieces needed to
// validate overrides and `self` resolution.
type ClassInfo struct {
	name    string
	super   string
	fields  map[string]ast.Type     // all fields visible on this class, inherited included
	methods map[string]*ast.Function // all methods visible on this class, inherited included (overridden replaced)
	own     map[string]bool         // names (field or method) declared directly on this class
}

// buildClassInfo resolves field/method namespaces for every class in h,
// processing superclasses before subclasses (h.Ancestors gives a linear
// chain since Latte has only single inheritance), and enforces:
//   - fields/methods share one namespace per class (spec.md §3 invariant);
//   - field types must be concrete/declarable (spec.md §4.2.2);
//   - method overrides must match the overridden Declared type exactly
//     (spec.md §4.2.2, §8 property 7).
func buildClassInfo(h *ClassHierarchy) (map[string]*ClassInfo, error) {
	infos := make(map[string]*ClassInfo, len(h.Order()))

	var resolve func(name string) (*ClassInfo, error)
	resolve = func(name string) (*ClassInfo, error) {
		if ci, ok := infos[name]; ok {
			return ci, nil
		}
		c := h.Class(name)
		ci := &ClassInfo{
			name:    name,
			super:   c.Super,
			fields:  map[string]ast.Type{},
			methods: map[string]*ast.Function{},
			own:     map[string]bool{},
		}
		if c.Super != "" {
			super, err := resolve(c.Super)
			if err != nil {
				return nil, err
			}
			for k, v := range super.fields {
				ci.fields[k] = v
			}
			for k, v := range super.methods {
				ci.methods[k] = v
			}
		}

		declared := map[string]bool{}
		for _, f := range c.Fields {
			if declared[f.Name] {
				return nil, newTypeError(FieldAlreadyDefined, "field or method %q is already defined in class %q", f.Name, name)
			}
			declared[f.Name] = true
			if !declarable(f.Type) {
				return nil, newTypeError(NonDeclarableType, "field %q of class %q has non-declarable type %s", f.Name, name, f.Type)
			}
			if _, inheritedMethod := ci.methods[f.Name]; inheritedMethod {
				return nil, newTypeError(VarOverride, "field %q of class %q shadows an inherited method of the same name", f.Name, name)
			}
			if _, inheritedField := ci.fields[f.Name]; inheritedField {
				return nil, newTypeError(FieldAlreadyDefined, "field %q of class %q is already defined in an ancestor class", f.Name, name)
			}
			ci.fields[f.Name] = f.Type
			ci.own[f.Name] = true
		}
		for _, m := range c.Methods {
			if declared[m.Name] {
				return nil, newTypeError(FieldAlreadyDefined, "field or method %q is already defined in class %q", m.Name, name)
			}
			declared[m.Name] = true
			if prev, ok := ci.methods[m.Name]; ok && prev != nil {
				if !prev.Declared().Equal(m.Declared()) {
					return nil, newTypeError(InvalidOverride, "method %q overrides %q.%q with incompatible type: expected %s, got %s",
						m.Name, ci.superDeclaring(m.Name, h), m.Name, prev.Declared(), m.Declared())
				}
			} else if _, isField := ci.fields[m.Name]; isField {
				return nil, newTypeError(VarOverride, "method %q of class %q shadows an inherited field of the same name", m.Name, name)
			}
			ci.methods[m.Name] = m
			ci.own[m.Name] = true
		}

		infos[name] = ci
		return ci, nil
	}

	for _, name := range h.Order() {
		if _, err := resolve(name); err != nil {
			return nil, err
		}
	}
	return infos, nil
}

// superDeclaring is a best-effort helper for error messages: the nearest
// ancestor that already declares name.
func (ci *ClassInfo) superDeclaring(name string, h *ClassHierarchy) string {
	for _, anc := range h.Ancestors(ci.super) {
		if c := h.Class(anc); c != nil {
			for _, m := range c.Methods {
				if m.Name == name {
					return anc
				}
			}
		}
	}
	return ci.super
}

// declarable reports whether t may be used as a field type or a local
// declaration's element type: Int, Bool, String, Object, or Array (spec.md
// §4.2.3) — not Void, not Function.
func declarable(t ast.Type) bool {
	switch t.Kind {
	case ast.KVoid, ast.KFunction, ast.KNull:
		return false
	default:
		return true
	}
}
