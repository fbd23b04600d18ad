package context

import (
	"latc/src/ast"
	"latc/src/sema"
)

// FieldSlot is one field of a class's runtime struct layout. Slot 0 is
// always the vtable pointer (spec.md §4.5); field slots start at 1.
type FieldSlot struct {
	Name string
	Type ast.Type
	Slot int
}

// VEntry is one occupied vtable slot.
type VEntry struct {
	Name      string   // method name
	Fn        string   // mangled LLVM function name implementing this slot
	Owner     string   // class that currently provides the implementation
	Declared  ast.Type // declared (receiver-excluded) function type, for the signature
}

// VTable is the ordered, name-indexed slot list of one class. Slots are
// assigned the first time a method name is introduced anywhere in the
// super chain and never move afterwards: an override replaces the Fn/Owner
// of its inherited slot in place, per spec.md §C's vtable-slot-stability
// property.
type VTable struct {
	Entries []VEntry
	index   map[string]int
}

func (vt *VTable) slotOf(name string) (int, bool) {
	i, ok := vt.index[name]
	return i, ok
}

// SlotOf returns the vtable entry implementing method name and its slot
// index, or ok=false if this class (or its ancestors) never declares it.
func (vt *VTable) SlotOf(name string) (entry VEntry, slot int, ok bool) {
	i, ok := vt.index[name]
	if !ok {
		return VEntry{}, 0, false
	}
	return vt.Entries[i], i, true
}

// ClassData is the emitter's per-class runtime layout: struct type, field
// slots, and vtable.
type ClassData struct {
	Name      string
	ID        int
	Super     string
	SuperID   int // -1 if no superclass
	Fields    []FieldSlot
	fieldSlot map[string]int
	VTable    *VTable
}

// StructType returns the LLVM struct type name for this class.
func (c *ClassData) StructType() string { return "%class." + c.Name }

// Field returns the layout entry of field name, or (FieldSlot{}, false).
func (c *ClassData) Field(name string) (FieldSlot, bool) {
	i, ok := c.fieldSlot[name]
	if !ok {
		return FieldSlot{}, false
	}
	return c.Fields[i], true
}

// Registry holds every class's runtime layout, built once from the
// checked, hierarchy-validated program.
type Registry struct {
	byName map[string]*ClassData
	order  []string
}

// Class looks up a class's layout by name.
func (r *Registry) Class(name string) *ClassData { return r.byName[name] }

// Order returns class names in the stable root-to-leaf order they were
// registered.
func (r *Registry) Order() []string { return r.order }

// BuildRegistry assigns class IDs, field slots and vtables for every class
// in h, resolving each class's superclass first regardless of source
// declaration order, so a subclass always sees its superclass's already
// -built layout (spec.md §4.5 and §C).
func BuildRegistry(h *sema.ClassHierarchy) *Registry {
	r := &Registry{byName: map[string]*ClassData{}}
	id := 0

	var resolve func(name string) *ClassData
	resolve = func(name string) *ClassData {
		if cd, ok := r.byName[name]; ok {
			return cd
		}
		c := h.Class(name)
		cd := &ClassData{
			Name:      name,
			ID:        id,
			Super:     c.Super,
			SuperID:   -1,
			fieldSlot: map[string]int{},
		}
		id++

		var vt *VTable
		if c.Super != "" {
			super := resolve(c.Super)
			cd.SuperID = super.ID
			cd.Fields = append(cd.Fields, super.Fields...)
			for superName, slot := range super.fieldSlot {
				cd.fieldSlot[superName] = slot
			}
			vt = cloneVTable(super.VTable)
		} else {
			vt = &VTable{index: map[string]int{}}
		}

		// Own fields declared directly on this class append new slots, in
		// source declaration order (already validated against shadowing by
		// the type checker's class-namespace pass).
		for _, f := range c.Fields {
			slot := len(cd.Fields) + 1 // slot 0 reserved for the vtable pointer
			cd.fieldSlot[f.Name] = len(cd.Fields)
			cd.Fields = append(cd.Fields, FieldSlot{Name: f.Name, Type: f.Type, Slot: slot})
		}

		// Methods: override an inherited slot in place, or append a new one.
		for _, m := range c.Methods {
			mangled := MangleMethod(name, m.Name)
			declared := m.Declared()
			if slot, ok := vt.slotOf(m.Name); ok {
				vt.Entries[slot].Fn = mangled
				vt.Entries[slot].Owner = name
				vt.Entries[slot].Declared = declared
			} else {
				vt.index[m.Name] = len(vt.Entries)
				vt.Entries = append(vt.Entries, VEntry{Name: m.Name, Fn: mangled, Owner: name, Declared: declared})
			}
		}

		cd.VTable = vt
		r.byName[name] = cd
		r.order = append(r.order, name)
		return cd
	}

	for _, name := range h.Order() {
		resolve(name)
	}
	return r
}

func cloneVTable(src *VTable) *VTable {
	vt := &VTable{
		Entries: append([]VEntry(nil), src.Entries...),
		index:   make(map[string]int, len(src.index)),
	}
	for k, v := range src.index {
		vt.index[k] = v
	}
	return vt
}

// MangleMethod names the LLVM function implementing a class method, e.g.
// "@class.Dog.bark".
func MangleMethod(class, method string) string {
	return "@class." + class + "." + method
}
