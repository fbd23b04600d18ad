// Package targetdesc loads the optional `--target <file.json>` descriptor
// (SPEC_FULL.md §A): pointer size, endianness, and int width. context.New
// (src/codegen/context) consults it directly: IntBits sets the LLVM type
// every Latte `int` renders as (context.Context.IntTy), and PointerBits/
// Endianness set the module's `target datalayout` line (Context.DataLayout).
// Layout that the runtime ABI fixes independently of the target — the
// array-length header field, malloc's size argument — does not vary. No
// target file is needed for the reference Latte target — 64-bit pointers,
// 32-bit int, little endian — which Reference() returns and Load falls
// back to.
package targetdesc

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Descriptor is the subset of a target JSON document this compiler's
// layout arithmetic actually consults.
type Descriptor struct {
	PointerBits int    // bit width of a pointer/reference, e.g. 64.
	IntBits     int    // bit width of Latte's `int`, e.g. 32.
	Endianness  string // "little" or "big".
}

// Reference is the descriptor for the only target this compiler currently
// emits code for.
func Reference() Descriptor {
	return Descriptor{PointerBits: 64, IntBits: 32, Endianness: "little"}
}

// Load reads and extracts the scalar fields of a target descriptor JSON
// file at path. Fields absent from the document keep Reference()'s values,
// so a partial descriptor only overrides what it mentions.
func Load(path string) (Descriptor, error) {
	d := Reference()
	if path == "" {
		return d, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("reading target descriptor %s: %w", path, err)
	}
	if !gjson.ValidBytes(b) {
		return d, fmt.Errorf("target descriptor %s is not valid JSON", path)
	}
	doc := gjson.ParseBytes(b)
	if v := doc.Get("pointer_bits"); v.Exists() {
		d.PointerBits = int(v.Int())
	}
	if v := doc.Get("int_bits"); v.Exists() {
		d.IntBits = int(v.Int())
	}
	if v := doc.Get("endianness"); v.Exists() {
		d.Endianness = v.String()
	}
	return d, nil
}
