// Package node is the boundary with the record runtime that owns record storage.
package node

import "xroad/internal/schema"

// Ptr is an opaque handle to a record living in the runtime.
type Ptr uint64

// NullPtr is the unbound handle.
const NullPtr Ptr = 0

// IsNull reports whether p is unbound.
func (p Ptr) IsNull() bool {
	return p == NullPtr
}

// Runtime is the primitive record operation set of the node.
//
// Get returns stored values: int64 for signed integers and enum codes, uint64 for unsigned
// integers, float64, []byte for strings and blobs, schema.ObjectRef for references.
// Set accepts the same forms; a reference field also accepts a Ptr, bound immediately,
// while an ObjectRef is bound lazily and may point to a record that does not exist yet.
type Runtime interface {
	Create(kind schema.RecordKind) (Ptr, error)
	Destroy(p Ptr) error
	IsValid(p Ptr) bool
	Kind(p Ptr) (schema.RecordKind, error)
	ID(p Ptr) (int64, error)
	Clone(p Ptr) (Ptr, error)
	Copy(p Ptr, id int64) (Ptr, error)
	// Print writes a text form of the record into buf and returns the full length,
	// which exceeds len(buf) when the output was truncated.
	Print(p Ptr, buf []byte) (int, error)
	Lookup(ref schema.ObjectRef) (Ptr, bool)

	IsSet(p Ptr, field string) (bool, error)
	Get(p Ptr, field string) (any, error)
	Set(p Ptr, field string, v any) error
	Reset(p Ptr, field string) error
	// Deref returns the live record a reference field points to.
	Deref(p Ptr, field string) (Ptr, error)
}

// Cache iterates the records of a kind held by the runtime.
type Cache interface {
	Count(kind schema.RecordKind) int
	// Range calls fn for each record of kind in id order until fn returns false.
	Range(kind schema.RecordKind, fn func(p Ptr) bool)
}
