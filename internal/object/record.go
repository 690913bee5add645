package object

import (
	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// Ownership tells whether a view is responsible for destroying its record.
type Ownership uint8

const (
	_ownership_beg Ownership = iota
	OwnershipBorrowed
	OwnershipOwned
	_ownership_end
)

func (o Ownership) IsAvailable() bool {
	return o > _ownership_beg && o < _ownership_end
}

func (o Ownership) String() string {
	switch o {
	case OwnershipBorrowed:
		return "borrowed"
	case OwnershipOwned:
		return "owned"
	}
	return "unknown"
}

// Record is a schema-driven view of one runtime record. Every accessor is a runtime round trip.
type Record struct {
	f      *Factory
	schema *schema.Schema
	ptr    node.Ptr
	own    Ownership
}

// Owned is a record view that must be destroyed exactly once.
type Owned struct {
	*Record
}

// Destroy releases the record. Any later use of the view fails with ErrNullHandle.
func (o *Owned) Destroy() error {
	if o == nil || o.Record == nil || o.ptr.IsNull() {
		return errors.Wrap(exception.ErrNullHandle, "destroy")
	}
	p := o.ptr
	o.ptr = node.NullPtr
	return o.f.rt.Destroy(p)
}

func (r *Record) Kind() schema.RecordKind {
	return r.schema.Kind
}

func (r *Record) Schema() *schema.Schema {
	return r.schema
}

func (r *Record) Ownership() Ownership {
	return r.own
}

func (r *Record) Ptr() node.Ptr {
	return r.ptr
}

// IsValid reports whether the record still exists in the runtime.
func (r *Record) IsValid() bool {
	return !r.ptr.IsNull() && r.f.rt.IsValid(r.ptr)
}

func (r *Record) ID() (int64, error) {
	if r.ptr.IsNull() {
		return 0, exception.ErrNullHandle
	}
	return r.f.rt.ID(r.ptr)
}

// Ref encodes the record as a (kind,id) reference.
func (r *Record) Ref() (schema.ObjectRef, error) {
	id, err := r.ID()
	if err != nil {
		return schema.ObjectRef{}, err
	}
	return schema.ObjectRef{Kind: r.schema.Kind, ID: id}, nil
}

func (r *Record) spec(name string) (schema.FieldSpec, error) {
	spec, ok := r.schema.Field(name)
	if !ok {
		return schema.FieldSpec{}, errors.Wrapf(exception.ErrUnknownField, "%s.%s", r.schema.Name, name)
	}
	return spec, nil
}

// IsSet reports whether the field holds a value.
func (r *Record) IsSet(name string) (bool, error) {
	if _, err := r.spec(name); err != nil {
		return false, err
	}
	if r.ptr.IsNull() {
		return false, exception.ErrNullHandle
	}
	return r.f.rt.IsSet(r.ptr, name)
}

// Get returns the native value of the field, or None when the field is unset.
func (r *Record) Get(name string) (Opt[any], error) {
	spec, err := r.spec(name)
	if err != nil {
		return None[any](), err
	}
	if r.ptr.IsNull() {
		return None[any](), exception.ErrNullHandle
	}

	raw, err := r.f.rt.Get(r.ptr, name)
	if err != nil {
		return None[any](), err
	}
	if raw == nil {
		return None[any](), nil
	}

	v, err := schema.Decode(spec, raw)
	if err != nil {
		return None[any](), errors.Wrapf(err, "get %s.%s", r.schema.Name, name)
	}
	return Some(v), nil
}

// Set writes a native value into the field. A nil value resets the field.
// Reference fields accept what SetReference accepts.
func (r *Record) Set(name string, value any) error {
	spec, err := r.spec(name)
	if err != nil {
		return err
	}
	if value == nil {
		return r.Reset(name)
	}
	if spec.Type == schema.TypeRef {
		return r.SetReference(name, value)
	}
	if r.ptr.IsNull() {
		return exception.ErrNullHandle
	}

	stored, err := schema.Encode(spec, value)
	if err != nil {
		return errors.Wrapf(err, "set %s.%s", r.schema.Name, name)
	}
	return r.f.rt.Set(r.ptr, name, stored)
}

// Apply writes Some(v) or resets the field for None.
func (r *Record) Apply(name string, value Opt[any]) error {
	v, ok := value.Get()
	if !ok {
		return r.Reset(name)
	}
	if v == nil {
		return errors.Wrapf(exception.ErrTypeMismatch, "set %s.%s to nil", r.schema.Name, name)
	}
	return r.Set(name, v)
}

// Reset clears the field back to unset.
func (r *Record) Reset(name string) error {
	if _, err := r.spec(name); err != nil {
		return err
	}
	if r.ptr.IsNull() {
		return exception.ErrNullHandle
	}
	return r.f.rt.Reset(r.ptr, name)
}

// Copy duplicates every field value under newID and returns the owned copy.
func (r *Record) Copy(newID int64) (*Owned, error) {
	if r.ptr.IsNull() {
		return nil, errors.Wrap(exception.ErrNullHandle, "copy")
	}
	if r.schema.Transient {
		return nil, errors.Wrapf(exception.ErrNotOwnable, "copy %s", r.schema.Name)
	}
	p, err := r.f.rt.Copy(r.ptr, newID)
	if err != nil {
		return nil, err
	}
	return &Owned{Record: &Record{f: r.f, schema: r.schema, ptr: p, own: OwnershipOwned}}, nil
}

// Clone duplicates the record under the same id and returns the owned clone.
func (r *Record) Clone() (*Owned, error) {
	if r.ptr.IsNull() {
		return nil, errors.Wrap(exception.ErrNullHandle, "clone")
	}
	if r.schema.Transient {
		return nil, errors.Wrapf(exception.ErrNotOwnable, "clone %s", r.schema.Name)
	}
	p, err := r.f.rt.Clone(r.ptr)
	if err != nil {
		return nil, err
	}
	return &Owned{Record: &Record{f: r.f, schema: r.schema, ptr: p, own: OwnershipOwned}}, nil
}

// String prints the record through the runtime.
func (r *Record) String() string {
	if r.ptr.IsNull() {
		return r.schema.Name + "{null}"
	}
	buf := make([]byte, 256)
	n, err := r.f.rt.Print(r.ptr, buf)
	if err != nil {
		return r.schema.Name + "{" + err.Error() + "}"
	}
	if n > len(buf) {
		buf = make([]byte, n)
		if n, err = r.f.rt.Print(r.ptr, buf); err != nil {
			return r.schema.Name + "{" + err.Error() + "}"
		}
	}
	return string(buf[:min(n, len(buf))])
}
