package object

import (
	"xroad/internal/errors"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

//go:generate go run ../../libs/tool/objgen -output fields_gen.go

// Field is a typed descriptor of one schema field.
type Field[T any] struct {
	kind schema.RecordKind
	name string
}

// NewField declares a typed descriptor for kind.name.
func NewField[T any](kind schema.RecordKind, name string) Field[T] {
	return Field[T]{kind: kind, name: name}
}

func (f Field[T]) Kind() schema.RecordKind {
	return f.kind
}

func (f Field[T]) Name() string {
	return f.name
}

func (f Field[T]) check(r *Record) error {
	if r.Kind() != f.kind {
		return errors.Wrapf(exception.ErrUnknownField, "%s.%s on %s", f.kind, f.name, r.Kind())
	}
	return nil
}

// Get reads the field from r.
func (f Field[T]) Get(r *Record) (Opt[T], error) {
	if err := f.check(r); err != nil {
		return None[T](), err
	}

	v, err := r.Get(f.name)
	if err != nil {
		return None[T](), err
	}
	raw, ok := v.Get()
	if !ok {
		return None[T](), nil
	}

	value, ok := raw.(T)
	if !ok {
		return None[T](), errors.Wrapf(exception.ErrTypeMismatch, "%s.%s holds %T", f.kind, f.name, raw)
	}
	return Some(value), nil
}

// Set writes v into the field of r.
func (f Field[T]) Set(r *Record, v T) error {
	if err := f.check(r); err != nil {
		return err
	}
	return r.Set(f.name, v)
}

// Apply writes Some(v) or resets the field for None.
func (f Field[T]) Apply(r *Record, v Opt[T]) error {
	if err := f.check(r); err != nil {
		return err
	}
	value, ok := v.Get()
	if !ok {
		return r.Reset(f.name)
	}
	return r.Set(f.name, value)
}

// Reset clears the field of r.
func (f Field[T]) Reset(r *Record) error {
	if err := f.check(r); err != nil {
		return err
	}
	return r.Reset(f.name)
}

// IsSet reports whether the field of r holds a value.
func (f Field[T]) IsSet(r *Record) (bool, error) {
	if err := f.check(r); err != nil {
		return false, err
	}
	return r.IsSet(f.name)
}
