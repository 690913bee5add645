package object

import (
	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

var _ error = (*BrokenRefError)(nil)

// BrokenRefError reports a reference field whose target no longer exists.
type BrokenRefError struct {
	Field  string
	Holder schema.ObjectRef
	Target schema.ObjectRef
}

func (e *BrokenRefError) Error() string {
	return "broken reference " + e.Holder.String() + "." + e.Field + " -> " + e.Target.String()
}

func (e *BrokenRefError) Unwrap() error {
	return exception.ErrBrokenRef
}

// Resolve follows a reference field and returns a borrowed view of its target.
// An unset field returns false with no error. A target that no longer exists
// returns a *BrokenRefError.
func (r *Record) Resolve(name string) (*Record, bool, error) {
	spec, err := r.spec(name)
	if err != nil {
		return nil, false, err
	}
	if spec.Type != schema.TypeRef {
		return nil, false, errors.Wrapf(exception.ErrTypeMismatch, "resolve %s.%s: not a reference", r.schema.Name, name)
	}
	if r.ptr.IsNull() {
		return nil, false, exception.ErrNullHandle
	}

	p, err := r.f.rt.Deref(r.ptr, name)
	if err != nil {
		if errors.Is(err, exception.ErrBrokenRef) {
			return nil, false, r.brokenRef(name)
		}
		return nil, false, err
	}
	if p.IsNull() {
		return nil, false, nil
	}

	target, err := r.f.Dispatch(p)
	if err != nil {
		if errors.Is(err, exception.ErrNullHandle) {
			return nil, false, r.brokenRef(name)
		}
		return nil, false, err
	}
	return target, true, nil
}

func (r *Record) brokenRef(name string) error {
	e := &BrokenRefError{Field: name}
	e.Holder, _ = r.Ref()
	if raw, err := r.f.rt.Get(r.ptr, name); err == nil {
		e.Target, _ = raw.(schema.ObjectRef)
	}
	return e
}

// SetReference binds a reference field. value is one of *Record or *Owned (bound now),
// schema.ObjectRef (bound lazily by the runtime) or nil (clears the relation).
func (r *Record) SetReference(name string, value any) error {
	spec, err := r.spec(name)
	if err != nil {
		return err
	}
	if spec.Type != schema.TypeRef {
		return errors.Wrapf(exception.ErrTypeMismatch, "set reference %s.%s: not a reference", r.schema.Name, name)
	}
	if r.ptr.IsNull() {
		return exception.ErrNullHandle
	}

	var bind any
	switch v := value.(type) {
	case nil:
		return r.f.rt.Reset(r.ptr, name)
	case *Owned:
		if v == nil || v.Record == nil || v.ptr.IsNull() {
			return errors.Wrapf(exception.ErrNullHandle, "set reference %s.%s", r.schema.Name, name)
		}
		bind = v.ptr
	case *Record:
		if v == nil || v.ptr.IsNull() {
			return errors.Wrapf(exception.ErrNullHandle, "set reference %s.%s", r.schema.Name, name)
		}
		bind = v.ptr
	case schema.ObjectRef:
		if _, err := schema.Encode(spec, v); err != nil {
			return errors.Wrapf(err, "set reference %s.%s", r.schema.Name, name)
		}
		bind = v
	case node.Ptr:
		bind = v
	default:
		return errors.Wrapf(exception.ErrTypeMismatch, "set reference %s.%s: unsupported %T", r.schema.Name, name, value)
	}

	return r.f.rt.Set(r.ptr, name, bind)
}
