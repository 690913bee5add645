// Package object turns runtime handles into schema-driven record views.
package object

import (
	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// Factory dispatches runtime handles to record views of their kind.
type Factory struct {
	rt  node.Runtime
	reg *schema.Registry
}

// NewFactory creates a factory over rt using the schemas of reg.
func NewFactory(rt node.Runtime, reg *schema.Registry) *Factory {
	return &Factory{rt: rt, reg: reg}
}

// Registry returns the schema registry used by the factory.
func (f *Factory) Registry() *schema.Registry {
	return f.reg
}

// Runtime returns the runtime behind the factory.
func (f *Factory) Runtime() node.Runtime {
	return f.rt
}

// Dispatch returns a borrowed view of p. A borrowed view never destroys its record.
func (f *Factory) Dispatch(p node.Ptr) (*Record, error) {
	return f.dispatch(p, OwnershipBorrowed)
}

// Adopt takes ownership of p. Transient kinds are managed by the runtime and cannot be owned.
func (f *Factory) Adopt(p node.Ptr) (*Owned, error) {
	rec, err := f.dispatch(p, OwnershipOwned)
	if err != nil {
		return nil, err
	}
	return &Owned{Record: rec}, nil
}

// Create allocates a record of a creatable kind and returns the owned view.
func (f *Factory) Create(kind schema.RecordKind) (*Owned, error) {
	s, ok := f.reg.Schema(kind)
	if !ok {
		return nil, errors.Wrapf(exception.ErrUnknownRecordKind, "create %s", kind)
	}
	if !s.Creatable {
		return nil, errors.Wrapf(exception.ErrNotCreatable, "create %s", kind)
	}

	p, err := f.rt.Create(kind)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", kind)
	}
	return &Owned{Record: &Record{f: f, schema: s, ptr: p, own: OwnershipOwned}}, nil
}

// CreateAt creates a record of kind and moves it under id. A zero id keeps the allocated one.
func (f *Factory) CreateAt(kind schema.RecordKind, id int64) (*Owned, error) {
	rec, err := f.Create(kind)
	if err != nil || id == 0 {
		return rec, err
	}

	cur, err := rec.ID()
	if err != nil {
		_ = rec.Destroy()
		return nil, err
	}
	if cur == id {
		return rec, nil
	}

	cp, err := rec.Copy(id)
	if err != nil {
		_ = rec.Destroy()
		return nil, err
	}
	if err := rec.Destroy(); err != nil {
		_ = cp.Destroy()
		return nil, err
	}
	return cp, nil
}

// Lookup returns a borrowed view of the record identified by ref.
func (f *Factory) Lookup(ref schema.ObjectRef) (*Record, bool, error) {
	p, ok := f.rt.Lookup(ref)
	if !ok {
		return nil, false, nil
	}
	rec, err := f.Dispatch(p)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// Each calls fn with a borrowed view of every record of kind held by cache, in id order.
func (f *Factory) Each(cache node.Cache, kind schema.RecordKind, fn func(rec *Record) bool) error {
	var err error
	cache.Range(kind, func(p node.Ptr) bool {
		var rec *Record
		rec, err = f.Dispatch(p)
		if err != nil {
			return false
		}
		return fn(rec)
	})
	return err
}

func (f *Factory) dispatch(p node.Ptr, own Ownership) (*Record, error) {
	kind, err := f.rt.Kind(p)
	if err != nil {
		return nil, errors.Wrap(err, "dispatch")
	}
	s, ok := f.reg.Schema(kind)
	if !ok {
		return nil, errors.Wrapf(exception.ErrUnknownRecordKind, "dispatch kind %d", kind)
	}
	if own == OwnershipOwned && s.Transient {
		return nil, errors.Wrapf(exception.ErrNotOwnable, "adopt %s", kind)
	}
	return &Record{f: f, schema: s, ptr: p, own: own}, nil
}
