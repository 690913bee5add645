package obs

import (
	"time"

	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

var _ node.Runtime = (*Runtime)(nil)

// Runtime counts every call into the wrapped runtime.
type Runtime struct {
	rt node.Runtime
	m  *Metrics
}

// Instrument wraps rt so that each primitive call is recorded in m.
func Instrument(rt node.Runtime, m *Metrics) *Runtime {
	return &Runtime{rt: rt, m: m}
}

func (r *Runtime) observe(op Op, start time.Time, err error) {
	r.m.ObserveCall(op, time.Since(start), err != nil)
	switch {
	case err == nil:
	case errors.Is(err, exception.ErrBrokenRef):
		r.m.IncBrokenRef()
	case errors.Is(err, exception.ErrNullHandle):
		r.m.IncNullHandle()
	}
}

func (r *Runtime) Create(kind schema.RecordKind) (node.Ptr, error) {
	start := time.Now()
	p, err := r.rt.Create(kind)
	r.observe(OpCreate, start, err)
	return p, err
}

func (r *Runtime) Destroy(p node.Ptr) error {
	start := time.Now()
	err := r.rt.Destroy(p)
	r.observe(OpDestroy, start, err)
	return err
}

func (r *Runtime) IsValid(p node.Ptr) bool {
	return r.rt.IsValid(p)
}

func (r *Runtime) Kind(p node.Ptr) (schema.RecordKind, error) {
	return r.rt.Kind(p)
}

func (r *Runtime) ID(p node.Ptr) (int64, error) {
	return r.rt.ID(p)
}

func (r *Runtime) Clone(p node.Ptr) (node.Ptr, error) {
	start := time.Now()
	cp, err := r.rt.Clone(p)
	r.observe(OpClone, start, err)
	return cp, err
}

func (r *Runtime) Copy(p node.Ptr, id int64) (node.Ptr, error) {
	start := time.Now()
	cp, err := r.rt.Copy(p, id)
	r.observe(OpCopy, start, err)
	return cp, err
}

func (r *Runtime) Print(p node.Ptr, buf []byte) (int, error) {
	start := time.Now()
	n, err := r.rt.Print(p, buf)
	r.observe(OpPrint, start, err)
	return n, err
}

func (r *Runtime) Lookup(ref schema.ObjectRef) (node.Ptr, bool) {
	start := time.Now()
	p, ok := r.rt.Lookup(ref)
	r.observe(OpLookup, start, nil)
	return p, ok
}

func (r *Runtime) IsSet(p node.Ptr, field string) (bool, error) {
	start := time.Now()
	ok, err := r.rt.IsSet(p, field)
	r.observe(OpIsSet, start, err)
	return ok, err
}

func (r *Runtime) Get(p node.Ptr, field string) (any, error) {
	start := time.Now()
	v, err := r.rt.Get(p, field)
	r.observe(OpGet, start, err)
	return v, err
}

func (r *Runtime) Set(p node.Ptr, field string, v any) error {
	start := time.Now()
	err := r.rt.Set(p, field, v)
	r.observe(OpSet, start, err)
	return err
}

func (r *Runtime) Reset(p node.Ptr, field string) error {
	start := time.Now()
	err := r.rt.Reset(p, field)
	r.observe(OpReset, start, err)
	return err
}

func (r *Runtime) Deref(p node.Ptr, field string) (node.Ptr, error) {
	start := time.Now()
	target, err := r.rt.Deref(p, field)
	r.observe(OpDeref, start, err)
	return target, err
}
