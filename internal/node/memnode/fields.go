package memnode

import (
	"math"
	"slices"
	"strconv"

	"xroad/internal/errors"
	"xroad/internal/model/enum"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// field resolves the live slot of p and the spec of name. The caller holds mu.
func (n *Node) field(p node.Ptr, name string) (*slot, schema.FieldSpec, error) {
	s, err := n.slot(p)
	if err != nil {
		return nil, schema.FieldSpec{}, err
	}
	spec, ok := n.reg.MustSchema(s.kind).Field(name)
	if !ok {
		return nil, schema.FieldSpec{}, errors.Wrapf(exception.ErrUnknownField, "%s.%s", s.kind, name)
	}
	return s, spec, nil
}

func (n *Node) IsSet(p node.Ptr, field string) (bool, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, _, err := n.field(p, field)
	if err != nil {
		return false, err
	}
	_, ok := s.values[field]
	return ok, nil
}

func (n *Node) Get(p node.Ptr, field string) (any, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, _, err := n.field(p, field)
	if err != nil {
		return nil, err
	}
	v, ok := s.values[field]
	if !ok {
		return nil, nil
	}
	if b, ok := v.([]byte); ok {
		return slices.Clone(b), nil
	}
	return v, nil
}

func (n *Node) Set(p node.Ptr, field string, v any) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	s, spec, err := n.field(p, field)
	if err != nil {
		return err
	}

	if spec.Type == schema.TypeRef {
		return n.bind(s, spec, v)
	}

	if err := check(spec, v); err != nil {
		return err
	}
	if b, ok := v.([]byte); ok {
		v = slices.Clone(b)
	}
	s.values[field] = v
	return nil
}

// bind stores a reference from a live handle or a bare ObjectRef. The caller holds mu.
func (n *Node) bind(s *slot, spec schema.FieldSpec, v any) error {
	var ref schema.ObjectRef
	switch x := v.(type) {
	case node.Ptr:
		target, err := n.slot(x)
		if err != nil {
			return errors.Wrapf(err, "bind %s.%s", s.kind, spec.Name)
		}
		ref = schema.ObjectRef{Kind: target.kind, ID: target.id}
		if spec.Target != 0 && ref.Kind != spec.Target {
			return errors.Wrapf(exception.ErrTypeMismatch, "%s.%s wants %s, got %s", s.kind, spec.Name, spec.Target, ref.Kind)
		}
		s.bound[spec.Name] = x
	case schema.ObjectRef:
		if !x.Kind.IsAvailable() {
			return errors.Wrapf(exception.ErrTypeMismatch, "%s.%s: %s is not a record kind", s.kind, spec.Name, x.Kind)
		}
		if spec.Target != 0 && x.Kind != spec.Target {
			return errors.Wrapf(exception.ErrTypeMismatch, "%s.%s wants %s, got %s", s.kind, spec.Name, spec.Target, x.Kind)
		}
		ref = x
		delete(s.bound, spec.Name)
	default:
		return errors.Wrapf(exception.ErrTypeMismatch, "%s.%s wants a reference", s.kind, spec.Name)
	}

	s.values[spec.Name] = ref
	return nil
}

func (n *Node) Reset(p node.Ptr, field string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	s, _, err := n.field(p, field)
	if err != nil {
		return err
	}
	delete(s.values, field)
	delete(s.bound, field)
	return nil
}

func (n *Node) Deref(p node.Ptr, field string) (node.Ptr, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, spec, err := n.field(p, field)
	if err != nil {
		return node.NullPtr, err
	}
	if spec.Type != schema.TypeRef {
		return node.NullPtr, errors.Wrapf(exception.ErrTypeMismatch, "%s.%s is not a reference", s.kind, field)
	}

	v, ok := s.values[field]
	if !ok {
		return node.NullPtr, nil
	}
	ref := v.(schema.ObjectRef)

	if target, ok := s.bound[field]; ok {
		if _, err := n.slot(target); err != nil {
			return node.NullPtr, errors.Wrapf(exception.ErrBrokenRef, "%s.%s -> %s", s.kind, field, ref)
		}
		return target, nil
	}

	target, ok := n.index[ref]
	if !ok {
		return node.NullPtr, errors.Wrapf(exception.ErrBrokenRef, "%s.%s -> %s", s.kind, field, ref)
	}
	return target, nil
}

// Print renders the record as kind{id=1,field=value,...} with set fields in schema order.
func (n *Node) Print(p node.Ptr, buf []byte) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, err := n.slot(p)
	if err != nil {
		return 0, err
	}

	out := make([]byte, 0, 64)
	out = append(out, s.kind.String()...)
	out = append(out, "{id="...)
	out = strconv.AppendInt(out, s.id, 10)
	for _, spec := range n.reg.MustSchema(s.kind).Fields {
		v, ok := s.values[spec.Name]
		if !ok {
			continue
		}
		out = append(out, ',')
		out = append(out, spec.Name...)
		out = append(out, '=')
		out = appendValue(out, spec, v)
	}
	out = append(out, '}')

	copy(buf, out)
	return len(out), nil
}

func appendValue(out []byte, spec schema.FieldSpec, v any) []byte {
	switch x := v.(type) {
	case int64:
		if spec.Type == schema.TypeEnum {
			if set, ok := enum.Lookup(spec.Enum); ok {
				if m, ok := set.ByCode(x); ok {
					return append(out, m.String()...)
				}
			}
		}
		return strconv.AppendInt(out, x, 10)
	case uint64:
		return strconv.AppendUint(out, x, 10)
	case float64:
		return strconv.AppendFloat(out, x, 'g', -1, 64)
	case []byte:
		if spec.Type == schema.TypeBinary {
			return append(out, schema.FormatHex(x)...)
		}
		return append(out, x...)
	case schema.ObjectRef:
		return append(out, x.String()...)
	}
	return out
}

// check validates a stored-form value against spec.
func check(spec schema.FieldSpec, v any) error {
	mismatch := func() error {
		return errors.Wrapf(exception.ErrTypeMismatch, "field %s wants stored %s", spec.Name, spec.Type)
	}

	switch spec.Type {
	case schema.TypeInt8, schema.TypeInt16, schema.TypeInt32, schema.TypeInt64:
		x, ok := v.(int64)
		if !ok {
			return mismatch()
		}
		if bits := spec.Type.Bits(); bits < 64 {
			lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
			if x < lo || x > hi {
				return mismatch()
			}
		}
	case schema.TypeUint8, schema.TypeUint16, schema.TypeUint32, schema.TypeUint64:
		x, ok := v.(uint64)
		if !ok {
			return mismatch()
		}
		if bits := spec.Type.Bits(); bits < 64 && x > uint64(1)<<bits-1 {
			return mismatch()
		}
	case schema.TypeDouble:
		if _, ok := v.(float64); !ok {
			return mismatch()
		}
	case schema.TypeString, schema.TypeBinary:
		b, ok := v.([]byte)
		if !ok {
			return mismatch()
		}
		if len(b) > spec.MaxSize {
			return errors.Wrapf(exception.ErrFieldValueTooLarge, "field %s: %d bytes exceeds %d", spec.Name, len(b), spec.MaxSize)
		}
	case schema.TypeEnum:
		code, ok := v.(int64)
		if !ok || code < 0 || code > math.MaxUint8 {
			return mismatch()
		}
		set, ok := enum.Lookup(spec.Enum)
		if !ok {
			return mismatch()
		}
		if _, ok := set.ByCode(code); !ok {
			return errors.Wrapf(exception.ErrUnknownEnumValue, "field %s: %s has no code %d", spec.Name, spec.Enum, code)
		}
	default:
		return mismatch()
	}
	return nil
}
