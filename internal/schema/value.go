package schema

import (
	"fmt"
	"math"
	"reflect"

	"xroad/internal/errors"
	"xroad/internal/model/enum"
	"xroad/pkg/exception"
)

// Encode checks a native value against spec and converts it into the storage form:
// int64 for signed integers and enum codes, uint64 for unsigned integers, float64,
// []byte for strings and blobs, ObjectRef for references.
func Encode(spec FieldSpec, v any) (any, error) {
	switch {
	case spec.Type.IsSigned():
		return encodeSigned(spec, v)
	case spec.Type.IsUnsigned():
		return encodeUnsigned(spec, v)
	}

	switch spec.Type {
	case TypeDouble:
		switch x := v.(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		}
	case TypeString:
		if s, ok := v.(string); ok {
			if len(s) > spec.MaxSize {
				return nil, tooLarge(spec, len(s))
			}
			return []byte(s), nil
		}
	case TypeBinary:
		if b, ok := v.([]byte); ok {
			if len(b) > spec.MaxSize {
				return nil, tooLarge(spec, len(b))
			}
			return append([]byte{}, b...), nil
		}
	case TypeEnum:
		return encodeEnum(spec, v)
	case TypeRef:
		if ref, ok := v.(ObjectRef); ok {
			if !ref.Kind.IsAvailable() {
				return nil, errors.Wrapf(exception.ErrTypeMismatch, "field %s: %s is not a record kind", spec.Name, ref.Kind)
			}
			if spec.Target != 0 && ref.Kind != spec.Target {
				return nil, errors.Wrapf(exception.ErrTypeMismatch, "field %s wants %s reference, got %s", spec.Name, spec.Target, ref)
			}
			return ref, nil
		}
	}

	return nil, mismatch(spec, v)
}

// Decode converts a stored value back into the native value of spec.
func Decode(spec FieldSpec, raw any) (any, error) {
	switch spec.Type {
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64:
		x, ok := raw.(int64)
		if !ok {
			return nil, mismatch(spec, raw)
		}
		switch spec.Type {
		case TypeInt8:
			return int8(x), nil
		case TypeInt16:
			return int16(x), nil
		case TypeInt32:
			return int32(x), nil
		}
		return x, nil
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		x, ok := raw.(uint64)
		if !ok {
			return nil, mismatch(spec, raw)
		}
		switch spec.Type {
		case TypeUint8:
			return uint8(x), nil
		case TypeUint16:
			return uint16(x), nil
		case TypeUint32:
			return uint32(x), nil
		}
		return x, nil
	case TypeDouble:
		if x, ok := raw.(float64); ok {
			return x, nil
		}
	case TypeString:
		if b, ok := raw.([]byte); ok {
			return string(b), nil
		}
	case TypeBinary:
		if b, ok := raw.([]byte); ok {
			return append([]byte{}, b...), nil
		}
	case TypeEnum:
		code, ok := raw.(int64)
		if !ok {
			return nil, mismatch(spec, raw)
		}
		set, _ := enum.Lookup(spec.Enum)
		m, ok := set.ByCode(code)
		if !ok {
			return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "field %s: %s has no code %d", spec.Name, spec.Enum, code)
		}
		return m, nil
	case TypeRef:
		if ref, ok := raw.(ObjectRef); ok {
			return ref, nil
		}
	}

	return nil, mismatch(spec, raw)
}

func encodeSigned(spec FieldSpec, v any) (any, error) {
	var x int64
	switch n := v.(type) {
	case int8:
		if spec.Type != TypeInt8 {
			return nil, mismatch(spec, v)
		}
		x = int64(n)
	case int16:
		if spec.Type != TypeInt16 {
			return nil, mismatch(spec, v)
		}
		x = int64(n)
	case int32:
		if spec.Type != TypeInt32 {
			return nil, mismatch(spec, v)
		}
		x = int64(n)
	case int64:
		if spec.Type != TypeInt64 {
			return nil, mismatch(spec, v)
		}
		x = n
	case int:
		bits := spec.Type.Bits()
		lo, hi := int64(-1)<<(bits-1), int64(math.MaxInt64)
		if bits < 64 {
			hi = int64(1)<<(bits-1) - 1
		}
		if int64(n) < lo || int64(n) > hi {
			return nil, errors.Wrapf(exception.ErrTypeMismatch, "field %s: %d overflows %s", spec.Name, n, spec.Type)
		}
		x = int64(n)
	default:
		return nil, mismatch(spec, v)
	}
	return x, nil
}

func encodeUnsigned(spec FieldSpec, v any) (any, error) {
	var x uint64
	switch n := v.(type) {
	case uint8:
		if spec.Type != TypeUint8 {
			return nil, mismatch(spec, v)
		}
		x = uint64(n)
	case uint16:
		if spec.Type != TypeUint16 {
			return nil, mismatch(spec, v)
		}
		x = uint64(n)
	case uint32:
		if spec.Type != TypeUint32 {
			return nil, mismatch(spec, v)
		}
		x = uint64(n)
	case uint64:
		if spec.Type != TypeUint64 {
			return nil, mismatch(spec, v)
		}
		x = n
	case int:
		bits := spec.Type.Bits()
		hi := uint64(math.MaxUint64)
		if bits < 64 {
			hi = uint64(1)<<bits - 1
		}
		if n < 0 || uint64(n) > hi {
			return nil, errors.Wrapf(exception.ErrTypeMismatch, "field %s: %d overflows %s", spec.Name, n, spec.Type)
		}
		x = uint64(n)
	default:
		return nil, mismatch(spec, v)
	}
	return x, nil
}

func encodeEnum(spec FieldSpec, v any) (any, error) {
	set, ok := enum.Lookup(spec.Enum)
	if !ok {
		return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "field %s: enum %s not registered", spec.Name, spec.Enum)
	}

	switch x := v.(type) {
	case string:
		m, ok := set.ByName(x)
		if !ok {
			return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "field %s: %s has no member %q", spec.Name, spec.Enum, x)
		}
		return m.Code(), nil
	case enum.Member:
		members := set.Members()
		if len(members) == 0 || !sameType(members[0], x) {
			return nil, mismatch(spec, v)
		}
		if _, ok := set.ByCode(x.Code()); !ok {
			return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "field %s: %s has no code %d", spec.Name, spec.Enum, x.Code())
		}
		return x.Code(), nil
	}

	return nil, mismatch(spec, v)
}

// sameType reports whether two members come from the same enum type.
func sameType(a, b enum.Member) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func mismatch(spec FieldSpec, v any) error {
	return errors.Wrapf(exception.ErrTypeMismatch, "field %s wants %s, got %s", spec.Name, spec.Type, typeName(v))
}

func tooLarge(spec FieldSpec, size int) error {
	return errors.Wrapf(exception.ErrFieldValueTooLarge, "field %s: %d bytes exceeds %d", spec.Name, size, spec.MaxSize)
}
