package object

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"

	"xroad/internal/errors"
	"xroad/internal/model/enum"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// Patch writes string-keyed values into rec, coercing loosely typed input such as decoded JSON:
// numbers to the field width, enum names, hex text for blobs, "(kind,id)" text for references.
// A nil value resets the field. Keys are applied in sorted order and the first error stops.
func Patch(rec *Record, fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec, ok := rec.Schema().Field(name)
		if !ok {
			return errors.Wrapf(exception.ErrUnknownField, "patch %s.%s", rec.Schema().Name, name)
		}

		raw := fields[name]
		if raw == nil {
			if err := rec.Reset(name); err != nil {
				return err
			}
			continue
		}

		v, err := Coerce(spec, raw)
		if err != nil {
			return errors.Wrapf(err, "patch %s.%s", rec.Schema().Name, name)
		}
		if err := rec.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// Coerce converts a loosely typed value into the native value of spec.
func Coerce(spec schema.FieldSpec, raw any) (any, error) {
	switch {
	case spec.Type.IsSigned():
		n, err := toInt(raw)
		if err != nil {
			return nil, err
		}
		bits := spec.Type.Bits()
		if bits < 64 && (n < -(int64(1)<<(bits-1)) || n > int64(1)<<(bits-1)-1) {
			return nil, errors.Wrapf(exception.ErrTypeMismatch, "%d overflows %s", n, spec.Type)
		}
		switch spec.Type {
		case schema.TypeInt8:
			return int8(n), nil
		case schema.TypeInt16:
			return int16(n), nil
		case schema.TypeInt32:
			return int32(n), nil
		}
		return n, nil
	case spec.Type.IsUnsigned():
		n, err := toUint(raw)
		if err != nil {
			return nil, err
		}
		bits := spec.Type.Bits()
		if bits < 64 && n > uint64(1)<<bits-1 {
			return nil, errors.Wrapf(exception.ErrTypeMismatch, "%d overflows %s", n, spec.Type)
		}
		switch spec.Type {
		case schema.TypeUint8:
			return uint8(n), nil
		case schema.TypeUint16:
			return uint16(n), nil
		case schema.TypeUint32:
			return uint32(n), nil
		}
		return n, nil
	}

	switch spec.Type {
	case schema.TypeDouble:
		return toFloat(raw)
	case schema.TypeString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case schema.TypeBinary:
		switch x := raw.(type) {
		case string:
			return schema.ParseHex(x)
		case []byte:
			return x, nil
		}
	case schema.TypeEnum:
		switch x := raw.(type) {
		case string:
			return x, nil
		case json.Number, float64, int, int64:
			code, err := toInt(x)
			if err != nil {
				return nil, err
			}
			return enumByCode(spec, code)
		default:
			return raw, nil
		}
	case schema.TypeRef:
		switch x := raw.(type) {
		case string:
			return schema.ParseRef(x)
		case schema.ObjectRef:
			return x, nil
		}
	}

	return nil, errors.Wrapf(exception.ErrTypeMismatch, "cannot use %T as %s", raw, spec.Type)
}

func toInt(raw any) (int64, error) {
	switch x := raw.(type) {
	case json.Number:
		n, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%q is not an integer", x.String())
		}
		return n, nil
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%v is not an integer", x)
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%q is not an integer", x)
		}
		return n, nil
	}
	return 0, errors.Wrapf(exception.ErrTypeMismatch, "%T is not an integer", raw)
}

func toUint(raw any) (uint64, error) {
	switch x := raw.(type) {
	case json.Number:
		n, err := strconv.ParseUint(x.String(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%q is not an unsigned integer", x.String())
		}
		return n, nil
	case uint64:
		return x, nil
	case string:
		n, err := strconv.ParseUint(x, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%q is not an unsigned integer", x)
		}
		return n, nil
	}
	n, err := toInt(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Wrapf(exception.ErrTypeMismatch, "%d is negative", n)
	}
	return uint64(n), nil
}

func toFloat(raw any) (float64, error) {
	switch x := raw.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%q is not a number", x.String())
		}
		return f, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, errors.Wrapf(exception.ErrTypeMismatch, "%q is not a number", x)
		}
		return f, nil
	}
	return 0, errors.Wrapf(exception.ErrTypeMismatch, "%T is not a number", raw)
}

func enumByCode(spec schema.FieldSpec, code int64) (enum.Member, error) {
	set, ok := enum.Lookup(spec.Enum)
	if !ok {
		return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "enum %s not registered", spec.Enum)
	}
	m, ok := set.ByCode(code)
	if !ok {
		return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "%s has no code %d", spec.Enum, code)
	}
	return m, nil
}
