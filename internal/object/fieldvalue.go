package object

import (
	"encoding/binary"
	"math"
	"strings"

	"xroad/internal/errors"
	"xroad/internal/model/enum"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// DecodeFieldValue reads a field value blob. Strings end at the first NUL, integers are
// little endian of 1, 2, 4 or 8 bytes and doubles are 4 or 8 bytes.
func DecodeFieldValue(typ enum.FieldType, blob []byte) (any, error) {
	switch typ {
	case enum.FieldTypeString:
		s, _, _ := strings.Cut(string(blob), "\x00")
		return s, nil
	case enum.FieldTypeInteger:
		switch len(blob) {
		case 1:
			return int64(int8(blob[0])), nil
		case 2:
			return int64(int16(binary.LittleEndian.Uint16(blob))), nil
		case 4:
			return int64(int32(binary.LittleEndian.Uint32(blob))), nil
		case 8:
			return int64(binary.LittleEndian.Uint64(blob)), nil
		}
	case enum.FieldTypeDouble:
		switch len(blob) {
		case 4:
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(blob))), nil
		case 8:
			return math.Float64frombits(binary.LittleEndian.Uint64(blob)), nil
		}
	default:
		return nil, errors.Wrapf(exception.ErrUnknownEnumValue, "field type %d", typ)
	}
	return nil, errors.Wrapf(exception.ErrParse, "%s value of %d bytes", typ, len(blob))
}

// EncodeFieldValue writes v as a field value blob: strings as is, integers as 8 bytes and
// doubles as 8 bytes, little endian.
func EncodeFieldValue(v any) (enum.FieldType, []byte, error) {
	switch x := v.(type) {
	case string:
		return enum.FieldTypeString, []byte(x), nil
	case int:
		return enum.FieldTypeInteger, binary.LittleEndian.AppendUint64(nil, uint64(x)), nil
	case int64:
		return enum.FieldTypeInteger, binary.LittleEndian.AppendUint64(nil, uint64(x)), nil
	case float64:
		return enum.FieldTypeDouble, binary.LittleEndian.AppendUint64(nil, math.Float64bits(x)), nil
	}
	return 0, nil, errors.Wrapf(exception.ErrTypeMismatch, "field value of %T", v)
}

// TypedValue decodes the typed value of a record holding "type" and "value" fields,
// such as field and strategy_param. An unset value returns None.
func TypedValue(rec *Record) (Opt[any], error) {
	typ, err := rec.Get("type")
	if err != nil {
		return None[any](), err
	}
	value, err := rec.Get("value")
	if err != nil {
		return None[any](), err
	}

	ft, ok := typ.Value().(enum.FieldType)
	blob, set := value.Value().([]byte)
	if !ok || !set {
		return None[any](), nil
	}

	v, err := DecodeFieldValue(ft, blob)
	if err != nil {
		return None[any](), errors.Wrapf(err, "field value of %s", rec.Schema().Name)
	}
	return Some(v), nil
}

// SetTypedValue stores v with its matching type tag into a record holding "type" and "value".
// Both fields are checked before either is written, so a rejected value leaves the record as is.
func SetTypedValue(rec *Record, v any) error {
	typ, blob, err := EncodeFieldValue(v)
	if err != nil {
		return err
	}
	checks := []struct {
		name  string
		value any
	}{{"type", typ}, {"value", blob}}
	for _, c := range checks {
		spec, err := rec.spec(c.name)
		if err != nil {
			return err
		}
		if _, err := schema.Encode(spec, c.value); err != nil {
			return errors.Wrapf(err, "set field value of %s", rec.Schema().Name)
		}
	}

	if err := rec.Set("value", blob); err != nil {
		return err
	}
	return rec.Set("type", typ)
}
