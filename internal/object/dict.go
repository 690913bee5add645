package object

import (
	"math"
	"strconv"

	"xroad/internal/errors"
	"xroad/internal/model/enum"
	"xroad/internal/schema"
)

// DictID is the key of the record id in ToDict output.
const DictID = "id"

// ToDict projects every set field into a map. Unset fields have no key. Blobs are lowercase
// hex, enums are member names and references are "(kind,id)" text; references are not followed.
// NaN and infinite doubles become "NaN", "+Inf" and "-Inf".
func (r *Record) ToDict() (map[string]any, error) {
	id, err := r.ID()
	if err != nil {
		return nil, errors.Wrap(err, "to dict")
	}

	out := make(map[string]any, len(r.schema.Fields)+1)
	out[DictID] = id
	for _, spec := range r.schema.Fields {
		v, err := r.Get(spec.Name)
		if err != nil {
			return nil, err
		}
		value, ok := v.Get()
		if !ok {
			continue
		}
		out[spec.Name] = dictValue(spec, value)
	}
	return out, nil
}

func dictValue(spec schema.FieldSpec, v any) any {
	switch spec.Type {
	case schema.TypeDouble:
		// JSON has no literal for these; "NaN", "+Inf" and "-Inf" parse back with strconv.
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
	case schema.TypeBinary:
		if b, ok := v.([]byte); ok {
			return schema.FormatHex(b)
		}
	case schema.TypeEnum:
		if m, ok := v.(enum.Member); ok {
			return m.String()
		}
	case schema.TypeRef:
		if ref, ok := v.(schema.ObjectRef); ok {
			return ref.String()
		}
	}
	return v
}
