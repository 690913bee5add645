package schema

import "strconv"

// FieldType is the primitive storage shape of a field.
type FieldType uint8

const (
	_type_beg FieldType = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeDouble
	TypeString
	TypeBinary
	TypeEnum
	TypeRef
	_type_end
)

var typeNames = [...]string{
	TypeInt8:   "int8",
	TypeInt16:  "int16",
	TypeInt32:  "int32",
	TypeInt64:  "int64",
	TypeUint8:  "uint8",
	TypeUint16: "uint16",
	TypeUint32: "uint32",
	TypeUint64: "uint64",
	TypeDouble: "double",
	TypeString: "fixed_string",
	TypeBinary: "binary",
	TypeEnum:   "enum",
	TypeRef:    "object_ref",
	_type_end:  "",
}

func (t FieldType) IsAvailable() bool {
	return t > _type_beg && t < _type_end
}

func (t FieldType) String() string {
	if !t.IsAvailable() {
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// IsSigned reports whether t is a signed integer type.
func (t FieldType) IsSigned() bool {
	return t >= TypeInt8 && t <= TypeInt64
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t FieldType) IsUnsigned() bool {
	return t >= TypeUint8 && t <= TypeUint64
}

// Bits returns the width of an integer type, 0 otherwise.
func (t FieldType) Bits() int {
	switch t {
	case TypeInt8, TypeUint8:
		return 8
	case TypeInt16, TypeUint16:
		return 16
	case TypeInt32, TypeUint32:
		return 32
	case TypeInt64, TypeUint64:
		return 64
	}
	return 0
}

// FieldSpec describes one named field of a schema.
type FieldSpec struct {
	Name string
	Type FieldType
	// Enum names the constant set of an enum field.
	Enum string
	// MaxSize is the advisory byte bound of string and binary fields.
	MaxSize int
	// Target is the expected kind of a reference field, zero means any kind.
	Target RecordKind
}

// Flag is a per-kind policy bit.
type Flag uint8

const (
	// Printable kinds are first-class persisted records.
	Printable Flag = 1 << iota
	// Creatable kinds may be minted by callers.
	Creatable
	// Transient kinds have their lifetime managed by the runtime only.
	Transient
)

// Schema is the ordered field list of one record kind.
type Schema struct {
	Kind      RecordKind
	Name      string
	Printable bool
	Creatable bool
	Transient bool
	Fields    []FieldSpec

	index map[string]int
}

// Field returns the spec of the named field.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.Fields[i], true
}

// HasField reports whether name is a field of the schema.
func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// RefFields returns the reference fields in declaration order.
func (s *Schema) RefFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range s.Fields {
		if f.Type == TypeRef {
			out = append(out, f)
		}
	}
	return out
}

func define(kind RecordKind, flags Flag, fields ...FieldSpec) Schema {
	return Schema{
		Kind:      kind,
		Name:      kind.String(),
		Printable: flags&Printable != 0,
		Creatable: flags&Creatable != 0,
		Transient: flags&Transient != 0,
		Fields:    fields,
	}
}

func I8(name string) FieldSpec  { return FieldSpec{Name: name, Type: TypeInt8} }
func I16(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeInt16} }
func I32(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeInt32} }
func I64(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeInt64} }
func U8(name string) FieldSpec  { return FieldSpec{Name: name, Type: TypeUint8} }
func U16(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeUint16} }
func U32(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeUint32} }
func U64(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeUint64} }
func F64(name string) FieldSpec { return FieldSpec{Name: name, Type: TypeDouble} }

func Str(name string, maxSize int) FieldSpec {
	return FieldSpec{Name: name, Type: TypeString, MaxSize: maxSize}
}

func Bin(name string, maxSize int) FieldSpec {
	return FieldSpec{Name: name, Type: TypeBinary, MaxSize: maxSize}
}

// En declares an enum field whose constant set is registered under enumName.
func En(name, enumName string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeEnum, Enum: enumName}
}

// Ref declares a reference field, target zero accepts any kind.
func Ref(name string, target RecordKind) FieldSpec {
	return FieldSpec{Name: name, Type: TypeRef, Target: target}
}
