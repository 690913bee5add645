package schema

import (
	"fmt"
	"sync"

	"xroad/internal/model/enum"
)

// reservedField is the record identity, never a schema field.
const reservedField = "id"

// Registry maps every record kind to its schema. It is read-only once built.
type Registry struct {
	schemas   []*Schema
	byName    map[string]RecordKind
	printable []RecordKind
	creatable []RecordKind
}

// NewRegistry validates the schemas and builds a registry. schemas[i] must describe kind i+1.
func NewRegistry(schemas []Schema) (*Registry, error) {
	r := &Registry{
		schemas: make([]*Schema, 0, len(schemas)),
		byName:  make(map[string]RecordKind, len(schemas)),
	}

	for i := range schemas {
		s := schemas[i]
		if s.Kind != RecordKind(i+1) {
			return nil, fmt.Errorf("schema %d has kind %d, want %d", i, s.Kind, i+1)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("kind %d has no name", s.Kind)
		}
		if _, ok := r.byName[s.Name]; ok {
			return nil, fmt.Errorf("kind name already exists: %s", s.Name)
		}
		if s.Creatable && s.Transient {
			return nil, fmt.Errorf("kind %s is both creatable and transient", s.Name)
		}

		s.Fields = append([]FieldSpec(nil), s.Fields...)
		s.index = make(map[string]int, len(s.Fields))
		for j, f := range s.Fields {
			if err := validateField(f, len(schemas)); err != nil {
				return nil, fmt.Errorf("kind %s: %w", s.Name, err)
			}
			if _, ok := s.index[f.Name]; ok {
				return nil, fmt.Errorf("kind %s: field name already exists: %s", s.Name, f.Name)
			}
			s.index[f.Name] = j
		}

		r.schemas = append(r.schemas, &s)
		r.byName[s.Name] = s.Kind
		if s.Printable {
			r.printable = append(r.printable, s.Kind)
		}
		if s.Creatable {
			r.creatable = append(r.creatable, s.Kind)
		}
	}

	return r, nil
}

func validateField(f FieldSpec, kinds int) error {
	if f.Name == "" {
		return fmt.Errorf("field name is empty")
	}
	if f.Name == reservedField {
		return fmt.Errorf("field name is reserved: %s", f.Name)
	}
	if !f.Type.IsAvailable() {
		return fmt.Errorf("field %s has invalid type %d", f.Name, f.Type)
	}

	switch f.Type {
	case TypeString, TypeBinary:
		if f.MaxSize <= 0 {
			return fmt.Errorf("field %s needs a positive max size", f.Name)
		}
	case TypeEnum:
		if _, ok := enum.Lookup(f.Enum); !ok {
			return fmt.Errorf("field %s uses unknown enum %q", f.Name, f.Enum)
		}
	case TypeRef:
		if int(f.Target) > kinds {
			return fmt.Errorf("field %s references unknown kind %d", f.Name, f.Target)
		}
	}
	return nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(table)
	if err != nil {
		panic(fmt.Sprintf("schema: build default registry, err: %+v", err))
	}
	return r
})

// Default returns the registry built from the static record table.
func Default() *Registry {
	return defaultRegistry()
}

// Schema returns the schema of kind.
func (r *Registry) Schema(kind RecordKind) (*Schema, bool) {
	if kind == 0 || int(kind) > len(r.schemas) {
		return nil, false
	}
	return r.schemas[kind-1], true
}

// MustSchema returns the schema of kind and panics for an unregistered kind.
func (r *Registry) MustSchema(kind RecordKind) *Schema {
	s, ok := r.Schema(kind)
	if !ok {
		panic(fmt.Sprintf("schema: unregistered kind %s", kind))
	}
	return s
}

// KindByName returns the kind registered under name.
func (r *Registry) KindByName(name string) (RecordKind, bool) {
	k, ok := r.byName[name]
	return k, ok
}

// Len returns the number of registered kinds.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// Kinds returns every registered kind in declaration order.
func (r *Registry) Kinds() []RecordKind {
	kinds := make([]RecordKind, len(r.schemas))
	for i, s := range r.schemas {
		kinds[i] = s.Kind
	}
	return kinds
}

// PrintableKinds returns the kinds treated as persisted tabular records.
func (r *Registry) PrintableKinds() []RecordKind {
	return append([]RecordKind(nil), r.printable...)
}

// CreatableKinds returns the kinds callers may create.
func (r *Registry) CreatableKinds() []RecordKind {
	return append([]RecordKind(nil), r.creatable...)
}

// IsPrintable reports whether kind is a printable kind.
func (r *Registry) IsPrintable(kind RecordKind) bool {
	s, ok := r.Schema(kind)
	return ok && s.Printable
}
