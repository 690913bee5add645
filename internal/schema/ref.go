package schema

import (
	"strconv"
	"strings"

	"xroad/internal/errors"
	"xroad/pkg/exception"
)

// ObjectRef is a (kind,id) foreign key to another record.
type ObjectRef struct {
	Kind RecordKind
	ID   int64
}

// IsZero reports whether the reference is empty.
func (r ObjectRef) IsZero() bool {
	return r.Kind == 0 && r.ID == 0
}

// String encodes the reference as "(kind,id)".
func (r ObjectRef) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '(')
	b = append(b, r.Kind.String()...)
	b = append(b, ',')
	b = strconv.AppendInt(b, r.ID, 10)
	b = append(b, ')')
	return string(b)
}

// ParseRef decodes "(kind_name,integer_id)". Whitespace around the comma is ignored.
func ParseRef(text string) (ObjectRef, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return ObjectRef{}, errors.Wrapf(exception.ErrParse, "ref %q: missing parens", text)
	}

	kindText, idText, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return ObjectRef{}, errors.Wrapf(exception.ErrParse, "ref %q: missing comma", text)
	}

	kind, ok := ParseKind(strings.TrimSpace(kindText))
	if !ok {
		return ObjectRef{}, errors.Wrapf(exception.ErrParse, "ref %q: unknown kind", text)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return ObjectRef{}, errors.Wrapf(exception.ErrParse, "ref %q: invalid id", text)
	}

	return ObjectRef{Kind: kind, ID: id}, nil
}

// MustParseRef is like ParseRef but panics on malformed text.
func MustParseRef(text string) ObjectRef {
	ref, err := ParseRef(text)
	if err != nil {
		panic(err)
	}
	return ref
}
