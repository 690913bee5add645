package object

import (
	"xroad/internal/errors"
	"xroad/internal/node"
	"xroad/internal/schema"
	"xroad/pkg/exception"
)

// FindByString returns the first record of kind held by cache whose string field equals value,
// such as an instrument by alias.
func (f *Factory) FindByString(cache node.Cache, kind schema.RecordKind, field, value string) (*Record, bool, error) {
	s, ok := f.reg.Schema(kind)
	if !ok {
		return nil, false, errors.Wrapf(exception.ErrUnknownRecordKind, "find %s", kind)
	}
	spec, ok := s.Field(field)
	if !ok {
		return nil, false, errors.Wrapf(exception.ErrUnknownField, "find %s.%s", s.Name, field)
	}
	if spec.Type != schema.TypeString {
		return nil, false, errors.Wrapf(exception.ErrTypeMismatch, "find %s.%s: not a string", s.Name, field)
	}

	var (
		found   *Record
		findErr error
	)
	err := f.Each(cache, kind, func(rec *Record) bool {
		v, err := rec.Get(field)
		if err != nil {
			findErr = err
			return false
		}
		if got, ok := v.Value().(string); ok && v.IsSet() && got == value {
			found = rec
			return false
		}
		return true
	})
	if err != nil {
		return nil, false, err
	}
	if findErr != nil {
		return nil, false, findErr
	}
	return found, found != nil, nil
}
