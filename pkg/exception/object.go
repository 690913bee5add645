package exception

import "github.com/yanun0323/errors"

// Schema and type errors. These indicate a programming mistake and are not retried.
var (
	ErrUnknownField      = errors.New("object: unknown field")
	ErrTypeMismatch      = errors.New("object: type mismatch")
	ErrUnknownRecordKind = errors.New("object: unknown record kind")
	ErrNotCreatable      = errors.New("object: kind is not creatable")
	ErrNotOwnable        = errors.New("object: kind is transient")
	ErrNullHandle        = errors.New("object: null handle")
)

// Value errors, correctable by the caller.
var (
	ErrUnknownEnumValue   = errors.New("object: unknown enum value")
	ErrFieldValueTooLarge = errors.New("object: field value too large")
	ErrParse              = errors.New("object: parse error")
)

// ErrBrokenRef is returned when a referenced record no longer exists.
var ErrBrokenRef = errors.New("object: broken reference")
