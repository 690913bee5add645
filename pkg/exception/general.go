package exception

import "github.com/yanun0323/errors"

// General errors
var (
	ErrNilInstance     = errors.New("nil instance")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInternal        = errors.New("internal error")
)

// Config and storage errors
var (
	ErrInvalidConfig = errors.New("config: invalid")
	ErrStoreClosed   = errors.New("store: closed")
)
