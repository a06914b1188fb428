package interrupt

import "errors"

var (
	ErrSealed            = errors.New("interrupt table is sealed")
	ErrAlreadyRegistered = errors.New("interrupt handler already registered")
	ErrNilHandler        = errors.New("nil interrupt handler")
)
