package exception

import "errors"

var (
	ErrSealed            = errors.New("exception table is sealed")
	ErrAlreadyRegistered = errors.New("exception handler already registered")
	ErrNilHandler        = errors.New("nil exception handler")
	ErrNotHandler        = errors.New("exception has no handler slot")
	ErrHardFaultShape    = errors.New("hard fault handlers take the exception frame; use RegisterHardFault")
)
