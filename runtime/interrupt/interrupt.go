// Package interrupt provides global interrupt masking and critical sections
// for a single Cortex-M core.
package interrupt

import (
	"omibyte.io/cortexrt/runtime/asm"
	"omibyte.io/cortexrt/runtime/register/primask"
)

// Disable masks all exceptions with configurable priority. Calling it while
// already disabled has no effect.
func Disable() {
	asm.Cpsid()
	asm.Barrier()
}

// Enable unmasks exceptions with configurable priority.
//
// Enable is unsafe inside a critical section: callers further up the stack
// rely on interrupts staying masked until their Free returns.
func Enable() {
	asm.Barrier()
	asm.Cpsie()
}

// Free runs f with interrupts disabled and returns its result. The PRIMASK
// state seen on entry is restored on return, so Free nests.
//
// If f panics interrupts are left disabled.
func Free[R any](f func(cs *CriticalSection) R) R {
	state := primask.Read()

	Disable()

	r := f(&CriticalSection{})

	if state.IsActive() {
		Enable()
	}

	return r
}

// Run is Free for bodies without a result.
func Run(f func(cs *CriticalSection)) {
	Free(func(cs *CriticalSection) struct{} {
		f(cs)
		return struct{}{}
	})
}
