// Package abort is the runtime's panic policy: a panic never returns.
package abort

import (
	"omibyte.io/cortexrt/runtime/asm"
	"omibyte.io/cortexrt/runtime/interrupt"
)

// Handler is called with the value passed to panic.
type Handler func(reason any)

var handler Handler = Default

// Default masks interrupts and parks the core.
func Default(reason any) {
	interrupt.Disable()
	asm.Halt()
}

// SetHandler replaces the panic handler and returns the previous one. A nil
// handler restores Default.
func SetHandler(h Handler) Handler {
	prev := handler
	if h == nil {
		h = Default
	}
	handler = h
	return prev
}

// Abort runs the panic handler and halts if it returns.
func Abort(reason any) {
	handler(reason)
	asm.Halt()
}

// Guard runs f and turns a panic escaping it into Abort.
func Guard(f func()) {
	defer func() {
		if r := recover(); r != nil {
			if r == asm.ErrHalted {
				panic(r)
			}
			Abort(r)
		}
	}()
	f()
}
