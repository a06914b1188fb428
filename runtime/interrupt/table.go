package interrupt

import (
	"omibyte.io/cortexrt/runtime/register/scs"
)

// NumInterrupts is the number of external interrupt slots in the vector table.
const NumInterrupts = 240

// Handler receives the number of the external interrupt being serviced.
type Handler func(nr uint8)

var (
	irqHandler Handler = defaultIRQHandler
	registered bool
	sealed     bool
)

func defaultIRQHandler(uint8) {}

// SetIRQHandler installs h as the handler for every external interrupt. It
// must be called before the runtime seals the vector table.
func SetIRQHandler(h Handler) error {
	switch {
	case h == nil:
		return ErrNilHandler
	case sealed:
		return ErrSealed
	case registered:
		return ErrAlreadyRegistered
	}
	irqHandler = h
	registered = true
	return nil
}

// Seal freezes the handler installation. Called by the reset handler.
func Seal() {
	sealed = true
}

func Sealed() bool {
	return sealed
}

// Trampoline is installed in every interrupt slot. It recovers the IRQ
// number from ICSR and forwards it to the registered handler.
func Trampoline() {
	irqHandler(uint8(scs.ReadICSR().VectActive() - scs.ExternalBase))
}

// Table returns the interrupt part of the vector table. Every slot holds
// Trampoline.
func Table() [NumInterrupts]func() {
	var t [NumInterrupts]func()
	for i := range t {
		t[i] = Trampoline
	}
	return t
}
