// Package scs decodes registers of the System Control Space.
package scs

import (
	"github.com/usbarmory/tamago/bits"

	"omibyte.io/cortexrt/runtime/asm"
)

// ICSR bit positions.
const (
	ICSR_VECTACTIVE = 0
	ICSR_RETTOBASE  = 11
	ICSR_PENDSTCLR  = 25
	ICSR_PENDSTSET  = 26
	ICSR_PENDSVCLR  = 27
	ICSR_PENDSVSET  = 28
	ICSR_NMIPENDSET = 31

	vectActiveMask = 0x1ff
)

// CPACR coprocessor access fields for the FPU.
const (
	CPACR_CP10 = 20
	CPACR_CP11 = 22

	cpFullAccess = 0b11
)

// ExternalBase is the exception number of external interrupt 0.
const ExternalBase = 16

// ICSR is a snapshot of the Interrupt Control and State Register.
type ICSR uint32

// ReadICSR samples the live register.
func ReadICSR() ICSR {
	return ICSR(asm.ICSR())
}

// VectActive is the number of the exception currently being serviced, 0 in
// thread mode.
func (r ICSR) VectActive() uint16 {
	v := uint32(r)
	return uint16(bits.Get(&v, ICSR_VECTACTIVE, vectActiveMask))
}

// IRQ is VectActive offset so that external interrupts are non-negative and
// internal exceptions negative.
func (r ICSR) IRQ() int16 {
	return int16(r.VectActive()) - ExternalBase
}

func (r ICSR) PendSVSet() bool {
	v := uint32(r)
	return bits.Get(&v, ICSR_PENDSVSET, 1) == 1
}

func (r ICSR) PendSTSet() bool {
	v := uint32(r)
	return bits.Get(&v, ICSR_PENDSTSET, 1) == 1
}

func (r ICSR) NMIPendSet() bool {
	v := uint32(r)
	return bits.Get(&v, ICSR_NMIPENDSET, 1) == 1
}

// WithVectActive returns r with the VECTACTIVE field replaced.
func (r ICSR) WithVectActive(n uint16) ICSR {
	v := uint32(r)
	bits.SetN(&v, ICSR_VECTACTIVE, vectActiveMask, uint32(n))
	return ICSR(v)
}

// EnableFPU grants full access to coprocessors 10 and 11.
func EnableFPU() {
	v := asm.CPACR()
	bits.SetN(&v, CPACR_CP10, cpFullAccess, cpFullAccess)
	bits.SetN(&v, CPACR_CP11, cpFullAccess, cpFullAccess)
	asm.SetCPACR(v)
	asm.Barrier()
}

// FPUEnabled reports whether both FPU coprocessors have full access.
func FPUEnabled() bool {
	v := asm.CPACR()
	return bits.Get(&v, CPACR_CP10, cpFullAccess) == cpFullAccess &&
		bits.Get(&v, CPACR_CP11, cpFullAccess) == cpFullAccess
}
