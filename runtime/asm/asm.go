// Package asm exposes the leaf assembly stubs the runtime is built on.
//
// On a Cortex-M target (build tag cortexm) every function here is a thin
// wrapper around a C-ABI symbol assembled from asm/<class>/*.s. In hosted
// builds the same calls are served by the Machine installed with Install,
// which lets the rest of the runtime run unmodified under the regular Go
// toolchain.
package asm

import "errors"

// Machine is the hosted stand-in for the core.
type Machine interface {
	// Cpsid masks configurable-priority exceptions.
	Cpsid()
	// Cpsie unmasks them and takes anything left pending.
	Cpsie()
	Primask() uint32

	MSP() uint32
	SetMSP(uint32)

	ICSR() uint32
	CPACR() uint32
	SetCPACR(uint32)

	// Halt parks the core. It does not return.
	Halt()

	Fill(addr uintptr, value byte, n uintptr)
	Copy(dst, src uintptr, n uintptr)
	Load32(addr uintptr) uint32

	// Symbol resolves a linker-defined address such as _SBSS.
	Symbol(name string) uintptr
}

// Register addresses in the System Control Space.
const (
	ICSRAddr  = 0xE000ED04
	CPACRAddr = 0xE000ED88
)

// ErrHalted is the panic value a hosted Machine raises from Halt so that the
// simulated core can be stopped without killing the host.
var ErrHalted = errors.New("asm: core halted")
