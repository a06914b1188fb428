// Package bootstrap is the reset handler: it initializes RAM and hands
// control to the application entry point.
package bootstrap

import (
	"omibyte.io/cortexrt/runtime/abort"
	"omibyte.io/cortexrt/runtime/asm"
	"omibyte.io/cortexrt/runtime/exception"
	"omibyte.io/cortexrt/runtime/interrupt"
	"omibyte.io/cortexrt/runtime/register/scs"
)

// Layout holds the linker-provided section boundaries.
type Layout struct {
	SBSS   uintptr
	EBSS   uintptr
	SDATA  uintptr
	EDATA  uintptr
	SIDATA uintptr
}

func (l Layout) BSSLen() uintptr {
	if l.EBSS <= l.SBSS {
		return 0
	}
	return l.EBSS - l.SBSS
}

func (l Layout) DataLen() uintptr {
	if l.EDATA <= l.SDATA {
		return 0
	}
	return l.EDATA - l.SDATA
}

// ResetVector is the first entry after the initial stack pointer.
var ResetVector = Reset

// Entry makes fn the application entry point called by Reset. fn must not
// return; if it does the core is halted.
func Entry(fn func()) {
	entry = fn
}

// Reset zeroes .bss, copies .data from flash, enables the FPU on parts that
// have one, seals the vector table and runs the entry point.
func Reset() {
	initMemory(linkerLayout())

	if hasFPU {
		scs.EnableFPU()
	}

	initPackages()

	exception.Seal()
	interrupt.Seal()

	if entry != nil {
		abort.Guard(entry)
	}

	asm.Halt()
}

func initMemory(l Layout) {
	if n := l.BSSLen(); n > 0 {
		asm.Fill(l.SBSS, 0, n)
	}

	if n := l.DataLen(); n > 0 {
		asm.Copy(l.SDATA, l.SIDATA, n)
	}

	asm.Barrier()
}
