// Package vector assembles the complete vector table: the initial stack
// pointer, the reset vector, the 14 exception slots and the 240 interrupt
// slots, in the order the core fetches them.
package vector

import (
	"omibyte.io/cortexrt/runtime/bootstrap"
	"omibyte.io/cortexrt/runtime/exception"
	"omibyte.io/cortexrt/runtime/interrupt"
)

// Len is the number of words in the table.
const Len = 2 + exception.NumExceptions + interrupt.NumInterrupts

// Table is a resolved vector table.
type Table struct {
	StackTop   uint32
	Reset      func()
	Exceptions [exception.NumExceptions]exception.Vector
	Interrupts [interrupt.NumInterrupts]func()
}

// New resolves the table the linker would emit for a stack growing down from
// stackTop.
func New(stackTop uint32) *Table {
	return &Table{
		StackTop:   stackTop,
		Reset:      bootstrap.ResetVector,
		Exceptions: exception.Table(),
		Interrupts: interrupt.Table(),
	}
}

// InitialSP is word 0 of the table.
func (t *Table) InitialSP() uint32 {
	return t.StackTop
}

// Handler returns the function vectored for exception number n, or nil for
// reserved and out of range numbers.
func (t *Table) Handler(n int) func() {
	switch {
	case n == int(exception.Reset):
		return t.Reset
	case n >= int(exception.NMI) && n < int(exception.External):
		return t.Exceptions[n-int(exception.NMI)].Handler
	case n >= int(exception.External) && n < Len:
		return t.Interrupts[n-int(exception.External)]
	}
	return nil
}
