// Package primask reads the PRIMASK special register.
package primask

import (
	"github.com/usbarmory/tamago/bits"

	"omibyte.io/cortexrt/runtime/asm"
)

// PM is the only implemented bit of PRIMASK. When set, every exception with
// configurable priority is masked.
const PM = 0

// Primask is the state of exceptions with configurable priority.
type Primask uint8

const (
	// Active means configurable-priority exceptions are taken (PM clear).
	Active Primask = iota
	// Inactive means they are masked (PM set).
	Inactive
)

func (p Primask) IsActive() bool {
	return p == Active
}

func (p Primask) IsInactive() bool {
	return p == Inactive
}

func (p Primask) String() string {
	if p == Active {
		return "active"
	}
	return "inactive"
}

// FromBits maps a raw PRIMASK value. Only bit 0 is considered.
func FromBits(v uint32) Primask {
	if bits.Get(&v, PM, 1) == 1 {
		return Inactive
	}
	return Active
}

// Read returns the current PRIMASK state.
func Read() Primask {
	return FromBits(asm.Primask())
}
