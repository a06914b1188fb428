// Package exception installs and dispatches the Cortex-M system exceptions.
//
// Handlers are bound to fixed exception names before the reset handler seals
// the table; from then on the table is constant.
package exception

import "fmt"

// Exception is an exception number as reported by ICSR.VECTACTIVE.
type Exception uint16

const (
	Reset        Exception = 1
	NMI          Exception = 2
	HardFault    Exception = 3
	MemManage    Exception = 4
	BusFault     Exception = 5
	UsageFault   Exception = 6
	SVCall       Exception = 11
	DebugMonitor Exception = 12
	PendSV       Exception = 14
	SysTick      Exception = 15

	// External is the number of external interrupt 0.
	External Exception = 16
)

var names = map[Exception]string{
	Reset:        "reset",
	NMI:          "nmi",
	HardFault:    "hard_fault",
	MemManage:    "mem_manage",
	BusFault:     "bus_fault",
	UsageFault:   "usage_fault",
	SVCall:       "sv_call",
	DebugMonitor: "debug_monitor",
	PendSV:       "pend_sv",
	SysTick:      "sys_tick",
}

// IRQ returns the exception number of external interrupt n.
func IRQ(n uint8) Exception {
	return External + Exception(n)
}

// IsExternal reports whether e is an external interrupt.
func (e Exception) IsExternal() bool {
	return e >= External
}

// IRQ returns e offset by -16, the value a catch-all handler receives.
func (e Exception) IRQ() int16 {
	return int16(e) - int16(External)
}

func (e Exception) String() string {
	if name, ok := names[e]; ok {
		return name
	}
	if e.IsExternal() {
		return fmt.Sprintf("irq%d", e-External)
	}
	return fmt.Sprintf("reserved%d", uint16(e))
}
