package exception

// NumExceptions is the number of exception slots following the reset vector.
const NumExceptions = 14

// Vector is one slot of the exception table: either a handler or a reserved
// word, which is always zero.
type Vector struct {
	Reserved uint32
	Handler  func()
}

func (v Vector) IsReserved() bool {
	return v.Handler == nil
}

var reserved = Vector{Reserved: 0}

func slot(e Exception) Vector {
	return Vector{Handler: func() { Dispatch(e) }}
}

// Table returns the exception part of the vector table, slot 0 being NMI
// (exception number 2).
func Table() [NumExceptions]Vector {
	return [NumExceptions]Vector{
		slot(NMI),
		{Handler: HardFaultTrampoline},
		slot(MemManage),
		slot(BusFault),
		slot(UsageFault),
		reserved,
		reserved,
		reserved,
		reserved,
		slot(SVCall),
		slot(DebugMonitor),
		reserved,
		slot(PendSV),
		slot(SysTick),
	}
}

// SlotOf returns the table index of exception e.
func SlotOf(e Exception) (int, bool) {
	if e < NMI || e >= External {
		return 0, false
	}
	return int(e - NMI), true
}
