//go:build cortexm

package exception

// The symbols below are referenced by __EXCEPTIONS in asm/<class>/vectors.s.

//sigo:extern __hard_fault_trampoline __hard_fault_trampoline
func hardFaultTrampoline()

// HardFaultTrampoline is the HardFault slot. It is implemented in assembly
// since it has to capture the stack pointer before any prologue runs.
func HardFaultTrampoline() {
	hardFaultTrampoline()
}

//go:export hard_fault hard_fault
func exportedHardFault(frame *Frame) {
	HandleHardFault(frame)
}

//go:export nmi nmi
func nmi() { Dispatch(NMI) }

//go:export mem_manage mem_manage
func memManage() { Dispatch(MemManage) }

//go:export bus_fault bus_fault
func busFault() { Dispatch(BusFault) }

//go:export usage_fault usage_fault
func usageFault() { Dispatch(UsageFault) }

//go:export sv_call sv_call
func svCall() { Dispatch(SVCall) }

//go:export debug_monitor debug_monitor
func debugMonitor() { Dispatch(DebugMonitor) }

//go:export pend_sv pend_sv
func pendSV() { Dispatch(PendSV) }

//go:export sys_tick sys_tick
func sysTick() { Dispatch(SysTick) }

//go:export default_exception_handler default_exception_handler
func defaultExceptionHandler() { DefaultHandler() }
