package exception

import (
	"fmt"

	"omibyte.io/cortexrt/runtime/asm"
	"omibyte.io/cortexrt/runtime/register/scs"
)

var (
	handlers  = map[Exception]func(){}
	hardFault func(*Frame)
	catchAll  func(irqn int16)
	sealed    bool
)

func check(e Exception) error {
	if sealed {
		return ErrSealed
	}
	switch e {
	case HardFault:
		return ErrHardFaultShape
	case NMI, MemManage, BusFault, UsageFault, SVCall, DebugMonitor, PendSV, SysTick:
	default:
		return fmt.Errorf("%w: %s", ErrNotHandler, e)
	}
	if _, ok := handlers[e]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, e)
	}
	return nil
}

// Register binds a plain handler to e.
func Register(e Exception, h func()) error {
	if h == nil {
		return ErrNilHandler
	}
	if err := check(e); err != nil {
		return err
	}
	handlers[e] = h
	return nil
}

// RegisterStateful binds h to e together with state initialized to init.
// Every invocation receives the same state by exclusive reference. A handler
// is never re-entered on its own priority level.
func RegisterStateful[T any](e Exception, init T, h func(state *T)) error {
	if h == nil {
		return ErrNilHandler
	}
	if err := check(e); err != nil {
		return err
	}
	state := init
	handlers[e] = func() {
		h(&state)
	}
	return nil
}

// RegisterHardFault binds the HardFault handler. It receives the frame the
// core stacked when the fault was raised. The handler must not return; if it
// does, the core is halted.
func RegisterHardFault(h func(frame *Frame)) error {
	switch {
	case h == nil:
		return ErrNilHandler
	case sealed:
		return ErrSealed
	case hardFault != nil:
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, HardFault)
	}
	hardFault = h
	return nil
}

// RegisterDefault replaces the default handler for every exception without
// a handler of its own. h receives ICSR.VECTACTIVE - 16.
func RegisterDefault(h func(irqn int16)) error {
	switch {
	case h == nil:
		return ErrNilHandler
	case sealed:
		return ErrSealed
	case catchAll != nil:
		return fmt.Errorf("%w: default", ErrAlreadyRegistered)
	}
	catchAll = h
	return nil
}

// Seal freezes registration. Called by the reset handler.
func Seal() {
	sealed = true
}

func Sealed() bool {
	return sealed
}

// Dispatch runs the handler bound to e, or the default handler.
func Dispatch(e Exception) {
	if h, ok := handlers[e]; ok {
		h()
		return
	}
	DefaultHandler()
}

// DefaultHandler services any exception nobody registered for. Without a
// catch-all it parks the core.
func DefaultHandler() {
	if catchAll != nil {
		catchAll(scs.ReadICSR().IRQ())
		return
	}
	asm.Halt()
}

// HandleHardFault runs the HardFault handler on frame and halts if it
// returns.
func HandleHardFault(frame *Frame) {
	if hardFault != nil {
		hardFault(frame)
	} else {
		DefaultHandler()
	}
	asm.Halt()
}
