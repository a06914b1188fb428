//go:build !cortexm

package exception

import "omibyte.io/cortexrt/runtime/asm"

// HardFaultTrampoline reads the frame stacked at the main stack pointer and
// passes it to HandleHardFault.
func HardFaultTrampoline() {
	sp := uintptr(asm.MSP())

	var w [FrameWords]uint32
	for i := range w {
		w[i] = asm.Load32(sp + uintptr(i)*4)
	}

	frame := FrameFromWords(w)
	HandleHardFault(&frame)
}

// Unseal drops every registration and reopens the table. Only hosted builds
// can power-cycle the core this way.
func Unseal() {
	sealed = false
	handlers = map[Exception]func(){}
	hardFault = nil
	catchAll = nil
}
