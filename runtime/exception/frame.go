package exception

import (
	"fmt"

	"github.com/usbarmory/tamago/bits"
)

// Frame is the register state the core stacks on exception entry, in stack
// order.
type Frame struct {
	R0   uint32
	R1   uint32
	R2   uint32
	R3   uint32
	R12  uint32
	LR   uint32
	PC   uint32
	XPSR uint32
}

// FrameWords is the number of 32-bit words in a Frame.
const FrameWords = 8

// FrameFromWords builds a Frame from words read upwards from the stack pointer.
func FrameFromWords(w [FrameWords]uint32) Frame {
	return Frame{
		R0:   w[0],
		R1:   w[1],
		R2:   w[2],
		R3:   w[3],
		R12:  w[4],
		LR:   w[5],
		PC:   w[6],
		XPSR: w[7],
	}
}

func (f *Frame) Words() [FrameWords]uint32 {
	return [FrameWords]uint32{f.R0, f.R1, f.R2, f.R3, f.R12, f.LR, f.PC, f.XPSR}
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame { r0: 0x%08x, r1: 0x%08x, r2: 0x%08x, r3: 0x%08x, r12: 0x%08x, lr: 0x%08x, pc: 0x%08x, xpsr: 0x%08x }",
		f.R0, f.R1, f.R2, f.R3, f.R12, f.LR, f.PC, f.XPSR)
}

// ThumbBit is set in the XPSR of every valid stacked frame.
const ThumbBit = 24

// IsThumb reports whether the stacked XPSR has the T bit set. A clear T bit
// in a HardFault frame usually means a branch to an even address.
func (f *Frame) IsThumb() bool {
	return bits.Get(&f.XPSR, ThumbBit, 1) == 1
}
