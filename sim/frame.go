package sim

// Frame is the register state stacked on exception entry.
type Frame struct {
	R0, R1, R2, R3 uint32
	R12            uint32
	LR             uint32
	PC             uint32
	XPSR           uint32
}

func (f Frame) Words() [8]uint32 {
	return [8]uint32{f.R0, f.R1, f.R2, f.R3, f.R12, f.LR, f.PC, f.XPSR}
}
