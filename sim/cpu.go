// Package sim is a hosted model of a single Cortex-M core: its interrupt
// mask, stack pointer, ICSR and a byte-addressed memory map. Installing a CPU
// routes the runtime's assembly stubs to it, so reset, critical sections and
// exception entry can be exercised under the regular Go toolchain.
package sim

import (
	"golang.org/x/exp/slices"

	"github.com/usbarmory/tamago/bits"
	"k8s.io/klog"

	"omibyte.io/cortexrt/runtime/asm"
)

const (
	primaskPM = 0

	icsrVectActive     = 0
	icsrVectActiveMask = 0x1ff

	// FrameSize is the number of bytes stacked on exception entry.
	FrameSize = 8 * 4

	// Exception numbers with fixed priority.
	excReset     = 1
	excNMI       = 2
	excHardFault = 3
)

// Vectors resolves exception numbers to handlers.
type Vectors interface {
	InitialSP() uint32
	Handler(n int) func()
}

// CPU is a simulated core. It is not safe for concurrent use: like the real
// thing it executes one instruction stream, interrupted only by Raise.
type CPU struct {
	primask uint32
	msp     uint32
	icsr    uint32
	cpacr   uint32

	regions []*Region
	symbols map[string]uintptr
	vectors Vectors

	pending []int
	taken   []int
}

// Option configures a CPU.
type Option func(*CPU)

// WithRegion maps size bytes of memory at base.
func WithRegion(name string, base uintptr, size int) Option {
	return func(c *CPU) {
		c.regions = append(c.regions, &Region{
			Name: name,
			Base: base,
			Data: make([]byte, size),
		})
	}
}

// WithSymbol defines a linker symbol.
func WithSymbol(name string, addr uintptr) Option {
	return func(c *CPU) {
		c.symbols[name] = addr
	}
}

// WithVectors sets the vector table consulted on exception entry.
func WithVectors(v Vectors) Option {
	return func(c *CPU) {
		c.vectors = v
	}
}

// WithStack points the main stack pointer at sp.
func WithStack(sp uint32) Option {
	return func(c *CPU) {
		c.msp = sp
	}
}

// LM3S6965 memory map: 256K flash at 0, 64K SRAM at 0x2000_0000.
const (
	FlashBase = 0x0000_0000
	FlashSize = 256 << 10
	SRAMBase  = 0x2000_0000
	SRAMSize  = 64 << 10
)

// New returns a core with interrupts enabled. Without any WithRegion option it
// gets the LM3S6965 memory map and a stack at the top of SRAM.
func New(opts ...Option) *CPU {
	c := &CPU{
		symbols: map[string]uintptr{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.regions) == 0 {
		WithRegion("flash", FlashBase, FlashSize)(c)
		WithRegion("sram", SRAMBase, SRAMSize)(c)
		if c.msp == 0 {
			c.msp = SRAMBase + SRAMSize
		}
	}
	return c
}

// Install routes the runtime's stubs to c until restore is called.
func (c *CPU) Install() (restore func()) {
	return asm.Install(c)
}

// SetVectors replaces the vector table.
func (c *CPU) SetVectors(v Vectors) {
	c.vectors = v
}

func (c *CPU) Cpsid() {
	bits.Set(&c.primask, primaskPM)
}

func (c *CPU) Cpsie() {
	bits.Clear(&c.primask, primaskPM)
	c.drain()
}

func (c *CPU) Primask() uint32 {
	return c.primask
}

// SetPrimask writes PRIMASK directly, as MSR would.
func (c *CPU) SetPrimask(v uint32) {
	c.primask = v
	if !c.masked() {
		c.drain()
	}
}

func (c *CPU) MSP() uint32 {
	return c.msp
}

func (c *CPU) SetMSP(sp uint32) {
	c.msp = sp
}

func (c *CPU) ICSR() uint32 {
	return c.icsr
}

// VectActive is the exception number being serviced, 0 in thread mode.
func (c *CPU) VectActive() int {
	return int(bits.Get(&c.icsr, icsrVectActive, icsrVectActiveMask))
}

func (c *CPU) CPACR() uint32 {
	return c.cpacr
}

func (c *CPU) SetCPACR(v uint32) {
	c.cpacr = v
}

// Halt stops the core by unwinding to the enclosing Run.
func (c *CPU) Halt() {
	klog.V(2).Infof("sim: halted in exception %d", c.VectActive())
	panic(asm.ErrHalted)
}

func (c *CPU) Symbol(name string) uintptr {
	addr, ok := c.symbols[name]
	if !ok {
		panic(&UndefinedSymbolError{Name: name})
	}
	return addr
}

// DefineSymbol adds or replaces a linker symbol.
func (c *CPU) DefineSymbol(name string, addr uintptr) {
	c.symbols[name] = addr
}

// Run executes f on the core and reports whether it ended in Halt. Any other
// panic propagates.
func (c *CPU) Run(f func()) (halted bool) {
	defer func() {
		if r := recover(); r != nil {
			if r != asm.ErrHalted {
				panic(r)
			}
			halted = true
		}
	}()
	f()
	return false
}

// Boot loads the initial stack pointer from v, clears PRIMASK and runs the
// reset vector.
func (c *CPU) Boot(v Vectors) (halted bool) {
	c.vectors = v
	c.primask = 0
	c.icsr = 0
	c.pending = nil
	c.SetMSP(v.InitialSP())

	reset := v.Handler(excReset)
	if reset == nil {
		return c.Run(c.Halt)
	}
	return c.Run(reset)
}

func (c *CPU) masked() bool {
	return bits.Get(&c.primask, primaskPM, 1) == 1
}

// Raise signals exception n. Configurable-priority exceptions raised while
// PRIMASK is set stay pending until it is cleared. It reports whether the
// exception was taken immediately.
func (c *CPU) Raise(n int) bool {
	return c.RaiseFrame(n, Frame{})
}

// RaiseFrame is Raise with the register values to stack on entry.
func (c *CPU) RaiseFrame(n int, f Frame) bool {
	if n > excHardFault && c.masked() {
		if !slices.Contains(c.pending, n) {
			c.pending = append(c.pending, n)
			slices.Sort(c.pending)
		}
		klog.V(2).Infof("sim: exception %d pending", n)
		return false
	}
	c.take(n, f)
	return true
}

// Pending returns the exceptions waiting for PRIMASK to clear, lowest number
// first.
func (c *CPU) Pending() []int {
	return slices.Clone(c.pending)
}

// Taken returns every exception entered so far, in order.
func (c *CPU) Taken() []int {
	return slices.Clone(c.taken)
}

func (c *CPU) drain() {
	for len(c.pending) > 0 && !c.masked() {
		n := c.pending[0]
		c.pending = c.pending[1:]
		c.take(n, Frame{})
	}
}

func (c *CPU) take(n int, f Frame) {
	if c.vectors == nil {
		panic(&UnhandledError{Exception: n})
	}
	handler := c.vectors.Handler(n)
	if handler == nil {
		panic(&UnhandledError{Exception: n})
	}

	if f.XPSR == 0 {
		f.XPSR = 1 << 24
	}

	klog.V(2).Infof("sim: entering exception %d", n)
	c.taken = append(c.taken, n)

	savedICSR, savedMSP := c.icsr, c.msp
	c.push(f)
	bits.SetN(&c.icsr, icsrVectActive, icsrVectActiveMask, uint32(n))

	handler()

	c.icsr, c.msp = savedICSR, savedMSP
}

func (c *CPU) push(f Frame) {
	c.msp -= FrameSize
	for i, w := range f.Words() {
		c.Store32(uintptr(c.msp)+uintptr(i)*4, w)
	}
}
