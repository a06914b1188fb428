//go:build cortexm

package interrupt

// irq_handler is called by __irq_handler_trampoline, which every slot of
// __INTERRUPTS (asm/<class>/vectors.s) points to.
//
//go:export irq_handler irq_handler
func exportedIRQHandler(nr uint8) {
	irqHandler(nr)
}
