//go:build !cortexm

package interrupt

// Unseal reopens handler installation and drops the registered handler.
// Only hosted builds can power-cycle the core this way.
func Unseal() {
	sealed = false
	registered = false
	irqHandler = defaultIRQHandler
}
