package interrupt

// CriticalSection is a witness that interrupts are disabled on the current
// core. It carries no data. A *CriticalSection handed to a Free body must not
// be retained after the body returns.
type CriticalSection struct{}

// Assume returns a token without disabling anything. The caller must already
// have interrupts masked, e.g. from within an exception handler that runs at
// the highest configurable priority.
func Assume() *CriticalSection {
	return &CriticalSection{}
}

// Mutex guards a value so that it is only reachable inside a critical section.
type Mutex[T any] struct {
	inner T
}

func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{inner: value}
}

// Borrow returns the guarded value. The pointer is only valid while cs is.
// A nil cs panics.
func (m *Mutex[T]) Borrow(cs *CriticalSection) *T {
	if cs == nil {
		panic("interrupt: Borrow outside a critical section")
	}
	return &m.inner
}

// Nr is implemented by device interrupt enumerations.
type Nr interface {
	Nr() uint8
}
