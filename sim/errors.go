package sim

import "fmt"

// BusFault is raised when an access touches unmapped memory.
type BusFault struct {
	Addr uintptr
	Len  uintptr
}

func (e *BusFault) Error() string {
	return fmt.Sprintf("sim: bus fault accessing %d bytes at 0x%08x", e.Len, e.Addr)
}

// UndefinedSymbolError is raised when the runtime asks for a linker symbol
// the test did not define.
type UndefinedSymbolError struct {
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return fmt.Sprintf("sim: undefined linker symbol %s", e.Name)
}

// UnhandledError is raised when an exception has no vector.
type UnhandledError struct {
	Exception int
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("sim: no vector for exception %d", e.Exception)
}
