package sim

import (
	"encoding/binary"

	"fortio.org/safecast"
)

// Region is a contiguous block of simulated memory.
type Region struct {
	Name string
	Base uintptr
	Data []byte
}

func (r *Region) contains(addr, n uintptr) bool {
	if addr < r.Base {
		return false
	}
	size, err := safecast.Conv[uintptr](len(r.Data))
	if err != nil {
		return false
	}
	off := addr - r.Base
	return off <= size && n <= size-off
}

// slice returns the n bytes at addr, faulting if they are not mapped by a
// single region.
func (c *CPU) slice(addr, n uintptr) []byte {
	for _, r := range c.regions {
		if !r.contains(addr, n) {
			continue
		}
		off, err := safecast.Conv[int](addr - r.Base)
		if err != nil {
			break
		}
		length, err := safecast.Conv[int](n)
		if err != nil {
			break
		}
		return r.Data[off : off+length]
	}
	panic(&BusFault{Addr: addr, Len: n})
}

// Region returns the region called name, or nil.
func (c *CPU) Region(name string) *Region {
	for _, r := range c.regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func (c *CPU) Fill(addr uintptr, value byte, n uintptr) {
	if n == 0 {
		return
	}
	b := c.slice(addr, n)
	for i := range b {
		b[i] = value
	}
}

func (c *CPU) Copy(dst, src uintptr, n uintptr) {
	if n == 0 {
		return
	}
	copy(c.slice(dst, n), c.slice(src, n))
}

func (c *CPU) Load32(addr uintptr) uint32 {
	return binary.LittleEndian.Uint32(c.slice(addr, 4))
}

func (c *CPU) Store32(addr uintptr, v uint32) {
	binary.LittleEndian.PutUint32(c.slice(addr, 4), v)
}

// Read returns a copy of n bytes at addr.
func (c *CPU) Read(addr uintptr, n int) []byte {
	length, err := safecast.Conv[uintptr](n)
	if err != nil {
		panic(&BusFault{Addr: addr})
	}
	out := make([]byte, n)
	copy(out, c.slice(addr, length))
	return out
}

// Write stores b at addr.
func (c *CPU) Write(addr uintptr, b []byte) {
	length, err := safecast.Conv[uintptr](len(b))
	if err != nil {
		panic(&BusFault{Addr: addr})
	}
	copy(c.slice(addr, length), b)
}
