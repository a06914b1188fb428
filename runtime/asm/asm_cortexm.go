//go:build cortexm

package asm

import (
	"unsafe"
	"volatile"
)

//sigo:extern __cpsid __cpsid
func cpsid()

//sigo:extern __cpsie __cpsie
func cpsie()

//sigo:extern __primask __primask
func primask() uint32

//sigo:extern __msp_r __msp_r
func mspRead() uint32

//sigo:extern __msp_w __msp_w
func mspWrite(sp uint32)

//sigo:extern __barrier __barrier
func barrier()

func Cpsid() {
	cpsid()
}

func Cpsie() {
	cpsie()
}

func Primask() uint32 {
	return primask()
}

func MSP() uint32 {
	return mspRead()
}

func SetMSP(sp uint32) {
	mspWrite(sp)
}

func ICSR() uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(ICSRAddr))))
}

func CPACR() uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(uintptr(CPACRAddr))))
}

func SetCPACR(v uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(uintptr(CPACRAddr))), v)
	barrier()
}

// Barrier issues DSB+ISB. The call is opaque to the compiler, so it is also a
// compiler barrier.
func Barrier() {
	barrier()
}

func Halt() {
	for {
	}
}

func Fill(addr uintptr, value byte, n uintptr) {
	for ptr := unsafe.Pointer(addr); n > 0; n-- {
		*(*byte)(ptr) = value
		ptr = unsafe.Add(ptr, 1)
	}
}

func Copy(dst, src uintptr, n uintptr) {
	d := unsafe.Pointer(dst)
	s := unsafe.Pointer(src)
	for ; n > 0; n-- {
		*(*byte)(d) = *(*byte)(s)
		d = unsafe.Add(d, 1)
		s = unsafe.Add(s, 1)
	}
}

func Load32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}
