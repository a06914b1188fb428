//go:build !cortexm

package asm

import "errors"

var ErrNoMachine = errors.New("asm: no machine installed")

var machine Machine

// Install makes m the target of every stub call and returns a function that
// puts the previous machine back.
func Install(m Machine) (restore func()) {
	prev := machine
	machine = m
	return func() {
		machine = prev
	}
}

// Installed returns the current machine, or nil.
func Installed() Machine {
	return machine
}

func current() Machine {
	if machine == nil {
		panic(ErrNoMachine)
	}
	return machine
}

func Cpsid() {
	current().Cpsid()
}

func Cpsie() {
	current().Cpsie()
}

func Primask() uint32 {
	return current().Primask()
}

func MSP() uint32 {
	return current().MSP()
}

func SetMSP(sp uint32) {
	current().SetMSP(sp)
}

func ICSR() uint32 {
	return current().ICSR()
}

func CPACR() uint32 {
	return current().CPACR()
}

func SetCPACR(v uint32) {
	current().SetCPACR(v)
}

// Barrier keeps memory accesses from moving across it. The hosted machine
// executes every access in program order, so there is nothing to emit.
func Barrier() {}

func Halt() {
	current().Halt()
	// A machine that returns from Halt is broken; never hand control back.
	for {
	}
}

func Fill(addr uintptr, value byte, n uintptr) {
	current().Fill(addr, value, n)
}

func Copy(dst, src uintptr, n uintptr) {
	current().Copy(dst, src, n)
}

func Load32(addr uintptr) uint32 {
	return current().Load32(addr)
}

func Symbol(name string) uintptr {
	return current().Symbol(name)
}
