//go:build !cortexm

package bootstrap

import "omibyte.io/cortexrt/runtime/asm"

// Linker symbols resolved through the installed machine.
const (
	SymSBSS   = "_SBSS"
	SymEBSS   = "_EBSS"
	SymSDATA  = "_SDATA"
	SymEDATA  = "_EDATA"
	SymSIDATA = "_SIDATA"
)

var entry func()

func linkerLayout() Layout {
	return Layout{
		SBSS:   asm.Symbol(SymSBSS),
		EBSS:   asm.Symbol(SymEBSS),
		SDATA:  asm.Symbol(SymSDATA),
		EDATA:  asm.Symbol(SymEDATA),
		SIDATA: asm.Symbol(SymSIDATA),
	}
}

// Package initialization has already run in the host process.
func initPackages() {}
