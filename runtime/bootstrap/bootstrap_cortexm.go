//go:build cortexm

package bootstrap

import "unsafe"

//go:linkname main main.main
func main()

//go:linkname initPackages runtime.initPackages
func initPackages()

var entry = main

//sigo:extern _SBSS _SBSS
var _SBSS unsafe.Pointer

//sigo:extern _EBSS _EBSS
var _EBSS unsafe.Pointer

//sigo:extern _SDATA _SDATA
var _SDATA unsafe.Pointer

//sigo:extern _EDATA _EDATA
var _EDATA unsafe.Pointer

//sigo:extern _SIDATA _SIDATA
var _SIDATA unsafe.Pointer

func linkerLayout() Layout {
	return Layout{
		SBSS:   uintptr(unsafe.Pointer(&_SBSS)),
		EBSS:   uintptr(unsafe.Pointer(&_EBSS)),
		SDATA:  uintptr(unsafe.Pointer(&_SDATA)),
		EDATA:  uintptr(unsafe.Pointer(&_EDATA)),
		SIDATA: uintptr(unsafe.Pointer(&_SIDATA)),
	}
}

// reset is what __RESET_VECTOR points to.
//
//go:export reset reset
func reset() {
	Reset()
}
