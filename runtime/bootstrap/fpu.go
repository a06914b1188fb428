//go:build has_fpu

package bootstrap

const hasFPU = true
