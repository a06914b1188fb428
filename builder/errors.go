package builder

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDevice      = errors.New("device not recognized")
	ErrUnknownArch        = errors.New("unsupported architecture")
	ErrNoOutDir           = errors.New("output directory not set")
	ErrToolchainNotFound  = errors.New("no C toolchain found")
	ErrCompileFailed      = errors.New("assembler failed")
	ErrArchiveFailed      = errors.New("archiver failed")
	ErrGraphCycle         = errors.New("build steps form a cycle")
	ErrUnknownConfigField = errors.New("unknown configuration field")
)

// Build steps as named in diagnostics.
const (
	StepAssembly = "assembly step"
	StepLink     = "link script step"
)

// StepError is a failed build step, naming the file it failed on.
type StepError struct {
	Step string
	Path string
	Err  error
}

func (e *StepError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("FAILED: %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("FAILED: %s: %s: %v", e.Step, e.Path, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
