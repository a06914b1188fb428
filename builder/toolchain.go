package builder

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

type Toolchain struct {
	CC string
	AR string
}

// IsClang reports whether CC is a clang driver, which takes a --target
// instead of per-architecture executables.
func (t Toolchain) IsClang() bool {
	return strings.Contains(filepath.Base(t.CC), "clang")
}

func findToolchain(env Env) (Toolchain, error) {
	cc := env.Value("CC")
	if len(cc) == 0 {
		var err error
		if cc, err = findFirst("arm-none-eabi-gcc", "clang", "gcc", "cc"); err != nil {
			return Toolchain{}, errors.Join(ErrToolchainNotFound, err)
		}
	}

	ar := env.Value("AR")
	if len(ar) == 0 {
		var err error
		if ar, err = findFirst("arm-none-eabi-ar", "llvm-ar", "ar"); err != nil {
			return Toolchain{}, errors.Join(ErrToolchainNotFound, err)
		}
	}

	return Toolchain{
		CC: cc,
		AR: ar,
	}, nil
}

func findFirst(cmds ...string) (fname string, err error) {
	for _, cmd := range cmds {
		if fname, err = findExecutable(cmd); err == nil {
			return fname, nil
		}
	}
	return "", err
}

func findExecutable(cmd string) (string, error) {
	fname, err := exec.LookPath(cmd)
	if err == nil {
		fname, err = filepath.Abs(fname)
	}
	return fname, err
}
