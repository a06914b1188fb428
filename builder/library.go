package builder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"k8s.io/klog"
)

type library struct {
	name      string
	args      []string
	filenames []string
}

type libraryConfig struct {
	desc      Description
	toolchain Toolchain
}

func (c libraryConfig) targetArgs() []string {
	var args []string
	if c.toolchain.IsClang() {
		args = append(args, "--target="+c.desc.ABI)
	}
	args = append(args, "-mthumb", "-march="+c.desc.Arch())
	if c.desc.FPU {
		args = append(args, "-mfloat-abi=hard", "-mfpu=fpv4-sp-d16")
	} else {
		args = append(args, "-mfloat-abi=soft")
	}
	return args
}

// compile assembles every source into buildDir and archives the objects as
// lib<name>.a, which is returned.
func (l library) compile(ctx context.Context, config libraryConfig, buildDir string) (archive string, err error) {
	var objects []string
	for _, fname := range l.filenames {
		dir, file := filepath.Split(fname)

		// Create hash from path and filename
		h := fnv.New32()
		h.Write([]byte(dir))
		h.Write([]byte(file))

		out := filepath.Join(buildDir, fmt.Sprintf("%d.o", h.Sum32()))

		args := config.targetArgs()
		args = append(args, l.args...)
		args = append(args, "-c", fname, "-o", out)

		if err = run(ctx, config.toolchain.CC, args...); err != nil {
			return "", errors.Join(ErrCompileFailed, err)
		}
		objects = append(objects, out)
	}

	archive = filepath.Join(buildDir, "lib"+l.name+".a")
	if err = os.Remove(archive); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	args := append([]string{"crs", archive}, objects...)
	if err = run(ctx, config.toolchain.AR, args...); err != nil {
		return "", errors.Join(ErrArchiveFailed, err)
	}
	return archive, nil
}

func run(ctx context.Context, name string, args ...string) error {
	klog.V(1).Infof("%s %s", name, strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", filepath.Base(name), err, msg)
		}
		return fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return nil
}
