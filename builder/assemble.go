package builder

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"k8s.io/klog"
)

const (
	asmFile     = "arm.s"
	libraryName = "arm"
)

// prepareAssembly concatenates asm/<device>/ and asm/<class>/.
func prepareAssembly(desc Description, src Sources) (content []byte, rerun []string, err error) {
	var buf bytes.Buffer
	for _, dir := range []string{desc.Name, desc.Target.ArchClass()} {
		inputs, failed, err := attach(&buf, src.Asm, dir)
		if err != nil {
			return nil, nil, &StepError{Step: StepAssembly, Path: src.display("asm", failed), Err: err}
		}
		for _, input := range inputs {
			rerun = append(rerun, src.display("asm", input))
		}
	}
	return buf.Bytes(), rerun, nil
}

// Assemble writes <outDir>/arm.s and compiles it into <outDir>/libarm.a.
func Assemble(ctx context.Context, dev Device, outDir string, src Sources, tc Toolchain) (*Output, error) {
	return assemble(ctx, &stepEnv{
		desc:      dev.Describe(),
		outDir:    outDir,
		src:       src,
		toolchain: func() (Toolchain, error) { return tc, nil },
		force:     true,
	})
}

func assemble(ctx context.Context, e *stepEnv) (*Output, error) {
	content, rerun, err := prepareAssembly(e.desc, e.src)
	if err != nil {
		return nil, err
	}

	asmPath := filepath.Join(e.outDir, asmFile)
	if _, err = writeIfChanged(asmPath, content); err != nil {
		return nil, &StepError{Step: StepAssembly, Path: asmPath, Err: err}
	}

	tc, err := e.toolchain()
	if err != nil {
		return nil, &StepError{Step: StepAssembly, Path: asmPath, Err: err}
	}

	lib := library{
		name:      libraryName,
		args:      e.asFlags,
		filenames: []string{asmPath},
	}
	config := libraryConfig{desc: e.desc, toolchain: tc}

	out := &Output{
		Step:        StepAssembly,
		Rerun:       rerun,
		Fingerprint: fingerprint(content, tc.CC, tc.AR, strings.Join(append(config.targetArgs(), e.asFlags...), " ")),
	}

	archive := filepath.Join(e.outDir, "lib"+libraryName+".a")
	if !e.force && e.stamp.upToDate(StepAssembly, out.Fingerprint, archive) {
		klog.V(1).Infof("%s is up to date", archive)
		out.Skipped = true
	} else if archive, err = lib.compile(ctx, config, e.outDir); err != nil {
		return nil, &StepError{Step: StepAssembly, Path: asmPath, Err: err}
	}

	out.Artifacts = []string{asmPath, archive}
	return out, nil
}
