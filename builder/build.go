package builder

import (
	"context"
	"fmt"
	"os"
	"sync"

	"k8s.io/klog"
)

const (
	stepPrepare = "prepare"
	stepAsm     = "assemble"
	stepLink    = "link"
)

// stepEnv is shared by the steps of one build. Steps only read it.
type stepEnv struct {
	desc      Description
	outDir    string
	src       Sources
	asFlags   []string
	toolchain func() (Toolchain, error)
	stamp     *stamp
	force     bool
}

// Build produces the runtime's link script and assembly archive for
// opts.Device in opts.OutDir.
func Build(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.OutDir) == 0 {
		return nil, ErrNoOutDir
	}

	dev, err := LookupDevice(first(opts.Device, DefaultDevice))
	if err != nil {
		return nil, err
	}

	klog.Infof("out_dir: %s", opts.OutDir)
	klog.Infof("device: %s", dev)

	src := EmbeddedSources()
	if len(opts.Root) > 0 {
		src = DirSources(opts.Root)
	}

	e := &stepEnv{
		desc:    dev.Describe(),
		outDir:  opts.OutDir,
		src:     src,
		asFlags: opts.ASFlags,
		toolchain: sync.OnceValues(func() (Toolchain, error) {
			return findToolchain(opts.env())
		}),
		force: opts.Force,
	}
	if s := loadStamp(opts.OutDir); s != nil && s.Device == e.desc.Name {
		e.stamp = s
	}

	p := newPlan()
	steps := []struct {
		name string
		run  func(ctx context.Context) (*Output, error)
		deps []string
	}{
		{name: stepPrepare, run: func(context.Context) (*Output, error) {
			return nil, os.MkdirAll(opts.OutDir, 0o750)
		}},
		{name: stepAsm, run: func(ctx context.Context) (*Output, error) {
			return assemble(ctx, e)
		}, deps: []string{stepPrepare}},
		{name: stepLink, run: func(context.Context) (*Output, error) {
			return link(e)
		}, deps: []string{stepPrepare}},
	}
	for _, s := range steps {
		if err = p.add(s.name, s.run, s.deps...); err != nil {
			return nil, err
		}
	}

	outputs, err := p.run(ctx, opts.Jobs)
	if err != nil {
		return nil, err
	}

	next := newStamp(e.desc.Name)
	result := &Result{Device: e.desc.Name}
	for _, out := range outputs {
		next.Steps[out.Step] = out.Fingerprint
		result.add(out)
	}
	if HasFPU(dev, opts.Target) {
		result.Tags = append(result.Tags, "has_fpu")
	}

	if err = next.save(opts.OutDir); err != nil {
		return nil, fmt.Errorf("writing stamp: %w", err)
	}
	return result, nil
}
