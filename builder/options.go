package builder

import (
	"runtime"
)

type Options struct {
	Device string
	OutDir string
	// Target is the target triple firmware is compiled for. Only its float
	// ABI is consulted.
	Target  string
	Root    string
	CC      string
	AR      string
	ASFlags []string
	Jobs    int
	// Force rebuilds every step regardless of the stamp.
	Force bool
}

// NewOptions resolves options from the environment over cfg over the
// defaults. Command line flags are applied on top by the caller.
func NewOptions(cfg *Config, env Env) (Options, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	jobs, err := cfg.jobs()
	if err != nil {
		return Options{}, err
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	opts := Options{
		Device:  first(env.Value("DEVICE"), cfg.Device, DefaultDevice),
		OutDir:  first(env.Value("OUT_DIR"), cfg.OutDir),
		Target:  first(env.Value("TARGET"), cfg.Target),
		Root:    first(env.Value("CMRTROOT"), cfg.Root),
		CC:      first(env.Value("CC"), cfg.Toolchain.CC),
		AR:      first(env.Value("AR"), cfg.Toolchain.AR),
		ASFlags: cfg.Toolchain.ASFlags,
		Jobs:    jobs,
	}
	return opts, nil
}

func (o Options) env() Env {
	return Env{
		"DEVICE":   o.Device,
		"OUT_DIR":  o.OutDir,
		"TARGET":   o.Target,
		"CC":       o.CC,
		"AR":       o.AR,
		"CMRTROOT": o.Root,
	}
}

func first(values ...string) string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}
