package builder

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadConfig(t *testing.T) {
	fname := writeConfig(t, `
device = "LM3S6965"
out_dir = "build"
jobs = 3

[toolchain]
cc = "arm-none-eabi-gcc"
asflags = ["-g"]
`)

	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{Device: "LM3S6965", OutDir: "build", Jobs: 3}
	want.Toolchain.CC = "arm-none-eabi-gcc"
	want.Toolchain.ASFlags = []string{"-g"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{"unknown field", "device = \"lm3s6965\"\nlinker = \"ld\"\n", ErrUnknownConfigField},
		{"unknown table field", "[toolchain]\nld = \"ld\"\n", ErrUnknownConfigField},
		{"syntax", "device = \n", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("no error")
			}
			if tc.err != nil && !errors.Is(err, tc.err) {
				t.Errorf("err = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestNewOptions(t *testing.T) {
	cfg := &Config{Device: "from-config", OutDir: "config-out", Jobs: 2}
	cfg.Toolchain.CC = "config-cc"

	tests := []struct {
		name string
		cfg  *Config
		env  Env
		want Options
	}{
		{
			"defaults",
			nil,
			Env{},
			Options{Device: DefaultDevice, Jobs: runtime.NumCPU()},
		},
		{
			"config",
			cfg,
			Env{},
			Options{Device: "from-config", OutDir: "config-out", CC: "config-cc", Jobs: 2},
		},
		{
			"environment over config",
			cfg,
			Env{"DEVICE": "from-env", "OUT_DIR": "env-out", "TARGET": "thumbv7em-none-eabihf"},
			Options{Device: "from-env", OutDir: "env-out", Target: "thumbv7em-none-eabihf", CC: "config-cc", Jobs: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewOptions(tc.cfg, tc.env)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("options (-want +got):\n%s", diff)
			}
		})
	}
}
