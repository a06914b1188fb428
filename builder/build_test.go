package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"omibyte.io/cortexrt/devices"
)

func buildOptions(t *testing.T, tc Toolchain) Options {
	return Options{
		OutDir: t.TempDir(),
		CC:     tc.CC,
		AR:     tc.AR,
		Jobs:   2,
	}
}

func TestBuildDefaultDevice(t *testing.T) {
	tc, _ := fakeToolchain(t)
	opts := buildOptions(t, tc)

	result, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.Device != DefaultDevice {
		t.Errorf("device = %q, want %q", result.Device, DefaultDevice)
	}

	script := readFile(t, filepath.Join(opts.OutDir, linkScript))
	if !strings.HasPrefix(script, string(devices.Header)) {
		t.Error("link.x does not start with the header template")
	}
	if !strings.HasSuffix(script, string(devices.Footer)) {
		t.Error("link.x does not end with the footer template")
	}
	if !strings.Contains(script, "MEMORY") {
		t.Error("link.x is missing the device memory layout")
	}

	for _, name := range []string{asmFile, "libarm.a", stampFile} {
		if !exists(filepath.Join(opts.OutDir, name)) {
			t.Errorf("%s was not written", name)
		}
	}

	directives := result.Directives()
	if len(directives) == 0 || directives[0] != "link-search="+opts.OutDir {
		t.Errorf("directives start with %v, want link-search=%s", directives, opts.OutDir)
	}
	for _, d := range directives {
		if d == "tag=has_fpu" {
			t.Error("lm3s6965 built without eabihf must not get has_fpu")
		}
	}
}

func TestBuildDeviceName(t *testing.T) {
	tc, _ := fakeToolchain(t)

	for _, name := range []string{"LM3S6965", "lm3s6965", " Lm3s6965 "} {
		t.Run(name, func(t *testing.T) {
			opts := buildOptions(t, tc)
			opts.Device = name
			result, err := Build(context.Background(), opts)
			if err != nil {
				t.Fatal(err)
			}
			if result.Device != "lm3s6965" {
				t.Errorf("device = %q", result.Device)
			}
		})
	}
}

func TestBuildUnknownDevice(t *testing.T) {
	opts := Options{
		Device: "stm32f4",
		OutDir: filepath.Join(t.TempDir(), "out"),
	}

	_, err := Build(context.Background(), opts)
	if !errors.Is(err, ErrUnknownDevice) {
		t.Fatalf("err = %v, want ErrUnknownDevice", err)
	}
	if exists(opts.OutDir) {
		t.Error("output directory created for an unknown device")
	}
}

func TestBuildNoOutDir(t *testing.T) {
	if _, err := Build(context.Background(), Options{}); !errors.Is(err, ErrNoOutDir) {
		t.Fatalf("err = %v, want ErrNoOutDir", err)
	}
}

func TestBuildIdempotent(t *testing.T) {
	tc, log := fakeToolchain(t)
	opts := buildOptions(t, tc)

	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	asm := readFile(t, filepath.Join(opts.OutDir, asmFile))
	script := readFile(t, filepath.Join(opts.OutDir, linkScript))

	result, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(asm, readFile(t, filepath.Join(opts.OutDir, asmFile))); diff != "" {
		t.Errorf("arm.s changed on rebuild (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(script, readFile(t, filepath.Join(opts.OutDir, linkScript))); diff != "" {
		t.Errorf("link.x changed on rebuild (-first +second):\n%s", diff)
	}

	for _, out := range result.Steps {
		if !out.Skipped {
			t.Errorf("%s ran again with unchanged inputs", out.Step)
		}
	}
	if diff := cmp.Diff([]string{"cc", "ar"}, invocations(t, log)); diff != "" {
		t.Errorf("toolchain invocations (-want +got):\n%s", diff)
	}
}

func TestBuildForce(t *testing.T) {
	tc, log := fakeToolchain(t)
	opts := buildOptions(t, tc)

	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	opts.Force = true
	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	if got := len(invocations(t, log)); got != 4 {
		t.Errorf("%d toolchain invocations, want 4", got)
	}
}

func TestBuildStaleArchive(t *testing.T) {
	tc, log := fakeToolchain(t)
	opts := buildOptions(t, tc)

	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(filepath.Join(opts.OutDir, "libarm.a")); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	if got := len(invocations(t, log)); got != 4 {
		t.Errorf("%d toolchain invocations, want 4", got)
	}
	if !exists(filepath.Join(opts.OutDir, "libarm.a")) {
		t.Error("libarm.a was not rebuilt")
	}
}

func TestBuildHasFPU(t *testing.T) {
	tc, _ := fakeToolchain(t)
	opts := buildOptions(t, tc)
	opts.Target = "thumbv7em-none-eabihf"

	result, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"has_fpu"}, result.Tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestBuildAssemblerFailure(t *testing.T) {
	opts := Options{
		OutDir: t.TempDir(),
		CC:     writeTool(t, "cc", failingCC),
		AR:     writeTool(t, "ar", fakeAR),
	}

	_, err := Build(context.Background(), opts)
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("err = %v, want a StepError", err)
	}
	if stepErr.Step != StepAssembly {
		t.Errorf("failed step = %q, want %q", stepErr.Step, StepAssembly)
	}
	if !errors.Is(err, ErrCompileFailed) {
		t.Errorf("err = %v, want ErrCompileFailed", err)
	}
	for _, want := range []string{"FAILED", "assembly step", "bad instruction"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q does not mention %q", err, want)
		}
	}
}

func TestBuildFromRoot(t *testing.T) {
	tc, _ := fakeToolchain(t)
	root := t.TempDir()
	files := map[string]string{
		"asm/armv7/a.s":              "@ a\n",
		"devices/lm3s6965/m.x":       "/* m */\n",
		"devices/common/common.x":    "/* common */\n",
		"devices/templates/header.x": "/* root header */\n",
	}
	for name, content := range files {
		fname := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	opts := buildOptions(t, tc)
	opts.Root = root
	result, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if got := readFile(t, filepath.Join(opts.OutDir, asmFile)); got != "@ a\n" {
		t.Errorf("arm.s = %q", got)
	}
	script := readFile(t, filepath.Join(opts.OutDir, linkScript))
	if !strings.HasPrefix(script, "/* root header */\n") {
		t.Errorf("link.x does not start with the root's header:\n%s", script)
	}
	if !strings.HasSuffix(script, string(devices.Footer)) {
		t.Error("link.x does not fall back to the embedded footer")
	}

	for _, name := range []string{"asm/armv7/a.s", "devices/lm3s6965/m.x", "devices/common/common.x", "devices/templates/header.x"} {
		want := "rerun-if-changed=" + filepath.Join(root, filepath.FromSlash(name))
		found := false
		for _, d := range result.Directives() {
			found = found || d == want
		}
		if !found {
			t.Errorf("missing %s", want)
		}
	}
}

func TestBuildRestoresLinkScript(t *testing.T) {
	tc, _ := fakeToolchain(t)
	opts := buildOptions(t, tc)

	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	scriptPath := filepath.Join(opts.OutDir, linkScript)
	want := readFile(t, scriptPath)

	if err := os.WriteFile(scriptPath, []byte("garbage\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, readFile(t, scriptPath)); diff != "" {
		t.Errorf("link.x after rebuild (-want +got):\n%s", diff)
	}
	for _, out := range result.Steps {
		if out.Step == StepLink && out.Skipped {
			t.Error("link step reported as skipped after rewriting link.x")
		}
	}
}
