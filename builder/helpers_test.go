package builder

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const fakeCC = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
	if [ "$1" = "-o" ]; then
		out="$2"
		shift
	fi
	shift
done
[ -n "$CMRT_TEST_LOG" ] && echo cc >> "$CMRT_TEST_LOG"
echo object > "$out"
`

const fakeAR = `#!/bin/sh
shift
out="$1"
shift
[ -n "$CMRT_TEST_LOG" ] && echo ar >> "$CMRT_TEST_LOG"
cat "$@" > "$out"
`

const failingCC = `#!/bin/sh
echo "arm.s:1: Error: bad instruction" >&2
exit 1
`

func writeTool(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain needs a POSIX shell")
	}

	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return fname
}

// fakeToolchain installs a compiler and archiver that only write their
// outputs. Invocations are logged to the returned file.
func fakeToolchain(t *testing.T) (tc Toolchain, log string) {
	t.Helper()
	log = filepath.Join(t.TempDir(), "tools.log")
	t.Setenv("CMRT_TEST_LOG", log)
	return Toolchain{
		CC: writeTool(t, "cc", fakeCC),
		AR: writeTool(t, "ar", fakeAR),
	}, log
}

func invocations(t *testing.T, log string) []string {
	t.Helper()
	b, err := os.ReadFile(log)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		t.Fatal(err)
	}
	return strings.Fields(string(b))
}

func readFile(t *testing.T, fname string) string {
	t.Helper()
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
