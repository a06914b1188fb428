package builder

import (
	"bytes"
	"errors"
	"hash/fnv"
	"os"
)

// Output is what a build step produced.
type Output struct {
	Step       string
	Artifacts  []string
	LinkSearch []string
	// Rerun lists the inputs whose change invalidates the step.
	Rerun []string
	// Fingerprint identifies the step's inputs for the build stamp.
	Fingerprint uint64
	// Skipped is set when the stamp showed the outputs to be current.
	Skipped bool
}

func fingerprint(content []byte, config ...string) uint64 {
	h := fnv.New64a()
	h.Write(content)
	for _, c := range config {
		h.Write([]byte{0})
		h.Write([]byte(c))
	}
	return h.Sum64()
}

// writeIfChanged leaves fname untouched when it already holds content and
// reports whether it had to write.
func writeIfChanged(fname string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(fname); err == nil && bytes.Equal(existing, content) {
		return false, nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	return true, os.WriteFile(fname, content, 0o644)
}

func exists(fname string) bool {
	_, err := os.Stat(fname)
	return err == nil
}
