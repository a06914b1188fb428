package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultDevice is used when DEVICE is not set.
const DefaultDevice = "lm3s6965"

type Env map[string]string

// Environment captures the variables the build reads. Unset variables are
// empty, except CMRTROOT which falls back to the directory above the
// executable when that directory holds the asm/ and devices/ trees.
func Environment() Env {
	root := ""
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "..")
		if isSourceRoot(candidate) {
			root, _ = filepath.Abs(candidate)
		}
	}

	return map[string]string{
		"DEVICE":   os.Getenv("DEVICE"),
		"OUT_DIR":  os.Getenv("OUT_DIR"),
		"TARGET":   os.Getenv("TARGET"),
		"CC":       os.Getenv("CC"),
		"AR":       os.Getenv("AR"),
		"CMRTROOT": getenv("CMRTROOT", root),
	}
}

func isSourceRoot(dir string) bool {
	for _, sub := range []string{"asm", "devices"} {
		if info, err := os.Stat(filepath.Join(dir, sub)); err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

func (e Env) Print() {
	for _, k := range e.keys() {
		fmt.Printf("%s=%q\n", k, e[k])
	}
}

func (e Env) Value(key string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return ""
}

func (e Env) List() []string {
	var result []string
	for _, key := range e.keys() {
		result = append(result, fmt.Sprintf("%s=%s", key, e[key]))
	}
	return result
}

func (e Env) keys() []string {
	keys := maps.Keys(e)
	slices.Sort(keys)
	return keys
}

// DeviceName is DEVICE lower-cased, or DefaultDevice.
func (e Env) DeviceName() string {
	name := strings.TrimSpace(e.Value("DEVICE"))
	if len(name) == 0 {
		return DefaultDevice
	}
	return strings.ToLower(name)
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}
