package builder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/coreos/go-semver/semver"
	"github.com/vmihailenco/msgpack/v5"
	"k8s.io/klog"
)

const stampFile = "cmrt.stamp"

// stamp records the fingerprint of every step's inputs from the last
// successful build in an output directory.
type stamp struct {
	Version string            `msgpack:"version"`
	Device  string            `msgpack:"device"`
	Steps   map[string]uint64 `msgpack:"steps"`
}

func newStamp(device string) *stamp {
	return &stamp{
		Version: Version,
		Device:  device,
		Steps:   map[string]uint64{},
	}
}

// loadStamp returns the stamp in outDir, or nil when there is none or it was
// written by an incompatible builder.
func loadStamp(outDir string) *stamp {
	b, err := os.ReadFile(filepath.Join(outDir, stampFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			klog.V(1).Infof("ignoring stamp: %v", err)
		}
		return nil
	}

	var s stamp
	if err = msgpack.Unmarshal(b, &s); err != nil {
		klog.V(1).Infof("ignoring stamp: %v", err)
		return nil
	}

	written, err := semver.NewVersion(s.Version)
	if err != nil {
		klog.V(1).Infof("ignoring stamp: %v", err)
		return nil
	}
	current := semver.New(Version)
	if written.Major != current.Major || written.Minor != current.Minor {
		klog.V(1).Infof("ignoring stamp from builder %s", written)
		return nil
	}
	return &s
}

func (s *stamp) save(outDir string) error {
	b, err := msgpack.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, stampFile), b, 0o644)
}

// upToDate reports whether step last ran with the same inputs and all its
// outputs are still present. A nil stamp is never up to date.
func (s *stamp) upToDate(step string, fp uint64, outputs ...string) bool {
	if s == nil {
		return false
	}
	if prev, ok := s.Steps[step]; !ok || prev != fp {
		return false
	}
	for _, out := range outputs {
		if !exists(out) {
			return false
		}
	}
	return true
}
