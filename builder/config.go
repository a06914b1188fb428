package builder

import (
	"errors"
	"fmt"
	"io/fs"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// ConfigFile is the project file read from the working directory.
const ConfigFile = "cmrt.toml"

// Config mirrors cmrt.toml:
//
//	device = "lm3s6965"
//	out_dir = "build"
//	jobs = 4
//
//	[toolchain]
//	cc = "arm-none-eabi-gcc"
//	asflags = ["-g"]
type Config struct {
	Device    string `toml:"device"`
	OutDir    string `toml:"out_dir"`
	Target    string `toml:"target"`
	Root      string `toml:"root"`
	Jobs      int64  `toml:"jobs"`
	Toolchain struct {
		CC      string   `toml:"cc"`
		AR      string   `toml:"ar"`
		ASFlags []string `toml:"asflags"`
	} `toml:"toolchain"`
}

// LoadConfig reads fname. A missing file yields an empty Config.
func LoadConfig(fname string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(fname, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", fname, ErrUnknownConfigField, undecoded[0])
	}
	return &cfg, nil
}

func (c *Config) jobs() (int, error) {
	jobs, err := safecast.Conv[int](c.Jobs)
	if err != nil {
		return 0, fmt.Errorf("jobs: %w", err)
	}
	return jobs, nil
}
