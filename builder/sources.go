package builder

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	asmsrc "omibyte.io/cortexrt/asm"
	"omibyte.io/cortexrt/devices"
)

// Sources are the trees the build concatenates: asm/ and devices/.
type Sources struct {
	Asm     fs.FS
	Devices fs.FS
	// Root is the directory both trees were read from. Empty for the trees
	// embedded in the binary.
	Root string
}

// EmbeddedSources returns the trees compiled into the binary.
func EmbeddedSources() Sources {
	return Sources{
		Asm:     asmsrc.FS,
		Devices: devices.FS(),
	}
}

// DirSources reads root/asm and root/devices from disk.
func DirSources(root string) Sources {
	return Sources{
		Asm:     os.DirFS(filepath.Join(root, "asm")),
		Devices: os.DirFS(filepath.Join(root, "devices")),
		Root:    root,
	}
}

// display returns the path reported for name inside tree.
func (s Sources) display(tree, name string) string {
	p := path.Join(tree, name)
	if len(s.Root) == 0 {
		return p
	}
	return filepath.Join(s.Root, filepath.FromSlash(p))
}

// attach appends every file of dir to w in directory order and returns the
// files read. A missing dir contributes nothing. On failure the offending
// path is returned with the error.
func attach(w io.Writer, fsys fs.FS, dir string) (inputs []string, failed string, err error) {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	} else if err != nil {
		return nil, dir, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		p := path.Join(dir, entry.Name())
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return inputs, p, err
		}
		if _, err = w.Write(b); err != nil {
			return inputs, p, err
		}
		inputs = append(inputs, p)
	}
	return inputs, "", nil
}
