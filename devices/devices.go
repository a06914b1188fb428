// Package devices embeds the linker script fragments: the fixed header and
// footer templates, one directory per device and the common sections.
package devices

import (
	"embed"
	"io/fs"
)

//go:embed templates/header.x
var Header []byte

//go:embed templates/footer.x
var Footer []byte

//go:embed */*.x
var embedded embed.FS

// FS returns the fragment tree rooted at this directory.
func FS() fs.FS {
	return embedded
}
