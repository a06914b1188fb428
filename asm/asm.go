// Package asm embeds the assembly stubs the build pipeline concatenates into
// arm.s. Files live under <device name>/ and <architecture class>/.
package asm

import "embed"

//go:embed */*.s
var FS embed.FS
