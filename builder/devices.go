package builder

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed devices.yaml
var rawDevices []byte

var knownDevices []Device

// Device is a supported part. Known is the only variant.
type Device interface {
	fmt.Stringer
	Describe() Description
	isDevice()
}

// Known is a device listed in the built-in table.
type Known struct {
	Description
}

func (Known) isDevice() {}

func (k Known) Describe() Description {
	return k.Description
}

func (k Known) String() string {
	return k.Name
}

// Description is the immutable build-time record of a device.
type Description struct {
	Name   string
	ABI    string
	FPU    bool
	Target Target
}

// Target is an instruction set family. ARM is the only variant.
type Target interface {
	fmt.Stringer
	// ArchClass names the asm/<class> directory shared by the family.
	ArchClass() string
	isTarget()
}

type ARM struct {
	Version uint8
	Class   string
}

func (ARM) isTarget() {}

func (a ARM) ArchClass() string {
	return a.Class
}

func (a ARM) String() string {
	return a.Class
}

// ParseTarget maps an architecture class to a Target. Unknown classes fall
// back to armv7.
func ParseTarget(class string) Target {
	switch strings.ToLower(class) {
	case "armv6":
		return ARM{Version: 6, Class: "armv6"}
	case "armv8":
		return ARM{Version: 8, Class: "armv8"}
	default:
		return ARM{Version: 7, Class: "armv7"}
	}
}

type deviceEntry struct {
	Name   string `yaml:"name"`
	ABI    string `yaml:"abi"`
	FPU    bool   `yaml:"fpu"`
	Target struct {
		Arch    string `yaml:"arch"`
		Version uint8  `yaml:"version"`
		Class   string `yaml:"class"`
	} `yaml:"target"`
}

func (e deviceEntry) device() (Device, error) {
	if e.Target.Arch != "arm" {
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownArch, e.Name, e.Target.Arch)
	}

	target := ParseTarget(e.Target.Class)
	if arm := target.(ARM); e.Target.Version != 0 && arm.Version != e.Target.Version {
		return nil, fmt.Errorf("%s: class %s does not match version %d", e.Name, arm.Class, e.Target.Version)
	}

	return Known{Description{
		Name:   strings.ToLower(e.Name),
		ABI:    e.ABI,
		FPU:    e.FPU,
		Target: target,
	}}, nil
}

func parseDevices(raw []byte) ([]Device, error) {
	var t struct {
		Elements []deviceEntry `yaml:"devices"`
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}

	result := make([]Device, 0, len(t.Elements))
	for _, e := range t.Elements {
		d, err := e.device()
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func init() {
	var err error
	if knownDevices, err = parseDevices(rawDevices); err != nil {
		panic(err)
	}
}

// Devices lists the supported device names in table order.
func Devices() []string {
	names := make([]string, len(knownDevices))
	for i, d := range knownDevices {
		names[i] = d.String()
	}
	return names
}

// LookupDevice finds a device by name, ignoring case.
func LookupDevice(name string) (Device, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(knownDevices, func(d Device) bool {
		return d.Describe().Name == name
	})
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDevice, name)
	}
	return knownDevices[i], nil
}

// ResolveDevice selects the device named by DEVICE, or DefaultDevice.
func ResolveDevice(env Env) (Device, error) {
	return LookupDevice(env.DeviceName())
}

// HasFPU reports whether firmware for d built for the target triple should
// be compiled with the has_fpu tag.
func HasFPU(d Device, triple string) bool {
	return d.Describe().FPU || strings.HasSuffix(triple, "eabihf")
}

// Arch returns the -march value for the device's ABI, e.g. armv7-m for
// thumbv7m-none-eabi.
func (d Description) Arch() string {
	isa, _, _ := strings.Cut(d.ABI, "-")
	isa = strings.TrimPrefix(isa, "thumb")
	switch {
	case strings.HasPrefix(isa, "v8m.main"):
		return "armv8-m.main"
	case strings.HasPrefix(isa, "v8m"):
		return "armv8-m.base"
	case strings.HasPrefix(isa, "v7em"):
		return "armv7e-m"
	case strings.HasPrefix(isa, "v7m"):
		return "armv7-m"
	case strings.HasPrefix(isa, "v6m"):
		return "armv6-m"
	}
	return "arm" + isa
}
