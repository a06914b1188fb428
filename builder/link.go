package builder

import (
	"bytes"
	"errors"
	"io/fs"
	"path"
	"path/filepath"

	"omibyte.io/cortexrt/devices"
)

const (
	linkScript   = "link.x"
	commonScript = "common"
	templatesDir = "templates"
)

// template reads templates/<name> from the devices tree. A tree without it
// gets the copy embedded in the binary, which is not an input of its own.
func template(src Sources, name string, embedded []byte) (content []byte, input string, err error) {
	p := path.Join(templatesDir, name)
	content, err = fs.ReadFile(src.Devices, p)
	if errors.Is(err, fs.ErrNotExist) {
		return embedded, "", nil
	} else if err != nil {
		return nil, p, err
	}
	return content, p, nil
}

// prepareLinkScript concatenates the header template, devices/<device>/,
// devices/common/ and the footer template.
func prepareLinkScript(desc Description, src Sources) (content []byte, rerun []string, err error) {
	var buf bytes.Buffer

	header, input, err := template(src, "header.x", devices.Header)
	if err != nil {
		return nil, nil, &StepError{Step: StepLink, Path: src.display("devices", input), Err: err}
	}
	if len(input) > 0 {
		rerun = append(rerun, src.display("devices", input))
	}
	buf.Write(header)

	for _, dir := range []string{desc.Name, commonScript} {
		inputs, failed, err := attach(&buf, src.Devices, dir)
		if err != nil {
			return nil, nil, &StepError{Step: StepLink, Path: src.display("devices", failed), Err: err}
		}
		for _, input := range inputs {
			rerun = append(rerun, src.display("devices", input))
		}
	}

	footer, input, err := template(src, "footer.x", devices.Footer)
	if err != nil {
		return nil, nil, &StepError{Step: StepLink, Path: src.display("devices", input), Err: err}
	}
	if len(input) > 0 {
		rerun = append(rerun, src.display("devices", input))
	}
	buf.Write(footer)

	return buf.Bytes(), rerun, nil
}

// Link writes <outDir>/link.x and registers outDir as a linker search path.
func Link(dev Device, outDir string, src Sources) (*Output, error) {
	return link(&stepEnv{
		desc:   dev.Describe(),
		outDir: outDir,
		src:    src,
		force:  true,
	})
}

// link composes link.x on every run and rewrites it whenever it differs.
func link(e *stepEnv) (*Output, error) {
	content, rerun, err := prepareLinkScript(e.desc, e.src)
	if err != nil {
		return nil, err
	}

	scriptPath := filepath.Join(e.outDir, linkScript)
	written, err := writeIfChanged(scriptPath, content)
	if err != nil {
		return nil, &StepError{Step: StepLink, Path: scriptPath, Err: err}
	}

	return &Output{
		Step:        StepLink,
		Artifacts:   []string{scriptPath},
		LinkSearch:  []string{e.outDir},
		Rerun:       rerun,
		Fingerprint: fingerprint(content),
		Skipped:     !written,
	}, nil
}
