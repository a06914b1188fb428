package builder

import (
	"golang.org/x/exp/slices"
)

// Result is what the firmware build needs to know about the runtime.
type Result struct {
	Device     string
	Tags       []string
	LinkSearch []string
	Rerun      []string
	Artifacts  []string
	Steps      []*Output
}

func (r *Result) add(out *Output) {
	r.Steps = append(r.Steps, out)
	r.LinkSearch = appendUnique(r.LinkSearch, out.LinkSearch...)
	r.Rerun = appendUnique(r.Rerun, out.Rerun...)
	r.Artifacts = appendUnique(r.Artifacts, out.Artifacts...)
}

// Directives renders the result one directive per line, in the order the
// firmware build consumes them:
//
//	link-search=<dir>
//	tag=<tag>
//	rerun-if-changed=<path>
func (r *Result) Directives() []string {
	var lines []string
	for _, dir := range r.LinkSearch {
		lines = append(lines, "link-search="+dir)
	}
	for _, tag := range r.Tags {
		lines = append(lines, "tag="+tag)
	}
	for _, p := range r.Rerun {
		lines = append(lines, "rerun-if-changed="+p)
	}
	return lines
}

func appendUnique(s []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(s, v) {
			s = append(s, v)
		}
	}
	return s
}
